package slides

import (
	"context"

	"github.com/rhofkens/AI-presenter/internal/uploads"
)

// Slide is one entry of the preview list shown after an upload
type Slide struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	Narrative   string  `json:"narrative,omitempty"`
}

// Extractor turns a stored presentation into its preview slides
type Extractor interface {
	Extract(ctx context.Context, file uploads.FileMetadata) ([]Slide, error)
}

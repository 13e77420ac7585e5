package uploads

import (
	"github.com/google/uuid"
)

// Candidate is a dropped file as seen by the gate: its declared MIME type
// and byte size. It only lives until the gate has decided.
type Candidate struct {
	Name     string `json:"name"`
	MimeType string `json:"mimeType"`
	Size     int64  `json:"size"`
}

// FileMetadata represents the metadata of an uploaded file
type FileMetadata struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Key              string    `json:"key"`
	URL              string    `json:"url"`
	Size             int64     `json:"size"`
	MimeType         string    `json:"mimeType"`
	DetectedMimeType string    `json:"detectedMimeType,omitempty"`
}

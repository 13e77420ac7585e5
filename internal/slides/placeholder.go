package slides

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/rhofkens/AI-presenter/internal/uploads"
)

const DefaultSlideCount = 5

var topics = []string{"introduction", "features", "benefits", "case studies", "conclusion"}

// PlaceholderExtractor stands in for real slide parsing. It waits Delay and
// then yields Count generic slides named after the file.
type PlaceholderExtractor struct {
	Delay    time.Duration
	Count    int
	ImageURL string
}

func NewPlaceholderExtractor(delay time.Duration, count int, imageURL string) *PlaceholderExtractor {
	if count <= 0 {
		count = DefaultSlideCount
	}
	return &PlaceholderExtractor{Delay: delay, Count: count, ImageURL: imageURL}
}

func (e *PlaceholderExtractor) Extract(ctx context.Context, file uploads.FileMetadata) ([]Slide, error) {
	if e.Delay > 0 {
		timer := time.NewTimer(e.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("slide extraction for %s: %w", file.Name, ctx.Err())
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("slide extraction for %s: %w", file.Name, err)
	}

	return lo.Times(e.Count, func(i int) Slide {
		n := i + 1
		s := Slide{
			ID:          n,
			Title:       fmt.Sprintf("Slide %d", n),
			Description: fmt.Sprintf("Content from slide %d of %s", n, file.Name),
			Narrative: fmt.Sprintf("This slide covers the key points about %s. The content is designed to engage the audience and deliver the message effectively.",
				topics[i%len(topics)]),
		}
		if i == 0 && e.ImageURL != "" {
			s.ImageURL = lo.ToPtr(e.ImageURL)
		}
		return s
	}), nil
}

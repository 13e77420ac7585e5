package uploads

import (
	"errors"
	"slices"

	"github.com/samber/lo"
)

const (
	MimeTypePPT  = "application/vnd.ms-powerpoint"
	MimeTypePPTX = "application/vnd.openxmlformats-officedocument.presentationml.presentation"

	// MaxFileSize is the upload ceiling in bytes (50 MiB)
	MaxFileSize = int64(50 * 1024 * 1024)
)

var acceptedMimeTypes = []string{MimeTypePPT, MimeTypePPTX}

// AcceptedMimeTypes returns the gate's allow-list
func AcceptedMimeTypes() []string {
	return slices.Clone(acceptedMimeTypes)
}

// IsAcceptedType reports whether mimeType is on the allow-list
func IsAcceptedType(mimeType string) bool {
	return lo.Contains(acceptedMimeTypes, mimeType)
}

// Gate errors are shown to users verbatim.
var (
	ErrUnsupportedType = errors.New("Only PowerPoint files (PPT/PPTX) are allowed")
	ErrFileTooLarge    = errors.New("File size must be less than 50MB")
)

// Gate accepts or rejects dropped presentation files
type Gate struct {
	OnAccepted func(Candidate)
	OnError    func(message string)
}

// Validate checks c against the allow-list and the size ceiling. The type
// check wins when both fail.
func (g *Gate) Validate(c Candidate) error {
	if !IsAcceptedType(c.MimeType) {
		return ErrUnsupportedType
	}
	if c.Size > MaxFileSize {
		return ErrFileTooLarge
	}
	return nil
}

// Drop handles one drop event. While loading nothing runs and no callback
// fires. Only the first file of a multi-file drop is considered.
func (g *Gate) Drop(files []Candidate, loading bool) {
	if loading || len(files) == 0 {
		return
	}

	file := files[0]
	if err := g.Validate(file); err != nil {
		if g.OnError != nil {
			g.OnError(err.Error())
		}
		return
	}
	if g.OnAccepted != nil {
		g.OnAccepted(file)
	}
}

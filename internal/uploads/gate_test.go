package uploads

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type gateRecorder struct {
	accepted []Candidate
	errors   []string
}

func (r *gateRecorder) gate() *Gate {
	return &Gate{
		OnAccepted: func(c Candidate) { r.accepted = append(r.accepted, c) },
		OnError:    func(msg string) { r.errors = append(r.errors, msg) },
	}
}

func TestGate_Validate(t *testing.T) {
	tests := []struct {
		name    string
		file    Candidate
		wantErr error
	}{
		{name: "ppt", file: Candidate{Name: "a.ppt", MimeType: MimeTypePPT, Size: 1024}},
		{name: "pptx", file: Candidate{Name: "a.pptx", MimeType: MimeTypePPTX, Size: 1024}},
		{name: "exactly at limit", file: Candidate{Name: "a.pptx", MimeType: MimeTypePPTX, Size: 52_428_800}},
		{name: "one byte over", file: Candidate{Name: "a.pptx", MimeType: MimeTypePPTX, Size: 52_428_801}, wantErr: ErrFileTooLarge},
		{name: "pdf", file: Candidate{Name: "a.pdf", MimeType: "application/pdf", Size: 1024}, wantErr: ErrUnsupportedType},
		{name: "no type", file: Candidate{Name: "a", Size: 1}, wantErr: ErrUnsupportedType},
		{name: "wrong type and too large", file: Candidate{Name: "a.pdf", MimeType: "application/pdf", Size: 60 << 20}, wantErr: ErrUnsupportedType},
	}

	var g Gate
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := g.Validate(tt.file)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestGate_Messages(t *testing.T) {
	assert.Equal(t, "Only PowerPoint files (PPT/PPTX) are allowed", ErrUnsupportedType.Error())
	assert.Equal(t, "File size must be less than 50MB", ErrFileTooLarge.Error())
}

func TestGate_Drop(t *testing.T) {
	deck := Candidate{Name: "deck.pptx", MimeType: MimeTypePPTX, Size: 2048}
	pdf := Candidate{Name: "doc.pdf", MimeType: "application/pdf", Size: 10}

	t.Run("accepts first file only", func(t *testing.T) {
		rec := &gateRecorder{}
		rec.gate().Drop([]Candidate{deck, pdf}, false)
		assert.Equal(t, []Candidate{deck}, rec.accepted)
		assert.Empty(t, rec.errors)
	})

	t.Run("first file decides", func(t *testing.T) {
		rec := &gateRecorder{}
		rec.gate().Drop([]Candidate{pdf, deck}, false)
		assert.Empty(t, rec.accepted)
		assert.Equal(t, []string{"Only PowerPoint files (PPT/PPTX) are allowed"}, rec.errors)
	})

	t.Run("ignored while loading", func(t *testing.T) {
		rec := &gateRecorder{}
		rec.gate().Drop([]Candidate{deck}, true)
		rec.gate().Drop([]Candidate{pdf}, true)
		assert.Empty(t, rec.accepted)
		assert.Empty(t, rec.errors)
	})

	t.Run("empty drop", func(t *testing.T) {
		rec := &gateRecorder{}
		rec.gate().Drop(nil, false)
		assert.Empty(t, rec.accepted)
		assert.Empty(t, rec.errors)
	})

	t.Run("nil callbacks", func(t *testing.T) {
		assert.NotPanics(t, func() {
			(&Gate{}).Drop([]Candidate{deck}, false)
			(&Gate{}).Drop([]Candidate{pdf}, false)
		})
	})
}

func TestAcceptedMimeTypes_ReturnsCopy(t *testing.T) {
	types := AcceptedMimeTypes()
	types[0] = "text/plain"
	assert.Equal(t, []string{MimeTypePPT, MimeTypePPTX}, AcceptedMimeTypes())
}

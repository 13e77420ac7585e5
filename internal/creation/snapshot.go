package creation

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/rhofkens/AI-presenter/internal/metadata"
	"github.com/rhofkens/AI-presenter/internal/slides"
	"github.com/rhofkens/AI-presenter/internal/uploads"
)

// FormView is what the metadata form needs to render
type FormView struct {
	Disabled        bool                      `json:"disabled"`
	SubmitLabel     string                    `json:"submitLabel"`
	Values          metadata.Input            `json:"values"`
	Templates       []metadata.TemplateOption `json:"templates"`
	TagInputVisible bool                      `json:"tagInputVisible"`
}

// Snapshot is a read-only view of a session at one instant
type Snapshot struct {
	ID            uuid.UUID             `json:"id"`
	State         StateKind             `json:"state"`
	File          *uploads.FileMetadata `json:"file,omitempty"`
	Slides        []slides.Slide        `json:"slides"`
	Record        *metadata.Record      `json:"record,omitempty"`
	ProjectID     *uuid.UUID            `json:"projectId,omitempty"`
	Loading       bool                  `json:"loading"`
	Form          FormView              `json:"form"`
	Notifications []Notification        `json:"notifications"`
	CreatedAt     time.Time             `json:"createdAt"`
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		ID:      s.ID,
		State:   s.state.Kind,
		Slides:  slices.Clone(s.state.Slides),
		Loading: s.state.Kind == StateUploading,
		Form: FormView{
			Disabled:        s.form.Disabled(),
			SubmitLabel:     s.form.SubmitLabel(),
			Values:          s.form.Input(),
			Templates:       s.form.Templates().Options(),
			TagInputVisible: s.form.TagInput().InputVisible(),
		},
		Notifications: slices.Clone(s.notifications),
		CreatedAt:     s.CreatedAt,
	}
	if snap.Slides == nil {
		snap.Slides = []slides.Slide{}
	}
	if snap.Notifications == nil {
		snap.Notifications = []Notification{}
	}
	if s.state.File != nil {
		file := *s.state.File
		snap.File = &file
	}
	if s.state.Record != nil {
		record := *s.state.Record
		snap.Record = &record
	}
	if s.state.Kind == StateDone {
		id := s.state.ProjectID
		snap.ProjectID = &id
	}
	return snap
}

package creation

import (
	"github.com/google/uuid"

	"github.com/rhofkens/AI-presenter/internal/metadata"
	"github.com/rhofkens/AI-presenter/internal/slides"
	"github.com/rhofkens/AI-presenter/internal/uploads"
)

// StateKind names the phase of a creation session
type StateKind string

const (
	StateNoFile     StateKind = "NO_FILE"
	StateUploading  StateKind = "UPLOADING"
	StateReady      StateKind = "READY"
	StateSubmitting StateKind = "SUBMITTING"
	StateDone       StateKind = "DONE"
)

// State is the single source of truth of a session. Which fields are set
// depends on Kind:
//
//	NoFile, Uploading   nothing
//	Ready               File, Slides
//	Submitting          File, Slides, Record
//	Done                File, Slides, Record, ProjectID
type State struct {
	Kind      StateKind
	File      *uploads.FileMetadata
	Slides    []slides.Slide
	Record    *metadata.Record
	ProjectID uuid.UUID
}

func noFileState() State { return State{Kind: StateNoFile} }

func uploadingState() State { return State{Kind: StateUploading} }

func readyState(file uploads.FileMetadata, list []slides.Slide) State {
	return State{Kind: StateReady, File: &file, Slides: list}
}

func submittingState(from State, record metadata.Record) State {
	return State{Kind: StateSubmitting, File: from.File, Slides: from.Slides, Record: &record}
}

func doneState(from State, projectID uuid.UUID) State {
	return State{Kind: StateDone, File: from.File, Slides: from.Slides, Record: from.Record, ProjectID: projectID}
}

// busy reports whether an upload or submission is in flight
func (k StateKind) busy() bool {
	return k == StateUploading || k == StateSubmitting
}

func canDrop(k StateKind) bool {
	return k == StateNoFile || k == StateReady
}

func canSubmit(k StateKind) bool {
	return k == StateReady
}

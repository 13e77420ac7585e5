package creation

import "errors"

var (
	ErrBusy            = errors.New("an upload or submission is already in progress")
	ErrFinished        = errors.New("session already created its project")
	ErrMissingFile     = errors.New("no presentation uploaded")
	ErrNotReady        = errors.New("session has no presentation to edit")
	ErrSlideNotFound   = errors.New("slide not found")
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionClosed   = errors.New("session closed")
	ErrUploadFailed    = errors.New("upload failed")
	ErrSubmitFailed    = errors.New("submission failed")
)

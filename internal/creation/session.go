package creation

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rhofkens/AI-presenter/internal/metadata"
	"github.com/rhofkens/AI-presenter/internal/slides"
	"github.com/rhofkens/AI-presenter/internal/uploads"
)

// cleanupTimeout bounds best-effort removal of files nobody references anymore
const cleanupTimeout = 10 * time.Second

// Submission is what a successful submit hands to the Completer
type Submission struct {
	Record metadata.Record
	File   uploads.FileMetadata
	Slides []slides.Slide
}

// Completer creates the project for a submission and returns its ID
type Completer func(ctx context.Context, sub Submission) (uuid.UUID, error)

type Options struct {
	// ProcessingTimeout bounds slide extraction after an upload
	ProcessingTimeout time.Duration
	// SubmitTimeout bounds the Completer call
	SubmitTimeout time.Duration
}

// Session drives one pass through the creation page: upload a deck, review
// its slides, fill in the metadata and create the project.
type Session struct {
	ID        uuid.UUID
	CreatedAt time.Time

	mu            sync.Mutex
	state         State
	form          *metadata.Form
	gate          uploads.Gate
	notifications []Notification
	closed        bool

	uploads   *uploads.UploadService
	extractor slides.Extractor
	complete  Completer
	opts      Options
	now       func() time.Time

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func newSession(parent context.Context, up *uploads.UploadService, extractor slides.Extractor, complete Completer, opts Options) *Session {
	ctx, cancel := context.WithCancel(parent)
	s := &Session{
		ID:        uuid.New(),
		form:      metadata.NewForm(),
		uploads:   up,
		extractor: extractor,
		complete:  complete,
		opts:      opts,
		now:       time.Now,
		ctx:       ctx,
		cancel:    cancel,
	}
	s.CreatedAt = s.now().UTC()
	s.setStateLocked(noFileState())
	return s
}

// Drop offers a file to the session. Rejected files leave the state alone
// and raise an "Upload Error" notification. Accepted files are stored right
// away, the slide preview is built in the background.
func (s *Session) Drop(ctx context.Context, file uploads.Candidate, body io.Reader) error {
	s.mu.Lock()
	if err := s.checkLocked(); err != nil {
		s.mu.Unlock()
		return err
	}
	if !canDrop(s.state.Kind) {
		s.mu.Unlock()
		return fmt.Errorf("cannot drop a file in state %s: %w", s.state.Kind, ErrBusy)
	}
	if err := s.gate.Validate(file); err != nil {
		s.notifyLocked(VariantDestructive, titleUploadRejected, err.Error())
		s.mu.Unlock()
		return err
	}

	previous := s.state
	s.setStateLocked(uploadingState())
	s.wg.Add(1)
	s.mu.Unlock()

	stored, err := s.uploads.Upload(ctx, file.Name, body, file.Size, file.MimeType)
	if err != nil {
		defer s.wg.Done()
		slog.ErrorContext(ctx, "failed to store presentation", "session", s.ID, "file", file.Name, "error", err)

		s.mu.Lock()
		s.setStateLocked(previous)
		s.notifyLocked(VariantDestructive, titleUploadFailed, descUploadFailed)
		s.mu.Unlock()
		return fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	go s.process(previous, *stored)
	return nil
}

func (s *Session) process(previous State, file uploads.FileMetadata) {
	defer s.wg.Done()

	ctx, cancel := withOptionalTimeout(s.ctx, s.opts.ProcessingTimeout)
	list, err := s.extractor.Extract(ctx, file)
	cancel()

	s.mu.Lock()
	var orphan string
	if err != nil {
		slog.Warn("slide extraction failed", "session", s.ID, "file", file.Name, "error", err)
		orphan = file.Key
		s.setStateLocked(previous)
		s.notifyLocked(VariantDestructive, titleUploadFailed, descUploadFailed)
	} else {
		if previous.File != nil {
			orphan = previous.File.Key
		}
		s.setStateLocked(readyState(file, list))
		s.notifyLocked(VariantDefault, titleUploaded, fmt.Sprintf("Processing %s for slides", file.Name))
		slog.Info("presentation ready", "session", s.ID, "file", file.Name, "slides", len(list))
	}
	s.mu.Unlock()

	if orphan != "" {
		s.discard(orphan)
	}
}

// Submit validates in and, when a presentation is ready, hands the record to
// the Completer. Field errors come back without any state change.
func (s *Session) Submit(ctx context.Context, in metadata.Input) (metadata.FieldErrors, error) {
	s.mu.Lock()
	if err := s.checkLocked(); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	if s.state.Kind == StateNoFile {
		s.notifyLocked(VariantDestructive, titleMissingFile, descMissingFile)
		s.mu.Unlock()
		return nil, ErrMissingFile
	}
	if !canSubmit(s.state.Kind) {
		s.mu.Unlock()
		return nil, fmt.Errorf("cannot submit in state %s: %w", s.state.Kind, ErrBusy)
	}

	var record metadata.Record
	s.form.Fill(in)
	if errs := s.form.Submit(func(r metadata.Record) { record = r }); errs != nil {
		s.mu.Unlock()
		return errs, nil
	}

	ready := s.state
	s.setStateLocked(submittingState(ready, record))
	sub := Submission{Record: record, File: *ready.File, Slides: slices.Clone(ready.Slides)}
	s.wg.Add(1)
	defer s.wg.Done()
	s.mu.Unlock()

	cctx, cancel := withOptionalTimeout(ctx, s.opts.SubmitTimeout)
	projectID, err := s.complete(cctx, sub)
	cancel()

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		slog.ErrorContext(ctx, "project creation failed", "session", s.ID, "error", err)
		s.setStateLocked(ready)
		s.notifyLocked(VariantDestructive, titleCreateFailed, descCreateFailed)
		return nil, fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}

	s.setStateLocked(doneState(s.state, projectID))
	s.notifyLocked(VariantDefault, titleCreated, descCreated)
	slog.InfoContext(ctx, "project created", "session", s.ID, "project", projectID)
	return nil, nil
}

// DeleteSlide removes one slide from the preview of a ready session
func (s *Session) DeleteSlide(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkLocked(); err != nil {
		return err
	}
	if s.state.Kind != StateReady {
		return ErrNotReady
	}

	idx := slices.IndexFunc(s.state.Slides, func(sl slides.Slide) bool { return sl.ID == id })
	if idx < 0 {
		return fmt.Errorf("%w: %d", ErrSlideNotFound, id)
	}
	s.state.Slides = slices.Delete(slices.Clone(s.state.Slides), idx, idx+1)
	s.notifyLocked(VariantDefault, titleSlideDeleted, fmt.Sprintf("Slide %d has been removed", id))
	return nil
}

// State returns a copy of the current state
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state
	st.Slides = slices.Clone(st.Slides)
	return st
}

// Close cancels slide extraction and waits for in-flight work, including a
// running submission. The stored presentation is removed unless a project
// was created from it.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.cancel()
	s.mu.Unlock()

	s.wg.Wait()

	s.mu.Lock()
	var orphan string
	if s.state.Kind != StateDone && s.state.File != nil {
		orphan = s.state.File.Key
	}
	s.mu.Unlock()

	if orphan != "" {
		s.discard(orphan)
	}
}

func (s *Session) checkLocked() error {
	switch {
	case s.closed:
		return ErrSessionClosed
	case s.state.Kind == StateDone:
		return ErrFinished
	case s.state.Kind.busy():
		return ErrBusy
	}
	return nil
}

func (s *Session) setStateLocked(st State) {
	s.state = st
	s.form.SetDisabled(st.Kind != StateReady)
}

func (s *Session) notifyLocked(variant NotificationVariant, title, description string) {
	s.notifications = append(s.notifications, Notification{
		Variant:     variant,
		Title:       title,
		Description: description,
		CreatedAt:   s.now().UTC(),
	})
	if n := len(s.notifications); n > maxNotifications {
		s.notifications = slices.Clone(s.notifications[n-maxNotifications:])
	}
}

func (s *Session) discard(key string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(s.ctx), cleanupTimeout)
	defer cancel()
	if err := s.uploads.Remove(ctx, key); err != nil {
		slog.Warn("failed to remove unused presentation", "session", s.ID, "key", key, "error", err)
	}
}

func withOptionalTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

package creation

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/rhofkens/AI-presenter/internal/slides"
	"github.com/rhofkens/AI-presenter/internal/uploads"
)

// Manager keeps the live creation sessions in memory
type Manager struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session

	uploads   *uploads.UploadService
	extractor slides.Extractor
	complete  Completer
	opts      Options

	ctx    context.Context
	cancel context.CancelFunc
}

func NewManager(up *uploads.UploadService, extractor slides.Extractor, complete Completer, opts Options) *Manager {
	ctx, cancel := context.WithCancel(context.Background())
	return &Manager{
		sessions:  make(map[uuid.UUID]*Session),
		uploads:   up,
		extractor: extractor,
		complete:  complete,
		opts:      opts,
		ctx:       ctx,
		cancel:    cancel,
	}
}

func (m *Manager) Create() *Session {
	s := newSession(m.ctx, m.uploads, m.extractor, m.complete, m.opts)

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	slog.Info("creation session opened", "session", s.ID)
	return s
}

func (m *Manager) Get(id uuid.UUID) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Delete closes the session and forgets it
func (m *Manager) Delete(id uuid.UUID) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	s.Close()
	slog.Info("creation session closed", "session", id)
	return nil
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Close closes every session and waits for their background work
func (m *Manager) Close() {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[uuid.UUID]*Session)
	m.mu.Unlock()

	m.cancel()

	var wg sync.WaitGroup
	for _, s := range sessions {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Close()
		}()
	}
	wg.Wait()
	slog.Info("creation sessions closed", "count", len(sessions))
}

package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/rhofkens/AI-presenter/internal/catalog"
	"github.com/rhofkens/AI-presenter/internal/creation"
	"github.com/rhofkens/AI-presenter/internal/slides"
	"github.com/rhofkens/AI-presenter/utils"
)

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrInvalidSort     = errors.New("invalid sort order")
	// ErrActionUnavailable is returned for dashboard actions without a backend yet
	ErrActionUnavailable = errors.New("action not available")
)

// Action is a dashboard action on a single project
type Action string

const (
	ActionTranslate Action = "translate"
	ActionPlay      Action = "play"

	ActionLoad     Action = "load"
	ActionDelete   Action = "delete"
	ActionDownload Action = "download"
)

// listFailureMessage is shown when the dashboard cannot be loaded
const listFailureMessage = "Failed to load projects. Please try again."

// FailureMessage is the user-facing text shown when action fails
func (a Action) FailureMessage() string {
	return fmt.Sprintf("Failed to %s project. Please try again.", a)
}

// SourceFiles gives access to the stored source presentations
type SourceFiles interface {
	Remove(ctx context.Context, key string) error
	// URL returns a fresh link for key; presigned links expire
	URL(ctx context.Context, key string) (string, error)
}

type Service struct {
	store *Store
	files SourceFiles
}

func NewService(store *Store, files SourceFiles) *Service {
	return &Service{store: store, files: files}
}

// CreateFromSubmission persists a draft project for a completed creation
// session. It has the shape of creation.Completer.
func (s *Service) CreateFromSubmission(ctx context.Context, sub creation.Submission) (uuid.UUID, error) {
	record := sub.Record
	p := &Project{
		Title:       record.Title(),
		Description: record.Description(),
		Template:    record.Template().String(),
		Tags: lo.Map(record.Tags(), func(t catalog.TagType, _ int) string {
			return string(t)
		}),
		Status:         StatusDraft,
		SlideCount:     len(sub.Slides),
		Thumbnail:      thumbnail(sub.Slides),
		SourceFileName: sub.File.Name,
		SourceFileKey:  sub.File.Key,
		SourceFileURL:  sub.File.URL,
	}

	if err := s.store.Create(ctx, p); err != nil {
		return uuid.Nil, fmt.Errorf("failed to create project: %w", err)
	}

	slog.InfoContext(ctx, "project created", "projectID", p.ID, "title", p.Title, "template", p.Template)
	return p.ID, nil
}

func thumbnail(list []slides.Slide) string {
	for _, sl := range list {
		if sl.ImageURL != nil {
			return *sl.ImageURL
		}
	}
	return ""
}

// List returns a page of projects. An empty sort means newest first.
func (s *Service) List(ctx context.Context, sort string, offset, limit *int) (*ListResult, error) {
	order := SortOrder(sort)
	if order == "" {
		order = SortByDate
	}
	finalOffset, finalLimit := utils.GetPaginationParams(offset, limit)

	items, total, err := s.store.List(ctx, order, finalOffset, finalLimit)
	if err != nil {
		if errors.Is(err, ErrInvalidSort) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	for i := range items {
		s.refreshSourceURL(ctx, &items[i])
	}

	return &ListResult{
		TotalCount: total,
		Items:      items,
		Offset:     int64(finalOffset),
		Limit:      int64(finalLimit),
	}, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Project, error) {
	p, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.refreshSourceURL(ctx, p)
	return p, nil
}

// refreshSourceURL replaces the URL stored at creation time with a fresh one.
// The stored URL is kept when no new one can be made.
func (s *Service) refreshSourceURL(ctx context.Context, p *Project) {
	if s.files == nil || p.SourceFileKey == "" {
		return
	}
	url, err := s.files.URL(ctx, p.SourceFileKey)
	if err != nil {
		slog.WarnContext(ctx, "failed to refresh project source URL",
			"projectID", p.ID,
			"key", p.SourceFileKey,
			"error", err)
		return
	}
	p.SourceFileURL = url
}

// Delete removes the project and, best effort, its source presentation
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	p, err := s.store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	if s.files != nil && p.SourceFileKey != "" {
		if err := s.files.Remove(ctx, p.SourceFileKey); err != nil {
			slog.WarnContext(ctx, "failed to remove project source file",
				"projectID", id,
				"key", p.SourceFileKey,
				"error", err)
		}
	}

	slog.InfoContext(ctx, "project deleted", "projectID", id)
	return nil
}

// Download returns where the source presentation can be fetched
func (s *Service) Download(ctx context.Context, id uuid.UUID) (*DownloadResponse, error) {
	p, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.files == nil || p.SourceFileKey == "" {
		return &DownloadResponse{FileName: p.SourceFileName, URL: p.SourceFileURL}, nil
	}

	url, err := s.files.URL(ctx, p.SourceFileKey)
	if err != nil {
		return nil, fmt.Errorf("failed to generate download URL: %w", err)
	}
	return &DownloadResponse{FileName: p.SourceFileName, URL: url}, nil
}

// Run performs a dashboard action. Translation and playback have no
// backend yet, so both fail after checking the project exists.
func (s *Service) Run(ctx context.Context, id uuid.UUID, action Action) error {
	if _, err := s.store.GetByID(ctx, id); err != nil {
		return err
	}
	slog.WarnContext(ctx, "project action not available", "projectID", id, "action", action)
	return fmt.Errorf("%s: %w", action, ErrActionUnavailable)
}

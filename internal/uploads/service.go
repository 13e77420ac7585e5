package uploads

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// sniffLen is how much of the body is buffered for content detection
const sniffLen = 3072

// UploadService coordinates file uploads and manages metadata
type UploadService struct {
	Driver StorageDriver
}

func NewUploadService(driver StorageDriver) *UploadService {
	return &UploadService{Driver: driver}
}

// Upload handles the incoming file, saves it via driver, and returns metadata
func (s *UploadService) Upload(ctx context.Context, filename string, reader io.Reader, size int64, mime string) (*FileMetadata, error) {
	if mime == "" {
		mime = "application/octet-stream"
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(reader, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	head = head[:n]
	detected := mimetype.Detect(head).String()
	if !mimetype.EqualsAny(detected, mime) {
		slog.WarnContext(ctx, "declared content type differs from detected type",
			"filename", filename, "declared", mime, "detected", detected)
	}

	id := uuid.New()
	ext := strings.ToLower(filepath.Ext(filename))
	key := fmt.Sprintf("%s%s", id.String(), ext)

	body := io.MultiReader(bytes.NewReader(head), reader)
	if err := s.Driver.Save(ctx, key, body, mime); err != nil {
		return nil, fmt.Errorf("storage driver failed: %w", err)
	}

	url, err := s.URL(ctx, key)
	if err != nil {
		if delErr := s.Driver.Delete(ctx, key); delErr != nil {
			slog.WarnContext(ctx, "failed to cleanup orphaned file", "key", key, "error", delErr)
		}
		return nil, err
	}

	metadata := &FileMetadata{
		ID:               id,
		Name:             filename,
		Key:              key,
		URL:              url,
		Size:             size,
		MimeType:         mime,
		DetectedMimeType: detected,
	}

	slog.InfoContext(ctx, "file uploaded successfully", "id", id, "key", key, "size", size)
	return metadata, nil
}

// Download retrieves the file content and its MIME type
func (s *UploadService) Download(ctx context.Context, key string) (io.ReadCloser, string, error) {
	return s.Driver.Get(ctx, key)
}

// URL returns a link to a stored file. Drivers that presign issue a new,
// short-lived link on every call.
func (s *UploadService) URL(ctx context.Context, key string) (string, error) {
	url, err := s.Driver.GenerateURL(ctx, key, 0)
	if err != nil {
		return "", fmt.Errorf("failed to generate URL for %s: %w", key, err)
	}
	return url, nil
}

// Remove deletes a stored file
func (s *UploadService) Remove(ctx context.Context, key string) error {
	if err := s.Driver.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

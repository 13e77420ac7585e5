package uploads

import (
	"context"
	"io"
	"time"
)

// StorageDriver stores presentation binaries. Keys are opaque to drivers.
type StorageDriver interface {
	// Save writes body under key with the given content type
	Save(ctx context.Context, key string, body io.Reader, contentType string) error

	// Get streams the object back together with its content type
	Get(ctx context.Context, key string) (io.ReadCloser, string, error)

	// Delete removes the object; deleting a missing key is not an error
	Delete(ctx context.Context, key string) error

	// GenerateURL returns a URL the frontend can fetch the object from.
	// expires is only honoured by drivers that presign.
	GenerateURL(ctx context.Context, key string, expires time.Duration) (string, error)
}

package drivers

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
)

// MinioDriver stores presentations in a MinIO bucket
type MinioDriver struct {
	Client    *minio.Client
	Bucket    string
	PublicURL string
}

func NewMinioDriver(client *minio.Client, bucket, publicURL string) *MinioDriver {
	return &MinioDriver{
		Client:    client,
		Bucket:    bucket,
		PublicURL: strings.TrimSuffix(publicURL, "/"),
	}
}

// Save streams body with unknown length; minio switches to multipart
// uploads on its own.
func (d *MinioDriver) Save(ctx context.Context, key string, body io.Reader, contentType string) error {
	if contentType == "" {
		contentType = defaultContentType
	}
	_, err := d.Client.PutObject(ctx, d.Bucket, key, body, -1, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s to minio: %w", key, err)
	}
	return nil
}

func (d *MinioDriver) Get(ctx context.Context, key string) (io.ReadCloser, string, error) {
	obj, err := d.Client.GetObject(ctx, d.Bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, "", fmt.Errorf("failed to get %s from minio: %w", key, err)
	}

	// GetObject is lazy, Stat forces the request
	info, err := obj.Stat()
	if err != nil {
		obj.Close()
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, "", fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return nil, "", fmt.Errorf("failed to stat %s in minio: %w", key, err)
	}

	contentType := info.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}
	return obj, contentType, nil
}

func (d *MinioDriver) Delete(ctx context.Context, key string) error {
	if err := d.Client.RemoveObject(ctx, d.Bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete %s from minio: %w", key, err)
	}
	return nil
}

func (d *MinioDriver) GenerateURL(ctx context.Context, key string, expires time.Duration) (string, error) {
	if d.PublicURL != "" {
		return d.PublicURL + "/" + key, nil
	}

	if expires == 0 {
		expires = time.Hour
	}

	u, err := d.Client.PresignedGetObject(ctx, d.Bucket, key, expires, url.Values{})
	if err != nil {
		return "", fmt.Errorf("failed to presign URL: %w", err)
	}
	return u.String(), nil
}

package drivers

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFSDriver_DirectoryHashing(t *testing.T) {
	tempDir := t.TempDir()

	driver, err := NewLocalFSDriver(tempDir, "/api/uploads/")
	require.NoError(t, err)

	ctx := context.Background()
	key := "abcdef123456.pptx"
	content := []byte("slide deck")

	require.NoError(t, driver.Save(ctx, key, bytes.NewReader(content), "application/vnd.ms-powerpoint"))

	fullPath := filepath.Join(tempDir, "ab", "cd", key)
	_, err = os.Stat(fullPath)
	require.NoError(t, err, "file should live under the hashed path")

	reader, contentType, err := driver.Get(ctx, key)
	require.NoError(t, err)
	got, err := io.ReadAll(reader)
	require.NoError(t, err)
	reader.Close()
	assert.Equal(t, content, got)
	assert.Equal(t, "application/vnd.ms-powerpoint", contentType)

	url, err := driver.GenerateURL(ctx, key, 0)
	require.NoError(t, err)
	assert.Equal(t, "/api/uploads/"+key, url)

	require.NoError(t, driver.Delete(ctx, key))
	_, err = os.Stat(fullPath)
	assert.True(t, os.IsNotExist(err), "file still exists after deletion")
	_, err = os.Stat(fullPath + metaSuffix)
	assert.True(t, os.IsNotExist(err), "sidecar still exists after deletion")
}

func TestLocalFSDriver_MissingKey(t *testing.T) {
	driver, err := NewLocalFSDriver(t.TempDir(), "")
	require.NoError(t, err)

	_, _, err = driver.Get(context.Background(), "0000missing.ppt")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, driver.Delete(context.Background(), "0000missing.ppt"))
}

func TestLocalFSDriver_DefaultContentType(t *testing.T) {
	driver, err := NewLocalFSDriver(t.TempDir(), "")
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, driver.Save(ctx, "k1", bytes.NewReader([]byte("x")), ""))
	reader, contentType, err := driver.Get(ctx, "k1")
	require.NoError(t, err)
	reader.Close()
	assert.Equal(t, defaultContentType, contentType)

	url, err := driver.GenerateURL(ctx, "k1", 0)
	require.NoError(t, err)
	assert.Equal(t, "k1", url)
}

func TestLocalFSDriver_RejectsUnsafeKeys(t *testing.T) {
	driver, err := NewLocalFSDriver(t.TempDir(), "/api/uploads")
	require.NoError(t, err)
	ctx := context.Background()

	for _, key := range []string{"", "../escape.ppt", "a/b.ppt", ".hidden", "deck.pptx.meta"} {
		t.Run(key, func(t *testing.T) {
			err := driver.Save(ctx, key, bytes.NewReader(nil), "")
			assert.ErrorIs(t, err, ErrInvalidKey)

			_, _, err = driver.Get(ctx, key)
			assert.ErrorIs(t, err, ErrInvalidKey)

			_, err = driver.GenerateURL(ctx, key, 0)
			assert.ErrorIs(t, err, ErrInvalidKey)
		})
	}
}

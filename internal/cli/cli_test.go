package cli

import (
	"archive/zip"
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCommand(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// writePPTX writes a minimal OOXML presentation package
func writePPTX(t *testing.T, path string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, name := range []string{"[Content_Types].xml", "_rels/.rels", "ppt/presentation.xml", "ppt/slides/slide1.xml"} {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte("<xml/>"))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
}

func TestCheck_AcceptsPresentation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.pptx")
	writePPTX(t, path)

	out, err := run(t, "check", path)
	require.NoError(t, err)
	assert.Contains(t, out, "ACCEPTED  deck.pptx (application/vnd.openxmlformats-officedocument.presentationml.presentation")
}

func TestCheck_RejectsOtherFiles(t *testing.T) {
	dir := t.TempDir()
	notes := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(notes, []byte("just text"), 0o644))

	out, err := run(t, "check", notes, filepath.Join(dir, "missing.pptx"), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "3 of 3 file(s) rejected")
	assert.Contains(t, out, "REJECTED  notes.txt: Only PowerPoint files (PPT/PPTX) are allowed")
	assert.Contains(t, out, "REJECTED  missing.pptx:")
}

func TestCheck_RequiresArguments(t *testing.T) {
	_, err := run(t, "check")
	assert.Error(t, err)
}

func TestHealth_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/health", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"OK","timestamp":"2024-03-09T14:05:07"}`))
	}))
	defer srv.Close()

	out, err := run(t, "health", "--url", srv.URL+"/")
	require.NoError(t, err)
	assert.Equal(t, "Backend status: OK (2024-03-09T14:05:07)\n", out)
}

func TestHealth_Down(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	out, err := run(t, "health", "--url", srv.URL)
	assert.ErrorIs(t, err, ErrBackendUnavailable)
	assert.Equal(t, "Backend connection failed\n", out)
}

func TestHealth_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := run(t, "health", "--url", url, "--timeout", "500ms")
	assert.ErrorIs(t, err, ErrBackendUnavailable)
}

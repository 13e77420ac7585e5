package uploads

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/rhofkens/AI-presenter/internal/httputil"
	"github.com/rhofkens/AI-presenter/internal/uploads/drivers"
)

var (
	ErrNotFound   = drivers.ErrNotFound
	ErrInvalidKey = drivers.ErrInvalidKey
)

type HTTPHandler struct {
	Service *UploadService
}

func NewHTTPHandler(service *UploadService) *HTTPHandler {
	return &HTTPHandler{Service: service}
}

// Download handles GET /api/uploads/{key}
func (h *HTTPHandler) Download(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	if key == "" {
		httputil.WriteJSONError(w, http.StatusBadRequest, "key is required")
		return
	}

	reader, contentType, err := h.Service.Download(r.Context(), key)
	switch {
	case errors.Is(err, ErrNotFound):
		httputil.WriteJSONError(w, http.StatusNotFound, "file not found")
		return
	case errors.Is(err, ErrInvalidKey):
		httputil.WriteJSONError(w, http.StatusBadRequest, "invalid key")
		return
	case err != nil:
		slog.ErrorContext(r.Context(), "download failed", "key", key, "error", err)
		httputil.WriteJSONError(w, http.StatusInternalServerError, "download failed")
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+key+`"`)
	if _, err := io.Copy(w, reader); err != nil {
		slog.WarnContext(r.Context(), "download interrupted", "key", key, "error", err)
	}
}

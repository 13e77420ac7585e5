package creation

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"strconv"

	"github.com/google/uuid"

	"github.com/rhofkens/AI-presenter/internal/httputil"
	"github.com/rhofkens/AI-presenter/internal/metadata"
	"github.com/rhofkens/AI-presenter/internal/uploads"
)

// multipartOverhead leaves room for boundaries, headers and small fields
// around the file part
const multipartOverhead = 1 << 20

// ValidationErrorResponse carries one message per failing field
type ValidationErrorResponse struct {
	Errors metadata.FieldErrors `json:"errors"`
}

type Router struct {
	manager *Manager
}

func NewRouter(manager *Manager) *Router {
	return &Router{manager: manager}
}

// sessionFromPath resolves {sessionID}; on failure the response is written
func (rt *Router) sessionFromPath(w http.ResponseWriter, r *http.Request) (*Session, bool) {
	id, err := uuid.Parse(r.PathValue("sessionID"))
	if err != nil {
		httputil.WriteJSONError(w, http.StatusBadRequest, "invalid sessionID format")
		return nil, false
	}
	s, err := rt.manager.Get(id)
	if err != nil {
		httputil.WriteJSONError(w, http.StatusNotFound, "Session not found")
		return nil, false
	}
	return s, true
}

// HandleCreateSession handles POST /api/sessions
func (rt *Router) HandleCreateSession(w http.ResponseWriter, r *http.Request) {
	s := rt.manager.Create()
	httputil.WriteJSONResponse(w, http.StatusCreated, s.Snapshot())
}

// HandleGetSession handles GET /api/sessions/{sessionID}
func (rt *Router) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	s, ok := rt.sessionFromPath(w, r)
	if !ok {
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, s.Snapshot())
}

// HandleDeleteSession handles DELETE /api/sessions/{sessionID}
func (rt *Router) HandleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("sessionID"))
	if err != nil {
		httputil.WriteJSONError(w, http.StatusBadRequest, "invalid sessionID format")
		return
	}
	if err := rt.manager.Delete(id); err != nil {
		httputil.WriteJSONError(w, http.StatusNotFound, "Session not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleUpload handles POST /api/sessions/{sessionID}/upload
// Request body: multipart form with a "file" part
// Response: 202 with the session snapshot; slides follow once processing ends
func (rt *Router) HandleUpload(w http.ResponseWriter, r *http.Request) {
	s, ok := rt.sessionFromPath(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, uploads.MaxFileSize+multipartOverhead)
	mr, err := r.MultipartReader()
	if err != nil {
		httputil.WriteJSONError(w, http.StatusBadRequest, "failed to parse form")
		return
	}
	part, err := nextFilePart(mr)
	if err != nil {
		writeBodyError(w, err, "file is required")
		return
	}
	defer part.Close()

	candidate := uploads.Candidate{
		Name:     part.FileName(),
		MimeType: part.Header.Get("Content-Type"),
		Size:     r.ContentLength,
	}

	// the type decides before a single byte of the file is read
	if !uploads.IsAcceptedType(candidate.MimeType) {
		if err := s.Drop(r.Context(), candidate, http.NoBody); err != nil {
			writeSessionError(w, r, err)
			return
		}
	}

	spool, err := os.CreateTemp("", "presentation-*")
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to create upload spool file", "error", err)
		httputil.WriteJSONError(w, http.StatusInternalServerError, descUploadFailed)
		return
	}
	defer func() {
		spool.Close()
		os.Remove(spool.Name())
	}()

	// one byte past the ceiling is enough for the gate to reject the size
	n, err := io.CopyN(spool, part, uploads.MaxFileSize+1)
	if err != nil && !errors.Is(err, io.EOF) {
		writeBodyError(w, err, "failed to read file")
		return
	}
	if _, err := spool.Seek(0, io.SeekStart); err != nil {
		slog.ErrorContext(r.Context(), "failed to rewind upload spool file", "error", err)
		httputil.WriteJSONError(w, http.StatusInternalServerError, descUploadFailed)
		return
	}
	candidate.Size = n

	if err := s.Drop(r.Context(), candidate, spool); err != nil {
		writeSessionError(w, r, err)
		return
	}

	httputil.WriteJSONResponse(w, http.StatusAccepted, s.Snapshot())
}

// nextFilePart skips to the "file" part; io.EOF means there is none
func nextFilePart(mr *multipart.Reader) (*multipart.Part, error) {
	for {
		part, err := mr.NextPart()
		if err != nil {
			return nil, err
		}
		if part.FormName() == "file" && part.FileName() != "" {
			return part, nil
		}
		part.Close()
	}
}

// writeBodyError answers a failure while reading the request body
func writeBodyError(w http.ResponseWriter, err error, message string) {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		httputil.WriteJSONError(w, http.StatusRequestEntityTooLarge, "request body too large")
		return
	}
	httputil.WriteJSONError(w, http.StatusBadRequest, message)
}

// HandleSubmit handles POST /api/sessions/{sessionID}/metadata
// Request body: metadata.Input
// Response: 201 with the session snapshot, 422 with field errors
func (rt *Router) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	s, ok := rt.sessionFromPath(w, r)
	if !ok {
		return
	}

	var in metadata.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httputil.WriteJSONError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	fieldErrs, err := s.Submit(r.Context(), in)
	if err != nil {
		writeSessionError(w, r, err)
		return
	}
	if fieldErrs != nil {
		httputil.WriteJSONResponse(w, http.StatusUnprocessableEntity, ValidationErrorResponse{Errors: fieldErrs})
		return
	}

	httputil.WriteJSONResponse(w, http.StatusCreated, s.Snapshot())
}

// HandleDeleteSlide handles DELETE /api/sessions/{sessionID}/slides/{slideID}
func (rt *Router) HandleDeleteSlide(w http.ResponseWriter, r *http.Request) {
	s, ok := rt.sessionFromPath(w, r)
	if !ok {
		return
	}

	slideID, err := strconv.Atoi(r.PathValue("slideID"))
	if err != nil {
		httputil.WriteJSONError(w, http.StatusBadRequest, "invalid slideID format")
		return
	}

	if err := s.DeleteSlide(slideID); err != nil {
		writeSessionError(w, r, err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, s.Snapshot())
}

func writeSessionError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, uploads.ErrUnsupportedType), errors.Is(err, uploads.ErrFileTooLarge):
		httputil.WriteJSONError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, ErrMissingFile):
		httputil.WriteJSONError(w, http.StatusConflict, descMissingFile)
	case errors.Is(err, ErrBusy), errors.Is(err, ErrFinished), errors.Is(err, ErrNotReady):
		httputil.WriteJSONError(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrSlideNotFound):
		httputil.WriteJSONError(w, http.StatusNotFound, "Slide not found")
	case errors.Is(err, ErrSessionClosed):
		httputil.WriteJSONError(w, http.StatusGone, err.Error())
	case errors.Is(err, ErrUploadFailed):
		httputil.WriteJSONError(w, http.StatusInternalServerError, descUploadFailed)
	case errors.Is(err, ErrSubmitFailed):
		httputil.WriteJSONError(w, http.StatusInternalServerError, descCreateFailed)
	default:
		slog.ErrorContext(r.Context(), "unexpected session error", "error", err)
		httputil.WriteJSONError(w, http.StatusInternalServerError, "internal error")
	}
}

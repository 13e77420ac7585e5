package project

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/rhofkens/AI-presenter/internal/httputil"
	"github.com/rhofkens/AI-presenter/utils"
)

type Router struct {
	service *Service
}

func NewRouter(service *Service) *Router {
	return &Router{service: service}
}

func parseProjectID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("projectID"))
	if err != nil {
		httputil.WriteJSONError(w, http.StatusBadRequest, "invalid projectID format")
		return uuid.Nil, false
	}
	return id, true
}

// HandleList handles GET /api/projects?sort={date|name|status}&offset={offset}&limit={limit}
func (rt *Router) HandleList(w http.ResponseWriter, r *http.Request) {
	offset, limit, err := utils.PageQuery(r.URL.Query())
	if err != nil {
		httputil.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := rt.service.List(r.Context(), r.URL.Query().Get("sort"), offset, limit)
	if err != nil {
		if errors.Is(err, ErrInvalidSort) {
			httputil.WriteJSONError(w, http.StatusBadRequest, "invalid 'sort' query parameter, must be one of date, name, status")
			return
		}
		slog.ErrorContext(r.Context(), "failed to list projects", "error", err)
		httputil.WriteJSONError(w, http.StatusInternalServerError, listFailureMessage)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, result)
}

// HandleGet handles GET /api/projects/{projectID}
func (rt *Router) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := parseProjectID(w, r)
	if !ok {
		return
	}
	p, err := rt.service.Get(r.Context(), id)
	if err != nil {
		writeProjectError(w, r, err, ActionLoad.FailureMessage())
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, p)
}

// HandleDelete handles DELETE /api/projects/{projectID}
func (rt *Router) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseProjectID(w, r)
	if !ok {
		return
	}
	if err := rt.service.Delete(r.Context(), id); err != nil {
		writeProjectError(w, r, err, ActionDelete.FailureMessage())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleDownload handles GET /api/projects/{projectID}/download
func (rt *Router) HandleDownload(w http.ResponseWriter, r *http.Request) {
	id, ok := parseProjectID(w, r)
	if !ok {
		return
	}
	resp, err := rt.service.Download(r.Context(), id)
	if err != nil {
		writeProjectError(w, r, err, ActionDownload.FailureMessage())
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, resp)
}

// HandleAction returns the handler for POST /api/projects/{projectID}/<action>
func (rt *Router) HandleAction(action Action) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseProjectID(w, r)
		if !ok {
			return
		}
		err := rt.service.Run(r.Context(), id, action)
		if errors.Is(err, ErrActionUnavailable) {
			httputil.WriteJSONError(w, http.StatusNotImplemented, action.FailureMessage())
			return
		}
		if err != nil {
			writeProjectError(w, r, err, action.FailureMessage())
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeProjectError(w http.ResponseWriter, r *http.Request, err error, message string) {
	if errors.Is(err, ErrProjectNotFound) {
		httputil.WriteJSONError(w, http.StatusNotFound, "Project not found")
		return
	}
	slog.ErrorContext(r.Context(), message, "error", err)
	httputil.WriteJSONError(w, http.StatusInternalServerError, message)
}

package httputil

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorResponse is the body of every plain API failure
type ErrorResponse struct {
	Error string `json:"error"`
}

// RouteError is returned for API paths no route matched
type RouteError struct {
	Status int    `json:"status"`
	Error  string `json:"error"`
	Path   string `json:"path"`
}

// WriteJSONResponse writes data as JSON with the given status
func WriteJSONResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// WriteJSONError writes {"error": message}
func WriteJSONError(w http.ResponseWriter, status int, message string) {
	WriteJSONResponse(w, status, ErrorResponse{Error: message})
}

// WriteRouteError writes the status, its reason phrase and the request path
func WriteRouteError(w http.ResponseWriter, r *http.Request, status int) {
	WriteJSONResponse(w, status, RouteError{
		Status: status,
		Error:  http.StatusText(status),
		Path:   r.URL.Path,
	})
}

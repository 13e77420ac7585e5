package health

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/rhofkens/AI-presenter/internal/httputil"
)

const (
	StatusOK   = "OK"
	StatusDown = "DOWN"

	// timestampLayout is an ISO-8601 local date-time without zone
	timestampLayout = "2006-01-02T15:04:05"
)

// Checker reports whether a backing dependency answers
type Checker func(ctx context.Context) error

type Response struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type Handler struct {
	check Checker
	now   func() time.Time
}

// NewHandler returns a health handler; a nil check always reports OK
func NewHandler(check Checker) *Handler {
	return &Handler{check: check, now: time.Now}
}

// HandleHealth handles GET /api/health and GET /health
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	resp := Response{Status: StatusOK, Timestamp: h.now().Format(timestampLayout)}
	status := http.StatusOK

	if h.check != nil {
		if err := h.check(r.Context()); err != nil {
			slog.WarnContext(r.Context(), "health check failed", "error", err)
			resp.Status = StatusDown
			status = http.StatusServiceUnavailable
		}
	}

	httputil.WriteJSONResponse(w, status, resp)
}

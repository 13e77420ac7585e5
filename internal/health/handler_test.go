package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHandleHealth(t *testing.T) {
	fixed := time.Date(2024, 3, 9, 14, 5, 7, 123, time.Local)

	tests := []struct {
		name       string
		check      Checker
		wantStatus int
		wantBody   string
	}{
		{
			name:       "no dependency",
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"OK","timestamp":"2024-03-09T14:05:07"}`,
		},
		{
			name:       "database up",
			check:      func(context.Context) error { return nil },
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"OK","timestamp":"2024-03-09T14:05:07"}`,
		},
		{
			name:       "database down",
			check:      func(context.Context) error { return errors.New("connection refused") },
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"status":"DOWN","timestamp":"2024-03-09T14:05:07"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(tt.check)
			h.now = func() time.Time { return fixed }

			rec := httptest.NewRecorder()
			h.HandleHealth(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

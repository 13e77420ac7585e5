package project

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) (*Service, *http.ServeMux) {
	t.Helper()
	svc := NewService(setupStore(t), nil)
	rt := NewRouter(svc)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/projects", rt.HandleList)
	mux.HandleFunc("GET /api/projects/{projectID}", rt.HandleGet)
	mux.HandleFunc("DELETE /api/projects/{projectID}", rt.HandleDelete)
	mux.HandleFunc("GET /api/projects/{projectID}/download", rt.HandleDownload)
	mux.HandleFunc("POST /api/projects/{projectID}/translate", rt.HandleAction(ActionTranslate))
	mux.HandleFunc("POST /api/projects/{projectID}/play", rt.HandleAction(ActionPlay))
	return svc, mux
}

func serve(mux *http.ServeMux, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestRouter_ListAndGet(t *testing.T) {
	svc, mux := setupRouter(t)
	id, err := svc.CreateFromSubmission(context.Background(), submission(t, "Kickoff"))
	require.NoError(t, err)

	rec := serve(mux, http.MethodGet, "/api/projects?sort=name&limit=5")
	require.Equal(t, http.StatusOK, rec.Code)

	var list ListResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&list))
	assert.Equal(t, int64(1), list.TotalCount)
	assert.Equal(t, int64(5), list.Limit)
	require.Len(t, list.Items, 1)
	assert.Equal(t, id, list.Items[0].ID)

	rec = serve(mux, http.MethodGet, "/api/projects/"+id.String())
	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "Kickoff", body["title"])
	assert.Equal(t, "draft", body["status"])
	assert.NotContains(t, body, "sourceFileKey")
}

func TestRouter_BadRequests(t *testing.T) {
	_, mux := setupRouter(t)

	tests := []struct {
		name   string
		method string
		target string
		status int
	}{
		{"bad sort", http.MethodGet, "/api/projects?sort=likes", http.StatusBadRequest},
		{"bad limit", http.MethodGet, "/api/projects?limit=ten", http.StatusBadRequest},
		{"bad offset", http.MethodGet, "/api/projects?offset=-x", http.StatusBadRequest},
		{"bad id", http.MethodGet, "/api/projects/123", http.StatusBadRequest},
		{"unknown project", http.MethodGet, "/api/projects/" + uuid.NewString(), http.StatusNotFound},
		{"delete unknown", http.MethodDelete, "/api/projects/" + uuid.NewString(), http.StatusNotFound},
		{"download unknown", http.MethodGet, "/api/projects/" + uuid.NewString() + "/download", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, serve(mux, tt.method, tt.target).Code)
		})
	}
}

func TestRouter_DeleteAndDownload(t *testing.T) {
	svc, mux := setupRouter(t)
	id, err := svc.CreateFromSubmission(context.Background(), submission(t, "Kickoff"))
	require.NoError(t, err)

	rec := serve(mux, http.MethodGet, "/api/projects/"+id.String()+"/download")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"fileName":"Kickoff.pptx","url":"/api/uploads/Kickoff.pptx"}`, rec.Body.String())

	rec = serve(mux, http.MethodDelete, "/api/projects/"+id.String())
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = serve(mux, http.MethodGet, "/api/projects/"+id.String())
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Project not found"}`, rec.Body.String())
}

func TestRouter_ActionsReportFailure(t *testing.T) {
	svc, mux := setupRouter(t)
	id, err := svc.CreateFromSubmission(context.Background(), submission(t, "Kickoff"))
	require.NoError(t, err)

	rec := serve(mux, http.MethodPost, "/api/projects/"+id.String()+"/translate")
	assert.Equal(t, http.StatusNotImplemented, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to translate project. Please try again."}`, rec.Body.String())

	rec = serve(mux, http.MethodPost, "/api/projects/"+id.String()+"/play")
	assert.Equal(t, http.StatusNotImplemented, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to play project. Please try again."}`, rec.Body.String())

	rec = serve(mux, http.MethodPost, "/api/projects/"+uuid.NewString()+"/play")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_DatabaseFailureMessages(t *testing.T) {
	svc, mux := setupRouter(t)
	sqlDB, err := svc.store.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	id := uuid.NewString()
	tests := []struct {
		name   string
		method string
		target string
		body   string
	}{
		{"list", http.MethodGet, "/api/projects", `{"error":"Failed to load projects. Please try again."}`},
		{"get", http.MethodGet, "/api/projects/" + id, `{"error":"Failed to load project. Please try again."}`},
		{"delete", http.MethodDelete, "/api/projects/" + id, `{"error":"Failed to delete project. Please try again."}`},
		{"download", http.MethodGet, "/api/projects/" + id + "/download", `{"error":"Failed to download project. Please try again."}`},
		{"translate", http.MethodPost, "/api/projects/" + id + "/translate", `{"error":"Failed to translate project. Please try again."}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(mux, tt.method, tt.target)
			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}

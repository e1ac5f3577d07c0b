package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/biographer-ai/core/internal/config"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg := &config.AppConfig{
		Port: 8000,
		Env:  "production",
		Database: config.DatabaseRuntimeConfig{
			Path: filepath.Join(t.TempDir(), "test.db"),
		},
	}
	a, err := New(zap.NewNop(), cfg)
	require.NoError(t, err)
	return a
}

func do(a *App, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	a.Router().ServeHTTP(w, req)
	return w
}

func TestLiveness(t *testing.T) {
	a := newTestApp(t)
	w := do(a, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Biographer AI Backend Running")
}

func TestNoRouteAndNoMethod(t *testing.T) {
	a := newTestApp(t)

	w := do(a, http.MethodGet, "/does-not-exist", "")
	require.Equal(t, http.StatusNotFound, w.Code)

	w = do(a, http.MethodPatch, "/qa", "")
	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestRequestIDHeader(t *testing.T) {
	a := newTestApp(t)
	w := do(a, http.MethodGet, "/", "")
	require.NotEmpty(t, w.Header().Get("X-Request-Id"))
}

func TestInterviewFlow(t *testing.T) {
	a := newTestApp(t)

	w := do(a, http.MethodPost, "/question/generate", `{"customQuestion":"What drives you?"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var created struct {
		ID       uint   `json:"id"`
		Question string `json:"question"`
		IsCustom bool   `json:"isCustom"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Equal(t, "What drives you?", created.Question)
	require.True(t, created.IsCustom)

	w = do(a, http.MethodPost, "/answer", `{"qaId":`+jsonUint(created.ID)+`,"answer":"Curiosity."}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(a, http.MethodGet, "/qa", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Curiosity.")

	w = do(a, http.MethodGet, "/database/stats", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"totalQuestions":1`)
	require.Contains(t, w.Body.String(), `"answeredQuestions":1`)
}

func TestGenerateWithoutConfig(t *testing.T) {
	a := newTestApp(t)
	w := do(a, http.MethodPost, "/question/generate", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "LLM not configured")
}

func TestExportDownloadHeader(t *testing.T) {
	a := newTestApp(t)
	w := do(a, http.MethodGet, "/database/export", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	require.Contains(t, w.Header().Get("Content-Disposition"), "biographer-export-")
}

func jsonUint(v uint) string {
	b, _ := json.Marshal(v)
	return string(b)
}

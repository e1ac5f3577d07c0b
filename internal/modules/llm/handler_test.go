package llm

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := NewService(openTestDB(t), NewClient())
	NewHandler(svc).RegisterRoutes(r.Group(""))
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetModelsKnownProvider(t *testing.T) {
	r := newTestRouter(t)
	w := doRequest(r, http.MethodGet, "/models/claude", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "claude-3-5-sonnet-20241022")
}

func TestGetModelsUnknownProvider(t *testing.T) {
	r := newTestRouter(t)
	w := doRequest(r, http.MethodGet, "/models/gemini", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "unsupported provider")
}

func TestSetConfigEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, http.MethodPost, "/config/llm",
		`{"provider":"chatgpt","model":"gpt-4o","apiKey":"sk-test"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "LLM configuration saved")

	w = doRequest(r, http.MethodPost, "/config/llm",
		`{"provider":"chatgpt","model":"not-a-model","apiKey":"sk-test"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(r, http.MethodPost, "/config/llm", `{"provider":"chatgpt"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetConfigMasksKey(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, http.MethodGet, "/config/llm", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"configured":false`)

	doRequest(r, http.MethodPost, "/config/llm",
		`{"provider":"claude","model":"claude-3-opus-20240229","apiKey":"sk-very-secret"}`)

	w = doRequest(r, http.MethodGet, "/config/llm", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"configured":true`)
	require.Contains(t, w.Body.String(), "claude-3-opus-20240229")
	require.NotContains(t, w.Body.String(), "sk-very-secret")
}

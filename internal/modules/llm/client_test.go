package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestClient(provider, url string) *Client {
	c := NewClient()
	c.endpoints[provider] = url
	return c
}

func TestInvokeChatGPT(t *testing.T) {
	var gotAuth, gotContentType string
	var gotBody map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"  What was your childhood like?  "}}]}`))
	}))
	defer srv.Close()

	c := newTestClient(ProviderChatGPT, srv.URL)
	got, err := c.Invoke(context.Background(), ProviderChatGPT, "gpt-4o", "sk-test", "hello", QuestionMaxTokens)
	require.NoError(t, err)
	require.Equal(t, "What was your childhood like?", got)

	require.Equal(t, "Bearer sk-test", gotAuth)
	require.Equal(t, "application/json", gotContentType)
	require.Equal(t, "gpt-4o", gotBody["model"])
	require.Equal(t, float64(500), gotBody["max_tokens"])
	require.Equal(t, 0.7, gotBody["temperature"])

	messages := gotBody["messages"].([]interface{})
	require.Len(t, messages, 1)
	msg := messages[0].(map[string]interface{})
	require.Equal(t, "user", msg["role"])
	require.Equal(t, "hello", msg["content"])
}

func TestInvokeClaude(t *testing.T) {
	var gotKey, gotVersion string
	var gotBody map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-api-key")
		gotVersion = r.Header.Get("anthropic-version")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"content":[{"text":"Tell me about your hometown."}]}`))
	}))
	defer srv.Close()

	c := newTestClient(ProviderClaude, srv.URL)
	got, err := c.Invoke(context.Background(), ProviderClaude, "claude-3-5-sonnet-20241022", "sk-ant", "hello", GenerationMaxTokens)
	require.NoError(t, err)
	require.Equal(t, "Tell me about your hometown.", got)

	require.Equal(t, "sk-ant", gotKey)
	require.Equal(t, "2023-06-01", gotVersion)
	require.Equal(t, float64(2000), gotBody["max_tokens"])
	_, hasTemperature := gotBody["temperature"]
	require.False(t, hasTemperature)
}

func TestInvokeOpenRouter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer sk-or", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	}))
	defer srv.Close()

	c := newTestClient(ProviderOpenRouter, srv.URL)
	got, err := c.Invoke(context.Background(), ProviderOpenRouter, "openai/gpt-4", "sk-or", "hello", QuestionMaxTokens)
	require.NoError(t, err)
	require.Equal(t, "ok", got)
}

func TestInvokeUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := newTestClient(ProviderChatGPT, srv.URL)
	_, err := c.Invoke(context.Background(), ProviderChatGPT, "gpt-4o", "bad-key", "hello", QuestionMaxTokens)
	require.Error(t, err)

	var upErr *UpstreamError
	require.True(t, errors.As(err, &upErr))
	require.Equal(t, ProviderChatGPT, upErr.Provider)
	require.Equal(t, http.StatusUnauthorized, upErr.Status)
	require.Contains(t, err.Error(), "chatgpt API call failed with status 401")
}

func TestInvokeEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c := newTestClient(ProviderChatGPT, srv.URL)
	_, err := c.Invoke(context.Background(), ProviderChatGPT, "gpt-4o", "sk-test", "hello", QuestionMaxTokens)

	var upErr *UpstreamError
	require.True(t, errors.As(err, &upErr))
	require.Equal(t, http.StatusOK, upErr.Status)
}

func TestInvokeUnknownProvider(t *testing.T) {
	c := NewClient()
	_, err := c.Invoke(context.Background(), "gemini", "gemini-pro", "key", "hello", QuestionMaxTokens)
	require.ErrorIs(t, err, ErrInvalidProvider)
}

package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"
)

// Token budgets for the two call sizes.
const (
	QuestionMaxTokens   = 500
	GenerationMaxTokens = 2000
)

// Client dispatches a single prompt to the configured provider and returns
// the completion text. Each provider speaks its own wire format; no retries.
type Client struct {
	httpClient *http.Client
	endpoints  map[string]string
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		endpoints: map[string]string{
			ProviderChatGPT:    "https://api.openai.com/v1/chat/completions",
			ProviderClaude:     "https://api.anthropic.com/v1/messages",
			ProviderOpenRouter: "https://openrouter.ai/api/v1/chat/completions",
		},
	}
}

// Invoke sends prompt to the given provider and returns the trimmed completion.
func (c *Client) Invoke(ctx context.Context, provider, model, apiKey, prompt string, maxTokens int) (string, error) {
	switch provider {
	case ProviderChatGPT, ProviderOpenRouter:
		return c.invokeChatCompletions(ctx, provider, model, apiKey, prompt, maxTokens)
	case ProviderClaude:
		return c.invokeClaude(ctx, model, apiKey, prompt, maxTokens)
	default:
		return "", ErrInvalidProvider
	}
}

// invokeChatCompletions covers the OpenAI-style chat completions wire format
// shared by chatgpt and openrouter.
func (c *Client) invokeChatCompletions(ctx context.Context, provider, model, apiKey, prompt string, maxTokens int) (string, error) {
	body, _ := json.Marshal(map[string]interface{}{
		"model": model,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
		"max_tokens":  maxTokens,
		"temperature": 0.7,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoints[provider], bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	respBody, err := c.do(req, provider)
	if err != nil {
		return "", err
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", err
	}
	if len(result.Choices) == 0 {
		return "", &UpstreamError{Provider: provider, Status: http.StatusOK}
	}
	return strings.TrimSpace(result.Choices[0].Message.Content), nil
}

// invokeClaude speaks the Anthropic messages format: key and version travel in
// headers and the body carries no temperature field.
func (c *Client) invokeClaude(ctx context.Context, model, apiKey, prompt string, maxTokens int) (string, error) {
	body, _ := json.Marshal(map[string]interface{}{
		"model":      model,
		"max_tokens": maxTokens,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoints[ProviderClaude], bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("x-api-key", apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")
	req.Header.Set("Content-Type", "application/json")

	respBody, err := c.do(req, ProviderClaude)
	if err != nil {
		return "", err
	}

	var result struct {
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", err
	}
	if len(result.Content) == 0 {
		return "", &UpstreamError{Provider: ProviderClaude, Status: http.StatusOK}
	}
	return strings.TrimSpace(result.Content[0].Text), nil
}

func (c *Client) do(req *http.Request, provider string) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{Provider: provider, Status: resp.StatusCode}
	}
	return io.ReadAll(resp.Body)
}

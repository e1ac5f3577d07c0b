package llm

import (
	"errors"
	"fmt"
)

// Provider tags. The set is closed; unknown tags are rejected at config time.
const (
	ProviderChatGPT    = "chatgpt"
	ProviderClaude     = "claude"
	ProviderOpenRouter = "openrouter"
)

var (
	ErrNotConfigured   = errors.New("no LLM provider configured")
	ErrInvalidProvider = errors.New("unsupported provider")
	ErrInvalidModel    = errors.New("unsupported model for provider")
)

// UpstreamError reports a non-2xx reply from a provider API.
type UpstreamError struct {
	Provider string
	Status   int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s API call failed with status %d", e.Provider, e.Status)
}

// providerModels is the static catalog of allowed models per provider.
var providerModels = map[string][]string{
	ProviderChatGPT: {
		"gpt-4o",
		"gpt-4o-mini",
		"gpt-4",
		"gpt-4-turbo",
		"gpt-3.5-turbo",
	},
	ProviderClaude: {
		"claude-3-5-sonnet-20241022",
		"claude-3-opus-20240229",
		"claude-3-haiku-20240307",
	},
	ProviderOpenRouter: {
		"anthropic/claude-3.5-sonnet",
		"openai/gpt-4",
		"meta-llama/llama-3.1-405b-instruct",
	},
}

// ModelsFor returns the allowed models for a provider tag.
func ModelsFor(provider string) ([]string, bool) {
	ms, ok := providerModels[provider]
	if !ok {
		return nil, false
	}
	out := make([]string, len(ms))
	copy(out, ms)
	return out, true
}

// QA is one question/answer pair of interview history, newest first in slices.
type QA struct {
	Question string
	Answer   string
}

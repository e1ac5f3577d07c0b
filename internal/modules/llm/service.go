package llm

import (
	"context"
	"errors"

	"github.com/biographer-ai/core/internal/models"
	"gorm.io/gorm"
)

// Service persists the provider config singleton and runs generation calls
// against whatever provider is currently stored.
type Service struct {
	db     *gorm.DB
	client *Client
}

func NewService(db *gorm.DB, client *Client) *Service {
	return &Service{db: db, client: client}
}

// SetConfig validates the provider/model pair against the static catalog and
// upserts the singleton row. No call is made to the upstream provider; a bad
// key only surfaces at generation time.
func (s *Service) SetConfig(provider, model, apiKey string) error {
	allowed, ok := ModelsFor(provider)
	if !ok {
		return ErrInvalidProvider
	}
	valid := false
	for _, m := range allowed {
		if m == model {
			valid = true
			break
		}
	}
	if !valid {
		return ErrInvalidModel
	}

	cfg := models.LLMConfigModel{
		ID:       models.LLMConfigID,
		Provider: provider,
		Model:    model,
		APIKey:   apiKey,
	}
	return s.db.Save(&cfg).Error
}

// GetConfig returns the stored config, or nil when none has been saved.
func (s *Service) GetConfig() (*models.LLMConfigModel, error) {
	var cfg models.LLMConfigModel
	if err := s.db.First(&cfg, "id = ?", models.LLMConfigID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cfg, nil
}

// Generate dispatches prompt to the configured provider.
// Returns ErrNotConfigured when no config row exists.
func (s *Service) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	cfg, err := s.GetConfig()
	if err != nil {
		return "", err
	}
	if cfg == nil {
		return "", ErrNotConfigured
	}
	return s.client.Invoke(ctx, cfg.Provider, cfg.Model, cfg.APIKey, prompt, maxTokens)
}

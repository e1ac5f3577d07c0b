package biography

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/biographer-ai/core/internal/models"
	"github.com/biographer-ai/core/internal/modules/llm"
	"gorm.io/gorm"
)

// Generator produces completion text for a prompt. Satisfied by llm.Service.
type Generator interface {
	Generate(ctx context.Context, prompt string, maxTokens int) (string, error)
}

type Service struct {
	db  *gorm.DB
	gen Generator
}

func NewService(db *gorm.DB, gen Generator) *Service {
	return &Service{db: db, gen: gen}
}

// Get returns the biography row, or nil when none exists yet.
func (s *Service) Get() (*models.BiographyModel, error) {
	var bio models.BiographyModel
	if err := s.db.First(&bio, "id = ?", models.BiographyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bio, nil
}

// GenerateOutline builds a chaptered outline from every answered pair and
// persists it. With zero answered pairs it returns the fixed placeholder
// without calling any provider and without persisting anything.
func (s *Service) GenerateOutline(ctx context.Context) (string, error) {
	history, err := s.history()
	if err != nil {
		return "", err
	}

	prompt, ok := llm.OutlinePrompt(history)
	if !ok {
		return llm.NoAnswersPlaceholder, nil
	}

	outline, err := s.gen.Generate(ctx, prompt, llm.GenerationMaxTokens)
	if err != nil {
		return "", err
	}
	if err := s.saveOutline(outline); err != nil {
		return "", err
	}
	return outline, nil
}

// UpdateOutline stores a manually edited outline.
func (s *Service) UpdateOutline(outline string) error {
	return s.saveOutline(outline)
}

// GenerateFullText produces the full autobiography. When no outline is stored
// one is generated and persisted first; that intermediate write stands even if
// the text call afterwards fails. Returns the text and its word count.
func (s *Service) GenerateFullText(ctx context.Context) (string, int, error) {
	history, err := s.history()
	if err != nil {
		return "", 0, err
	}
	if _, ok := llm.FullTextPrompt(history, ""); !ok {
		return llm.NoAnswersPlaceholder, 0, nil
	}

	bio, err := s.Get()
	if err != nil {
		return "", 0, err
	}

	outline := ""
	if bio != nil && bio.Outline != nil {
		outline = strings.TrimSpace(*bio.Outline)
	}
	if outline == "" {
		outline, err = s.GenerateOutline(ctx)
		if err != nil {
			return "", 0, err
		}
	}

	prompt, _ := llm.FullTextPrompt(history, outline)
	text, err := s.gen.Generate(ctx, prompt, llm.GenerationMaxTokens)
	if err != nil {
		return "", 0, err
	}

	wordCount := len(strings.Fields(text))
	now := time.Now()
	if err := s.upsert(map[string]interface{}{
		"full_text":       text,
		"word_count":      wordCount,
		"text_updated_at": now,
	}); err != nil {
		return "", 0, err
	}
	return text, wordCount, nil
}

func (s *Service) saveOutline(outline string) error {
	return s.upsert(map[string]interface{}{
		"outline":            outline,
		"outline_updated_at": time.Now(),
	})
}

// upsert applies updates to the singleton row, creating it first if absent.
func (s *Service) upsert(updates map[string]interface{}) error {
	bio := models.BiographyModel{ID: models.BiographyID}
	if err := s.db.FirstOrCreate(&bio, models.BiographyModel{ID: models.BiographyID}).Error; err != nil {
		return err
	}
	return s.db.Model(&bio).Updates(updates).Error
}

func (s *Service) history() ([]llm.QA, error) {
	var pairs []models.QAPairModel
	if err := s.db.Order("created_at DESC, id DESC").Find(&pairs).Error; err != nil {
		return nil, err
	}
	out := make([]llm.QA, 0, len(pairs))
	for _, p := range pairs {
		qa := llm.QA{Question: p.Question}
		if p.Answer != nil {
			qa.Answer = *p.Answer
		}
		out = append(out, qa)
	}
	return out, nil
}

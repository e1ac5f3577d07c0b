package interview

import (
	"context"
	"strings"

	"github.com/biographer-ai/core/internal/models"
	"github.com/biographer-ai/core/internal/modules/llm"
	"gorm.io/gorm"
)

type Service struct {
	db  *gorm.DB
	gen Generator
}

func NewService(db *gorm.DB, gen Generator) *Service {
	return &Service{db: db, gen: gen}
}

// GenerateQuestion creates and persists a new interview question. A custom
// question is stored verbatim; otherwise one is generated from the interview
// history, optionally steered toward topicHint. Generated questions are never
// marked custom, hinted or not.
func (s *Service) GenerateQuestion(ctx context.Context, customText, topicHint string) (*models.QAPairModel, error) {
	question := strings.TrimSpace(customText)
	isCustom := question != ""

	if !isCustom {
		history, err := s.List()
		if err != nil {
			return nil, err
		}
		prompt := llm.NextQuestionPrompt(toQAs(history), topicHint)
		text, err := s.gen.Generate(ctx, prompt, llm.QuestionMaxTokens)
		if err != nil {
			return nil, err
		}
		question = strings.TrimSpace(text)
	}

	pair := models.QAPairModel{
		Question: question,
		IsCustom: isCustom,
	}
	if err := s.db.Create(&pair).Error; err != nil {
		return nil, err
	}
	return &pair, nil
}

// SubmitAnswer sets the answer on an existing pair. Empty answers are
// accepted. Returns gorm.ErrRecordNotFound on unknown id.
func (s *Service) SubmitAnswer(id uint, answer string) error {
	result := s.db.Model(&models.QAPairModel{}).
		Where("id = ?", id).
		Update("answer", answer)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// List returns all pairs, newest first.
func (s *Service) List() ([]models.QAPairModel, error) {
	var pairs []models.QAPairModel
	err := s.db.Order("created_at DESC, id DESC").Find(&pairs).Error
	return pairs, err
}

// Update overwrites question, answer and category of an existing pair.
func (s *Service) Update(id uint, dto UpdateQADTO) error {
	result := s.db.Model(&models.QAPairModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"question": dto.Question,
			"answer":   dto.Answer,
			"category": dto.Category,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a pair by id.
func (s *Service) Delete(id uint) error {
	result := s.db.Delete(&models.QAPairModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func toQAs(pairs []models.QAPairModel) []llm.QA {
	out := make([]llm.QA, 0, len(pairs))
	for _, p := range pairs {
		qa := llm.QA{Question: p.Question}
		if p.Answer != nil {
			qa.Answer = *p.Answer
		}
		out = append(out, qa)
	}
	return out
}

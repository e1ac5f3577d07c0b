package interview

import "context"

// Generator produces completion text for a prompt. Satisfied by llm.Service.
type Generator interface {
	Generate(ctx context.Context, prompt string, maxTokens int) (string, error)
}

type generateQuestionDTO struct {
	CustomQuestion string `json:"customQuestion"`
	QuestionPrompt string `json:"questionPrompt"`
}

type answerDTO struct {
	QAID   uint   `json:"qaId"   binding:"required"`
	Answer string `json:"answer"`
}

// UpdateQADTO carries a full edit of a stored pair.
type UpdateQADTO struct {
	Question string  `json:"question" binding:"required"`
	Answer   *string `json:"answer"`
	Category *string `json:"category"`
}

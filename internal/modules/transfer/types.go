package transfer

import (
	"time"

	"github.com/biographer-ai/core/internal/models"
)

// ExportDocument is the on-disk backup format. The stored API key is never
// included; only provider and model survive the round trip.
type ExportDocument struct {
	ExportDate time.Time              `json:"exportDate"`
	QAPairs    []models.QAPairModel   `json:"qaPairs"`
	Biography  *models.BiographyModel `json:"biography"`
	Config     *ExportConfig          `json:"config"`
}

type ExportConfig struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
}

// Stats summarizes the stored interview and biography state.
type Stats struct {
	TotalQuestions      int64  `json:"totalQuestions"`
	AnsweredQuestions   int64  `json:"answeredQuestions"`
	UnansweredQuestions int64  `json:"unansweredQuestions"`
	BiographyWordCount  int    `json:"biographyWordCount"`
	DatabaseSizeBytes   int64  `json:"databaseSizeBytes"`
	DatabaseSize        string `json:"databaseSize"`
}

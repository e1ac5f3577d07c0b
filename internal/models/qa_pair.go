package models

import (
	"strings"
	"time"
)

// QAPairModel is one interview question and its optional answer.
type QAPairModel struct {
	ID        uint      `json:"id"        gorm:"primaryKey"`
	Question  string    `json:"question"  gorm:"type:text;not null"`
	Answer    *string   `json:"answer"    gorm:"type:text"`
	CreatedAt time.Time `json:"createdAt"`
	IsCustom  bool      `json:"isCustom"  gorm:"default:false"`
	Category  *string   `json:"category"`
	Metadata  *string   `json:"metadata"  gorm:"type:text"`
}

func (QAPairModel) TableName() string { return "qa_pairs" }

// Answered reports whether the pair carries a non-empty answer.
func (p *QAPairModel) Answered() bool {
	return p.Answer != nil && strings.TrimSpace(*p.Answer) != ""
}

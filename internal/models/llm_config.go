package models

// LLMConfigID is the fixed key of the single provider config row.
const LLMConfigID uint = 1

// LLMConfigModel stores the active provider, model and credential.
// The API key is never serialized back to callers.
type LLMConfigModel struct {
	ID       uint   `json:"id"       gorm:"primaryKey"`
	Provider string `json:"provider" gorm:"not null"`
	Model    string `json:"model"    gorm:"not null"`
	APIKey   string `json:"-"        gorm:"not null"`
}

func (LLMConfigModel) TableName() string { return "llm_configs" }

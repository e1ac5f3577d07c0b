package models

import "time"

// BiographyID is the fixed key of the single biography row.
const BiographyID uint = 1

// BiographyModel holds the generated outline and full autobiography text.
// At most one row exists (id = BiographyID).
type BiographyModel struct {
	ID               uint       `json:"id"               gorm:"primaryKey"`
	Outline          *string    `json:"outline"          gorm:"type:text"`
	FullText         *string    `json:"fullText"         gorm:"type:text"`
	OutlineUpdatedAt *time.Time `json:"outlineUpdatedAt"`
	TextUpdatedAt    *time.Time `json:"textUpdatedAt"`
	WordCount        int        `json:"wordCount"`
}

func (BiographyModel) TableName() string { return "biographies" }

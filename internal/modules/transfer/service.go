package transfer

import (
	"errors"
	"os"
	"time"

	"github.com/biographer-ai/core/internal/models"
	"github.com/dustin/go-humanize"
	"gorm.io/gorm"
)

type Service struct {
	db     *gorm.DB
	dbPath string
}

func NewService(db *gorm.DB, dbPath string) *Service {
	return &Service{db: db, dbPath: dbPath}
}

// Export snapshots every Q&A pair, the biography and the provider/model part
// of the LLM configuration into a single document.
func (s *Service) Export() (*ExportDocument, error) {
	doc := &ExportDocument{ExportDate: time.Now()}

	if err := s.db.Order("created_at DESC, id DESC").Find(&doc.QAPairs).Error; err != nil {
		return nil, err
	}

	var bio models.BiographyModel
	err := s.db.First(&bio, "id = ?", models.BiographyID).Error
	switch {
	case err == nil:
		doc.Biography = &bio
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	var cfg models.LLMConfigModel
	err = s.db.First(&cfg, "id = ?", models.LLMConfigID).Error
	switch {
	case err == nil:
		doc.Config = &ExportConfig{Provider: cfg.Provider, Model: cfg.Model}
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	return doc, nil
}

// Import replaces all Q&A pairs and the biography with the document's
// contents, ids and timestamps included. The stored LLM configuration is left
// untouched; exported documents carry no API key to restore.
func (s *Service) Import(doc *ExportDocument) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.QAPairModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&models.BiographyModel{}).Error; err != nil {
			return err
		}

		if len(doc.QAPairs) > 0 {
			if err := tx.Create(&doc.QAPairs).Error; err != nil {
				return err
			}
		}
		if doc.Biography != nil {
			if err := tx.Create(doc.Biography).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Clear wipes all Q&A pairs and the biography. The LLM configuration stays.
func (s *Service) Clear() error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.QAPairModel{}).Error; err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&models.BiographyModel{}).Error
	})
}

// Stats computes interview counters and the on-disk database size.
func (s *Service) Stats() (*Stats, error) {
	var st Stats

	if err := s.db.Model(&models.QAPairModel{}).Count(&st.TotalQuestions).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.QAPairModel{}).
		Where("answer IS NOT NULL AND answer != ''").
		Count(&st.AnsweredQuestions).Error; err != nil {
		return nil, err
	}
	st.UnansweredQuestions = st.TotalQuestions - st.AnsweredQuestions

	var bio models.BiographyModel
	err := s.db.First(&bio, "id = ?", models.BiographyID).Error
	switch {
	case err == nil:
		st.BiographyWordCount = bio.WordCount
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	if info, err := os.Stat(s.dbPath); err == nil {
		st.DatabaseSizeBytes = info.Size()
	}
	st.DatabaseSize = humanize.Bytes(uint64(st.DatabaseSizeBytes))

	return &st, nil
}

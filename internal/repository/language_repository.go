package repository

import (
	"gorm.io/gorm"

	"github.com/mshiina/course-catalog-api/internal/models"
)

// GormLanguageRepository is a GORM implementation of LanguageRepository
type GormLanguageRepository struct {
	db *gorm.DB
}

// NewLanguageRepository creates a new LanguageRepository
func NewLanguageRepository(db *gorm.DB) LanguageRepository {
	return &GormLanguageRepository{db: db}
}

func (r *GormLanguageRepository) Create(language *models.Language) error {
	return r.db.Create(language).Error
}

func (r *GormLanguageRepository) FindByID(id string) (*models.Language, error) {
	var language models.Language
	if err := r.db.First(&language, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &language, nil
}

func (r *GormLanguageRepository) FindByIDUnscoped(id string) (*models.Language, error) {
	var language models.Language
	if err := r.db.Unscoped().First(&language, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &language, nil
}

func (r *GormLanguageRepository) List() ([]models.Language, error) {
	var languages []models.Language
	if err := r.db.Order("name ASC").Find(&languages).Error; err != nil {
		return nil, err
	}
	return languages, nil
}

func (r *GormLanguageRepository) Update(id string, mutate func(*models.Language) error) (*models.Language, error) {
	var language models.Language
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&language, "id = ?", id).Error; err != nil {
			return err
		}
		if err := mutate(&language); err != nil {
			return err
		}
		return tx.Save(&language).Error
	})
	if err != nil {
		return nil, err
	}
	return &language, nil
}

func (r *GormLanguageRepository) SoftDelete(id string) error {
	return r.db.Delete(&models.Language{}, "id = ?", id).Error
}

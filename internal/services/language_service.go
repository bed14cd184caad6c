package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/mshiina/course-catalog-api/internal/models"
	"github.com/mshiina/course-catalog-api/internal/repository"
)

var (
	ErrLanguageNotFound       = errors.New("language not found")
	ErrLanguageAlreadyDeleted = errors.New("language already deleted")
	ErrLanguageNameRequired   = errors.New("language name cannot be empty")
)

// LanguageService provides lifecycle operations for languages.
type LanguageService struct {
	languageRepo repository.LanguageRepository
}

// NewLanguageService creates a new LanguageService.
func NewLanguageService(languageRepo repository.LanguageRepository) *LanguageService {
	return &LanguageService{
		languageRepo: languageRepo,
	}
}

// List returns all live languages.
func (s *LanguageService) List() ([]models.Language, error) {
	languages, err := s.languageRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list languages: %w", err)
	}
	return languages, nil
}

// GetByID returns a live language.
func (s *LanguageService) GetByID(id string) (*models.Language, error) {
	language, err := s.languageRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLanguageNotFound
		}
		return nil, fmt.Errorf("failed to find language: %w", err)
	}
	return language, nil
}

// Create creates a new language.
func (s *LanguageService) Create(name string) (*models.Language, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrLanguageNameRequired
	}

	language := &models.Language{Name: name}
	if err := s.languageRepo.Create(language); err != nil {
		return nil, fmt.Errorf("failed to create language: %w", err)
	}

	return language, nil
}

// Update renames a live language.
func (s *LanguageService) Update(id, name string) (*models.Language, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrLanguageNameRequired
	}

	language, err := s.languageRepo.Update(id, func(l *models.Language) error {
		l.Name = name
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLanguageNotFound
		}
		return nil, fmt.Errorf("failed to update language: %w", err)
	}

	return language, nil
}

// SoftDelete marks a language as deleted. Courses referencing it are left
// untouched; their language id simply dangles for historical records.
func (s *LanguageService) SoftDelete(id string) error {
	language, err := s.languageRepo.FindByIDUnscoped(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLanguageNotFound
		}
		return fmt.Errorf("failed to find language: %w", err)
	}

	if language.DeletedAt.Valid {
		return ErrLanguageAlreadyDeleted
	}

	if err := s.languageRepo.SoftDelete(id); err != nil {
		return fmt.Errorf("failed to delete language: %w", err)
	}

	return nil
}

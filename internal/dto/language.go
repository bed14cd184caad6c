package dto

import "github.com/mshiina/course-catalog-api/internal/models"

// LanguageDTO represents a language in API responses
type LanguageDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ToLanguageDTO converts a Language model to LanguageDTO
func ToLanguageDTO(language models.Language) LanguageDTO {
	return LanguageDTO{
		ID:   language.ID,
		Name: language.Name,
	}
}

// ToLanguageDTOs converts a slice of Language models to DTOs
func ToLanguageDTOs(languages []models.Language) []LanguageDTO {
	dtos := make([]LanguageDTO, len(languages))
	for i, language := range languages {
		dtos[i] = ToLanguageDTO(language)
	}
	return dtos
}

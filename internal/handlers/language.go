package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mshiina/course-catalog-api/internal/dto"
	"github.com/mshiina/course-catalog-api/internal/response"
	"github.com/mshiina/course-catalog-api/internal/services"
)

type LanguageHandler struct {
	languageService *services.LanguageService
	logger          *zap.Logger
}

func NewLanguageHandler(languageService *services.LanguageService, logger *zap.Logger) *LanguageHandler {
	return &LanguageHandler{
		languageService: languageService,
		logger:          logger,
	}
}

// ListLanguages returns all live languages.
func (h *LanguageHandler) ListLanguages(c *gin.Context) {
	languages, err := h.languageService.List()
	if err != nil {
		h.respondLanguageError(c, err)
		return
	}

	response.OK(c, "Languages retrieved successfully", dto.ToLanguageDTOs(languages))
}

// GetLanguage returns a single live language by id.
func (h *LanguageHandler) GetLanguage(c *gin.Context) {
	language, err := h.languageService.GetByID(c.Param("id"))
	if err != nil {
		h.respondLanguageError(c, err)
		return
	}

	response.OK(c, "Language retrieved successfully", dto.ToLanguageDTO(*language))
}

type languageRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateLanguage creates a new language.
func (h *LanguageHandler) CreateLanguage(c *gin.Context) {
	var req languageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	language, err := h.languageService.Create(req.Name)
	if err != nil {
		h.respondLanguageError(c, err)
		return
	}

	response.Created(c, "Language created successfully", dto.ToLanguageDTO(*language))
}

// UpdateLanguage renames a language.
func (h *LanguageHandler) UpdateLanguage(c *gin.Context) {
	var req languageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	language, err := h.languageService.Update(c.Param("id"), req.Name)
	if err != nil {
		h.respondLanguageError(c, err)
		return
	}

	response.OK(c, "Language updated successfully", dto.ToLanguageDTO(*language))
}

// DeleteLanguage soft-deletes a language.
func (h *LanguageHandler) DeleteLanguage(c *gin.Context) {
	if err := h.languageService.SoftDelete(c.Param("id")); err != nil {
		h.respondLanguageError(c, err)
		return
	}

	response.OK(c, "Language deleted successfully", nil)
}

func (h *LanguageHandler) respondLanguageError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrLanguageNotFound):
		response.NotFound(c, "Language not found")
	case errors.Is(err, services.ErrLanguageAlreadyDeleted):
		response.Conflict(c, "Language already deleted")
	case errors.Is(err, services.ErrLanguageNameRequired):
		response.BadRequest(c, "Language name cannot be empty")
	default:
		h.logger.Error("language operation failed", zap.Error(err))
		response.InternalError(c)
	}
}

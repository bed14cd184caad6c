package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mshiina/course-catalog-api/internal/dto"
	"github.com/mshiina/course-catalog-api/internal/middleware"
	"github.com/mshiina/course-catalog-api/internal/models"
	"github.com/mshiina/course-catalog-api/internal/response"
	"github.com/mshiina/course-catalog-api/internal/services"
	"github.com/mshiina/course-catalog-api/internal/utils"
)

type CourseHandler struct {
	courseService *services.CourseService
	logger        *zap.Logger
}

func NewCourseHandler(courseService *services.CourseService, logger *zap.Logger) *CourseHandler {
	return &CourseHandler{
		courseService: courseService,
		logger:        logger,
	}
}

// ListCourses returns live courses, optionally filtered by level.
func (h *CourseHandler) ListCourses(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	var level *models.CourseLevel
	if raw := c.Query("level"); raw != "" {
		l := models.CourseLevel(raw)
		level = &l
	}

	courses, total, err := h.courseService.List(services.ListCoursesInput{
		Level:      level,
		Pagination: params,
	})
	if err != nil {
		h.respondCourseError(c, err)
		return
	}

	response.OK(c, "Courses retrieved successfully",
		dto.ToCourseListResponse(courses, params.Page, params.Limit, total))
}

// GetCourse returns a single live course with related names resolved.
func (h *CourseHandler) GetCourse(c *gin.Context) {
	course, err := h.courseService.GetByID(c.Param("id"))
	if err != nil {
		h.respondCourseError(c, err)
		return
	}

	response.OK(c, "Course retrieved successfully", dto.ToCourseDTO(*course))
}

type courseRequest struct {
	Title            string  `json:"title" binding:"required"`
	Description      string  `json:"description"`
	Price            float64 `json:"price"`
	DiscountRate     float64 `json:"discount_rate"`
	Level            string  `json:"level" binding:"required"`
	ShortDescription string  `json:"short_description"`
	ThumbnailURL     string  `json:"thumbnail_url"`
	LanguageID       string  `json:"language_id" binding:"required"`
	TopicID          string  `json:"topic_id" binding:"required"`
}

func (r *courseRequest) toInput() services.CourseInput {
	return services.CourseInput{
		Title:            r.Title,
		Description:      r.Description,
		Price:            r.Price,
		DiscountRate:     r.DiscountRate,
		Level:            models.CourseLevel(r.Level),
		ShortDescription: r.ShortDescription,
		ThumbnailURL:     r.ThumbnailURL,
		LanguageID:       r.LanguageID,
		TopicID:          r.TopicID,
	}
}

// CreateCourse creates a new course authored by the calling admin.
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var req courseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	course, err := h.courseService.Create(req.toInput(), claims.UserID())
	if err != nil {
		h.respondCourseError(c, err)
		return
	}

	response.Created(c, "Course created successfully", gin.H{"id": course.ID})
}

// UpdateCourse replaces a course's writable fields. The authoring user never
// changes on update.
func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	var req courseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	course, err := h.courseService.Update(c.Param("id"), req.toInput())
	if err != nil {
		h.respondCourseError(c, err)
		return
	}

	response.OK(c, "Course updated successfully", gin.H{"id": course.ID})
}

// DeleteCourse soft-deletes a course.
func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	if err := h.courseService.SoftDelete(c.Param("id")); err != nil {
		h.respondCourseError(c, err)
		return
	}

	response.OK(c, "Course deleted successfully", nil)
}

func (h *CourseHandler) respondCourseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrCourseNotFound):
		response.NotFound(c, "Course not found")
	case errors.Is(err, services.ErrCourseAlreadyDeleted):
		response.Conflict(c, "Course already deleted")
	case errors.Is(err, services.ErrCourseTitleRequired):
		response.BadRequest(c, "Course title cannot be empty")
	case errors.Is(err, services.ErrCourseTitleTooLong):
		response.BadRequest(c, "Course title too long")
	case errors.Is(err, services.ErrInvalidCourseLevel):
		response.BadRequest(c, "Invalid course level")
	case errors.Is(err, services.ErrInvalidPrice):
		response.BadRequest(c, "Price cannot be negative")
	case errors.Is(err, services.ErrInvalidDiscountRate):
		response.BadRequest(c, "Discount rate must be between 0 and 100")
	case errors.Is(err, services.ErrCourseLanguageNotFound):
		response.BadRequest(c, "Language not found or deleted")
	case errors.Is(err, services.ErrCourseTopicNotFound):
		response.BadRequest(c, "Topic not found or deleted")
	default:
		h.logger.Error("course operation failed", zap.Error(err))
		response.InternalError(c)
	}
}

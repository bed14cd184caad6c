package dto

import "github.com/mshiina/course-catalog-api/internal/models"

// CourseDTO represents a course in API responses. Related entities are
// flattened to their names; a course whose language, topic, or author has
// since been soft-deleted keeps the id but shows an empty name.
type CourseDTO struct {
	ID               string             `json:"id"`
	Title            string             `json:"title"`
	Description      string             `json:"description"`
	Price            float64            `json:"price"`
	DiscountRate     float64            `json:"discount_rate"`
	Level            models.CourseLevel `json:"level"`
	ShortDescription string             `json:"short_description"`
	ThumbnailURL     string             `json:"thumbnail_url"`
	Language         string             `json:"language"`
	Topic            string             `json:"topic"`
	CreatedBy        string             `json:"created_by"`
}

// ToCourseDTO converts a Course model to CourseDTO
func ToCourseDTO(course models.Course) CourseDTO {
	return CourseDTO{
		ID:               course.ID,
		Title:            course.Title,
		Description:      course.Description,
		Price:            course.Price,
		DiscountRate:     course.DiscountRate,
		Level:            course.Level,
		ShortDescription: course.ShortDescription,
		ThumbnailURL:     course.ThumbnailURL,
		Language:         course.Language.Name,
		Topic:            course.Topic.Name,
		CreatedBy:        course.CreatedBy.Name,
	}
}

// CourseListResponse represents a paginated list of courses
type CourseListResponse struct {
	Courses    []CourseDTO `json:"courses"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	TotalCount int64       `json:"total_count"`
	TotalPages int         `json:"total_pages"`
}

// ToCourseListResponse converts a slice of courses to CourseListResponse
func ToCourseListResponse(courses []models.Course, page, limit int, totalCount int64) CourseListResponse {
	items := make([]CourseDTO, len(courses))
	for i, course := range courses {
		items[i] = ToCourseDTO(course)
	}

	totalPages := int(totalCount) / limit
	if int(totalCount)%limit > 0 {
		totalPages++
	}

	return CourseListResponse{
		Courses:    items,
		Page:       page,
		Limit:      limit,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}
}

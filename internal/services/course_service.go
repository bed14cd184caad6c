package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/mshiina/course-catalog-api/internal/constants"
	"github.com/mshiina/course-catalog-api/internal/models"
	"github.com/mshiina/course-catalog-api/internal/repository"
	"github.com/mshiina/course-catalog-api/internal/utils"
)

var (
	ErrCourseNotFound         = errors.New("course not found")
	ErrCourseAlreadyDeleted   = errors.New("course already deleted")
	ErrCourseTitleRequired    = errors.New("course title cannot be empty")
	ErrCourseTitleTooLong     = errors.New("course title too long")
	ErrInvalidCourseLevel     = errors.New("invalid course level")
	ErrInvalidPrice           = errors.New("price cannot be negative")
	ErrInvalidDiscountRate    = errors.New("discount rate must be between 0 and 100")
	ErrCourseLanguageNotFound = errors.New("language not found or deleted")
	ErrCourseTopicNotFound    = errors.New("topic not found or deleted")
)

// CourseService provides lifecycle operations for courses.
type CourseService struct {
	courseRepo   repository.CourseRepository
	languageRepo repository.LanguageRepository
	topicRepo    repository.TopicRepository
}

// NewCourseService creates a new CourseService.
func NewCourseService(courseRepo repository.CourseRepository, languageRepo repository.LanguageRepository, topicRepo repository.TopicRepository) *CourseService {
	return &CourseService{
		courseRepo:   courseRepo,
		languageRepo: languageRepo,
		topicRepo:    topicRepo,
	}
}

// ListCoursesInput represents filters for listing courses.
type ListCoursesInput struct {
	Level      *models.CourseLevel
	Pagination utils.PaginationParams
}

// List returns live courses, optionally filtered by level.
func (s *CourseService) List(input ListCoursesInput) ([]models.Course, int64, error) {
	if input.Level != nil && !input.Level.Valid() {
		return nil, 0, ErrInvalidCourseLevel
	}

	courses, total, err := s.courseRepo.List(repository.CourseFilter{
		Level:      input.Level,
		Pagination: input.Pagination,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list courses: %w", err)
	}

	return courses, total, nil
}

// GetByID returns a live course with its related names resolved.
func (s *CourseService) GetByID(id string) (*models.Course, error) {
	course, err := s.courseRepo.FindByID(id, "Language", "Topic", "CreatedBy")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to find course: %w", err)
	}
	return course, nil
}

// CourseInput represents the writable fields of a course.
type CourseInput struct {
	Title            string
	Description      string
	Price            float64
	DiscountRate     float64
	Level            models.CourseLevel
	ShortDescription string
	ThumbnailURL     string
	LanguageID       string
	TopicID          string
}

// Create creates a new course authored by creatorID. Language and topic
// references must point at live rows.
func (s *CourseService) Create(input CourseInput, creatorID string) (*models.Course, error) {
	if err := s.validateInput(&input); err != nil {
		return nil, err
	}

	course := &models.Course{
		Title:            input.Title,
		Description:      input.Description,
		Price:            input.Price,
		DiscountRate:     input.DiscountRate,
		Level:            input.Level,
		ShortDescription: input.ShortDescription,
		ThumbnailURL:     input.ThumbnailURL,
		LanguageID:       input.LanguageID,
		TopicID:          input.TopicID,
		CreatedByID:      creatorID,
	}

	if err := s.courseRepo.Create(course); err != nil {
		return nil, fmt.Errorf("failed to create course: %w", err)
	}

	return course, nil
}

// Update replaces a live course's writable fields. Foreign references are
// re-validated exactly as on create; the authoring user is immutable.
func (s *CourseService) Update(id string, input CourseInput) (*models.Course, error) {
	if err := s.validateInput(&input); err != nil {
		return nil, err
	}

	course, err := s.courseRepo.Update(id, func(c *models.Course) error {
		c.Title = input.Title
		c.Description = input.Description
		c.Price = input.Price
		c.DiscountRate = input.DiscountRate
		c.Level = input.Level
		c.ShortDescription = input.ShortDescription
		c.ThumbnailURL = input.ThumbnailURL
		c.LanguageID = input.LanguageID
		c.TopicID = input.TopicID
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to update course: %w", err)
	}

	return course, nil
}

// SoftDelete marks a course as deleted.
func (s *CourseService) SoftDelete(id string) error {
	course, err := s.courseRepo.FindByIDUnscoped(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCourseNotFound
		}
		return fmt.Errorf("failed to find course: %w", err)
	}

	if course.DeletedAt.Valid {
		return ErrCourseAlreadyDeleted
	}

	if err := s.courseRepo.SoftDelete(id); err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}

	return nil
}

// validateInput checks field constraints and verifies that the language and
// topic references point at live rows. Soft-deleted rows are not valid
// targets for new references.
func (s *CourseService) validateInput(input *CourseInput) error {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return ErrCourseTitleRequired
	}
	if len(input.Title) > constants.MaxTitleLength {
		return ErrCourseTitleTooLong
	}
	if !input.Level.Valid() {
		return ErrInvalidCourseLevel
	}
	if input.Price < 0 {
		return ErrInvalidPrice
	}
	if input.DiscountRate < 0 || input.DiscountRate > 100 {
		return ErrInvalidDiscountRate
	}

	if _, err := s.languageRepo.FindByID(input.LanguageID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCourseLanguageNotFound
		}
		return fmt.Errorf("failed to verify language: %w", err)
	}

	if _, err := s.topicRepo.FindByID(input.TopicID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCourseTopicNotFound
		}
		return fmt.Errorf("failed to verify topic: %w", err)
	}

	return nil
}

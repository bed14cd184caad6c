package repository

import (
	"github.com/mshiina/course-catalog-api/internal/models"
	"github.com/mshiina/course-catalog-api/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a live user by ID
	FindByID(id string) (*models.User, error)

	// FindByIDUnscoped finds a user by ID including soft-deleted rows
	FindByIDUnscoped(id string) (*models.User, error)

	// FindByEmailUnscoped finds a user by email including soft-deleted rows.
	// Registration deliberately checks against deleted users as well.
	FindByEmailUnscoped(email string) (*models.User, error)

	// List retrieves live users with pagination
	List(params utils.PaginationParams) ([]models.User, int64, error)

	// Update re-reads the live row, applies mutate, and persists the result
	// within a single transaction
	Update(id string, mutate func(*models.User) error) (*models.User, error)

	// SoftDelete marks a user as deleted
	SoftDelete(id string) error
}

// LanguageRepository defines the interface for language data access
type LanguageRepository interface {
	Create(language *models.Language) error
	FindByID(id string) (*models.Language, error)
	FindByIDUnscoped(id string) (*models.Language, error)
	List() ([]models.Language, error)
	Update(id string, mutate func(*models.Language) error) (*models.Language, error)
	SoftDelete(id string) error
}

// TopicRepository defines the interface for topic data access
type TopicRepository interface {
	Create(topic *models.Topic) error
	FindByID(id string) (*models.Topic, error)
	FindByIDUnscoped(id string) (*models.Topic, error)
	List() ([]models.Topic, error)
	Update(id string, mutate func(*models.Topic) error) (*models.Topic, error)
	SoftDelete(id string) error
}

// CourseFilter holds filtering options for listing courses
type CourseFilter struct {
	Level      *models.CourseLevel
	Pagination utils.PaginationParams
}

// CourseRepository defines the interface for course data access
type CourseRepository interface {
	Create(course *models.Course) error

	// FindByID finds a live course by ID with optional preloading
	FindByID(id string, preload ...string) (*models.Course, error)

	FindByIDUnscoped(id string) (*models.Course, error)

	// List retrieves live courses with filtering and pagination
	List(filter CourseFilter) ([]models.Course, int64, error)

	Update(id string, mutate func(*models.Course) error) (*models.Course, error)

	SoftDelete(id string) error
}

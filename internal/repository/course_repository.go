package repository

import (
	"gorm.io/gorm"

	"github.com/mshiina/course-catalog-api/internal/database"
	"github.com/mshiina/course-catalog-api/internal/models"
)

// GormCourseRepository is a GORM implementation of CourseRepository
type GormCourseRepository struct {
	db *gorm.DB
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &GormCourseRepository{db: db}
}

func (r *GormCourseRepository) Create(course *models.Course) error {
	return r.db.Create(course).Error
}

// FindByID finds a live course by ID with optional preloading
func (r *GormCourseRepository) FindByID(id string, preload ...string) (*models.Course, error) {
	var course models.Course
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&course, "id = ?", id).Error; err != nil {
		return nil, err
	}

	return &course, nil
}

func (r *GormCourseRepository) FindByIDUnscoped(id string) (*models.Course, error) {
	var course models.Course
	if err := r.db.Unscoped().First(&course, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

// List retrieves live courses with filtering and pagination. Related names
// are fetched through explicit preloads; soft-deleted relations simply come
// back empty for historical courses.
func (r *GormCourseRepository) List(filter CourseFilter) ([]models.Course, int64, error) {
	var courses []models.Course

	query := r.db.Model(&models.Course{})
	if filter.Level != nil {
		query = query.Where("level = ?", *filter.Level)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").
		Scopes(database.Paginate(filter.Pagination)).
		Preload("Language").Preload("Topic").Preload("CreatedBy").
		Find(&courses).Error
	if err != nil {
		return nil, 0, err
	}

	return courses, total, nil
}

func (r *GormCourseRepository) Update(id string, mutate func(*models.Course) error) (*models.Course, error) {
	var course models.Course
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&course, "id = ?", id).Error; err != nil {
			return err
		}
		if err := mutate(&course); err != nil {
			return err
		}
		return tx.Save(&course).Error
	})
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *GormCourseRepository) SoftDelete(id string) error {
	return r.db.Delete(&models.Course{}, "id = ?", id).Error
}

package repository

import (
	"gorm.io/gorm"

	"github.com/mshiina/course-catalog-api/internal/database"
	"github.com/mshiina/course-catalog-api/internal/models"
	"github.com/mshiina/course-catalog-api/internal/utils"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByID finds a live user by ID
func (r *GormUserRepository) FindByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByIDUnscoped finds a user by ID including soft-deleted rows
func (r *GormUserRepository) FindByIDUnscoped(id string) (*models.User, error) {
	var user models.User
	if err := r.db.Unscoped().First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmailUnscoped finds a user by email including soft-deleted rows
func (r *GormUserRepository) FindByEmailUnscoped(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Unscoped().First(&user, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// List retrieves live users with pagination
func (r *GormUserRepository) List(params utils.PaginationParams) ([]models.User, int64, error) {
	var users []models.User
	query := r.db.Model(&models.User{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("created_at DESC").
		Scopes(database.Paginate(params)).
		Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// Update re-reads the live row, applies mutate, and persists the result
// within a single transaction to avoid lost updates under concurrent edits.
func (r *GormUserRepository) Update(id string, mutate func(*models.User) error) (*models.User, error) {
	var user models.User
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, "id = ?", id).Error; err != nil {
			return err
		}
		if err := mutate(&user); err != nil {
			return err
		}
		return tx.Save(&user).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// SoftDelete marks a user as deleted
func (r *GormUserRepository) SoftDelete(id string) error {
	return r.db.Delete(&models.User{}, "id = ?", id).Error
}

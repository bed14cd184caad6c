package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/mshiina/course-catalog-api/internal/auth"
	"github.com/mshiina/course-catalog-api/internal/constants"
	"github.com/mshiina/course-catalog-api/internal/models"
	"github.com/mshiina/course-catalog-api/internal/repository"
	"github.com/mshiina/course-catalog-api/internal/utils"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyDeleted = errors.New("user already deleted")
)

// UserService provides admin-facing user management.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// List returns live users with pagination.
func (s *UserService) List(params utils.PaginationParams) ([]models.User, int64, error) {
	users, total, err := s.userRepo.List(params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	return users, total, nil
}

// GetByID returns a live user. A soft-deleted user is indistinguishable from
// one that never existed.
func (s *UserService) GetByID(id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// UpdateUserInput represents input for updating a user.
type UpdateUserInput struct {
	Name     string
	Email    string
	Password string
}

// Update replaces a user's name, email, and password credential.
func (s *UserService) Update(id string, input UpdateUserInput) (*models.User, error) {
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	email := strings.TrimSpace(input.Email)
	if other, err := s.userRepo.FindByEmailUnscoped(email); err == nil {
		if other.ID != id {
			return nil, ErrEmailTaken
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user, err := s.userRepo.Update(id, func(u *models.User) error {
		u.Name = strings.TrimSpace(input.Name)
		u.Email = email
		u.PasswordHash = hash
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// SoftDelete marks a user as deleted. The lookup ignores the live-only filter
// so that deleting twice reports "already deleted" rather than not-found.
func (s *UserService) SoftDelete(id string) error {
	user, err := s.userRepo.FindByIDUnscoped(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	if user.DeletedAt.Valid {
		return ErrUserAlreadyDeleted
	}

	if err := s.userRepo.SoftDelete(id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}

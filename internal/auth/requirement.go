package auth

import (
	"errors"

	"github.com/mshiina/course-catalog-api/internal/models"
)

// Requirement declares what a route demands from the caller.
type Requirement int

const (
	// Public routes accept anonymous callers.
	Public Requirement = iota
	// Authenticated routes require any valid principal.
	Authenticated
	// AdminOnly routes require a principal with the ADMIN role.
	AdminOnly
)

var (
	// ErrUnauthorized means no valid principal was presented.
	ErrUnauthorized = errors.New("authentication required")
	// ErrForbidden means the principal is valid but lacks the required role.
	ErrForbidden = errors.New("insufficient role")
)

// Authorize decides whether the given claims satisfy the requirement. It is a
// pure function of its inputs; claims may be nil for anonymous callers.
func Authorize(claims *Claims, req Requirement) error {
	switch req {
	case Public:
		return nil
	case Authenticated:
		if claims == nil {
			return ErrUnauthorized
		}
		return nil
	case AdminOnly:
		if claims == nil {
			return ErrUnauthorized
		}
		if claims.Role != models.RoleAdmin {
			return ErrForbidden
		}
		return nil
	default:
		return ErrForbidden
	}
}

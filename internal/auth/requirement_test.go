package auth

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mshiina/course-catalog-api/internal/models"
)

func TestAuthorize(t *testing.T) {
	adminClaims := &Claims{Role: models.RoleAdmin}
	userClaims := &Claims{Role: models.RoleUser}

	tests := []struct {
		name    string
		claims  *Claims
		req     Requirement
		wantErr error
	}{
		{"public anonymous", nil, Public, nil},
		{"public authenticated", userClaims, Public, nil},
		{"authenticated anonymous", nil, Authenticated, ErrUnauthorized},
		{"authenticated user", userClaims, Authenticated, nil},
		{"authenticated admin", adminClaims, Authenticated, nil},
		{"admin-only anonymous", nil, AdminOnly, ErrUnauthorized},
		{"admin-only user", userClaims, AdminOnly, ErrForbidden},
		{"admin-only admin", adminClaims, AdminOnly, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.claims, tt.req)
			if tt.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

package users

import (
	"errors"

	"github.com/sjcet-apps/billboard-core/internal/models"
)

type CreateUserDTO struct {
	Username string          `json:"username" binding:"required,min=3"`
	Password string          `json:"password" binding:"required,min=6"`
	Name     string          `json:"name"`
	Mail     string          `json:"mail"`
	Role     models.UserRole `json:"role"`
}

// UpdateUserDTO patches an account. Nil fields are left alone; an empty
// password means no change.
type UpdateUserDTO struct {
	Name     *string          `json:"name"`
	Mail     *string          `json:"mail"`
	Password *string          `json:"password"`
	Role     *models.UserRole `json:"role"`
}

var (
	errUnknownRole      = errors.New("users: unknown role")
	errUsernameTaken    = errors.New("users: username taken")
	errLastSuperAdmin   = errors.New("users: cannot remove the last superadmin")
	errCannotDeleteSelf = errors.New("users: cannot delete own account")
	errUserNotFound     = errors.New("users: not found")
)

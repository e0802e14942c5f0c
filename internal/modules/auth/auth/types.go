package auth

import (
	"errors"
	"time"

	"github.com/sjcet-apps/billboard-core/internal/models"
)

type LoginDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterDTO struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name"`
	Mail     string `json:"mail"`
}

type loginResponse struct {
	Token string            `json:"token"`
	User  *models.UserModel `json:"user"`
}

type sessionResponse struct {
	ID        string     `json:"id"`
	IP        string     `json:"ip"`
	UA        string     `json:"ua"`
	Current   bool       `json:"current"`
	Created   time.Time  `json:"created"`
	ExpiresAt time.Time  `json:"expires_at"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
}

var (
	errUserNotFound           = errors.New("auth: user not found")
	errWrongPassword          = errors.New("auth: wrong password")
	errOwnerAlreadyRegistered = errors.New("auth: owner already registered")
)

package models

import "time"

// UserRole controls what a signed-in user may manage.
type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleSuperAdmin UserRole = "superadmin"
	RoleFaculty    UserRole = "faculty"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleSuperAdmin, RoleFaculty:
		return true
	}
	return false
}

// CanEdit reports whether the role may mutate display content.
func (r UserRole) CanEdit() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// UserModel represents an editor account.
type UserModel struct {
	Base
	Username      string     `json:"username"        gorm:"uniqueIndex;not null"`
	Name          string     `json:"name"`
	Mail          string     `json:"mail"`
	Password      string     `json:"-"               gorm:"not null"`
	Role          UserRole   `json:"role"            gorm:"type:varchar(16);default:'faculty'"`
	LastLoginTime *time.Time `json:"last_login_time"`
	LastLoginIP   string     `json:"last_login_ip"`
}

func (UserModel) TableName() string { return "users" }

// UserSession tracks signed-in JWT sessions for device/session management.
type UserSession struct {
	Base
	UserID    string     `json:"user_id"    gorm:"index;not null"`
	IP        string     `json:"ip"`
	UA        string     `json:"ua"         gorm:"type:text"`
	ExpiresAt time.Time  `json:"expires_at" gorm:"index;not null"`
	RevokedAt *time.Time `json:"revoked_at" gorm:"index"`
}

func (UserSession) TableName() string { return "user_sessions" }

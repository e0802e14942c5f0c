package auth

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/sjcet-apps/billboard-core/internal/models"
	sessionpkg "github.com/sjcet-apps/billboard-core/internal/pkg/session"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Login verifies credentials and issues a session-bound token. Any role may
// sign in; write access is enforced per-route. Failed attempts are delayed
// to blunt guessing.
func (s *Service) Login(username, password, ip, ua string) (string, *models.UserModel, error) {
	var u models.UserModel
	if err := s.db.Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			time.Sleep(3 * time.Second)
			return "", nil, errUserNotFound
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		time.Sleep(3 * time.Second)
		return "", nil, errWrongPassword
	}

	token, _, err := sessionpkg.Issue(s.db, &u, ip, ua, sessionpkg.DefaultTTL)
	if err != nil {
		return "", nil, err
	}

	now := time.Now()
	s.db.Model(&u).Updates(map[string]interface{}{
		"last_login_time": now,
		"last_login_ip":   ip,
	})
	u.LastLoginTime = &now
	u.LastLoginIP = ip
	return token, &u, nil
}

// Register bootstraps the first account as superadmin. Once any account
// exists, new users come through the users admin API instead.
func (s *Service) Register(dto *RegisterDTO) (*models.UserModel, error) {
	var count int64
	if err := s.db.Model(&models.UserModel{}).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errOwnerAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	name := dto.Name
	if name == "" {
		name = dto.Username
	}
	u := models.UserModel{
		Username: dto.Username,
		Password: string(hash),
		Name:     name,
		Mail:     dto.Mail,
		Role:     models.RoleSuperAdmin,
	}
	return &u, s.db.Create(&u).Error
}

func (s *Service) Me(userID string) (*models.UserModel, error) {
	var u models.UserModel
	if err := s.db.First(&u, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (s *Service) Sessions(userID string) ([]models.UserSession, error) {
	return sessionpkg.ListActive(s.db, userID)
}

func (s *Service) RevokeSession(userID, sessionID string) error {
	return sessionpkg.Revoke(s.db, userID, sessionID)
}

func (s *Service) RevokeOtherSessions(userID, keepSessionID string) error {
	return sessionpkg.RevokeAllExcept(s.db, userID, keepSessionID)
}

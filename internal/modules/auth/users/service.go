package users

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/sjcet-apps/billboard-core/internal/models"
	sessionpkg "github.com/sjcet-apps/billboard-core/internal/pkg/session"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) List() ([]models.UserModel, error) {
	var users []models.UserModel
	return users, s.db.Order("created_at ASC").Find(&users).Error
}

func (s *Service) GetByID(id string) (*models.UserModel, error) {
	var u models.UserModel
	if err := s.db.First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (s *Service) Create(dto *CreateUserDTO) (*models.UserModel, error) {
	role := dto.Role
	if role == "" {
		role = models.RoleFaculty
	}
	if !role.Valid() {
		return nil, errUnknownRole
	}

	var count int64
	if err := s.db.Model(&models.UserModel{}).
		Where("username = ?", dto.Username).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errUsernameTaken
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
		Role:     role,
	}
	return &u, s.db.Create(&u).Error
}

func (s *Service) Update(id string, dto *UpdateUserDTO) (*models.UserModel, error) {
	u, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, errUserNotFound
	}

	if dto.Name != nil {
		u.Name = *dto.Name
	}
	if dto.Mail != nil {
		u.Mail = *dto.Mail
	}
	if dto.Role != nil {
		if !dto.Role.Valid() {
			return nil, errUnknownRole
		}
		if u.Role == models.RoleSuperAdmin && *dto.Role != models.RoleSuperAdmin {
			remaining, err := s.otherSuperAdmins(id)
			if err != nil {
				return nil, err
			}
			if remaining == 0 {
				return nil, errLastSuperAdmin
			}
		}
		u.Role = *dto.Role
	}
	if dto.Password != nil && *dto.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*dto.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.Password = string(hash)
		// Changing a password kicks every signed-in device.
		_ = sessionpkg.RevokeAllExcept(s.db, id, "")
	}

	return u, s.db.Save(u).Error
}

func (s *Service) Delete(id, actingUserID string) error {
	if id == actingUserID {
		return errCannotDeleteSelf
	}

	u, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if u == nil {
		return errUserNotFound
	}
	if u.Role == models.RoleSuperAdmin {
		remaining, err := s.otherSuperAdmins(id)
		if err != nil {
			return err
		}
		if remaining == 0 {
			return errLastSuperAdmin
		}
	}

	if err := sessionpkg.RevokeAllExcept(s.db, id, ""); err != nil {
		return err
	}
	return s.db.Delete(&models.UserModel{}, "id = ?", id).Error
}

func (s *Service) otherSuperAdmins(excludeID string) (int64, error) {
	var count int64
	err := s.db.Model(&models.UserModel{}).
		Where("role = ? AND id <> ?", models.RoleSuperAdmin, excludeID).
		Count(&count).Error
	return count, err
}

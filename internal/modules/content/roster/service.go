package roster

import (
	"errors"

	"github.com/sjcet-apps/billboard-core/internal/models"
	"gorm.io/gorm"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Positions returns the staff strength board in display order.
func (s *Service) Positions() ([]models.StaffPositionModel, error) {
	var items []models.StaffPositionModel
	err := s.db.Order("`order` ASC, position ASC").Find(&items).Error
	return items, err
}

// UpsertPosition creates or updates the head count for one position label.
func (s *Service) UpsertPosition(dto *PositionDTO) (*models.StaffPositionModel, error) {
	var existing models.StaffPositionModel
	err := s.db.Where("position = ?", dto.Position).First(&existing).Error
	if err == nil {
		updates := map[string]interface{}{"count": dto.Count}
		if dto.Order != nil {
			updates["order"] = *dto.Order
		}
		if err := s.db.Model(&existing).Updates(updates).Error; err != nil {
			return nil, err
		}
		existing.Count = dto.Count
		if dto.Order != nil {
			existing.Order = *dto.Order
		}
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	p := models.StaffPositionModel{Position: dto.Position, Count: dto.Count}
	if dto.Order != nil {
		p.Order = *dto.Order
	}
	return &p, s.db.Create(&p).Error
}

func (s *Service) DeletePosition(id string) (bool, error) {
	res := s.db.Delete(&models.StaffPositionModel{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

// Faculty returns the faculty roster in display order.
func (s *Service) Faculty() ([]models.FacultyEntryModel, error) {
	var items []models.FacultyEntryModel
	err := s.db.Order("`order` ASC, name ASC").Find(&items).Error
	return items, err
}

func (s *Service) CreateFaculty(dto *FacultyDTO) (*models.FacultyEntryModel, error) {
	f := models.FacultyEntryModel{
		Name:        dto.Name,
		Designation: dto.Designation,
		Department:  dto.Department,
		PhotoURL:    dto.PhotoURL,
	}
	if dto.Order != nil {
		f.Order = *dto.Order
	}
	return &f, s.db.Create(&f).Error
}

func (s *Service) UpdateFaculty(id string, dto *FacultyDTO) (*models.FacultyEntryModel, error) {
	var f models.FacultyEntryModel
	if err := s.db.First(&f, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if dto.Name != "" {
		updates["name"] = dto.Name
	}
	if dto.Designation != "" {
		updates["designation"] = dto.Designation
	}
	if dto.Department != "" {
		updates["department"] = dto.Department
	}
	if dto.PhotoURL != "" {
		updates["photo_url"] = dto.PhotoURL
	}
	if dto.Order != nil {
		updates["order"] = *dto.Order
	}
	if len(updates) == 0 {
		return &f, nil
	}
	if err := s.db.Model(&f).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &f, s.db.First(&f, "id = ?", id).Error
}

func (s *Service) DeleteFaculty(id string) (bool, error) {
	res := s.db.Delete(&models.FacultyEntryModel{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

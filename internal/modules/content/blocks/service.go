package blocks

import (
	"errors"

	"github.com/sjcet-apps/billboard-core/internal/models"
	"github.com/sjcet-apps/billboard-core/internal/pkg/layout"
	"gorm.io/gorm"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// List returns all blocks in display order.
func (s *Service) List() ([]models.BlockModel, error) {
	var items []models.BlockModel
	if err := s.db.Find(&items).Error; err != nil {
		return nil, err
	}
	Sort(items)
	return items, nil
}

func (s *Service) GetByID(id string) (*models.BlockModel, error) {
	var b models.BlockModel
	if err := s.db.First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

// Create appends a new block at the end of the display order.
func (s *Service) Create(dto *CreateBlockDTO) (*models.BlockModel, error) {
	typ := models.NormalizeBlockType(dto.Type)
	if !typ.Valid() {
		return nil, errUnknownType
	}
	if err := dto.validate(); err != nil {
		return nil, err
	}

	theme := dto.Theme
	if theme == "" {
		theme = models.ThemeSystem
	}

	b := models.BlockModel{
		Type:            typ,
		Title:           dto.Title,
		Width:           layout.ClampWidth(dto.Width),
		Height:          layout.ClampHeight(dto.Height),
		Theme:           theme,
		BackgroundColor: dto.BackgroundColor,
		TextColor:       dto.TextColor,
		Text:            dto.Text,
		Image:           dto.Image,
		List:            dto.List,
		Weather:         dto.Weather,
		Time:            dto.Time,
		Staff:           dto.Staff,
		News:            dto.News,
		TableData:       dto.Table,
		Carousel:        dto.Carousel,
	}
	applyDefaults(&b)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing []models.BlockModel
		if err := tx.Select("id", "position").Find(&existing).Error; err != nil {
			return err
		}
		pos := NextPosition(existing)
		b.Position = &pos
		return tx.Create(&b).Error
	})
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Update merges the supplied fields into the stored block. The type tag is
// immutable; sending a different one is an error.
func (s *Service) Update(id string, dto *UpdateBlockDTO) (*models.BlockModel, error) {
	b, err := s.GetByID(id)
	if err != nil || b == nil {
		return b, err
	}

	if dto.Type != nil && models.NormalizeBlockType(*dto.Type) != b.Type {
		return nil, errTypeImmutable
	}
	if err := dto.validate(); err != nil {
		return nil, err
	}
	if dto.Title != nil {
		b.Title = *dto.Title
	}
	if dto.Width != nil {
		b.Width = layout.ClampWidth(*dto.Width)
	}
	if dto.Height != nil {
		b.Height = layout.ClampHeight(*dto.Height)
	}
	if dto.Theme != nil {
		b.Theme = *dto.Theme
	}
	if dto.BackgroundColor != nil {
		b.BackgroundColor = *dto.BackgroundColor
	}
	if dto.TextColor != nil {
		b.TextColor = *dto.TextColor
	}
	if dto.Text != nil {
		b.Text = dto.Text
	}
	if dto.Image != nil {
		b.Image = dto.Image
	}
	if dto.List != nil {
		b.List = dto.List
	}
	if dto.Weather != nil {
		b.Weather = dto.Weather
	}
	if dto.Time != nil {
		b.Time = dto.Time
	}
	if dto.Staff != nil {
		b.Staff = dto.Staff
	}
	if dto.News != nil {
		b.News = dto.News
	}
	if dto.Table != nil {
		b.TableData = dto.Table
	}
	if dto.Carousel != nil {
		b.Carousel = dto.Carousel
	}

	if err := s.db.Save(b).Error; err != nil {
		return nil, err
	}
	return b, nil
}

// Delete removes a block and closes the position gap it leaves, all in one
// transaction so a crash cannot strand a sparse ordering.
func (s *Service) Delete(id string) (bool, error) {
	deleted := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.BlockModel{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		deleted = true
		return renumberTx(tx)
	})
	return deleted, err
}

// Reorder applies a drag-and-drop move: the active block takes the slot of
// the block it was dropped on, and every position is rewritten densely.
func (s *Service) Reorder(dto *ReorderDTO) ([]models.BlockModel, error) {
	var out []models.BlockModel
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var items []models.BlockModel
		if err := tx.Find(&items).Error; err != nil {
			return err
		}
		Sort(items)

		ids := make([]string, len(items))
		byID := make(map[string]*models.BlockModel, len(items))
		for i := range items {
			ids[i] = items[i].ID
			byID[items[i].ID] = &items[i]
		}

		moved, ok := Move(ids, dto.ActiveID, dto.OverID)
		if !ok {
			out = items
			return nil
		}

		for i, id := range moved {
			b := byID[id]
			if b.Position == nil || *b.Position != i {
				if err := tx.Model(&models.BlockModel{}).
					Where("id = ?", id).
					Update("position", i).Error; err != nil {
					return err
				}
			}
			pos := i
			b.Position = &pos
			out = append(out, *b)
		}
		return nil
	})
	return out, err
}

// Repair renumbers all blocks to a dense 0..n-1 ordering. Returns how many
// rows were rewritten.
func (s *Service) Repair() (int, error) {
	repaired := 0
	err := s.db.Transaction(func(tx *gorm.DB) error {
		n, err := renumberCountTx(tx)
		repaired = n
		return err
	})
	return repaired, err
}

func renumberTx(tx *gorm.DB) error {
	_, err := renumberCountTx(tx)
	return err
}

func renumberCountTx(tx *gorm.DB) (int, error) {
	var items []models.BlockModel
	if err := tx.Select("id", "position", "created_at").Find(&items).Error; err != nil {
		return 0, err
	}
	assignments := Renumber(items)
	for _, a := range assignments {
		if err := tx.Model(&models.BlockModel{}).
			Where("id = ?", a.ID).
			Update("position", a.Position).Error; err != nil {
			return 0, err
		}
	}
	return len(assignments), nil
}

package blocks

import (
	"errors"
	"fmt"

	"github.com/sjcet-apps/billboard-core/internal/models"
	"github.com/sjcet-apps/billboard-core/internal/pkg/layout"
)

var (
	errUnknownType   = errors.New("unknown block type")
	errTypeImmutable = errors.New("block type cannot be changed")
	errWidthRange    = fmt.Errorf("width must be between 1 and %d columns", layout.Columns)
	errHeightRange   = fmt.Errorf("height must be between %d and %d pixels", layout.MinHeight, layout.MaxHeight)
	errInvalidTheme  = errors.New("theme must be light, dark or system")
)

// CreateBlockDTO is the "add block" command. Omitted payloads get type
// defaults; omitted dimensions get the standard grid slot.
type CreateBlockDTO struct {
	Type            models.BlockType      `json:"type" binding:"required"`
	Title           string                `json:"title"`
	Width           int                   `json:"width"`
	Height          int                   `json:"height"`
	Theme           models.BlockTheme     `json:"theme"`
	BackgroundColor string                `json:"backgroundColor"`
	TextColor       string                `json:"textColor"`
	Text            *models.TextPayload   `json:"text"`
	Image           *models.ImagePayload  `json:"image"`
	List            *models.ListPayload   `json:"list"`
	Weather         *models.WeatherField  `json:"weather"`
	Time            *models.TimePayload   `json:"time"`
	Staff           *models.StaffPayload  `json:"staff"`
	News            *models.NewsPayload   `json:"news"`
	Table           *models.TablePayload  `json:"table"`
	Carousel        *models.CarouselField `json:"carousel"`
}

// UpdateBlockDTO carries a merge update: nil fields are preserved.
// Type is accepted for echo compatibility but must match the stored tag.
type UpdateBlockDTO struct {
	Type            *models.BlockType     `json:"type"`
	Title           *string               `json:"title"`
	Width           *int                  `json:"width"`
	Height          *int                  `json:"height"`
	Theme           *models.BlockTheme    `json:"theme"`
	BackgroundColor *string               `json:"backgroundColor"`
	TextColor       *string               `json:"textColor"`
	Text            *models.TextPayload   `json:"text"`
	Image           *models.ImagePayload  `json:"image"`
	List            *models.ListPayload   `json:"list"`
	Weather         *models.WeatherField  `json:"weather"`
	Time            *models.TimePayload   `json:"time"`
	Staff           *models.StaffPayload  `json:"staff"`
	News            *models.NewsPayload   `json:"news"`
	Table           *models.TablePayload  `json:"table"`
	Carousel        *models.CarouselField `json:"carousel"`
}

// validate rejects out-of-range dimensions and unknown themes before
// anything is written. Zero dimensions mean "use the defaults"; the
// renderer still clamps whatever is stored.
func (dto *CreateBlockDTO) validate() error {
	if dto.Width != 0 && !layout.ValidWidth(dto.Width) {
		return errWidthRange
	}
	if dto.Height != 0 && !layout.ValidHeight(dto.Height) {
		return errHeightRange
	}
	if dto.Theme != "" && !dto.Theme.Valid() {
		return errInvalidTheme
	}
	return nil
}

func (dto *UpdateBlockDTO) validate() error {
	if dto.Width != nil && !layout.ValidWidth(*dto.Width) {
		return errWidthRange
	}
	if dto.Height != nil && !layout.ValidHeight(*dto.Height) {
		return errHeightRange
	}
	if dto.Theme != nil && !dto.Theme.Valid() {
		return errInvalidTheme
	}
	return nil
}

// ReorderDTO is the drag-and-drop contract: the dragged block and the block
// it was dropped on.
type ReorderDTO struct {
	ActiveID string `json:"active_id" binding:"required"`
	OverID   string `json:"over_id" binding:"required"`
}

// applyDefaults fills the type-specific payload for a fresh block when the
// editor did not supply one.
func applyDefaults(b *models.BlockModel) {
	switch b.Type {
	case models.BlockText:
		if b.Text == nil {
			b.Text = &models.TextPayload{Content: "New text block", TextAlign: "left"}
		}
	case models.BlockImage:
		if b.Image == nil {
			b.Image = &models.ImagePayload{}
		}
	case models.BlockList:
		if b.List == nil {
			b.List = &models.ListPayload{Items: []string{}, ListStyle: "bullet"}
		}
	case models.BlockWeather:
		if b.Weather == nil {
			b.Weather = &models.WeatherField{Unit: "C"}
		}
	case models.BlockTime:
		if b.Time == nil {
			b.Time = &models.TimePayload{Format: "12h"}
		}
	case models.BlockStaff:
		if b.Staff == nil {
			b.Staff = &models.StaffPayload{}
		}
	case models.BlockNews:
		if b.News == nil {
			b.News = &models.NewsPayload{ShowNifty: true, ShowWeather: true}
		}
	case models.BlockTable:
		if b.TableData == nil {
			b.TableData = &models.TablePayload{Headers: []string{}, Rows: models.TableRows{}}
		}
	case models.BlockCarousel:
		if b.Carousel == nil {
			b.Carousel = &models.CarouselField{TransitionInterval: 5000}
		}
	}
}

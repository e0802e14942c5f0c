package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// BlockType discriminates the content block union. The type of a block is
// immutable after creation; changing it means delete and recreate.
type BlockType string

const (
	BlockText     BlockType = "text"
	BlockImage    BlockType = "image"
	BlockList     BlockType = "list"
	BlockWeather  BlockType = "weather"
	BlockTime     BlockType = "time"
	BlockStaff    BlockType = "staff"
	BlockNews     BlockType = "news"
	BlockTable    BlockType = "table"
	BlockCarousel BlockType = "carousel"
)

// AllBlockTypes lists every valid type tag, in editor menu order.
var AllBlockTypes = []BlockType{
	BlockText, BlockImage, BlockList, BlockWeather, BlockTime,
	BlockStaff, BlockNews, BlockTable, BlockCarousel,
}

// Valid reports whether t is a known type tag. Legacy "faculty" and
// "marquee" tags from old exports are normalized by NormalizeBlockType
// before this check.
func (t BlockType) Valid() bool {
	switch t {
	case BlockText, BlockImage, BlockList, BlockWeather, BlockTime,
		BlockStaff, BlockNews, BlockTable, BlockCarousel:
		return true
	}
	return false
}

// NormalizeBlockType maps legacy tags onto the current union.
func NormalizeBlockType(t BlockType) BlockType {
	switch t {
	case "faculty":
		return BlockStaff
	case "marquee":
		return BlockNews
	}
	return t
}

// BlockTheme is an advisory rendering hint; the display may override it.
type BlockTheme string

const (
	ThemeLight  BlockTheme = "light"
	ThemeDark   BlockTheme = "dark"
	ThemeSystem BlockTheme = "system"
)

func (t BlockTheme) Valid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}

// BlockModel is one positioned, typed unit of display content.
// Position is nullable: legacy rows may lack it until a repair pass runs.
type BlockModel struct {
	Base
	Type            BlockType      `json:"type"            gorm:"type:varchar(16);index;not null"`
	Title           string         `json:"title"`
	Position        *int           `json:"position"        gorm:"index"`
	Width           int            `json:"width"           gorm:"default:6"`
	Height          int            `json:"height"          gorm:"default:200"`
	Theme           BlockTheme     `json:"theme"           gorm:"type:varchar(8);default:'system'"`
	BackgroundColor string         `json:"backgroundColor"`
	TextColor       string         `json:"textColor"`
	Text            *TextPayload   `json:"text,omitempty"     gorm:"type:longtext;serializer:json"`
	Image           *ImagePayload  `json:"image,omitempty"    gorm:"type:longtext;serializer:json"`
	List            *ListPayload   `json:"list,omitempty"     gorm:"type:longtext;serializer:json"`
	Weather         *WeatherField  `json:"weather,omitempty"  gorm:"type:longtext;serializer:json"`
	Time            *TimePayload   `json:"time,omitempty"     gorm:"type:longtext;serializer:json"`
	Staff           *StaffPayload  `json:"staff,omitempty"    gorm:"type:longtext;serializer:json"`
	News            *NewsPayload   `json:"news,omitempty"     gorm:"type:longtext;serializer:json"`
	TableData       *TablePayload  `json:"table,omitempty"    gorm:"type:longtext;serializer:json;column:table_data"`
	Carousel        *CarouselField `json:"carousel,omitempty" gorm:"type:longtext;serializer:json"`
}

func (BlockModel) TableName() string { return "blocks" }

// TextPayload holds a static text block.
type TextPayload struct {
	Content   string `json:"content"`
	TextAlign string `json:"textAlign,omitempty"` // left | center | right
}

// ImagePayload holds a single fixed image.
type ImagePayload struct {
	ImageURL string `json:"imageUrl"`
	Alt      string `json:"alt,omitempty"`
}

// ListPayload holds a bullet/numbered list. Lists longer than ten items
// are shown paginated on the display side.
type ListPayload struct {
	Items     []string `json:"items"`
	ListStyle string   `json:"listStyle,omitempty"` // bullet | numbered | plain
}

// WeatherField configures the live weather tile.
type WeatherField struct {
	Location string `json:"location,omitempty"`
	Unit     string `json:"unit,omitempty"` // C | F
}

// TimePayload configures the clock tile.
type TimePayload struct {
	Format      string `json:"format,omitempty"` // 12h | 24h
	ShowSeconds bool   `json:"showSeconds"`
}

// StaffPayload selects which roster positions the staff block shows.
// Counts come from the shared roster collection, not from the block.
type StaffPayload struct {
	Positions []string `json:"positions,omitempty"`
}

// NewsPayload configures the rotating headline ticker.
type NewsPayload struct {
	ShowNifty   bool `json:"showNifty"`
	ShowWeather bool `json:"showWeather"`
}

// TablePayload holds a static table. Rows are stored as a native nested
// array; TableRows tolerates the legacy encoding where the whole grid was
// a single JSON string.
type TablePayload struct {
	Headers []string  `json:"headers"`
	Rows    TableRows `json:"rows"`
}

// CarouselField configures the shared-image slideshow.
// TransitionInterval is in milliseconds; zero means the 5000ms default.
type CarouselField struct {
	TransitionInterval int `json:"transitionInterval,omitempty"`
}

// TableRows stores a 2-D string grid as JSON, while tolerating legacy rows
// that were double-encoded as a JSON string. Malformed data scans to an
// empty grid rather than failing the whole record.
type TableRows [][]string

func (r TableRows) Value() (driver.Value, error) {
	if r == nil {
		return "[]", nil
	}
	b, err := json.Marshal([][]string(r))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (r *TableRows) Scan(value interface{}) error {
	if r == nil {
		return fmt.Errorf("models.TableRows: Scan on nil pointer")
	}
	if value == nil {
		*r = [][]string{}
		return nil
	}

	var raw string
	switch v := value.(type) {
	case []byte:
		raw = string(v)
	case string:
		raw = v
	default:
		return fmt.Errorf("models.TableRows: unsupported Scan type %T", value)
	}

	*r = ParseTableRows(raw)
	return nil
}

// ParseTableRows decodes a stored grid. It accepts the native [][]string
// encoding, the legacy string-wrapped encoding, and returns an empty grid
// for anything unparseable.
func ParseTableRows(raw string) [][]string {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return [][]string{}
	}

	var grid [][]string
	if err := json.Unmarshal([]byte(raw), &grid); err == nil {
		if grid == nil {
			grid = [][]string{}
		}
		return grid
	}

	var wrapped string
	if err := json.Unmarshal([]byte(raw), &wrapped); err == nil {
		var inner [][]string
		if err := json.Unmarshal([]byte(wrapped), &inner); err == nil && inner != nil {
			return inner
		}
	}

	return [][]string{}
}

// UnmarshalJSON accepts both the native grid and the legacy string form on
// API input as well.
func (r *TableRows) UnmarshalJSON(data []byte) error {
	*r = ParseTableRows(string(data))
	return nil
}

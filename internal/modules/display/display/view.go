package display

import (
	"github.com/sjcet-apps/billboard-core/internal/modules/feeds/feeds"
	"github.com/sjcet-apps/billboard-core/internal/pkg/layout"
)

// Rotation and pagination timing, matching what the signage walls animate.
const (
	// Lists longer than this are split into flipping pages.
	listPageThreshold = 10
	listFlipMS        = 10000
	listTransitionMS  = 600

	newsRotateMS = 7500
	newsFadeMS   = 1000
	newsIndexCap = 10

	carouselDefaultMS = 5000
)

// BlockView is the fully resolved view-model for one block: grid placement,
// colors, and exactly one non-nil per-type content view.
type BlockView struct {
	ID              string           `json:"id"`
	Type            string           `json:"type"`
	Title           string           `json:"title,omitempty"`
	Position        int              `json:"position"`
	Placement       layout.Placement `json:"placement"`
	Theme           string           `json:"theme,omitempty"`
	BackgroundColor string           `json:"backgroundColor,omitempty"`
	TextColor       string           `json:"textColor,omitempty"`

	Text     *TextView     `json:"text,omitempty"`
	Image    *ImageView    `json:"image,omitempty"`
	List     *ListView     `json:"list,omitempty"`
	Weather  *WeatherView  `json:"weather,omitempty"`
	Time     *TimeView     `json:"time,omitempty"`
	Staff    *StaffView    `json:"staff,omitempty"`
	News     *NewsView     `json:"news,omitempty"`
	Table    *TableView    `json:"table,omitempty"`
	Carousel *CarouselView `json:"carousel,omitempty"`
}

type TextView struct {
	Content   string `json:"content"`
	TextAlign string `json:"textAlign"`
}

type ImageView struct {
	URL string `json:"url"`
	Alt string `json:"alt,omitempty"`
}

// ListView splits long lists into flipping pages. Short lists render as a
// single static page.
type ListView struct {
	Pages        [][]string `json:"pages"`
	ItemsPerPage int        `json:"itemsPerPage"`
	ListStyle    string     `json:"listStyle"`
	Paginated    bool       `json:"paginated"`
	FlipMS       int        `json:"flipMs,omitempty"`
	TransitionMS int        `json:"transitionMs,omitempty"`
}

type WeatherView struct {
	Location string            `json:"location,omitempty"`
	Unit     string            `json:"unit"`
	Current  feeds.WeatherInfo `json:"current"`
	Degraded bool              `json:"degraded,omitempty"`
}

type TimeView struct {
	Format      string `json:"format"`
	ShowSeconds bool   `json:"showSeconds"`
}

type StaffRow struct {
	Position string `json:"position"`
	Count    int    `json:"count"`
}

type StaffView struct {
	Rows []StaffRow `json:"rows"`
}

// NewsView is the rotating headline ticker with optional market and
// weather phases.
type NewsView struct {
	Headlines []feeds.NewsHeadline `json:"headlines"`
	RotateMS  int                  `json:"rotateMs"`
	FadeMS    int                  `json:"fadeMs"`
	IndexCap  int                  `json:"indexCap"`
	Market    *feeds.MarketQuote   `json:"market,omitempty"`
	Weather   *feeds.WeatherInfo   `json:"weather,omitempty"`
	Degraded  bool                 `json:"degraded,omitempty"`
}

type TableView struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

type CarouselView struct {
	Images       []string `json:"images"`
	TransitionMS int      `json:"transitionMs"`
}

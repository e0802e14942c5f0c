package display

import (
	"math"

	"github.com/sjcet-apps/billboard-core/internal/models"
	"github.com/sjcet-apps/billboard-core/internal/modules/feeds/feeds"
	"github.com/sjcet-apps/billboard-core/internal/pkg/layout"
)

// AuxData carries the shared collections and live feeds the per-type
// renderers draw from. Zero value renders every block with empty aux
// content, never an error.
type AuxData struct {
	Positions []models.StaffPositionModel
	Images    []models.ImageModel
	Weather   feeds.Result[feeds.WeatherInfo]
	News      feeds.Result[[]feeds.NewsHeadline]
	Market    feeds.Result[feeds.MarketQuote]
}

// Render maps one stored block to its view-model. It is total: every type
// tag, including legacy ones and malformed payloads, produces a defined
// view.
func Render(b *models.BlockModel, aux *AuxData) BlockView {
	if aux == nil {
		aux = &AuxData{}
	}

	view := BlockView{
		ID:              b.ID,
		Type:            string(models.NormalizeBlockType(b.Type)),
		Title:           b.Title,
		Placement:       layout.Resolve(b.Width, b.Height),
		Theme:           themeOrDefault(b.Theme),
		BackgroundColor: b.BackgroundColor,
		TextColor:       b.TextColor,
	}
	if b.Position != nil {
		view.Position = *b.Position
	}

	switch models.NormalizeBlockType(b.Type) {
	case models.BlockText:
		view.Text = renderText(b.Text)
	case models.BlockImage:
		view.Image = renderImage(b.Image)
		if view.Image.Alt == "" {
			view.Image.Alt = b.Title
		}
	case models.BlockList:
		view.List = renderList(b.List)
	case models.BlockWeather:
		view.Weather = renderWeather(b.Weather, aux)
	case models.BlockTime:
		view.Time = renderTime(b.Time)
	case models.BlockStaff:
		view.Staff = renderStaff(b.Staff, aux)
	case models.BlockNews:
		view.News = renderNews(b.News, aux)
	case models.BlockTable:
		view.Table = renderTable(b.TableData)
	case models.BlockCarousel:
		view.Carousel = renderCarousel(b.Carousel, aux)
	default:
		// Unknown tag from a future schema: render an empty text tile
		// rather than dropping the slot.
		view.Text = &TextView{Content: "", TextAlign: "center"}
	}
	return view
}

// themeOrDefault treats empty and unknown stored themes as "system".
func themeOrDefault(t models.BlockTheme) string {
	if !t.Valid() {
		return string(models.ThemeSystem)
	}
	return string(t)
}

func renderText(p *models.TextPayload) *TextView {
	v := &TextView{TextAlign: "left"}
	if p != nil {
		v.Content = p.Content
		if p.TextAlign != "" {
			v.TextAlign = p.TextAlign
		}
	}
	return v
}

func renderImage(p *models.ImagePayload) *ImageView {
	v := &ImageView{}
	if p != nil {
		v.URL = p.ImageURL
		v.Alt = p.Alt
	}
	return v
}

// renderList paginates long lists: above the threshold the items split
// into two flipping pages of ceil(n/2).
func renderList(p *models.ListPayload) *ListView {
	items := []string{}
	style := "bullet"
	if p != nil {
		if p.Items != nil {
			items = p.Items
		}
		if p.ListStyle != "" {
			style = p.ListStyle
		}
	}

	if len(items) <= listPageThreshold {
		return &ListView{
			Pages:        [][]string{items},
			ItemsPerPage: len(items),
			ListStyle:    style,
			Paginated:    false,
		}
	}

	perPage := int(math.Ceil(float64(len(items)) / 2))
	pages := make([][]string, 0, 2)
	for start := 0; start < len(items); start += perPage {
		end := start + perPage
		if end > len(items) {
			end = len(items)
		}
		pages = append(pages, items[start:end])
	}
	return &ListView{
		Pages:        pages,
		ItemsPerPage: perPage,
		ListStyle:    style,
		Paginated:    true,
		FlipMS:       listFlipMS,
		TransitionMS: listTransitionMS,
	}
}

func renderWeather(p *models.WeatherField, aux *AuxData) *WeatherView {
	v := &WeatherView{Unit: "C", Current: aux.Weather.Data, Degraded: aux.Weather.Degraded}
	if p != nil {
		v.Location = p.Location
		if p.Unit != "" {
			v.Unit = p.Unit
		}
	}
	return v
}

func renderTime(p *models.TimePayload) *TimeView {
	v := &TimeView{Format: "12h"}
	if p != nil {
		if p.Format != "" {
			v.Format = p.Format
		}
		v.ShowSeconds = p.ShowSeconds
	}
	return v
}

// renderStaff filters the shared roster to the block's selected positions;
// an empty selection shows the whole board.
func renderStaff(p *models.StaffPayload, aux *AuxData) *StaffView {
	selected := map[string]bool{}
	if p != nil {
		for _, pos := range p.Positions {
			selected[pos] = true
		}
	}

	rows := make([]StaffRow, 0, len(aux.Positions))
	for _, row := range aux.Positions {
		if len(selected) > 0 && !selected[row.Position] {
			continue
		}
		rows = append(rows, StaffRow{Position: row.Position, Count: row.Count})
	}
	return &StaffView{Rows: rows}
}

func renderNews(p *models.NewsPayload, aux *AuxData) *NewsView {
	headlines := aux.News.Data
	if headlines == nil {
		headlines = []feeds.NewsHeadline{}
	}

	indexCap := len(headlines)
	if indexCap > newsIndexCap {
		indexCap = newsIndexCap
	}

	v := &NewsView{
		Headlines: headlines,
		RotateMS:  newsRotateMS,
		FadeMS:    newsFadeMS,
		IndexCap:  indexCap,
		Degraded:  aux.News.Degraded,
	}
	if p != nil && p.ShowNifty {
		quote := aux.Market.Data
		v.Market = &quote
	}
	if p != nil && p.ShowWeather {
		weather := aux.Weather.Data
		v.Weather = &weather
	}
	return v
}

// renderTable never fails: malformed rows already scanned to an empty grid.
func renderTable(p *models.TablePayload) *TableView {
	v := &TableView{Headers: []string{}, Rows: [][]string{}}
	if p != nil {
		if p.Headers != nil {
			v.Headers = p.Headers
		}
		if p.Rows != nil {
			v.Rows = p.Rows
		}
	}
	return v
}

// renderCarousel cycles the shared image collection, not a per-block list.
func renderCarousel(p *models.CarouselField, aux *AuxData) *CarouselView {
	urls := make([]string, 0, len(aux.Images))
	for _, img := range aux.Images {
		urls = append(urls, img.ImageURL)
	}

	interval := carouselDefaultMS
	if p != nil && p.TransitionInterval > 0 {
		interval = p.TransitionInterval
	}
	return &CarouselView{Images: urls, TransitionMS: interval}
}

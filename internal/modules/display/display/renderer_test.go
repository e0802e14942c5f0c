package display

import (
	"fmt"
	"testing"

	"github.com/sjcet-apps/billboard-core/internal/models"
	"github.com/sjcet-apps/billboard-core/internal/modules/feeds/feeds"
)

func contentViewCount(v BlockView) int {
	n := 0
	if v.Text != nil {
		n++
	}
	if v.Image != nil {
		n++
	}
	if v.List != nil {
		n++
	}
	if v.Weather != nil {
		n++
	}
	if v.Time != nil {
		n++
	}
	if v.Staff != nil {
		n++
	}
	if v.News != nil {
		n++
	}
	if v.Table != nil {
		n++
	}
	if v.Carousel != nil {
		n++
	}
	return n
}

func TestRenderTotalOverAllTypes(t *testing.T) {
	// Every known tag with a nil payload must still render exactly one
	// content view.
	for _, bt := range models.AllBlockTypes {
		t.Run(string(bt), func(t *testing.T) {
			b := &models.BlockModel{Type: bt}
			v := Render(b, nil)
			if got := contentViewCount(v); got != 1 {
				t.Errorf("Render(%q) produced %d content views, want 1", bt, got)
			}
			if v.Type != string(bt) {
				t.Errorf("Render(%q).Type = %q", bt, v.Type)
			}
		})
	}
}

func TestRenderLegacyTags(t *testing.T) {
	cases := []struct {
		tag  models.BlockType
		want string
	}{
		{"faculty", "staff"},
		{"marquee", "news"},
	}
	for _, c := range cases {
		v := Render(&models.BlockModel{Type: c.tag}, nil)
		if v.Type != c.want {
			t.Errorf("Render(%q).Type = %q, want %q", c.tag, v.Type, c.want)
		}
		if contentViewCount(v) != 1 {
			t.Errorf("Render(%q) did not produce exactly one content view", c.tag)
		}
	}
}

func TestRenderUnknownTagFallsBack(t *testing.T) {
	v := Render(&models.BlockModel{Type: "hologram"}, nil)
	if v.Text == nil {
		t.Fatal("unknown tag should fall back to an empty text view")
	}
	if contentViewCount(v) != 1 {
		t.Error("fallback produced more than one content view")
	}
}

func TestRenderListPagination(t *testing.T) {
	makeItems := func(n int) []string {
		items := make([]string, n)
		for i := range items {
			items[i] = fmt.Sprintf("item %d", i+1)
		}
		return items
	}

	cases := []struct {
		name         string
		count        int
		wantPages    int
		wantPerPage  int
		wantPaginate bool
	}{
		{"empty list", 0, 1, 0, false},
		{"at threshold", 10, 1, 10, false},
		{"just over threshold", 11, 2, 6, true},
		{"a dozen", 12, 2, 6, true},
		{"twenty", 20, 2, 10, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := &models.BlockModel{
				Type: models.BlockList,
				List: &models.ListPayload{Items: makeItems(c.count)},
			}
			v := Render(b, nil)
			if v.List == nil {
				t.Fatal("no list view rendered")
			}
			if len(v.List.Pages) != c.wantPages {
				t.Errorf("pages = %d, want %d", len(v.List.Pages), c.wantPages)
			}
			if v.List.ItemsPerPage != c.wantPerPage {
				t.Errorf("itemsPerPage = %d, want %d", v.List.ItemsPerPage, c.wantPerPage)
			}
			if v.List.Paginated != c.wantPaginate {
				t.Errorf("paginated = %v, want %v", v.List.Paginated, c.wantPaginate)
			}
			if c.wantPaginate {
				if v.List.FlipMS != listFlipMS || v.List.TransitionMS != listTransitionMS {
					t.Errorf("flip timing = %d/%d, want %d/%d",
						v.List.FlipMS, v.List.TransitionMS, listFlipMS, listTransitionMS)
				}
			}

			total := 0
			for _, page := range v.List.Pages {
				total += len(page)
			}
			if total != c.count {
				t.Errorf("pages lost items: %d, want %d", total, c.count)
			}
		})
	}
}

func TestRenderNewsView(t *testing.T) {
	headlines := make([]feeds.NewsHeadline, 12)
	for i := range headlines {
		headlines[i].Title = fmt.Sprintf("headline %d", i+1)
	}
	aux := &AuxData{
		News:   feeds.Result[[]feeds.NewsHeadline]{Data: headlines},
		Market: feeds.Result[feeds.MarketQuote]{Data: feeds.MarketQuote{Symbol: "NIFTY 50", Last: 24100.5}},
	}

	b := &models.BlockModel{
		Type: models.BlockNews,
		News: &models.NewsPayload{ShowNifty: true},
	}
	v := Render(b, aux)
	if v.News == nil {
		t.Fatal("no news view rendered")
	}
	if v.News.IndexCap != newsIndexCap {
		t.Errorf("IndexCap = %d, want %d", v.News.IndexCap, newsIndexCap)
	}
	if v.News.RotateMS != newsRotateMS || v.News.FadeMS != newsFadeMS {
		t.Errorf("timing = %d/%d", v.News.RotateMS, v.News.FadeMS)
	}
	if v.News.Market == nil || v.News.Market.Symbol != "NIFTY 50" {
		t.Error("market phase missing")
	}
	if v.News.Weather != nil {
		t.Error("weather phase should be off when not requested")
	}

	// Fewer headlines than the cap: cap tracks the list.
	aux.News.Data = headlines[:3]
	v = Render(b, aux)
	if v.News.IndexCap != 3 {
		t.Errorf("IndexCap = %d, want 3", v.News.IndexCap)
	}
}

func TestRenderStaffFiltering(t *testing.T) {
	aux := &AuxData{
		Positions: []models.StaffPositionModel{
			{Position: "Professor", Count: 4},
			{Position: "Assistant Professor", Count: 11},
			{Position: "Lab Staff", Count: 3},
		},
	}

	b := &models.BlockModel{
		Type:  models.BlockStaff,
		Staff: &models.StaffPayload{Positions: []string{"Professor", "Lab Staff"}},
	}
	v := Render(b, aux)
	if v.Staff == nil {
		t.Fatal("no staff view rendered")
	}
	if len(v.Staff.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(v.Staff.Rows))
	}
	if v.Staff.Rows[0].Position != "Professor" || v.Staff.Rows[1].Position != "Lab Staff" {
		t.Errorf("unexpected rows %+v", v.Staff.Rows)
	}

	// Empty selection shows the whole roster.
	b.Staff = &models.StaffPayload{}
	v = Render(b, aux)
	if len(v.Staff.Rows) != 3 {
		t.Errorf("rows = %d, want 3", len(v.Staff.Rows))
	}
}

func TestRenderCarousel(t *testing.T) {
	aux := &AuxData{
		Images: []models.ImageModel{
			{ImageURL: "https://cdn.example.com/a.webp"},
			{ImageURL: "https://cdn.example.com/b.webp"},
		},
	}

	v := Render(&models.BlockModel{Type: models.BlockCarousel}, aux)
	if v.Carousel == nil {
		t.Fatal("no carousel view rendered")
	}
	if len(v.Carousel.Images) != 2 {
		t.Errorf("images = %d, want 2", len(v.Carousel.Images))
	}
	if v.Carousel.TransitionMS != carouselDefaultMS {
		t.Errorf("interval = %d, want %d", v.Carousel.TransitionMS, carouselDefaultMS)
	}

	b := &models.BlockModel{
		Type:     models.BlockCarousel,
		Carousel: &models.CarouselField{TransitionInterval: 8000},
	}
	if v := Render(b, aux); v.Carousel.TransitionMS != 8000 {
		t.Errorf("interval = %d, want 8000", v.Carousel.TransitionMS)
	}
}

func TestRenderPlacementAndPosition(t *testing.T) {
	pos := 4
	b := &models.BlockModel{
		Type:     models.BlockText,
		Position: &pos,
		Width:    14,
		Height:   161,
	}
	v := Render(b, nil)
	if v.Position != 4 {
		t.Errorf("position = %d, want 4", v.Position)
	}
	if v.Placement.ColSpan != 12 || v.Placement.RowSpan != 3 {
		t.Errorf("placement = %+v, want {12 3}", v.Placement)
	}
}

func TestRenderTheme(t *testing.T) {
	cases := []struct {
		stored models.BlockTheme
		want   string
	}{
		{models.ThemeLight, "light"},
		{models.ThemeDark, "dark"},
		{models.ThemeSystem, "system"},
		{"", "system"},
		{"neon", "system"},
	}
	for _, tc := range cases {
		v := Render(&models.BlockModel{Type: models.BlockText, Theme: tc.stored}, nil)
		if v.Theme != tc.want {
			t.Errorf("theme %q rendered as %q, want %q", tc.stored, v.Theme, tc.want)
		}
	}
}

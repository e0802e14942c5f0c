package feeds

import "time"

// cache TTL shared by all upstream feeds; displays refresh on this cadence
const cacheTTL = 5 * time.Minute

const (
	cacheKeyWeather = "bb:feed:weather"
	cacheKeyNews    = "bb:feed:news"
	cacheKeyMarket  = "bb:feed:market"
	cacheKeyFonts   = "bb:feed:fonts"

	// lastSuffix keys hold the last good payload with no TTL, served when
	// the upstream is down.
	lastSuffix = ":last"
)

// WeatherInfo is the current-hour forecast shown by weather blocks and the
// news ticker's weather phase.
type WeatherInfo struct {
	TemperatureC float64   `json:"temperatureC"`
	Phrase       string    `json:"phrase"`
	IsDaylight   bool      `json:"isDaylight"`
	FetchedAt    time.Time `json:"fetchedAt"`
}

// NewsHeadline is one rotating ticker item.
type NewsHeadline struct {
	Title       string `json:"title"`
	Source      string `json:"source"`
	URL         string `json:"url"`
	PublishedAt string `json:"publishedAt"`
}

// MarketQuote carries the NIFTY 50 snapshot for the ticker's market phase.
type MarketQuote struct {
	Symbol        string  `json:"symbol"`
	Last          float64 `json:"last"`
	PercentChange float64 `json:"percentChange"`
}

// FontFamily is one entry of the webfonts proxy.
type FontFamily struct {
	Family   string   `json:"family"`
	Category string   `json:"category"`
	Variants []string `json:"variants,omitempty"`
}

// Result wraps a feed payload with its serving state. Degraded means the
// upstream failed and the payload is the last good one (or empty).
type Result[T any] struct {
	Data     T    `json:"data"`
	Degraded bool `json:"degraded,omitempty"`
}

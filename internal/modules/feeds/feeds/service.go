package feeds

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	appconfig "github.com/sjcet-apps/billboard-core/internal/config"
	pkgredis "github.com/sjcet-apps/billboard-core/internal/pkg/redis"
)

const (
	defaultWeatherBase = "https://dataservice.accuweather.com"
	defaultNewsBase    = "https://api.thenewsapi.com"
	defaultMarketBase  = "https://www.nseindia.com"
	defaultFontsBase   = "https://www.googleapis.com"

	maxHeadlines = 3
	niftyIndex   = "NIFTY 50"
)

// Service proxies the upstream feed APIs with a Redis cache in front, so a
// wall of displays never multiplies upstream calls.
type Service struct {
	cfg    appconfig.FeedsConfig
	rc     *pkgredis.Client
	client *http.Client

	weatherBase string
	newsBase    string
	marketBase  string
	fontsBase   string
}

func NewService(cfg appconfig.FeedsConfig, rc *pkgredis.Client) *Service {
	return &Service{
		cfg:         cfg,
		rc:          rc,
		client:      &http.Client{Timeout: 10 * time.Second},
		weatherBase: defaultWeatherBase,
		newsBase:    defaultNewsBase,
		marketBase:  defaultMarketBase,
		fontsBase:   defaultFontsBase,
	}
}

// Weather returns the current-hour forecast, cached for five minutes.
func (s *Service) Weather(ctx context.Context) Result[WeatherInfo] {
	return fetchCached(ctx, s, cacheKeyWeather, s.fetchWeather)
}

// News returns the top headlines, cached for five minutes.
func (s *Service) News(ctx context.Context) Result[[]NewsHeadline] {
	return fetchCached(ctx, s, cacheKeyNews, s.fetchNews)
}

// Market returns the NIFTY 50 snapshot, cached for five minutes.
func (s *Service) Market(ctx context.Context) Result[MarketQuote] {
	return fetchCached(ctx, s, cacheKeyMarket, s.fetchMarket)
}

// Fonts returns popular webfont families, cached for five minutes.
func (s *Service) Fonts(ctx context.Context) Result[[]FontFamily] {
	return fetchCached(ctx, s, cacheKeyFonts, s.fetchFonts)
}

// RefreshAll repopulates every feed cache. Run from the scheduler so
// display reads always hit warm cache.
func (s *Service) RefreshAll(ctx context.Context) error {
	var errs []string
	if w, err := s.fetchWeather(ctx); err == nil {
		s.store(ctx, cacheKeyWeather, w)
	} else {
		errs = append(errs, fmt.Sprintf("weather: %v", err))
	}
	if n, err := s.fetchNews(ctx); err == nil {
		s.store(ctx, cacheKeyNews, n)
	} else {
		errs = append(errs, fmt.Sprintf("news: %v", err))
	}
	if m, err := s.fetchMarket(ctx); err == nil {
		s.store(ctx, cacheKeyMarket, m)
	} else {
		errs = append(errs, fmt.Sprintf("market: %v", err))
	}
	if len(errs) > 0 {
		return fmt.Errorf("feed refresh: %s", strings.Join(errs, "; "))
	}
	return nil
}

// fetchCached serves cache first, falls through to the upstream, and on
// upstream failure degrades to the last good payload.
func fetchCached[T any](ctx context.Context, s *Service, key string, fetch func(context.Context) (T, error)) Result[T] {
	var cached T
	if s.rc != nil {
		if ok, err := s.rc.GetJSON(ctx, key, &cached); err == nil && ok {
			return Result[T]{Data: cached}
		}
	}

	fresh, err := fetch(ctx)
	if err == nil {
		s.store(ctx, key, fresh)
		return Result[T]{Data: fresh}
	}

	var last T
	if s.rc != nil {
		if ok, lerr := s.rc.GetJSON(ctx, key+lastSuffix, &last); lerr == nil && ok {
			return Result[T]{Data: last, Degraded: true}
		}
	}
	return Result[T]{Data: last, Degraded: true}
}

func (s *Service) store(ctx context.Context, key string, value interface{}) {
	if s.rc == nil {
		return
	}
	_ = s.rc.SetJSON(ctx, key, value, cacheTTL)
	_ = s.rc.SetJSON(ctx, key+lastSuffix, value, 0)
}

func (s *Service) fetchWeather(ctx context.Context) (WeatherInfo, error) {
	if s.cfg.WeatherAPIKey == "" || s.cfg.WeatherLocationKey == "" {
		return WeatherInfo{}, fmt.Errorf("weather feed not configured")
	}

	u := fmt.Sprintf("%s/forecasts/v1/hourly/1hour/%s?apikey=%s&metric=true",
		s.weatherBase, url.PathEscape(s.cfg.WeatherLocationKey), url.QueryEscape(s.cfg.WeatherAPIKey))

	var payload []struct {
		IconPhrase  string `json:"IconPhrase"`
		IsDaylight  bool   `json:"IsDaylight"`
		Temperature struct {
			Value float64 `json:"Value"`
		} `json:"Temperature"`
	}
	if err := s.getJSON(ctx, u, &payload); err != nil {
		return WeatherInfo{}, err
	}
	if len(payload) == 0 {
		return WeatherInfo{}, fmt.Errorf("weather feed returned no hours")
	}

	return WeatherInfo{
		TemperatureC: payload[0].Temperature.Value,
		Phrase:       payload[0].IconPhrase,
		IsDaylight:   payload[0].IsDaylight,
		FetchedAt:    time.Now(),
	}, nil
}

func (s *Service) fetchNews(ctx context.Context) ([]NewsHeadline, error) {
	if s.cfg.NewsAPIToken == "" {
		return nil, fmt.Errorf("news feed not configured")
	}

	u := fmt.Sprintf("%s/v1/news/top?api_token=%s&locale=in&limit=%d",
		s.newsBase, url.QueryEscape(s.cfg.NewsAPIToken), maxHeadlines)

	var payload struct {
		Data []struct {
			Title       string `json:"title"`
			Source      string `json:"source"`
			URL         string `json:"url"`
			PublishedAt string `json:"published_at"`
		} `json:"data"`
	}
	if err := s.getJSON(ctx, u, &payload); err != nil {
		return nil, err
	}

	out := make([]NewsHeadline, 0, len(payload.Data))
	for _, item := range payload.Data {
		if item.Title == "" {
			continue
		}
		out = append(out, NewsHeadline{
			Title:       item.Title,
			Source:      item.Source,
			URL:         item.URL,
			PublishedAt: item.PublishedAt,
		})
		if len(out) == maxHeadlines {
			break
		}
	}
	return out, nil
}

func (s *Service) fetchMarket(ctx context.Context) (MarketQuote, error) {
	u := s.marketBase + "/api/allIndices"

	var payload struct {
		Data []struct {
			Index         string  `json:"index"`
			Last          float64 `json:"last"`
			PercentChange float64 `json:"percentChange"`
		} `json:"data"`
	}
	if err := s.getJSON(ctx, u, &payload); err != nil {
		return MarketQuote{}, err
	}

	for _, row := range payload.Data {
		if row.Index == niftyIndex {
			return MarketQuote{Symbol: niftyIndex, Last: row.Last, PercentChange: row.PercentChange}, nil
		}
	}
	return MarketQuote{}, fmt.Errorf("index %q not in feed", niftyIndex)
}

func (s *Service) fetchFonts(ctx context.Context) ([]FontFamily, error) {
	if s.cfg.FontsAPIKey == "" {
		return nil, fmt.Errorf("fonts feed not configured")
	}

	u := fmt.Sprintf("%s/webfonts/v1/webfonts?key=%s&sort=popularity",
		s.fontsBase, url.QueryEscape(s.cfg.FontsAPIKey))

	var payload struct {
		Items []struct {
			Family   string   `json:"family"`
			Category string   `json:"category"`
			Variants []string `json:"variants"`
		} `json:"items"`
	}
	if err := s.getJSON(ctx, u, &payload); err != nil {
		return nil, err
	}

	out := make([]FontFamily, 0, len(payload.Items))
	for _, item := range payload.Items {
		out = append(out, FontFamily{Family: item.Family, Category: item.Category, Variants: item.Variants})
	}
	return out, nil
}

func (s *Service) getJSON(ctx context.Context, rawURL string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("upstream status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return err
	}
	return json.Unmarshal(body, dest)
}

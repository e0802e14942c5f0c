package feeds

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	appconfig "github.com/sjcet-apps/billboard-core/internal/config"
)

func testService(cfg appconfig.FeedsConfig) *Service {
	// no redis: every call goes straight to the upstream
	return NewService(cfg, nil)
}

func TestFetchWeather(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/forecasts/v1/hourly/1hour/12345" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"IconPhrase":"Partly sunny","IsDaylight":true,"Temperature":{"Value":29.5,"Unit":"C"}}]`))
	}))
	defer srv.Close()

	s := testService(appconfig.FeedsConfig{WeatherAPIKey: "k", WeatherLocationKey: "12345"})
	s.weatherBase = srv.URL

	info, err := s.fetchWeather(context.Background())
	if err != nil {
		t.Fatalf("fetchWeather: %v", err)
	}
	if info.TemperatureC != 29.5 || info.Phrase != "Partly sunny" || !info.IsDaylight {
		t.Errorf("weather = %+v", info)
	}
}

func TestFetchNewsCapsHeadlines(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[
			{"title":"one","source":"a","url":"u1","published_at":"2026-08-30"},
			{"title":"","source":"skip","url":"","published_at":""},
			{"title":"two","source":"b","url":"u2","published_at":"2026-08-30"},
			{"title":"three","source":"c","url":"u3","published_at":"2026-08-30"},
			{"title":"four","source":"d","url":"u4","published_at":"2026-08-30"}
		]}`))
	}))
	defer srv.Close()

	s := testService(appconfig.FeedsConfig{NewsAPIToken: "t"})
	s.newsBase = srv.URL

	items, err := s.fetchNews(context.Background())
	if err != nil {
		t.Fatalf("fetchNews: %v", err)
	}
	if len(items) != maxHeadlines {
		t.Fatalf("got %d headlines, want %d", len(items), maxHeadlines)
	}
	if items[0].Title != "one" || items[2].Title != "three" {
		t.Errorf("headlines = %+v", items)
	}
}

func TestFetchMarketSelectsNifty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[
			{"index":"NIFTY BANK","last":51230.1,"percentChange":0.4},
			{"index":"NIFTY 50","last":24120.35,"percentChange":-0.21}
		]}`))
	}))
	defer srv.Close()

	s := testService(appconfig.FeedsConfig{})
	s.marketBase = srv.URL

	q, err := s.fetchMarket(context.Background())
	if err != nil {
		t.Fatalf("fetchMarket: %v", err)
	}
	if q.Symbol != "NIFTY 50" || q.Last != 24120.35 || q.PercentChange != -0.21 {
		t.Errorf("quote = %+v", q)
	}
}

func TestWeatherDegradesOnUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	s := testService(appconfig.FeedsConfig{WeatherAPIKey: "k", WeatherLocationKey: "12345"})
	s.weatherBase = srv.URL

	res := s.Weather(context.Background())
	if !res.Degraded {
		t.Error("Weather() not marked degraded on upstream failure")
	}
	if res.Data.TemperatureC != 0 || res.Data.Phrase != "" {
		t.Errorf("degraded payload not empty: %+v", res.Data)
	}
}

func TestFetchWeatherUnconfigured(t *testing.T) {
	s := testService(appconfig.FeedsConfig{})
	if _, err := s.fetchWeather(context.Background()); err == nil {
		t.Error("fetchWeather without keys should fail")
	}
}

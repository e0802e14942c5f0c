package config

import (
	"fmt"
	"net"
	neturl "net/url"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"

	defaultPort       = 2333
	defaultEnv        = "development"
	defaultDBHost     = "127.0.0.1"
	defaultDBPort     = 3306
	defaultDBUser     = "root"
	defaultDBPassword = "password"
	defaultDBName     = "billboard"
	defaultDBCharset  = "utf8mb4"
	defaultDBLoc      = "Local"
	defaultRedisURL   = "redis://localhost:6379/0"
)

// AppConfig holds runtime startup configuration loaded from YAML, with
// environment variable overrides for secrets.
type AppConfig struct {
	Port           int            `yaml:"port"`
	Env            string         `yaml:"env"` // "development" | "production"
	Database       DatabaseConfig `yaml:"database"`
	RedisURL       string         `yaml:"redis_url"`
	JWTSecret      string         `yaml:"jwt_secret"`
	AllowedOrigins []string       `yaml:"allowed_origins"`
	Timezone       string         `yaml:"timezone"`
	S3             S3Config       `yaml:"s3"`
	Feeds          FeedsConfig    `yaml:"feeds"`
}

type DatabaseConfig struct {
	DSN      string `yaml:"dsn"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	Charset  string `yaml:"charset"`
	Loc      string `yaml:"loc"`
}

// S3Config points image uploads at an S3-compatible bucket.
type S3Config struct {
	Endpoint  string `yaml:"endpoint"`
	Region    string `yaml:"region"`
	Bucket    string `yaml:"bucket"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	// PublicBase is the URL prefix served to displays; defaults to the
	// endpoint/bucket form when empty.
	PublicBase string `yaml:"public_base"`
}

// FeedsConfig carries upstream API credentials for the live tiles.
type FeedsConfig struct {
	WeatherAPIKey      string `yaml:"weather_api_key"`
	WeatherLocationKey string `yaml:"weather_location_key"`
	NewsAPIToken       string `yaml:"news_api_token"`
	FontsAPIKey        string `yaml:"fonts_api_key"`
}

// Load reads the YAML config at path. A missing file yields defaults so
// the server still boots in development.
func Load(path string) (*AppConfig, error) {
	cfg := &AppConfig{}

	if path == "" {
		path = DefaultConfigPath
	}
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.normalize()
	return cfg, nil
}

// Env overrides take precedence over file values, so deployments can keep
// secrets out of the config file.
func (c *AppConfig) applyEnv() {
	if v := strings.TrimSpace(os.Getenv("BILLBOARD_PORT")); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Port = p
		}
	}
	setIfEnv(&c.Env, "BILLBOARD_ENV")
	setIfEnv(&c.Database.DSN, "BILLBOARD_DSN")
	setIfEnv(&c.RedisURL, "BILLBOARD_REDIS_URL")
	setIfEnv(&c.JWTSecret, "BILLBOARD_JWT_SECRET")
	setIfEnv(&c.S3.Endpoint, "BILLBOARD_S3_ENDPOINT")
	setIfEnv(&c.S3.Region, "BILLBOARD_S3_REGION")
	setIfEnv(&c.S3.Bucket, "BILLBOARD_S3_BUCKET")
	setIfEnv(&c.S3.AccessKey, "BILLBOARD_S3_ACCESS_KEY")
	setIfEnv(&c.S3.SecretKey, "BILLBOARD_S3_SECRET_KEY")
	setIfEnv(&c.Feeds.WeatherAPIKey, "BILLBOARD_WEATHER_API_KEY")
	setIfEnv(&c.Feeds.WeatherLocationKey, "BILLBOARD_WEATHER_LOCATION_KEY")
	setIfEnv(&c.Feeds.NewsAPIToken, "BILLBOARD_NEWS_API_TOKEN")
	setIfEnv(&c.Feeds.FontsAPIKey, "BILLBOARD_FONTS_API_KEY")
}

func setIfEnv(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func (c *AppConfig) normalize() {
	if c.Port == 0 {
		c.Port = defaultPort
	}
	c.Env = strings.ToLower(strings.TrimSpace(c.Env))
	if c.Env == "" {
		c.Env = defaultEnv
	}
	if strings.TrimSpace(c.RedisURL) == "" {
		c.RedisURL = defaultRedisURL
	}
	origins := make([]string, 0, len(c.AllowedOrigins))
	for _, o := range c.AllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	c.AllowedOrigins = origins
}

// IsProduction reports whether the server runs in production mode.
func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}

// DSNValue builds the MySQL DSN, preferring an explicit dsn value.
func (d DatabaseConfig) DSNValue() string {
	if v := strings.TrimSpace(d.DSN); v != "" {
		return v
	}

	host := strOr(d.Host, defaultDBHost)
	port := d.Port
	if port == 0 {
		port = defaultDBPort
	}
	user := strOr(d.User, defaultDBUser)
	password := strOr(d.Password, defaultDBPassword)
	name := strOr(d.Name, defaultDBName)

	params := neturl.Values{}
	params.Set("charset", strOr(d.Charset, defaultDBCharset))
	params.Set("parseTime", "True")
	params.Set("loc", strOr(d.Loc, defaultDBLoc))

	return fmt.Sprintf("%s:%s@tcp(%s)/%s?%s",
		user, password, net.JoinHostPort(host, strconv.Itoa(port)), name, params.Encode())
}

// PublicURL returns the served URL for an object key.
func (s S3Config) PublicURL(key string) string {
	base := strings.TrimRight(strings.TrimSpace(s.PublicBase), "/")
	if base == "" {
		base = strings.TrimRight(strings.TrimSpace(s.Endpoint), "/") + "/" + s.Bucket
	}
	return base + "/" + strings.TrimLeft(key, "/")
}

// Configured reports whether uploads can reach object storage.
func (s S3Config) Configured() bool {
	return s.Bucket != "" && s.AccessKey != "" && s.SecretKey != ""
}

func strOr(v, def string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return def
}

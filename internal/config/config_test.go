package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != defaultPort {
		t.Errorf("Port = %d, want %d", cfg.Port, defaultPort)
	}
	if cfg.Env != "development" {
		t.Errorf("Env = %q, want development", cfg.Env)
	}
	if cfg.RedisURL != defaultRedisURL {
		t.Errorf("RedisURL = %q, want %q", cfg.RedisURL, defaultRedisURL)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := strings.Join([]string{
		"port: 8080",
		"env: Production",
		"jwt_secret: sekrit",
		"allowed_origins:",
		"  - https://signage.example.edu",
		"  - ''",
		"database:",
		"  host: db.internal",
		"  name: signage",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if !cfg.IsProduction() {
		t.Error("IsProduction() = false, want true")
	}
	if len(cfg.AllowedOrigins) != 1 {
		t.Errorf("AllowedOrigins = %v, want one entry", cfg.AllowedOrigins)
	}

	dsn := cfg.Database.DSNValue()
	if !strings.Contains(dsn, "tcp(db.internal:3306)/signage") {
		t.Errorf("DSNValue() = %q, missing host/db", dsn)
	}
	if !strings.Contains(dsn, "parseTime=True") {
		t.Errorf("DSNValue() = %q, missing parseTime", dsn)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("BILLBOARD_JWT_SECRET", "from-env")
	t.Setenv("BILLBOARD_PORT", "9001")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.JWTSecret != "from-env" {
		t.Errorf("JWTSecret = %q, want from-env", cfg.JWTSecret)
	}
	if cfg.Port != 9001 {
		t.Errorf("Port = %d, want 9001", cfg.Port)
	}
}

func TestS3PublicURL(t *testing.T) {
	s := S3Config{Endpoint: "https://s3.ap-south-1.amazonaws.com/", Bucket: "signage"}
	if got := s.PublicURL("/imagetemp/a.webp"); got != "https://s3.ap-south-1.amazonaws.com/signage/imagetemp/a.webp" {
		t.Errorf("PublicURL = %q", got)
	}

	s.PublicBase = "https://cdn.example.edu"
	if got := s.PublicURL("imagetemp/a.webp"); got != "https://cdn.example.edu/imagetemp/a.webp" {
		t.Errorf("PublicURL with base = %q", got)
	}
}

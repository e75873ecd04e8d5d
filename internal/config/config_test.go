package config

import (
	"testing"
	"time"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{
		"HTTP_ADDR", "LOG_LEVEL", "APP_ENV", "MAX_UPLOAD_BYTES",
		"VERIFY_CACHE_TTL_SECONDS", "VERIFY_CACHE_MAX_ENTRIES",
		"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB",
		"CORS_ALLOW_ORIGINS", "CORS_ALLOW_METHODS", "CORS_ALLOW_HEADERS",
		"CORS_ALLOW_CREDENTIALS",
	} {
		t.Setenv(key, "")
	}
	cfg := FromEnv()
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected addr: %s", cfg.HTTPAddr)
	}
	if cfg.LogLevel != "info" || cfg.AppEnv != "development" {
		t.Fatalf("unexpected log defaults: %s/%s", cfg.LogLevel, cfg.AppEnv)
	}
	if cfg.MaxUploadBytes != 0 {
		t.Fatalf("upload limit should default to unbounded, got %d", cfg.MaxUploadBytes)
	}
	if cfg.CacheTTL() != 0 {
		t.Fatalf("cache should default to disabled, got ttl %v", cfg.CacheTTL())
	}
	if cfg.CacheMaxEntries != 10000 {
		t.Fatalf("unexpected cache bound: %d", cfg.CacheMaxEntries)
	}
	if !cfg.CORS.AllowAllOrigins || !cfg.CORS.AllowCredentials {
		t.Fatalf("CORS should default to permissive: %+v", cfg.CORS)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("MAX_UPLOAD_BYTES", "1048576")
	t.Setenv("VERIFY_CACHE_TTL_SECONDS", "300")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")

	cfg := FromEnv()
	if cfg.HTTPAddr != ":9090" {
		t.Fatalf("unexpected addr: %s", cfg.HTTPAddr)
	}
	if cfg.MaxUploadBytes != 1048576 {
		t.Fatalf("unexpected upload limit: %d", cfg.MaxUploadBytes)
	}
	if cfg.CacheTTL() != 5*time.Minute {
		t.Fatalf("unexpected ttl: %v", cfg.CacheTTL())
	}
	if cfg.RedisAddr != "localhost:6379" || cfg.RedisDB != 2 {
		t.Fatalf("unexpected redis config: %s/%d", cfg.RedisAddr, cfg.RedisDB)
	}
}

func TestFromEnv_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("MAX_UPLOAD_BYTES", "not-a-number")
	t.Setenv("VERIFY_CACHE_TTL_SECONDS", "-5")
	cfg := FromEnv()
	if cfg.MaxUploadBytes != 0 {
		t.Fatalf("invalid value should fall back: %d", cfg.MaxUploadBytes)
	}
	if cfg.CacheTTLSeconds != 0 {
		t.Fatalf("negative ttl should fall back: %d", cfg.CacheTTLSeconds)
	}
}

func TestCORSFromEnv(t *testing.T) {
	t.Setenv("CORS_ALLOW_ORIGINS", "https://app.example.com, https://admin.example.com")
	t.Setenv("CORS_ALLOW_METHODS", "GET,POST")
	t.Setenv("CORS_ALLOW_CREDENTIALS", "false")

	cfg := FromEnv()
	if cfg.CORS.AllowAllOrigins {
		t.Fatal("explicit origins should disable wildcard")
	}
	if len(cfg.CORS.AllowOrigins) != 2 || cfg.CORS.AllowOrigins[0] != "https://app.example.com" {
		t.Fatalf("unexpected origins: %v", cfg.CORS.AllowOrigins)
	}
	if len(cfg.CORS.AllowMethods) != 2 {
		t.Fatalf("unexpected methods: %v", cfg.CORS.AllowMethods)
	}
	if cfg.CORS.AllowCredentials {
		t.Fatal("credentials should be disabled")
	}
}

func TestPermissiveCORS(t *testing.T) {
	cors := PermissiveCORS()
	if !cors.AllowAllOrigins || !cors.AllowCredentials {
		t.Fatalf("unexpected defaults: %+v", cors)
	}
	if len(cors.AllowMethods) != 1 || cors.AllowMethods[0] != "*" {
		t.Fatalf("unexpected methods: %v", cors.AllowMethods)
	}
}

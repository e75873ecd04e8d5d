package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	HTTPAddr string
	LogLevel string
	AppEnv   string

	// 0 means no enforced maximum.
	MaxUploadBytes int64

	// 0 disables result caching entirely.
	CacheTTLSeconds int
	CacheMaxEntries int

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	CORS CORSConfig
}

// CORSConfig is handed to the HTTP layer at startup, separate from the
// scoring logic. The prototype default permits everything.
type CORSConfig struct {
	AllowAllOrigins  bool
	AllowOrigins     []string
	AllowMethods     []string
	AllowHeaders     []string
	AllowCredentials bool
}

// PermissiveCORS allows every origin, method, and header, with
// credentials. Suitable only for a prototype.
func PermissiveCORS() CORSConfig {
	return CORSConfig{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"*"},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
	}
}

func FromEnv() Config {
	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return Config{
		HTTPAddr:        addr,
		LogLevel:        envDefault("LOG_LEVEL", "info"),
		AppEnv:          envDefault("APP_ENV", "development"),
		MaxUploadBytes:  envInt64Default("MAX_UPLOAD_BYTES", 0),
		CacheTTLSeconds: envIntDefault("VERIFY_CACHE_TTL_SECONDS", 0),
		CacheMaxEntries: envIntDefault("VERIFY_CACHE_MAX_ENTRIES", 10000),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:         envIntDefault("REDIS_DB", 0),
		CORS:            corsFromEnv(),
	}
}

func corsFromEnv() CORSConfig {
	cfg := PermissiveCORS()
	origins := envDefault("CORS_ALLOW_ORIGINS", "*")
	if origins != "*" {
		cfg.AllowAllOrigins = false
		cfg.AllowOrigins = splitList(origins)
	}
	if methods := os.Getenv("CORS_ALLOW_METHODS"); methods != "" {
		cfg.AllowMethods = splitList(methods)
	}
	if headers := os.Getenv("CORS_ALLOW_HEADERS"); headers != "" {
		cfg.AllowHeaders = splitList(headers)
	}
	cfg.AllowCredentials = envBoolDefault("CORS_ALLOW_CREDENTIALS", true)
	return cfg
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func envDefault(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func envIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parsed, err := strconv.Atoi(v)
	if err != nil || parsed < 0 {
		return def
	}
	return parsed
}

func envInt64Default(key string, def int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parsed, err := strconv.ParseInt(v, 10, 64)
	if err != nil || parsed < 0 {
		return def
	}
	return parsed
}

func envBoolDefault(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	switch v {
	case "1", "true", "TRUE", "True", "yes", "YES", "Yes":
		return true
	case "0", "false", "FALSE", "False", "no", "NO", "No":
		return false
	default:
		return def
	}
}

func (c Config) CacheTTL() time.Duration {
	if c.CacheTTLSeconds <= 0 {
		return 0
	}
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

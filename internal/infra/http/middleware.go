package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ivanKorotkov735/cursor/internal/config"
)

const requestIDKey = "request_id"

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set(requestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		fields := []any{
			slog.String("request_id", c.GetString(requestIDKey)),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("duration", time.Since(start)),
			slog.Int("size_bytes", c.Writer.Size()),
		}
		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			slog.Error("http request", fields...)
		case c.Writer.Status() >= http.StatusBadRequest:
			slog.Warn("http request", fields...)
		default:
			slog.Info("http request", fields...)
		}
	}
}

// CORS applies the configuration passed at startup. With credentials
// enabled a wildcard origin is invalid on the wire, so the request
// origin is echoed instead.
func CORS(cfg config.CORSConfig) gin.HandlerFunc {
	allowMethods := strings.Join(cfg.AllowMethods, ", ")
	allowHeaders := strings.Join(cfg.AllowHeaders, ", ")
	wildcardHeaders := len(cfg.AllowHeaders) == 1 && cfg.AllowHeaders[0] == "*"

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		allowOrigin := ""
		switch {
		case cfg.AllowAllOrigins && cfg.AllowCredentials && origin != "":
			allowOrigin = origin
		case cfg.AllowAllOrigins:
			allowOrigin = "*"
		case origin != "":
			for _, entry := range cfg.AllowOrigins {
				if entry == origin {
					allowOrigin = origin
					break
				}
			}
		}
		if allowOrigin != "" {
			c.Header("Access-Control-Allow-Origin", allowOrigin)
			if allowOrigin != "*" {
				c.Header("Vary", "Origin")
			}
		}
		if cfg.AllowCredentials {
			c.Header("Access-Control-Allow-Credentials", "true")
		}
		if allowMethods != "" {
			c.Header("Access-Control-Allow-Methods", allowMethods)
		}
		headerValue := allowHeaders
		if wildcardHeaders && cfg.AllowCredentials {
			if requested := c.Request.Header.Get("Access-Control-Request-Headers"); requested != "" {
				headerValue = requested
			}
		}
		if headerValue != "" {
			c.Header("Access-Control-Allow-Headers", headerValue)
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/ivanKorotkov735/cursor/internal/config"
	"github.com/ivanKorotkov735/cursor/internal/infra/cache"
	"github.com/ivanKorotkov735/cursor/internal/usecase"
)

type Server struct {
	cfg      config.Config
	r        *gin.Engine
	verifyUC *usecase.VerifyUpload
}

type ServerDeps struct {
	Verify *usecase.VerifyUpload
}

func NewServer(cfg config.Config) *Server {
	verifyUC := &usecase.VerifyUpload{
		Engine: &usecase.ScoreEngineV0{},
		TTL:    cfg.CacheTTL(),
	}
	if cfg.CacheTTL() > 0 {
		verifyUC.Cache = buildCache(cfg)
	}
	return NewServerWithDeps(cfg, ServerDeps{Verify: verifyUC})
}

func NewServerWithDeps(cfg config.Config, deps ServerDeps) *Server {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(RequestLogger())
	r.Use(CORS(cfg.CORS))

	s := &Server{cfg: cfg, r: r, verifyUC: deps.Verify}
	if s.verifyUC == nil {
		s.verifyUC = &usecase.VerifyUpload{Engine: &usecase.ScoreEngineV0{}}
	}
	s.routes()
	return s
}

func buildCache(cfg config.Config) usecase.VerificationCache {
	if cfg.RedisAddr != "" {
		redisCache, err := cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err == nil {
			return redisCache
		}
		slog.Warn("redis cache unavailable, falling back to memory", "error", err)
	}
	return cache.NewMemory(cache.MemoryConfig{MaxEntries: cfg.CacheMaxEntries})
}

func (s *Server) routes() {
	s.r.GET("/health", s.handleHealth)
	s.r.POST("/verify", s.handleVerify)
	s.r.NoRoute(s.handleNoRoute)
}

func (s *Server) Run() error {
	addr := s.cfg.HTTPAddr
	if addr == "" {
		addr = ":8080"
	}
	slog.Info("verification service listening", "addr", addr)
	return s.r.Run(addr)
}

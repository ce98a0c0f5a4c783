package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/bizmatch/backend/config"
	"github.com/bizmatch/backend/internal/api"
	"github.com/bizmatch/backend/internal/middleware"
	"github.com/bizmatch/backend/internal/service"
)

// Server wraps the gin engine and the underlying HTTP server
type Server struct {
	engine *gin.Engine
	http   *http.Server
}

// New builds the server with all services and routes wired. The redis client
// may be nil, in which case rate limiting and listing caches are disabled.
func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.Use(middleware.CORS())

	authSvc := service.NewAuthService(db, cfg.JWTSecret)
	profileSvc := service.NewProfileService(db, redisClient)
	matchSvc := service.NewMatchService(db, redisClient)

	var limiter *middleware.RateLimiter
	if redisClient != nil {
		limiter = middleware.NewAuthRateLimiter(redisClient)
	}

	api.NewHandlers(authSvc, profileSvc, matchSvc).RegisterRoutes(router, limiter)

	return &Server{engine: router}
}

// Start begins serving on the configured port and blocks until the listener
// stops.
func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.engine,
	}
	return s.http.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http != nil {
		return s.http.Shutdown(ctx)
	}
	return nil
}

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bizmatch/backend/internal/middleware"
	"github.com/bizmatch/backend/internal/models"
	"github.com/bizmatch/backend/internal/service"
)

// Handlers bundles the API handlers and their services
type Handlers struct {
	auth    *service.AuthService
	profile *service.ProfileService
	match   *service.MatchService
}

func NewHandlers(auth *service.AuthService, profile *service.ProfileService, match *service.MatchService) *Handlers {
	return &Handlers{
		auth:    auth,
		profile: profile,
		match:   match,
	}
}

// RegisterRoutes wires all API routes onto the engine. The rate limiter is
// optional; when nil the auth endpoints are unthrottled.
func (h *Handlers) RegisterRoutes(r *gin.Engine, limiter *middleware.RateLimiter) {
	root := r.Group("/api")
	root.GET("/health", h.Health)

	auth := root.Group("/auth")
	if limiter != nil {
		auth.Use(limiter.Middleware())
	}
	auth.POST("/register", h.Register)
	auth.POST("/login", h.Login)

	authed := root.Group("")
	authed.Use(middleware.RequireAuth(h.auth))
	{
		authed.GET("/profile", h.GetProfile)
		authed.POST("/profile", h.SaveProfile)
		authed.GET("/matches", h.ListMatches)
		authed.GET("/buyers",
			middleware.RequireUserType(models.UserTypeSeller, "Only sellers can view buyer profiles"),
			h.ListBuyers)
		authed.POST("/matches/:buyerId",
			middleware.RequireUserType(models.UserTypeSeller, "Only sellers can accept/reject buyers"),
			h.Decide)
	}
}

func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK", "message": "Server is running"})
}

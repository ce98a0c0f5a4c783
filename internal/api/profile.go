package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/bizmatch/backend/internal/service"
	"github.com/bizmatch/backend/internal/types"
)

func (h *Handlers) GetProfile(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	view, err := h.profile.GetOwnProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		logrus.WithError(err).Error("failed to load profile")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *Handlers) SaveProfile(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	var req types.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.profile.UpsertProfile(c.Request.Context(), userID, &req); err != nil {
		logrus.WithError(err).Error("failed to save profile")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile saved successfully"})
}

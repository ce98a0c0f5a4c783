package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/bizmatch/backend/internal/models"
	"github.com/bizmatch/backend/internal/service"
	"github.com/bizmatch/backend/internal/types"
)

func (h *Handlers) ListBuyers(c *gin.Context) {
	sellerID := c.MustGet("user_id").(uuid.UUID)

	buyers, err := h.match.ListBuyers(c.Request.Context(), sellerID)
	if err != nil {
		logrus.WithError(err).Error("failed to list buyers")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, buyers)
}

func (h *Handlers) Decide(c *gin.Context) {
	sellerID := c.MustGet("user_id").(uuid.UUID)

	buyerID, err := uuid.Parse(c.Param("buyerId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid buyer id"})
		return
	}

	var req types.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid action"})
		return
	}

	if err := h.match.Decide(c.Request.Context(), sellerID, buyerID, req.Action); err != nil {
		if errors.Is(err, service.ErrInvalidAction) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid action"})
			return
		}
		logrus.WithError(err).Error("failed to record decision")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Buyer " + req.Action + "ed successfully"})
}

func (h *Handlers) ListMatches(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)
	userType := c.MustGet("user_type").(string)

	var (
		rows any
		err  error
	)
	if userType == models.UserTypeSeller {
		rows, err = h.match.ListSellerMatches(c.Request.Context(), userID)
	} else {
		rows, err = h.match.ListBuyerMatches(c.Request.Context(), userID)
	}
	if err != nil {
		logrus.WithError(err).Error("failed to list matches")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, rows)
}

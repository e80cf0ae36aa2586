package handlers

import (
	"net/http"

	"eventvibe/models"
	"eventvibe/services/account"
	"eventvibe/services/discovery"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuddiesHandler exposes travel companion matching over HTTP.
type BuddiesHandler struct {
	Svc      discovery.DiscoveryService
	Accounts account.AccountService
}

// NewBuddiesHandler wires the handler to its services.
func NewBuddiesHandler(svc discovery.DiscoveryService, accounts account.AccountService) *BuddiesHandler {
	return &BuddiesHandler{Svc: svc, Accounts: accounts}
}

// MatchHandler ranks companion candidates against the authenticated user's
// profile, optionally narrowed by an intended destination and travel dates.
func (h *BuddiesHandler) MatchHandler(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	user, err := h.Accounts.GetProfile(c.Request.Context(), userID.(string))
	if err != nil {
		getLogger(c).Error("Failed to load profile for matching", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}

	var req struct {
		Destination string            `json:"destination,omitempty"`
		TravelDates *models.DateRange `json:"travelDates,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	profile := discovery.ProfileFromUser(*user)
	profile.Destination = req.Destination
	if req.TravelDates != nil {
		profile.TravelDates = *req.TravelDates
	}

	matches, err := h.Svc.MatchBuddies(c.Request.Context(), profile)
	if err != nil {
		if discovery.IsTransientFetchError(err) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Results unavailable, please retry"})
			return
		}
		getLogger(c).Error("Buddy matching failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Matching failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"matches": matches, "total": len(matches)})
}

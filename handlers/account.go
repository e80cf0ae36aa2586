package handlers

import (
	"net/http"

	"eventvibe/services/account"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AccountHandler exposes sign-in and profile reads.
type AccountHandler struct {
	Svc account.AccountService
}

// NewAccountHandler wires the handler to its service.
func NewAccountHandler(svc account.AccountService) *AccountHandler {
	return &AccountHandler{Svc: svc}
}

// SignInHandler verifies phone+password credentials.
func (h *AccountHandler) SignInHandler(c *gin.Context) {
	var req struct {
		Phone    string `json:"phone" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	auth, err := h.Svc.Authenticate(c.Request.Context(), req.Phone, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, auth)
}

// GetProfileHandler returns the authenticated user's profile.
func (h *AccountHandler) GetProfileHandler(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	profile, err := h.Svc.GetProfile(c.Request.Context(), userID.(string))
	if err != nil {
		getLogger(c).Error("Failed to get user profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

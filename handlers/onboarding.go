package handlers

import (
	"errors"
	"net/http"

	"eventvibe/models"
	"eventvibe/services/onboarding"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OnboardingHandler exposes the registration wizard over HTTP.
type OnboardingHandler struct {
	Svc onboarding.OnboardingService
}

// NewOnboardingHandler wires the handler to its service.
func NewOnboardingHandler(svc onboarding.OnboardingService) *OnboardingHandler {
	return &OnboardingHandler{Svc: svc}
}

// StartHandler opens a fresh onboarding session.
func (h *OnboardingHandler) StartHandler(c *gin.Context) {
	result, err := h.Svc.Start(c.Request.Context())
	if err != nil {
		getLogger(c).Error("Failed to start onboarding session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start registration"})
		return
	}
	c.JSON(http.StatusCreated, result)
}

// SubmitStepHandler submits input for the session's current step.
func (h *OnboardingHandler) SubmitStepHandler(c *gin.Context) {
	var req models.RegistrationStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.SessionID = c.Param("sessionID")

	result, err := h.Svc.Submit(c.Request.Context(), req)
	if err != nil {
		respondOnboardingError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// BackHandler moves the session one step back, discarding downstream fields.
func (h *OnboardingHandler) BackHandler(c *gin.Context) {
	result, err := h.Svc.Back(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondOnboardingError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// AbandonHandler discards the session and its draft.
func (h *OnboardingHandler) AbandonHandler(c *gin.Context) {
	if err := h.Svc.Abandon(c.Request.Context(), c.Param("sessionID")); err != nil {
		getLogger(c).Error("Failed to abandon onboarding session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to abandon registration"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Registration abandoned"})
}

// respondOnboardingError maps the wizard's error taxonomy onto HTTP statuses.
// Validation and challenge failures are local and repeatable; nothing here
// tears down the session.
func respondOnboardingError(c *gin.Context, err error) {
	var ve *onboarding.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": ve.Reason,
			"step":  string(ve.Step),
			"field": ve.Field,
		})
		return
	}
	var ce *onboarding.ChallengeError
	if errors.As(err, &ce) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": ce.Reason})
		return
	}
	if onboarding.IsDeliveryError(err) {
		getLogger(c).Warn("Verification code delivery failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Could not send verification code, please retry"})
		return
	}
	if errors.Is(err, onboarding.ErrSessionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Registration session not found or expired"})
		return
	}
	getLogger(c).Error("Onboarding step failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed, please try again"})
}

// Package handler provides the HTTP handlers for the onboarding feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"onboarding_backend/internal/feature/onboarding/transport/http/dto"
	"onboarding_backend/internal/feature/onboarding/usecase"
	"onboarding_backend/internal/shared/apperr"
)

// OnboardingUsecase defines the onboarding operations used by this handler.
type OnboardingUsecase interface {
	Create(ctx context.Context, input usecase.OnboardingInput) (*usecase.OnboardingData, error)
	List(ctx context.Context) ([]usecase.OnboardingData, error)
	Get(ctx context.Context, onboardingID int) (*usecase.OnboardingData, error)
	Update(ctx context.Context, onboardingID int, input usecase.OnboardingUpdateInput) (*usecase.OnboardingData, error)
	Delete(ctx context.Context, onboardingID int) error
}

// OnboardingHandler handles HTTP requests for onboarding process management.
type OnboardingHandler struct {
	onboardings OnboardingUsecase
}

// NewOnboardingHandler creates a new instance of OnboardingHandler.
func NewOnboardingHandler(onboardings OnboardingUsecase) *OnboardingHandler {
	return &OnboardingHandler{onboardings: onboardings}
}

// Create handles POST /onboarding.
func (h *OnboardingHandler) Create(c *gin.Context) {
	var req dto.CreateOnboardingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Invalid request body."}})
		return
	}

	o, err := h.onboardings.Create(c.Request.Context(), usecase.OnboardingInput(req))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, o)
}

// List handles GET /onboarding.
func (h *OnboardingHandler) List(c *gin.Context) {
	onboardings, err := h.onboardings.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, onboardings)
}

// Get handles GET /onboarding/:onboardingId.
func (h *OnboardingHandler) Get(c *gin.Context) {
	onboardingID, err := strconv.Atoi(c.Param("onboardingId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Invalid onboarding ID."}})
		return
	}

	o, err := h.onboardings.Get(c.Request.Context(), onboardingID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

// Update handles PUT /onboarding/:onboardingId.
func (h *OnboardingHandler) Update(c *gin.Context) {
	onboardingID, err := strconv.Atoi(c.Param("onboardingId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Invalid onboarding ID."}})
		return
	}
	var req dto.UpdateOnboardingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Invalid request body."}})
		return
	}

	o, err := h.onboardings.Update(c.Request.Context(), onboardingID, usecase.OnboardingUpdateInput(req))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

// Delete handles DELETE /onboarding/:onboardingId.
func (h *OnboardingHandler) Delete(c *gin.Context) {
	onboardingID, err := strconv.Atoi(c.Param("onboardingId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Invalid onboarding ID."}})
		return
	}

	if err := h.onboardings.Delete(c.Request.Context(), onboardingID); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// respondError maps usecase failures to HTTP responses.
func (h *OnboardingHandler) respondError(c *gin.Context, err error) {
	var ve *apperr.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"errors": ve.Messages})
	case errors.Is(err, usecase.ErrOnboardingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"errors": []string{"Onboarding process not found."}})
	case errors.Is(err, usecase.ErrOnboardingHasAssignments):
		c.JSON(http.StatusConflict, gin.H{"errors": []string{"Onboarding process has associated employees and cannot be deleted."}})
	default:
		slog.Error("onboarding request failed", "error", err, "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, gin.H{"errors": []string{"Operation failed. Please try again later."}})
	}
}

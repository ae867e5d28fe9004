// Package handler provides the HTTP handlers for the onboardingtype feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"onboarding_backend/internal/feature/onboardingtype/transport/http/dto"
	"onboarding_backend/internal/feature/onboardingtype/usecase"
	"onboarding_backend/internal/shared/apperr"
)

// TypeUsecase defines the onboarding type operations used by this handler.
type TypeUsecase interface {
	Create(ctx context.Context, input usecase.TypeInput) (*usecase.TypeData, error)
	List(ctx context.Context) ([]usecase.TypeData, error)
	Get(ctx context.Context, typeID int) (*usecase.TypeData, error)
	Update(ctx context.Context, typeID int, input usecase.TypeInput) (*usecase.TypeData, error)
	Delete(ctx context.Context, typeID int) error
}

// TypeHandler handles HTTP requests for onboarding type management.
type TypeHandler struct {
	types TypeUsecase
}

// NewTypeHandler creates a new instance of TypeHandler.
func NewTypeHandler(types TypeUsecase) *TypeHandler {
	return &TypeHandler{types: types}
}

// Create handles POST /onboarding-type.
func (h *TypeHandler) Create(c *gin.Context) {
	var req dto.TypeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Invalid request body."}})
		return
	}

	t, err := h.types.Create(c.Request.Context(), usecase.TypeInput(req))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// List handles GET /onboarding-type.
func (h *TypeHandler) List(c *gin.Context) {
	types, err := h.types.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

// Get handles GET /onboarding-type/:typeId.
func (h *TypeHandler) Get(c *gin.Context) {
	typeID, err := strconv.Atoi(c.Param("typeId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Invalid onboarding type ID."}})
		return
	}

	t, err := h.types.Get(c.Request.Context(), typeID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// Update handles PUT /onboarding-type/:typeId.
func (h *TypeHandler) Update(c *gin.Context) {
	typeID, err := strconv.Atoi(c.Param("typeId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Invalid onboarding type ID."}})
		return
	}
	var req dto.TypeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Invalid request body."}})
		return
	}

	t, err := h.types.Update(c.Request.Context(), typeID, usecase.TypeInput(req))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// Delete handles DELETE /onboarding-type/:typeId.
func (h *TypeHandler) Delete(c *gin.Context) {
	typeID, err := strconv.Atoi(c.Param("typeId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Invalid onboarding type ID."}})
		return
	}

	if err := h.types.Delete(c.Request.Context(), typeID); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// respondError maps usecase failures to HTTP responses.
func (h *TypeHandler) respondError(c *gin.Context, err error) {
	var ve *apperr.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"errors": ve.Messages})
	case errors.Is(err, usecase.ErrTypeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"errors": []string{"Onboarding type not found."}})
	case errors.Is(err, usecase.ErrTypeHasOnboardings):
		c.JSON(http.StatusConflict, gin.H{"errors": []string{"Onboarding type has associated onboardings and cannot be deleted."}})
	default:
		slog.Error("onboarding type request failed", "error", err, "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, gin.H{"errors": []string{"Operation failed. Please try again later."}})
	}
}

// Package handler provides the HTTP handlers for the role feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"onboarding_backend/internal/feature/role/transport/http/dto"
	"onboarding_backend/internal/feature/role/usecase"
	"onboarding_backend/internal/shared/apperr"
)

// RoleUsecase defines the role operations used by this handler.
type RoleUsecase interface {
	Create(ctx context.Context, input usecase.RoleInput) (*usecase.RoleData, error)
	List(ctx context.Context) ([]usecase.RoleData, error)
	Update(ctx context.Context, roleID int, input usecase.RoleInput) (*usecase.RoleData, error)
	Delete(ctx context.Context, roleID int) error
}

// RoleHandler handles HTTP requests for role management.
type RoleHandler struct {
	roles RoleUsecase
}

// NewRoleHandler creates a new instance of RoleHandler.
func NewRoleHandler(roles RoleUsecase) *RoleHandler {
	return &RoleHandler{roles: roles}
}

// Create handles POST /role.
func (h *RoleHandler) Create(c *gin.Context) {
	var req dto.RoleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Invalid request body."}})
		return
	}

	role, err := h.roles.Create(c.Request.Context(), usecase.RoleInput(req))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, role)
}

// List handles GET /role.
func (h *RoleHandler) List(c *gin.Context) {
	roles, err := h.roles.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, roles)
}

// Update handles PUT /role/:roleId.
func (h *RoleHandler) Update(c *gin.Context) {
	roleID, err := strconv.Atoi(c.Param("roleId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Invalid role ID."}})
		return
	}
	var req dto.RoleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Invalid request body."}})
		return
	}

	role, err := h.roles.Update(c.Request.Context(), roleID, usecase.RoleInput(req))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, role)
}

// Delete handles DELETE /role/:roleId.
func (h *RoleHandler) Delete(c *gin.Context) {
	roleID, err := strconv.Atoi(c.Param("roleId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Invalid role ID."}})
		return
	}

	if err := h.roles.Delete(c.Request.Context(), roleID); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// respondError maps usecase failures to HTTP responses.
func (h *RoleHandler) respondError(c *gin.Context, err error) {
	var ve *apperr.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"errors": ve.Messages})
	case errors.Is(err, usecase.ErrRoleNotFound):
		c.JSON(http.StatusNotFound, gin.H{"errors": []string{"Role not found."}})
	case errors.Is(err, usecase.ErrRoleHasEmployees):
		c.JSON(http.StatusConflict, gin.H{"errors": []string{"Role has associated employees and cannot be deleted."}})
	default:
		slog.Error("role request failed", "error", err, "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, gin.H{"errors": []string{"Operation failed. Please try again later."}})
	}
}

// Package handler provides the HTTP handlers for the employee feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"onboarding_backend/internal/feature/employee/transport/http/dto"
	"onboarding_backend/internal/feature/employee/usecase"
	"onboarding_backend/internal/shared/apperr"
)

// EmployeeUsecase defines the employee operations used by this handler.
type EmployeeUsecase interface {
	Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterData, error)
	Login(ctx context.Context, email, password string) (*usecase.LoginData, error)
	Refresh(ctx context.Context, refreshToken string) (*usecase.RefreshData, error)
	List(ctx context.Context) ([]usecase.EmployeeData, error)
	GetByEmail(ctx context.Context, email string) (*usecase.EmployeeData, error)
	Update(ctx context.Context, email string, input usecase.UpdateInput) (*usecase.EmployeeData, error)
	Delete(ctx context.Context, email string) error
}

// EmployeeHandler handles HTTP requests for registration, authentication and
// employee management.
type EmployeeHandler struct {
	employees EmployeeUsecase
}

// NewEmployeeHandler creates a new instance of EmployeeHandler.
func NewEmployeeHandler(employees EmployeeUsecase) *EmployeeHandler {
	return &EmployeeHandler{employees: employees}
}

// Register handles POST /employee/register.
func (h *EmployeeHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Invalid request body."}})
		return
	}

	data, err := h.employees.Register(c.Request.Context(), usecase.RegisterInput(req))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, data)
}

// Login handles POST /employee/login.
func (h *EmployeeHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Invalid request body."}})
		return
	}

	data, err := h.employees.Login(c.Request.Context(), req.EmployeeEmail, req.Password)
	if err != nil {
		// Credential failures stay generic to avoid user enumeration.
		slog.Warn("login failed", "email", req.EmployeeEmail, "remote_addr", c.ClientIP())
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

// Refresh handles POST /employee/refresh-token.
func (h *EmployeeHandler) Refresh(c *gin.Context) {
	var req dto.RefreshReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Invalid request body."}})
		return
	}

	data, err := h.employees.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

// List handles GET /employee.
func (h *EmployeeHandler) List(c *gin.Context) {
	employees, err := h.employees.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, employees)
}

// Get handles GET /employee/:employeeEmail.
func (h *EmployeeHandler) Get(c *gin.Context) {
	data, err := h.employees.GetByEmail(c.Request.Context(), c.Param("employeeEmail"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

// Update handles PUT /employee/:employeeEmail.
func (h *EmployeeHandler) Update(c *gin.Context) {
	var req dto.UpdateEmployeeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Invalid request body."}})
		return
	}

	data, err := h.employees.Update(c.Request.Context(), c.Param("employeeEmail"), usecase.UpdateInput(req))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

// Delete handles DELETE /employee/:employeeEmail.
func (h *EmployeeHandler) Delete(c *gin.Context) {
	if err := h.employees.Delete(c.Request.Context(), c.Param("employeeEmail")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// respondError maps usecase failures to HTTP responses.
func (h *EmployeeHandler) respondError(c *gin.Context, err error) {
	var ve *apperr.ValidationError
	switch {
	case errors.Is(err, usecase.ErrAccessDenied):
		messages := []string{"Access denied."}
		if errors.As(err, &ve) {
			messages = ve.Messages
		}
		c.JSON(http.StatusForbidden, gin.H{"errors": messages})
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"errors": ve.Messages})
	case errors.Is(err, usecase.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"errors": []string{"Invalid email or password."}})
	case errors.Is(err, usecase.ErrInvalidRefreshToken):
		c.JSON(http.StatusUnauthorized, gin.H{"errors": []string{"Invalid refresh token."}})
	case errors.Is(err, usecase.ErrEmployeeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"errors": []string{"Employee not found."}})
	default:
		slog.Error("employee request failed", "error", err, "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, gin.H{"errors": []string{"Operation failed. Please try again later."}})
	}
}

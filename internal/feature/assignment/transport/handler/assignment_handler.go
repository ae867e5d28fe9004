// Package handler provides the HTTP handlers for the assignment feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"onboarding_backend/internal/feature/assignment/transport/http/dto"
	"onboarding_backend/internal/feature/assignment/usecase"
	"onboarding_backend/internal/shared/apperr"
)

// AssignmentUsecase defines the assignment operations used by this handler.
type AssignmentUsecase interface {
	Assign(ctx context.Context, input usecase.AssignInput) (*usecase.AssignmentData, error)
	Get(ctx context.Context, onboardingID int, employeeEmail string) (*usecase.AssignmentData, error)
	ListForEmployee(ctx context.Context, employeeEmail string) ([]usecase.AssignmentData, error)
	ListForOnboarding(ctx context.Context, onboardingID int) ([]usecase.AssignmentData, error)
	UpdateStatus(ctx context.Context, onboardingID int, employeeEmail string, done *bool) (*usecase.AssignmentData, error)
	Unassign(ctx context.Context, onboardingID int, employeeEmail string) error
}

// AssignmentHandler handles HTTP requests for assignment management.
type AssignmentHandler struct {
	assignments AssignmentUsecase
}

// NewAssignmentHandler creates a new instance of AssignmentHandler.
func NewAssignmentHandler(assignments AssignmentUsecase) *AssignmentHandler {
	return &AssignmentHandler{assignments: assignments}
}

// Assign handles POST /employee-onboarding.
func (h *AssignmentHandler) Assign(c *gin.Context) {
	var req dto.AssignReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Invalid request body."}})
		return
	}

	a, err := h.assignments.Assign(c.Request.Context(), usecase.AssignInput(req))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

// Get handles GET /employee-onboarding/:onboardingId/employees/:employeeEmail.
func (h *AssignmentHandler) Get(c *gin.Context) {
	onboardingID, employeeEmail, ok := h.key(c)
	if !ok {
		return
	}

	a, err := h.assignments.Get(c.Request.Context(), onboardingID, employeeEmail)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// ListForEmployee handles GET /employee-onboarding/employee/:employeeEmail.
func (h *AssignmentHandler) ListForEmployee(c *gin.Context) {
	assignments, err := h.assignments.ListForEmployee(c.Request.Context(), c.Param("employeeEmail"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignments)
}

// ListForOnboarding handles GET /employee-onboarding/onboarding/:onboardingId.
func (h *AssignmentHandler) ListForOnboarding(c *gin.Context) {
	onboardingID, err := strconv.Atoi(c.Param("onboardingId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Invalid onboarding ID."}})
		return
	}

	assignments, err := h.assignments.ListForOnboarding(c.Request.Context(), onboardingID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignments)
}

// UpdateStatus handles PATCH /employee-onboarding/:onboardingId/employees/:employeeEmail.
func (h *AssignmentHandler) UpdateStatus(c *gin.Context) {
	onboardingID, employeeEmail, ok := h.key(c)
	if !ok {
		return
	}
	var req dto.UpdateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Invalid request body."}})
		return
	}

	a, err := h.assignments.UpdateStatus(c.Request.Context(), onboardingID, employeeEmail, req.Done)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// Unassign handles DELETE /employee-onboarding/:onboardingId/employees/:employeeEmail.
func (h *AssignmentHandler) Unassign(c *gin.Context) {
	onboardingID, employeeEmail, ok := h.key(c)
	if !ok {
		return
	}

	if err := h.assignments.Unassign(c.Request.Context(), onboardingID, employeeEmail); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// key extracts the composite key path params, responding 400 on a malformed
// onboarding ID.
func (h *AssignmentHandler) key(c *gin.Context) (int, string, bool) {
	onboardingID, err := strconv.Atoi(c.Param("onboardingId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Invalid onboarding ID."}})
		return 0, "", false
	}
	return onboardingID, c.Param("employeeEmail"), true
}

// respondError maps usecase failures to HTTP responses. Missing references
// and duplicates carry their violation messages through the wrapped
// validation error.
func (h *AssignmentHandler) respondError(c *gin.Context, err error) {
	var ve *apperr.ValidationError
	switch {
	case errors.Is(err, usecase.ErrAlreadyAssigned):
		messages := []string{"Employee is already assigned to this onboarding process."}
		if errors.As(err, &ve) {
			messages = ve.Messages
		}
		c.JSON(http.StatusConflict, gin.H{"errors": messages})
	case errors.Is(err, usecase.ErrOnboardingNotFound), errors.Is(err, usecase.ErrEmployeeNotFound):
		messages := []string{"Referenced entity not found."}
		if errors.As(err, &ve) {
			messages = ve.Messages
		}
		c.JSON(http.StatusNotFound, gin.H{"errors": messages})
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"errors": ve.Messages})
	case errors.Is(err, usecase.ErrAssignmentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"errors": []string{"Assignment not found."}})
	default:
		slog.Error("assignment request failed", "error", err, "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, gin.H{"errors": []string{"Operation failed. Please try again later."}})
	}
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gatepass/internal/errors"
	"gatepass/internal/model"
	"gatepass/internal/service"
)

// GateHandler handles the gatekeeper-side endpoints: verifying a student's
// active pass and consuming it.
type GateHandler struct {
	requestService service.RequestService
}

// NewGateHandler creates a new gate handler.
func NewGateHandler(requestService service.RequestService) *GateHandler {
	return &GateHandler{requestService: requestService}
}

// VerifyResponse reports whether a student holds an active pass.
type VerifyResponse struct {
	Success bool                   `json:"success"`
	HasPass bool                   `json:"hasPass"`
	Pass    *model.GatePassRequest `json:"pass,omitempty"`
	Message string                 `json:"message,omitempty"`
}

// Verify godoc
// @Summary Check for an approved, unused pass for a student
// @Tags gate
// @Produce json
// @Param studentId path string true "Student ID"
// @Success 200 {object} VerifyResponse
// @Router /api/verify/{studentId} [get]
func (h *GateHandler) Verify(c echo.Context) error {
	pass, err := h.requestService.Verify(c.Request().Context(), c.Param("studentId"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	if pass == nil {
		return c.JSON(http.StatusOK, VerifyResponse{
			Success: true,
			HasPass: false,
			Message: "No valid approved pass found for this student",
		})
	}

	return c.JSON(http.StatusOK, VerifyResponse{
		Success: true,
		HasPass: true,
		Pass:    pass,
	})
}

// MarkUsed godoc
// @Summary Mark a pass as used
// @Tags gate
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/requests/{id}/use [put]
func (h *GateHandler) MarkUsed(c echo.Context) error {
	if err := h.requestService.MarkUsed(c.Request().Context(), c.Param("id")); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, MessageResponse{
		Success: true,
		Message: "Pass marked as used successfully",
	})
}

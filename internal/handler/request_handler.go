package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"gatepass/internal/errors"
	"gatepass/internal/model"
	"gatepass/internal/service"
)

// RequestHandler handles gate pass request endpoints for students and
// moderators.
type RequestHandler struct {
	requestService service.RequestService
}

// NewRequestHandler creates a new request handler.
func NewRequestHandler(requestService service.RequestService) *RequestHandler {
	return &RequestHandler{requestService: requestService}
}

// CreateRequest represents a new gate pass request.
type CreateRequest struct {
	StudentID   string `json:"studentId" validate:"required"`
	StudentName string `json:"studentName" validate:"required"`
	Reason      string `json:"reason" validate:"required"`
	ReturnTime  string `json:"returnTime" validate:"required"`
}

// ReviewRequest represents a moderator decision.
type ReviewRequest struct {
	Status        string `json:"status" validate:"required"`
	ModeratorID   string `json:"moderatorId" validate:"required"`
	ModeratorName string `json:"moderatorName" validate:"required"`
	Remarks       string `json:"remarks"`
}

// RequestResponse wraps a single request record.
type RequestResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message,omitempty"`
	Request *model.GatePassRequest `json:"request"`
}

// RequestListResponse wraps a list of request records.
type RequestListResponse struct {
	Success  bool                    `json:"success"`
	Requests []model.GatePassRequest `json:"requests"`
}

// MessageResponse is a bare success acknowledgement.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Create godoc
// @Summary Create a gate pass request
// @Tags requests
// @Accept json
// @Produce json
// @Param request body CreateRequest true "Request data"
// @Success 201 {object} RequestResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/requests [post]
func (h *RequestHandler) Create(c echo.Context) error {
	var req CreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Message: "invalid request body",
			Code:    "INVALID_REQUEST",
		})
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Message: errors.ErrMissingFields.Error(),
			Code:    "MISSING_FIELDS",
		})
	}

	created, err := h.requestService.Create(
		c.Request().Context(),
		req.StudentID,
		req.StudentName,
		req.Reason,
		req.ReturnTime,
	)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, RequestResponse{
		Success: true,
		Message: "Request created successfully",
		Request: created,
	})
}

// ListAll godoc
// @Summary List all gate pass requests, most recent first
// @Tags requests
// @Produce json
// @Success 200 {object} RequestListResponse
// @Router /api/requests [get]
func (h *RequestHandler) ListAll(c echo.Context) error {
	requests, err := h.requestService.ListAll(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, RequestListResponse{
		Success:  true,
		Requests: requests,
	})
}

// ListByStudent godoc
// @Summary List requests of one student, most recent first
// @Tags requests
// @Produce json
// @Param studentId path string true "Student ID"
// @Success 200 {object} RequestListResponse
// @Router /api/requests/student/{studentId} [get]
func (h *RequestHandler) ListByStudent(c echo.Context) error {
	requests, err := h.requestService.ListByStudent(c.Request().Context(), c.Param("studentId"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, RequestListResponse{
		Success:  true,
		Requests: requests,
	})
}

// Review godoc
// @Summary Approve or reject a pending request
// @Tags requests
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param request body ReviewRequest true "Review decision"
// @Success 200 {object} RequestResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/requests/{id}/review [put]
func (h *RequestHandler) Review(c echo.Context) error {
	var req ReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Message: "invalid request body",
			Code:    "INVALID_REQUEST",
		})
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Message: errors.ErrMissingFields.Error(),
			Code:    "MISSING_FIELDS",
		})
	}

	updated, err := h.requestService.Review(
		c.Request().Context(),
		c.Param("id"),
		model.RequestStatus(req.Status),
		req.ModeratorID,
		req.ModeratorName,
		req.Remarks,
	)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, RequestResponse{
		Success: true,
		Message: "Request " + strings.ToLower(string(updated.Status)) + " successfully",
		Request: updated,
	})
}

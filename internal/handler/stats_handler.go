package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gatepass/internal/errors"
	"gatepass/internal/model"
	"gatepass/internal/service"
)

// StatsHandler handles the aggregate statistics endpoint.
type StatsHandler struct {
	requestService service.RequestService
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(requestService service.RequestService) *StatsHandler {
	return &StatsHandler{requestService: requestService}
}

// StatsResponse wraps the aggregate counts.
type StatsResponse struct {
	Success bool        `json:"success"`
	Stats   model.Stats `json:"stats"`
}

// Stats godoc
// @Summary Aggregate request counts
// @Tags stats
// @Produce json
// @Success 200 {object} StatsResponse
// @Router /api/stats [get]
func (h *StatsHandler) Stats(c echo.Context) error {
	stats, err := h.requestService.Stats(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, StatsResponse{
		Success: true,
		Stats:   *stats,
	})
}

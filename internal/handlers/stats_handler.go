package handlers

import (
	"net/http"

	"voice-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

// StatsHandler handles spending statistics HTTP requests
type StatsHandler struct {
	stats services.StatsServiceInterface
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(stats services.StatsServiceInterface) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// GetSummary recomputes and returns the derived spending view
func (h *StatsHandler) GetSummary(c echo.Context) error {
	return c.JSON(http.StatusOK, h.stats.Summary())
}

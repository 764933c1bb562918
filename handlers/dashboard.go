package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"quickquote.io/quickquote"
)

const defaultRecentCount = 5

type DashboardHandler interface {
	GetStats(c echo.Context) error
	GetRecentQuotes(c echo.Context) error
}

type dashboardHandler struct {
	app quickquote.QuickQuote
}

func NewDashboardHandler(app quickquote.QuickQuote) DashboardHandler {
	return &dashboardHandler{app: app}
}

// GetStats handles GET /dashboard/stats?business_id=
func (dh *dashboardHandler) GetStats(c echo.Context) error {
	businessID := c.QueryParam("business_id")
	if businessID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "business_id is required"})
	}

	stats, err := dh.app.DashboardStats(c.Request().Context(), businessID, time.Now())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to compute stats"})
	}

	return c.JSON(http.StatusOK, stats)
}

// GetRecentQuotes handles GET /dashboard/recent?business_id=&count=
func (dh *dashboardHandler) GetRecentQuotes(c echo.Context) error {
	businessID := c.QueryParam("business_id")
	if businessID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "business_id is required"})
	}

	count := defaultRecentCount
	if raw := c.QueryParam("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "count must be a positive integer"})
		}
		count = parsed
	}

	quotes, err := dh.app.RecentQuotes(c.Request().Context(), businessID, count)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to list recent quotes"})
	}

	return c.JSON(http.StatusOK, quotes)
}

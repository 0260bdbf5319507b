package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	errs "acmedash/internal/errors"
	"acmedash/internal/service"
)

// DashboardHandler handles overview page endpoints.
type DashboardHandler struct {
	dashboardService service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Revenue godoc
// @Summary Monthly revenue rows for the chart
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Revenue
// @Failure 500 {object} errs.ErrorResponse
// @Router /dashboard/revenue [get]
func (h *DashboardHandler) Revenue(c echo.Context) error {
	rows, err := h.dashboardService.Revenue(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("fetch revenue: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, errs.ErrorResponse{
			Error: "Failed to fetch revenue data.",
			Code:  "FETCH_FAILED",
		})
	}
	return c.JSON(http.StatusOK, rows)
}

// LatestInvoices godoc
// @Summary Five most recent invoices
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {array} service.LatestInvoice
// @Failure 500 {object} errs.ErrorResponse
// @Router /dashboard/latest-invoices [get]
func (h *DashboardHandler) LatestInvoices(c echo.Context) error {
	latest, err := h.dashboardService.LatestInvoices(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("fetch latest invoices: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, errs.ErrorResponse{
			Error: "Failed to fetch the latest invoices.",
			Code:  "FETCH_FAILED",
		})
	}
	return c.JSON(http.StatusOK, latest)
}

// Cards godoc
// @Summary Overview card totals
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.CardSummary
// @Failure 500 {object} errs.ErrorResponse
// @Router /dashboard/cards [get]
func (h *DashboardHandler) Cards(c echo.Context) error {
	summary, err := h.dashboardService.CardData(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("fetch card data: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, errs.ErrorResponse{
			Error: "Failed to fetch card data.",
			Code:  "FETCH_FAILED",
		})
	}
	return c.JSON(http.StatusOK, summary)
}

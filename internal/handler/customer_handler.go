package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	errs "acmedash/internal/errors"
	"acmedash/internal/service"
)

// CustomerHandler handles customer endpoints. Customers are read-only.
type CustomerHandler struct {
	customerService service.CustomerService
}

// NewCustomerHandler creates a new customer handler.
func NewCustomerHandler(customerService service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// ListCustomers godoc
// @Summary All customers for selection lists
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Success 200 {array} repository.CustomerNameRow
// @Failure 500 {object} errs.ErrorResponse
// @Router /customers [get]
func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	rows, err := h.customerService.Customers(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("fetch customers: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, errs.ErrorResponse{
			Error: "Failed to fetch all customers.",
			Code:  "FETCH_FAILED",
		})
	}
	return c.JSON(http.StatusOK, rows)
}

// CustomerTable godoc
// @Summary Customers table view with invoice totals
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param query query string false "Search query"
// @Success 200 {array} service.CustomerTableEntry
// @Failure 500 {object} errs.ErrorResponse
// @Router /customers/table [get]
func (h *CustomerHandler) CustomerTable(c echo.Context) error {
	entries, err := h.customerService.FilteredCustomers(c.Request().Context(), c.QueryParam("query"))
	if err != nil {
		c.Logger().Errorf("fetch customer table: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, errs.ErrorResponse{
			Error: "Failed to fetch customer table.",
			Code:  "FETCH_FAILED",
		})
	}
	return c.JSON(http.StatusOK, entries)
}

package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	errs "acmedash/internal/errors"
	"acmedash/internal/service"
)

// InvoiceHandler handles invoice endpoints.
type InvoiceHandler struct {
	invoiceService service.InvoiceService
}

// NewInvoiceHandler creates a new invoice handler.
func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// invoicesListingPath is where the caller is sent after a successful write.
const invoicesListingPath = "/dashboard/invoices"

// PagesResponse reports the total page count of the invoices table view.
type PagesResponse struct {
	TotalPages int `json:"total_pages"`
}

// CreateInvoice godoc
// @Summary Create an invoice
// @Tags invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.InvoiceFormInput true "Invoice form"
// @Success 201 {object} model.Invoice
// @Failure 422 {object} service.ValidationError
// @Failure 500 {object} errs.ErrorResponse
// @Router /invoices [post]
func (h *InvoiceHandler) CreateInvoice(c echo.Context) error {
	var input service.InvoiceFormInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request().Context(), input)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusUnprocessableEntity, verr)
		}
		c.Logger().Errorf("create invoice: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, errs.ErrorResponse{
			Error: "Database error. Failed to create invoice.",
			Code:  "DATABASE_ERROR",
		})
	}

	c.Response().Header().Set(echo.HeaderLocation, invoicesListingPath)
	return c.JSON(http.StatusCreated, invoice)
}

// UpdateInvoice godoc
// @Summary Update an invoice
// @Tags invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Invoice ID"
// @Param request body service.InvoiceFormInput true "Invoice form"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errs.ErrorResponse
// @Failure 422 {object} service.ValidationError
// @Failure 500 {object} errs.ErrorResponse
// @Router /invoices/{id} [put]
func (h *InvoiceHandler) UpdateInvoice(c echo.Context) error {
	id, err := invoiceID(c)
	if err != nil {
		return err
	}
	var input service.InvoiceFormInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := h.invoiceService.UpdateInvoice(c.Request().Context(), id, input); err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusUnprocessableEntity, verr)
		}
		if errors.Is(err, errs.ErrInvoiceNotFound) {
			httpErr := errs.MapErrorToHTTP(err)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		}
		c.Logger().Errorf("update invoice: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, errs.ErrorResponse{
			Error: "Database error. Failed to update invoice.",
			Code:  "DATABASE_ERROR",
		})
	}

	c.Response().Header().Set(echo.HeaderLocation, invoicesListingPath)
	return c.JSON(http.StatusOK, map[string]string{"message": "invoice updated"})
}

// DeleteInvoice godoc
// @Summary Delete an invoice
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Param id path int true "Invoice ID"
// @Success 204 {string} string ""
// @Failure 404 {object} errs.ErrorResponse
// @Failure 500 {object} errs.ErrorResponse
// @Router /invoices/{id} [delete]
func (h *InvoiceHandler) DeleteInvoice(c echo.Context) error {
	id, err := invoiceID(c)
	if err != nil {
		return err
	}

	if err := h.invoiceService.DeleteInvoice(c.Request().Context(), id); err != nil {
		if errors.Is(err, errs.ErrInvoiceNotFound) {
			httpErr := errs.MapErrorToHTTP(err)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		}
		c.Logger().Errorf("delete invoice: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, errs.ErrorResponse{
			Error: "Database error. Failed to delete invoice.",
			Code:  "DATABASE_ERROR",
		})
	}
	return c.NoContent(http.StatusNoContent)
}

// GetInvoice godoc
// @Summary Get one invoice for the edit form
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Param id path int true "Invoice ID"
// @Success 200 {object} service.InvoiceDetail
// @Failure 404 {object} errs.ErrorResponse
// @Failure 500 {object} errs.ErrorResponse
// @Router /invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(c echo.Context) error {
	id, err := invoiceID(c)
	if err != nil {
		return err
	}

	detail, err := h.invoiceService.GetInvoice(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrInvoiceNotFound) {
			httpErr := errs.MapErrorToHTTP(err)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		}
		c.Logger().Errorf("fetch invoice: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, errs.ErrorResponse{
			Error: "Failed to fetch invoice.",
			Code:  "FETCH_FAILED",
		})
	}
	return c.JSON(http.StatusOK, detail)
}

// ListInvoices godoc
// @Summary List invoices filtered by a search query, paginated
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Param query query string false "Search query"
// @Param page query int false "Page number (default 1)"
// @Success 200 {array} repository.InvoiceTableRow
// @Failure 500 {object} errs.ErrorResponse
// @Router /invoices [get]
func (h *InvoiceHandler) ListInvoices(c echo.Context) error {
	query := c.QueryParam("query")
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		page = 1
	}

	rows, err := h.invoiceService.FilteredInvoices(c.Request().Context(), query, page)
	if err != nil {
		c.Logger().Errorf("fetch invoices: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, errs.ErrorResponse{
			Error: "Failed to fetch invoices.",
			Code:  "FETCH_FAILED",
		})
	}
	return c.JSON(http.StatusOK, rows)
}

// InvoicePages godoc
// @Summary Total page count for a search query
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Param query query string false "Search query"
// @Success 200 {object} PagesResponse
// @Failure 500 {object} errs.ErrorResponse
// @Router /invoices/pages [get]
func (h *InvoiceHandler) InvoicePages(c echo.Context) error {
	pages, err := h.invoiceService.InvoicePages(c.Request().Context(), c.QueryParam("query"))
	if err != nil {
		c.Logger().Errorf("count invoices: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, errs.ErrorResponse{
			Error: "Failed to fetch total number of invoices.",
			Code:  "FETCH_FAILED",
		})
	}
	return c.JSON(http.StatusOK, PagesResponse{TotalPages: pages})
}

func invoiceID(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid invoice id")
	}
	return uint(id), nil
}

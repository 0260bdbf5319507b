package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"acmedash/internal/cache"
	"acmedash/internal/errors"
	"acmedash/internal/model"
	"acmedash/internal/repository"
)

// itemsPerPage is the fixed page size of the invoices table view.
const itemsPerPage = 6

// InvoiceDetail feeds the edit form: amount as decimal dollars, not a
// formatted display string.
type InvoiceDetail struct {
	ID         uint                `json:"id"`
	CustomerID uint                `json:"customer_id"`
	Amount     decimal.Decimal     `json:"amount"`
	Status     model.InvoiceStatus `json:"status"`
}

// InvoiceService handles invoice CRUD and table views.
type InvoiceService interface {
	CreateInvoice(ctx context.Context, input InvoiceFormInput) (*model.Invoice, error)
	UpdateInvoice(ctx context.Context, id uint, input InvoiceFormInput) error
	DeleteInvoice(ctx context.Context, id uint) error
	GetInvoice(ctx context.Context, id uint) (*InvoiceDetail, error)
	FilteredInvoices(ctx context.Context, query string, page int) ([]repository.InvoiceTableRow, error)
	InvoicePages(ctx context.Context, query string) (int, error)
}

type invoiceService struct {
	repo  repository.InvoiceRepository
	cache *cache.Client
}

// NewInvoiceService creates a new invoice service.
func NewInvoiceService(repo repository.InvoiceRepository, cache *cache.Client) InvoiceService {
	return &invoiceService{repo: repo, cache: cache}
}

// CreateInvoice validates the form, stamps today's date and inserts the
// invoice, then invalidates the cached listing view.
func (s *invoiceService) CreateInvoice(ctx context.Context, input InvoiceFormInput) (*model.Invoice, error) {
	form, fieldErrors := ParseInvoiceForm(input)
	if fieldErrors != nil {
		return nil, &ValidationError{
			Message: "Missing fields. Failed to create invoice.",
			Errors:  fieldErrors,
		}
	}

	invoice := &model.Invoice{
		CustomerID: form.CustomerID,
		Amount:     form.AmountCents,
		Status:     form.Status,
		Date:       time.Now().Format("2006-01-02"),
	}
	if err := s.repo.Create(ctx, invoice); err != nil {
		return nil, fmt.Errorf("create invoice: %w", err)
	}

	_ = s.cache.InvalidateView(ctx, cache.InvoicesViewPath)
	return invoice, nil
}

// UpdateInvoice validates the form and rewrites the invoice matching id.
// Updating a missing id is reported as not found rather than a silent no-op.
func (s *invoiceService) UpdateInvoice(ctx context.Context, id uint, input InvoiceFormInput) error {
	form, fieldErrors := ParseInvoiceForm(input)
	if fieldErrors != nil {
		return &ValidationError{
			Message: "Missing fields. Failed to update invoice.",
			Errors:  fieldErrors,
		}
	}

	invoice := &model.Invoice{
		ID:         id,
		CustomerID: form.CustomerID,
		Amount:     form.AmountCents,
		Status:     form.Status,
	}
	affected, err := s.repo.Update(ctx, invoice)
	if err != nil {
		return fmt.Errorf("update invoice %d: %w", id, err)
	}
	if affected == 0 {
		return errors.ErrInvoiceNotFound
	}

	_ = s.cache.InvalidateView(ctx, cache.InvoicesViewPath)
	return nil
}

// DeleteInvoice removes the invoice matching id and invalidates the listing
// view. No redirect: the caller stays on the listing page.
func (s *invoiceService) DeleteInvoice(ctx context.Context, id uint) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete invoice %d: %w", id, err)
	}
	if affected == 0 {
		return errors.ErrInvoiceNotFound
	}

	_ = s.cache.InvalidateView(ctx, cache.InvoicesViewPath)
	return nil
}

// GetInvoice returns one invoice with its amount converted from cents to
// decimal dollars. Not-found is distinguished from database failure.
func (s *invoiceService) GetInvoice(ctx context.Context, id uint) (*InvoiceDetail, error) {
	invoice, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("fetch invoice %d: %w", id, err)
	}
	return &InvoiceDetail{
		ID:         invoice.ID,
		CustomerID: invoice.CustomerID,
		Amount:     CentsToDollars(invoice.Amount),
		Status:     invoice.Status,
	}, nil
}

// FilteredInvoices returns one page of the invoices table view.
func (s *invoiceService) FilteredInvoices(ctx context.Context, query string, page int) ([]repository.InvoiceTableRow, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * itemsPerPage
	rows, err := s.repo.Filtered(ctx, query, itemsPerPage, offset)
	if err != nil {
		return nil, fmt.Errorf("fetch invoices: %w", err)
	}
	return rows, nil
}

// InvoicePages returns the total page count for a query: ceil(matching / 6).
func (s *invoiceService) InvoicePages(ctx context.Context, query string) (int, error) {
	count, err := s.repo.CountFiltered(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("count invoices: %w", err)
	}
	return int((count + itemsPerPage - 1) / itemsPerPage), nil
}

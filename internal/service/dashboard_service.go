package service

import (
	"context"
	"fmt"

	"acmedash/internal/model"
	"acmedash/internal/repository"
)

const latestInvoicesLimit = 5

// LatestInvoice is a latest-invoices widget entry with a display-ready amount.
type LatestInvoice struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
	Amount   string `json:"amount"`
}

// CardSummary holds the four dashboard card values. The sums are formatted as
// currency strings.
type CardSummary struct {
	NumberOfInvoices     int64  `json:"number_of_invoices"`
	NumberOfCustomers    int64  `json:"number_of_customers"`
	TotalPaidInvoices    string `json:"total_paid_invoices"`
	TotalPendingInvoices string `json:"total_pending_invoices"`
}

// DashboardService serves the overview page widgets. Reads always hit the
// database fresh; nothing here is cached.
type DashboardService interface {
	Revenue(ctx context.Context) ([]model.Revenue, error)
	LatestInvoices(ctx context.Context) ([]LatestInvoice, error)
	CardData(ctx context.Context) (*CardSummary, error)
}

type dashboardService struct {
	revenueRepo repository.RevenueRepository
	invoiceRepo repository.InvoiceRepository
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(revenueRepo repository.RevenueRepository, invoiceRepo repository.InvoiceRepository) DashboardService {
	return &dashboardService{revenueRepo: revenueRepo, invoiceRepo: invoiceRepo}
}

// Revenue returns all revenue rows unmodified.
func (s *dashboardService) Revenue(ctx context.Context) ([]model.Revenue, error) {
	rows, err := s.revenueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch revenue: %w", err)
	}
	return rows, nil
}

// LatestInvoices returns the five most recent invoices with currency-formatted
// amounts.
func (s *dashboardService) LatestInvoices(ctx context.Context) ([]LatestInvoice, error) {
	rows, err := s.invoiceRepo.Latest(ctx, latestInvoicesLimit)
	if err != nil {
		return nil, fmt.Errorf("fetch latest invoices: %w", err)
	}
	latest := make([]LatestInvoice, 0, len(rows))
	for _, row := range rows {
		latest = append(latest, LatestInvoice{
			ID:       row.ID,
			Name:     row.Name,
			Email:    row.Email,
			ImageURL: row.ImageURL,
			Amount:   FormatCurrency(row.Amount),
		})
	}
	return latest, nil
}

// CardData returns the overview card numbers from one aggregate query.
func (s *dashboardService) CardData(ctx context.Context) (*CardSummary, error) {
	totals, err := s.invoiceRepo.CardTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch card data: %w", err)
	}
	return &CardSummary{
		NumberOfInvoices:     totals.InvoiceCount,
		NumberOfCustomers:    totals.CustomerCount,
		TotalPaidInvoices:    FormatCurrency(totals.PaidTotal),
		TotalPendingInvoices: FormatCurrency(totals.PendingTotal),
	}, nil
}

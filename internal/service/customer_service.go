package service

import (
	"context"
	"fmt"

	"acmedash/internal/repository"
)

// CustomerTableEntry is one row of the customers table view with
// currency-formatted totals.
type CustomerTableEntry struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ImageURL      string `json:"image_url"`
	TotalInvoices int64  `json:"total_invoices"`
	TotalPending  string `json:"total_pending"`
	TotalPaid     string `json:"total_paid"`
}

// CustomerService serves the customer selection list and table view.
type CustomerService interface {
	Customers(ctx context.Context) ([]repository.CustomerNameRow, error)
	FilteredCustomers(ctx context.Context, query string) ([]CustomerTableEntry, error)
}

type customerService struct {
	repo repository.CustomerRepository
}

// NewCustomerService creates a new customer service.
func NewCustomerService(repo repository.CustomerRepository) CustomerService {
	return &customerService{repo: repo}
}

// Customers returns all customers' id and name, ordered by name, for
// selection lists.
func (s *customerService) Customers(ctx context.Context) ([]repository.CustomerNameRow, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch customers: %w", err)
	}
	return rows, nil
}

// FilteredCustomers returns the customers table view with per-status sums
// formatted as currency.
func (s *customerService) FilteredCustomers(ctx context.Context, query string) ([]CustomerTableEntry, error) {
	rows, err := s.repo.Filtered(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("fetch customer table: %w", err)
	}
	entries := make([]CustomerTableEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, CustomerTableEntry{
			ID:            row.ID,
			Name:          row.Name,
			Email:         row.Email,
			ImageURL:      row.ImageURL,
			TotalInvoices: row.TotalInvoices,
			TotalPending:  FormatCurrency(row.TotalPending),
			TotalPaid:     FormatCurrency(row.TotalPaid),
		})
	}
	return entries, nil
}

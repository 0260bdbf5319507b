package repository

import (
	"context"

	"gorm.io/gorm"

	"acmedash/internal/model"
)

// CustomerNameRow is a customer reduced to what selection lists need.
type CustomerNameRow struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// CustomerTableRow is one row of the customers table view: a customer plus
// aggregated invoice counts and per-status sums in cents.
type CustomerTableRow struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ImageURL      string `json:"image_url"`
	TotalInvoices int64  `json:"total_invoices"`
	TotalPending  int64  `json:"total_pending"`
	TotalPaid     int64  `json:"total_paid"`
}

// CustomerRepository defines customer persistence operations. Customers are
// read-only in the API; CreateBatch exists for the seed command.
type CustomerRepository interface {
	List(ctx context.Context) ([]CustomerNameRow, error)
	Filtered(ctx context.Context, query string) ([]CustomerTableRow, error)
	CreateBatch(ctx context.Context, customers []model.Customer) error
}

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a GORM-backed customer repository.
func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

// List returns all customers' id and name ordered by name.
func (r *customerRepository) List(ctx context.Context) ([]CustomerNameRow, error) {
	var rows []CustomerNameRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, name
		FROM customers
		ORDER BY name ASC`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Filtered returns customers matching query by name or email, joined with
// their invoice count and pending/paid sums.
func (r *customerRepository) Filtered(ctx context.Context, query string) ([]CustomerTableRow, error) {
	pattern := "%" + query + "%"
	var rows []CustomerTableRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			customers.id,
			customers.name,
			customers.email,
			customers.image_url,
			COUNT(invoices.id) AS total_invoices,
			COALESCE(SUM(CASE WHEN invoices.status = 'pending' THEN invoices.amount ELSE 0 END), 0) AS total_pending,
			COALESCE(SUM(CASE WHEN invoices.status = 'paid' THEN invoices.amount ELSE 0 END), 0) AS total_paid
		FROM customers
		LEFT JOIN invoices ON customers.id = invoices.customer_id
		WHERE customers.name LIKE ? OR customers.email LIKE ?
		GROUP BY customers.id, customers.name, customers.email, customers.image_url
		ORDER BY customers.name ASC`, pattern, pattern).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CreateBatch inserts fixture customers in batches. Used by the seed command.
func (r *customerRepository) CreateBatch(ctx context.Context, customers []model.Customer) error {
	if len(customers) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(customers, 100).Error
}

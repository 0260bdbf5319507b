package repository

import (
	"context"

	"gorm.io/gorm"

	"acmedash/internal/model"
)

// LatestInvoiceRow is one row of the latest-invoices dashboard widget.
type LatestInvoiceRow struct {
	ID       uint   `json:"id"`
	Amount   int64  `json:"amount"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
	Email    string `json:"email"`
}

// InvoiceTableRow is one row of the filtered invoices table view.
type InvoiceTableRow struct {
	ID       uint                `json:"id"`
	Amount   int64               `json:"amount"`
	Date     string              `json:"date"`
	Status   model.InvoiceStatus `json:"status"`
	Name     string              `json:"name"`
	Email    string              `json:"email"`
	ImageURL string              `json:"image_url"`
}

// CardTotals carries the dashboard card aggregation.
type CardTotals struct {
	InvoiceCount  int64 `json:"invoice_count"`
	CustomerCount int64 `json:"customer_count"`
	PaidTotal     int64 `json:"paid_total"`
	PendingTotal  int64 `json:"pending_total"`
}

// invoiceFilter matches the table-view search predicate: case-insensitive
// substring match on customer name/email and string-cast amount/date/status.
const invoiceFilter = `customers.name LIKE ? OR
		customers.email LIKE ? OR
		CAST(invoices.amount AS CHAR) LIKE ? OR
		invoices.date LIKE ? OR
		invoices.status LIKE ?`

// InvoiceRepository defines invoice persistence operations.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *model.Invoice) error
	Update(ctx context.Context, invoice *model.Invoice) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
	FindByID(ctx context.Context, id uint) (*model.Invoice, error)
	Latest(ctx context.Context, limit int) ([]LatestInvoiceRow, error)
	Filtered(ctx context.Context, query string, limit, offset int) ([]InvoiceTableRow, error)
	CountFiltered(ctx context.Context, query string) (int64, error)
	CardTotals(ctx context.Context) (*CardTotals, error)
	CreateBatch(ctx context.Context, invoices []model.Invoice) error
}

type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a GORM-backed invoice repository.
func NewInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &invoiceRepository{db: db}
}

// Create inserts a new invoice row.
func (r *invoiceRepository) Create(ctx context.Context, invoice *model.Invoice) error {
	return r.db.WithContext(ctx).Create(invoice).Error
}

// Update rewrites the mutable columns of the row matching the invoice ID and
// reports how many rows matched. Date is server-assigned and never updated.
func (r *invoiceRepository) Update(ctx context.Context, invoice *model.Invoice) (int64, error) {
	tx := r.db.WithContext(ctx).Model(&model.Invoice{}).
		Where("id = ?", invoice.ID).
		Updates(map[string]interface{}{
			"customer_id": invoice.CustomerID,
			"amount":      invoice.Amount,
			"status":      invoice.Status,
		})
	return tx.RowsAffected, tx.Error
}

// Delete removes the row matching id and reports how many rows matched.
func (r *invoiceRepository) Delete(ctx context.Context, id uint) (int64, error) {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Invoice{})
	return tx.RowsAffected, tx.Error
}

// FindByID finds an invoice by ID.
func (r *invoiceRepository) FindByID(ctx context.Context, id uint) (*model.Invoice, error) {
	var invoice model.Invoice
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&invoice).Error; err != nil {
		return nil, err
	}
	return &invoice, nil
}

// Latest returns the most recent invoices joined with their customers.
func (r *invoiceRepository) Latest(ctx context.Context, limit int) ([]LatestInvoiceRow, error) {
	var rows []LatestInvoiceRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT invoices.id, invoices.amount, customers.name, customers.image_url, customers.email
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		ORDER BY invoices.date DESC
		LIMIT ?`, limit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Filtered returns one page of the invoices table view matching query.
func (r *invoiceRepository) Filtered(ctx context.Context, query string, limit, offset int) ([]InvoiceTableRow, error) {
	pattern := "%" + query + "%"
	var rows []InvoiceTableRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			invoices.id,
			invoices.amount,
			invoices.date,
			invoices.status,
			customers.name,
			customers.email,
			customers.image_url
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		WHERE `+invoiceFilter+`
		ORDER BY invoices.date DESC
		LIMIT ? OFFSET ?`,
		pattern, pattern, pattern, pattern, pattern, limit, offset).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CountFiltered counts the rows matched by the same predicate as Filtered.
func (r *invoiceRepository) CountFiltered(ctx context.Context, query string) (int64, error) {
	pattern := "%" + query + "%"
	var count int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		WHERE `+invoiceFilter,
		pattern, pattern, pattern, pattern, pattern).Scan(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// CardTotals computes the dashboard card numbers in a single statement so the
// counts and sums are mutually consistent against concurrent writes.
func (r *invoiceRepository) CardTotals(ctx context.Context) (*CardTotals, error) {
	var totals CardTotals
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM invoices) AS invoice_count,
			(SELECT COUNT(*) FROM customers) AS customer_count,
			COALESCE(SUM(CASE WHEN status = 'paid' THEN amount ELSE 0 END), 0) AS paid_total,
			COALESCE(SUM(CASE WHEN status = 'pending' THEN amount ELSE 0 END), 0) AS pending_total
		FROM invoices`).Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return &totals, nil
}

// CreateBatch inserts fixture invoices in batches. Used by the seed command.
func (r *invoiceRepository) CreateBatch(ctx context.Context, invoices []model.Invoice) error {
	if len(invoices) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(invoices, 100).Error
}

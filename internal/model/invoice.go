package model

import "time"

// InvoiceStatus represents the payment state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

// Invoice represents a billed amount owed by a customer.
// Amount is stored as integer cents to avoid floating-point rounding.
type Invoice struct {
	ID         uint          `json:"id" gorm:"primaryKey"`
	CustomerID uint          `json:"customer_id" gorm:"not null;index"`
	Amount     int64         `json:"amount" gorm:"not null"`
	Status     InvoiceStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	Date       string        `json:"date" gorm:"size:10;not null;index"` // ISO date, server-assigned at creation
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`

	// Relations
	Customer Customer `json:"-" gorm:"foreignKey:CustomerID"`
}

package model

import "time"

// Customer represents a billable customer. Customers are read-only in this
// API; rows are loaded by the seed command.
type Customer struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null;index"`
	Email     string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	ImageURL  string    `json:"image_url" gorm:"size:255"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Invoices []Invoice `json:"invoices,omitempty" gorm:"foreignKey:CustomerID"`
}

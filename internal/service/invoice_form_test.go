package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"acmedash/internal/model"
)

func TestParseInvoiceForm(t *testing.T) {
	tests := []struct {
		name            string
		input           InvoiceFormInput
		wantForm        *InvoiceForm
		wantFieldErrors map[string][]string
	}{
		{
			name:  "valid pending invoice",
			input: InvoiceFormInput{CustomerID: 3, Amount: 12.50, Status: "pending"},
			wantForm: &InvoiceForm{
				CustomerID:  3,
				AmountCents: 1250,
				Status:      model.InvoiceStatusPending,
			},
		},
		{
			name:  "valid paid invoice",
			input: InvoiceFormInput{CustomerID: 1, Amount: 0.01, Status: "paid"},
			wantForm: &InvoiceForm{
				CustomerID:  1,
				AmountCents: 1,
				Status:      model.InvoiceStatusPaid,
			},
		},
		{
			name:  "missing customer",
			input: InvoiceFormInput{CustomerID: 0, Amount: 10, Status: "paid"},
			wantFieldErrors: map[string][]string{
				"customer_id": {"Please select a customer."},
			},
		},
		{
			name:  "negative customer id",
			input: InvoiceFormInput{CustomerID: -4, Amount: 10, Status: "paid"},
			wantFieldErrors: map[string][]string{
				"customer_id": {"Please select a customer."},
			},
		},
		{
			name:  "zero amount",
			input: InvoiceFormInput{CustomerID: 2, Amount: 0, Status: "pending"},
			wantFieldErrors: map[string][]string{
				"amount": {"Please enter an amount greater than $0."},
			},
		},
		{
			name:  "negative amount",
			input: InvoiceFormInput{CustomerID: 2, Amount: -3.5, Status: "pending"},
			wantFieldErrors: map[string][]string{
				"amount": {"Please enter an amount greater than $0."},
			},
		},
		{
			name:  "unknown status",
			input: InvoiceFormInput{CustomerID: 2, Amount: 5, Status: "overdue"},
			wantFieldErrors: map[string][]string{
				"status": {"Please select an invoice status."},
			},
		},
		{
			name:  "empty form reports every violation",
			input: InvoiceFormInput{},
			wantFieldErrors: map[string][]string{
				"customer_id": {"Please select a customer."},
				"amount":      {"Please enter an amount greater than $0."},
				"status":      {"Please select an invoice status."},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form, fieldErrors := ParseInvoiceForm(tt.input)

			if tt.wantForm != nil {
				assert.Nil(t, fieldErrors)
				assert.Equal(t, tt.wantForm, form)
			} else {
				assert.Nil(t, form)
				assert.Equal(t, tt.wantFieldErrors, fieldErrors)
			}
		})
	}
}

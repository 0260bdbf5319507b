package service

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"acmedash/internal/model"
)

// Validation messages shown next to the offending form field.
const (
	msgSelectCustomer = "Please select a customer."
	msgAmountTooLow   = "Please enter an amount greater than $0."
	msgSelectStatus   = "Please select an invoice status."
)

// InvoiceFormInput carries the raw invoice form fields. ID and date are
// server-assigned and deliberately absent.
type InvoiceFormInput struct {
	CustomerID int64   `json:"customer_id"`
	Amount     float64 `json:"amount"`
	Status     string  `json:"status"`
}

// InvoiceForm is a validated, normalized invoice form: amount already
// converted to integer cents, status narrowed to the enum.
type InvoiceForm struct {
	CustomerID  uint
	AmountCents int64
	Status      model.InvoiceStatus
}

// ValidationError reports per-field violations with human-readable messages.
// It is produced before any database call.
type ValidationError struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

func (e *ValidationError) Error() string { return e.Message }

// invoiceFormConstraints mirrors InvoiceFormInput for validator tags.
type invoiceFormConstraints struct {
	CustomerID int64   `validate:"gt=0"`
	Amount     float64 `validate:"gt=0"`
	Status     string  `validate:"oneof=pending paid"`
}

var formValidate = validator.New()

// ParseInvoiceForm validates raw form input and either returns a normalized
// form or a field-error map. It never reports only the first violation.
func ParseInvoiceForm(input InvoiceFormInput) (*InvoiceForm, map[string][]string) {
	constraints := invoiceFormConstraints{
		CustomerID: input.CustomerID,
		Amount:     input.Amount,
		Status:     input.Status,
	}

	err := formValidate.Struct(constraints)
	if err == nil {
		return &InvoiceForm{
			CustomerID:  uint(input.CustomerID),
			AmountCents: DollarsToCents(input.Amount),
			Status:      model.InvoiceStatus(input.Status),
		}, nil
	}

	var violations validator.ValidationErrors
	if !errors.As(err, &violations) {
		// validator only returns other error kinds for misuse of the API
		return nil, map[string][]string{"form": {err.Error()}}
	}

	fieldErrors := make(map[string][]string)
	for _, violation := range violations {
		switch violation.Field() {
		case "CustomerID":
			fieldErrors["customer_id"] = append(fieldErrors["customer_id"], msgSelectCustomer)
		case "Amount":
			fieldErrors["amount"] = append(fieldErrors["amount"], msgAmountTooLow)
		case "Status":
			fieldErrors["status"] = append(fieldErrors["status"], msgSelectStatus)
		}
	}
	return nil, fieldErrors
}

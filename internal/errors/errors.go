package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvoiceNotFound is returned when an invoice is not found.
	ErrInvoiceNotFound = errors.New("invoice not found")
	// ErrCustomerNotFound is returned when a referenced customer does not exist.
	ErrCustomerNotFound = errors.New("customer not found")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrInvoiceNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "INVOICE_NOT_FOUND")
	case errors.Is(err, ErrCustomerNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "CUSTOMER_NOT_FOUND")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}

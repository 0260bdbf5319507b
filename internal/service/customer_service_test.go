package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"acmedash/internal/model"
	"acmedash/internal/repository"
)

// MockCustomerRepository is a mock implementation of CustomerRepository.
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) List(ctx context.Context) ([]repository.CustomerNameRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.CustomerNameRow), args.Error(1)
}

func (m *MockCustomerRepository) Filtered(ctx context.Context, query string) ([]repository.CustomerTableRow, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.CustomerTableRow), args.Error(1)
}

func (m *MockCustomerRepository) CreateBatch(ctx context.Context, customers []model.Customer) error {
	args := m.Called(ctx, customers)
	return args.Error(0)
}

func TestCustomerService_Customers(t *testing.T) {
	rows := []repository.CustomerNameRow{{ID: 5, Name: "Amy Burns"}, {ID: 1, Name: "Evil Rabbit"}}

	mockRepo := new(MockCustomerRepository)
	mockRepo.On("List", mock.Anything).Return(rows, nil)

	svc := NewCustomerService(mockRepo)
	got, err := svc.Customers(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestCustomerService_FilteredCustomers(t *testing.T) {
	mockRepo := new(MockCustomerRepository)
	mockRepo.On("Filtered", mock.Anything, "rabbit").Return([]repository.CustomerTableRow{
		{
			ID:            1,
			Name:          "Evil Rabbit",
			Email:         "evil@rabbit.com",
			ImageURL:      "/customers/evil-rabbit.png",
			TotalInvoices: 2,
			TotalPending:  16461,
			TotalPaid:     0,
		},
	}, nil)

	svc := NewCustomerService(mockRepo)
	entries, err := svc.FilteredCustomers(context.Background(), "rabbit")

	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, int64(2), entries[0].TotalInvoices)
	assert.Equal(t, "$164.61", entries[0].TotalPending)
	assert.Equal(t, "$0.00", entries[0].TotalPaid)
}

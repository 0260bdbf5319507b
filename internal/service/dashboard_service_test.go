package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"acmedash/internal/model"
	"acmedash/internal/repository"
)

// MockRevenueRepository is a mock implementation of RevenueRepository.
type MockRevenueRepository struct {
	mock.Mock
}

func (m *MockRevenueRepository) List(ctx context.Context) ([]model.Revenue, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Revenue), args.Error(1)
}

func (m *MockRevenueRepository) CreateBatch(ctx context.Context, rows []model.Revenue) error {
	args := m.Called(ctx, rows)
	return args.Error(0)
}

func TestDashboardService_Revenue(t *testing.T) {
	rows := []model.Revenue{{Month: "Jan", Revenue: 2000}, {Month: "Feb", Revenue: 1800}}

	mockRevenue := new(MockRevenueRepository)
	mockRevenue.On("List", mock.Anything).Return(rows, nil)

	svc := NewDashboardService(mockRevenue, new(MockInvoiceRepository))
	got, err := svc.Revenue(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, rows, got) // rows pass through unmodified
}

func TestDashboardService_LatestInvoices(t *testing.T) {
	mockInvoice := new(MockInvoiceRepository)
	mockInvoice.On("Latest", mock.Anything, 5).Return([]repository.LatestInvoiceRow{
		{ID: 1, Amount: 1250, Name: "Evil Rabbit", Email: "evil@rabbit.com", ImageURL: "/customers/evil-rabbit.png"},
		{ID: 2, Amount: 666, Name: "Amy Burns", Email: "amy@burns.com", ImageURL: "/customers/amy-burns.png"},
	}, nil)

	svc := NewDashboardService(new(MockRevenueRepository), mockInvoice)
	latest, err := svc.LatestInvoices(context.Background())

	assert.NoError(t, err)
	assert.Len(t, latest, 2)
	assert.Equal(t, "$12.50", latest[0].Amount)
	assert.Equal(t, "$6.66", latest[1].Amount)
	assert.Equal(t, "Evil Rabbit", latest[0].Name)
}

func TestDashboardService_CardData(t *testing.T) {
	t.Run("formats sums as currency", func(t *testing.T) {
		mockInvoice := new(MockInvoiceRepository)
		mockInvoice.On("CardTotals", mock.Anything).Return(&repository.CardTotals{
			InvoiceCount:  13,
			CustomerCount: 10,
			PaidTotal:     102456,
			PendingTotal:  125632,
		}, nil)

		svc := NewDashboardService(new(MockRevenueRepository), mockInvoice)
		summary, err := svc.CardData(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, int64(13), summary.NumberOfInvoices)
		assert.Equal(t, int64(10), summary.NumberOfCustomers)
		assert.Equal(t, "$1024.56", summary.TotalPaidInvoices)
		assert.Equal(t, "$1256.32", summary.TotalPendingInvoices)
	})

	t.Run("database failure is fatal", func(t *testing.T) {
		mockInvoice := new(MockInvoiceRepository)
		mockInvoice.On("CardTotals", mock.Anything).Return(nil, errors.New("connection refused"))

		svc := NewDashboardService(new(MockRevenueRepository), mockInvoice)
		summary, err := svc.CardData(context.Background())

		assert.Nil(t, summary)
		assert.Error(t, err)
	})
}

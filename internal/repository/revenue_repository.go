package repository

import (
	"context"

	"gorm.io/gorm"

	"acmedash/internal/model"
)

// RevenueRepository defines revenue reporting persistence operations.
type RevenueRepository interface {
	List(ctx context.Context) ([]model.Revenue, error)
	CreateBatch(ctx context.Context, rows []model.Revenue) error
}

type revenueRepository struct {
	db *gorm.DB
}

// NewRevenueRepository creates a GORM-backed revenue repository.
func NewRevenueRepository(db *gorm.DB) RevenueRepository {
	return &revenueRepository{db: db}
}

// List returns all revenue rows unmodified.
func (r *revenueRepository) List(ctx context.Context) ([]model.Revenue, error) {
	var rows []model.Revenue
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// CreateBatch inserts fixture revenue rows in batches. Used by the seed command.
func (r *revenueRepository) CreateBatch(ctx context.Context, rows []model.Revenue) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(rows, 100).Error
}

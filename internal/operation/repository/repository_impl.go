package repository

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	operationdomain "github.com/warebilllabs/warebill/internal/operation/domain"
	"github.com/warebilllabs/warebill/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() operationdomain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, log *operationdomain.OperationLog) error {
	return db.WithContext(ctx).Create(log).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*operationdomain.OperationLog, error) {
	var entry operationdomain.OperationLog
	err := db.WithContext(ctx).Where("id = ?", id).First(&entry).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Delete(&operationdomain.OperationLog{}, "id = ?", id).Error
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter operationdomain.ListFilter, page pagination.Pagination) ([]*operationdomain.OperationLog, error) {
	query := db.WithContext(ctx).Model(&operationdomain.OperationLog{})

	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.From != nil {
		query = query.Where("operated_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("operated_at < ?", *filter.To)
	}

	query, err := pagination.Apply(query, page)
	if err != nil {
		return nil, err
	}

	var items []*operationdomain.OperationLog
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) ListForBilling(ctx context.Context, db *gorm.DB, customerID snowflake.ID, from, to time.Time) ([]operationdomain.OperationLog, error) {
	var items []operationdomain.OperationLog
	err := db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Where("operated_at >= ? AND operated_at < ?", from, to).
		Order("operated_at ASC, id ASC").
		Find(&items).Error
	return items, err
}

func (r *repo) DeleteOlderThan(ctx context.Context, db *gorm.DB, cutoff time.Time) (int64, error) {
	result := db.WithContext(ctx).Delete(&operationdomain.OperationLog{}, "operated_at < ?", cutoff)
	return result.RowsAffected, result.Error
}

package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/warebilllabs/warebill/pkg/db/pagination"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, log *OperationLog) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*OperationLog, error)
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
	List(ctx context.Context, db *gorm.DB, filter ListFilter, page pagination.Pagination) ([]*OperationLog, error)

	// ListForBilling returns a customer's logs inside [from, to) in
	// recorded order; the ledger generator depends on that ordering.
	ListForBilling(ctx context.Context, db *gorm.DB, customerID snowflake.ID, from, to time.Time) ([]OperationLog, error)

	DeleteOlderThan(ctx context.Context, db *gorm.DB, cutoff time.Time) (int64, error)
}

type ListFilter struct {
	CustomerID *snowflake.ID
	Type       OperationType
	From       *time.Time
	To         *time.Time
}

package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/warebilllabs/warebill/pkg/db/pagination"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, customer *Customer) error
	Update(ctx context.Context, db *gorm.DB, customer *Customer) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Customer, error)
	FindByIdempotencyKey(ctx context.Context, db *gorm.DB, key string) (*Customer, error)
	List(ctx context.Context, db *gorm.DB, filter ListFilter, page pagination.Pagination) ([]*Customer, error)

	InsertGroup(ctx context.Context, db *gorm.DB, group *CustomerGroup) error
	FindGroupByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*CustomerGroup, error)
	ListGroups(ctx context.Context, db *gorm.DB) ([]*CustomerGroup, error)
}

type ListFilter struct {
	GroupID *snowflake.ID
	Active  *bool
}

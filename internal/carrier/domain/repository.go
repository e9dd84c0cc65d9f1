package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, carrier *Carrier) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Carrier, error)
	List(ctx context.Context, db *gorm.DB) ([]*Carrier, error)

	InsertService(ctx context.Context, db *gorm.DB, svc *CarrierService) error
	FindServiceByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*CarrierService, error)
	ListServices(ctx context.Context, db *gorm.DB, carrierID *snowflake.ID) ([]*CarrierService, error)
}

package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	carrierdomain "github.com/warebilllabs/warebill/internal/carrier/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() carrierdomain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, carrier *carrierdomain.Carrier) error {
	return db.WithContext(ctx).Create(carrier).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*carrierdomain.Carrier, error) {
	var c carrierdomain.Carrier
	err := db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]*carrierdomain.Carrier, error) {
	var items []*carrierdomain.Carrier
	err := db.WithContext(ctx).Order("created_at ASC").Find(&items).Error
	return items, err
}

func (r *repo) InsertService(ctx context.Context, db *gorm.DB, svc *carrierdomain.CarrierService) error {
	return db.WithContext(ctx).Create(svc).Error
}

func (r *repo) FindServiceByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*carrierdomain.CarrierService, error) {
	var s carrierdomain.CarrierService
	err := db.WithContext(ctx).Where("id = ?", id).First(&s).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *repo) ListServices(ctx context.Context, db *gorm.DB, carrierID *snowflake.ID) ([]*carrierdomain.CarrierService, error) {
	query := db.WithContext(ctx).Model(&carrierdomain.CarrierService{})
	if carrierID != nil {
		query = query.Where("carrier_id = ?", *carrierID)
	}

	var items []*carrierdomain.CarrierService
	err := query.Order("created_at ASC").Find(&items).Error
	return items, err
}

package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	customerdomain "github.com/warebilllabs/warebill/internal/customer/domain"
	"github.com/warebilllabs/warebill/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() customerdomain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, customer *customerdomain.Customer) error {
	return db.WithContext(ctx).Create(customer).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, customer *customerdomain.Customer) error {
	return db.WithContext(ctx).Save(customer).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*customerdomain.Customer, error) {
	var c customerdomain.Customer
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&c).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *repo) FindByIdempotencyKey(ctx context.Context, db *gorm.DB, key string) (*customerdomain.Customer, error) {
	var c customerdomain.Customer
	err := db.WithContext(ctx).
		Where("idempotency_key = ?", key).
		First(&c).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter customerdomain.ListFilter, page pagination.Pagination) ([]*customerdomain.Customer, error) {
	query := db.WithContext(ctx).Model(&customerdomain.Customer{})

	if filter.GroupID != nil {
		query = query.Where("group_id = ?", *filter.GroupID)
	}
	if filter.Active != nil {
		query = query.Where("active = ?", *filter.Active)
	}

	query, err := pagination.Apply(query, page)
	if err != nil {
		return nil, err
	}

	var items []*customerdomain.Customer
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) InsertGroup(ctx context.Context, db *gorm.DB, group *customerdomain.CustomerGroup) error {
	return db.WithContext(ctx).Create(group).Error
}

func (r *repo) FindGroupByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*customerdomain.CustomerGroup, error) {
	var g customerdomain.CustomerGroup
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&g).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &g, nil
}

func (r *repo) ListGroups(ctx context.Context, db *gorm.DB) ([]*customerdomain.CustomerGroup, error) {
	var groups []*customerdomain.CustomerGroup
	err := db.WithContext(ctx).
		Order("created_at ASC").
		Find(&groups).Error
	return groups, err
}

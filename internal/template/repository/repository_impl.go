package repository

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	templatedomain "github.com/warebilllabs/warebill/internal/template/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() templatedomain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, template *templatedomain.Template) error {
	return db.WithContext(ctx).Create(template).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, template *templatedomain.Template) error {
	return db.WithContext(ctx).Omit("Rules").Save(template).Error
}

func (r *repo) ReplaceRules(ctx context.Context, db *gorm.DB, templateID snowflake.ID, rules []templatedomain.TemplateRule) error {
	tx := db.WithContext(ctx)

	ruleIDs := tx.Model(&templatedomain.TemplateRule{}).
		Select("id").
		Where("template_id = ?", templateID)
	if err := tx.Where("rule_id IN (?)", ruleIDs).Delete(&templatedomain.RuleTier{}).Error; err != nil {
		return err
	}
	if err := tx.Where("template_id = ?", templateID).Delete(&templatedomain.TemplateRule{}).Error; err != nil {
		return err
	}
	if len(rules) == 0 {
		return nil
	}
	return tx.Create(&rules).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*templatedomain.Template, error) {
	var t templatedomain.Template
	err := db.WithContext(ctx).
		Preload("Rules", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC, id ASC") }).
		Preload("Rules.Tiers", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC, min_quantity ASC") }).
		Where("id = ?", id).
		First(&t).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *repo) FindByIdempotencyKey(ctx context.Context, db *gorm.DB, key string) (*templatedomain.Template, error) {
	var t templatedomain.Template
	err := db.WithContext(ctx).
		Preload("Rules.Tiers").
		Preload("Rules").
		Where("idempotency_key = ?", key).
		First(&t).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter templatedomain.ListFilter) ([]*templatedomain.Template, error) {
	query := db.WithContext(ctx).Model(&templatedomain.Template{})

	if filter.Scope != "" {
		query = query.Where("scope = ?", filter.Scope)
	}
	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.GroupID != nil {
		query = query.Where("group_id = ?", *filter.GroupID)
	}

	var items []*templatedomain.Template
	err := query.
		Preload("Rules", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC, id ASC") }).
		Preload("Rules.Tiers", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC, min_quantity ASC") }).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *repo) FindEffective(ctx context.Context, db *gorm.DB, scope templatedomain.Scope, customerID, groupID *snowflake.ID, at time.Time) ([]*templatedomain.Template, error) {
	query := db.WithContext(ctx).
		Model(&templatedomain.Template{}).
		Where("scope = ?", scope).
		Where("active = ?", true).
		Where("effective_from <= ?", at).
		Where("expires_at IS NULL OR expires_at > ?", at)

	switch scope {
	case templatedomain.ScopeCustomer:
		if customerID == nil {
			return nil, nil
		}
		query = query.Where("customer_id = ?", *customerID)
	case templatedomain.ScopeGroup:
		if groupID == nil {
			return nil, nil
		}
		query = query.Where("group_id = ?", *groupID)
	}

	var items []*templatedomain.Template
	err := query.
		Preload("Rules", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC, id ASC") }).
		Preload("Rules.Tiers", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC, min_quantity ASC") }).
		Order("version DESC").
		Find(&items).Error
	return items, err
}

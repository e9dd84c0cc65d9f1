package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, template *Template) error
	Update(ctx context.Context, db *gorm.DB, template *Template) error
	ReplaceRules(ctx context.Context, db *gorm.DB, templateID snowflake.ID, rules []TemplateRule) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Template, error)
	FindByIdempotencyKey(ctx context.Context, db *gorm.DB, key string) (*Template, error)
	List(ctx context.Context, db *gorm.DB, filter ListFilter) ([]*Template, error)

	// FindEffective returns the active templates of one scope whose
	// effective window contains at, highest version first.
	FindEffective(ctx context.Context, db *gorm.DB, scope Scope, customerID, groupID *snowflake.ID, at time.Time) ([]*Template, error)
}

type ListFilter struct {
	Scope      Scope
	CustomerID *snowflake.ID
	GroupID    *snowflake.ID
}

package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrInvalidID        = errors.New("template: invalid id")
	ErrInvalidName      = errors.New("template: name is required")
	ErrInvalidScope     = errors.New("template: scope must be GLOBAL, GROUP or CUSTOMER")
	ErrScopeTargetReq   = errors.New("template: scoped template requires a customer or group id")
	ErrInvalidCategory  = errors.New("template: unknown charge category")
	ErrInvalidMode      = errors.New("template: pricing mode must be FLAT or TIERED")
	ErrFlatPriceReq     = errors.New("template: flat rule requires a non-negative unit price")
	ErrTiersRequired    = errors.New("template: tiered rule requires at least one tier")
	ErrTierOrder        = errors.New("template: tiers must be strictly increasing in min quantity")
	ErrTierOverlap      = errors.New("template: tier brackets overlap")
	ErrTierUnbounded    = errors.New("template: only the last tier may be unbounded")
	ErrTierNegativePrice = errors.New("template: tier price must be non-negative")
	ErrNoRules          = errors.New("template: at least one rule is required")
	ErrNotFound         = errors.New("template: not found")
)

type TierInput struct {
	MinQuantity    float64  `json:"min_quantity"`
	MaxQuantity    *float64 `json:"max_quantity"`
	UnitPriceCents int64    `json:"unit_price_cents"`
	Description    string   `json:"description"`
}

type RuleInput struct {
	ChargeCode     string         `json:"charge_code" binding:"required"`
	ChargeName     string         `json:"charge_name" binding:"required"`
	Category       ChargeCategory `json:"category" binding:"required"`
	Channel        string         `json:"channel"`
	Unit           string         `json:"unit"`
	PricingMode    PricingMode    `json:"pricing_mode" binding:"required"`
	UnitPriceCents *int64         `json:"unit_price_cents"`
	SupportOnly    bool           `json:"support_only"`
	Metadata       map[string]any `json:"metadata"`
	Tiers          []TierInput    `json:"tiers"`
}

type CreateRequest struct {
	Name           string      `json:"name" binding:"required"`
	Scope          Scope       `json:"scope" binding:"required"`
	CustomerID     string      `json:"customer_id"`
	GroupID        string      `json:"group_id"`
	EffectiveFrom  *time.Time  `json:"effective_from"`
	ExpiresAt      *time.Time  `json:"expires_at"`
	Rules          []RuleInput `json:"rules" binding:"required"`
	IdempotencyKey string      `json:"-"`
}

type UpdateRequest struct {
	Name      *string     `json:"name"`
	ExpiresAt *time.Time  `json:"expires_at"`
	Active    *bool       `json:"active"`
	Rules     []RuleInput `json:"rules"`
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Template, error)
	// Update replaces mutable fields and, when rules are given, the whole
	// rule set; every successful update bumps the template version.
	Update(ctx context.Context, id string, req UpdateRequest) (*Template, error)
	Get(ctx context.Context, id string) (*Template, error)
	List(ctx context.Context, filter ListFilter) ([]*Template, error)

	// Resolve picks the single template applicable to a customer at the
	// given instant: CUSTOMER scope wins over GROUP, GROUP over GLOBAL;
	// within a scope the highest version wins. A nil result means no
	// template applies, which is not an error.
	Resolve(ctx context.Context, customerID string, at time.Time) (*Template, error)
}

// Package domain holds billing template models. A template is a versioned,
// scoped set of charge rules; rule prices are flat or quantity-tiered.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

type Scope string

const (
	ScopeGlobal   Scope = "GLOBAL"
	ScopeGroup    Scope = "GROUP"
	ScopeCustomer Scope = "CUSTOMER"
)

type ChargeCategory string

const (
	CategoryStorage         ChargeCategory = "STORAGE"
	CategoryInboundOutbound ChargeCategory = "INBOUND_OUTBOUND"
	CategoryTransport       ChargeCategory = "TRANSPORT"
	CategoryReturn          ChargeCategory = "RETURN"
	CategoryMaterial        ChargeCategory = "MATERIAL"
	CategoryManual          ChargeCategory = "MANUAL"
)

type PricingMode string

const (
	PricingFlat   PricingMode = "FLAT"
	PricingTiered PricingMode = "TIERED"
)

type Template struct {
	ID             snowflake.ID  `gorm:"primaryKey" json:"id"`
	Code           string        `gorm:"type:text;not null;index" json:"code"`
	Name           string        `gorm:"type:text;not null" json:"name"`
	Scope          Scope         `gorm:"type:text;not null;index" json:"scope"`
	CustomerID     *snowflake.ID `gorm:"index" json:"customer_id,omitempty"`
	GroupID        *snowflake.ID `gorm:"index" json:"group_id,omitempty"`
	Version        int           `gorm:"not null;default:1" json:"version"`
	EffectiveFrom  time.Time     `gorm:"not null" json:"effective_from"`
	ExpiresAt      *time.Time    `json:"expires_at,omitempty"`
	Active         bool          `gorm:"not null;default:true" json:"active"`
	Rules          []TemplateRule `gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE" json:"rules"`
	IdempotencyKey *string       `gorm:"uniqueIndex" json:"-"`
	CreatedAt      time.Time     `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time     `gorm:"not null" json:"updated_at"`
}

func (Template) TableName() string { return "billing_templates" }

// TemplateRule is one charge definition. SupportOnly rules are kept for
// manual reference billing and never feed the generated ledger.
type TemplateRule struct {
	ID             snowflake.ID      `gorm:"primaryKey" json:"id"`
	TemplateID     snowflake.ID      `gorm:"not null;index" json:"template_id"`
	ChargeCode     string            `gorm:"type:text;not null" json:"charge_code"`
	ChargeName     string            `gorm:"type:text;not null" json:"charge_name"`
	Category       ChargeCategory    `gorm:"type:text;not null" json:"category"`
	Channel        string            `gorm:"type:text" json:"channel"`
	Unit           string            `gorm:"type:text;not null" json:"unit"`
	PricingMode    PricingMode       `gorm:"type:text;not null" json:"pricing_mode"`
	UnitPriceCents *int64            `json:"unit_price_cents,omitempty"`
	SupportOnly    bool              `gorm:"not null;default:false" json:"support_only"`
	Metadata       datatypes.JSONMap `json:"metadata,omitempty"`
	Tiers          []RuleTier        `gorm:"foreignKey:RuleID;constraint:OnDelete:CASCADE" json:"tiers,omitempty"`
	SortOrder      int               `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt      time.Time         `gorm:"not null" json:"created_at"`
}

func (TemplateRule) TableName() string { return "billing_template_rules" }

// RuleTier is a quantity bracket [MinQuantity, MaxQuantity], inclusive on
// both ends; a nil MaxQuantity means unbounded above.
type RuleTier struct {
	ID             snowflake.ID `gorm:"primaryKey" json:"id"`
	RuleID         snowflake.ID `gorm:"not null;index" json:"rule_id"`
	MinQuantity    float64      `gorm:"not null" json:"min_quantity"`
	MaxQuantity    *float64     `json:"max_quantity,omitempty"`
	UnitPriceCents int64        `gorm:"not null" json:"unit_price_cents"`
	Description    string       `gorm:"type:text" json:"description"`
	SortOrder      int          `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt      time.Time    `gorm:"not null" json:"created_at"`
}

func (RuleTier) TableName() string { return "billing_rule_tiers" }

// Contains reports whether quantity falls inside the tier bracket.
func (t RuleTier) Contains(quantity float64) bool {
	if quantity < t.MinQuantity {
		return false
	}
	return t.MaxQuantity == nil || quantity <= *t.MaxQuantity
}

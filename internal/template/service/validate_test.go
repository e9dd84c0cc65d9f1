package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	templatedomain "github.com/warebilllabs/warebill/internal/template/domain"
)

func TestValidateFlatRule(t *testing.T) {
	rule := templatedomain.RuleInput{
		Category:       templatedomain.CategoryStorage,
		PricingMode:    templatedomain.PricingFlat,
		UnitPriceCents: int64Ptr(100),
	}
	assert.NoError(t, validateRule(rule))

	rule.UnitPriceCents = nil
	assert.ErrorIs(t, validateRule(rule), templatedomain.ErrFlatPriceReq)

	rule.UnitPriceCents = int64Ptr(-1)
	assert.ErrorIs(t, validateRule(rule), templatedomain.ErrFlatPriceReq)
}

func TestValidateRuleRejectsBadEnums(t *testing.T) {
	assert.ErrorIs(t, validateRule(templatedomain.RuleInput{
		Category:    templatedomain.ChargeCategory("SHIPPING"),
		PricingMode: templatedomain.PricingFlat,
	}), templatedomain.ErrInvalidCategory)

	assert.ErrorIs(t, validateRule(templatedomain.RuleInput{
		Category:    templatedomain.CategoryStorage,
		PricingMode: templatedomain.PricingMode("PERCENT"),
	}), templatedomain.ErrInvalidMode)
}

func TestValidateTiers(t *testing.T) {
	cases := []struct {
		name  string
		tiers []templatedomain.TierInput
		want  error
	}{
		{
			name: "valid with gap",
			tiers: []templatedomain.TierInput{
				{MinQuantity: 0, MaxQuantity: floatPtr(10), UnitPriceCents: 100},
				{MinQuantity: 11, UnitPriceCents: 90},
			},
		},
		{
			name: "single unbounded tier",
			tiers: []templatedomain.TierInput{
				{MinQuantity: 0, UnitPriceCents: 50},
			},
		},
		{
			name:  "empty",
			tiers: nil,
			want:  templatedomain.ErrTiersRequired,
		},
		{
			name: "not increasing",
			tiers: []templatedomain.TierInput{
				{MinQuantity: 10, MaxQuantity: floatPtr(20), UnitPriceCents: 100},
				{MinQuantity: 10, UnitPriceCents: 90},
			},
			want: templatedomain.ErrTierOrder,
		},
		{
			name: "overlapping brackets",
			tiers: []templatedomain.TierInput{
				{MinQuantity: 0, MaxQuantity: floatPtr(50), UnitPriceCents: 100},
				{MinQuantity: 30, UnitPriceCents: 90},
			},
			want: templatedomain.ErrTierOverlap,
		},
		{
			name: "inverted bracket",
			tiers: []templatedomain.TierInput{
				{MinQuantity: 20, MaxQuantity: floatPtr(10), UnitPriceCents: 100},
			},
			want: templatedomain.ErrTierOverlap,
		},
		{
			name: "unbounded tier not last",
			tiers: []templatedomain.TierInput{
				{MinQuantity: 0, UnitPriceCents: 100},
				{MinQuantity: 10, MaxQuantity: floatPtr(20), UnitPriceCents: 90},
			},
			want: templatedomain.ErrTierUnbounded,
		},
		{
			name: "negative price",
			tiers: []templatedomain.TierInput{
				{MinQuantity: 0, MaxQuantity: floatPtr(10), UnitPriceCents: -5},
			},
			want: templatedomain.ErrTierNegativePrice,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateTiers(tc.tiers)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func int64Ptr(v int64) *int64 {
	return &v
}

func floatPtr(v float64) *float64 {
	return &v
}

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	billingdomain "github.com/warebilllabs/warebill/internal/billing/domain"
	operationdomain "github.com/warebilllabs/warebill/internal/operation/domain"
	templatedomain "github.com/warebilllabs/warebill/internal/template/domain"
)

func TestResolveFlatPrice(t *testing.T) {
	rule := templatedomain.TemplateRule{
		PricingMode:    templatedomain.PricingFlat,
		UnitPriceCents: int64Ptr(500),
	}

	for _, qty := range []float64{0, 1, 2.5, 10000} {
		result := ResolveUnitPrice(rule, qty)
		require.True(t, result.IsPriced())
		assert.Equal(t, int64(500), result.UnitPriceCents)
	}
}

func TestResolveFlatPriceMissing(t *testing.T) {
	rule := templatedomain.TemplateRule{PricingMode: templatedomain.PricingFlat}

	result := ResolveUnitPrice(rule, 3)
	assert.Equal(t, billingdomain.PriceStatusUnpriced, result.Status)
	assert.Equal(t, int64(0), result.UnitPriceCents)
	assert.NotEmpty(t, result.Reason)
}

func TestResolveTieredPrice(t *testing.T) {
	rule := templatedomain.TemplateRule{
		PricingMode: templatedomain.PricingTiered,
		Tiers: []templatedomain.RuleTier{
			{MinQuantity: 0, MaxQuantity: floatPtr(10), UnitPriceCents: 100},
			{MinQuantity: 11, MaxQuantity: nil, UnitPriceCents: 90},
		},
	}

	cases := []struct {
		qty  float64
		want int64
	}{
		{5, 100},
		{10, 100},
		{11, 90},
		{10000, 90},
	}
	for _, tc := range cases {
		result := ResolveUnitPrice(rule, tc.qty)
		require.True(t, result.IsPriced(), "qty %g", tc.qty)
		assert.Equal(t, tc.want, result.UnitPriceCents, "qty %g", tc.qty)
	}
}

func TestResolveTieredFirstMatchWins(t *testing.T) {
	// Overlapping brackets are rejected at save time, but resolution must
	// still honor first-match order when legacy data carries them.
	rule := templatedomain.TemplateRule{
		PricingMode: templatedomain.PricingTiered,
		Tiers: []templatedomain.RuleTier{
			{MinQuantity: 0, MaxQuantity: floatPtr(100), UnitPriceCents: 80},
			{MinQuantity: 50, MaxQuantity: nil, UnitPriceCents: 60},
		},
	}

	result := ResolveUnitPrice(rule, 75)
	require.True(t, result.IsPriced())
	assert.Equal(t, int64(80), result.UnitPriceCents)
}

func TestResolveTieredNoTiers(t *testing.T) {
	rule := templatedomain.TemplateRule{PricingMode: templatedomain.PricingTiered}

	for _, qty := range []float64{0, 7, 99999} {
		result := ResolveUnitPrice(rule, qty)
		assert.Equal(t, billingdomain.PriceStatusUnpriced, result.Status)
		assert.Equal(t, int64(0), result.UnitPriceCents)
	}
}

func TestResolveTieredQuantityInGap(t *testing.T) {
	rule := templatedomain.TemplateRule{
		PricingMode: templatedomain.PricingTiered,
		Tiers: []templatedomain.RuleTier{
			{MinQuantity: 0, MaxQuantity: floatPtr(10), UnitPriceCents: 100},
			{MinQuantity: 11, MaxQuantity: nil, UnitPriceCents: 90},
		},
	}

	result := ResolveUnitPrice(rule, 10.5)
	assert.Equal(t, billingdomain.PriceStatusUnpriced, result.Status)
}

func TestMatchesOperationPolicy(t *testing.T) {
	in := operationdomain.OperationInbound
	out := operationdomain.OperationOutbound

	assert.True(t, MatchesOperation(templatedomain.CategoryInboundOutbound, in))
	assert.True(t, MatchesOperation(templatedomain.CategoryInboundOutbound, out))
	assert.True(t, MatchesOperation(templatedomain.CategoryStorage, in))
	assert.False(t, MatchesOperation(templatedomain.CategoryStorage, out))
	assert.False(t, MatchesOperation(templatedomain.CategoryReturn, in))
	assert.True(t, MatchesOperation(templatedomain.CategoryReturn, out))
	assert.True(t, MatchesOperation(templatedomain.CategoryTransport, in))
	assert.True(t, MatchesOperation(templatedomain.CategoryMaterial, out))
	assert.True(t, MatchesOperation(templatedomain.CategoryManual, in))

	// Fail closed on anything not in the policy table.
	assert.False(t, MatchesOperation(templatedomain.ChargeCategory("UNKNOWN"), in))
	assert.False(t, MatchesOperation(templatedomain.ChargeCategory(""), out))
}

func int64Ptr(v int64) *int64 {
	return &v
}

func floatPtr(v float64) *float64 {
	return &v
}

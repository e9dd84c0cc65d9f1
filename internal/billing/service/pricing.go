package service

import (
	"math"

	billingdomain "github.com/warebilllabs/warebill/internal/billing/domain"
	templatedomain "github.com/warebilllabs/warebill/internal/template/domain"
)

const (
	reasonMissingFlatPrice = "flat rule has no unit price"
	reasonNoTiers          = "tiered rule has no tiers"
	reasonNoTierMatched    = "no tier bracket contains the quantity"
	reasonUnknownMode      = "unknown pricing mode"
)

// ResolveUnitPrice resolves a rule's unit price for a quantity. Tiered
// rules scan brackets in order and the first containing bracket wins.
// Missing or unmatched prices resolve to an unpriced result, never an
// error; billing output must not fail on bad reference data.
func ResolveUnitPrice(rule templatedomain.TemplateRule, quantity float64) billingdomain.PriceResult {
	switch rule.PricingMode {
	case templatedomain.PricingFlat:
		if rule.UnitPriceCents == nil {
			return billingdomain.Unpriced(reasonMissingFlatPrice)
		}
		return billingdomain.Priced(*rule.UnitPriceCents)

	case templatedomain.PricingTiered:
		if len(rule.Tiers) == 0 {
			return billingdomain.Unpriced(reasonNoTiers)
		}
		for _, tier := range rule.Tiers {
			if tier.Contains(quantity) {
				return billingdomain.Priced(tier.UnitPriceCents)
			}
		}
		return billingdomain.Unpriced(reasonNoTierMatched)

	default:
		return billingdomain.Unpriced(reasonUnknownMode)
	}
}

// roundAmount rounds half up, matching how amounts are settled downstream.
func roundAmount(raw float64) int64 {
	return int64(math.Floor(raw + 0.5))
}

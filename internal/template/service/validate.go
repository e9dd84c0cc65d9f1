package service

import (
	templatedomain "github.com/warebilllabs/warebill/internal/template/domain"
)

func validCategory(c templatedomain.ChargeCategory) bool {
	switch c {
	case templatedomain.CategoryStorage,
		templatedomain.CategoryInboundOutbound,
		templatedomain.CategoryTransport,
		templatedomain.CategoryReturn,
		templatedomain.CategoryMaterial,
		templatedomain.CategoryManual:
		return true
	default:
		return false
	}
}

// validateRule checks one rule input. Tier brackets must be strictly
// increasing, non-overlapping and bounded except for the final tier, so a
// quantity can never fall into two brackets. Gaps between inclusive
// brackets (e.g. [0,10] then [11,∞)) are allowed: quantities are often
// integral and the brackets inclusive on both ends; a quantity falling in a
// gap resolves as unpriced later, never as an error.
func validateRule(rule templatedomain.RuleInput) error {
	if !validCategory(rule.Category) {
		return templatedomain.ErrInvalidCategory
	}

	switch rule.PricingMode {
	case templatedomain.PricingFlat:
		if rule.UnitPriceCents == nil || *rule.UnitPriceCents < 0 {
			return templatedomain.ErrFlatPriceReq
		}
		return nil
	case templatedomain.PricingTiered:
		return validateTiers(rule.Tiers)
	default:
		return templatedomain.ErrInvalidMode
	}
}

func validateTiers(tiers []templatedomain.TierInput) error {
	if len(tiers) == 0 {
		return templatedomain.ErrTiersRequired
	}

	for i, tier := range tiers {
		if tier.UnitPriceCents < 0 {
			return templatedomain.ErrTierNegativePrice
		}
		if tier.MaxQuantity == nil {
			if i != len(tiers)-1 {
				return templatedomain.ErrTierUnbounded
			}
			continue
		}
		if *tier.MaxQuantity < tier.MinQuantity {
			return templatedomain.ErrTierOverlap
		}
	}

	for i := 1; i < len(tiers); i++ {
		prev, cur := tiers[i-1], tiers[i]
		if cur.MinQuantity <= prev.MinQuantity {
			return templatedomain.ErrTierOrder
		}
		if prev.MaxQuantity != nil && cur.MinQuantity <= *prev.MaxQuantity {
			return templatedomain.ErrTierOverlap
		}
	}

	return nil
}

package service

import (
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	operationdomain "github.com/warebilllabs/warebill/internal/operation/domain"
	templatedomain "github.com/warebilllabs/warebill/internal/template/domain"
)

func TestGenerateLedgerSingleFlatRule(t *testing.T) {
	customerID := snowflake.ID(7)
	template := &templatedomain.Template{
		ID: 1,
		Rules: []templatedomain.TemplateRule{
			{
				ID:             100,
				ChargeCode:     "HANDLING",
				ChargeName:     "Handling fee",
				Category:       templatedomain.CategoryInboundOutbound,
				Unit:           "carton",
				PricingMode:    templatedomain.PricingFlat,
				UnitPriceCents: int64Ptr(5),
			},
		},
	}
	logs := []operationdomain.OperationLog{
		{
			ID:         200,
			CustomerID: customerID,
			Type:       operationdomain.OperationInbound,
			BatchCode:  "B-001",
			Quantity:   20,
			OperatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		},
	}

	entries := GenerateLedger(template, logs, customerID, "Acme Warehouse")

	require.Len(t, entries, 1)
	entry := entries[0]
	assert.True(t, entry.Priced)
	assert.Equal(t, int64(5), entry.UnitPriceCents)
	assert.Equal(t, int64(100), entry.AmountCents)
	assert.Equal(t, "B-001", entry.BatchCode)
	assert.Equal(t, "Acme Warehouse", entry.CustomerName)
	assert.Equal(t, int64(100), SumLedger(entries))
}

func TestGenerateLedgerNilTemplate(t *testing.T) {
	logs := []operationdomain.OperationLog{
		{ID: 1, CustomerID: 7, Type: operationdomain.OperationInbound, Quantity: 3},
	}

	entries := GenerateLedger(nil, logs, 7, "Acme")
	assert.Empty(t, entries)
	assert.Equal(t, int64(0), SumLedger(entries))
}

func TestGenerateLedgerSkipsSupportOnlyRules(t *testing.T) {
	customerID := snowflake.ID(7)
	template := &templatedomain.Template{
		Rules: []templatedomain.TemplateRule{
			{
				ID:             1,
				ChargeCode:     "MANUAL_ADJ",
				Category:       templatedomain.CategoryManual,
				PricingMode:    templatedomain.PricingFlat,
				UnitPriceCents: int64Ptr(1000),
				SupportOnly:    true,
			},
			{
				ID:             2,
				ChargeCode:     "HANDLING",
				Category:       templatedomain.CategoryInboundOutbound,
				PricingMode:    templatedomain.PricingFlat,
				UnitPriceCents: int64Ptr(50),
			},
		},
	}
	logs := []operationdomain.OperationLog{
		{ID: 10, CustomerID: customerID, Type: operationdomain.OperationInbound, Quantity: 2},
	}

	entries := GenerateLedger(template, logs, customerID, "Acme")

	require.Len(t, entries, 1)
	assert.Equal(t, "HANDLING", entries[0].ChargeCode)
}

func TestGenerateLedgerFiltersByCustomerAndCategory(t *testing.T) {
	customerID := snowflake.ID(7)
	template := &templatedomain.Template{
		Rules: []templatedomain.TemplateRule{
			{
				ID:             1,
				ChargeCode:     "STORAGE",
				Category:       templatedomain.CategoryStorage,
				PricingMode:    templatedomain.PricingFlat,
				UnitPriceCents: int64Ptr(30),
			},
			{
				ID:             2,
				ChargeCode:     "RETURN",
				Category:       templatedomain.CategoryReturn,
				PricingMode:    templatedomain.PricingFlat,
				UnitPriceCents: int64Ptr(70),
			},
		},
	}
	logs := []operationdomain.OperationLog{
		{ID: 10, CustomerID: customerID, Type: operationdomain.OperationInbound, Quantity: 4},
		{ID: 11, CustomerID: customerID, Type: operationdomain.OperationOutbound, Quantity: 2},
		{ID: 12, CustomerID: 99, Type: operationdomain.OperationInbound, Quantity: 100},
	}

	entries := GenerateLedger(template, logs, customerID, "Acme")

	// Inbound log bills STORAGE only, outbound bills RETURN only; the other
	// customer's log is ignored entirely.
	require.Len(t, entries, 2)
	assert.Equal(t, "STORAGE", entries[0].ChargeCode)
	assert.Equal(t, int64(120), entries[0].AmountCents)
	assert.Equal(t, "RETURN", entries[1].ChargeCode)
	assert.Equal(t, int64(140), entries[1].AmountCents)
}

func TestGenerateLedgerPreservesLogThenRuleOrder(t *testing.T) {
	customerID := snowflake.ID(7)
	template := &templatedomain.Template{
		Rules: []templatedomain.TemplateRule{
			{ID: 1, ChargeCode: "A", Category: templatedomain.CategoryTransport, PricingMode: templatedomain.PricingFlat, UnitPriceCents: int64Ptr(10)},
			{ID: 2, ChargeCode: "B", Category: templatedomain.CategoryTransport, PricingMode: templatedomain.PricingFlat, UnitPriceCents: int64Ptr(20)},
		},
	}
	logs := []operationdomain.OperationLog{
		{ID: 10, CustomerID: customerID, Type: operationdomain.OperationInbound, BatchCode: "B1", Quantity: 1},
		{ID: 11, CustomerID: customerID, Type: operationdomain.OperationOutbound, BatchCode: "B2", Quantity: 1},
	}

	entries := GenerateLedger(template, logs, customerID, "Acme")

	require.Len(t, entries, 4)
	assert.Equal(t, []string{"B1", "B1", "B2", "B2"}, []string{
		entries[0].BatchCode, entries[1].BatchCode, entries[2].BatchCode, entries[3].BatchCode,
	})
	assert.Equal(t, []string{"A", "B", "A", "B"}, []string{
		entries[0].ChargeCode, entries[1].ChargeCode, entries[2].ChargeCode, entries[3].ChargeCode,
	})
}

func TestGenerateLedgerUnpricedEntryKeepsReason(t *testing.T) {
	customerID := snowflake.ID(7)
	template := &templatedomain.Template{
		Rules: []templatedomain.TemplateRule{
			{
				ID:          1,
				ChargeCode:  "TIERED",
				Category:    templatedomain.CategoryInboundOutbound,
				PricingMode: templatedomain.PricingTiered,
			},
		},
	}
	logs := []operationdomain.OperationLog{
		{ID: 10, CustomerID: customerID, Type: operationdomain.OperationInbound, Quantity: 5},
	}

	entries := GenerateLedger(template, logs, customerID, "Acme")

	require.Len(t, entries, 1)
	assert.False(t, entries[0].Priced)
	assert.Equal(t, int64(0), entries[0].AmountCents)
	assert.NotEmpty(t, entries[0].UnpricedReason)
	assert.Equal(t, int64(0), SumLedger(entries))
}

func TestGenerateLedgerIdempotent(t *testing.T) {
	customerID := snowflake.ID(7)
	template := &templatedomain.Template{
		Rules: []templatedomain.TemplateRule{
			{
				ID:          1,
				ChargeCode:  "TIERED",
				Category:    templatedomain.CategoryInboundOutbound,
				PricingMode: templatedomain.PricingTiered,
				Tiers: []templatedomain.RuleTier{
					{MinQuantity: 0, MaxQuantity: floatPtr(10), UnitPriceCents: 100},
					{MinQuantity: 11, UnitPriceCents: 90},
				},
			},
		},
	}
	logs := []operationdomain.OperationLog{
		{ID: 10, CustomerID: customerID, Type: operationdomain.OperationInbound, BatchCode: "B1", Quantity: 8, OperatedAt: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)},
		{ID: 11, CustomerID: customerID, Type: operationdomain.OperationOutbound, BatchCode: "B2", Quantity: 40, OperatedAt: time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)},
	}

	first := GenerateLedger(template, logs, customerID, "Acme")
	second := GenerateLedger(template, logs, customerID, "Acme")

	assert.Equal(t, first, second)
	require.Len(t, first, 2)
	assert.Equal(t, int64(800), first[0].AmountCents)
	assert.Equal(t, int64(3600), first[1].AmountCents)
}

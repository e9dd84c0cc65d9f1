package service

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/bwmarrin/snowflake"
	billingdomain "github.com/warebilllabs/warebill/internal/billing/domain"
	operationdomain "github.com/warebilllabs/warebill/internal/operation/domain"
	templatedomain "github.com/warebilllabs/warebill/internal/template/domain"
)

// GenerateLedger computes the derived billing lines for one customer: every
// operation log of that customer crossed with every non-support rule whose
// category matches the log's operation type, in log-then-rule order. A nil
// template or empty log list yields an empty ledger, not an error. The
// function is pure; identical inputs produce identical entries.
func GenerateLedger(
	template *templatedomain.Template,
	logs []operationdomain.OperationLog,
	customerID snowflake.ID,
	customerName string,
) []billingdomain.LedgerEntry {
	entries := []billingdomain.LedgerEntry{}
	if template == nil {
		return entries
	}

	for _, log := range logs {
		if log.CustomerID != customerID {
			continue
		}
		for _, rule := range template.Rules {
			if rule.SupportOnly {
				continue
			}
			if !MatchesOperation(rule.Category, log.Type) {
				continue
			}

			price := ResolveUnitPrice(rule, log.Quantity)
			entry := billingdomain.LedgerEntry{
				ID:            buildEntryID(log.ID, rule.ID),
				Date:          log.OperatedAt,
				CustomerID:    customerID,
				CustomerName:  customerName,
				BatchCode:     log.BatchCode,
				ChargeCode:    rule.ChargeCode,
				ChargeName:    rule.ChargeName,
				Category:      rule.Category,
				OperationType: log.Type,
				Unit:          rule.Unit,
				Quantity:      log.Quantity,
			}
			if price.IsPriced() {
				entry.Priced = true
				entry.UnitPriceCents = price.UnitPriceCents
				entry.AmountCents = roundAmount(float64(price.UnitPriceCents) * log.Quantity)
			} else {
				entry.UnpricedReason = price.Reason
			}
			entries = append(entries, entry)
		}
	}

	return entries
}

// SumLedger totals the priced amounts; unpriced entries contribute zero.
func SumLedger(entries []billingdomain.LedgerEntry) int64 {
	var total int64
	for _, entry := range entries {
		total += entry.AmountCents
	}
	return total
}

func buildEntryID(logID, ruleID snowflake.ID) string {
	payload := fmt.Sprintf("%s|%s", logID.String(), ruleID.String())
	sum := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:16])
}

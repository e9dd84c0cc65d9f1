// Package domain defines the derived billing-ledger types. Ledger entries
// are computed from templates and operation logs on demand and are never
// persisted; recomputing with the same inputs yields the same entries.
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	operationdomain "github.com/warebilllabs/warebill/internal/operation/domain"
	templatedomain "github.com/warebilllabs/warebill/internal/template/domain"
)

var (
	ErrInvalidCustomer = errors.New("billing: customer not found")
	ErrInvalidRange    = errors.New("billing: period end must be after start")
)

type PriceStatus string

const (
	PriceStatusPriced   PriceStatus = "PRICED"
	PriceStatusUnpriced PriceStatus = "UNPRICED"
)

// PriceResult is the outcome of resolving a rule's unit price for a
// quantity. An unpriced result carries the reason instead of conflating a
// data problem with an explicit zero price; it is never an error.
type PriceResult struct {
	Status         PriceStatus `json:"status"`
	UnitPriceCents int64       `json:"unit_price_cents"`
	Reason         string      `json:"reason,omitempty"`
}

func Priced(unitPriceCents int64) PriceResult {
	return PriceResult{Status: PriceStatusPriced, UnitPriceCents: unitPriceCents}
}

func Unpriced(reason string) PriceResult {
	return PriceResult{Status: PriceStatusUnpriced, Reason: reason}
}

func (r PriceResult) IsPriced() bool { return r.Status == PriceStatusPriced }

// LedgerEntry is one derived billing line: an operation log crossed with
// one matching template rule. The ID is a content checksum, so repeated
// generation over the same inputs produces identical entries.
type LedgerEntry struct {
	ID             string                        `json:"id"`
	Date           time.Time                     `json:"date"`
	CustomerID     snowflake.ID                  `json:"customer_id"`
	CustomerName   string                        `json:"customer_name"`
	BatchCode      string                        `json:"batch_code"`
	ChargeCode     string                        `json:"charge_code"`
	ChargeName     string                        `json:"charge_name"`
	Category       templatedomain.ChargeCategory `json:"category"`
	OperationType  operationdomain.OperationType `json:"operation_type"`
	Unit           string                        `json:"unit"`
	Quantity       float64                       `json:"quantity"`
	UnitPriceCents int64                         `json:"unit_price_cents"`
	AmountCents    int64                         `json:"amount_cents"`
	Priced         bool                          `json:"priced"`
	UnpricedReason string                        `json:"unpriced_reason,omitempty"`
}

// Statement is a ledger preview over a billing period plus its total.
type Statement struct {
	CustomerID   snowflake.ID  `json:"customer_id"`
	CustomerName string        `json:"customer_name"`
	TemplateID   *snowflake.ID `json:"template_id,omitempty"`
	PeriodStart  time.Time     `json:"period_start"`
	PeriodEnd    time.Time     `json:"period_end"`
	Entries      []LedgerEntry `json:"entries"`
	TotalCents   int64         `json:"total_cents"`
	GeneratedAt  time.Time     `json:"generated_at"`
}

type PreviewRequest struct {
	CustomerID string
	From       time.Time
	To         time.Time
}

type Service interface {
	Preview(ctx context.Context, req PreviewRequest) (*Statement, error)
	ExportPDF(ctx context.Context, req PreviewRequest) ([]byte, error)
}

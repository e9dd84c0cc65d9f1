package service

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
	billingdomain "github.com/warebilllabs/warebill/internal/billing/domain"
)

// renderStatementPDF renders a ledger statement as a simple tabular PDF.
func renderStatementPDF(statement *billingdomain.Statement) ([]byte, error) {
	cfg := config.NewBuilder().Build()
	m := maroto.New(cfg)

	m.AddRow(12, text.NewCol(12, "Warehouse Billing Statement", props.Text{
		Size:  14,
		Style: fontstyle.Bold,
		Align: align.Center,
	}))
	m.AddRow(8, text.NewCol(12, fmt.Sprintf(
		"Customer: %s    Period: %s — %s",
		statement.CustomerName,
		statement.PeriodStart.Format("2006-01-02"),
		statement.PeriodEnd.Format("2006-01-02"),
	), props.Text{Size: 10}))

	headerStyle := props.Text{Size: 9, Style: fontstyle.Bold}
	m.AddRow(8,
		text.NewCol(2, "Date", headerStyle),
		text.NewCol(2, "Batch", headerStyle),
		text.NewCol(3, "Charge", headerStyle),
		text.NewCol(1, "Qty", headerStyle),
		text.NewCol(2, "Unit Price", headerStyle),
		text.NewCol(2, "Amount", headerStyle),
	)

	rowStyle := props.Text{Size: 8}
	for _, entry := range statement.Entries {
		unitPrice := formatCents(entry.UnitPriceCents)
		amount := formatCents(entry.AmountCents)
		if !entry.Priced {
			unitPrice = "unpriced"
			amount = "-"
		}
		m.AddRow(6,
			text.NewCol(2, entry.Date.Format("2006-01-02"), rowStyle),
			text.NewCol(2, entry.BatchCode, rowStyle),
			text.NewCol(3, entry.ChargeName, rowStyle),
			text.NewCol(1, fmt.Sprintf("%g", entry.Quantity), rowStyle),
			text.NewCol(2, unitPrice, rowStyle),
			text.NewCol(2, amount, rowStyle),
		)
	}

	m.AddRow(10, text.NewCol(12, fmt.Sprintf("Total: %s", formatCents(statement.TotalCents)), props.Text{
		Size:  10,
		Style: fontstyle.Bold,
		Align: align.Right,
	}))

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return doc.GetBytes(), nil
}

func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

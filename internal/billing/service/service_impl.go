package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	billingdomain "github.com/warebilllabs/warebill/internal/billing/domain"
	"github.com/warebilllabs/warebill/internal/clock"
	customerdomain "github.com/warebilllabs/warebill/internal/customer/domain"
	operationdomain "github.com/warebilllabs/warebill/internal/operation/domain"
	templatedomain "github.com/warebilllabs/warebill/internal/template/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB            *gorm.DB
	Log           *zap.Logger
	Clock         clock.Clock
	CustomerRepo  customerdomain.Repository
	OperationRepo operationdomain.Repository
	TemplateSvc   templatedomain.Service
}

type Service struct {
	db            *gorm.DB
	log           *zap.Logger
	clock         clock.Clock
	customerRepo  customerdomain.Repository
	operationRepo operationdomain.Repository
	templateSvc   templatedomain.Service
}

func New(p Params) billingdomain.Service {
	return &Service{
		db:            p.DB,
		log:           p.Log.Named("billing.service"),
		clock:         p.Clock,
		customerRepo:  p.CustomerRepo,
		operationRepo: p.OperationRepo,
		templateSvc:   p.TemplateSvc,
	}
}

// Preview recomputes the customer's ledger for [From, To) from current
// template and log state. Nothing is cached or persisted.
func (s *Service) Preview(ctx context.Context, req billingdomain.PreviewRequest) (*billingdomain.Statement, error) {
	if !req.To.After(req.From) {
		return nil, billingdomain.ErrInvalidRange
	}

	customerID, err := parseID(req.CustomerID)
	if err != nil {
		return nil, billingdomain.ErrInvalidCustomer
	}
	customer, err := s.customerRepo.FindByID(ctx, s.db, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, billingdomain.ErrInvalidCustomer
	}

	template, err := s.templateSvc.Resolve(ctx, req.CustomerID, req.To)
	if err != nil {
		return nil, err
	}

	var logs []operationdomain.OperationLog
	if template != nil {
		logs, err = s.operationRepo.ListForBilling(ctx, s.db, customerID, req.From, req.To)
		if err != nil {
			return nil, err
		}
	}

	entries := GenerateLedger(template, logs, customerID, customer.Name)

	ledgerPreviewsTotal.Inc()
	ledgerEntriesTotal.Add(float64(len(entries)))
	for _, entry := range entries {
		if !entry.Priced {
			ledgerUnpricedTotal.Inc()
		}
	}

	statement := &billingdomain.Statement{
		CustomerID:   customerID,
		CustomerName: customer.Name,
		PeriodStart:  req.From,
		PeriodEnd:    req.To,
		Entries:      entries,
		TotalCents:   SumLedger(entries),
		GeneratedAt:  s.clock.Now(),
	}
	if template != nil {
		statement.TemplateID = &template.ID
	}

	s.log.Debug("ledger preview computed",
		zap.String("customer_id", customerID.String()),
		zap.Int("entries", len(entries)),
		zap.Int64("total_cents", statement.TotalCents),
	)
	return statement, nil
}

func (s *Service) ExportPDF(ctx context.Context, req billingdomain.PreviewRequest) ([]byte, error) {
	statement, err := s.Preview(ctx, req)
	if err != nil {
		return nil, err
	}
	return renderStatementPDF(statement)
}

func parseID(value string) (snowflake.ID, error) {
	return snowflake.ParseString(strings.TrimSpace(value))
}

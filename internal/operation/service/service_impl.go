package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/oklog/ulid/v2"
	customerdomain "github.com/warebilllabs/warebill/internal/customer/domain"
	operationdomain "github.com/warebilllabs/warebill/internal/operation/domain"
	"github.com/warebilllabs/warebill/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB           *gorm.DB
	Log          *zap.Logger
	GenID        *snowflake.Node
	Repo         operationdomain.Repository
	CustomerRepo customerdomain.Repository
}

type Service struct {
	db           *gorm.DB
	log          *zap.Logger
	genID        *snowflake.Node
	repo         operationdomain.Repository
	customerRepo customerdomain.Repository
}

func New(p Params) operationdomain.Service {
	return &Service{
		db:           p.DB,
		log:          p.Log.Named("operation.service"),
		genID:        p.GenID,
		repo:         p.Repo,
		customerRepo: p.CustomerRepo,
	}
}

func (s *Service) Create(ctx context.Context, req operationdomain.CreateRequest) (*operationdomain.OperationLog, error) {
	customerID, err := parseID(req.CustomerID)
	if err != nil {
		return nil, operationdomain.ErrInvalidCustomer
	}
	if req.Type != operationdomain.OperationInbound && req.Type != operationdomain.OperationOutbound {
		return nil, operationdomain.ErrInvalidType
	}
	if req.Quantity <= 0 {
		return nil, operationdomain.ErrInvalidQuantity
	}

	customer, err := s.customerRepo.FindByID(ctx, s.db, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, operationdomain.ErrInvalidCustomer
	}

	var carrierServiceID *snowflake.ID
	if strings.TrimSpace(req.CarrierServiceID) != "" {
		id, err := parseID(req.CarrierServiceID)
		if err != nil {
			return nil, operationdomain.ErrInvalidID
		}
		carrierServiceID = &id
	}

	now := time.Now().UTC()
	operatedAt := now
	if req.OperatedAt != nil {
		operatedAt = req.OperatedAt.UTC()
	}

	batchCode := strings.TrimSpace(req.BatchCode)
	if batchCode == "" {
		batchCode = ulid.Make().String()
	}

	entry := &operationdomain.OperationLog{
		ID:               s.genID.Generate(),
		CustomerID:       customerID,
		Type:             req.Type,
		BatchCode:        batchCode,
		Quantity:         req.Quantity,
		CarrierServiceID: carrierServiceID,
		OperatedAt:       operatedAt,
		Note:             strings.TrimSpace(req.Note),
		CreatedAt:        now,
	}

	if err := s.repo.Insert(ctx, s.db, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *Service) Get(ctx context.Context, id string) (*operationdomain.OperationLog, error) {
	logID, err := parseID(id)
	if err != nil {
		return nil, operationdomain.ErrInvalidID
	}

	entry, err := s.repo.FindByID(ctx, s.db, logID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, operationdomain.ErrNotFound
	}
	return entry, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	logID, err := parseID(id)
	if err != nil {
		return operationdomain.ErrInvalidID
	}

	entry, err := s.repo.FindByID(ctx, s.db, logID)
	if err != nil {
		return err
	}
	if entry == nil {
		return operationdomain.ErrNotFound
	}
	return s.repo.Delete(ctx, s.db, logID)
}

func (s *Service) List(ctx context.Context, req operationdomain.ListRequest) ([]*operationdomain.OperationLog, *pagination.PageInfo, error) {
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 50
	}

	var filter operationdomain.ListFilter
	if strings.TrimSpace(req.CustomerID) != "" {
		customerID, err := parseID(req.CustomerID)
		if err != nil {
			return nil, nil, operationdomain.ErrInvalidCustomer
		}
		filter.CustomerID = &customerID
	}
	if strings.TrimSpace(req.Type) != "" {
		filter.Type = operationdomain.OperationType(strings.ToUpper(strings.TrimSpace(req.Type)))
	}
	filter.From = req.From
	filter.To = req.To

	items, err := s.repo.List(ctx, s.db, filter, pagination.Pagination{
		PageToken: req.PageToken,
		PageSize:  pageSize,
	})
	if err != nil {
		return nil, nil, err
	}

	pageInfo := pagination.BuildCursorPageInfo(items, pageSize, func(entry *operationdomain.OperationLog) string {
		token, err := pagination.EncodeCursor(pagination.Cursor{
			ID:        entry.ID.String(),
			CreatedAt: entry.CreatedAt.Format(time.RFC3339),
		})
		if err != nil {
			return ""
		}
		return token
	})
	items = pagination.Trim(items, pageSize)

	return items, pageInfo, nil
}

func parseID(value string) (snowflake.ID, error) {
	return snowflake.ParseString(strings.TrimSpace(value))
}

package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	carrierdomain "github.com/warebilllabs/warebill/internal/carrier/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  carrierdomain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  carrierdomain.Repository
}

func New(p Params) carrierdomain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("carrier.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req carrierdomain.CreateRequest) (*carrierdomain.Carrier, error) {
	code := strings.TrimSpace(req.Code)
	if code == "" {
		return nil, carrierdomain.ErrInvalidCode
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, carrierdomain.ErrInvalidName
	}

	now := time.Now().UTC()
	entity := &carrierdomain.Carrier{
		ID:          s.genID.Generate(),
		Code:        code,
		Name:        name,
		ContactName: strings.TrimSpace(req.ContactName),
		Phone:       strings.TrimSpace(req.Phone),
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Insert(ctx, s.db, entity); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, carrierdomain.ErrDuplicateCode
		}
		return nil, err
	}
	return entity, nil
}

func (s *Service) Get(ctx context.Context, id string) (*carrierdomain.Carrier, error) {
	carrierID, err := parseID(id)
	if err != nil {
		return nil, carrierdomain.ErrInvalidID
	}

	entity, err := s.repo.FindByID(ctx, s.db, carrierID)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, carrierdomain.ErrNotFound
	}
	return entity, nil
}

func (s *Service) List(ctx context.Context) ([]*carrierdomain.Carrier, error) {
	return s.repo.List(ctx, s.db)
}

func (s *Service) CreateService(ctx context.Context, req carrierdomain.CreateServiceRequest) (*carrierdomain.CarrierService, error) {
	carrierID, err := parseID(req.CarrierID)
	if err != nil {
		return nil, carrierdomain.ErrInvalidID
	}
	code := strings.TrimSpace(req.Code)
	if code == "" {
		return nil, carrierdomain.ErrInvalidCode
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, carrierdomain.ErrInvalidName
	}
	channel := strings.TrimSpace(req.Channel)
	if channel == "" {
		return nil, carrierdomain.ErrInvalidChannel
	}

	carrier, err := s.repo.FindByID(ctx, s.db, carrierID)
	if err != nil {
		return nil, err
	}
	if carrier == nil {
		return nil, carrierdomain.ErrNotFound
	}

	now := time.Now().UTC()
	entity := &carrierdomain.CarrierService{
		ID:        s.genID.Generate(),
		CarrierID: carrierID,
		Code:      code,
		Name:      name,
		Channel:   channel,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.InsertService(ctx, s.db, entity); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, carrierdomain.ErrDuplicateCode
		}
		return nil, err
	}
	return entity, nil
}

func (s *Service) ListServices(ctx context.Context, carrierID string) ([]*carrierdomain.CarrierService, error) {
	var filter *snowflake.ID
	if strings.TrimSpace(carrierID) != "" {
		id, err := parseID(carrierID)
		if err != nil {
			return nil, carrierdomain.ErrInvalidID
		}
		filter = &id
	}
	return s.repo.ListServices(ctx, s.db, filter)
}

func parseID(value string) (snowflake.ID, error) {
	return snowflake.ParseString(strings.TrimSpace(value))
}

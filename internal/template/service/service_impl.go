package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gosimple/slug"
	customerdomain "github.com/warebilllabs/warebill/internal/customer/domain"
	templatedomain "github.com/warebilllabs/warebill/internal/template/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB           *gorm.DB
	Log          *zap.Logger
	GenID        *snowflake.Node
	Repo         templatedomain.Repository
	CustomerRepo customerdomain.Repository
}

type Service struct {
	db           *gorm.DB
	log          *zap.Logger
	genID        *snowflake.Node
	repo         templatedomain.Repository
	customerRepo customerdomain.Repository
}

func New(p Params) templatedomain.Service {
	return &Service{
		db:           p.DB,
		log:          p.Log.Named("template.service"),
		genID:        p.GenID,
		repo:         p.Repo,
		customerRepo: p.CustomerRepo,
	}
}

func (s *Service) Create(ctx context.Context, req templatedomain.CreateRequest) (*templatedomain.Template, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, templatedomain.ErrInvalidName
	}

	idempotencyKey := strings.TrimSpace(req.IdempotencyKey)
	if idempotencyKey != "" {
		existing, err := s.repo.FindByIdempotencyKey(ctx, s.db, idempotencyKey)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return existing, nil
		}
	}

	var customerID, groupID *snowflake.ID
	switch req.Scope {
	case templatedomain.ScopeGlobal:
	case templatedomain.ScopeCustomer:
		id, err := parseID(req.CustomerID)
		if err != nil {
			return nil, templatedomain.ErrScopeTargetReq
		}
		customerID = &id
	case templatedomain.ScopeGroup:
		id, err := parseID(req.GroupID)
		if err != nil {
			return nil, templatedomain.ErrScopeTargetReq
		}
		groupID = &id
	default:
		return nil, templatedomain.ErrInvalidScope
	}

	if len(req.Rules) == 0 {
		return nil, templatedomain.ErrNoRules
	}
	for _, rule := range req.Rules {
		if err := validateRule(rule); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	effectiveFrom := now
	if req.EffectiveFrom != nil {
		effectiveFrom = req.EffectiveFrom.UTC()
	}

	templateID := s.genID.Generate()
	entity := &templatedomain.Template{
		ID:            templateID,
		Code:          slug.Make(name),
		Name:          name,
		Scope:         req.Scope,
		CustomerID:    customerID,
		GroupID:       groupID,
		Version:       1,
		EffectiveFrom: effectiveFrom,
		ExpiresAt:     req.ExpiresAt,
		Active:        true,
		Rules:         s.buildRules(templateID, req.Rules, now),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if idempotencyKey != "" {
		entity.IdempotencyKey = &idempotencyKey
	}

	if err := s.repo.Insert(ctx, s.db, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

func (s *Service) buildRules(templateID snowflake.ID, inputs []templatedomain.RuleInput, now time.Time) []templatedomain.TemplateRule {
	rules := make([]templatedomain.TemplateRule, 0, len(inputs))
	for i, in := range inputs {
		rule := templatedomain.TemplateRule{
			ID:             s.genID.Generate(),
			TemplateID:     templateID,
			ChargeCode:     strings.TrimSpace(in.ChargeCode),
			ChargeName:     strings.TrimSpace(in.ChargeName),
			Category:       in.Category,
			Channel:        strings.TrimSpace(in.Channel),
			Unit:           strings.TrimSpace(in.Unit),
			PricingMode:    in.PricingMode,
			UnitPriceCents: in.UnitPriceCents,
			SupportOnly:    in.SupportOnly,
			SortOrder:      i,
			CreatedAt:      now,
		}
		if in.Metadata != nil {
			rule.Metadata = datatypes.JSONMap(in.Metadata)
		}
		for j, tier := range in.Tiers {
			rule.Tiers = append(rule.Tiers, templatedomain.RuleTier{
				ID:             s.genID.Generate(),
				RuleID:         rule.ID,
				MinQuantity:    tier.MinQuantity,
				MaxQuantity:    tier.MaxQuantity,
				UnitPriceCents: tier.UnitPriceCents,
				Description:    strings.TrimSpace(tier.Description),
				SortOrder:      j,
				CreatedAt:      now,
			})
		}
		rules = append(rules, rule)
	}
	return rules
}

func (s *Service) Update(ctx context.Context, id string, req templatedomain.UpdateRequest) (*templatedomain.Template, error) {
	templateID, err := parseID(id)
	if err != nil {
		return nil, templatedomain.ErrInvalidID
	}

	entity, err := s.repo.FindByID(ctx, s.db, templateID)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, templatedomain.ErrNotFound
	}

	if req.Rules != nil {
		if len(req.Rules) == 0 {
			return nil, templatedomain.ErrNoRules
		}
		for _, rule := range req.Rules {
			if err := validateRule(rule); err != nil {
				return nil, err
			}
		}
	}

	now := time.Now().UTC()
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, templatedomain.ErrInvalidName
		}
		entity.Name = name
		entity.Code = slug.Make(name)
	}
	if req.ExpiresAt != nil {
		entity.ExpiresAt = req.ExpiresAt
	}
	if req.Active != nil {
		entity.Active = *req.Active
	}
	entity.Version++
	entity.UpdatedAt = now

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Update(ctx, tx, entity); err != nil {
			return err
		}
		if req.Rules != nil {
			rules := s.buildRules(entity.ID, req.Rules, now)
			if err := s.repo.ReplaceRules(ctx, tx, entity.ID, rules); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.repo.FindByID(ctx, s.db, templateID)
}

func (s *Service) Get(ctx context.Context, id string) (*templatedomain.Template, error) {
	templateID, err := parseID(id)
	if err != nil {
		return nil, templatedomain.ErrInvalidID
	}

	entity, err := s.repo.FindByID(ctx, s.db, templateID)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, templatedomain.ErrNotFound
	}
	return entity, nil
}

func (s *Service) List(ctx context.Context, filter templatedomain.ListFilter) ([]*templatedomain.Template, error) {
	return s.repo.List(ctx, s.db, filter)
}

func (s *Service) Resolve(ctx context.Context, customerID string, at time.Time) (*templatedomain.Template, error) {
	id, err := parseID(customerID)
	if err != nil {
		return nil, templatedomain.ErrInvalidID
	}

	customer, err := s.customerRepo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}

	dedicated, err := s.repo.FindEffective(ctx, s.db, templatedomain.ScopeCustomer, &id, nil, at)
	if err != nil {
		return nil, err
	}
	if len(dedicated) > 0 {
		return dedicated[0], nil
	}

	if customer.GroupID != nil {
		grouped, err := s.repo.FindEffective(ctx, s.db, templatedomain.ScopeGroup, nil, customer.GroupID, at)
		if err != nil {
			return nil, err
		}
		if len(grouped) > 0 {
			return grouped[0], nil
		}
	}

	global, err := s.repo.FindEffective(ctx, s.db, templatedomain.ScopeGlobal, nil, nil, at)
	if err != nil {
		return nil, err
	}
	if len(global) > 0 {
		return global[0], nil
	}
	return nil, nil
}

func parseID(value string) (snowflake.ID, error) {
	return snowflake.ParseString(strings.TrimSpace(value))
}

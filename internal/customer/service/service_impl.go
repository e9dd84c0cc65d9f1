package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	customerdomain "github.com/warebilllabs/warebill/internal/customer/domain"
	"github.com/warebilllabs/warebill/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  customerdomain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  customerdomain.Repository
}

func New(p Params) customerdomain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("customer.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req customerdomain.CreateRequest) (*customerdomain.Customer, error) {
	code := strings.TrimSpace(req.Code)
	if code == "" {
		return nil, customerdomain.ErrInvalidCode
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, customerdomain.ErrInvalidName
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

	var groupID *snowflake.ID
	if strings.TrimSpace(req.GroupID) != "" {
		id, err := parseID(req.GroupID)
		if err != nil {
			return nil, customerdomain.ErrGroupNotFound
		}
		group, err := s.repo.FindGroupByID(ctx, s.db, id)
		if err != nil {
			return nil, err
		}
		if group == nil {
			return nil, customerdomain.ErrGroupNotFound
		}
		groupID = &id
	}

	now := time.Now().UTC()
	entity := &customerdomain.Customer{
		ID:          s.genID.Generate(),
		Code:        code,
		Name:        name,
		GroupID:     groupID,
		ContactName: strings.TrimSpace(req.ContactName),
		Phone:       strings.TrimSpace(req.Phone),
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if idempotencyKey != "" {
		entity.IdempotencyKey = &idempotencyKey
	}

	if err := s.repo.Insert(ctx, s.db, entity); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if idempotencyKey != "" {
				existing, findErr := s.repo.FindByIdempotencyKey(ctx, s.db, idempotencyKey)
				if findErr == nil && existing != nil {
					return existing, nil
				}
			}
			return nil, customerdomain.ErrDuplicateCode
		}
		return nil, err
	}

	return entity, nil
}

func (s *Service) Update(ctx context.Context, id string, req customerdomain.UpdateRequest) (*customerdomain.Customer, error) {
	customerID, err := parseID(id)
	if err != nil {
		return nil, customerdomain.ErrInvalidID
	}

	entity, err := s.repo.FindByID(ctx, s.db, customerID)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, customerdomain.ErrNotFound
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, customerdomain.ErrInvalidName
		}
		entity.Name = name
	}
	if req.GroupID != nil {
		if strings.TrimSpace(*req.GroupID) == "" {
			entity.GroupID = nil
		} else {
			groupID, err := parseID(*req.GroupID)
			if err != nil {
				return nil, customerdomain.ErrGroupNotFound
			}
			group, err := s.repo.FindGroupByID(ctx, s.db, groupID)
			if err != nil {
				return nil, err
			}
			if group == nil {
				return nil, customerdomain.ErrGroupNotFound
			}
			entity.GroupID = &groupID
		}
	}
	if req.ContactName != nil {
		entity.ContactName = strings.TrimSpace(*req.ContactName)
	}
	if req.Phone != nil {
		entity.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Active != nil {
		entity.Active = *req.Active
	}
	entity.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, s.db, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

func (s *Service) Get(ctx context.Context, id string) (*customerdomain.Customer, error) {
	customerID, err := parseID(id)
	if err != nil {
		return nil, customerdomain.ErrInvalidID
	}

	entity, err := s.repo.FindByID(ctx, s.db, customerID)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, customerdomain.ErrNotFound
	}
	return entity, nil
}

func (s *Service) List(ctx context.Context, req customerdomain.ListRequest) ([]*customerdomain.Customer, *pagination.PageInfo, error) {
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 50
	}

	var filter customerdomain.ListFilter
	if strings.TrimSpace(req.GroupID) != "" {
		groupID, err := parseID(req.GroupID)
		if err != nil {
			return nil, nil, customerdomain.ErrGroupNotFound
		}
		filter.GroupID = &groupID
	}

	items, err := s.repo.List(ctx, s.db, filter, pagination.Pagination{
		PageToken: req.PageToken,
		PageSize:  pageSize,
	})
	if err != nil {
		return nil, nil, err
	}

	pageInfo := pagination.BuildCursorPageInfo(items, pageSize, func(c *customerdomain.Customer) string {
		token, err := pagination.EncodeCursor(pagination.Cursor{
			ID:        c.ID.String(),
			CreatedAt: c.CreatedAt.Format(time.RFC3339),
		})
		if err != nil {
			return ""
		}
		return token
	})
	items = pagination.Trim(items, pageSize)

	return items, pageInfo, nil
}

func (s *Service) CreateGroup(ctx context.Context, req customerdomain.CreateGroupRequest) (*customerdomain.CustomerGroup, error) {
	code := strings.TrimSpace(req.Code)
	if code == "" {
		return nil, customerdomain.ErrInvalidCode
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, customerdomain.ErrInvalidName
	}

	now := time.Now().UTC()
	group := &customerdomain.CustomerGroup{
		ID:          s.genID.Generate(),
		Code:        code,
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.InsertGroup(ctx, s.db, group); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, customerdomain.ErrGroupCodeTaken
		}
		return nil, err
	}
	return group, nil
}

func (s *Service) ListGroups(ctx context.Context) ([]*customerdomain.CustomerGroup, error) {
	return s.repo.ListGroups(ctx, s.db)
}

func parseID(value string) (snowflake.ID, error) {
	return snowflake.ParseString(strings.TrimSpace(value))
}

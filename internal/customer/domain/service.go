package domain

import (
	"context"
	"errors"

	"github.com/warebilllabs/warebill/pkg/db/pagination"
)

var (
	ErrInvalidID      = errors.New("customer: invalid id")
	ErrInvalidCode    = errors.New("customer: code is required")
	ErrInvalidName    = errors.New("customer: name is required")
	ErrNotFound       = errors.New("customer: not found")
	ErrGroupNotFound  = errors.New("customer: group not found")
	ErrDuplicateCode  = errors.New("customer: code already exists")
	ErrGroupCodeTaken = errors.New("customer: group code already exists")
)

type CreateRequest struct {
	Code           string `json:"code" binding:"required"`
	Name           string `json:"name" binding:"required"`
	GroupID        string `json:"group_id"`
	ContactName    string `json:"contact_name"`
	Phone          string `json:"phone"`
	IdempotencyKey string `json:"-"`
}

type UpdateRequest struct {
	Name        *string `json:"name"`
	GroupID     *string `json:"group_id"`
	ContactName *string `json:"contact_name"`
	Phone       *string `json:"phone"`
	Active      *bool   `json:"active"`
}

type ListRequest struct {
	GroupID   string
	PageToken string
	PageSize  int
}

type CreateGroupRequest struct {
	Code        string `json:"code" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Customer, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Customer, error)
	Get(ctx context.Context, id string) (*Customer, error)
	List(ctx context.Context, req ListRequest) ([]*Customer, *pagination.PageInfo, error)

	CreateGroup(ctx context.Context, req CreateGroupRequest) (*CustomerGroup, error)
	ListGroups(ctx context.Context) ([]*CustomerGroup, error)
}

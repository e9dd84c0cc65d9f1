package domain

import (
	"context"
	"errors"
	"time"

	"github.com/warebilllabs/warebill/pkg/db/pagination"
)

var (
	ErrInvalidID       = errors.New("operation: invalid id")
	ErrInvalidCustomer = errors.New("operation: customer not found")
	ErrInvalidType     = errors.New("operation: type must be INBOUND or OUTBOUND")
	ErrInvalidQuantity = errors.New("operation: quantity must be positive")
	ErrNotFound        = errors.New("operation: not found")
)

type CreateRequest struct {
	CustomerID       string        `json:"customer_id" binding:"required"`
	Type             OperationType `json:"type" binding:"required"`
	BatchCode        string        `json:"batch_code"`
	Quantity         float64       `json:"quantity" binding:"required"`
	CarrierServiceID string        `json:"carrier_service_id"`
	OperatedAt       *time.Time    `json:"operated_at"`
	Note             string        `json:"note"`
}

type ListRequest struct {
	CustomerID string
	Type       string
	From       *time.Time
	To         *time.Time
	PageToken  string
	PageSize   int
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*OperationLog, error)
	Get(ctx context.Context, id string) (*OperationLog, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, req ListRequest) ([]*OperationLog, *pagination.PageInfo, error)
}

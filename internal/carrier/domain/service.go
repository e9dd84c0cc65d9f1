package domain

import (
	"context"
	"errors"
)

var (
	ErrInvalidID       = errors.New("carrier: invalid id")
	ErrInvalidCode     = errors.New("carrier: code is required")
	ErrInvalidName     = errors.New("carrier: name is required")
	ErrInvalidChannel  = errors.New("carrier: channel is required")
	ErrNotFound        = errors.New("carrier: not found")
	ErrServiceNotFound = errors.New("carrier: service not found")
	ErrDuplicateCode   = errors.New("carrier: code already exists")
)

type CreateRequest struct {
	Code        string `json:"code" binding:"required"`
	Name        string `json:"name" binding:"required"`
	ContactName string `json:"contact_name"`
	Phone       string `json:"phone"`
}

type CreateServiceRequest struct {
	CarrierID string `json:"carrier_id" binding:"required"`
	Code      string `json:"code" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Channel   string `json:"channel" binding:"required"`
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Carrier, error)
	Get(ctx context.Context, id string) (*Carrier, error)
	List(ctx context.Context) ([]*Carrier, error)

	CreateService(ctx context.Context, req CreateServiceRequest) (*CarrierService, error)
	ListServices(ctx context.Context, carrierID string) ([]*CarrierService, error)
}

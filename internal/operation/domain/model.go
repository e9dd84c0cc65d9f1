// Package domain holds the manual warehouse operation ledger source: one
// row per recorded inbound or outbound event.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type OperationType string

const (
	OperationInbound  OperationType = "INBOUND"
	OperationOutbound OperationType = "OUTBOUND"
)

type OperationLog struct {
	ID               snowflake.ID  `gorm:"primaryKey" json:"id"`
	CustomerID       snowflake.ID  `gorm:"not null;index" json:"customer_id"`
	Type             OperationType `gorm:"type:text;not null" json:"type"`
	BatchCode        string        `gorm:"type:text;not null;index" json:"batch_code"`
	Quantity         float64       `gorm:"not null" json:"quantity"`
	CarrierServiceID *snowflake.ID `gorm:"index" json:"carrier_service_id,omitempty"`
	OperatedAt       time.Time     `gorm:"not null;index" json:"operated_at"`
	Note             string        `gorm:"type:text" json:"note"`
	CreatedAt        time.Time     `gorm:"not null" json:"created_at"`
}

func (OperationLog) TableName() string { return "operation_logs" }

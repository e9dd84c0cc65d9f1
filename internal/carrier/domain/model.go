// Package domain holds carrier and carrier-service models. A carrier
// service is one shipping channel a carrier offers; template rules and
// operation logs reference it by its channel code.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type Carrier struct {
	ID          snowflake.ID `gorm:"primaryKey" json:"id"`
	Code        string       `gorm:"type:text;not null;uniqueIndex" json:"code"`
	Name        string       `gorm:"type:text;not null" json:"name"`
	ContactName string       `gorm:"type:text" json:"contact_name"`
	Phone       string       `gorm:"type:text" json:"phone"`
	Active      bool         `gorm:"not null;default:true" json:"active"`
	CreatedAt   time.Time    `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"not null" json:"updated_at"`
}

func (Carrier) TableName() string { return "carriers" }

type CarrierService struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	CarrierID snowflake.ID `gorm:"not null;index" json:"carrier_id"`
	Code      string       `gorm:"type:text;not null;uniqueIndex" json:"code"`
	Name      string       `gorm:"type:text;not null" json:"name"`
	Channel   string       `gorm:"type:text;not null" json:"channel"`
	Active    bool         `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time    `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time    `gorm:"not null" json:"updated_at"`
}

func (CarrierService) TableName() string { return "carrier_services" }

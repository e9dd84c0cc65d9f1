// Package domain holds the customer and customer-group models.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Customer is a billable warehouse tenant. GroupID links the customer to a
// CustomerGroup so group-scoped billing templates can apply.
type Customer struct {
	ID             snowflake.ID  `gorm:"primaryKey" json:"id"`
	Code           string        `gorm:"type:text;not null;uniqueIndex" json:"code"`
	Name           string        `gorm:"type:text;not null" json:"name"`
	GroupID        *snowflake.ID `gorm:"index" json:"group_id,omitempty"`
	ContactName    string        `gorm:"type:text" json:"contact_name"`
	Phone          string        `gorm:"type:text" json:"phone"`
	Active         bool          `gorm:"not null;default:true" json:"active"`
	IdempotencyKey *string       `gorm:"uniqueIndex" json:"-"`
	CreatedAt      time.Time     `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time     `gorm:"not null" json:"updated_at"`
}

func (Customer) TableName() string { return "customers" }

type CustomerGroup struct {
	ID          snowflake.ID `gorm:"primaryKey" json:"id"`
	Code        string       `gorm:"type:text;not null;uniqueIndex" json:"code"`
	Name        string       `gorm:"type:text;not null" json:"name"`
	Description string       `gorm:"type:text" json:"description"`
	CreatedAt   time.Time    `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"not null" json:"updated_at"`
}

func (CustomerGroup) TableName() string { return "customer_groups" }

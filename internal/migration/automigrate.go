package migration

import (
	carrierdomain "github.com/warebilllabs/warebill/internal/carrier/domain"
	customerdomain "github.com/warebilllabs/warebill/internal/customer/domain"
	operationdomain "github.com/warebilllabs/warebill/internal/operation/domain"
	templatedomain "github.com/warebilllabs/warebill/internal/template/domain"
	"gorm.io/gorm"
)

// AutoMigrate builds the schema from the gorm models. Used for sqlite
// deployments where the versioned Postgres migrations do not apply.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&customerdomain.CustomerGroup{},
		&customerdomain.Customer{},
		&carrierdomain.Carrier{},
		&carrierdomain.CarrierService{},
		&templatedomain.Template{},
		&templatedomain.TemplateRule{},
		&templatedomain.RuleTier{},
		&operationdomain.OperationLog{},
	)
}

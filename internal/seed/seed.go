// Package seed bootstraps a usable dataset: the default global billing
// template plus a demo group, customer, carrier and a handful of operation
// logs. Every ensure function is find-or-create by code, so reruns are safe.
package seed

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	carrierdomain "github.com/warebilllabs/warebill/internal/carrier/domain"
	customerdomain "github.com/warebilllabs/warebill/internal/customer/domain"
	operationdomain "github.com/warebilllabs/warebill/internal/operation/domain"
	templatedomain "github.com/warebilllabs/warebill/internal/template/domain"
	"gorm.io/gorm"
)

const (
	defaultTemplateCode = "standard-global"
	demoGroupCode       = "demo-group"
	demoCustomerCode    = "demo-customer"
	demoCarrierCode     = "demo-carrier"
	demoServiceCode     = "demo-carrier-ground"
)

// Run seeds the default template and demo data inside one transaction.
func Run(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureDefaultTemplate(ctx, tx, node); err != nil {
			return err
		}
		group, err := ensureDemoGroup(ctx, tx, node)
		if err != nil {
			return err
		}
		customer, err := ensureDemoCustomer(ctx, tx, node, group.ID)
		if err != nil {
			return err
		}
		service, err := ensureDemoCarrier(ctx, tx, node)
		if err != nil {
			return err
		}
		return ensureDemoLogs(ctx, tx, node, customer.ID, service.ID)
	})
}

func ensureDefaultTemplate(ctx context.Context, tx *gorm.DB, node *snowflake.Node) error {
	var existing templatedomain.Template
	err := tx.WithContext(ctx).Where("code = ?", defaultTemplateCode).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	now := time.Now().UTC()
	handlingPrice := int64(50)
	templateID := node.Generate()
	tieredRuleID := node.Generate()

	template := templatedomain.Template{
		ID:            templateID,
		Code:          defaultTemplateCode,
		Name:          "Standard Global",
		Scope:         templatedomain.ScopeGlobal,
		Version:       1,
		EffectiveFrom: now,
		Active:        true,
		Rules: []templatedomain.TemplateRule{
			{
				ID:             node.Generate(),
				TemplateID:     templateID,
				ChargeCode:     "HANDLING",
				ChargeName:     "Handling fee",
				Category:       templatedomain.CategoryInboundOutbound,
				Unit:           "carton",
				PricingMode:    templatedomain.PricingFlat,
				UnitPriceCents: &handlingPrice,
				SortOrder:      0,
				CreatedAt:      now,
			},
			{
				ID:          tieredRuleID,
				TemplateID:  templateID,
				ChargeCode:  "OUTBOUND_PICK",
				ChargeName:  "Outbound picking",
				Category:    templatedomain.CategoryInboundOutbound,
				Unit:        "piece",
				PricingMode: templatedomain.PricingTiered,
				SortOrder:   1,
				CreatedAt:   now,
				Tiers: []templatedomain.RuleTier{
					{
						ID:             node.Generate(),
						RuleID:         tieredRuleID,
						MinQuantity:    0,
						MaxQuantity:    floatPtr(100),
						UnitPriceCents: 30,
						SortOrder:      0,
						CreatedAt:      now,
					},
					{
						ID:             node.Generate(),
						RuleID:         tieredRuleID,
						MinQuantity:    101,
						UnitPriceCents: 25,
						SortOrder:      1,
						CreatedAt:      now,
					},
				},
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	return tx.WithContext(ctx).Create(&template).Error
}

func ensureDemoGroup(ctx context.Context, tx *gorm.DB, node *snowflake.Node) (*customerdomain.CustomerGroup, error) {
	var group customerdomain.CustomerGroup
	err := tx.WithContext(ctx).Where("code = ?", demoGroupCode).First(&group).Error
	if err == nil {
		return &group, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	group = customerdomain.CustomerGroup{
		ID:          node.Generate(),
		Code:        demoGroupCode,
		Name:        "Demo Group",
		Description: "Seeded demo customer group",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := tx.WithContext(ctx).Create(&group).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

func ensureDemoCustomer(ctx context.Context, tx *gorm.DB, node *snowflake.Node, groupID snowflake.ID) (*customerdomain.Customer, error) {
	var customer customerdomain.Customer
	err := tx.WithContext(ctx).Where("code = ?", demoCustomerCode).First(&customer).Error
	if err == nil {
		return &customer, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	customer = customerdomain.Customer{
		ID:          node.Generate(),
		Code:        demoCustomerCode,
		Name:        "Demo Customer",
		GroupID:     &groupID,
		ContactName: "Demo Contact",
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := tx.WithContext(ctx).Create(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func ensureDemoCarrier(ctx context.Context, tx *gorm.DB, node *snowflake.Node) (*carrierdomain.CarrierService, error) {
	var carrier carrierdomain.Carrier
	err := tx.WithContext(ctx).Where("code = ?", demoCarrierCode).First(&carrier).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		now := time.Now().UTC()
		carrier = carrierdomain.Carrier{
			ID:        node.Generate(),
			Code:      demoCarrierCode,
			Name:      "Demo Carrier",
			Active:    true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		err = tx.WithContext(ctx).Create(&carrier).Error
	}
	if err != nil {
		return nil, err
	}

	var service carrierdomain.CarrierService
	err = tx.WithContext(ctx).Where("code = ?", demoServiceCode).First(&service).Error
	if err == nil {
		return &service, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	service = carrierdomain.CarrierService{
		ID:        node.Generate(),
		CarrierID: carrier.ID,
		Code:      demoServiceCode,
		Name:      "Demo Ground",
		Channel:   "GROUND",
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := tx.WithContext(ctx).Create(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func ensureDemoLogs(ctx context.Context, tx *gorm.DB, node *snowflake.Node, customerID, serviceID snowflake.ID) error {
	var count int64
	err := tx.WithContext(ctx).
		Model(&operationdomain.OperationLog{}).
		Where("customer_id = ?", customerID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	logs := []operationdomain.OperationLog{
		{
			ID:         node.Generate(),
			CustomerID: customerID,
			Type:       operationdomain.OperationInbound,
			BatchCode:  "SEED-IN-001",
			Quantity:   120,
			OperatedAt: now.AddDate(0, 0, -3),
			Note:       "seeded inbound batch",
			CreatedAt:  now,
		},
		{
			ID:               node.Generate(),
			CustomerID:       customerID,
			Type:             operationdomain.OperationOutbound,
			BatchCode:        "SEED-OUT-001",
			Quantity:         45,
			CarrierServiceID: &serviceID,
			OperatedAt:       now.AddDate(0, 0, -1),
			Note:             "seeded outbound batch",
			CreatedAt:        now,
		},
	}
	return tx.WithContext(ctx).Create(&logs).Error
}

func floatPtr(v float64) *float64 {
	return &v
}

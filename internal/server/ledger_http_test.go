package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	billingservice "github.com/warebilllabs/warebill/internal/billing/service"
	carrierrepo "github.com/warebilllabs/warebill/internal/carrier/repository"
	carrierservice "github.com/warebilllabs/warebill/internal/carrier/service"
	"github.com/warebilllabs/warebill/internal/clock"
	"github.com/warebilllabs/warebill/internal/config"
	customerdomain "github.com/warebilllabs/warebill/internal/customer/domain"
	customerrepo "github.com/warebilllabs/warebill/internal/customer/repository"
	customerservice "github.com/warebilllabs/warebill/internal/customer/service"
	"github.com/warebilllabs/warebill/internal/migration"
	operationdomain "github.com/warebilllabs/warebill/internal/operation/domain"
	operationrepo "github.com/warebilllabs/warebill/internal/operation/repository"
	operationservice "github.com/warebilllabs/warebill/internal/operation/service"
	templatedomain "github.com/warebilllabs/warebill/internal/template/domain"
	templaterepo "github.com/warebilllabs/warebill/internal/template/repository"
	templateservice "github.com/warebilllabs/warebill/internal/template/service"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestServer(t *testing.T) (*Server, *gorm.DB, *snowflake.Node) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, migration.AutoMigrate(db))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	log := zap.NewNop()
	custRepo := customerrepo.Provide()
	opRepo := operationrepo.Provide()
	tmplRepo := templaterepo.Provide()

	templateSvc := templateservice.New(templateservice.Params{
		DB: db, Log: log, GenID: node, Repo: tmplRepo, CustomerRepo: custRepo,
	})

	srv := New(Params{
		Config: config.Config{Environment: "test", Server: config.ServerConfig{Addr: ":0"}},
		Log:    log,
		DB:     db,
		CustomerSvc: customerservice.New(customerservice.Params{
			DB: db, Log: log, GenID: node, Repo: custRepo,
		}),
		CarrierSvc: carrierservice.New(carrierservice.Params{
			DB: db, Log: log, GenID: node, Repo: carrierrepo.Provide(),
		}),
		TemplateSvc: templateSvc,
		OperationSvc: operationservice.New(operationservice.Params{
			DB: db, Log: log, GenID: node, Repo: opRepo, CustomerRepo: custRepo,
		}),
		BillingSvc: billingservice.New(billingservice.Params{
			DB:            db,
			Log:           log,
			Clock:         clock.SystemClock{},
			CustomerRepo:  custRepo,
			OperationRepo: opRepo,
			TemplateSvc:   templateSvc,
		}),
	})
	return srv, db, node
}

func TestPreviewLedgerEndToEnd(t *testing.T) {
	srv, db, node := newTestServer(t)
	router := srv.Router()

	now := time.Now().UTC()
	customer := &customerdomain.Customer{
		ID:        node.Generate(),
		Code:      "acme",
		Name:      "Acme Warehouse",
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, db.Create(customer).Error)

	price := int64(5)
	templateID := node.Generate()
	template := &templatedomain.Template{
		ID:            templateID,
		Code:          "standard",
		Name:          "Standard",
		Scope:         templatedomain.ScopeGlobal,
		Version:       1,
		EffectiveFrom: now.AddDate(0, 0, -30),
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
				UnitPriceCents: &price,
				CreatedAt:      now,
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, db.Create(template).Error)

	log := &operationdomain.OperationLog{
		ID:         node.Generate(),
		CustomerID: customer.ID,
		Type:       operationdomain.OperationInbound,
		BatchCode:  "B-001",
		Quantity:   20,
		OperatedAt: now.AddDate(0, 0, -2),
		CreatedAt:  now,
	}
	require.NoError(t, db.Create(log).Error)

	from := now.AddDate(0, 0, -7).Format(time.RFC3339)
	to := now.AddDate(0, 0, 1).Format(time.RFC3339)
	url := fmt.Sprintf("/v1/ledger/preview?customer_id=%s&from=%s&to=%s", customer.ID.String(), from, to)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			CustomerName string `json:"customer_name"`
			TotalCents   int64  `json:"total_cents"`
			Entries      []struct {
				ChargeCode     string  `json:"charge_code"`
				Quantity       float64 `json:"quantity"`
				UnitPriceCents int64   `json:"unit_price_cents"`
				AmountCents    int64   `json:"amount_cents"`
				Priced         bool    `json:"priced"`
			} `json:"entries"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, "Acme Warehouse", body.Data.CustomerName)
	assert.Equal(t, int64(100), body.Data.TotalCents)
	require.Len(t, body.Data.Entries, 1)
	entry := body.Data.Entries[0]
	assert.Equal(t, "HANDLING", entry.ChargeCode)
	assert.Equal(t, float64(20), entry.Quantity)
	assert.Equal(t, int64(5), entry.UnitPriceCents)
	assert.Equal(t, int64(100), entry.AmountCents)
	assert.True(t, entry.Priced)
}

func TestPreviewLedgerValidatesRange(t *testing.T) {
	srv, db, node := newTestServer(t)
	router := srv.Router()

	now := time.Now().UTC()
	customer := &customerdomain.Customer{
		ID:        node.Generate(),
		Code:      "acme",
		Name:      "Acme",
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, db.Create(customer).Error)

	from := now.Format(time.RFC3339)
	to := now.AddDate(0, 0, -1).Format(time.RFC3339)
	url := fmt.Sprintf("/v1/ledger/preview?customer_id=%s&from=%s&to=%s", customer.ID.String(), from, to)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPreviewLedgerUnknownCustomer(t *testing.T) {
	srv, _, _ := newTestServer(t)
	router := srv.Router()

	now := time.Now().UTC()
	from := now.AddDate(0, 0, -7).Format(time.RFC3339)
	to := now.Format(time.RFC3339)
	url := fmt.Sprintf("/v1/ledger/preview?customer_id=123456789&from=%s&to=%s", from, to)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

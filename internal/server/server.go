// Package server exposes the HTTP API: customers, carriers, billing
// templates, operation logs and the derived ledger.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	billingdomain "github.com/warebilllabs/warebill/internal/billing/domain"
	carrierdomain "github.com/warebilllabs/warebill/internal/carrier/domain"
	"github.com/warebilllabs/warebill/internal/config"
	customerdomain "github.com/warebilllabs/warebill/internal/customer/domain"
	operationdomain "github.com/warebilllabs/warebill/internal/operation/domain"
	templatedomain "github.com/warebilllabs/warebill/internal/template/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("server",
	fx.Provide(New),
	fx.Invoke(RunHTTP),
)

type Params struct {
	fx.In

	Config config.Config
	Log    *zap.Logger
	DB     *gorm.DB
	Redis  *redis.Client `optional:"true"`

	CustomerSvc  customerdomain.Service
	CarrierSvc   carrierdomain.Service
	TemplateSvc  templatedomain.Service
	OperationSvc operationdomain.Service
	BillingSvc   billingdomain.Service
}

type Server struct {
	cfg   config.Config
	log   *zap.Logger
	db    *gorm.DB
	redis *redis.Client

	customerSvc  customerdomain.Service
	carrierSvc   carrierdomain.Service
	templateSvc  templatedomain.Service
	operationSvc operationdomain.Service
	billingSvc   billingdomain.Service
}

func New(p Params) *Server {
	return &Server{
		cfg:          p.Config,
		log:          p.Log.Named("server"),
		db:           p.DB,
		redis:        p.Redis,
		customerSvc:  p.CustomerSvc,
		carrierSvc:   p.CarrierSvc,
		templateSvc:  p.TemplateSvc,
		operationSvc: p.OperationSvc,
		billingSvc:   p.BillingSvc,
	}
}

func (s *Server) Router() *gin.Engine {
	if s.cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(s.requestLogger())

	router.GET("/healthz", s.Healthz)
	router.GET("/readyz", s.Readyz)
	if s.cfg.Telemetry.MetricsEnabled {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	v1 := router.Group("/v1")
	if s.cfg.RateLimit.Enabled && s.redis != nil {
		v1.Use(rateLimitMiddleware(s.redis, s.cfg.RateLimit.RequestsPerMinute, s.log))
	}

	v1.POST("/customers", s.CreateCustomer)
	v1.GET("/customers", s.ListCustomers)
	v1.GET("/customers/:id", s.GetCustomerByID)
	v1.PATCH("/customers/:id", s.UpdateCustomer)
	v1.POST("/customer-groups", s.CreateCustomerGroup)
	v1.GET("/customer-groups", s.ListCustomerGroups)

	v1.POST("/carriers", s.CreateCarrier)
	v1.GET("/carriers", s.ListCarriers)
	v1.GET("/carriers/:id", s.GetCarrierByID)
	v1.POST("/carriers/:id/services", s.CreateCarrierService)
	v1.GET("/carriers/:id/services", s.ListCarrierServices)

	v1.POST("/templates", s.CreateTemplate)
	v1.GET("/templates", s.ListTemplates)
	v1.GET("/templates/resolve", s.ResolveTemplate)
	v1.GET("/templates/:id", s.GetTemplateByID)
	v1.PATCH("/templates/:id", s.UpdateTemplate)

	v1.POST("/operations", s.CreateOperation)
	v1.GET("/operations", s.ListOperations)
	v1.GET("/operations/:id", s.GetOperationByID)
	v1.DELETE("/operations/:id", s.DeleteOperation)

	v1.GET("/ledger/preview", s.PreviewLedger)
	v1.GET("/ledger/export.pdf", s.ExportLedgerPDF)

	return router
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

func RunHTTP(lc fx.Lifecycle, s *Server) {
	srv := &http.Server{
		Addr:    s.cfg.Server.Addr,
		Handler: s.Router(),
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				s.log.Info("http server listening", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					s.log.Error("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}

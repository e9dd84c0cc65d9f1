// Package observability provides the shared zap logger and trace exporter.
package observability

import (
	"github.com/warebilllabs/warebill/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("observability",
	fx.Provide(NewLogger),
	fx.Invoke(SetupTracing),
)

func NewLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.Environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

package operation

import (
	"github.com/warebilllabs/warebill/internal/operation/repository"
	"github.com/warebilllabs/warebill/internal/operation/service"
	"go.uber.org/fx"
)

var Module = fx.Module("operation.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)

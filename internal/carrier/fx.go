package carrier

import (
	"github.com/warebilllabs/warebill/internal/carrier/repository"
	"github.com/warebilllabs/warebill/internal/carrier/service"
	"go.uber.org/fx"
)

var Module = fx.Module("carrier.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)

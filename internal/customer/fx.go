package customer

import (
	"github.com/warebilllabs/warebill/internal/customer/repository"
	"github.com/warebilllabs/warebill/internal/customer/service"
	"go.uber.org/fx"
)

var Module = fx.Module("customer.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)

package template

import (
	"github.com/warebilllabs/warebill/internal/template/repository"
	"github.com/warebilllabs/warebill/internal/template/service"
	"go.uber.org/fx"
)

var Module = fx.Module("template.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)

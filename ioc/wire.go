//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/esgform/internal/catalog"
	"github.com/ecodeclub/esgform/internal/project"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitAIService, catalog.NewService, catalog.NewHandler)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		project.InitModule,
		wire.FieldsOf(new(*project.Module), "Hdl", "AdminHdl"),
		initGinxServer,
		InitAdminServer)
	return new(App), nil
}

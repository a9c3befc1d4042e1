package startup

import (
	"github.com/ecodeclub/esgform/internal/ai"
	"github.com/ecodeclub/esgform/internal/catalog"
	"github.com/ecodeclub/esgform/internal/project"
	"github.com/ego-component/egorm"
)

func InitModule(db *egorm.Component, aiSvc ai.Service) (*project.Module, error) {
	return project.InitModule(db, catalog.NewService(), aiSvc)
}

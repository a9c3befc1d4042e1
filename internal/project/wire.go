// Copyright 2025 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build wireinject

package project

import (
	"github.com/ecodeclub/esgform/internal/ai"
	"github.com/ecodeclub/esgform/internal/catalog"
	"github.com/ecodeclub/esgform/internal/project/internal/repository"
	"github.com/ecodeclub/esgform/internal/project/internal/service"
	"github.com/ecodeclub/esgform/internal/project/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, catalogSvc catalog.Service, aiSvc ai.Service) (*Module, error) {
	wire.Build(
		InitProjectDAO,
		repository.NewRepository,
		service.NewService,
		web.NewHandler,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

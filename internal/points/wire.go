// Copyright 2023 ecodeclub
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

package points

import (
	"sync"

	"github.com/ecodeclub/capshop/internal/points/internal/repository"
	"github.com/ecodeclub/capshop/internal/points/internal/repository/dao"
	"github.com/ecodeclub/capshop/internal/points/internal/service"
	"github.com/ecodeclub/capshop/internal/points/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var ServiceSet = wire.NewSet(
	InitTablesOnce,
	repository.NewPointsRepository,
	service.NewService)

func InitHandler(db *egorm.Component) *Handler {
	wire.Build(ServiceSet, web.NewHandler)
	return new(Handler)
}

func InitService(db *egorm.Component) Service {
	wire.Build(ServiceSet)
	return nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.PointsDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewPointsGORMDAO(db)
}

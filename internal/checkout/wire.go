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

package checkout

import (
	"sync"
	"time"

	"github.com/ecodeclub/capshop/internal/checkout/internal/job"
	"github.com/ecodeclub/capshop/internal/checkout/internal/repository"
	"github.com/ecodeclub/capshop/internal/checkout/internal/repository/dao"
	"github.com/ecodeclub/capshop/internal/checkout/internal/service"
	"github.com/ecodeclub/capshop/internal/checkout/internal/web"
	"github.com/ecodeclub/capshop/internal/pkg/sequencenumber"
	"github.com/ecodeclub/capshop/internal/product"
	"github.com/ecodeclub/ecache"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var ServiceSet = wire.NewSet(
	InitTablesOnce,
	sequencenumber.NewGenerator,
	repository.NewCheckoutRepository,
	service.NewService)

func InitHandler(db *egorm.Component, ec ecache.Cache, productSvc product.Service) *Handler {
	wire.Build(ServiceSet, web.NewHandler)
	return new(Handler)
}

func InitService(db *egorm.Component) Service {
	wire.Build(ServiceSet)
	return nil
}

func InitCleanExpiredCheckoutsJob(svc Service, retention, timeout time.Duration) *CleanExpiredCheckoutsJob {
	wire.Build(job.NewCleanExpiredCheckoutsJob)
	return new(CleanExpiredCheckoutsJob)
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.CheckoutDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewCheckoutGORMDAO(db)
}

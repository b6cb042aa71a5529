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

package coupon

import (
	"sync"
	"time"

	"github.com/ecodeclub/capshop/internal/coupon/internal/job"
	"github.com/ecodeclub/capshop/internal/coupon/internal/repository"
	"github.com/ecodeclub/capshop/internal/coupon/internal/repository/dao"
	"github.com/ecodeclub/capshop/internal/coupon/internal/service"
	"github.com/ecodeclub/capshop/internal/coupon/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var ServiceSet = wire.NewSet(
	InitTablesOnce,
	repository.NewCouponRepository,
	service.NewService)

func InitHandler(db *egorm.Component) *Handler {
	wire.Build(ServiceSet, web.NewHandler)
	return new(Handler)
}

func InitAdminHandler(db *egorm.Component) *AdminHandler {
	wire.Build(ServiceSet, web.NewAdminHandler)
	return new(AdminHandler)
}

func InitService(db *egorm.Component) Service {
	wire.Build(ServiceSet)
	return nil
}

func InitExpireCouponsJob(svc Service, timeout time.Duration) *ExpireCouponsJob {
	wire.Build(job.NewExpireCouponsJob)
	return new(ExpireCouponsJob)
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.CouponDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewCouponGORMDAO(db)
}

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

package order

import (
	"sync"
	"time"

	"github.com/ecodeclub/capshop/internal/cart"
	"github.com/ecodeclub/capshop/internal/checkout"
	"github.com/ecodeclub/capshop/internal/coupon"
	"github.com/ecodeclub/capshop/internal/order/internal/event"
	"github.com/ecodeclub/capshop/internal/order/internal/job"
	"github.com/ecodeclub/capshop/internal/order/internal/repository"
	"github.com/ecodeclub/capshop/internal/order/internal/repository/dao"
	"github.com/ecodeclub/capshop/internal/order/internal/service"
	"github.com/ecodeclub/capshop/internal/order/internal/web"
	"github.com/ecodeclub/capshop/internal/payment"
	"github.com/ecodeclub/capshop/internal/points"
	"github.com/ecodeclub/capshop/internal/product"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var ServiceSet = wire.NewSet(
	InitTablesOnce,
	event.NewOrderEventProducer,
	repository.NewOrderRepository,
	service.NewService)

func InitService(db *egorm.Component, q mq.MQ,
	productSvc product.Service,
	couponSvc coupon.Service,
	pointsSvc points.Service,
	paymentSvc payment.Service,
	checkoutSvc checkout.Service,
	cartSvc cart.Service) (Service, error) {
	wire.Build(ServiceSet)
	return nil, nil
}

func InitHandler(svc Service) *Handler {
	wire.Build(web.NewHandler)
	return new(Handler)
}

func InitAdminHandler(svc Service) *AdminHandler {
	wire.Build(web.NewAdminHandler)
	return new(AdminHandler)
}

func InitAutoConfirmOrdersJob(svc Service, limit int, timeout time.Duration) *AutoConfirmOrdersJob {
	wire.Build(job.NewAutoConfirmOrdersJob)
	return new(AutoConfirmOrdersJob)
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.OrderDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewOrderGORMDAO(db)
}

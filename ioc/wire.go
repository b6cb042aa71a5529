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

package ioc

import (
	"github.com/ecodeclub/capshop/internal/cart"
	"github.com/ecodeclub/capshop/internal/checkout"
	"github.com/ecodeclub/capshop/internal/coupon"
	"github.com/ecodeclub/capshop/internal/order"
	"github.com/ecodeclub/capshop/internal/payment"
	"github.com/ecodeclub/capshop/internal/points"
	"github.com/ecodeclub/capshop/internal/product"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitRedis, InitCache, InitMQ, InitSession, InitPaymentGateway)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		product.InitHandler,
		product.InitAdminHandler,
		product.InitService,
		cart.InitHandler,
		cart.InitService,
		checkout.InitHandler,
		checkout.InitService,
		coupon.InitHandler,
		coupon.InitAdminHandler,
		coupon.InitService,
		points.InitHandler,
		points.InitService,
		payment.InitService,
		order.InitService,
		order.InitHandler,
		order.InitAdminHandler,
		initGinxServer,
		InitAdminServer,
		initCronJobs)
	return new(App), nil
}

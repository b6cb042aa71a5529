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

package order

import (
	"github.com/ecodeclub/capshop/internal/order/internal/domain"
	"github.com/ecodeclub/capshop/internal/order/internal/job"
	"github.com/ecodeclub/capshop/internal/order/internal/service"
	"github.com/ecodeclub/capshop/internal/order/internal/web"
)

type (
	Handler              = web.Handler
	AdminHandler         = web.AdminHandler
	Service              = service.Service
	Order                = domain.Order
	Item                 = domain.Item
	OrderStatus          = domain.OrderStatus
	ReturnReason         = domain.ReturnReason
	ReturnMethod         = domain.ReturnMethod
	DiscountIntent       = domain.DiscountIntent
	AutoConfirmOrdersJob = job.AutoConfirmOrdersJob
)

const (
	StatusOrdered         = domain.StatusOrdered
	StatusShipped         = domain.StatusShipped
	StatusDelivered       = domain.StatusDelivered
	StatusCancelled       = domain.StatusCancelled
	StatusReturnRequested = domain.StatusReturnRequested
	StatusReturnShipping  = domain.StatusReturnShipping
	StatusReturned        = domain.StatusReturned
)

var (
	ErrAmountMismatch    = service.ErrAmountMismatch
	ErrInvalidTransition = service.ErrInvalidTransition
)

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

package payment

import (
	"github.com/ecodeclub/capshop/internal/payment/internal/domain"
	"github.com/ecodeclub/capshop/internal/payment/internal/service"
	"github.com/ecodeclub/capshop/internal/payment/internal/service/toss"
)

type (
	Service       = service.Service
	Gateway       = service.Gateway
	TossClient    = toss.Client
	Payment       = domain.Payment
	Capture       = domain.Capture
	PaymentStatus = domain.PaymentStatus
)

const (
	PaymentStatusReady           = domain.PaymentStatusReady
	PaymentStatusApproved        = domain.PaymentStatusApproved
	PaymentStatusFailed          = domain.PaymentStatusFailed
	PaymentStatusCanceled        = domain.PaymentStatusCanceled
	PaymentStatusRefunded        = domain.PaymentStatusRefunded
	PaymentStatusPartialRefunded = domain.PaymentStatusPartialRefunded
)

var (
	ErrGatewayFailure = service.ErrGatewayFailure
	// NewTossClient 供 ioc 按配置构造网关客户端
	NewTossClient = toss.NewClient
)

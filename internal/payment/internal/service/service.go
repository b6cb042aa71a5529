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

package service

import (
	"context"

	"github.com/ecodeclub/capshop/internal/payment/internal/domain"
	"github.com/ecodeclub/capshop/internal/payment/internal/repository"
	"github.com/ecodeclub/capshop/internal/payment/internal/service/toss"
	"github.com/ego-component/egorm"
)

var (
	ErrGatewayFailure = toss.ErrGatewayFailure
)

// Gateway 外部支付网关, 确认扣款与取消退款均为阻塞外部调用, 不持有本地事务
type Gateway interface {
	ConfirmCapture(ctx context.Context, paymentKey, orderRef string, amount int64) (domain.Capture, error)
	CancelOrRefund(ctx context.Context, paymentKey, reason string, amount *int64) error
}

var _ Gateway = (*toss.Client)(nil)

type Service interface {
	// ConfirmCapture 结算第一阶段: 确认网关已扣款
	ConfirmCapture(ctx context.Context, paymentKey, orderRef string, amount int64) (domain.Capture, error)
	// CreateTx 结算事务内落库支付记录
	CreateTx(tx *egorm.Component, p domain.Payment) (int64, error)
	FindByOrderID(ctx context.Context, orderID int64) (domain.Payment, error)
	FindByOrderRef(ctx context.Context, orderRef string) (domain.Payment, error)
	// UpdateStatusTx 取消或退货事务内变更支付状态
	UpdateStatusTx(tx *egorm.Component, orderID int64, status domain.PaymentStatus) error
	// CancelOrRefund 网关侧取消或退款, amount 为 nil 表示全额
	CancelOrRefund(ctx context.Context, paymentKey, reason string, amount *int64) error
}

func NewService(repo repository.PaymentRepository, gateway Gateway) Service {
	return &service{repo: repo, gateway: gateway}
}

type service struct {
	repo    repository.PaymentRepository
	gateway Gateway
}

func (s *service) ConfirmCapture(ctx context.Context, paymentKey, orderRef string, amount int64) (domain.Capture, error) {
	return s.gateway.ConfirmCapture(ctx, paymentKey, orderRef, amount)
}

func (s *service) CreateTx(tx *egorm.Component, p domain.Payment) (int64, error) {
	return s.repo.CreateTx(tx, p)
}

func (s *service) FindByOrderID(ctx context.Context, orderID int64) (domain.Payment, error) {
	return s.repo.FindByOrderID(ctx, orderID)
}

func (s *service) FindByOrderRef(ctx context.Context, orderRef string) (domain.Payment, error) {
	return s.repo.FindByOrderRef(ctx, orderRef)
}

func (s *service) UpdateStatusTx(tx *egorm.Component, orderID int64, status domain.PaymentStatus) error {
	return s.repo.UpdateStatusTx(tx, orderID, status)
}

func (s *service) CancelOrRefund(ctx context.Context, paymentKey, reason string, amount *int64) error {
	return s.gateway.CancelOrRefund(ctx, paymentKey, reason, amount)
}

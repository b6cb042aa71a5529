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

package repository

import (
	"context"

	"github.com/ecodeclub/capshop/internal/payment/internal/domain"
	"github.com/ecodeclub/capshop/internal/payment/internal/repository/dao"
	"github.com/ego-component/egorm"
)

type PaymentRepository interface {
	CreateTx(tx *egorm.Component, p domain.Payment) (int64, error)
	FindByOrderID(ctx context.Context, orderID int64) (domain.Payment, error)
	FindByOrderRef(ctx context.Context, orderRef string) (domain.Payment, error)
	UpdateStatusTx(tx *egorm.Component, orderID int64, status domain.PaymentStatus) error
}

func NewPaymentRepository(d dao.PaymentDAO) PaymentRepository {
	return &paymentRepository{dao: d}
}

type paymentRepository struct {
	dao dao.PaymentDAO
}

func (p *paymentRepository) CreateTx(tx *egorm.Component, pmt domain.Payment) (int64, error) {
	return p.dao.CreateTx(tx, dao.Payment{
		OrderID:     pmt.OrderID,
		OrderRef:    pmt.OrderRef,
		PaymentKey:  pmt.PaymentKey,
		Method:      pmt.Method,
		Amount:      pmt.Amount,
		Status:      string(pmt.Status),
		RequestedAt: pmt.RequestedAt,
		ApprovedAt:  pmt.ApprovedAt,
		CanceledAt:  pmt.CanceledAt,
		FailReason:  pmt.FailReason,
	})
}

func (p *paymentRepository) FindByOrderID(ctx context.Context, orderID int64) (domain.Payment, error) {
	res, err := p.dao.FindByOrderID(ctx, orderID)
	if err != nil {
		return domain.Payment{}, err
	}
	return p.toDomain(res), nil
}

func (p *paymentRepository) FindByOrderRef(ctx context.Context, orderRef string) (domain.Payment, error) {
	res, err := p.dao.FindByOrderRef(ctx, orderRef)
	if err != nil {
		return domain.Payment{}, err
	}
	return p.toDomain(res), nil
}

func (p *paymentRepository) UpdateStatusTx(tx *egorm.Component, orderID int64, status domain.PaymentStatus) error {
	return p.dao.UpdateStatusTx(tx, orderID, string(status))
}

func (p *paymentRepository) toDomain(e dao.Payment) domain.Payment {
	return domain.Payment{
		ID:          e.ID,
		OrderID:     e.OrderID,
		OrderRef:    e.OrderRef,
		PaymentKey:  e.PaymentKey,
		Method:      e.Method,
		Amount:      e.Amount,
		Status:      domain.PaymentStatus(e.Status),
		RequestedAt: e.RequestedAt,
		ApprovedAt:  e.ApprovedAt,
		CanceledAt:  e.CanceledAt,
		FailReason:  e.FailReason,
		Ctime:       e.Ctime,
		Utime:       e.Utime,
	}
}

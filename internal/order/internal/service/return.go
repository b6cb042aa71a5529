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
	"fmt"

	"github.com/ecodeclub/capshop/internal/order/internal/domain"
	"github.com/ecodeclub/capshop/internal/order/internal/event"
	"github.com/ecodeclub/capshop/internal/payment"
	"github.com/ego-component/egorm"
)

// Cancel 先在本地事务内流转状态并释放库存, 提交后再向网关发起全额取消.
// 网关取消失败时本地状态已是 CANCELLED, 支付状态保持 APPROVED 供对账补偿.
func (s *service) Cancel(ctx context.Context, uid, orderID int64) error {
	o, err := s.repo.FindByIDAndUID(ctx, orderID, uid)
	if err != nil {
		return err
	}
	from := o.Status
	if err = o.Cancel(); err != nil {
		return err
	}
	p, err := s.paymentSvc.FindByOrderID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("查找支付记录失败: %w", err)
	}

	err = s.repo.Transaction(ctx, func(tx *egorm.Component) error {
		if err := s.repo.UpdateStatusTx(tx, o.ID, from, o.Status, nil); err != nil {
			return err
		}
		return s.releaseStock(tx, o.Items)
	})
	if err != nil {
		return err
	}

	if err = s.paymentSvc.CancelOrRefund(ctx, p.PaymentKey, "주문 취소", nil); err != nil {
		return fmt.Errorf("网关取消支付失败: %w", err)
	}
	err = s.repo.Transaction(ctx, func(tx *egorm.Component) error {
		return s.paymentSvc.UpdateStatusTx(tx, orderID, payment.PaymentStatusCanceled)
	})
	if err != nil {
		return err
	}

	s.produce(event.OrderEvent{
		OrderRef: o.OrderRef,
		UID:      uid,
		Action:   event.ActionCancelled,
		Amount:   p.Amount,
	})
	return nil
}

// CompleteReturn 完成退货: 回补库存并流转状态, 再按实付减退货运费退款.
// 退款金额为零时跳过网关调用, 运费为零走全额退款.
func (s *service) CompleteReturn(ctx context.Context, orderID int64) error {
	o, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	from := o.Status
	if err = o.CompleteReturn(); err != nil {
		return err
	}
	p, err := s.paymentSvc.FindByOrderID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("查找支付记录失败: %w", err)
	}
	refundAmount := p.Amount - o.ReturnShippingFee
	if refundAmount < 0 {
		return fmt.Errorf("退货运费 %d 超过实付金额 %d", o.ReturnShippingFee, p.Amount)
	}

	err = s.repo.Transaction(ctx, func(tx *egorm.Component) error {
		if err := s.repo.UpdateStatusTx(tx, o.ID, from, o.Status, nil); err != nil {
			return err
		}
		return s.releaseStock(tx, o.Items)
	})
	if err != nil {
		return err
	}

	var amount *int64
	status := payment.PaymentStatusRefunded
	if o.ReturnShippingFee > 0 {
		amount = &refundAmount
		status = payment.PaymentStatusPartialRefunded
	}
	if refundAmount > 0 {
		if err = s.paymentSvc.CancelOrRefund(ctx, p.PaymentKey, "반품 환불", amount); err != nil {
			return fmt.Errorf("网关退款失败: %w", err)
		}
	}
	err = s.repo.Transaction(ctx, func(tx *egorm.Component) error {
		return s.paymentSvc.UpdateStatusTx(tx, orderID, status)
	})
	if err != nil {
		return err
	}

	s.produce(event.OrderEvent{
		OrderRef: o.OrderRef,
		UID:      o.UID,
		Action:   event.ActionReturned,
		Amount:   refundAmount,
	})
	return nil
}

func (s *service) releaseStock(tx *egorm.Component, items []domain.Item) error {
	for _, it := range items {
		if err := s.productSvc.ReleaseStock(tx, it.ProductID, it.Size, it.Quantity); err != nil {
			return fmt.Errorf("释放库存失败: productID=%d, %w", it.ProductID, err)
		}
	}
	return nil
}

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
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/capshop/internal/checkout"
	"github.com/ecodeclub/capshop/internal/order/internal/domain"
	"github.com/ecodeclub/capshop/internal/order/internal/event"
	"github.com/ecodeclub/capshop/internal/payment"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

// Settle 两阶段结算.
// 第一阶段在本地事务外向网关确认扣款, 避免持有行锁等待外部 IO;
// 第二阶段在单个数据库事务内完成库存、券、积分、订单、支付记录的全部变更,
// 任一校验失败整体回滚. 网关已扣款但事务回滚的场景由调用方重试驱动,
// 重试会命中订单号幂等直接返回已落库订单.
func (s *service) Settle(ctx context.Context, uid int64, orderRef, paymentKey string, intent domain.DiscountIntent) (domain.Order, error) {
	// 负数声明会放大应付金额重算结果, 直接拒绝
	if intent.OriginalAmount < 0 || intent.CouponDiscount < 0 ||
		intent.PointsUsed < 0 || intent.FinalAmount < 0 || intent.UserCouponID < 0 {
		return domain.Order{}, fmt.Errorf("%w: 声明金额为负数", ErrAmountMismatch)
	}
	// 订单号幂等: 上次结算已落库则直接返回
	existing, err := s.repo.FindByOrderRef(ctx, orderRef)
	if err == nil {
		if existing.UID != uid {
			return domain.Order{}, fmt.Errorf("订单不属于该用户: %s", orderRef)
		}
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Order{}, err
	}

	snapshot, err := s.checkoutSvc.FindByUIDAndOrderRef(ctx, uid, orderRef)
	if err != nil {
		return domain.Order{}, fmt.Errorf("查找结算快照失败: %w", err)
	}

	capture, err := s.paymentSvc.ConfirmCapture(ctx, paymentKey, orderRef, intent.FinalAmount)
	if err != nil {
		return domain.Order{}, err
	}

	var created domain.Order
	err = s.repo.Transaction(ctx, func(tx *egorm.Component) error {
		created, err = s.settleTx(tx, uid, snapshot, capture, intent)
		return err
	})
	if err != nil {
		return domain.Order{}, err
	}

	s.produce(event.OrderEvent{
		OrderRef: created.OrderRef,
		UID:      uid,
		Action:   event.ActionSettled,
		Amount:   created.FinalPrice,
	})
	return created, nil
}

func (s *service) settleTx(tx *egorm.Component, uid int64,
	snapshot checkout.Snapshot, capture payment.Capture, intent domain.DiscountIntent) (domain.Order, error) {
	items := slice.Map(snapshot.Items, func(idx int, src checkout.Line) domain.Item {
		return domain.Item{
			ProductID:   src.ProductID,
			ProductName: src.ProductName,
			Size:        src.Size,
			Quantity:    src.Quantity,
			UnitPrice:   src.Price,
		}
	})
	for _, it := range items {
		if err := s.productSvc.ReserveStock(tx, it.ProductID, it.Size, it.Quantity); err != nil {
			return domain.Order{}, fmt.Errorf("预留库存失败: productID=%d, %w", it.ProductID, err)
		}
	}

	original := domain.ComputeOriginal(items)
	if original != intent.OriginalAmount {
		return domain.Order{}, fmt.Errorf("%w: 原价重算 %d, 声明 %d", ErrAmountMismatch, original, intent.OriginalAmount)
	}
	if intent.UserCouponID == 0 && intent.CouponDiscount != 0 {
		return domain.Order{}, fmt.Errorf("%w: 未用券但声明了券折扣 %d", ErrAmountMismatch, intent.CouponDiscount)
	}

	o := domain.Order{
		OrderRef:       snapshot.OrderRef,
		UID:            uid,
		Status:         domain.StatusOrdered,
		Receiver:       snapshot.Receiver,
		Address:        snapshot.Address,
		Phone:          snapshot.Phone,
		OriginalPrice:  original,
		CouponDiscount: intent.CouponDiscount,
		PointsDiscount: intent.PointsUsed,
		FinalPrice:     intent.FinalAmount,
		UserCouponID:   intent.UserCouponID,
		Items:          items,
	}
	orderID, err := s.repo.CreateTx(tx, o)
	if err != nil {
		return domain.Order{}, fmt.Errorf("创建订单失败: %w", err)
	}
	o.ID = orderID

	// 券折扣以事务内核销结果为准, 客户端声明的只是提示值
	var couponDiscount int64
	if intent.UserCouponID != 0 {
		couponDiscount, err = s.couponSvc.MarkUsedOnSettlement(tx, uid, intent.UserCouponID, orderID, original)
		if err != nil {
			return domain.Order{}, err
		}
	}
	final := domain.FinalPrice(original, couponDiscount, intent.PointsUsed)
	if final != intent.FinalAmount || couponDiscount != intent.CouponDiscount {
		return domain.Order{}, fmt.Errorf("%w: 应付重算 %d, 声明 %d", ErrAmountMismatch, final, intent.FinalAmount)
	}
	if capture.Amount != final {
		return domain.Order{}, fmt.Errorf("%w: 网关扣款 %d, 应付 %d", ErrAmountMismatch, capture.Amount, final)
	}

	if intent.PointsUsed > 0 {
		if err = s.pointsSvc.UseTx(tx, uid, intent.PointsUsed, orderID); err != nil {
			return domain.Order{}, err
		}
	}
	// 返点按折扣前原价计算
	if _, err = s.pointsSvc.AccrueForOrderTx(tx, uid, original, orderID); err != nil {
		return domain.Order{}, err
	}

	now := time.Now().UnixMilli()
	_, err = s.paymentSvc.CreateTx(tx, payment.Payment{
		OrderID:     orderID,
		OrderRef:    snapshot.OrderRef,
		PaymentKey:  capture.PaymentKey,
		Method:      capture.Method,
		Amount:      capture.Amount,
		Status:      payment.PaymentStatusApproved,
		RequestedAt: now,
		ApprovedAt:  capture.ApprovedAt,
	})
	if err != nil {
		return domain.Order{}, fmt.Errorf("创建支付记录失败: %w", err)
	}

	if err = s.checkoutSvc.DeleteByID(tx, snapshot.ID); err != nil {
		return domain.Order{}, err
	}
	if err = s.cartSvc.DeleteAllByUID(tx, uid); err != nil {
		return domain.Order{}, err
	}
	return o, nil
}

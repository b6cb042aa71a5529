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

	"github.com/ecodeclub/capshop/internal/cart"
	"github.com/ecodeclub/capshop/internal/checkout"
	"github.com/ecodeclub/capshop/internal/coupon"
	"github.com/ecodeclub/capshop/internal/order/internal/domain"
	"github.com/ecodeclub/capshop/internal/order/internal/event"
	"github.com/ecodeclub/capshop/internal/order/internal/repository"
	"github.com/ecodeclub/capshop/internal/payment"
	"github.com/ecodeclub/capshop/internal/points"
	"github.com/ecodeclub/capshop/internal/product"
	"github.com/gotomicro/ego/core/elog"
)

var (
	// ErrAmountMismatch 服务端重算的金额与客户端声明或网关扣款金额不一致
	ErrAmountMismatch    = errors.New("结算金额不一致")
	ErrInvalidTransition = domain.ErrInvalidTransition
	ErrOrderChanged      = repository.ErrOrderChanged
)

type Service interface {
	// Settle 结算: 先向网关确认扣款, 再在单事务内扣库存、核销券、扣返积分、创建订单与支付记录
	Settle(ctx context.Context, uid int64, orderRef, paymentKey string, intent domain.DiscountIntent) (domain.Order, error)

	Detail(ctx context.Context, uid, orderID int64) (domain.Order, error)
	ListMine(ctx context.Context, uid int64, offset, limit int) ([]domain.Order, int64, error)
	// Cancel 取消订单并释放库存, 随后向网关发起全额取消
	Cancel(ctx context.Context, uid, orderID int64) error
	// RequestReturn 申请退货, DEFECT 强制运费为零
	RequestReturn(ctx context.Context, uid, orderID int64, reason domain.ReturnReason, method domain.ReturnMethod, shippingFee int64) error
	// ConfirmPurchase 确认收货, 重复确认报错
	ConfirmPurchase(ctx context.Context, uid, orderID int64) error

	// 管理端
	DetailByID(ctx context.Context, orderID int64) (domain.Order, error)
	ListByStatus(ctx context.Context, status domain.OrderStatus, offset, limit int) ([]domain.Order, int64, error)
	Ship(ctx context.Context, orderID int64, trackingNumber string) error
	MarkDelivered(ctx context.Context, orderID int64) error
	ApproveReturn(ctx context.Context, orderID int64, returnTrackingNumber string) error
	// CompleteReturn 完成退货: 回补库存后按实付减退货运费向网关退款
	CompleteReturn(ctx context.Context, orderID int64) error

	// AutoConfirmDelivered 送达超期未确认的订单批量强制确认, 返回确认条数
	AutoConfirmDelivered(ctx context.Context, limit int) (int64, error)
}

func NewService(repo repository.OrderRepository,
	productSvc product.Service,
	couponSvc coupon.Service,
	pointsSvc points.Service,
	paymentSvc payment.Service,
	checkoutSvc checkout.Service,
	cartSvc cart.Service,
	producer event.OrderEventProducer) Service {
	return &service{
		repo:        repo,
		productSvc:  productSvc,
		couponSvc:   couponSvc,
		pointsSvc:   pointsSvc,
		paymentSvc:  paymentSvc,
		checkoutSvc: checkoutSvc,
		cartSvc:     cartSvc,
		producer:    producer,
		logger:      elog.DefaultLogger,
	}
}

type service struct {
	repo        repository.OrderRepository
	productSvc  product.Service
	couponSvc   coupon.Service
	pointsSvc   points.Service
	paymentSvc  payment.Service
	checkoutSvc checkout.Service
	cartSvc     cart.Service
	producer    event.OrderEventProducer
	logger      *elog.Component
}

func (s *service) Detail(ctx context.Context, uid, orderID int64) (domain.Order, error) {
	return s.repo.FindByIDAndUID(ctx, orderID, uid)
}

func (s *service) DetailByID(ctx context.Context, orderID int64) (domain.Order, error) {
	return s.repo.FindByID(ctx, orderID)
}

func (s *service) ListMine(ctx context.Context, uid int64, offset, limit int) ([]domain.Order, int64, error) {
	os, err := s.repo.ListByUID(ctx, uid, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.CountByUID(ctx, uid)
	if err != nil {
		return nil, 0, err
	}
	return os, total, nil
}

func (s *service) ListByStatus(ctx context.Context, status domain.OrderStatus, offset, limit int) ([]domain.Order, int64, error) {
	os, err := s.repo.ListByStatus(ctx, status, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.CountByStatus(ctx, status)
	if err != nil {
		return nil, 0, err
	}
	return os, total, nil
}

func (s *service) RequestReturn(ctx context.Context, uid, orderID int64,
	reason domain.ReturnReason, method domain.ReturnMethod, shippingFee int64) error {
	o, err := s.repo.FindByIDAndUID(ctx, orderID, uid)
	if err != nil {
		return err
	}
	from := o.Status
	if err = o.RequestReturn(reason, method, shippingFee, time.Now()); err != nil {
		return err
	}
	return s.repo.UpdateStatus(ctx, o.ID, from, o.Status, map[string]any{
		"return_reason":       string(o.ReturnReason),
		"return_method":       string(o.ReturnMethod),
		"return_shipping_fee": o.ReturnShippingFee,
	})
}

func (s *service) ConfirmPurchase(ctx context.Context, uid, orderID int64) error {
	o, err := s.repo.FindByIDAndUID(ctx, orderID, uid)
	if err != nil {
		return err
	}
	now := time.Now()
	if err = o.ConfirmPurchase(now); err != nil {
		return err
	}
	return s.repo.Confirm(ctx, o.ID, now.UnixMilli())
}

func (s *service) Ship(ctx context.Context, orderID int64, trackingNumber string) error {
	o, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	from := o.Status
	if err = o.Ship(trackingNumber); err != nil {
		return err
	}
	return s.repo.UpdateStatus(ctx, o.ID, from, o.Status, map[string]any{
		"tracking_number": o.TrackingNumber,
	})
}

func (s *service) MarkDelivered(ctx context.Context, orderID int64) error {
	o, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	from := o.Status
	if err = o.MarkDelivered(time.Now()); err != nil {
		return err
	}
	return s.repo.UpdateStatus(ctx, o.ID, from, o.Status, map[string]any{
		"delivered_at": o.DeliveredAt,
	})
}

func (s *service) ApproveReturn(ctx context.Context, orderID int64, returnTrackingNumber string) error {
	o, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	from := o.Status
	if err = o.ApproveReturn(returnTrackingNumber); err != nil {
		return err
	}
	return s.repo.UpdateStatus(ctx, o.ID, from, o.Status, map[string]any{
		"return_tracking_number": o.ReturnTrackingNumber,
	})
}

func (s *service) AutoConfirmDelivered(ctx context.Context, limit int) (int64, error) {
	deliveredBefore := time.Now().Add(-domain.AutoConfirmAfter).UnixMilli()
	var confirmed int64
	for {
		os, err := s.repo.FindAutoConfirmable(ctx, deliveredBefore, limit)
		if err != nil {
			return confirmed, err
		}
		now := time.Now().UnixMilli()
		for _, o := range os {
			err = s.repo.Confirm(ctx, o.ID, now)
			if err != nil {
				// 用户恰好在扫描间隙确认或申请退货, 跳过即可
				if errors.Is(err, repository.ErrOrderChanged) {
					continue
				}
				return confirmed, fmt.Errorf("强制确认收货失败: orderID=%d, %w", o.ID, err)
			}
			confirmed++
		}
		if len(os) < limit {
			return confirmed, nil
		}
	}
}

func (s *service) produce(evt event.OrderEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := s.producer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送订单事件失败",
			elog.FieldErr(err),
			elog.String("orderRef", evt.OrderRef),
			elog.String("action", evt.Action))
	}
}

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
	"testing"
	"time"

	"github.com/ecodeclub/capshop/internal/cart"
	"github.com/ecodeclub/capshop/internal/checkout"
	"github.com/ecodeclub/capshop/internal/coupon"
	"github.com/ecodeclub/capshop/internal/order/internal/domain"
	"github.com/ecodeclub/capshop/internal/order/internal/event"
	"github.com/ecodeclub/capshop/internal/payment"
	"github.com/ecodeclub/capshop/internal/points"
	"github.com/ecodeclub/capshop/internal/product"
	"github.com/ego-component/egorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testUID = int64(1001)

func newTestService(deps *fakeDeps) Service {
	return NewService(deps.repo, deps.productSvc, deps.couponSvc, deps.pointsSvc,
		deps.paymentSvc, deps.checkoutSvc, deps.cartSvc, deps.producer)
}

type fakeDeps struct {
	repo        *fakeOrderRepository
	productSvc  *fakeProductService
	couponSvc   *fakeCouponService
	pointsSvc   *fakePointsService
	paymentSvc  *fakePaymentService
	checkoutSvc *fakeCheckoutService
	cartSvc     *fakeCartService
	producer    *fakeProducer
}

func newFakeDeps() *fakeDeps {
	return &fakeDeps{
		repo:        &fakeOrderRepository{orders: make(map[int64]domain.Order)},
		productSvc:  &fakeProductService{stock: make(map[string]int64)},
		couponSvc:   &fakeCouponService{},
		pointsSvc:   &fakePointsService{balance: make(map[int64]int64)},
		paymentSvc:  &fakePaymentService{payments: make(map[int64]payment.Payment)},
		checkoutSvc: &fakeCheckoutService{snapshots: make(map[string]checkout.Snapshot)},
		cartSvc:     &fakeCartService{},
		producer:    &fakeProducer{},
	}
}

func TestService_Settle(t *testing.T) {
	t.Parallel()

	snapshot := checkout.Snapshot{
		ID:       11,
		OrderRef: "ORD20240102-1001abcd",
		UID:      testUID,
		Receiver: "김하늘",
		Address:  "서울특별시 마포구 월드컵북로 396",
		Phone:    "010-1234-5678",
		Items: []checkout.Line{
			{ProductID: 1, ProductName: "클래식 볼캡", Size: "M", Quantity: 2, Price: 10000},
			{ProductID: 2, ProductName: "버킷햇", Quantity: 1, Price: 20000},
		},
	}

	t.Run("结算成功_单事务完成全部变更", func(t *testing.T) {
		t.Parallel()
		deps := newFakeDeps()
		deps.checkoutSvc.snapshots[snapshot.OrderRef] = snapshot
		deps.couponSvc.discount = 4000
		svc := newTestService(deps)

		o, err := svc.Settle(context.Background(), testUID, snapshot.OrderRef, "pay_key_1", domain.DiscountIntent{
			OriginalAmount: 40000,
			CouponDiscount: 4000,
			PointsUsed:     1000,
			FinalAmount:    35000,
			UserCouponID:   7,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusOrdered, o.Status)
		assert.Equal(t, int64(40000), o.OriginalPrice)
		assert.Equal(t, int64(35000), o.FinalPrice)
		assert.Len(t, o.Items, 2)

		// 库存预留
		assert.Equal(t, int64(-2), deps.productSvc.stock["1/M"])
		assert.Equal(t, int64(-1), deps.productSvc.stock["2/"])
		// 券核销关联订单
		assert.Equal(t, o.ID, deps.couponSvc.markedOrderID)
		// 积分: 扣 1000, 按原价返 400
		assert.Equal(t, int64(-1000+400), deps.pointsSvc.balance[testUID])
		// 支付记录 APPROVED
		p := deps.paymentSvc.payments[o.ID]
		assert.Equal(t, payment.PaymentStatusApproved, p.Status)
		assert.Equal(t, int64(35000), p.Amount)
		assert.Equal(t, "pay_key_1", p.PaymentKey)
		// 快照删除, 购物车清空
		assert.NotContains(t, deps.checkoutSvc.snapshots, snapshot.OrderRef)
		assert.Equal(t, testUID, deps.cartSvc.clearedUID)
		// 结算事件
		require.Len(t, deps.producer.events, 1)
		assert.Equal(t, event.ActionSettled, deps.producer.events[0].Action)
	})

	t.Run("金额不一致_整体回滚", func(t *testing.T) {
		t.Parallel()
		deps := newFakeDeps()
		deps.checkoutSvc.snapshots[snapshot.OrderRef] = snapshot
		deps.couponSvc.discount = 4000
		svc := newTestService(deps)

		_, err := svc.Settle(context.Background(), testUID, snapshot.OrderRef, "pay_key_1", domain.DiscountIntent{
			OriginalAmount: 40000,
			CouponDiscount: 4000,
			PointsUsed:     1000,
			FinalAmount:    34999,
			UserCouponID:   7,
		})
		require.ErrorIs(t, err, ErrAmountMismatch)
		assert.Empty(t, deps.repo.orders)
		assert.Empty(t, deps.paymentSvc.payments)
		assert.Contains(t, deps.checkoutSvc.snapshots, snapshot.OrderRef)
		assert.Empty(t, deps.producer.events)
	})

	t.Run("声明原价与快照不符_回滚", func(t *testing.T) {
		t.Parallel()
		deps := newFakeDeps()
		deps.checkoutSvc.snapshots[snapshot.OrderRef] = snapshot
		svc := newTestService(deps)

		_, err := svc.Settle(context.Background(), testUID, snapshot.OrderRef, "pay_key_1", domain.DiscountIntent{
			OriginalAmount: 39999,
			FinalAmount:    39999,
		})
		require.ErrorIs(t, err, ErrAmountMismatch)
		assert.Empty(t, deps.repo.orders)
	})

	t.Run("订单号幂等_重试直接返回已落库订单", func(t *testing.T) {
		t.Parallel()
		deps := newFakeDeps()
		deps.repo.orders[1] = domain.Order{ID: 1, OrderRef: snapshot.OrderRef, UID: testUID, Status: domain.StatusOrdered}
		svc := newTestService(deps)

		o, err := svc.Settle(context.Background(), testUID, snapshot.OrderRef, "pay_key_1", domain.DiscountIntent{})
		require.NoError(t, err)
		assert.Equal(t, int64(1), o.ID)
		// 不会再向网关确认扣款
		assert.Equal(t, 0, deps.paymentSvc.confirmCalls)
	})

	t.Run("声明负数积分_直接拒绝", func(t *testing.T) {
		t.Parallel()
		deps := newFakeDeps()
		deps.checkoutSvc.snapshots[snapshot.OrderRef] = snapshot
		svc := newTestService(deps)

		_, err := svc.Settle(context.Background(), testUID, snapshot.OrderRef, "pay_key_1", domain.DiscountIntent{
			OriginalAmount: 40000,
			PointsUsed:     -5000,
			FinalAmount:    45000,
		})
		require.ErrorIs(t, err, ErrAmountMismatch)
		// 未向网关确认扣款, 也未落库
		assert.Equal(t, 0, deps.paymentSvc.confirmCalls)
		assert.Empty(t, deps.repo.orders)
	})

	t.Run("未用券但声明券折扣_回滚", func(t *testing.T) {
		t.Parallel()
		deps := newFakeDeps()
		deps.checkoutSvc.snapshots[snapshot.OrderRef] = snapshot
		svc := newTestService(deps)

		_, err := svc.Settle(context.Background(), testUID, snapshot.OrderRef, "pay_key_1", domain.DiscountIntent{
			OriginalAmount: 40000,
			CouponDiscount: 4000,
			FinalAmount:    36000,
		})
		require.ErrorIs(t, err, ErrAmountMismatch)
		assert.Empty(t, deps.repo.orders)
	})
}

func TestService_Cancel(t *testing.T) {
	t.Parallel()

	t.Run("取消订单_释放库存并取消支付", func(t *testing.T) {
		t.Parallel()
		deps := newFakeDeps()
		deps.repo.orders[1] = domain.Order{
			ID: 1, OrderRef: "ORD20240102-1001abcd", UID: testUID, Status: domain.StatusOrdered,
			Items: []domain.Item{{ProductID: 1, Size: "L", Quantity: 2, UnitPrice: 10000}},
		}
		deps.paymentSvc.payments[1] = payment.Payment{
			OrderID: 1, PaymentKey: "pay_key_1", Amount: 20000, Status: payment.PaymentStatusApproved,
		}
		svc := newTestService(deps)

		require.NoError(t, svc.Cancel(context.Background(), testUID, 1))
		assert.Equal(t, domain.StatusCancelled, deps.repo.orders[1].Status)
		assert.Equal(t, int64(2), deps.productSvc.stock["1/L"])
		assert.Equal(t, 1, deps.paymentSvc.cancelCalls)
		assert.Nil(t, deps.paymentSvc.lastCancelAmount)
		assert.Equal(t, payment.PaymentStatusCanceled, deps.paymentSvc.payments[1].Status)
		require.Len(t, deps.producer.events, 1)
		assert.Equal(t, event.ActionCancelled, deps.producer.events[0].Action)
	})

	t.Run("已发货不可取消", func(t *testing.T) {
		t.Parallel()
		deps := newFakeDeps()
		deps.repo.orders[1] = domain.Order{ID: 1, UID: testUID, Status: domain.StatusShipped}
		svc := newTestService(deps)

		err := svc.Cancel(context.Background(), testUID, 1)
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Equal(t, 0, deps.paymentSvc.cancelCalls)
	})
}

func TestService_CompleteReturn(t *testing.T) {
	t.Parallel()

	t.Run("变心退货_实付减运费部分退款", func(t *testing.T) {
		t.Parallel()
		deps := newFakeDeps()
		deps.repo.orders[1] = domain.Order{
			ID: 1, OrderRef: "ORD20240102-1001abcd", UID: testUID, Status: domain.StatusReturnShipping,
			ReturnReason: domain.ReturnReasonChangeOfMind, ReturnShippingFee: 3000,
			Items: []domain.Item{{ProductID: 1, Size: "M", Quantity: 1, UnitPrice: 50000}},
		}
		deps.paymentSvc.payments[1] = payment.Payment{
			OrderID: 1, PaymentKey: "pay_key_1", Amount: 50000, Status: payment.PaymentStatusApproved,
		}
		svc := newTestService(deps)

		require.NoError(t, svc.CompleteReturn(context.Background(), 1))
		assert.Equal(t, domain.StatusReturned, deps.repo.orders[1].Status)
		assert.Equal(t, int64(1), deps.productSvc.stock["1/M"])
		require.NotNil(t, deps.paymentSvc.lastCancelAmount)
		assert.Equal(t, int64(47000), *deps.paymentSvc.lastCancelAmount)
		assert.Equal(t, payment.PaymentStatusPartialRefunded, deps.paymentSvc.payments[1].Status)
		require.Len(t, deps.producer.events, 1)
		assert.Equal(t, int64(47000), deps.producer.events[0].Amount)
	})

	t.Run("瑕疵退货_全额退款", func(t *testing.T) {
		t.Parallel()
		deps := newFakeDeps()
		deps.repo.orders[1] = domain.Order{
			ID: 1, UID: testUID, Status: domain.StatusReturnShipping,
			ReturnReason: domain.ReturnReasonDefect, ReturnShippingFee: 0,
			Items: []domain.Item{{ProductID: 2, Quantity: 1, UnitPrice: 20000}},
		}
		deps.paymentSvc.payments[1] = payment.Payment{
			OrderID: 1, PaymentKey: "pay_key_1", Amount: 20000, Status: payment.PaymentStatusApproved,
		}
		svc := newTestService(deps)

		require.NoError(t, svc.CompleteReturn(context.Background(), 1))
		assert.Equal(t, 1, deps.paymentSvc.cancelCalls)
		assert.Nil(t, deps.paymentSvc.lastCancelAmount)
		assert.Equal(t, payment.PaymentStatusRefunded, deps.paymentSvc.payments[1].Status)
	})

	t.Run("退款金额为零_跳过网关", func(t *testing.T) {
		t.Parallel()
		deps := newFakeDeps()
		deps.repo.orders[1] = domain.Order{
			ID: 1, UID: testUID, Status: domain.StatusReturnShipping,
			ReturnReason: domain.ReturnReasonChangeOfMind, ReturnShippingFee: 3000,
		}
		deps.paymentSvc.payments[1] = payment.Payment{OrderID: 1, Amount: 3000, Status: payment.PaymentStatusApproved}
		svc := newTestService(deps)

		require.NoError(t, svc.CompleteReturn(context.Background(), 1))
		assert.Equal(t, 0, deps.paymentSvc.cancelCalls)
		assert.Equal(t, payment.PaymentStatusPartialRefunded, deps.paymentSvc.payments[1].Status)
	})

	t.Run("运费超过实付_失败", func(t *testing.T) {
		t.Parallel()
		deps := newFakeDeps()
		deps.repo.orders[1] = domain.Order{
			ID: 1, UID: testUID, Status: domain.StatusReturnShipping,
			ReturnReason: domain.ReturnReasonChangeOfMind, ReturnShippingFee: 5000,
		}
		deps.paymentSvc.payments[1] = payment.Payment{OrderID: 1, Amount: 3000}
		svc := newTestService(deps)

		err := svc.CompleteReturn(context.Background(), 1)
		assert.Error(t, err)
		assert.Equal(t, domain.StatusReturnShipping, deps.repo.orders[1].Status)
	})
}

func TestService_AutoConfirmDelivered(t *testing.T) {
	t.Parallel()

	deps := newFakeDeps()
	old := time.Now().Add(-8 * 24 * time.Hour).UnixMilli()
	recent := time.Now().Add(-time.Hour).UnixMilli()
	deps.repo.orders[1] = domain.Order{ID: 1, UID: testUID, Status: domain.StatusDelivered, DeliveredAt: old}
	deps.repo.orders[2] = domain.Order{ID: 2, UID: testUID, Status: domain.StatusDelivered, DeliveredAt: recent}
	deps.repo.orders[3] = domain.Order{ID: 3, UID: testUID, Status: domain.StatusDelivered, DeliveredAt: old}
	svc := newTestService(deps)

	confirmed, err := svc.AutoConfirmDelivered(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), confirmed)
	assert.True(t, deps.repo.orders[1].Confirmed)
	assert.False(t, deps.repo.orders[2].Confirmed)
	assert.True(t, deps.repo.orders[3].Confirmed)
}

// fakeOrderRepository 内存订单仓储, Transaction 出错时恢复事务前状态模拟回滚
type fakeOrderRepository struct {
	orders map[int64]domain.Order
	nextID int64
}

func (f *fakeOrderRepository) Transaction(_ context.Context, fn func(tx *egorm.Component) error) error {
	before := make(map[int64]domain.Order, len(f.orders))
	for k, v := range f.orders {
		before[k] = v
	}
	if err := fn(nil); err != nil {
		f.orders = before
		return err
	}
	return nil
}

func (f *fakeOrderRepository) CreateTx(_ *egorm.Component, o domain.Order) (int64, error) {
	f.nextID++
	o.ID = f.nextID
	f.orders[o.ID] = o
	return o.ID, nil
}

func (f *fakeOrderRepository) FindByID(_ context.Context, id int64) (domain.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return domain.Order{}, gorm.ErrRecordNotFound
	}
	return o, nil
}

func (f *fakeOrderRepository) FindByIDAndUID(_ context.Context, id, uid int64) (domain.Order, error) {
	o, ok := f.orders[id]
	if !ok || o.UID != uid {
		return domain.Order{}, gorm.ErrRecordNotFound
	}
	return o, nil
}

func (f *fakeOrderRepository) FindByOrderRef(_ context.Context, orderRef string) (domain.Order, error) {
	for _, o := range f.orders {
		if o.OrderRef == orderRef {
			return o, nil
		}
	}
	return domain.Order{}, gorm.ErrRecordNotFound
}

func (f *fakeOrderRepository) ListByUID(_ context.Context, uid int64, offset, limit int) ([]domain.Order, error) {
	var res []domain.Order
	for _, o := range f.orders {
		if o.UID == uid {
			res = append(res, o)
		}
	}
	return res, nil
}

func (f *fakeOrderRepository) CountByUID(_ context.Context, uid int64) (int64, error) {
	var count int64
	for _, o := range f.orders {
		if o.UID == uid {
			count++
		}
	}
	return count, nil
}

func (f *fakeOrderRepository) ListByStatus(_ context.Context, status domain.OrderStatus, offset, limit int) ([]domain.Order, error) {
	var res []domain.Order
	for _, o := range f.orders {
		if o.Status == status {
			res = append(res, o)
		}
	}
	return res, nil
}

func (f *fakeOrderRepository) CountByStatus(_ context.Context, status domain.OrderStatus) (int64, error) {
	var count int64
	for _, o := range f.orders {
		if o.Status == status {
			count++
		}
	}
	return count, nil
}

func (f *fakeOrderRepository) UpdateStatus(_ context.Context, id int64, from, to domain.OrderStatus, updates map[string]any) error {
	return f.updateStatus(id, from, to)
}

func (f *fakeOrderRepository) UpdateStatusTx(_ *egorm.Component, id int64, from, to domain.OrderStatus, updates map[string]any) error {
	return f.updateStatus(id, from, to)
}

func (f *fakeOrderRepository) updateStatus(id int64, from, to domain.OrderStatus) error {
	o, ok := f.orders[id]
	if !ok || o.Status != from {
		return ErrOrderChanged
	}
	o.Status = to
	f.orders[id] = o
	return nil
}

func (f *fakeOrderRepository) Confirm(_ context.Context, id, confirmedAt int64) error {
	o, ok := f.orders[id]
	if !ok || o.Status != domain.StatusDelivered || o.Confirmed {
		return ErrOrderChanged
	}
	o.Confirmed = true
	o.ConfirmedAt = confirmedAt
	f.orders[id] = o
	return nil
}

func (f *fakeOrderRepository) FindAutoConfirmable(_ context.Context, deliveredBefore int64, limit int) ([]domain.Order, error) {
	var res []domain.Order
	for _, o := range f.orders {
		if o.Status == domain.StatusDelivered && !o.Confirmed &&
			o.DeliveredAt > 0 && o.DeliveredAt < deliveredBefore {
			res = append(res, o)
		}
	}
	return res, nil
}

type fakeProductService struct {
	// stock 记录净变化, key 为 productID/size
	stock map[string]int64
}

func (f *fakeProductService) stockKey(productID int64, size string) string {
	return fmt.Sprintf("%d/%s", productID, size)
}

func (f *fakeProductService) ReserveStock(_ *egorm.Component, productID int64, size string, quantity int64) error {
	f.stock[f.stockKey(productID, size)] -= quantity
	return nil
}

func (f *fakeProductService) ReleaseStock(_ *egorm.Component, productID int64, size string, quantity int64) error {
	f.stock[f.stockKey(productID, size)] += quantity
	return nil
}

func (f *fakeProductService) FindByID(_ context.Context, id int64) (product.Product, error) {
	return product.Product{}, nil
}

func (f *fakeProductService) FindBySN(_ context.Context, sn string) (product.Product, error) {
	return product.Product{}, nil
}

func (f *fakeProductService) List(_ context.Context, offset, limit int) ([]product.Product, int64, error) {
	return nil, 0, nil
}

func (f *fakeProductService) Create(_ context.Context, p product.Product) (int64, error) {
	return 0, nil
}

func (f *fakeProductService) SetOnShelf(_ context.Context, id int64, onShelf bool) error {
	return nil
}

type fakeCouponService struct {
	discount      int64
	markedOrderID int64
}

func (f *fakeCouponService) MarkUsedOnSettlement(_ *egorm.Component, uid, userCouponID, orderID, orderTotal int64) (int64, error) {
	f.markedOrderID = orderID
	return f.discount, nil
}

func (f *fakeCouponService) Issue(_ context.Context, uid int64, code string) (coupon.UserCoupon, error) {
	return coupon.UserCoupon{}, nil
}

func (f *fakeCouponService) ListMine(_ context.Context, uid int64) ([]coupon.UserCoupon, error) {
	return nil, nil
}

func (f *fakeCouponService) ListUsable(_ context.Context, uid, orderTotal int64) ([]coupon.UserCoupon, error) {
	return nil, nil
}

func (f *fakeCouponService) ExpireSweep(_ context.Context) (int64, error) { return 0, nil }

func (f *fakeCouponService) CreateCoupon(_ context.Context, c coupon.Coupon) (int64, error) {
	return 0, nil
}

func (f *fakeCouponService) ListCoupons(_ context.Context, offset, limit int) ([]coupon.Coupon, int64, error) {
	return nil, 0, nil
}

func (f *fakeCouponService) SetCouponActive(_ context.Context, id int64, active bool) error {
	return nil
}

type fakePointsService struct {
	balance map[int64]int64
}

func (f *fakePointsService) UseTx(_ *egorm.Component, uid, amount, orderID int64) error {
	f.balance[uid] -= amount
	return nil
}

func (f *fakePointsService) AccrueForOrderTx(_ *egorm.Component, uid, originalAmount, orderID int64) (int64, error) {
	accrued := originalAmount / 100
	f.balance[uid] += accrued
	return accrued, nil
}

func (f *fakePointsService) Balance(_ context.Context, uid int64) (points.Points, error) {
	return points.Points{UID: uid, Balance: f.balance[uid]}, nil
}

func (f *fakePointsService) History(_ context.Context, uid int64, offset, limit int) ([]points.PointsLog, int64, error) {
	return nil, 0, nil
}

func (f *fakePointsService) AddReviewBonus(_ context.Context, uid, reviewID int64) error {
	return nil
}

type fakePaymentService struct {
	payments         map[int64]payment.Payment
	confirmCalls     int
	cancelCalls      int
	lastCancelAmount *int64
}

func (f *fakePaymentService) ConfirmCapture(_ context.Context, paymentKey, orderRef string, amount int64) (payment.Capture, error) {
	f.confirmCalls++
	return payment.Capture{
		PaymentKey: paymentKey,
		OrderRef:   orderRef,
		Amount:     amount,
		Method:     "카드",
		ApprovedAt: time.Now().UnixMilli(),
	}, nil
}

func (f *fakePaymentService) CreateTx(_ *egorm.Component, p payment.Payment) (int64, error) {
	f.payments[p.OrderID] = p
	return p.OrderID, nil
}

func (f *fakePaymentService) FindByOrderID(_ context.Context, orderID int64) (payment.Payment, error) {
	p, ok := f.payments[orderID]
	if !ok {
		return payment.Payment{}, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (f *fakePaymentService) FindByOrderRef(_ context.Context, orderRef string) (payment.Payment, error) {
	for _, p := range f.payments {
		if p.OrderRef == orderRef {
			return p, nil
		}
	}
	return payment.Payment{}, gorm.ErrRecordNotFound
}

func (f *fakePaymentService) UpdateStatusTx(_ *egorm.Component, orderID int64, status payment.PaymentStatus) error {
	p := f.payments[orderID]
	p.Status = status
	f.payments[orderID] = p
	return nil
}

func (f *fakePaymentService) CancelOrRefund(_ context.Context, paymentKey, reason string, amount *int64) error {
	f.cancelCalls++
	f.lastCancelAmount = amount
	return nil
}

type fakeCheckoutService struct {
	snapshots map[string]checkout.Snapshot
}

func (f *fakeCheckoutService) Create(_ context.Context, s checkout.Snapshot) (checkout.Snapshot, error) {
	return s, nil
}

func (f *fakeCheckoutService) FindByOrderRef(_ context.Context, orderRef string) (checkout.Snapshot, error) {
	s, ok := f.snapshots[orderRef]
	if !ok {
		return checkout.Snapshot{}, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (f *fakeCheckoutService) FindByUIDAndOrderRef(_ context.Context, uid int64, orderRef string) (checkout.Snapshot, error) {
	s, ok := f.snapshots[orderRef]
	if !ok || s.UID != uid {
		return checkout.Snapshot{}, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (f *fakeCheckoutService) DeleteByID(_ *egorm.Component, id int64) error {
	for ref, s := range f.snapshots {
		if s.ID == id {
			delete(f.snapshots, ref)
		}
	}
	return nil
}

func (f *fakeCheckoutService) DeleteCreatedBefore(_ context.Context, before time.Time) (int64, error) {
	return 0, nil
}

type fakeCartService struct {
	clearedUID int64
}

func (f *fakeCartService) Add(_ context.Context, item cart.CartItem) (int64, error) { return 0, nil }

func (f *fakeCartService) FindByUID(_ context.Context, uid int64) ([]cart.CartItem, error) {
	return nil, nil
}

func (f *fakeCartService) Delete(_ context.Context, uid, id int64) error { return nil }

func (f *fakeCartService) DeleteAllByUID(_ *egorm.Component, uid int64) error {
	f.clearedUID = uid
	return nil
}

type fakeProducer struct {
	events []event.OrderEvent
}

func (f *fakeProducer) Produce(_ context.Context, evt event.OrderEvent) error {
	f.events = append(f.events, evt)
	return nil
}

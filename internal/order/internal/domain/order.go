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

package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidTransition 状态守卫失败, 携带当前状态与尝试的流转
	ErrInvalidTransition = errors.New("非法的订单状态流转")
)

type OrderStatus string

const (
	StatusOrdered         OrderStatus = "ORDERED"
	StatusShipped         OrderStatus = "SHIPPED"
	StatusDelivered       OrderStatus = "DELIVERED"
	StatusCancelled       OrderStatus = "CANCELLED"
	StatusReturnRequested OrderStatus = "RETURN_REQUESTED"
	StatusReturnShipping  OrderStatus = "RETURN_SHIPPING"
	StatusReturned        OrderStatus = "RETURNED"
)

type ReturnReason string

const (
	// ReturnReasonDefect 商品瑕疵, 退货运费由商家承担
	ReturnReasonDefect ReturnReason = "DEFECT"
	// ReturnReasonChangeOfMind 单纯变心, 退货运费由用户承担
	ReturnReasonChangeOfMind ReturnReason = "CHANGE_OF_MIND"
)

type ReturnMethod string

const (
	ReturnMethodPickup ReturnMethod = "PICKUP"
	ReturnMethodSelf   ReturnMethod = "SELF"
)

// 收货后可申请退货的时限
const returnWindow = 7 * 24 * time.Hour

// AutoConfirmAfter 送达后超过该时长未确认则由定时任务强制确认
const AutoConfirmAfter = 7 * 24 * time.Hour

// Order 订单聚合根, 结算成功时以 ORDERED 状态创建, 仅通过状态流转方法变更, 永不物理删除
type Order struct {
	ID       int64
	OrderRef string
	UID      int64
	Status   OrderStatus

	Receiver             string
	Address              string
	Phone                string
	TrackingNumber       string
	ReturnTrackingNumber string

	OriginalPrice  int64
	CouponDiscount int64
	PointsDiscount int64
	FinalPrice     int64
	UserCouponID   int64

	DeliveredAt int64
	Confirmed   bool
	ConfirmedAt int64

	ReturnReason      ReturnReason
	ReturnMethod      ReturnMethod
	ReturnShippingFee int64

	Items []Item

	Ctime int64
	Utime int64
}

// Item 订单行, 单价为下单时刻快照
type Item struct {
	ID          int64
	OrderID     int64
	ProductID   int64
	ProductName string
	Size        string
	Quantity    int64
	UnitPrice   int64
}

// TotalDiscount 折扣合计
func (o Order) TotalDiscount() int64 {
	return o.CouponDiscount + o.PointsDiscount
}

// Cancel 仅 ORDERED 可取消, 调用方负责释放库存并取消支付
func (o *Order) Cancel() error {
	if o.Status != StatusOrdered {
		return fmt.Errorf("%w: 当前状态 %s, 尝试取消", ErrInvalidTransition, o.Status)
	}
	o.Status = StatusCancelled
	return nil
}

// Ship 仅 ORDERED 可发货
func (o *Order) Ship(trackingNumber string) error {
	if o.Status != StatusOrdered {
		return fmt.Errorf("%w: 当前状态 %s, 尝试发货", ErrInvalidTransition, o.Status)
	}
	o.Status = StatusShipped
	o.TrackingNumber = trackingNumber
	return nil
}

// MarkDelivered 仅 SHIPPED 可送达, 记录送达时间
func (o *Order) MarkDelivered(now time.Time) error {
	if o.Status != StatusShipped {
		return fmt.Errorf("%w: 当前状态 %s, 尝试送达", ErrInvalidTransition, o.Status)
	}
	o.Status = StatusDelivered
	o.DeliveredAt = now.UnixMilli()
	return nil
}

// Returnable 送达且未确认且在退货时限内
func (o Order) Returnable(now time.Time) bool {
	if o.Status != StatusDelivered || o.DeliveredAt == 0 || o.Confirmed {
		return false
	}
	return now.UnixMilli() < o.DeliveredAt+returnWindow.Milliseconds()
}

// RequestReturn 申请退货, DEFECT 强制运费为零, 确认收货后永久不可退
func (o *Order) RequestReturn(reason ReturnReason, method ReturnMethod, shippingFee int64, now time.Time) error {
	if !o.Returnable(now) {
		return fmt.Errorf("%w: 当前状态 %s, 尝试申请退货", ErrInvalidTransition, o.Status)
	}
	switch reason {
	case ReturnReasonDefect:
		shippingFee = 0
	case ReturnReasonChangeOfMind:
		if shippingFee < 0 {
			return fmt.Errorf("退货运费非法: %d", shippingFee)
		}
	default:
		return fmt.Errorf("未知的退货原因: %s", reason)
	}
	if method != ReturnMethodPickup && method != ReturnMethodSelf {
		return fmt.Errorf("未知的退货方式: %s", method)
	}
	o.Status = StatusReturnRequested
	o.ReturnReason = reason
	o.ReturnMethod = method
	o.ReturnShippingFee = shippingFee
	return nil
}

// ApproveReturn 仅 RETURN_REQUESTED 可受理, 必须携带退货物流单号
func (o *Order) ApproveReturn(returnTrackingNumber string) error {
	if o.Status != StatusReturnRequested {
		return fmt.Errorf("%w: 当前状态 %s, 尝试受理退货", ErrInvalidTransition, o.Status)
	}
	if returnTrackingNumber == "" {
		return fmt.Errorf("退货物流单号为空")
	}
	o.Status = StatusReturnShipping
	o.ReturnTrackingNumber = returnTrackingNumber
	return nil
}

// CompleteReturn 仅 RETURN_SHIPPING 可完成, 调用方负责释放库存并退款
func (o *Order) CompleteReturn() error {
	if o.Status != StatusReturnShipping {
		return fmt.Errorf("%w: 当前状态 %s, 尝试完成退货", ErrInvalidTransition, o.Status)
	}
	o.Status = StatusReturned
	return nil
}

// ConfirmPurchase 仅 DELIVERED 且未确认时可确认, 重复确认报错而非静默幂等
func (o *Order) ConfirmPurchase(now time.Time) error {
	if o.Status != StatusDelivered || o.Confirmed {
		return fmt.Errorf("%w: 当前状态 %s, 尝试确认收货", ErrInvalidTransition, o.Status)
	}
	o.Confirmed = true
	o.ConfirmedAt = now.UnixMilli()
	return nil
}

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
)

var (
	// ErrCouponNotUsable 状态非法、不在有效期或未达最低消费
	ErrCouponNotUsable = errors.New("优惠券不可用")
)

type DiscountType string

const (
	// DiscountTypePercentage 按订单金额的百分比折扣, 可设置折扣上限
	DiscountTypePercentage DiscountType = "PERCENTAGE"
	// DiscountTypeFixed 固定金额折扣
	DiscountTypeFixed DiscountType = "FIXED"
)

// Coupon 商家定义的优惠券模板, 订单流程只读
type Coupon struct {
	ID                int64
	Code              string
	Name              string
	DiscountType      DiscountType
	DiscountValue     int64
	MinOrderAmount    int64 // 0 表示无最低消费
	MaxDiscountAmount int64 // 仅百分比类型生效, 0 表示无上限
	Reusable          bool
	Active            bool
	Ctime             int64
	Utime             int64
}

// CalculateDiscount 计算订单金额对应的折扣
// 百分比类型向下取整并受折扣上限约束, 折扣不会超过订单金额本身
func (c Coupon) CalculateDiscount(orderTotal int64) (int64, error) {
	if c.MinOrderAmount > 0 && orderTotal < c.MinOrderAmount {
		return 0, fmt.Errorf("%w: 订单金额未达到最低消费 %d", ErrCouponNotUsable, c.MinOrderAmount)
	}
	var discount int64
	switch c.DiscountType {
	case DiscountTypePercentage:
		discount = orderTotal * c.DiscountValue / 100
		if c.MaxDiscountAmount > 0 && discount > c.MaxDiscountAmount {
			discount = c.MaxDiscountAmount
		}
	case DiscountTypeFixed:
		discount = c.DiscountValue
	default:
		return 0, fmt.Errorf("%w: 未知的折扣类型 %s", ErrCouponNotUsable, c.DiscountType)
	}
	if discount > orderTotal {
		discount = orderTotal
	}
	return discount, nil
}

type UserCouponStatus string

const (
	UserCouponStatusAvailable UserCouponStatus = "AVAILABLE"
	UserCouponStatusUsed      UserCouponStatus = "USED"
	UserCouponStatusExpired   UserCouponStatus = "EXPIRED"
)

// UserCoupon 发放给用户的优惠券实例, available -> used 或 available -> expired, 终态不可逆
type UserCoupon struct {
	ID             int64
	UID            int64
	Coupon         Coupon
	Status         UserCouponStatus
	IssuedAt       int64
	ValidFrom      int64
	ValidUntil     int64
	UsedOrderID    int64
	DiscountAmount int64
	Ctime          int64
	Utime          int64
}

// UsableAt 校验券在指定时刻可用
func (uc UserCoupon) UsableAt(now int64) error {
	if uc.Status != UserCouponStatusAvailable {
		return fmt.Errorf("%w: 状态为 %s", ErrCouponNotUsable, uc.Status)
	}
	if now < uc.ValidFrom || now >= uc.ValidUntil {
		return fmt.Errorf("%w: 不在有效期内", ErrCouponNotUsable)
	}
	return nil
}

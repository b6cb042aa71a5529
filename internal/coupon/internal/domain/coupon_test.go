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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoupon_CalculateDiscount(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		coupon       Coupon
		orderTotal   int64
		wantDiscount int64
		assertErr    assert.ErrorAssertionFunc
	}{
		{
			name: "百分比折扣_向下取整",
			coupon: Coupon{
				DiscountType:  DiscountTypePercentage,
				DiscountValue: 15,
			},
			orderTotal:   9999,
			wantDiscount: 1499,
			assertErr:    assert.NoError,
		},
		{
			name: "百分比折扣_命中上限",
			coupon: Coupon{
				DiscountType:      DiscountTypePercentage,
				DiscountValue:     20,
				MaxDiscountAmount: 5000,
			},
			orderTotal:   100000,
			wantDiscount: 5000,
			assertErr:    assert.NoError,
		},
		{
			name: "百分比折扣_未命中上限",
			coupon: Coupon{
				DiscountType:      DiscountTypePercentage,
				DiscountValue:     20,
				MaxDiscountAmount: 5000,
			},
			orderTotal:   20000,
			wantDiscount: 4000,
			assertErr:    assert.NoError,
		},
		{
			name: "固定金额折扣",
			coupon: Coupon{
				DiscountType:  DiscountTypeFixed,
				DiscountValue: 3000,
			},
			orderTotal:   50000,
			wantDiscount: 3000,
			assertErr:    assert.NoError,
		},
		{
			name: "固定金额折扣_不超过订单金额",
			coupon: Coupon{
				DiscountType:  DiscountTypeFixed,
				DiscountValue: 3000,
			},
			orderTotal:   2000,
			wantDiscount: 2000,
			assertErr:    assert.NoError,
		},
		{
			name: "未达最低消费",
			coupon: Coupon{
				DiscountType:   DiscountTypeFixed,
				DiscountValue:  3000,
				MinOrderAmount: 30000,
			},
			orderTotal: 29999,
			assertErr: func(t assert.TestingT, err error, i ...interface{}) bool {
				return assert.ErrorIs(t, err, ErrCouponNotUsable)
			},
		},
		{
			name: "恰好达到最低消费",
			coupon: Coupon{
				DiscountType:   DiscountTypeFixed,
				DiscountValue:  3000,
				MinOrderAmount: 30000,
			},
			orderTotal:   30000,
			wantDiscount: 3000,
			assertErr:    assert.NoError,
		},
		{
			name: "未知折扣类型",
			coupon: Coupon{
				DiscountType:  DiscountType("UNKNOWN"),
				DiscountValue: 3000,
			},
			orderTotal: 50000,
			assertErr: func(t assert.TestingT, err error, i ...interface{}) bool {
				return assert.ErrorIs(t, err, ErrCouponNotUsable)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			discount, err := tc.coupon.CalculateDiscount(tc.orderTotal)
			tc.assertErr(t, err)
			assert.Equal(t, tc.wantDiscount, discount)
		})
	}
}

func TestUserCoupon_UsableAt(t *testing.T) {
	t.Parallel()

	const (
		validFrom  = int64(1_700_000_000_000)
		validUntil = validFrom + 30*24*3600*1000
	)

	testCases := []struct {
		name      string
		uc        UserCoupon
		now       int64
		assertErr assert.ErrorAssertionFunc
	}{
		{
			name: "有效期内可用",
			uc: UserCoupon{
				Status:     UserCouponStatusAvailable,
				ValidFrom:  validFrom,
				ValidUntil: validUntil,
			},
			now:       validFrom + 1000,
			assertErr: assert.NoError,
		},
		{
			name: "已核销不可用",
			uc: UserCoupon{
				Status:     UserCouponStatusUsed,
				ValidFrom:  validFrom,
				ValidUntil: validUntil,
			},
			now: validFrom + 1000,
			assertErr: func(t assert.TestingT, err error, i ...interface{}) bool {
				return assert.ErrorIs(t, err, ErrCouponNotUsable)
			},
		},
		{
			name: "已过期不可用",
			uc: UserCoupon{
				Status:     UserCouponStatusExpired,
				ValidFrom:  validFrom,
				ValidUntil: validUntil,
			},
			now: validFrom + 1000,
			assertErr: func(t assert.TestingT, err error, i ...interface{}) bool {
				return assert.ErrorIs(t, err, ErrCouponNotUsable)
			},
		},
		{
			name: "到达失效时刻不可用",
			uc: UserCoupon{
				Status:     UserCouponStatusAvailable,
				ValidFrom:  validFrom,
				ValidUntil: validUntil,
			},
			now: validUntil,
			assertErr: func(t assert.TestingT, err error, i ...interface{}) bool {
				return assert.ErrorIs(t, err, ErrCouponNotUsable)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			tc.assertErr(t, tc.uc.UsableAt(tc.now))
		})
	}
}

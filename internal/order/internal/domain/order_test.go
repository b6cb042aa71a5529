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
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrder_Cancel(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		status    OrderStatus
		wantErr   bool
		wantAfter OrderStatus
	}{
		{name: "已下单可取消", status: StatusOrdered, wantAfter: StatusCancelled},
		{name: "已发货不可取消", status: StatusShipped, wantErr: true},
		{name: "已送达不可取消", status: StatusDelivered, wantErr: true},
		{name: "已取消不可重复取消", status: StatusCancelled, wantErr: true},
		{name: "退货中不可取消", status: StatusReturnShipping, wantErr: true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			o := Order{Status: tc.status}
			err := o.Cancel()
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTransition)
				assert.Equal(t, tc.status, o.Status)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantAfter, o.Status)
		})
	}
}

func TestOrder_Ship(t *testing.T) {
	t.Parallel()

	t.Run("已下单可发货", func(t *testing.T) {
		t.Parallel()
		o := Order{Status: StatusOrdered}
		require.NoError(t, o.Ship("CJ123456789"))
		assert.Equal(t, StatusShipped, o.Status)
		assert.Equal(t, "CJ123456789", o.TrackingNumber)
	})

	t.Run("已发货不可重复发货", func(t *testing.T) {
		t.Parallel()
		o := Order{Status: StatusShipped}
		assert.ErrorIs(t, o.Ship("CJ123456789"), ErrInvalidTransition)
	})
}

func TestOrder_MarkDelivered(t *testing.T) {
	t.Parallel()

	now := time.Now()

	t.Run("已发货可送达", func(t *testing.T) {
		t.Parallel()
		o := Order{Status: StatusShipped}
		require.NoError(t, o.MarkDelivered(now))
		assert.Equal(t, StatusDelivered, o.Status)
		assert.Equal(t, now.UnixMilli(), o.DeliveredAt)
	})

	t.Run("已下单不可直接送达", func(t *testing.T) {
		t.Parallel()
		o := Order{Status: StatusOrdered}
		assert.ErrorIs(t, o.MarkDelivered(now), ErrInvalidTransition)
	})
}

func TestOrder_RequestReturn(t *testing.T) {
	t.Parallel()

	now := time.Now()
	deliveredAt := now.Add(-24 * time.Hour).UnixMilli()

	testCases := []struct {
		name        string
		order       Order
		reason      ReturnReason
		method      ReturnMethod
		shippingFee int64
		wantErr     bool
		wantFee     int64
	}{
		{
			name:        "时限内变心退货_运费用户承担",
			order:       Order{Status: StatusDelivered, DeliveredAt: deliveredAt},
			reason:      ReturnReasonChangeOfMind,
			method:      ReturnMethodPickup,
			shippingFee: 3000,
			wantFee:     3000,
		},
		{
			name:        "瑕疵退货_运费强制为零",
			order:       Order{Status: StatusDelivered, DeliveredAt: deliveredAt},
			reason:      ReturnReasonDefect,
			method:      ReturnMethodPickup,
			shippingFee: 3000,
			wantFee:     0,
		},
		{
			name:        "超过七天不可退",
			order:       Order{Status: StatusDelivered, DeliveredAt: now.Add(-8 * 24 * time.Hour).UnixMilli()},
			reason:      ReturnReasonChangeOfMind,
			method:      ReturnMethodPickup,
			shippingFee: 3000,
			wantErr:     true,
		},
		{
			name:        "已确认收货永久不可退",
			order:       Order{Status: StatusDelivered, DeliveredAt: deliveredAt, Confirmed: true},
			reason:      ReturnReasonChangeOfMind,
			method:      ReturnMethodPickup,
			shippingFee: 3000,
			wantErr:     true,
		},
		{
			name:        "未送达不可退",
			order:       Order{Status: StatusShipped},
			reason:      ReturnReasonChangeOfMind,
			method:      ReturnMethodPickup,
			shippingFee: 3000,
			wantErr:     true,
		},
		{
			name:        "变心退货运费为负非法",
			order:       Order{Status: StatusDelivered, DeliveredAt: deliveredAt},
			reason:      ReturnReasonChangeOfMind,
			method:      ReturnMethodSelf,
			shippingFee: -1,
			wantErr:     true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			o := tc.order
			err := o.RequestReturn(tc.reason, tc.method, tc.shippingFee, now)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, StatusReturnRequested, o.Status)
			assert.Equal(t, tc.reason, o.ReturnReason)
			assert.Equal(t, tc.method, o.ReturnMethod)
			assert.Equal(t, tc.wantFee, o.ReturnShippingFee)
		})
	}
}

func TestOrder_ApproveReturn(t *testing.T) {
	t.Parallel()

	t.Run("受理退货记录物流单号", func(t *testing.T) {
		t.Parallel()
		o := Order{Status: StatusReturnRequested}
		require.NoError(t, o.ApproveReturn("RT987654321"))
		assert.Equal(t, StatusReturnShipping, o.Status)
		assert.Equal(t, "RT987654321", o.ReturnTrackingNumber)
	})

	t.Run("物流单号为空非法", func(t *testing.T) {
		t.Parallel()
		o := Order{Status: StatusReturnRequested}
		assert.Error(t, o.ApproveReturn(""))
		assert.Equal(t, StatusReturnRequested, o.Status)
	})

	t.Run("未申请退货不可受理", func(t *testing.T) {
		t.Parallel()
		o := Order{Status: StatusDelivered}
		assert.ErrorIs(t, o.ApproveReturn("RT987654321"), ErrInvalidTransition)
	})
}

func TestOrder_CompleteReturn(t *testing.T) {
	t.Parallel()

	t.Run("退货在途可完成", func(t *testing.T) {
		t.Parallel()
		o := Order{Status: StatusReturnShipping}
		require.NoError(t, o.CompleteReturn())
		assert.Equal(t, StatusReturned, o.Status)
	})

	t.Run("已完成不可重复完成", func(t *testing.T) {
		t.Parallel()
		o := Order{Status: StatusReturned}
		assert.ErrorIs(t, o.CompleteReturn(), ErrInvalidTransition)
	})
}

func TestOrder_ConfirmPurchase(t *testing.T) {
	t.Parallel()

	now := time.Now()

	t.Run("送达后可确认", func(t *testing.T) {
		t.Parallel()
		o := Order{Status: StatusDelivered}
		require.NoError(t, o.ConfirmPurchase(now))
		assert.True(t, o.Confirmed)
		assert.Equal(t, now.UnixMilli(), o.ConfirmedAt)
	})

	t.Run("重复确认报错", func(t *testing.T) {
		t.Parallel()
		o := Order{Status: StatusDelivered}
		require.NoError(t, o.ConfirmPurchase(now))
		assert.ErrorIs(t, o.ConfirmPurchase(now), ErrInvalidTransition)
	})

	t.Run("未送达不可确认", func(t *testing.T) {
		t.Parallel()
		o := Order{Status: StatusShipped}
		assert.ErrorIs(t, o.ConfirmPurchase(now), ErrInvalidTransition)
	})
}

func TestPricing(t *testing.T) {
	t.Parallel()

	t.Run("按单价快照计算原价", func(t *testing.T) {
		t.Parallel()
		items := []Item{
			{UnitPrice: 10000, Quantity: 2},
			{UnitPrice: 20000, Quantity: 1},
		}
		assert.Equal(t, int64(40000), ComputeOriginal(items))
	})

	t.Run("应付金额等于原价减折扣", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, int64(47000), FinalPrice(50000, 3000, 0))
		assert.Equal(t, int64(35000), FinalPrice(40000, 4000, 1000))
	})

	t.Run("应付金额不为负", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, int64(0), FinalPrice(1000, 2000, 0))
	})
}

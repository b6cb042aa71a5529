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

package web

import "github.com/ecodeclub/ginx"

var (
	systemErrorResult = ginx.Result{
		Code: 504001,
		Msg:  "系统错误",
	}
	couponAlreadyOwnedResult = ginx.Result{
		Code: 504002,
		Msg:  "优惠券已领取",
	}
	couponNotUsableResult = ginx.Result{
		Code: 504003,
		Msg:  "优惠券不可用",
	}
)

// IssueCouponReq 按券码领取优惠券
type IssueCouponReq struct {
	Code string `json:"code"`
}

type IssueCouponResp struct {
	UserCoupon UserCoupon `json:"userCoupon"`
}

type ListUserCouponsResp struct {
	UserCoupons []UserCoupon `json:"userCoupons,omitempty"`
}

// ListUsableCouponsReq 查询对指定订单金额可用的券
type ListUsableCouponsReq struct {
	OrderTotal int64 `json:"orderTotal"`
}

type UserCoupon struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	Code              string `json:"code"`
	DiscountType      string `json:"discountType"`
	DiscountValue     int64  `json:"discountValue"`
	MinOrderAmount    int64  `json:"minOrderAmount,omitempty"`
	MaxDiscountAmount int64  `json:"maxDiscountAmount,omitempty"`
	Status            string `json:"status"`
	ValidUntil        int64  `json:"validUntil"`
	DiscountAmount    int64  `json:"discountAmount,omitempty"`
}

// CreateCouponReq 管理端创建优惠券模板
type CreateCouponReq struct {
	Code              string `json:"code"`
	Name              string `json:"name"`
	DiscountType      string `json:"discountType"`
	DiscountValue     int64  `json:"discountValue"`
	MinOrderAmount    int64  `json:"minOrderAmount,omitempty"`
	MaxDiscountAmount int64  `json:"maxDiscountAmount,omitempty"`
	Reusable          bool   `json:"reusable,omitempty"`
}

type CreateCouponResp struct {
	ID int64 `json:"id"`
}

// ListCouponsReq 管理端分页查询模板
type ListCouponsReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ListCouponsResp struct {
	Total   int64    `json:"total,omitempty"`
	Coupons []Coupon `json:"coupons,omitempty"`
}

// SetCouponActiveReq 管理端启停发放
type SetCouponActiveReq struct {
	ID     int64 `json:"id"`
	Active bool  `json:"active"`
}

type Coupon struct {
	ID                int64  `json:"id"`
	Code              string `json:"code"`
	Name              string `json:"name"`
	DiscountType      string `json:"discountType"`
	DiscountValue     int64  `json:"discountValue"`
	MinOrderAmount    int64  `json:"minOrderAmount,omitempty"`
	MaxDiscountAmount int64  `json:"maxDiscountAmount,omitempty"`
	Reusable          bool   `json:"reusable,omitempty"`
	Active            bool   `json:"active"`
}

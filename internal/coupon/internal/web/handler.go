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

import (
	"errors"
	"fmt"

	"github.com/ecodeclub/capshop/internal/coupon/internal/domain"
	"github.com/ecodeclub/capshop/internal/coupon/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/coupon")
	g.POST("/issue", ginx.BS[IssueCouponReq](h.IssueCoupon))
	g.POST("/list", ginx.S(h.ListUserCoupons))
	g.POST("/usable", ginx.BS[ListUsableCouponsReq](h.ListUsableCoupons))
}

// IssueCoupon 按券码领取
func (h *Handler) IssueCoupon(ctx *ginx.Context, req IssueCouponReq, sess session.Session) (ginx.Result, error) {
	uc, err := h.svc.Issue(ctx.Request.Context(), sess.Claims().Uid, req.Code)
	if errors.Is(err, service.ErrCouponAlreadyOwned) {
		return couponAlreadyOwnedResult, nil
	}
	if errors.Is(err, service.ErrCouponNotUsable) {
		return couponNotUsableResult, nil
	}
	if err != nil {
		return systemErrorResult, fmt.Errorf("领取优惠券失败: %w", err)
	}
	return ginx.Result{
		Data: IssueCouponResp{UserCoupon: toUserCouponVO(uc)},
	}, nil
}

// ListUserCoupons 查询当前用户的全部优惠券
func (h *Handler) ListUserCoupons(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	ucs, err := h.svc.ListMine(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, fmt.Errorf("查询优惠券失败: %w", err)
	}
	return ginx.Result{
		Data: ListUserCouponsResp{
			UserCoupons: slice.Map(ucs, func(idx int, src domain.UserCoupon) UserCoupon {
				return toUserCouponVO(src)
			}),
		},
	}, nil
}

// ListUsableCoupons 查询对指定订单金额可用的优惠券
func (h *Handler) ListUsableCoupons(ctx *ginx.Context, req ListUsableCouponsReq, sess session.Session) (ginx.Result, error) {
	ucs, err := h.svc.ListUsable(ctx.Request.Context(), sess.Claims().Uid, req.OrderTotal)
	if err != nil {
		return systemErrorResult, fmt.Errorf("查询可用优惠券失败: %w", err)
	}
	return ginx.Result{
		Data: ListUserCouponsResp{
			UserCoupons: slice.Map(ucs, func(idx int, src domain.UserCoupon) UserCoupon {
				return toUserCouponVO(src)
			}),
		},
	}, nil
}

func toUserCouponVO(uc domain.UserCoupon) UserCoupon {
	return UserCoupon{
		ID:                uc.ID,
		Name:              uc.Coupon.Name,
		Code:              uc.Coupon.Code,
		DiscountType:      string(uc.Coupon.DiscountType),
		DiscountValue:     uc.Coupon.DiscountValue,
		MinOrderAmount:    uc.Coupon.MinOrderAmount,
		MaxDiscountAmount: uc.Coupon.MaxDiscountAmount,
		Status:            string(uc.Status),
		ValidUntil:        uc.ValidUntil,
		DiscountAmount:    uc.DiscountAmount,
	}
}

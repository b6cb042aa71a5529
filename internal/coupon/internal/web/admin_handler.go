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
	"fmt"

	"github.com/ecodeclub/capshop/internal/coupon/internal/domain"
	"github.com/ecodeclub/capshop/internal/coupon/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

// AdminHandler 管理端优惠券模板接口
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/coupon")
	g.POST("/create", ginx.B[CreateCouponReq](h.CreateCoupon))
	g.POST("/list", ginx.B[ListCouponsReq](h.ListCoupons))
	g.POST("/active", ginx.B[SetCouponActiveReq](h.SetCouponActive))
}

func (h *AdminHandler) PublicRoutes(_ *gin.Engine) {}

// CreateCoupon 创建优惠券模板
func (h *AdminHandler) CreateCoupon(ctx *ginx.Context, req CreateCouponReq) (ginx.Result, error) {
	id, err := h.svc.CreateCoupon(ctx.Request.Context(), domain.Coupon{
		Code:              req.Code,
		Name:              req.Name,
		DiscountType:      domain.DiscountType(req.DiscountType),
		DiscountValue:     req.DiscountValue,
		MinOrderAmount:    req.MinOrderAmount,
		MaxDiscountAmount: req.MaxDiscountAmount,
		Reusable:          req.Reusable,
		Active:            true,
	})
	if err != nil {
		return systemErrorResult, fmt.Errorf("创建优惠券模板失败: %w", err)
	}
	return ginx.Result{
		Data: CreateCouponResp{ID: id},
	}, nil
}

// ListCoupons 分页查询优惠券模板
func (h *AdminHandler) ListCoupons(ctx *ginx.Context, req ListCouponsReq) (ginx.Result, error) {
	coupons, total, err := h.svc.ListCoupons(ctx.Request.Context(), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, fmt.Errorf("查询优惠券模板失败: %w", err)
	}
	return ginx.Result{
		Data: ListCouponsResp{
			Total: total,
			Coupons: slice.Map(coupons, func(idx int, src domain.Coupon) Coupon {
				return Coupon{
					ID:                src.ID,
					Code:              src.Code,
					Name:              src.Name,
					DiscountType:      string(src.DiscountType),
					DiscountValue:     src.DiscountValue,
					MinOrderAmount:    src.MinOrderAmount,
					MaxDiscountAmount: src.MaxDiscountAmount,
					Reusable:          src.Reusable,
					Active:            src.Active,
				}
			}),
		},
	}, nil
}

// SetCouponActive 启停发放
func (h *AdminHandler) SetCouponActive(ctx *ginx.Context, req SetCouponActiveReq) (ginx.Result, error) {
	err := h.svc.SetCouponActive(ctx.Request.Context(), req.ID, req.Active)
	if err != nil {
		return systemErrorResult, fmt.Errorf("更新优惠券状态失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

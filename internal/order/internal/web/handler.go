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

	"github.com/ecodeclub/capshop/internal/order/internal/domain"
	"github.com/ecodeclub/capshop/internal/order/internal/service"
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
	g := server.Group("/order")
	g.POST("/settle", ginx.BS[SettleReq](h.Settle))
	g.POST("/list", ginx.BS[ListOrdersReq](h.ListMine))
	g.POST("/detail", ginx.BS[RetrieveOrderReq](h.Detail))
	g.POST("/cancel", ginx.BS[CancelOrderReq](h.Cancel))
	g.POST("/return/request", ginx.BS[RequestReturnReq](h.RequestReturn))
	g.POST("/confirm", ginx.BS[ConfirmPurchaseReq](h.ConfirmPurchase))
}

// Settle 支付回跳后的结算入口, 服务端重算金额, 不一致则整体回滚
func (h *Handler) Settle(ctx *ginx.Context, req SettleReq, sess session.Session) (ginx.Result, error) {
	o, err := h.svc.Settle(ctx.Request.Context(), sess.Claims().Uid, req.OrderRef, req.PaymentKey, domain.DiscountIntent{
		OriginalAmount: req.OriginalAmount,
		CouponDiscount: req.CouponDiscount,
		PointsUsed:     req.PointsUsed,
		FinalAmount:    req.FinalAmount,
		UserCouponID:   req.UserCouponID,
	})
	if err != nil {
		if errors.Is(err, service.ErrAmountMismatch) {
			return amountMismatchResult, err
		}
		return systemErrorResult, fmt.Errorf("结算失败: %w", err)
	}
	return ginx.Result{Data: SettleResp{Order: toOrderVO(o)}}, nil
}

func (h *Handler) ListMine(ctx *ginx.Context, req ListOrdersReq, sess session.Session) (ginx.Result, error) {
	os, total, err := h.svc.ListMine(ctx.Request.Context(), sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, fmt.Errorf("查询订单列表失败: %w", err)
	}
	return ginx.Result{
		Data: ListOrdersResp{
			Total: total,
			Orders: slice.Map(os, func(idx int, src domain.Order) Order {
				return toOrderVO(src)
			}),
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req RetrieveOrderReq, sess session.Session) (ginx.Result, error) {
	o, err := h.svc.Detail(ctx.Request.Context(), sess.Claims().Uid, req.OrderID)
	if err != nil {
		return systemErrorResult, fmt.Errorf("查询订单详情失败: %w", err)
	}
	return ginx.Result{Data: RetrieveOrderResp{Order: toOrderVO(o)}}, nil
}

func (h *Handler) Cancel(ctx *ginx.Context, req CancelOrderReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Cancel(ctx.Request.Context(), sess.Claims().Uid, req.OrderID)
	if err != nil {
		if errors.Is(err, service.ErrInvalidTransition) {
			return invalidTransitionResult, err
		}
		return systemErrorResult, fmt.Errorf("取消订单失败: %w", err)
	}
	return ginx.Result{}, nil
}

func (h *Handler) RequestReturn(ctx *ginx.Context, req RequestReturnReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.RequestReturn(ctx.Request.Context(), sess.Claims().Uid, req.OrderID,
		domain.ReturnReason(req.Reason), domain.ReturnMethod(req.Method), req.ShippingFee)
	if err != nil {
		if errors.Is(err, service.ErrInvalidTransition) {
			return invalidTransitionResult, err
		}
		return systemErrorResult, fmt.Errorf("申请退货失败: %w", err)
	}
	return ginx.Result{}, nil
}

func (h *Handler) ConfirmPurchase(ctx *ginx.Context, req ConfirmPurchaseReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.ConfirmPurchase(ctx.Request.Context(), sess.Claims().Uid, req.OrderID)
	if err != nil {
		if errors.Is(err, service.ErrInvalidTransition) {
			return invalidTransitionResult, err
		}
		return systemErrorResult, fmt.Errorf("确认收货失败: %w", err)
	}
	return ginx.Result{}, nil
}

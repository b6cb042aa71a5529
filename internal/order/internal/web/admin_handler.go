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
	"github.com/gin-gonic/gin"
)

// AdminHandler 管理端订单履约接口: 发货、送达、退货受理与完成
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/list", ginx.B[ListOrdersByStatusReq](h.ListByStatus))
	g.POST("/detail", ginx.B[RetrieveOrderReq](h.Detail))
	g.POST("/ship", ginx.B[ShipOrderReq](h.Ship))
	g.POST("/deliver", ginx.B[MarkDeliveredReq](h.MarkDelivered))
	g.POST("/return/approve", ginx.B[ApproveReturnReq](h.ApproveReturn))
	g.POST("/return/complete", ginx.B[CompleteReturnReq](h.CompleteReturn))
}

func (h *AdminHandler) PublicRoutes(_ *gin.Engine) {}

// ListByStatus 按状态分页查询订单
func (h *AdminHandler) ListByStatus(ctx *ginx.Context, req ListOrdersByStatusReq) (ginx.Result, error) {
	os, total, err := h.svc.ListByStatus(ctx.Request.Context(), domain.OrderStatus(req.Status), req.Offset, req.Limit)
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

func (h *AdminHandler) Detail(ctx *ginx.Context, req RetrieveOrderReq) (ginx.Result, error) {
	o, err := h.svc.DetailByID(ctx.Request.Context(), req.OrderID)
	if err != nil {
		return systemErrorResult, fmt.Errorf("查询订单详情失败: %w", err)
	}
	return ginx.Result{Data: RetrieveOrderResp{Order: toOrderVO(o)}}, nil
}

// Ship 发货并记录物流单号
func (h *AdminHandler) Ship(ctx *ginx.Context, req ShipOrderReq) (ginx.Result, error) {
	err := h.svc.Ship(ctx.Request.Context(), req.OrderID, req.TrackingNumber)
	if err != nil {
		if errors.Is(err, service.ErrInvalidTransition) {
			return invalidTransitionResult, err
		}
		return systemErrorResult, fmt.Errorf("发货失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

// MarkDelivered 标记送达, 记录送达时间并开启退货时限
func (h *AdminHandler) MarkDelivered(ctx *ginx.Context, req MarkDeliveredReq) (ginx.Result, error) {
	err := h.svc.MarkDelivered(ctx.Request.Context(), req.OrderID)
	if err != nil {
		if errors.Is(err, service.ErrInvalidTransition) {
			return invalidTransitionResult, err
		}
		return systemErrorResult, fmt.Errorf("标记送达失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

// ApproveReturn 受理退货申请, 必须携带退货物流单号
func (h *AdminHandler) ApproveReturn(ctx *ginx.Context, req ApproveReturnReq) (ginx.Result, error) {
	err := h.svc.ApproveReturn(ctx.Request.Context(), req.OrderID, req.ReturnTrackingNumber)
	if err != nil {
		if errors.Is(err, service.ErrInvalidTransition) {
			return invalidTransitionResult, err
		}
		return systemErrorResult, fmt.Errorf("受理退货失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

// CompleteReturn 收到退货后完成退货并退款
func (h *AdminHandler) CompleteReturn(ctx *ginx.Context, req CompleteReturnReq) (ginx.Result, error) {
	err := h.svc.CompleteReturn(ctx.Request.Context(), req.OrderID)
	if err != nil {
		if errors.Is(err, service.ErrInvalidTransition) {
			return invalidTransitionResult, err
		}
		return systemErrorResult, fmt.Errorf("完成退货失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

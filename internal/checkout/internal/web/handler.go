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
	"context"
	"fmt"

	"github.com/ecodeclub/capshop/internal/checkout/internal/domain"
	"github.com/ecodeclub/capshop/internal/checkout/internal/service"
	"github.com/ecodeclub/capshop/internal/product"
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc        service.Service
	productSvc product.Service
	cache      ecache.Cache
}

func NewHandler(svc service.Service, productSvc product.Service, cache ecache.Cache) *Handler {
	return &Handler{svc: svc, productSvc: productSvc, cache: cache}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/checkout")
	g.POST("/create", ginx.BS[CreateCheckoutReq](h.CreateCheckout))
	g.POST("/detail", ginx.BS[RetrieveCheckoutReq](h.RetrieveCheckoutDetail))
}

// CreateCheckout 创建结算快照, 锁定收货信息和下单时刻的商品价格
func (h *Handler) CreateCheckout(ctx *ginx.Context, req CreateCheckoutReq, sess session.Session) (ginx.Result, error) {
	if err := h.checkRequestID(ctx.Request.Context(), req.RequestID); err != nil {
		return systemErrorResult, fmt.Errorf("请求ID错误: %w", err)
	}

	lines, err := h.snapshotLines(ctx.Request.Context(), req.Items)
	if err != nil {
		return systemErrorResult, err
	}

	snapshot, err := h.svc.Create(ctx.Request.Context(), domain.Snapshot{
		UID:      sess.Claims().Uid,
		Receiver: req.Receiver,
		Address:  req.Address,
		Phone:    req.Phone,
		Items:    lines,
	})
	if err != nil {
		return systemErrorResult, fmt.Errorf("创建结算快照失败: %w", err)
	}
	return ginx.Result{
		Data: CreateCheckoutResp{
			OrderRef:    snapshot.OrderRef,
			TotalAmount: snapshot.TotalAmount(),
		},
	}, nil
}

// RetrieveCheckoutDetail 查询当前用户的结算快照
func (h *Handler) RetrieveCheckoutDetail(ctx *ginx.Context, req RetrieveCheckoutReq, sess session.Session) (ginx.Result, error) {
	snapshot, err := h.svc.FindByUIDAndOrderRef(ctx.Request.Context(), sess.Claims().Uid, req.OrderRef)
	if err != nil {
		return systemErrorResult, fmt.Errorf("查询结算快照失败: %w", err)
	}
	return ginx.Result{
		Data: RetrieveCheckoutResp{Checkout: toCheckoutVO(snapshot)},
	}, nil
}

func (h *Handler) checkRequestID(ctx context.Context, requestID string) error {
	if requestID == "" {
		return fmt.Errorf("请求ID为空")
	}

	key := h.createCheckoutRequestKey(requestID)
	val := h.cache.Get(ctx, key)
	if !val.KeyNotFound() {
		return fmt.Errorf("重复请求")
	}
	if err := h.cache.Set(ctx, key, requestID, 0); err != nil {
		return fmt.Errorf("缓存请求ID失败: %w", err)
	}
	return nil
}

func (h *Handler) createCheckoutRequestKey(requestID string) string {
	return fmt.Sprintf("checkout:create:%s", requestID)
}

// snapshotLines 按商品序列号逐行解析, 锁定当前价格与名称
func (h *Handler) snapshotLines(ctx context.Context, items []Line) ([]domain.Line, error) {
	lines := make([]domain.Line, 0, len(items))
	for _, it := range items {
		p, err := h.productSvc.FindBySN(ctx, it.ProductSN)
		if err != nil {
			return nil, fmt.Errorf("商品序列号非法: %w", err)
		}
		if it.Quantity < 1 || it.Quantity > p.StockBySize(it.Size) {
			return nil, fmt.Errorf("商品库存不足或数量非法")
		}
		lines = append(lines, domain.Line{
			ProductID:   p.ID,
			ProductName: p.Name,
			Size:        it.Size,
			Quantity:    it.Quantity,
			Price:       p.Price,
		})
	}
	return lines, nil
}

func toCheckoutVO(s domain.Snapshot) Checkout {
	return Checkout{
		OrderRef: s.OrderRef,
		Receiver: s.Receiver,
		Address:  s.Address,
		Phone:    s.Phone,
		Items: slice.Map(s.Items, func(idx int, src domain.Line) CheckoutLine {
			return CheckoutLine{
				ProductID:   src.ProductID,
				ProductName: src.ProductName,
				Size:        src.Size,
				Quantity:    src.Quantity,
				Price:       src.Price,
			}
		}),
		TotalAmount: s.TotalAmount(),
	}
}

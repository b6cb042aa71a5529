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

	"github.com/ecodeclub/capshop/internal/cart/internal/domain"
	"github.com/ecodeclub/capshop/internal/cart/internal/service"
	"github.com/ecodeclub/capshop/internal/product"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc        service.Service
	productSvc product.Service
}

func NewHandler(svc service.Service, productSvc product.Service) *Handler {
	return &Handler{svc: svc, productSvc: productSvc}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/cart")
	g.POST("/add", ginx.BS[AddCartItemReq](h.AddCartItem))
	g.POST("/list", ginx.S(h.ListCartItems))
	g.POST("/remove", ginx.BS[RemoveCartItemReq](h.RemoveCartItem))
}

// AddCartItem 加购, 同一(商品, 尺码)重复加购时累加数量
func (h *Handler) AddCartItem(ctx *ginx.Context, req AddCartItemReq, sess session.Session) (ginx.Result, error) {
	p, err := h.productSvc.FindBySN(ctx.Request.Context(), req.ProductSN)
	if err != nil {
		return systemErrorResult, fmt.Errorf("商品序列号非法: %w", err)
	}
	if req.Quantity < 1 || req.Quantity > p.StockBySize(req.Size) {
		return systemErrorResult, fmt.Errorf("要加购的商品数量非法")
	}
	id, err := h.svc.Add(ctx.Request.Context(), domain.CartItem{
		UID:       sess.Claims().Uid,
		ProductID: p.ID,
		Size:      req.Size,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return systemErrorResult, fmt.Errorf("加购失败: %w", err)
	}
	return ginx.Result{
		Data: AddCartItemResp{ID: id},
	}, nil
}

// ListCartItems 查询当前用户的购物车
func (h *Handler) ListCartItems(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	items, err := h.svc.FindByUID(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, fmt.Errorf("查询购物车失败: %w", err)
	}
	return ginx.Result{
		Data: ListCartItemsResp{
			Items: slice.Map(items, func(idx int, src domain.CartItem) CartItem {
				return CartItem{
					ID:        src.ID,
					ProductID: src.ProductID,
					Size:      src.Size,
					Quantity:  src.Quantity,
				}
			}),
		},
	}, nil
}

// RemoveCartItem 删除购物车行
func (h *Handler) RemoveCartItem(ctx *ginx.Context, req RemoveCartItemReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Delete(ctx.Request.Context(), sess.Claims().Uid, req.ID)
	if err != nil {
		return systemErrorResult, fmt.Errorf("删除购物车行失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

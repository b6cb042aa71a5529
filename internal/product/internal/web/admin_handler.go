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

	"github.com/ecodeclub/capshop/internal/product/internal/domain"
	"github.com/ecodeclub/capshop/internal/product/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

// AdminHandler 管理端商品接口
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/product")
	g.POST("/create", ginx.B[CreateProductReq](h.CreateProduct))
	g.POST("/shelf", ginx.B[SetShelfReq](h.SetShelf))
}

func (h *AdminHandler) PublicRoutes(_ *gin.Engine) {}

// CreateProduct 创建商品, 按尺码录入初始库存
func (h *AdminHandler) CreateProduct(ctx *ginx.Context, req CreateProductReq) (ginx.Result, error) {
	id, err := h.svc.Create(ctx.Request.Context(), domain.Product{
		SN:          req.SN,
		Name:        req.Name,
		Description: req.Desc,
		Price:       req.Price,
		Image:       req.Image,
		Stock:       req.Stock,
		Status:      domain.StatusOnShelf,
		SizeStocks: slice.Map(req.SizeStocks, func(idx int, src SizeStock) domain.SizeStock {
			return domain.SizeStock{
				Size:     src.Size,
				Quantity: src.Quantity,
			}
		}),
	})
	if err != nil {
		return systemErrorResult, fmt.Errorf("创建商品失败: %w", err)
	}
	return ginx.Result{Data: CreateProductResp{ID: id}}, nil
}

// SetShelf 上下架
func (h *AdminHandler) SetShelf(ctx *ginx.Context, req SetShelfReq) (ginx.Result, error) {
	err := h.svc.SetOnShelf(ctx.Request.Context(), req.ID, req.OnShelf)
	if err != nil {
		return systemErrorResult, fmt.Errorf("更新商品上下架状态失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

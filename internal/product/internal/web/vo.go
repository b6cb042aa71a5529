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

var systemErrorResult = ginx.Result{
	Code: 501001,
	Msg:  "系统错误",
}

// ListProductsReq 分页查询上架商品
type ListProductsReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ListProductsResp struct {
	Total    int64     `json:"total,omitempty"`
	Products []Product `json:"products,omitempty"`
}

// RetrieveProductDetailReq 获取商品详情
type RetrieveProductDetailReq struct {
	SN string `json:"sn"`
}

type Product struct {
	SN         string      `json:"sn"`
	Name       string      `json:"name"`
	Desc       string      `json:"desc"`
	Price      int64       `json:"price"`
	Image      string      `json:"image"`
	SizeStocks []SizeStock `json:"sizeStocks,omitempty"`
	// Stock 旧版单尺码商品的库存
	Stock int64 `json:"stock,omitempty"`
}

type SizeStock struct {
	Size     string `json:"size"`
	Quantity int64  `json:"quantity"`
}

// CreateProductReq 管理端创建商品
type CreateProductReq struct {
	SN         string      `json:"sn"`
	Name       string      `json:"name"`
	Desc       string      `json:"desc,omitempty"`
	Price      int64       `json:"price"`
	Image      string      `json:"image,omitempty"`
	Stock      int64       `json:"stock,omitempty"`
	SizeStocks []SizeStock `json:"sizeStocks,omitempty"`
}

type CreateProductResp struct {
	ID int64 `json:"id"`
}

// SetShelfReq 管理端上下架
type SetShelfReq struct {
	ID      int64 `json:"id"`
	OnShelf bool  `json:"onShelf"`
}

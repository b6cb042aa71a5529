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
	Code: 502001,
	Msg:  "系统错误",
}

// AddCartItemReq 加购
type AddCartItemReq struct {
	ProductSN string `json:"productSN"`
	Size      string `json:"size,omitempty"`
	Quantity  int64  `json:"quantity"`
}

type AddCartItemResp struct {
	ID int64 `json:"id"`
}

type ListCartItemsResp struct {
	Items []CartItem `json:"items,omitempty"`
}

// RemoveCartItemReq 删除购物车行
type RemoveCartItemReq struct {
	ID int64 `json:"id"`
}

type CartItem struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"productID"`
	Size      string `json:"size,omitempty"`
	Quantity  int64  `json:"quantity"`
}

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
	Code: 503001,
	Msg:  "系统错误",
}

// CreateCheckoutReq 创建结算快照请求
type CreateCheckoutReq struct {
	RequestID string `json:"requestID"` // 请求去重,防止快照重复提交
	Receiver  string `json:"receiver"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Items     []Line `json:"items"`
}

type Line struct {
	ProductSN string `json:"productSN"`
	Size      string `json:"size,omitempty"`
	Quantity  int64  `json:"quantity"`
}

type CreateCheckoutResp struct {
	OrderRef    string `json:"orderRef"`
	TotalAmount int64  `json:"totalAmount"`
}

// RetrieveCheckoutReq 查询结算快照
type RetrieveCheckoutReq struct {
	OrderRef string `json:"orderRef"`
}

type RetrieveCheckoutResp struct {
	Checkout Checkout `json:"checkout"`
}

type Checkout struct {
	OrderRef    string         `json:"orderRef"`
	Receiver    string         `json:"receiver"`
	Address     string         `json:"address"`
	Phone       string         `json:"phone"`
	Items       []CheckoutLine `json:"items"`
	TotalAmount int64          `json:"totalAmount"`
}

type CheckoutLine struct {
	ProductID   int64  `json:"productID"`
	ProductName string `json:"productName"`
	Size        string `json:"size,omitempty"`
	Quantity    int64  `json:"quantity"`
	Price       int64  `json:"price"`
}

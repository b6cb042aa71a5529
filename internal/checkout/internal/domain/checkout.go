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

package domain

// Snapshot 结算前的快照, 锁定收货信息和商品明细, 支付成功后随订单落库并删除
type Snapshot struct {
	ID       int64
	OrderRef string
	UID      int64
	Receiver string
	Address  string
	Phone    string
	Items    []Line
	Ctime    int64
	Utime    int64
}

// Line 快照中的一行商品, 单价为下单时刻的快照价
type Line struct {
	ProductID   int64  `json:"productID"`
	ProductName string `json:"productName"`
	Size        string `json:"size,omitempty"`
	Quantity    int64  `json:"quantity"`
	Price       int64  `json:"price"`
}

// TotalAmount 快照的原价总额
func (s Snapshot) TotalAmount() int64 {
	var total int64
	for _, it := range s.Items {
		total += it.Price * it.Quantity
	}
	return total
}

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

package event

const orderEventName = "order_events"

const (
	ActionSettled   = "settled"
	ActionCancelled = "cancelled"
	ActionReturned  = "returned"
)

// OrderEvent 订单生命周期事件, 结算成功、取消、退货完成后发出
type OrderEvent struct {
	OrderRef string `json:"orderRef"`
	UID      int64  `json:"uid"`
	Action   string `json:"action"`
	// Amount 结算时为实付金额, 退货时为实际退款金额
	Amount int64 `json:"amount"`
}

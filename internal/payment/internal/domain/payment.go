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

type PaymentStatus string

const (
	PaymentStatusReady           PaymentStatus = "READY"
	PaymentStatusApproved        PaymentStatus = "APPROVED"
	PaymentStatusFailed          PaymentStatus = "FAILED"
	PaymentStatusCanceled        PaymentStatus = "CANCELED"
	PaymentStatusRefunded        PaymentStatus = "REFUNDED"
	PaymentStatusPartialRefunded PaymentStatus = "PARTIAL_REFUNDED"
)

// Payment 支付记录, 与订单一一对应, 结算成功时以 APPROVED 状态落库
type Payment struct {
	ID          int64
	OrderID     int64
	OrderRef    string
	PaymentKey  string
	Method      string
	Amount      int64
	Status      PaymentStatus
	RequestedAt int64
	ApprovedAt  int64
	CanceledAt  int64
	FailReason  string
	Ctime       int64
	Utime       int64
}

// Capture 网关确认扣款的结果
type Capture struct {
	PaymentKey string
	OrderRef   string
	Amount     int64
	Method     string
	ApprovedAt int64
}

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
	"github.com/ecodeclub/capshop/internal/order/internal/domain"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: 506001,
		Msg:  "系统错误",
	}
	amountMismatchResult = ginx.Result{
		Code: 506002,
		Msg:  "结算金额不一致",
	}
	invalidTransitionResult = ginx.Result{
		Code: 506003,
		Msg:  "订单状态不允许该操作",
	}
)

// SettleReq 支付成功回跳后发起结算, 折扣明细为客户端声明值, 服务端重算为准
type SettleReq struct {
	OrderRef       string `json:"orderRef"`
	PaymentKey     string `json:"paymentKey"`
	OriginalAmount int64  `json:"originalAmount"`
	UserCouponID   int64  `json:"userCouponID,omitempty"`
	CouponDiscount int64  `json:"couponDiscount,omitempty"`
	PointsUsed     int64  `json:"pointsUsed,omitempty"`
	FinalAmount    int64  `json:"finalAmount"`
}

type SettleResp struct {
	Order Order `json:"order"`
}

type ListOrdersReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ListOrdersResp struct {
	Total  int64   `json:"total,omitempty"`
	Orders []Order `json:"orders,omitempty"`
}

type RetrieveOrderReq struct {
	OrderID int64 `json:"orderID"`
}

type RetrieveOrderResp struct {
	Order Order `json:"order"`
}

type CancelOrderReq struct {
	OrderID int64 `json:"orderID"`
}

// RequestReturnReq 申请退货, reason 为 DEFECT 时运费由商家承担
type RequestReturnReq struct {
	OrderID     int64  `json:"orderID"`
	Reason      string `json:"reason"`
	Method      string `json:"method"`
	ShippingFee int64  `json:"shippingFee,omitempty"`
}

type ConfirmPurchaseReq struct {
	OrderID int64 `json:"orderID"`
}

// ListOrdersByStatusReq 管理端按状态分页查询
type ListOrdersByStatusReq struct {
	Status string `json:"status"`
	Offset int    `json:"offset,omitempty"`
	Limit  int    `json:"limit,omitempty"`
}

type ShipOrderReq struct {
	OrderID        int64  `json:"orderID"`
	TrackingNumber string `json:"trackingNumber"`
}

type MarkDeliveredReq struct {
	OrderID int64 `json:"orderID"`
}

type ApproveReturnReq struct {
	OrderID              int64  `json:"orderID"`
	ReturnTrackingNumber string `json:"returnTrackingNumber"`
}

type CompleteReturnReq struct {
	OrderID int64 `json:"orderID"`
}

type Order struct {
	ID                   int64  `json:"id"`
	OrderRef             string `json:"orderRef"`
	Status               string `json:"status"`
	Receiver             string `json:"receiver"`
	Address              string `json:"address"`
	Phone                string `json:"phone"`
	TrackingNumber       string `json:"trackingNumber,omitempty"`
	ReturnTrackingNumber string `json:"returnTrackingNumber,omitempty"`
	OriginalPrice        int64  `json:"originalPrice"`
	CouponDiscount       int64  `json:"couponDiscount,omitempty"`
	PointsDiscount       int64  `json:"pointsDiscount,omitempty"`
	FinalPrice           int64  `json:"finalPrice"`
	DeliveredAt          int64  `json:"deliveredAt,omitempty"`
	Confirmed            bool   `json:"confirmed,omitempty"`
	ReturnReason         string `json:"returnReason,omitempty"`
	ReturnMethod         string `json:"returnMethod,omitempty"`
	ReturnShippingFee    int64  `json:"returnShippingFee,omitempty"`
	Items                []Item `json:"items,omitempty"`
	Ctime                int64  `json:"ctime"`
}

type Item struct {
	ProductID   int64  `json:"productID"`
	ProductName string `json:"productName"`
	Size        string `json:"size,omitempty"`
	Quantity    int64  `json:"quantity"`
	UnitPrice   int64  `json:"unitPrice"`
}

func toOrderVO(o domain.Order) Order {
	return Order{
		ID:                   o.ID,
		OrderRef:             o.OrderRef,
		Status:               string(o.Status),
		Receiver:             o.Receiver,
		Address:              o.Address,
		Phone:                o.Phone,
		TrackingNumber:       o.TrackingNumber,
		ReturnTrackingNumber: o.ReturnTrackingNumber,
		OriginalPrice:        o.OriginalPrice,
		CouponDiscount:       o.CouponDiscount,
		PointsDiscount:       o.PointsDiscount,
		FinalPrice:           o.FinalPrice,
		DeliveredAt:          o.DeliveredAt,
		Confirmed:            o.Confirmed,
		ReturnReason:         string(o.ReturnReason),
		ReturnMethod:         string(o.ReturnMethod),
		ReturnShippingFee:    o.ReturnShippingFee,
		Items: slice.Map(o.Items, func(idx int, src domain.Item) Item {
			return Item{
				ProductID:   src.ProductID,
				ProductName: src.ProductName,
				Size:        src.Size,
				Quantity:    src.Quantity,
				UnitPrice:   src.UnitPrice,
			}
		}),
		Ctime: o.Ctime,
	}
}

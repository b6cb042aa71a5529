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

package toss

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/capshop/internal/payment/internal/domain"
	"github.com/go-resty/resty/v2"
	"github.com/gotomicro/ego/core/elog"
)

var (
	// ErrGatewayFailure 网关确认或退款失败, 携带网关原始错误信息, 仅写日志不透出给用户
	ErrGatewayFailure = errors.New("支付网关调用失败")
)

// 网关确认成功的终态
const statusDone = "DONE"

// Client 支付网关客户端, 秘钥以 HTTP Basic 认证方式携带
// 确认扣款不做重试, 重复扣款不安全, 重试责任在调用方
type Client struct {
	client *resty.Client
	logger *elog.Component
}

func NewClient(baseURL, secretKey string, timeout time.Duration) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetBasicAuth(secretKey, "").
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")
	return &Client{client: client, logger: elog.DefaultLogger}
}

type confirmRequest struct {
	PaymentKey string `json:"paymentKey"`
	OrderID    string `json:"orderId"`
	Amount     int64  `json:"amount"`
}

type confirmResponse struct {
	PaymentKey string `json:"paymentKey"`
	OrderID    string `json:"orderId"`
	Status     string `json:"status"`
	Method     string `json:"method"`
	ApprovedAt string `json:"approvedAt"`
}

type cancelRequest struct {
	CancelReason string `json:"cancelReason"`
	CancelAmount *int64 `json:"cancelAmount,omitempty"`
}

type gatewayError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ConfirmCapture 确认扣款, 仅网关返回 DONE 视为成功
func (c *Client) ConfirmCapture(ctx context.Context, paymentKey, orderRef string, amount int64) (domain.Capture, error) {
	var (
		res   confirmResponse
		gwErr gatewayError
	)
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(confirmRequest{PaymentKey: paymentKey, OrderID: orderRef, Amount: amount}).
		SetResult(&res).
		SetError(&gwErr).
		Post("/v1/payments/confirm")
	if err != nil {
		return domain.Capture{}, fmt.Errorf("%w: %w", ErrGatewayFailure, err)
	}
	if resp.IsError() {
		c.logger.Error("网关确认扣款被拒绝",
			elog.String("orderRef", orderRef),
			elog.String("code", gwErr.Code),
			elog.String("message", gwErr.Message))
		return domain.Capture{}, fmt.Errorf("%w: code=%s, message=%s", ErrGatewayFailure, gwErr.Code, gwErr.Message)
	}
	if res.Status != statusDone {
		c.logger.Error("网关确认扣款状态非终态",
			elog.String("orderRef", orderRef),
			elog.String("status", res.Status))
		return domain.Capture{}, fmt.Errorf("%w: status=%s", ErrGatewayFailure, res.Status)
	}
	return domain.Capture{
		PaymentKey: res.PaymentKey,
		OrderRef:   res.OrderID,
		Amount:     amount,
		Method:     res.Method,
		ApprovedAt: c.parseApprovedAt(res.ApprovedAt),
	}, nil
}

// CancelOrRefund 取消或退款, amount 为 nil 表示全额
func (c *Client) CancelOrRefund(ctx context.Context, paymentKey, reason string, amount *int64) error {
	var gwErr gatewayError
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(cancelRequest{CancelReason: reason, CancelAmount: amount}).
		SetError(&gwErr).
		Post(fmt.Sprintf("/v1/payments/%s/cancel", paymentKey))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrGatewayFailure, err)
	}
	if resp.IsError() {
		c.logger.Error("网关取消或退款被拒绝",
			elog.String("paymentKey", paymentKey),
			elog.String("code", gwErr.Code),
			elog.String("message", gwErr.Message))
		return fmt.Errorf("%w: code=%s, message=%s", ErrGatewayFailure, gwErr.Code, gwErr.Message)
	}
	return nil
}

func (c *Client) parseApprovedAt(val string) int64 {
	if val == "" {
		return time.Now().UnixMilli()
	}
	t, err := time.Parse(time.RFC3339, val)
	if err != nil {
		return time.Now().UnixMilli()
	}
	return t.UnixMilli()
}

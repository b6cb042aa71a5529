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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ConfirmCapture(t *testing.T) {
	t.Parallel()

	t.Run("确认成功", func(t *testing.T) {
		t.Parallel()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/payments/confirm", r.URL.Path)
			username, _, ok := r.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "test_sk_secret", username)

			var req map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "pay_key_01", req["paymentKey"])
			assert.Equal(t, "ORD20240102-1234abcd", req["orderId"])
			assert.Equal(t, float64(40000), req["amount"])

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{
				"paymentKey": "pay_key_01",
				"orderId":    "ORD20240102-1234abcd",
				"status":     "DONE",
				"method":     "카드",
				"approvedAt": "2024-01-02T12:00:00+09:00",
			})
		}))
		defer server.Close()

		client := NewClient(server.URL, "test_sk_secret", time.Second)
		capture, err := client.ConfirmCapture(context.Background(), "pay_key_01", "ORD20240102-1234abcd", 40000)

		require.NoError(t, err)
		assert.Equal(t, "pay_key_01", capture.PaymentKey)
		assert.Equal(t, "ORD20240102-1234abcd", capture.OrderRef)
		assert.Equal(t, int64(40000), capture.Amount)
		assert.Equal(t, "카드", capture.Method)
		assert.NotZero(t, capture.ApprovedAt)
	})

	t.Run("非DONE状态视为失败", func(t *testing.T) {
		t.Parallel()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"status": "WAITING_FOR_DEPOSIT",
			})
		}))
		defer server.Close()

		client := NewClient(server.URL, "test_sk_secret", time.Second)
		_, err := client.ConfirmCapture(context.Background(), "pay_key_01", "ORD20240102-1234abcd", 40000)

		assert.ErrorIs(t, err, ErrGatewayFailure)
	})

	t.Run("网关拒绝携带错误信息", func(t *testing.T) {
		t.Parallel()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"code":    "NOT_FOUND_PAYMENT",
				"message": "존재하지 않는 결제 입니다.",
			})
		}))
		defer server.Close()

		client := NewClient(server.URL, "test_sk_secret", time.Second)
		_, err := client.ConfirmCapture(context.Background(), "pay_key_01", "ORD20240102-1234abcd", 40000)

		require.ErrorIs(t, err, ErrGatewayFailure)
		assert.ErrorContains(t, err, "NOT_FOUND_PAYMENT")
		assert.ErrorContains(t, err, "존재하지 않는 결제 입니다.")
	})
}

func TestClient_CancelOrRefund(t *testing.T) {
	t.Parallel()

	t.Run("全额取消不携带金额", func(t *testing.T) {
		t.Parallel()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/payments/pay_key_01/cancel", r.URL.Path)

			var req map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "고객 변심", req["cancelReason"])
			_, hasAmount := req["cancelAmount"]
			assert.False(t, hasAmount)

			_ = json.NewEncoder(w).Encode(map[string]any{"status": "CANCELED"})
		}))
		defer server.Close()

		client := NewClient(server.URL, "test_sk_secret", time.Second)
		err := client.CancelOrRefund(context.Background(), "pay_key_01", "고객 변심", nil)

		assert.NoError(t, err)
	})

	t.Run("部分退款携带金额", func(t *testing.T) {
		t.Parallel()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, float64(47000), req["cancelAmount"])

			_ = json.NewEncoder(w).Encode(map[string]any{"status": "PARTIAL_CANCELED"})
		}))
		defer server.Close()

		amount := int64(47000)
		client := NewClient(server.URL, "test_sk_secret", time.Second)
		err := client.CancelOrRefund(context.Background(), "pay_key_01", "단순 변심 반품", &amount)

		assert.NoError(t, err)
	})

	t.Run("网关拒绝返回错误", func(t *testing.T) {
		t.Parallel()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"code":    "ALREADY_CANCELED_PAYMENT",
				"message": "이미 취소된 결제 입니다.",
			})
		}))
		defer server.Close()

		client := NewClient(server.URL, "test_sk_secret", time.Second)
		err := client.CancelOrRefund(context.Background(), "pay_key_01", "고객 변심", nil)

		assert.ErrorIs(t, err, ErrGatewayFailure)
		assert.ErrorContains(t, err, "ALREADY_CANCELED_PAYMENT")
	})
}

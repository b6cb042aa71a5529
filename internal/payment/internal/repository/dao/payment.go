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

package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
)

type PaymentDAO interface {
	// CreateTx 结算事务内落库支付记录
	CreateTx(tx *egorm.Component, p Payment) (int64, error)
	FindByOrderID(ctx context.Context, orderID int64) (Payment, error)
	FindByOrderRef(ctx context.Context, orderRef string) (Payment, error)
	// UpdateStatusTx 订单取消或退货事务内变更支付状态
	UpdateStatusTx(tx *egorm.Component, orderID int64, status string) error
}

func NewPaymentGORMDAO(db *egorm.Component) PaymentDAO {
	return &gormPaymentDAO{db: db}
}

type gormPaymentDAO struct {
	db *egorm.Component
}

func (g *gormPaymentDAO) CreateTx(tx *egorm.Component, p Payment) (int64, error) {
	now := time.Now().UnixMilli()
	p.Ctime, p.Utime = now, now
	err := tx.Create(&p).Error
	return p.ID, err
}

func (g *gormPaymentDAO) FindByOrderID(ctx context.Context, orderID int64) (Payment, error) {
	var res Payment
	err := g.db.WithContext(ctx).Where("order_id = ?", orderID).First(&res).Error
	return res, err
}

func (g *gormPaymentDAO) FindByOrderRef(ctx context.Context, orderRef string) (Payment, error) {
	var res Payment
	err := g.db.WithContext(ctx).Where("order_ref = ?", orderRef).First(&res).Error
	return res, err
}

func (g *gormPaymentDAO) UpdateStatusTx(tx *egorm.Component, orderID int64, status string) error {
	now := time.Now().UnixMilli()
	return tx.Model(&Payment{}).
		Where("order_id = ?", orderID).
		Updates(map[string]any{
			"status":      status,
			"canceled_at": now,
			"utime":       now,
		}).Error
}

// Payment 支付记录表
type Payment struct {
	ID          int64  `gorm:"primaryKey,autoIncrement;comment:支付记录自增ID"`
	OrderID     int64  `gorm:"not null;uniqueIndex:uniq_order_id;comment:订单ID,一单一支付"`
	OrderRef    string `gorm:"type:varchar(64);not null;index:idx_order_ref;comment:商户订单号"`
	PaymentKey  string `gorm:"type:varchar(255);not null;comment:网关支付凭证"`
	Method      string `gorm:"type:varchar(32);not null;comment:支付方式,网关返回原文"`
	Amount      int64  `gorm:"not null;comment:实际扣款金额"`
	Status      string `gorm:"type:varchar(32);not null;comment:状态 READY/APPROVED/FAILED/CANCELED/REFUNDED/PARTIAL_REFUNDED"`
	RequestedAt int64  `gorm:"not null;default:0;comment:发起支付时间"`
	ApprovedAt  int64  `gorm:"not null;default:0;comment:网关确认时间"`
	CanceledAt  int64  `gorm:"not null;default:0;comment:取消或退款时间"`
	FailReason  string `gorm:"type:varchar(512);not null;default:'';comment:失败原因"`
	Ctime       int64
	Utime       int64
}

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
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var (
	// ErrOrderChanged 状态守卫更新未命中, 订单已被并发修改
	ErrOrderChanged = errors.New("订单已被并发修改")
)

type OrderDAO interface {
	// Transaction 结算、取消、退货共用的单事务入口
	Transaction(ctx context.Context, fn func(tx *egorm.Component) error) error
	CreateTx(tx *egorm.Component, o Order, items []OrderItem) (int64, error)
	FindByID(ctx context.Context, id int64) (Order, error)
	FindByIDAndUID(ctx context.Context, id, uid int64) (Order, error)
	FindByOrderRef(ctx context.Context, orderRef string) (Order, error)
	FindItemsByOrderID(ctx context.Context, orderID int64) ([]OrderItem, error)
	ListByUID(ctx context.Context, uid int64, offset, limit int) ([]Order, error)
	CountByUID(ctx context.Context, uid int64) (int64, error)
	ListByStatus(ctx context.Context, status string, offset, limit int) ([]Order, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	// UpdateStatus 状态守卫更新, 未命中返回 ErrOrderChanged
	UpdateStatus(ctx context.Context, id int64, fromStatus, toStatus string, updates map[string]any) error
	UpdateStatusTx(tx *egorm.Component, id int64, fromStatus, toStatus string, updates map[string]any) error
	// Confirm 确认收货, 仅 DELIVERED 且未确认时命中
	Confirm(ctx context.Context, id, confirmedAt int64) error
	// FindAutoConfirmable 送达超期未确认的订单
	FindAutoConfirmable(ctx context.Context, deliveredBefore int64, limit int) ([]Order, error)
}

func NewOrderGORMDAO(db *egorm.Component) OrderDAO {
	return &gormOrderDAO{db: db}
}

type gormOrderDAO struct {
	db *egorm.Component
}

func (g *gormOrderDAO) Transaction(ctx context.Context, fn func(tx *egorm.Component) error) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(tx)
	})
}

func (g *gormOrderDAO) CreateTx(tx *egorm.Component, o Order, items []OrderItem) (int64, error) {
	now := time.Now().UnixMilli()
	o.Ctime, o.Utime = now, now
	if err := tx.Create(&o).Error; err != nil {
		return 0, err
	}
	for i := range items {
		items[i].OrderID = o.ID
		items[i].Ctime, items[i].Utime = now, now
	}
	if err := tx.Create(&items).Error; err != nil {
		return 0, err
	}
	return o.ID, nil
}

func (g *gormOrderDAO) FindByID(ctx context.Context, id int64) (Order, error) {
	var res Order
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (g *gormOrderDAO) FindByIDAndUID(ctx context.Context, id, uid int64) (Order, error) {
	var res Order
	err := g.db.WithContext(ctx).Where("id = ? AND uid = ?", id, uid).First(&res).Error
	return res, err
}

func (g *gormOrderDAO) FindByOrderRef(ctx context.Context, orderRef string) (Order, error) {
	var res Order
	err := g.db.WithContext(ctx).Where("order_ref = ?", orderRef).First(&res).Error
	return res, err
}

func (g *gormOrderDAO) FindItemsByOrderID(ctx context.Context, orderID int64) ([]OrderItem, error) {
	var res []OrderItem
	err := g.db.WithContext(ctx).Where("order_id = ?", orderID).Find(&res).Error
	return res, err
}

func (g *gormOrderDAO) ListByUID(ctx context.Context, uid int64, offset, limit int) ([]Order, error) {
	var res []Order
	err := g.db.WithContext(ctx).
		Where("uid = ?", uid).
		Offset(offset).Limit(limit).Order("id DESC").Find(&res).Error
	return res, err
}

func (g *gormOrderDAO) CountByUID(ctx context.Context, uid int64) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Order{}).Where("uid = ?", uid).Count(&count).Error
	return count, err
}

func (g *gormOrderDAO) ListByStatus(ctx context.Context, status string, offset, limit int) ([]Order, error) {
	var res []Order
	err := g.db.WithContext(ctx).
		Where("status = ?", status).
		Offset(offset).Limit(limit).Order("id DESC").Find(&res).Error
	return res, err
}

func (g *gormOrderDAO) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Order{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (g *gormOrderDAO) UpdateStatus(ctx context.Context, id int64, fromStatus, toStatus string, updates map[string]any) error {
	return g.updateStatus(g.db.WithContext(ctx), id, fromStatus, toStatus, updates)
}

func (g *gormOrderDAO) UpdateStatusTx(tx *egorm.Component, id int64, fromStatus, toStatus string, updates map[string]any) error {
	return g.updateStatus(tx, id, fromStatus, toStatus, updates)
}

func (g *gormOrderDAO) updateStatus(db *gorm.DB, id int64, fromStatus, toStatus string, updates map[string]any) error {
	if updates == nil {
		updates = make(map[string]any, 2)
	}
	updates["status"] = toStatus
	updates["utime"] = time.Now().UnixMilli()
	res := db.Model(&Order{}).
		Where("id = ? AND status = ?", id, fromStatus).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrOrderChanged
	}
	return nil
}

func (g *gormOrderDAO) Confirm(ctx context.Context, id, confirmedAt int64) error {
	res := g.db.WithContext(ctx).Model(&Order{}).
		Where("id = ? AND status = ? AND confirmed = ?", id, "DELIVERED", false).
		Updates(map[string]any{
			"confirmed":    true,
			"confirmed_at": confirmedAt,
			"utime":        time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrOrderChanged
	}
	return nil
}

func (g *gormOrderDAO) FindAutoConfirmable(ctx context.Context, deliveredBefore int64, limit int) ([]Order, error) {
	var res []Order
	err := g.db.WithContext(ctx).
		Where("status = ? AND confirmed = ? AND delivered_at > 0 AND delivered_at < ?",
			"DELIVERED", false, deliveredBefore).
		Limit(limit).Order("id ASC").Find(&res).Error
	return res, err
}

// Order 订单表, 仅状态流转, 永不物理删除
type Order struct {
	ID       int64  `gorm:"primaryKey,autoIncrement;comment:订单自增ID"`
	OrderRef string `gorm:"type:varchar(64);not null;uniqueIndex:uniq_order_ref;comment:商户订单号"`
	UID      int64  `gorm:"not null;index:idx_uid;comment:用户ID"`
	Status   string `gorm:"type:varchar(32);not null;index:idx_status;comment:状态 ORDERED/SHIPPED/DELIVERED/CANCELLED/RETURN_REQUESTED/RETURN_SHIPPING/RETURNED"`

	Receiver             string `gorm:"type:varchar(64);not null;comment:收货人"`
	Address              string `gorm:"type:varchar(512);not null;comment:收货地址"`
	Phone                string `gorm:"type:varchar(32);not null;comment:收货人电话"`
	TrackingNumber       string `gorm:"type:varchar(64);not null;default:'';comment:发货物流单号"`
	ReturnTrackingNumber string `gorm:"type:varchar(64);not null;default:'';comment:退货物流单号"`

	OriginalPrice  int64 `gorm:"not null;comment:折扣前原价"`
	CouponDiscount int64 `gorm:"not null;default:0;comment:优惠券折扣"`
	PointsDiscount int64 `gorm:"not null;default:0;comment:积分抵扣"`
	FinalPrice     int64 `gorm:"not null;comment:应付金额"`
	UserCouponID   int64 `gorm:"not null;default:0;comment:核销的用户优惠券ID,未用券为0"`

	DeliveredAt int64 `gorm:"not null;default:0;comment:送达时间"`
	Confirmed   bool  `gorm:"not null;default:false;comment:是否已确认收货"`
	ConfirmedAt int64 `gorm:"not null;default:0;comment:确认收货时间"`

	ReturnReason      string `gorm:"type:varchar(32);not null;default:'';comment:退货原因 DEFECT/CHANGE_OF_MIND"`
	ReturnMethod      string `gorm:"type:varchar(16);not null;default:'';comment:退货方式 PICKUP/SELF"`
	ReturnShippingFee int64  `gorm:"not null;default:0;comment:用户承担的退货运费"`

	Ctime int64
	Utime int64
}

// OrderItem 订单行表, 随订单创建, 单价为下单时刻快照
type OrderItem struct {
	ID          int64  `gorm:"primaryKey,autoIncrement;comment:订单行自增ID"`
	OrderID     int64  `gorm:"not null;index:idx_order_id;comment:订单ID"`
	ProductID   int64  `gorm:"not null;comment:商品ID"`
	ProductName string `gorm:"type:varchar(128);not null;comment:商品名称快照"`
	Size        string `gorm:"type:varchar(16);not null;default:'';comment:尺码,单一尺码商品为空"`
	Quantity    int64  `gorm:"not null;comment:购买数量"`
	UnitPrice   int64  `gorm:"not null;comment:单价快照"`
	Ctime       int64
	Utime       int64
}

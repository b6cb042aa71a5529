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
	"github.com/go-sql-driver/mysql"
)

var (
	// ErrDuplicatedCouponCode 优惠券码唯一索引冲突
	ErrDuplicatedCouponCode = errors.New("优惠券码重复")
	// ErrUserCouponChanged 状态守卫更新未命中, 记录已被并发修改
	ErrUserCouponChanged = errors.New("用户优惠券已被并发修改")
)

type CouponDAO interface {
	CreateCoupon(ctx context.Context, c Coupon) (int64, error)
	FindCouponByID(ctx context.Context, id int64) (Coupon, error)
	FindCouponByCode(ctx context.Context, code string) (Coupon, error)
	ListCoupons(ctx context.Context, offset, limit int) ([]Coupon, error)
	CountCoupons(ctx context.Context) (int64, error)
	UpdateCouponActive(ctx context.Context, id int64, active bool) error

	CreateUserCoupon(ctx context.Context, uc UserCoupon) (int64, error)
	CountUserCoupons(ctx context.Context, uid, couponID int64) (int64, error)
	FindUserCouponsByUID(ctx context.Context, uid int64) ([]UserCoupon, error)
	FindUserCouponByIDAndUID(ctx context.Context, id, uid int64) (UserCoupon, error)
	// FindUserCouponByIDAndUIDTx 结算事务内读取, 与守卫更新配套
	FindUserCouponByIDAndUIDTx(tx *egorm.Component, id, uid int64) (UserCoupon, error)
	// MarkUsed 守卫更新, 仅 AVAILABLE 状态命中, 未命中返回 ErrUserCouponChanged
	MarkUsed(tx *egorm.Component, id, orderID, discountAmount int64) error
	ExpireBefore(ctx context.Context, now int64) (int64, error)
}

func NewCouponGORMDAO(db *egorm.Component) CouponDAO {
	return &gormCouponDAO{db: db}
}

type gormCouponDAO struct {
	db *egorm.Component
}

func (g *gormCouponDAO) CreateCoupon(ctx context.Context, c Coupon) (int64, error) {
	now := time.Now().UnixMilli()
	c.Ctime, c.Utime = now, now
	err := g.db.WithContext(ctx).Create(&c).Error
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) {
			const uniqueIndexErrNo uint16 = 1062
			if me.Number == uniqueIndexErrNo {
				return 0, ErrDuplicatedCouponCode
			}
		}
		return 0, err
	}
	return c.ID, nil
}

func (g *gormCouponDAO) FindCouponByID(ctx context.Context, id int64) (Coupon, error) {
	var res Coupon
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (g *gormCouponDAO) FindCouponByCode(ctx context.Context, code string) (Coupon, error) {
	var res Coupon
	err := g.db.WithContext(ctx).Where("code = ?", code).First(&res).Error
	return res, err
}

func (g *gormCouponDAO) ListCoupons(ctx context.Context, offset, limit int) ([]Coupon, error) {
	var res []Coupon
	err := g.db.WithContext(ctx).
		Offset(offset).Limit(limit).Order("id DESC").Find(&res).Error
	return res, err
}

func (g *gormCouponDAO) CountCoupons(ctx context.Context) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Coupon{}).Count(&count).Error
	return count, err
}

func (g *gormCouponDAO) UpdateCouponActive(ctx context.Context, id int64, active bool) error {
	return g.db.WithContext(ctx).Model(&Coupon{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"active": active,
			"utime":  time.Now().UnixMilli(),
		}).Error
}

func (g *gormCouponDAO) CreateUserCoupon(ctx context.Context, uc UserCoupon) (int64, error) {
	now := time.Now().UnixMilli()
	uc.Ctime, uc.Utime = now, now
	err := g.db.WithContext(ctx).Create(&uc).Error
	return uc.ID, err
}

func (g *gormCouponDAO) CountUserCoupons(ctx context.Context, uid, couponID int64) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&UserCoupon{}).
		Where("uid = ? AND coupon_id = ?", uid, couponID).Count(&count).Error
	return count, err
}

func (g *gormCouponDAO) FindUserCouponsByUID(ctx context.Context, uid int64) ([]UserCoupon, error) {
	var res []UserCoupon
	err := g.db.WithContext(ctx).
		Where("uid = ?", uid).Order("id DESC").Find(&res).Error
	return res, err
}

func (g *gormCouponDAO) FindUserCouponByIDAndUID(ctx context.Context, id, uid int64) (UserCoupon, error) {
	var res UserCoupon
	err := g.db.WithContext(ctx).Where("id = ? AND uid = ?", id, uid).First(&res).Error
	return res, err
}

func (g *gormCouponDAO) FindUserCouponByIDAndUIDTx(tx *egorm.Component, id, uid int64) (UserCoupon, error) {
	var res UserCoupon
	err := tx.Where("id = ? AND uid = ?", id, uid).First(&res).Error
	return res, err
}

func (g *gormCouponDAO) MarkUsed(tx *egorm.Component, id, orderID, discountAmount int64) error {
	res := tx.Model(&UserCoupon{}).
		Where("id = ? AND status = ?", id, "AVAILABLE").
		Updates(map[string]any{
			"status":          "USED",
			"used_order_id":   orderID,
			"discount_amount": discountAmount,
			"utime":           time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserCouponChanged
	}
	return nil
}

func (g *gormCouponDAO) ExpireBefore(ctx context.Context, now int64) (int64, error) {
	res := g.db.WithContext(ctx).Model(&UserCoupon{}).
		Where("status = ? AND valid_until <= ?", "AVAILABLE", now).
		Updates(map[string]any{
			"status": "EXPIRED",
			"utime":  now,
		})
	return res.RowsAffected, res.Error
}

// Coupon 优惠券模板表
type Coupon struct {
	ID                int64  `gorm:"primaryKey,autoIncrement;comment:优惠券模板自增ID"`
	Code              string `gorm:"type:varchar(64);not null;uniqueIndex:uniq_coupon_code;comment:优惠券码"`
	Name              string `gorm:"type:varchar(128);not null;comment:优惠券名称"`
	DiscountType      string `gorm:"type:varchar(16);not null;comment:折扣类型 PERCENTAGE=百分比 FIXED=固定金额"`
	DiscountValue     int64  `gorm:"not null;comment:折扣值,百分比类型为百分数,固定类型为金额"`
	MinOrderAmount    int64  `gorm:"not null;default:0;comment:最低消费金额,0表示无限制"`
	MaxDiscountAmount int64  `gorm:"not null;default:0;comment:最大折扣金额,仅百分比类型生效,0表示无上限"`
	Reusable          bool   `gorm:"not null;default:false;comment:同一用户是否可重复领取"`
	Active            bool   `gorm:"not null;default:true;comment:是否可领取"`
	Ctime             int64
	Utime             int64
}

// UserCoupon 用户优惠券表
type UserCoupon struct {
	ID             int64  `gorm:"primaryKey,autoIncrement;comment:用户优惠券自增ID"`
	UID            int64  `gorm:"not null;index:idx_uid;comment:用户ID"`
	CouponID       int64  `gorm:"not null;index:idx_coupon_id;comment:优惠券模板ID"`
	Status         string `gorm:"type:varchar(16);not null;default:'AVAILABLE';index:idx_status_valid_until,priority:1;comment:状态 AVAILABLE=可用 USED=已用 EXPIRED=已过期"`
	IssuedAt       int64  `gorm:"not null;comment:发放时间"`
	ValidFrom      int64  `gorm:"not null;comment:生效时间"`
	ValidUntil     int64  `gorm:"not null;index:idx_status_valid_until,priority:2;comment:失效时间"`
	UsedOrderID    int64  `gorm:"not null;default:0;comment:核销订单ID,未使用为0"`
	DiscountAmount int64  `gorm:"not null;default:0;comment:核销时实际折扣金额"`
	Ctime          int64
	Utime          int64
}

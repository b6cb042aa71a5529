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
	"fmt"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var (
	// ErrInsufficientPoints 余额不足以扣减
	ErrInsufficientPoints = errors.New("积分不足")
	// ErrRecordChangedConcurrently 版本守卫更新未命中
	ErrRecordChangedConcurrently = errors.New("积分记录已被并发修改")
)

type PointsDAO interface {
	FindByUID(ctx context.Context, uid int64) (Points, error)
	FindLogsByUID(ctx context.Context, uid int64, offset, limit int) ([]PointsLog, error)
	CountLogsByUID(ctx context.Context, uid int64) (int64, error)
	// Add 独立事务内增加积分
	Add(ctx context.Context, uid, amount int64, l PointsLog) error
	// AddTx 结算事务内增加积分
	AddTx(tx *egorm.Component, uid, amount int64, l PointsLog) error
	// UseTx 结算事务内扣减积分, 余额不足返回 ErrInsufficientPoints
	UseTx(tx *egorm.Component, uid, amount int64, l PointsLog) error
}

func NewPointsGORMDAO(db *egorm.Component) PointsDAO {
	return &gormPointsDAO{db: db}
}

type gormPointsDAO struct {
	db *egorm.Component
}

func (g *gormPointsDAO) FindByUID(ctx context.Context, uid int64) (Points, error) {
	var res Points
	err := g.db.WithContext(ctx).Where("uid = ?", uid).First(&res).Error
	return res, err
}

func (g *gormPointsDAO) FindLogsByUID(ctx context.Context, uid int64, offset, limit int) ([]PointsLog, error) {
	var res []PointsLog
	err := g.db.WithContext(ctx).
		Where("uid = ?", uid).
		Offset(offset).Limit(limit).Order("id DESC").Find(&res).Error
	return res, err
}

func (g *gormPointsDAO) CountLogsByUID(ctx context.Context, uid int64) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&PointsLog{}).Where("uid = ?", uid).Count(&count).Error
	return count, err
}

func (g *gormPointsDAO) Add(ctx context.Context, uid, amount int64, l PointsLog) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return g.add(tx, uid, amount, l)
	})
}

func (g *gormPointsDAO) AddTx(tx *egorm.Component, uid, amount int64, l PointsLog) error {
	return g.add(tx, uid, amount, l)
}

func (g *gormPointsDAO) add(tx *gorm.DB, uid, amount int64, l PointsLog) error {
	now := time.Now().UnixMilli()
	var p Points
	res := tx.Where(Points{UID: uid}).
		Attrs(Points{Balance: amount, Ctime: now, Utime: now}).
		FirstOrCreate(&p)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// 已有积分主记录, 版本守卫更新余额
		version := p.Version
		p.Balance += amount
		p.Version++
		guarded := tx.Model(&Points{}).
			Where("uid = ? AND version = ?", uid, version).
			Updates(map[string]any{
				"balance": p.Balance,
				"version": p.Version,
				"utime":   now,
			})
		if guarded.Error != nil {
			return fmt.Errorf("更新积分失败: %w", guarded.Error)
		}
		if guarded.RowsAffected == 0 {
			return ErrRecordChangedConcurrently
		}
	}
	l.UID = uid
	l.ChangeAmount = amount
	l.BalanceAfter = p.Balance
	l.Ctime, l.Utime = now, now
	return tx.Create(&l).Error
}

func (g *gormPointsDAO) UseTx(tx *egorm.Component, uid, amount int64, l PointsLog) error {
	now := time.Now().UnixMilli()
	var p Points
	if err := tx.Where("uid = ?", uid).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: uid=%d", ErrInsufficientPoints, uid)
		}
		return err
	}
	if p.Balance < amount {
		return fmt.Errorf("%w: 余额 %d, 需要 %d", ErrInsufficientPoints, p.Balance, amount)
	}
	guarded := tx.Model(&Points{}).
		Where("uid = ? AND version = ? AND balance >= ?", uid, p.Version, amount).
		Updates(map[string]any{
			"balance": gorm.Expr("balance - ?", amount),
			"version": p.Version + 1,
			"utime":   now,
		})
	if guarded.Error != nil {
		return fmt.Errorf("扣减积分失败: %w", guarded.Error)
	}
	if guarded.RowsAffected == 0 {
		return ErrRecordChangedConcurrently
	}
	l.UID = uid
	l.ChangeAmount = -amount
	l.BalanceAfter = p.Balance - amount
	l.Ctime, l.Utime = now, now
	return tx.Create(&l).Error
}

// Points 积分主记录表
type Points struct {
	ID      int64 `gorm:"primaryKey,autoIncrement;comment:积分主记录自增ID"`
	UID     int64 `gorm:"not null;uniqueIndex:uniq_uid;comment:用户ID"`
	Balance int64 `gorm:"not null;default:0;comment:可用积分,永不为负"`
	Version int64 `gorm:"not null;default:1;comment:乐观锁版本号"`
	Ctime   int64
	Utime   int64
}

// PointsLog 积分流水表
type PointsLog struct {
	ID           int64  `gorm:"primaryKey,autoIncrement;comment:积分流水自增ID"`
	UID          int64  `gorm:"not null;index:idx_uid;comment:用户ID"`
	ChangeAmount int64  `gorm:"not null;comment:变动积分,正为增加负为扣减"`
	BalanceAfter int64  `gorm:"not null;comment:变动后余额"`
	Biz          string `gorm:"type:varchar(32);not null;comment:业务类型 order=订单 review=评价"`
	BizID        int64  `gorm:"not null;default:0;index:idx_biz_id;comment:业务ID"`
	Desc         string `gorm:"type:varchar(256);not null;comment:变动描述"`
	Ctime        int64
	Utime        int64
}

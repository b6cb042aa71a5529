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
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartDAO interface {
	Upsert(ctx context.Context, item CartItem) (int64, error)
	FindByUID(ctx context.Context, uid int64) ([]CartItem, error)
	Delete(ctx context.Context, uid, id int64) error
	// DeleteAllByUID 在调用方事务内清空用户购物车, 结算成功时调用
	DeleteAllByUID(tx *egorm.Component, uid int64) error
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&CartItem{})
}

type cartDAO struct {
	db *egorm.Component
}

func NewCartGORMDAO(db *egorm.Component) CartDAO {
	return &cartDAO{db: db}
}

func (d *cartDAO) Upsert(ctx context.Context, item CartItem) (int64, error) {
	now := time.Now().UnixMilli()
	item.Ctime, item.Utime = now, now
	// 同一(用户, 商品, 尺码)重复加购时累加数量
	err := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "uid"}, {Name: "product_id"}, {Name: "size"}},
		DoUpdates: clause.Assignments(map[string]any{
			"quantity": gorm.Expr("quantity + ?", item.Quantity),
			"utime":    now,
		}),
	}).Create(&item).Error
	return item.Id, err
}

func (d *cartDAO) FindByUID(ctx context.Context, uid int64) ([]CartItem, error) {
	var res []CartItem
	err := d.db.WithContext(ctx).Where("uid = ?", uid).
		Order("ctime ASC").
		Find(&res).Error
	return res, err
}

func (d *cartDAO) Delete(ctx context.Context, uid, id int64) error {
	return d.db.WithContext(ctx).
		Where("uid = ? AND id = ?", uid, id).
		Delete(&CartItem{}).Error
}

func (d *cartDAO) DeleteAllByUID(tx *egorm.Component, uid int64) error {
	return tx.Where("uid = ?", uid).Delete(&CartItem{}).Error
}

type CartItem struct {
	Id        int64  `gorm:"primaryKey;autoIncrement;comment:购物车行自增ID"`
	Uid       int64  `gorm:"not null;uniqueIndex:uniq_uid_product_size;comment:用户ID"`
	ProductID int64  `gorm:"column:product_id;not null;uniqueIndex:uniq_uid_product_size;comment:商品自增ID"`
	Size      string `gorm:"type:varchar(32);not null;default:'';uniqueIndex:uniq_uid_product_size;comment:尺码,空串表示旧版单尺码"`
	Quantity  int64  `gorm:"not null;comment:购买数量"`
	Ctime     int64
	Utime     int64
}

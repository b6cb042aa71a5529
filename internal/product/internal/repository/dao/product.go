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

	"github.com/ecodeclub/capshop/internal/product/internal/domain"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var (
	// ErrInsufficientStock 库存不足, 或者请求的尺码没有库存记录
	ErrInsufficientStock = errors.New("库存不足")
)

type ProductDAO interface {
	FindByID(ctx context.Context, id int64) (Product, error)
	FindBySN(ctx context.Context, sn string) (Product, error)
	FindSizeStocks(ctx context.Context, productID int64) ([]ProductStock, error)
	List(ctx context.Context, offset int, limit int) ([]Product, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, p Product, stocks []ProductStock) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status uint8) error
	// ReserveStock 在调用方事务内预留库存, 带条件更新保证不超卖
	ReserveStock(tx *egorm.Component, productID int64, size string, quantity int64) error
	// ReleaseStock 在调用方事务内归还库存, 用于取消订单和反品入库
	ReleaseStock(tx *egorm.Component, productID int64, size string, quantity int64) error
}

type ProductGORMDAO struct {
	db *egorm.Component
}

func NewProductGORMDAO(db *egorm.Component) ProductDAO {
	return &ProductGORMDAO{db: db}
}

func (d *ProductGORMDAO) FindByID(ctx context.Context, id int64) (Product, error) {
	var res Product
	err := d.db.WithContext(ctx).Where("id = ? AND status = ?", id, domain.StatusOnShelf.ToUint8()).First(&res).Error
	return res, err
}

func (d *ProductGORMDAO) FindBySN(ctx context.Context, sn string) (Product, error) {
	var res Product
	err := d.db.WithContext(ctx).Where("sn = ? AND status = ?", sn, domain.StatusOnShelf.ToUint8()).First(&res).Error
	return res, err
}

func (d *ProductGORMDAO) FindSizeStocks(ctx context.Context, productID int64) ([]ProductStock, error) {
	var res []ProductStock
	err := d.db.WithContext(ctx).Where("product_id = ?", productID).
		Order("id ASC").
		Find(&res).Error
	return res, err
}

func (d *ProductGORMDAO) List(ctx context.Context, offset int, limit int) ([]Product, error) {
	var res []Product
	err := d.db.WithContext(ctx).Where("status = ?", domain.StatusOnShelf.ToUint8()).
		Order("ctime DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *ProductGORMDAO) Count(ctx context.Context) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Product{}).
		Where("status = ?", domain.StatusOnShelf.ToUint8()).Count(&res).Error
	return res, err
}

func (d *ProductGORMDAO) Create(ctx context.Context, p Product, stocks []ProductStock) (int64, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		p.Ctime, p.Utime = now, now
		if err := tx.Create(&p).Error; err != nil {
			return err
		}
		for i := range stocks {
			stocks[i].ProductID = p.Id
			stocks[i].Ctime, stocks[i].Utime = now, now
		}
		if len(stocks) == 0 {
			return nil
		}
		return tx.Create(&stocks).Error
	})
	return p.Id, err
}

func (d *ProductGORMDAO) UpdateStatus(ctx context.Context, id int64, status uint8) error {
	return d.db.WithContext(ctx).Model(&Product{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status": status,
			"utime":  time.Now().UnixMilli(),
		}).Error
}

func (d *ProductGORMDAO) ReserveStock(tx *egorm.Component, productID int64, size string, quantity int64) error {
	now := time.Now().UnixMilli()
	if size == "" {
		// 旧版单尺码商品, 直接扣商品行上的库存字段
		res := tx.Model(&Product{}).
			Where("id = ? AND stock >= ?", productID, quantity).
			Updates(map[string]any{
				"Stock": gorm.Expr("stock - ?", quantity),
				"Utime": now,
			})
		if res.Error != nil {
			return fmt.Errorf("扣减旧版库存失败: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: product_id=%d", ErrInsufficientStock, productID)
		}
		return nil
	}
	// 按(商品, 尺码)行扣减, 条件更新失败即库存不足。
	// 尺码记录不存在时 RowsAffected 同样为0, 等价于无库存, 不回退旧字段。
	res := tx.Model(&ProductStock{}).
		Where("product_id = ? AND size = ? AND quantity >= ?", productID, size, quantity).
		Updates(map[string]any{
			"Quantity": gorm.Expr("quantity - ?", quantity),
			"Utime":    now,
		})
	if res.Error != nil {
		return fmt.Errorf("扣减尺码库存失败: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: product_id=%d, size=%s", ErrInsufficientStock, productID, size)
	}
	return nil
}

func (d *ProductGORMDAO) ReleaseStock(tx *egorm.Component, productID int64, size string, quantity int64) error {
	now := time.Now().UnixMilli()
	if size == "" {
		return tx.Model(&Product{}).
			Where("id = ?", productID).
			Updates(map[string]any{
				"Stock": gorm.Expr("stock + ?", quantity),
				"Utime": now,
			}).Error
	}
	return tx.Model(&ProductStock{}).
		Where("product_id = ? AND size = ?", productID, size).
		Updates(map[string]any{
			"Quantity": gorm.Expr("quantity + ?", quantity),
			"Utime":    now,
		}).Error
}

type Product struct {
	Id          int64  `gorm:"primaryKey;autoIncrement;comment:商品自增ID"`
	SN          string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_product_sn;comment:商品序列号"`
	Name        string `gorm:"type:varchar(255);not null;comment:商品名称"`
	Description string `gorm:"not null;comment:商品描述"`
	Price       int64  `gorm:"not null;comment:商品单价;单位为韩元"`
	Stock       int64  `gorm:"not null;default:0;comment:旧版未分尺码库存,仅当没有尺码库存记录时使用"`
	Image       string `gorm:"type:varchar(512);not null;comment:商品缩略图,CDN绝对路径"`
	Status      uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:状态 1=下架 2=上架"`
	Ctime       int64
	Utime       int64
}

type ProductStock struct {
	Id        int64  `gorm:"primaryKey;autoIncrement;comment:尺码库存自增ID"`
	ProductID int64  `gorm:"column:product_id;not null;uniqueIndex:uniq_product_size;comment:商品自增ID"`
	Size      string `gorm:"type:varchar(32);not null;uniqueIndex:uniq_product_size;comment:尺码标签 S/M/L/XL/FREE"`
	Quantity  int64  `gorm:"not null;default:0;comment:该尺码的库存数量"`
	Ctime     int64
	Utime     int64
}

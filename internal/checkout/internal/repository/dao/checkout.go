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

	"github.com/ecodeclub/capshop/internal/checkout/internal/domain"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
)

var (
	// ErrDuplicatedOrderRef 订单号唯一索引冲突
	ErrDuplicatedOrderRef = errors.New("订单号重复")
)

type CheckoutDAO interface {
	Create(ctx context.Context, c Checkout) (int64, error)
	FindByOrderRef(ctx context.Context, orderRef string) (Checkout, error)
	FindByUIDAndOrderRef(ctx context.Context, uid int64, orderRef string) (Checkout, error)
	DeleteByID(tx *egorm.Component, id int64) error
	DeleteCreatedBefore(ctx context.Context, ctime int64) (int64, error)
}

func NewCheckoutGORMDAO(db *egorm.Component) CheckoutDAO {
	return &gormCheckoutDAO{db: db}
}

type gormCheckoutDAO struct {
	db *egorm.Component
}

func (g *gormCheckoutDAO) Create(ctx context.Context, c Checkout) (int64, error) {
	now := time.Now().UnixMilli()
	c.Ctime, c.Utime = now, now
	err := g.db.WithContext(ctx).Create(&c).Error
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) {
			const uniqueIndexErrNo uint16 = 1062
			if me.Number == uniqueIndexErrNo {
				return 0, ErrDuplicatedOrderRef
			}
		}
		return 0, err
	}
	return c.ID, nil
}

func (g *gormCheckoutDAO) FindByOrderRef(ctx context.Context, orderRef string) (Checkout, error) {
	var res Checkout
	err := g.db.WithContext(ctx).Where("order_ref = ?", orderRef).First(&res).Error
	return res, err
}

func (g *gormCheckoutDAO) FindByUIDAndOrderRef(ctx context.Context, uid int64, orderRef string) (Checkout, error) {
	var res Checkout
	err := g.db.WithContext(ctx).
		Where("uid = ? AND order_ref = ?", uid, orderRef).First(&res).Error
	return res, err
}

func (g *gormCheckoutDAO) DeleteByID(tx *egorm.Component, id int64) error {
	return tx.Where("id = ?", id).Delete(&Checkout{}).Error
}

func (g *gormCheckoutDAO) DeleteCreatedBefore(ctx context.Context, ctime int64) (int64, error) {
	res := g.db.WithContext(ctx).Where("ctime < ?", ctime).Delete(&Checkout{})
	return res.RowsAffected, res.Error
}

// Checkout 结算快照表, 支付回调前的临时状态, 过期由定时任务清理
type Checkout struct {
	ID       int64                         `gorm:"primaryKey,autoIncrement;comment:快照自增ID"`
	OrderRef string                        `gorm:"type:varchar(64);not null;uniqueIndex:uniq_order_ref;comment:商户订单号"`
	UID      int64                         `gorm:"not null;index:idx_uid;comment:用户ID"`
	Receiver string                        `gorm:"type:varchar(64);not null;comment:收货人"`
	Address  string                        `gorm:"type:varchar(512);not null;comment:收货地址"`
	Phone    string                        `gorm:"type:varchar(32);not null;comment:收货人电话"`
	Items    sqlx.JsonColumn[[]domain.Line] `gorm:"type:text;not null;comment:商品明细,JSON格式,含下单时刻快照价"`
	Ctime    int64
	Utime    int64
}

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

package repository

import (
	"context"

	"github.com/ecodeclub/capshop/internal/checkout/internal/domain"
	"github.com/ecodeclub/capshop/internal/checkout/internal/repository/dao"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
)

var (
	ErrDuplicatedOrderRef = dao.ErrDuplicatedOrderRef
)

type CheckoutRepository interface {
	Create(ctx context.Context, s domain.Snapshot) (int64, error)
	FindByOrderRef(ctx context.Context, orderRef string) (domain.Snapshot, error)
	FindByUIDAndOrderRef(ctx context.Context, uid int64, orderRef string) (domain.Snapshot, error)
	DeleteByID(tx *egorm.Component, id int64) error
	DeleteCreatedBefore(ctx context.Context, ctime int64) (int64, error)
}

func NewCheckoutRepository(d dao.CheckoutDAO) CheckoutRepository {
	return &checkoutRepository{dao: d}
}

type checkoutRepository struct {
	dao dao.CheckoutDAO
}

func (c *checkoutRepository) Create(ctx context.Context, s domain.Snapshot) (int64, error) {
	return c.dao.Create(ctx, c.toEntity(s))
}

func (c *checkoutRepository) FindByOrderRef(ctx context.Context, orderRef string) (domain.Snapshot, error) {
	res, err := c.dao.FindByOrderRef(ctx, orderRef)
	if err != nil {
		return domain.Snapshot{}, err
	}
	return c.toDomain(res), nil
}

func (c *checkoutRepository) FindByUIDAndOrderRef(ctx context.Context, uid int64, orderRef string) (domain.Snapshot, error) {
	res, err := c.dao.FindByUIDAndOrderRef(ctx, uid, orderRef)
	if err != nil {
		return domain.Snapshot{}, err
	}
	return c.toDomain(res), nil
}

func (c *checkoutRepository) DeleteByID(tx *egorm.Component, id int64) error {
	return c.dao.DeleteByID(tx, id)
}

func (c *checkoutRepository) DeleteCreatedBefore(ctx context.Context, ctime int64) (int64, error) {
	return c.dao.DeleteCreatedBefore(ctx, ctime)
}

func (c *checkoutRepository) toEntity(s domain.Snapshot) dao.Checkout {
	return dao.Checkout{
		ID:       s.ID,
		OrderRef: s.OrderRef,
		UID:      s.UID,
		Receiver: s.Receiver,
		Address:  s.Address,
		Phone:    s.Phone,
		Items:    sqlx.JsonColumn[[]domain.Line]{Val: s.Items, Valid: true},
	}
}

func (c *checkoutRepository) toDomain(e dao.Checkout) domain.Snapshot {
	return domain.Snapshot{
		ID:       e.ID,
		OrderRef: e.OrderRef,
		UID:      e.UID,
		Receiver: e.Receiver,
		Address:  e.Address,
		Phone:    e.Phone,
		Items:    e.Items.Val,
		Ctime:    e.Ctime,
		Utime:    e.Utime,
	}
}

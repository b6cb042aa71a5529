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

	"github.com/ecodeclub/capshop/internal/cart/internal/domain"
	"github.com/ecodeclub/capshop/internal/cart/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ego-component/egorm"
)

type CartRepository interface {
	Add(ctx context.Context, item domain.CartItem) (int64, error)
	FindByUID(ctx context.Context, uid int64) ([]domain.CartItem, error)
	Delete(ctx context.Context, uid, id int64) error
	DeleteAllByUID(tx *egorm.Component, uid int64) error
}

func NewCartRepository(d dao.CartDAO) CartRepository {
	return &cartRepository{d: d}
}

type cartRepository struct {
	d dao.CartDAO
}

func (c *cartRepository) Add(ctx context.Context, item domain.CartItem) (int64, error) {
	return c.d.Upsert(ctx, dao.CartItem{
		Uid:       item.UID,
		ProductID: item.ProductID,
		Size:      item.Size,
		Quantity:  item.Quantity,
	})
}

func (c *cartRepository) FindByUID(ctx context.Context, uid int64) ([]domain.CartItem, error) {
	items, err := c.d.FindByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	return slice.Map(items, func(idx int, src dao.CartItem) domain.CartItem {
		return domain.CartItem{
			ID:        src.Id,
			UID:       src.Uid,
			ProductID: src.ProductID,
			Size:      src.Size,
			Quantity:  src.Quantity,
			Ctime:     src.Ctime,
			Utime:     src.Utime,
		}
	}), nil
}

func (c *cartRepository) Delete(ctx context.Context, uid, id int64) error {
	return c.d.Delete(ctx, uid, id)
}

func (c *cartRepository) DeleteAllByUID(tx *egorm.Component, uid int64) error {
	return c.d.DeleteAllByUID(tx, uid)
}

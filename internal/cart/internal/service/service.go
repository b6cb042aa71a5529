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

package service

import (
	"context"
	"fmt"

	"github.com/ecodeclub/capshop/internal/cart/internal/domain"
	"github.com/ecodeclub/capshop/internal/cart/internal/repository"
	"github.com/ego-component/egorm"
)

type Service interface {
	Add(ctx context.Context, item domain.CartItem) (int64, error)
	FindByUID(ctx context.Context, uid int64) ([]domain.CartItem, error)
	Delete(ctx context.Context, uid, id int64) error
	// DeleteAllByUID 供结算在同一个数据库事务内清空购物车
	DeleteAllByUID(tx *egorm.Component, uid int64) error
}

func NewService(repo repository.CartRepository) Service {
	return &service{repo: repo}
}

type service struct {
	repo repository.CartRepository
}

func (s *service) Add(ctx context.Context, item domain.CartItem) (int64, error) {
	if item.Quantity < 1 {
		return 0, fmt.Errorf("要加购的商品数量非法: %d", item.Quantity)
	}
	return s.repo.Add(ctx, item)
}

func (s *service) FindByUID(ctx context.Context, uid int64) ([]domain.CartItem, error) {
	return s.repo.FindByUID(ctx, uid)
}

func (s *service) Delete(ctx context.Context, uid, id int64) error {
	return s.repo.Delete(ctx, uid, id)
}

func (s *service) DeleteAllByUID(tx *egorm.Component, uid int64) error {
	return s.repo.DeleteAllByUID(tx, uid)
}

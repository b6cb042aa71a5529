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

	"github.com/ecodeclub/capshop/internal/product/internal/domain"
	"github.com/ecodeclub/capshop/internal/product/internal/repository"
	"github.com/ego-component/egorm"
	"golang.org/x/sync/errgroup"
)

type Service interface {
	FindByID(ctx context.Context, id int64) (domain.Product, error)
	FindBySN(ctx context.Context, sn string) (domain.Product, error)
	List(ctx context.Context, offset, limit int) ([]domain.Product, int64, error)
	Create(ctx context.Context, p domain.Product) (int64, error)
	SetOnShelf(ctx context.Context, id int64, onShelf bool) error
	// ReserveStock / ReleaseStock 供结算在同一个数据库事务内调用
	ReserveStock(tx *egorm.Component, productID int64, size string, quantity int64) error
	ReleaseStock(tx *egorm.Component, productID int64, size string, quantity int64) error
}

func NewService(repo repository.ProductRepository) Service {
	return &service{repo: repo}
}

type service struct {
	repo repository.ProductRepository
}

func (s *service) FindByID(ctx context.Context, id int64) (domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) FindBySN(ctx context.Context, sn string) (domain.Product, error) {
	return s.repo.FindBySN(ctx, sn)
}

func (s *service) List(ctx context.Context, offset, limit int) ([]domain.Product, int64, error) {
	var (
		eg    errgroup.Group
		ps    []domain.Product
		total int64
	)
	eg.Go(func() error {
		var err error
		ps, err = s.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Total(ctx)
		return err
	})
	return ps, total, eg.Wait()
}

func (s *service) Create(ctx context.Context, p domain.Product) (int64, error) {
	return s.repo.Create(ctx, p)
}

func (s *service) SetOnShelf(ctx context.Context, id int64, onShelf bool) error {
	status := domain.StatusOffShelf
	if onShelf {
		status = domain.StatusOnShelf
	}
	return s.repo.SetStatus(ctx, id, status)
}

func (s *service) ReserveStock(tx *egorm.Component, productID int64, size string, quantity int64) error {
	return s.repo.ReserveStock(tx, productID, size, quantity)
}

func (s *service) ReleaseStock(tx *egorm.Component, productID int64, size string, quantity int64) error {
	return s.repo.ReleaseStock(tx, productID, size, quantity)
}

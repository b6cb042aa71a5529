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

	"github.com/ecodeclub/capshop/internal/product/internal/domain"
	"github.com/ecodeclub/capshop/internal/product/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ego-component/egorm"
)

type ProductRepository interface {
	FindByID(ctx context.Context, id int64) (domain.Product, error)
	FindBySN(ctx context.Context, sn string) (domain.Product, error)
	List(ctx context.Context, offset int, limit int) ([]domain.Product, error)
	Total(ctx context.Context) (int64, error)
	Create(ctx context.Context, p domain.Product) (int64, error)
	SetStatus(ctx context.Context, id int64, status domain.ProductStatus) error
	ReserveStock(tx *egorm.Component, productID int64, size string, quantity int64) error
	ReleaseStock(tx *egorm.Component, productID int64, size string, quantity int64) error
}

func NewProductRepository(d dao.ProductDAO) ProductRepository {
	return &productRepository{d: d}
}

type productRepository struct {
	d dao.ProductDAO
}

func (p *productRepository) FindByID(ctx context.Context, id int64) (domain.Product, error) {
	res, err := p.d.FindByID(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}
	stocks, err := p.d.FindSizeStocks(ctx, res.Id)
	if err != nil {
		return domain.Product{}, err
	}
	return p.toDomain(res, stocks), nil
}

func (p *productRepository) FindBySN(ctx context.Context, sn string) (domain.Product, error) {
	res, err := p.d.FindBySN(ctx, sn)
	if err != nil {
		return domain.Product{}, err
	}
	stocks, err := p.d.FindSizeStocks(ctx, res.Id)
	if err != nil {
		return domain.Product{}, err
	}
	return p.toDomain(res, stocks), nil
}

func (p *productRepository) List(ctx context.Context, offset int, limit int) ([]domain.Product, error) {
	ps, err := p.d.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(ps, func(idx int, src dao.Product) domain.Product {
		return p.toDomain(src, nil)
	}), nil
}

func (p *productRepository) Total(ctx context.Context) (int64, error) {
	return p.d.Count(ctx)
}

func (p *productRepository) Create(ctx context.Context, pd domain.Product) (int64, error) {
	return p.d.Create(ctx, p.toEntity(pd), slice.Map(pd.SizeStocks, func(idx int, src domain.SizeStock) dao.ProductStock {
		return dao.ProductStock{
			Size:     src.Size,
			Quantity: src.Quantity,
		}
	}))
}

func (p *productRepository) SetStatus(ctx context.Context, id int64, status domain.ProductStatus) error {
	return p.d.UpdateStatus(ctx, id, status.ToUint8())
}

func (p *productRepository) ReserveStock(tx *egorm.Component, productID int64, size string, quantity int64) error {
	return p.d.ReserveStock(tx, productID, size, quantity)
}

func (p *productRepository) ReleaseStock(tx *egorm.Component, productID int64, size string, quantity int64) error {
	return p.d.ReleaseStock(tx, productID, size, quantity)
}

func (p *productRepository) toDomain(pd dao.Product, stocks []dao.ProductStock) domain.Product {
	return domain.Product{
		ID:          pd.Id,
		SN:          pd.SN,
		Name:        pd.Name,
		Description: pd.Description,
		Price:       pd.Price,
		Stock:       pd.Stock,
		Image:       pd.Image,
		Status:      domain.ProductStatus(pd.Status),
		SizeStocks: slice.Map(stocks, func(idx int, src dao.ProductStock) domain.SizeStock {
			return domain.SizeStock{
				ID:        src.Id,
				ProductID: src.ProductID,
				Size:      src.Size,
				Quantity:  src.Quantity,
			}
		}),
		Ctime: pd.Ctime,
		Utime: pd.Utime,
	}
}

func (p *productRepository) toEntity(pd domain.Product) dao.Product {
	return dao.Product{
		Id:          pd.ID,
		SN:          pd.SN,
		Name:        pd.Name,
		Description: pd.Description,
		Price:       pd.Price,
		Stock:       pd.Stock,
		Image:       pd.Image,
		Status:      pd.Status.ToUint8(),
	}
}

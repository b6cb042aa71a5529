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

	"github.com/ecodeclub/capshop/internal/order/internal/domain"
	"github.com/ecodeclub/capshop/internal/order/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ego-component/egorm"
)

var (
	ErrOrderChanged = dao.ErrOrderChanged
)

type OrderRepository interface {
	Transaction(ctx context.Context, fn func(tx *egorm.Component) error) error
	CreateTx(tx *egorm.Component, o domain.Order) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Order, error)
	FindByIDAndUID(ctx context.Context, id, uid int64) (domain.Order, error)
	FindByOrderRef(ctx context.Context, orderRef string) (domain.Order, error)
	ListByUID(ctx context.Context, uid int64, offset, limit int) ([]domain.Order, error)
	CountByUID(ctx context.Context, uid int64) (int64, error)
	ListByStatus(ctx context.Context, status domain.OrderStatus, offset, limit int) ([]domain.Order, error)
	CountByStatus(ctx context.Context, status domain.OrderStatus) (int64, error)
	UpdateStatus(ctx context.Context, id int64, from, to domain.OrderStatus, updates map[string]any) error
	UpdateStatusTx(tx *egorm.Component, id int64, from, to domain.OrderStatus, updates map[string]any) error
	Confirm(ctx context.Context, id, confirmedAt int64) error
	FindAutoConfirmable(ctx context.Context, deliveredBefore int64, limit int) ([]domain.Order, error)
}

func NewOrderRepository(d dao.OrderDAO) OrderRepository {
	return &orderRepository{dao: d}
}

type orderRepository struct {
	dao dao.OrderDAO
}

func (o *orderRepository) Transaction(ctx context.Context, fn func(tx *egorm.Component) error) error {
	return o.dao.Transaction(ctx, fn)
}

func (o *orderRepository) CreateTx(tx *egorm.Component, order domain.Order) (int64, error) {
	items := slice.Map(order.Items, func(idx int, src domain.Item) dao.OrderItem {
		return dao.OrderItem{
			ProductID:   src.ProductID,
			ProductName: src.ProductName,
			Size:        src.Size,
			Quantity:    src.Quantity,
			UnitPrice:   src.UnitPrice,
		}
	})
	return o.dao.CreateTx(tx, o.toEntity(order), items)
}

func (o *orderRepository) FindByID(ctx context.Context, id int64) (domain.Order, error) {
	res, err := o.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	return o.loadItems(ctx, res)
}

func (o *orderRepository) FindByIDAndUID(ctx context.Context, id, uid int64) (domain.Order, error) {
	res, err := o.dao.FindByIDAndUID(ctx, id, uid)
	if err != nil {
		return domain.Order{}, err
	}
	return o.loadItems(ctx, res)
}

func (o *orderRepository) FindByOrderRef(ctx context.Context, orderRef string) (domain.Order, error) {
	res, err := o.dao.FindByOrderRef(ctx, orderRef)
	if err != nil {
		return domain.Order{}, err
	}
	return o.loadItems(ctx, res)
}

func (o *orderRepository) ListByUID(ctx context.Context, uid int64, offset, limit int) ([]domain.Order, error) {
	res, err := o.dao.ListByUID(ctx, uid, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Order) domain.Order {
		return o.toDomain(src, nil)
	}), nil
}

func (o *orderRepository) CountByUID(ctx context.Context, uid int64) (int64, error) {
	return o.dao.CountByUID(ctx, uid)
}

func (o *orderRepository) ListByStatus(ctx context.Context, status domain.OrderStatus, offset, limit int) ([]domain.Order, error) {
	res, err := o.dao.ListByStatus(ctx, string(status), offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Order) domain.Order {
		return o.toDomain(src, nil)
	}), nil
}

func (o *orderRepository) CountByStatus(ctx context.Context, status domain.OrderStatus) (int64, error) {
	return o.dao.CountByStatus(ctx, string(status))
}

func (o *orderRepository) UpdateStatus(ctx context.Context, id int64, from, to domain.OrderStatus, updates map[string]any) error {
	return o.dao.UpdateStatus(ctx, id, string(from), string(to), updates)
}

func (o *orderRepository) UpdateStatusTx(tx *egorm.Component, id int64, from, to domain.OrderStatus, updates map[string]any) error {
	return o.dao.UpdateStatusTx(tx, id, string(from), string(to), updates)
}

func (o *orderRepository) Confirm(ctx context.Context, id, confirmedAt int64) error {
	return o.dao.Confirm(ctx, id, confirmedAt)
}

func (o *orderRepository) FindAutoConfirmable(ctx context.Context, deliveredBefore int64, limit int) ([]domain.Order, error) {
	res, err := o.dao.FindAutoConfirmable(ctx, deliveredBefore, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Order) domain.Order {
		return o.toDomain(src, nil)
	}), nil
}

func (o *orderRepository) loadItems(ctx context.Context, e dao.Order) (domain.Order, error) {
	items, err := o.dao.FindItemsByOrderID(ctx, e.ID)
	if err != nil {
		return domain.Order{}, err
	}
	return o.toDomain(e, items), nil
}

func (o *orderRepository) toEntity(d domain.Order) dao.Order {
	return dao.Order{
		ID:                   d.ID,
		OrderRef:             d.OrderRef,
		UID:                  d.UID,
		Status:               string(d.Status),
		Receiver:             d.Receiver,
		Address:              d.Address,
		Phone:                d.Phone,
		TrackingNumber:       d.TrackingNumber,
		ReturnTrackingNumber: d.ReturnTrackingNumber,
		OriginalPrice:        d.OriginalPrice,
		CouponDiscount:       d.CouponDiscount,
		PointsDiscount:       d.PointsDiscount,
		FinalPrice:           d.FinalPrice,
		UserCouponID:         d.UserCouponID,
		DeliveredAt:          d.DeliveredAt,
		Confirmed:            d.Confirmed,
		ConfirmedAt:          d.ConfirmedAt,
		ReturnReason:         string(d.ReturnReason),
		ReturnMethod:         string(d.ReturnMethod),
		ReturnShippingFee:    d.ReturnShippingFee,
	}
}

func (o *orderRepository) toDomain(e dao.Order, items []dao.OrderItem) domain.Order {
	return domain.Order{
		ID:                   e.ID,
		OrderRef:             e.OrderRef,
		UID:                  e.UID,
		Status:               domain.OrderStatus(e.Status),
		Receiver:             e.Receiver,
		Address:              e.Address,
		Phone:                e.Phone,
		TrackingNumber:       e.TrackingNumber,
		ReturnTrackingNumber: e.ReturnTrackingNumber,
		OriginalPrice:        e.OriginalPrice,
		CouponDiscount:       e.CouponDiscount,
		PointsDiscount:       e.PointsDiscount,
		FinalPrice:           e.FinalPrice,
		UserCouponID:         e.UserCouponID,
		DeliveredAt:          e.DeliveredAt,
		Confirmed:            e.Confirmed,
		ConfirmedAt:          e.ConfirmedAt,
		ReturnReason:         domain.ReturnReason(e.ReturnReason),
		ReturnMethod:         domain.ReturnMethod(e.ReturnMethod),
		ReturnShippingFee:    e.ReturnShippingFee,
		Items: slice.Map(items, func(idx int, src dao.OrderItem) domain.Item {
			return domain.Item{
				ID:          src.ID,
				OrderID:     src.OrderID,
				ProductID:   src.ProductID,
				ProductName: src.ProductName,
				Size:        src.Size,
				Quantity:    src.Quantity,
				UnitPrice:   src.UnitPrice,
			}
		}),
		Ctime: e.Ctime,
		Utime: e.Utime,
	}
}

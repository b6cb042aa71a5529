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

	"github.com/ecodeclub/capshop/internal/coupon/internal/domain"
	"github.com/ecodeclub/capshop/internal/coupon/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ego-component/egorm"
)

var (
	ErrDuplicatedCouponCode = dao.ErrDuplicatedCouponCode
	ErrUserCouponChanged    = dao.ErrUserCouponChanged
)

type CouponRepository interface {
	CreateCoupon(ctx context.Context, c domain.Coupon) (int64, error)
	FindCouponByID(ctx context.Context, id int64) (domain.Coupon, error)
	FindCouponByCode(ctx context.Context, code string) (domain.Coupon, error)
	ListCoupons(ctx context.Context, offset, limit int) ([]domain.Coupon, error)
	CountCoupons(ctx context.Context) (int64, error)
	UpdateCouponActive(ctx context.Context, id int64, active bool) error

	CreateUserCoupon(ctx context.Context, uc domain.UserCoupon) (int64, error)
	CountUserCoupons(ctx context.Context, uid, couponID int64) (int64, error)
	FindUserCouponsByUID(ctx context.Context, uid int64) ([]domain.UserCoupon, error)
	FindUserCouponByIDAndUID(ctx context.Context, id, uid int64) (domain.UserCoupon, error)
	FindUserCouponByIDAndUIDTx(tx *egorm.Component, id, uid int64) (domain.UserCoupon, error)
	MarkUsed(tx *egorm.Component, id, orderID, discountAmount int64) error
	ExpireBefore(ctx context.Context, now int64) (int64, error)
}

func NewCouponRepository(d dao.CouponDAO) CouponRepository {
	return &couponRepository{dao: d}
}

type couponRepository struct {
	dao dao.CouponDAO
}

func (c *couponRepository) CreateCoupon(ctx context.Context, coupon domain.Coupon) (int64, error) {
	return c.dao.CreateCoupon(ctx, c.toCouponEntity(coupon))
}

func (c *couponRepository) FindCouponByID(ctx context.Context, id int64) (domain.Coupon, error) {
	res, err := c.dao.FindCouponByID(ctx, id)
	if err != nil {
		return domain.Coupon{}, err
	}
	return c.toCouponDomain(res), nil
}

func (c *couponRepository) FindCouponByCode(ctx context.Context, code string) (domain.Coupon, error) {
	res, err := c.dao.FindCouponByCode(ctx, code)
	if err != nil {
		return domain.Coupon{}, err
	}
	return c.toCouponDomain(res), nil
}

func (c *couponRepository) ListCoupons(ctx context.Context, offset, limit int) ([]domain.Coupon, error) {
	res, err := c.dao.ListCoupons(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Coupon) domain.Coupon {
		return c.toCouponDomain(src)
	}), nil
}

func (c *couponRepository) CountCoupons(ctx context.Context) (int64, error) {
	return c.dao.CountCoupons(ctx)
}

func (c *couponRepository) UpdateCouponActive(ctx context.Context, id int64, active bool) error {
	return c.dao.UpdateCouponActive(ctx, id, active)
}

func (c *couponRepository) CreateUserCoupon(ctx context.Context, uc domain.UserCoupon) (int64, error) {
	return c.dao.CreateUserCoupon(ctx, dao.UserCoupon{
		UID:            uc.UID,
		CouponID:       uc.Coupon.ID,
		Status:         string(uc.Status),
		IssuedAt:       uc.IssuedAt,
		ValidFrom:      uc.ValidFrom,
		ValidUntil:     uc.ValidUntil,
		UsedOrderID:    uc.UsedOrderID,
		DiscountAmount: uc.DiscountAmount,
	})
}

func (c *couponRepository) CountUserCoupons(ctx context.Context, uid, couponID int64) (int64, error) {
	return c.dao.CountUserCoupons(ctx, uid, couponID)
}

func (c *couponRepository) FindUserCouponsByUID(ctx context.Context, uid int64) ([]domain.UserCoupon, error) {
	ucs, err := c.dao.FindUserCouponsByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	res := make([]domain.UserCoupon, 0, len(ucs))
	for _, uc := range ucs {
		coupon, err := c.dao.FindCouponByID(ctx, uc.CouponID)
		if err != nil {
			return nil, err
		}
		res = append(res, c.toUserCouponDomain(uc, coupon))
	}
	return res, nil
}

func (c *couponRepository) FindUserCouponByIDAndUID(ctx context.Context, id, uid int64) (domain.UserCoupon, error) {
	uc, err := c.dao.FindUserCouponByIDAndUID(ctx, id, uid)
	if err != nil {
		return domain.UserCoupon{}, err
	}
	coupon, err := c.dao.FindCouponByID(ctx, uc.CouponID)
	if err != nil {
		return domain.UserCoupon{}, err
	}
	return c.toUserCouponDomain(uc, coupon), nil
}

func (c *couponRepository) FindUserCouponByIDAndUIDTx(tx *egorm.Component, id, uid int64) (domain.UserCoupon, error) {
	uc, err := c.dao.FindUserCouponByIDAndUIDTx(tx, id, uid)
	if err != nil {
		return domain.UserCoupon{}, err
	}
	var coupon dao.Coupon
	if err = tx.Where("id = ?", uc.CouponID).First(&coupon).Error; err != nil {
		return domain.UserCoupon{}, err
	}
	return c.toUserCouponDomain(uc, coupon), nil
}

func (c *couponRepository) MarkUsed(tx *egorm.Component, id, orderID, discountAmount int64) error {
	return c.dao.MarkUsed(tx, id, orderID, discountAmount)
}

func (c *couponRepository) ExpireBefore(ctx context.Context, now int64) (int64, error) {
	return c.dao.ExpireBefore(ctx, now)
}

func (c *couponRepository) toCouponEntity(d domain.Coupon) dao.Coupon {
	return dao.Coupon{
		ID:                d.ID,
		Code:              d.Code,
		Name:              d.Name,
		DiscountType:      string(d.DiscountType),
		DiscountValue:     d.DiscountValue,
		MinOrderAmount:    d.MinOrderAmount,
		MaxDiscountAmount: d.MaxDiscountAmount,
		Reusable:          d.Reusable,
		Active:            d.Active,
	}
}

func (c *couponRepository) toCouponDomain(e dao.Coupon) domain.Coupon {
	return domain.Coupon{
		ID:                e.ID,
		Code:              e.Code,
		Name:              e.Name,
		DiscountType:      domain.DiscountType(e.DiscountType),
		DiscountValue:     e.DiscountValue,
		MinOrderAmount:    e.MinOrderAmount,
		MaxDiscountAmount: e.MaxDiscountAmount,
		Reusable:          e.Reusable,
		Active:            e.Active,
		Ctime:             e.Ctime,
		Utime:             e.Utime,
	}
}

func (c *couponRepository) toUserCouponDomain(uc dao.UserCoupon, coupon dao.Coupon) domain.UserCoupon {
	return domain.UserCoupon{
		ID:             uc.ID,
		UID:            uc.UID,
		Coupon:         c.toCouponDomain(coupon),
		Status:         domain.UserCouponStatus(uc.Status),
		IssuedAt:       uc.IssuedAt,
		ValidFrom:      uc.ValidFrom,
		ValidUntil:     uc.ValidUntil,
		UsedOrderID:    uc.UsedOrderID,
		DiscountAmount: uc.DiscountAmount,
		Ctime:          uc.Ctime,
		Utime:          uc.Utime,
	}
}

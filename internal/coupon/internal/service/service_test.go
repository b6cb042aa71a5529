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
	"testing"
	"time"

	"github.com/ecodeclub/capshop/internal/coupon/internal/domain"
	"github.com/ecodeclub/capshop/internal/coupon/internal/repository"
	"github.com/ego-component/egorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var gormErrRecordNotFound = gorm.ErrRecordNotFound

func TestService_Issue(t *testing.T) {
	t.Parallel()

	template := domain.Coupon{
		ID:            10,
		Code:          "WELCOME10",
		Name:          "신규가입 10% 할인",
		DiscountType:  domain.DiscountTypePercentage,
		DiscountValue: 10,
		Active:        true,
	}

	t.Run("领取成功", func(t *testing.T) {
		t.Parallel()
		repo := newFakeCouponRepository()
		repo.coupons[template.ID] = template
		svc := NewService(repo)

		uc, err := svc.Issue(context.Background(), 1234, "WELCOME10")

		require.NoError(t, err)
		assert.Equal(t, domain.UserCouponStatusAvailable, uc.Status)
		assert.Equal(t, template.ID, uc.Coupon.ID)
		assert.Equal(t, uc.ValidFrom+(30*24*time.Hour).Milliseconds(), uc.ValidUntil)
	})

	t.Run("不可重复领取", func(t *testing.T) {
		t.Parallel()
		repo := newFakeCouponRepository()
		repo.coupons[template.ID] = template
		svc := NewService(repo)

		_, err := svc.Issue(context.Background(), 1234, "WELCOME10")
		require.NoError(t, err)

		_, err = svc.Issue(context.Background(), 1234, "WELCOME10")
		assert.ErrorIs(t, err, ErrCouponAlreadyOwned)
	})

	t.Run("可重复领取", func(t *testing.T) {
		t.Parallel()
		reusable := template
		reusable.ID, reusable.Code, reusable.Reusable = 11, "EVENT", true
		repo := newFakeCouponRepository()
		repo.coupons[reusable.ID] = reusable
		svc := NewService(repo)

		_, err := svc.Issue(context.Background(), 1234, "EVENT")
		require.NoError(t, err)

		_, err = svc.Issue(context.Background(), 1234, "EVENT")
		assert.NoError(t, err)
	})

	t.Run("已停止发放", func(t *testing.T) {
		t.Parallel()
		inactive := template
		inactive.ID, inactive.Code, inactive.Active = 12, "OLD", false
		repo := newFakeCouponRepository()
		repo.coupons[inactive.ID] = inactive
		svc := NewService(repo)

		_, err := svc.Issue(context.Background(), 1234, "OLD")
		assert.ErrorIs(t, err, ErrCouponNotUsable)
	})
}

func TestService_MarkUsedOnSettlement(t *testing.T) {
	t.Parallel()

	now := time.Now()
	newAvailable := func() domain.UserCoupon {
		return domain.UserCoupon{
			ID:  100,
			UID: 1234,
			Coupon: domain.Coupon{
				ID:                10,
				DiscountType:      domain.DiscountTypePercentage,
				DiscountValue:     20,
				MaxDiscountAmount: 5000,
			},
			Status:     domain.UserCouponStatusAvailable,
			ValidFrom:  now.Add(-time.Hour).UnixMilli(),
			ValidUntil: now.Add(time.Hour).UnixMilli(),
		}
	}

	t.Run("核销成功并记录折扣", func(t *testing.T) {
		t.Parallel()
		repo := newFakeCouponRepository()
		repo.userCoupons[100] = newAvailable()
		svc := NewService(repo)

		discount, err := svc.MarkUsedOnSettlement(nil, 1234, 100, 555, 100000)

		require.NoError(t, err)
		assert.Equal(t, int64(5000), discount)
		assert.Equal(t, domain.UserCouponStatusUsed, repo.userCoupons[100].Status)
		assert.Equal(t, int64(555), repo.userCoupons[100].UsedOrderID)
	})

	t.Run("重复核销返回相同折扣", func(t *testing.T) {
		t.Parallel()
		repo := newFakeCouponRepository()
		repo.userCoupons[100] = newAvailable()
		svc := NewService(repo)

		first, err := svc.MarkUsedOnSettlement(nil, 1234, 100, 555, 100000)
		require.NoError(t, err)

		second, err := svc.MarkUsedOnSettlement(nil, 1234, 100, 555, 100000)
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Equal(t, domain.UserCouponStatusUsed, repo.userCoupons[100].Status)
	})

	t.Run("已被其他订单核销不可再用", func(t *testing.T) {
		t.Parallel()
		used := newAvailable()
		used.Status = domain.UserCouponStatusUsed
		used.UsedOrderID = 111
		used.DiscountAmount = 4000
		repo := newFakeCouponRepository()
		repo.userCoupons[100] = used
		svc := NewService(repo)

		discount, err := svc.MarkUsedOnSettlement(nil, 1234, 100, 222, 50000)

		assert.ErrorIs(t, err, ErrCouponNotUsable)
		assert.Zero(t, discount)
		assert.Equal(t, int64(111), repo.userCoupons[100].UsedOrderID)
	})

	t.Run("已过期不可核销", func(t *testing.T) {
		t.Parallel()
		expired := newAvailable()
		expired.Status = domain.UserCouponStatusExpired
		repo := newFakeCouponRepository()
		repo.userCoupons[100] = expired
		svc := NewService(repo)

		_, err := svc.MarkUsedOnSettlement(nil, 1234, 100, 555, 100000)
		assert.ErrorIs(t, err, ErrCouponNotUsable)
	})

	t.Run("未达最低消费不可核销", func(t *testing.T) {
		t.Parallel()
		uc := newAvailable()
		uc.Coupon.MinOrderAmount = 200000
		repo := newFakeCouponRepository()
		repo.userCoupons[100] = uc
		svc := NewService(repo)

		_, err := svc.MarkUsedOnSettlement(nil, 1234, 100, 555, 100000)
		assert.ErrorIs(t, err, ErrCouponNotUsable)
		assert.Equal(t, domain.UserCouponStatusAvailable, repo.userCoupons[100].Status)
	})
}

func newFakeCouponRepository() *fakeCouponRepository {
	return &fakeCouponRepository{
		coupons:     make(map[int64]domain.Coupon),
		userCoupons: make(map[int64]domain.UserCoupon),
	}
}

type fakeCouponRepository struct {
	coupons     map[int64]domain.Coupon
	userCoupons map[int64]domain.UserCoupon
	nextID      int64
}

func (f *fakeCouponRepository) CreateCoupon(_ context.Context, c domain.Coupon) (int64, error) {
	f.nextID++
	c.ID = f.nextID
	f.coupons[c.ID] = c
	return c.ID, nil
}

func (f *fakeCouponRepository) FindCouponByID(_ context.Context, id int64) (domain.Coupon, error) {
	return f.coupons[id], nil
}

func (f *fakeCouponRepository) FindCouponByCode(_ context.Context, code string) (domain.Coupon, error) {
	for _, c := range f.coupons {
		if c.Code == code {
			return c, nil
		}
	}
	return domain.Coupon{}, gormErrRecordNotFound
}

func (f *fakeCouponRepository) ListCoupons(_ context.Context, _, _ int) ([]domain.Coupon, error) {
	return nil, nil
}

func (f *fakeCouponRepository) CountCoupons(_ context.Context) (int64, error) {
	return int64(len(f.coupons)), nil
}

func (f *fakeCouponRepository) UpdateCouponActive(_ context.Context, id int64, active bool) error {
	c := f.coupons[id]
	c.Active = active
	f.coupons[id] = c
	return nil
}

func (f *fakeCouponRepository) CreateUserCoupon(_ context.Context, uc domain.UserCoupon) (int64, error) {
	f.nextID++
	uc.ID = f.nextID
	f.userCoupons[uc.ID] = uc
	return uc.ID, nil
}

func (f *fakeCouponRepository) CountUserCoupons(_ context.Context, uid, couponID int64) (int64, error) {
	var count int64
	for _, uc := range f.userCoupons {
		if uc.UID == uid && uc.Coupon.ID == couponID {
			count++
		}
	}
	return count, nil
}

func (f *fakeCouponRepository) FindUserCouponsByUID(_ context.Context, uid int64) ([]domain.UserCoupon, error) {
	var res []domain.UserCoupon
	for _, uc := range f.userCoupons {
		if uc.UID == uid {
			res = append(res, uc)
		}
	}
	return res, nil
}

func (f *fakeCouponRepository) FindUserCouponByIDAndUID(_ context.Context, id, uid int64) (domain.UserCoupon, error) {
	uc, ok := f.userCoupons[id]
	if !ok || uc.UID != uid {
		return domain.UserCoupon{}, gormErrRecordNotFound
	}
	return uc, nil
}

func (f *fakeCouponRepository) FindUserCouponByIDAndUIDTx(_ *egorm.Component, id, uid int64) (domain.UserCoupon, error) {
	return f.FindUserCouponByIDAndUID(context.Background(), id, uid)
}

func (f *fakeCouponRepository) MarkUsed(_ *egorm.Component, id, orderID, discountAmount int64) error {
	uc, ok := f.userCoupons[id]
	if !ok || uc.Status != domain.UserCouponStatusAvailable {
		return repository.ErrUserCouponChanged
	}
	uc.Status = domain.UserCouponStatusUsed
	uc.UsedOrderID = orderID
	uc.DiscountAmount = discountAmount
	f.userCoupons[id] = uc
	return nil
}

func (f *fakeCouponRepository) ExpireBefore(_ context.Context, now int64) (int64, error) {
	var count int64
	for id, uc := range f.userCoupons {
		if uc.Status == domain.UserCouponStatusAvailable && uc.ValidUntil <= now {
			uc.Status = domain.UserCouponStatusExpired
			f.userCoupons[id] = uc
			count++
		}
	}
	return count, nil
}

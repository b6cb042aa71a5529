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
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/capshop/internal/coupon/internal/domain"
	"github.com/ecodeclub/capshop/internal/coupon/internal/repository"
	"github.com/ego-component/egorm"
)

var (
	// ErrCouponAlreadyOwned 不可重复领取的券已被该用户持有
	ErrCouponAlreadyOwned = errors.New("优惠券已领取")
	ErrCouponNotUsable    = domain.ErrCouponNotUsable
)

// 券自发放起的有效期
const validityPeriod = 30 * 24 * time.Hour

type Service interface {
	// Issue 按券码领取, 不可重复领取的券再次领取返回 ErrCouponAlreadyOwned
	Issue(ctx context.Context, uid int64, code string) (domain.UserCoupon, error)
	ListMine(ctx context.Context, uid int64) ([]domain.UserCoupon, error)
	// ListUsable 返回对指定订单金额可用的券
	ListUsable(ctx context.Context, uid, orderTotal int64) ([]domain.UserCoupon, error)
	// MarkUsedOnSettlement 结算事务内核销, 幂等: 同一订单重试返回当时记录的折扣金额
	MarkUsedOnSettlement(tx *egorm.Component, uid, userCouponID, orderID, orderTotal int64) (int64, error)
	// ExpireSweep 将过期的可用券批量置为 EXPIRED, 返回处理条数
	ExpireSweep(ctx context.Context) (int64, error)

	// 管理端
	CreateCoupon(ctx context.Context, c domain.Coupon) (int64, error)
	ListCoupons(ctx context.Context, offset, limit int) ([]domain.Coupon, int64, error)
	SetCouponActive(ctx context.Context, id int64, active bool) error
}

func NewService(repo repository.CouponRepository) Service {
	return &service{repo: repo}
}

type service struct {
	repo repository.CouponRepository
}

func (s *service) Issue(ctx context.Context, uid int64, code string) (domain.UserCoupon, error) {
	coupon, err := s.repo.FindCouponByCode(ctx, code)
	if err != nil {
		return domain.UserCoupon{}, fmt.Errorf("查找优惠券失败: %w", err)
	}
	if !coupon.Active {
		return domain.UserCoupon{}, fmt.Errorf("%w: 已停止发放", domain.ErrCouponNotUsable)
	}
	if !coupon.Reusable {
		count, err := s.repo.CountUserCoupons(ctx, uid, coupon.ID)
		if err != nil {
			return domain.UserCoupon{}, err
		}
		if count > 0 {
			return domain.UserCoupon{}, ErrCouponAlreadyOwned
		}
	}
	now := time.Now()
	uc := domain.UserCoupon{
		UID:        uid,
		Coupon:     coupon,
		Status:     domain.UserCouponStatusAvailable,
		IssuedAt:   now.UnixMilli(),
		ValidFrom:  now.UnixMilli(),
		ValidUntil: now.Add(validityPeriod).UnixMilli(),
	}
	id, err := s.repo.CreateUserCoupon(ctx, uc)
	if err != nil {
		return domain.UserCoupon{}, err
	}
	uc.ID = id
	return uc, nil
}

func (s *service) ListMine(ctx context.Context, uid int64) ([]domain.UserCoupon, error) {
	return s.repo.FindUserCouponsByUID(ctx, uid)
}

func (s *service) ListUsable(ctx context.Context, uid, orderTotal int64) ([]domain.UserCoupon, error) {
	ucs, err := s.repo.FindUserCouponsByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	now := time.Now().UnixMilli()
	res := make([]domain.UserCoupon, 0, len(ucs))
	for _, uc := range ucs {
		if uc.UsableAt(now) != nil {
			continue
		}
		if _, err := uc.Coupon.CalculateDiscount(orderTotal); err != nil {
			continue
		}
		res = append(res, uc)
	}
	return res, nil
}

func (s *service) MarkUsedOnSettlement(tx *egorm.Component, uid, userCouponID, orderID, orderTotal int64) (int64, error) {
	uc, err := s.repo.FindUserCouponByIDAndUIDTx(tx, userCouponID, uid)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", domain.ErrCouponNotUsable, err)
	}
	// 已核销: 仅同一订单的结算重试返回当时记录的折扣金额, 其余一律拒绝
	if uc.Status == domain.UserCouponStatusUsed {
		if uc.UsedOrderID == orderID {
			return uc.DiscountAmount, nil
		}
		return 0, fmt.Errorf("%w: 已被订单 %d 核销", domain.ErrCouponNotUsable, uc.UsedOrderID)
	}
	now := time.Now().UnixMilli()
	if err = uc.UsableAt(now); err != nil {
		return 0, err
	}
	discount, err := uc.Coupon.CalculateDiscount(orderTotal)
	if err != nil {
		return 0, err
	}
	if err = s.repo.MarkUsed(tx, uc.ID, orderID, discount); err != nil {
		if errors.Is(err, repository.ErrUserCouponChanged) {
			return 0, fmt.Errorf("%w: %w", domain.ErrCouponNotUsable, err)
		}
		return 0, err
	}
	return discount, nil
}

func (s *service) ExpireSweep(ctx context.Context) (int64, error) {
	return s.repo.ExpireBefore(ctx, time.Now().UnixMilli())
}

func (s *service) CreateCoupon(ctx context.Context, c domain.Coupon) (int64, error) {
	return s.repo.CreateCoupon(ctx, c)
}

func (s *service) ListCoupons(ctx context.Context, offset, limit int) ([]domain.Coupon, int64, error) {
	coupons, err := s.repo.ListCoupons(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.CountCoupons(ctx)
	if err != nil {
		return nil, 0, err
	}
	return coupons, total, nil
}

func (s *service) SetCouponActive(ctx context.Context, id int64, active bool) error {
	return s.repo.UpdateCouponActive(ctx, id, active)
}

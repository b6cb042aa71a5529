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

	"github.com/ecodeclub/capshop/internal/points/internal/domain"
	"github.com/ecodeclub/capshop/internal/points/internal/repository"
	"github.com/ego-component/egorm"
)

var (
	ErrInsufficientPoints = repository.ErrInsufficientPoints
)

const (
	bizOrder  = "order"
	bizReview = "review"
)

type Service interface {
	Balance(ctx context.Context, uid int64) (domain.Points, error)
	History(ctx context.Context, uid int64, offset, limit int) ([]domain.PointsLog, int64, error)
	// UseTx 结算事务内按订单扣减积分
	UseTx(tx *egorm.Component, uid, amount, orderID int64) error
	// AccrueForOrderTx 结算事务内按折扣前原价 1% 返点, 返回实际返点数
	AccrueForOrderTx(tx *egorm.Component, uid, originalAmount, orderID int64) (int64, error)
	// AddReviewBonus 撰写评价的固定奖励
	AddReviewBonus(ctx context.Context, uid, reviewID int64) error
}

func NewService(repo repository.PointsRepository) Service {
	return &service{repo: repo}
}

type service struct {
	repo repository.PointsRepository
}

func (s *service) Balance(ctx context.Context, uid int64) (domain.Points, error) {
	return s.repo.FindByUID(ctx, uid)
}

func (s *service) History(ctx context.Context, uid int64, offset, limit int) ([]domain.PointsLog, int64, error) {
	logs, err := s.repo.FindLogsByUID(ctx, uid, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.CountLogsByUID(ctx, uid)
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

func (s *service) UseTx(tx *egorm.Component, uid, amount, orderID int64) error {
	if amount <= 0 {
		return fmt.Errorf("扣减积分数非法: %d", amount)
	}
	return s.repo.UseTx(tx, uid, amount, domain.PointsLog{
		Biz:   bizOrder,
		BizID: orderID,
		Desc:  "주문 결제 포인트 사용",
	})
}

func (s *service) AccrueForOrderTx(tx *egorm.Component, uid, originalAmount, orderID int64) (int64, error) {
	accrued := domain.AccrualForOrder(originalAmount)
	if accrued == 0 {
		return 0, nil
	}
	err := s.repo.AddTx(tx, uid, accrued, domain.PointsLog{
		Biz:   bizOrder,
		BizID: orderID,
		Desc:  "주문 결제 포인트 적립",
	})
	if err != nil {
		return 0, err
	}
	return accrued, nil
}

func (s *service) AddReviewBonus(ctx context.Context, uid, reviewID int64) error {
	return s.repo.Add(ctx, uid, domain.ReviewBonus, domain.PointsLog{
		Biz:   bizReview,
		BizID: reviewID,
		Desc:  "리뷰 작성 포인트 적립",
	})
}

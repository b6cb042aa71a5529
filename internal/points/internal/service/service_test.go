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
	"testing"

	"github.com/ecodeclub/capshop/internal/points/internal/domain"
	"github.com/ego-component/egorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_UseTx(t *testing.T) {
	t.Parallel()

	t.Run("扣减成功", func(t *testing.T) {
		t.Parallel()
		repo := &fakePointsRepository{balances: map[int64]int64{1234: 3000}}
		svc := NewService(repo)

		err := svc.UseTx(nil, 1234, 2000, 555)

		require.NoError(t, err)
		assert.Equal(t, int64(1000), repo.balances[1234])
	})

	t.Run("余额不足", func(t *testing.T) {
		t.Parallel()
		repo := &fakePointsRepository{balances: map[int64]int64{1234: 1000}}
		svc := NewService(repo)

		err := svc.UseTx(nil, 1234, 2000, 555)

		assert.ErrorIs(t, err, ErrInsufficientPoints)
		assert.Equal(t, int64(1000), repo.balances[1234])
	})

	t.Run("扣减数为零非法", func(t *testing.T) {
		t.Parallel()
		repo := &fakePointsRepository{balances: map[int64]int64{1234: 1000}}
		svc := NewService(repo)

		assert.Error(t, svc.UseTx(nil, 1234, 0, 555))
	})

	t.Run("扣减数为负非法", func(t *testing.T) {
		t.Parallel()
		repo := &fakePointsRepository{balances: map[int64]int64{1234: 1000}}
		svc := NewService(repo)

		assert.Error(t, svc.UseTx(nil, 1234, -100, 555))
	})
}

func TestService_AccrueForOrderTx(t *testing.T) {
	t.Parallel()

	t.Run("按原价百分之一返点", func(t *testing.T) {
		t.Parallel()
		repo := &fakePointsRepository{balances: map[int64]int64{}}
		svc := NewService(repo)

		accrued, err := svc.AccrueForOrderTx(nil, 1234, 40000, 555)

		require.NoError(t, err)
		assert.Equal(t, int64(400), accrued)
		assert.Equal(t, int64(400), repo.balances[1234])
	})

	t.Run("不足一百不返点", func(t *testing.T) {
		t.Parallel()
		repo := &fakePointsRepository{balances: map[int64]int64{}}
		svc := NewService(repo)

		accrued, err := svc.AccrueForOrderTx(nil, 1234, 99, 555)

		require.NoError(t, err)
		assert.Equal(t, int64(0), accrued)
		assert.Empty(t, repo.logs)
	})
}

func TestService_AddReviewBonus(t *testing.T) {
	t.Parallel()

	repo := &fakePointsRepository{balances: map[int64]int64{}}
	svc := NewService(repo)

	err := svc.AddReviewBonus(context.Background(), 1234, 42)

	require.NoError(t, err)
	assert.Equal(t, int64(domain.ReviewBonus), repo.balances[1234])
}

type fakePointsRepository struct {
	balances map[int64]int64
	logs     []domain.PointsLog
}

func (f *fakePointsRepository) FindByUID(_ context.Context, uid int64) (domain.Points, error) {
	return domain.Points{UID: uid, Balance: f.balances[uid]}, nil
}

func (f *fakePointsRepository) FindLogsByUID(_ context.Context, _ int64, _, _ int) ([]domain.PointsLog, error) {
	return f.logs, nil
}

func (f *fakePointsRepository) CountLogsByUID(_ context.Context, _ int64) (int64, error) {
	return int64(len(f.logs)), nil
}

func (f *fakePointsRepository) Add(_ context.Context, uid, amount int64, l domain.PointsLog) error {
	f.balances[uid] += amount
	l.UID, l.ChangeAmount, l.BalanceAfter = uid, amount, f.balances[uid]
	f.logs = append(f.logs, l)
	return nil
}

func (f *fakePointsRepository) AddTx(_ *egorm.Component, uid, amount int64, l domain.PointsLog) error {
	return f.Add(context.Background(), uid, amount, l)
}

func (f *fakePointsRepository) UseTx(_ *egorm.Component, uid, amount int64, l domain.PointsLog) error {
	if f.balances[uid] < amount {
		return fmt.Errorf("%w: 余额 %d, 需要 %d", ErrInsufficientPoints, f.balances[uid], amount)
	}
	f.balances[uid] -= amount
	l.UID, l.ChangeAmount, l.BalanceAfter = uid, -amount, f.balances[uid]
	f.logs = append(f.logs, l)
	return nil
}

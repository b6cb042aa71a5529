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

	"github.com/ecodeclub/capshop/internal/checkout/internal/domain"
	"github.com/ecodeclub/capshop/internal/checkout/internal/repository"
	"github.com/ecodeclub/capshop/internal/pkg/sequencenumber"
	"github.com/ego-component/egorm"
)

var (
	// ErrInvalidSnapshot 收货信息或商品明细不完整
	ErrInvalidSnapshot = errors.New("结算信息非法")
)

type Service interface {
	// Create 校验收货信息后生成订单号并落库快照, 返回含订单号的快照
	Create(ctx context.Context, s domain.Snapshot) (domain.Snapshot, error)
	FindByOrderRef(ctx context.Context, orderRef string) (domain.Snapshot, error)
	FindByUIDAndOrderRef(ctx context.Context, uid int64, orderRef string) (domain.Snapshot, error)
	// DeleteByID 结算事务内删除快照
	DeleteByID(tx *egorm.Component, id int64) error
	DeleteCreatedBefore(ctx context.Context, before time.Time) (int64, error)
}

func NewService(repo repository.CheckoutRepository, snGenerator *sequencenumber.Generator) Service {
	return &service{repo: repo, snGenerator: snGenerator}
}

type service struct {
	repo        repository.CheckoutRepository
	snGenerator *sequencenumber.Generator
}

func (s *service) Create(ctx context.Context, snapshot domain.Snapshot) (domain.Snapshot, error) {
	if err := s.validate(snapshot); err != nil {
		return domain.Snapshot{}, err
	}
	// 订单号冲突概率极低, 冲突时重新生成一次
	const maxAttempts = 2
	var lastErr error
	for i := 0; i < maxAttempts; i++ {
		orderRef, err := s.snGenerator.Generate(snapshot.UID)
		if err != nil {
			return domain.Snapshot{}, fmt.Errorf("生成订单号失败: %w", err)
		}
		snapshot.OrderRef = orderRef
		id, err := s.repo.Create(ctx, snapshot)
		if err == nil {
			snapshot.ID = id
			return snapshot, nil
		}
		if !errors.Is(err, repository.ErrDuplicatedOrderRef) {
			return domain.Snapshot{}, err
		}
		lastErr = err
	}
	return domain.Snapshot{}, lastErr
}

func (s *service) validate(snapshot domain.Snapshot) error {
	if snapshot.Receiver == "" || snapshot.Address == "" || snapshot.Phone == "" {
		return fmt.Errorf("%w: 收货信息不完整", ErrInvalidSnapshot)
	}
	if len(snapshot.Items) == 0 {
		return fmt.Errorf("%w: 商品明细为空", ErrInvalidSnapshot)
	}
	for _, it := range snapshot.Items {
		if it.ProductID <= 0 || it.Quantity <= 0 || it.Price < 0 {
			return fmt.Errorf("%w: 商品明细非法", ErrInvalidSnapshot)
		}
	}
	return nil
}

func (s *service) FindByOrderRef(ctx context.Context, orderRef string) (domain.Snapshot, error) {
	return s.repo.FindByOrderRef(ctx, orderRef)
}

func (s *service) FindByUIDAndOrderRef(ctx context.Context, uid int64, orderRef string) (domain.Snapshot, error) {
	return s.repo.FindByUIDAndOrderRef(ctx, uid, orderRef)
}

func (s *service) DeleteByID(tx *egorm.Component, id int64) error {
	return s.repo.DeleteByID(tx, id)
}

func (s *service) DeleteCreatedBefore(ctx context.Context, before time.Time) (int64, error) {
	return s.repo.DeleteCreatedBefore(ctx, before.UnixMilli())
}

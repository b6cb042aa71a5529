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
	"strings"
	"testing"
	"time"

	"github.com/ecodeclub/capshop/internal/checkout/internal/domain"
	"github.com/ecodeclub/capshop/internal/checkout/internal/repository"
	"github.com/ecodeclub/capshop/internal/pkg/sequencenumber"
	"github.com/ego-component/egorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator() *sequencenumber.Generator {
	return sequencenumber.NewGeneratorWith(
		func(_ time.Time) string { return "20240102" },
		func() string { return "nUfojcH2M5j2j3Tk5A1mf2" })
}

func TestService_Create(t *testing.T) {
	t.Parallel()

	validItems := []domain.Line{
		{ProductID: 1, ProductName: "黑色棒球帽", Size: "L", Quantity: 2, Price: 25000},
	}

	testCases := []struct {
		name      string
		snapshot  domain.Snapshot
		repo      *fakeCheckoutRepository
		assertErr assert.ErrorAssertionFunc
	}{
		{
			name: "创建成功",
			snapshot: domain.Snapshot{
				UID:      1234,
				Receiver: "김하늘",
				Address:  "서울특별시 마포구 월드컵로 123",
				Phone:    "010-1234-5678",
				Items:    validItems,
			},
			repo:      &fakeCheckoutRepository{},
			assertErr: assert.NoError,
		},
		{
			name: "收货人为空",
			snapshot: domain.Snapshot{
				UID:     1234,
				Address: "서울특별시 마포구 월드컵로 123",
				Phone:   "010-1234-5678",
				Items:   validItems,
			},
			repo: &fakeCheckoutRepository{},
			assertErr: func(t assert.TestingT, err error, i ...interface{}) bool {
				return assert.ErrorIs(t, err, ErrInvalidSnapshot)
			},
		},
		{
			name: "商品明细为空",
			snapshot: domain.Snapshot{
				UID:      1234,
				Receiver: "김하늘",
				Address:  "서울특별시 마포구 월드컵로 123",
				Phone:    "010-1234-5678",
			},
			repo: &fakeCheckoutRepository{},
			assertErr: func(t assert.TestingT, err error, i ...interface{}) bool {
				return assert.ErrorIs(t, err, ErrInvalidSnapshot)
			},
		},
		{
			name: "商品数量非法",
			snapshot: domain.Snapshot{
				UID:      1234,
				Receiver: "김하늘",
				Address:  "서울특별시 마포구 월드컵로 123",
				Phone:    "010-1234-5678",
				Items: []domain.Line{
					{ProductID: 1, Quantity: 0, Price: 25000},
				},
			},
			repo: &fakeCheckoutRepository{},
			assertErr: func(t assert.TestingT, err error, i ...interface{}) bool {
				return assert.ErrorIs(t, err, ErrInvalidSnapshot)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			svc := NewService(tc.repo, newTestGenerator())

			created, err := svc.Create(context.Background(), tc.snapshot)

			tc.assertErr(t, err)
			if err == nil {
				assert.True(t, strings.HasPrefix(created.OrderRef, "ORD20240102-"))
				assert.Equal(t, tc.snapshot.Items, created.Items)
				require.Len(t, tc.repo.created, 1)
				assert.Equal(t, created.OrderRef, tc.repo.created[0].OrderRef)
			}
		})
	}
}

func TestService_Create_RetryOnDuplicatedOrderRef(t *testing.T) {
	t.Parallel()

	repo := &fakeCheckoutRepository{failuresLeft: 1}
	svc := NewService(repo, newTestGenerator())

	created, err := svc.Create(context.Background(), domain.Snapshot{
		UID:      1234,
		Receiver: "김하늘",
		Address:  "서울특별시 마포구 월드컵로 123",
		Phone:    "010-1234-5678",
		Items: []domain.Line{
			{ProductID: 1, ProductName: "黑色棒球帽", Size: "L", Quantity: 2, Price: 25000},
		},
	})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(created.OrderRef, "ORD20240102-"))
	assert.Equal(t, 2, repo.createCalls)
}

type fakeCheckoutRepository struct {
	created      []domain.Snapshot
	createCalls  int
	failuresLeft int
}

func (f *fakeCheckoutRepository) Create(_ context.Context, s domain.Snapshot) (int64, error) {
	f.createCalls++
	if f.failuresLeft > 0 {
		f.failuresLeft--
		return 0, repository.ErrDuplicatedOrderRef
	}
	f.created = append(f.created, s)
	return int64(len(f.created)), nil
}

func (f *fakeCheckoutRepository) FindByOrderRef(_ context.Context, _ string) (domain.Snapshot, error) {
	return domain.Snapshot{}, nil
}

func (f *fakeCheckoutRepository) FindByUIDAndOrderRef(_ context.Context, _ int64, _ string) (domain.Snapshot, error) {
	return domain.Snapshot{}, nil
}

func (f *fakeCheckoutRepository) DeleteByID(_ *egorm.Component, _ int64) error {
	return nil
}

func (f *fakeCheckoutRepository) DeleteCreatedBefore(_ context.Context, _ int64) (int64, error) {
	return 0, nil
}

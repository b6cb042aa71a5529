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
	"errors"

	"github.com/ecodeclub/capshop/internal/points/internal/domain"
	"github.com/ecodeclub/capshop/internal/points/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var (
	ErrInsufficientPoints        = dao.ErrInsufficientPoints
	ErrRecordChangedConcurrently = dao.ErrRecordChangedConcurrently
)

type PointsRepository interface {
	FindByUID(ctx context.Context, uid int64) (domain.Points, error)
	FindLogsByUID(ctx context.Context, uid int64, offset, limit int) ([]domain.PointsLog, error)
	CountLogsByUID(ctx context.Context, uid int64) (int64, error)
	Add(ctx context.Context, uid, amount int64, l domain.PointsLog) error
	AddTx(tx *egorm.Component, uid, amount int64, l domain.PointsLog) error
	UseTx(tx *egorm.Component, uid, amount int64, l domain.PointsLog) error
}

func NewPointsRepository(d dao.PointsDAO) PointsRepository {
	return &pointsRepository{dao: d}
}

type pointsRepository struct {
	dao dao.PointsDAO
}

func (p *pointsRepository) FindByUID(ctx context.Context, uid int64) (domain.Points, error) {
	res, err := p.dao.FindByUID(ctx, uid)
	if err != nil {
		// 尚无积分记录按零余额处理
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Points{UID: uid}, nil
		}
		return domain.Points{}, err
	}
	return domain.Points{
		ID:      res.ID,
		UID:     res.UID,
		Balance: res.Balance,
		Ctime:   res.Ctime,
		Utime:   res.Utime,
	}, nil
}

func (p *pointsRepository) FindLogsByUID(ctx context.Context, uid int64, offset, limit int) ([]domain.PointsLog, error) {
	logs, err := p.dao.FindLogsByUID(ctx, uid, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(logs, func(idx int, src dao.PointsLog) domain.PointsLog {
		return domain.PointsLog{
			ID:           src.ID,
			UID:          src.UID,
			ChangeAmount: src.ChangeAmount,
			BalanceAfter: src.BalanceAfter,
			Biz:          src.Biz,
			BizID:        src.BizID,
			Desc:         src.Desc,
			Ctime:        src.Ctime,
			Utime:        src.Utime,
		}
	}), nil
}

func (p *pointsRepository) CountLogsByUID(ctx context.Context, uid int64) (int64, error) {
	return p.dao.CountLogsByUID(ctx, uid)
}

func (p *pointsRepository) Add(ctx context.Context, uid, amount int64, l domain.PointsLog) error {
	return p.dao.Add(ctx, uid, amount, p.toLogEntity(l))
}

func (p *pointsRepository) AddTx(tx *egorm.Component, uid, amount int64, l domain.PointsLog) error {
	return p.dao.AddTx(tx, uid, amount, p.toLogEntity(l))
}

func (p *pointsRepository) UseTx(tx *egorm.Component, uid, amount int64, l domain.PointsLog) error {
	return p.dao.UseTx(tx, uid, amount, p.toLogEntity(l))
}

func (p *pointsRepository) toLogEntity(l domain.PointsLog) dao.PointsLog {
	return dao.PointsLog{
		Biz:   l.Biz,
		BizID: l.BizID,
		Desc:  l.Desc,
	}
}

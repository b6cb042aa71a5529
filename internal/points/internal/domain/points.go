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

package domain

// 购物返点比例: 按折扣前订单原价的 1% 返点, 向下取整
const accrualRateDivisor = 100

// ReviewBonus 撰写评价的固定奖励
const ReviewBonus = 500

// Points 用户积分余额, 余额永不为负
type Points struct {
	ID      int64
	UID     int64
	Balance int64
	Ctime   int64
	Utime   int64
}

// PointsLog 积分流水, 每次变动一条
type PointsLog struct {
	ID           int64
	UID          int64
	ChangeAmount int64
	BalanceAfter int64
	Biz          string
	BizID        int64
	Desc         string
	Ctime        int64
	Utime        int64
}

// AccrualForOrder 按订单折扣前原价计算返点
func AccrualForOrder(originalAmount int64) int64 {
	if originalAmount <= 0 {
		return 0
	}
	return originalAmount / accrualRateDivisor
}

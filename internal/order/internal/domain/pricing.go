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

// DiscountIntent 客户端在结算时声明的折扣意图, 服务端重算为准
type DiscountIntent struct {
	OriginalAmount int64
	CouponDiscount int64
	PointsUsed     int64
	FinalAmount    int64
	UserCouponID   int64
}

// ComputeOriginal 按订单行单价快照计算折扣前原价
func ComputeOriginal(items []Item) int64 {
	var total int64
	for _, it := range items {
		total += it.UnitPrice * it.Quantity
	}
	return total
}

// FinalPrice 应付金额, 不为负
func FinalPrice(original, couponDiscount, pointsDiscount int64) int64 {
	final := original - couponDiscount - pointsDiscount
	if final < 0 {
		return 0
	}
	return final
}

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

type ProductStatus uint8

func (s ProductStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	StatusOffShelf ProductStatus = 1
	StatusOnShelf  ProductStatus = 2
)

type Product struct {
	ID          int64
	SN          string
	Name        string
	Description string
	// Price 单价, 单位为韩元
	Price int64
	// Stock 旧版未分尺码的库存, 仅当该商品没有任何尺码库存记录时生效
	Stock      int64
	Image      string
	Status     ProductStatus
	SizeStocks []SizeStock
	Ctime      int64
	Utime      int64
}

// SizeStock 按(商品, 尺码)维度拆分的库存记录
type SizeStock struct {
	ID        int64
	ProductID int64
	// Size 尺码标签, 例如 S/M/L/XL/FREE
	Size     string
	Quantity int64
}

// StockBySize 返回指定尺码的可用库存。
// 尺码为空串表示旧版单尺码商品, 直接使用未分尺码的库存字段;
// 存在尺码记录但查不到对应尺码时, 视作无库存, 不回退旧字段。
func (p Product) StockBySize(size string) int64 {
	if size == "" {
		return p.Stock
	}
	for _, s := range p.SizeStocks {
		if s.Size == size {
			return s.Quantity
		}
	}
	return 0
}

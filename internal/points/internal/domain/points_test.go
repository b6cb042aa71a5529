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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccrualForOrder(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		originalAmount int64
		want           int64
	}{
		{name: "整百金额", originalAmount: 40000, want: 400},
		{name: "非整百金额向下取整", originalAmount: 10099, want: 100},
		{name: "不足一百返零", originalAmount: 99, want: 0},
		{name: "零金额", originalAmount: 0, want: 0},
		{name: "负金额", originalAmount: -100, want: 0},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, AccrualForOrder(tc.originalAmount))
		})
	}
}

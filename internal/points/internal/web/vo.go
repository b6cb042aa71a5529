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

package web

import "github.com/ecodeclub/ginx"

var systemErrorResult = ginx.Result{
	Code: 505001,
	Msg:  "系统错误",
}

type RetrieveBalanceResp struct {
	Balance int64 `json:"balance"`
}

// ListPointsLogsReq 分页查询积分流水
type ListPointsLogsReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ListPointsLogsResp struct {
	Total int64       `json:"total,omitempty"`
	Logs  []PointsLog `json:"logs,omitempty"`
}

type PointsLog struct {
	ChangeAmount int64  `json:"changeAmount"`
	BalanceAfter int64  `json:"balanceAfter"`
	Biz          string `json:"biz"`
	Desc         string `json:"desc"`
	Ctime        int64  `json:"ctime"`
}

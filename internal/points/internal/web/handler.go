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

import (
	"fmt"

	"github.com/ecodeclub/capshop/internal/points/internal/domain"
	"github.com/ecodeclub/capshop/internal/points/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/points")
	g.POST("/balance", ginx.S(h.RetrieveBalance))
	g.POST("/logs", ginx.BS[ListPointsLogsReq](h.ListPointsLogs))
}

// RetrieveBalance 查询当前用户积分余额
func (h *Handler) RetrieveBalance(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	p, err := h.svc.Balance(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, fmt.Errorf("查询积分余额失败: %w", err)
	}
	return ginx.Result{
		Data: RetrieveBalanceResp{Balance: p.Balance},
	}, nil
}

// ListPointsLogs 分页查询当前用户积分流水
func (h *Handler) ListPointsLogs(ctx *ginx.Context, req ListPointsLogsReq, sess session.Session) (ginx.Result, error) {
	logs, total, err := h.svc.History(ctx.Request.Context(), sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, fmt.Errorf("查询积分流水失败: %w", err)
	}
	return ginx.Result{
		Data: ListPointsLogsResp{
			Total: total,
			Logs: slice.Map(logs, func(idx int, src domain.PointsLog) PointsLog {
				return PointsLog{
					ChangeAmount: src.ChangeAmount,
					BalanceAfter: src.BalanceAfter,
					Biz:          src.Biz,
					Desc:         src.Desc,
					Ctime:        src.Ctime,
				}
			}),
		},
	}, nil
}

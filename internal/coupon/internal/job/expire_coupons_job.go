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

package job

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/capshop/internal/coupon/internal/service"
	"github.com/gotomicro/ego/core/elog"
)

// ExpireCouponsJob 将超过有效期的可用券批量置为过期
type ExpireCouponsJob struct {
	svc     service.Service
	timeout time.Duration
	logger  *elog.Component
}

func NewExpireCouponsJob(svc service.Service, timeout time.Duration) *ExpireCouponsJob {
	return &ExpireCouponsJob{svc: svc, timeout: timeout, logger: elog.DefaultLogger}
}

func (e *ExpireCouponsJob) Name() string {
	return "ExpireCouponsJob"
}

func (e *ExpireCouponsJob) Run() error {
	ctx, cancelFunc := context.WithTimeout(context.Background(), e.timeout)
	defer cancelFunc()
	count, err := e.svc.ExpireSweep(ctx)
	if err != nil {
		return fmt.Errorf("优惠券过期处理失败: %w", err)
	}
	e.logger.Info("优惠券过期处理完成", elog.Int64("expired", count))
	return nil
}

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
	"time"

	"github.com/ecodeclub/capshop/internal/order/internal/service"
	"github.com/gotomicro/ego/core/elog"
)

// AutoConfirmOrdersJob 送达超期未确认的订单定时强制确认收货
type AutoConfirmOrdersJob struct {
	svc     service.Service
	limit   int
	timeout time.Duration
	logger  *elog.Component
}

func NewAutoConfirmOrdersJob(svc service.Service, limit int, timeout time.Duration) *AutoConfirmOrdersJob {
	return &AutoConfirmOrdersJob{
		svc:     svc,
		limit:   limit,
		timeout: timeout,
		logger:  elog.DefaultLogger,
	}
}

func (a *AutoConfirmOrdersJob) Name() string {
	return "AutoConfirmOrdersJob"
}

func (a *AutoConfirmOrdersJob) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
	defer cancel()
	confirmed, err := a.svc.AutoConfirmDelivered(ctx, a.limit)
	if err != nil {
		return err
	}
	a.logger.Info("自动确认收货完成", elog.Int64("confirmed", confirmed))
	return nil
}

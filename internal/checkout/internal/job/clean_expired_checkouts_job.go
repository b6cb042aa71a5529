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

	"github.com/ecodeclub/capshop/internal/checkout/internal/service"
	"github.com/gotomicro/ego/core/elog"
)

// CleanExpiredCheckoutsJob 清理超过保留期仍未支付成功的结算快照
type CleanExpiredCheckoutsJob struct {
	svc       service.Service
	retention time.Duration
	timeout   time.Duration
	logger    *elog.Component
}

func NewCleanExpiredCheckoutsJob(svc service.Service, retention, timeout time.Duration) *CleanExpiredCheckoutsJob {
	return &CleanExpiredCheckoutsJob{
		svc:       svc,
		retention: retention,
		timeout:   timeout,
		logger:    elog.DefaultLogger,
	}
}

func (c *CleanExpiredCheckoutsJob) Name() string {
	return "CleanExpiredCheckoutsJob"
}

func (c *CleanExpiredCheckoutsJob) Run() error {
	ctx, cancelFunc := context.WithTimeout(context.Background(), c.timeout)
	defer cancelFunc()
	before := time.Now().Add(-c.retention)
	deleted, err := c.svc.DeleteCreatedBefore(ctx, before)
	if err != nil {
		return fmt.Errorf("清理过期结算快照失败: %w", err)
	}
	c.logger.Info("清理过期结算快照完成",
		elog.Int64("deleted", deleted),
		elog.String("before", before.Format(time.DateTime)))
	return nil
}

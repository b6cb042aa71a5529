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

package ioc

import (
	"context"
	"time"

	"github.com/ecodeclub/capshop/internal/checkout"
	"github.com/ecodeclub/capshop/internal/coupon"
	"github.com/ecodeclub/capshop/internal/order"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

// namedJob 各模块定时任务自带超时控制, 这里只做统一命名与计时
type namedJob interface {
	Name() string
	Run() error
}

func initCronJobs(
	checkoutSvc checkout.Service,
	couponSvc coupon.Service,
	orderSvc order.Service,
) []ecron.Ecron {
	type Config struct {
		CheckoutRetention time.Duration `yaml:"checkoutRetention"`
		JobTimeout        time.Duration `yaml:"jobTimeout"`
		AutoConfirmBatch  int           `yaml:"autoConfirmBatch"`
	}
	var cfg Config
	err := econf.UnmarshalKey("cron", &cfg)
	if err != nil {
		panic(err)
	}
	if cfg.CheckoutRetention <= 0 {
		cfg.CheckoutRetention = 24 * time.Hour
	}
	if cfg.JobTimeout <= 0 {
		cfg.JobTimeout = time.Minute
	}
	if cfg.AutoConfirmBatch <= 0 {
		cfg.AutoConfirmBatch = 100
	}

	jobs := []namedJob{
		checkout.InitCleanExpiredCheckoutsJob(checkoutSvc, cfg.CheckoutRetention, cfg.JobTimeout),
		coupon.InitExpireCouponsJob(couponSvc, cfg.JobTimeout),
		order.InitAutoConfirmOrdersJob(orderSvc, cfg.AutoConfirmBatch, cfg.JobTimeout),
	}
	res := make([]ecron.Ecron, 0, len(jobs))
	for _, j := range jobs {
		res = append(res, ecron.Load("cron.daily").Build(ecron.WithJob(funcJobWrapper(j))))
	}
	return res
}

func funcJobWrapper(job namedJob) ecron.FuncJob {
	name := job.Name()
	return func(ctx context.Context) error {
		start := time.Now()
		elog.DefaultLogger.Debug("开始运行",
			elog.String("cronjob", name))
		err := job.Run()
		if err != nil {
			elog.DefaultLogger.Error("执行失败",
				elog.FieldErr(err),
				elog.String("cronjob", name))
			return err
		}
		duration := time.Since(start)
		elog.DefaultLogger.Debug("结束运行",
			elog.String("cronjob", name),
			elog.FieldKey("运行时间"),
			elog.FieldCost(duration))
		return nil
	}
}

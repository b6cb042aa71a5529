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
	"time"

	"github.com/ecodeclub/capshop/internal/payment"
	"github.com/gotomicro/ego/core/econf"
)

func InitPaymentGateway() payment.Gateway {
	type Config struct {
		BaseURL   string        `yaml:"baseURL"`
		SecretKey string        `yaml:"secretKey"`
		Timeout   time.Duration `yaml:"timeout"`
	}
	var cfg Config
	err := econf.UnmarshalKey("toss", &cfg)
	if err != nil {
		panic(err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return payment.NewTossClient(cfg.BaseURL, cfg.SecretKey, cfg.Timeout)
}

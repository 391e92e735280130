// Copyright 2025 Campus Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package notify

import (
	"context"
	"time"

	"github.com/go-campus/campus/internal/pkg/notify/channel"
	"github.com/go-campus/campus/pkg/log"
	"github.com/go-campus/campus/pkg/safe"
)

// Notifier 尽力而为的站外通知。发送失败只记日志，
// 绝不作为业务错误向调用方传播。
type Notifier interface {
	Notify(address, subject, body string)
}

// NotifyManager dispatches notifications asynchronously
type NotifyManager struct {
	channel channel.INotifyChannel
	timeout time.Duration
}

func NewNotifyManager(ch channel.INotifyChannel, timeout time.Duration) *NotifyManager {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &NotifyManager{channel: ch, timeout: timeout}
}

// Notify 异步投递，事务提交后调用
func (nm *NotifyManager) Notify(address, subject, body string) {
	if nm.channel == nil || address == "" {
		return
	}
	safe.Go(func() {
		ctx, cancel := context.WithTimeout(context.Background(), nm.timeout)
		defer cancel()
		if err := nm.channel.Send(ctx, address, subject, body); err != nil {
			log.Errorw("notification delivery failed", "to", address, "subject", subject, "error", err)
		}
	})
}

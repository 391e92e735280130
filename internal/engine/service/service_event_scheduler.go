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

package service

import (
	"github.com/go-campus/campus/pkg/log"
	"github.com/robfig/cron/v3"
)

// EventSchedulerService 周期性把已结束的活动标记为完成
type EventSchedulerService struct {
	events *EventService
	cron   *cron.Cron
}

// 每小时整点扫描一次
const eventSweepSpec = "0 * * * *"

func NewEventSchedulerService(events *EventService) *EventSchedulerService {
	return &EventSchedulerService{
		events: events,
		cron:   cron.New(),
	}
}

func (ss *EventSchedulerService) Start() error {
	_, err := ss.cron.AddFunc(eventSweepSpec, func() {
		if err := ss.events.MarkDueEventsDone(); err != nil {
			log.Errorw("event sweep failed", "error", err)
		}
	})
	if err != nil {
		return err
	}
	ss.cron.Start()
	log.Info("event scheduler started")
	return nil
}

func (ss *EventSchedulerService) Stop() {
	ss.cron.Stop()
}

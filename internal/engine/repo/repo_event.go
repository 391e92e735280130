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

package repo

import (
	"time"

	"github.com/go-campus/campus/internal/engine/model"
	"gorm.io/gorm"
)

type IEventRepository interface {
	Create(e *model.Event) error
	GetByEventId(eventId string) (*model.Event, error)
	Save(e *model.Event) error
	ListUpcoming(clubId string, now time.Time) ([]model.Event, error)
	ListPast(clubId string, now time.Time) ([]model.Event, error)
	// ListDue 找出已过活动时间但还未标记完成的活动，定时任务使用
	ListDue(now time.Time) ([]model.Event, error)
	AddParticipant(p *model.EventParticipant) error
	GetParticipant(eventId, userId string) (*model.EventParticipant, error)
	RemoveParticipant(eventId, userId string) error
	CountParticipants(eventId string) (int64, error)
	WithTx(tx *gorm.DB) IEventRepository
}

type EventRepo struct {
	db *gorm.DB
}

func NewEventRepo(db *gorm.DB) IEventRepository {
	return &EventRepo{db: db}
}

func (evr *EventRepo) WithTx(tx *gorm.DB) IEventRepository {
	return &EventRepo{db: tx}
}

func (evr *EventRepo) Create(e *model.Event) error {
	return translateErr(evr.db.Create(e).Error)
}

func (evr *EventRepo) GetByEventId(eventId string) (*model.Event, error) {
	var e model.Event
	err := evr.db.Where("event_id = ?", eventId).First(&e).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return &e, nil
}

func (evr *EventRepo) Save(e *model.Event) error {
	return translateErr(evr.db.Save(e).Error)
}

func (evr *EventRepo) ListUpcoming(clubId string, now time.Time) ([]model.Event, error) {
	var events []model.Event
	err := evr.db.Where("club_id = ? AND is_active = 1 AND event_date >= ?", clubId, now).
		Order("event_date ASC").Find(&events).Error
	return events, translateErr(err)
}

func (evr *EventRepo) ListPast(clubId string, now time.Time) ([]model.Event, error) {
	var events []model.Event
	err := evr.db.Where("club_id = ? AND event_date < ?", clubId, now).
		Order("event_date DESC").Find(&events).Error
	return events, translateErr(err)
}

func (evr *EventRepo) ListDue(now time.Time) ([]model.Event, error) {
	var events []model.Event
	err := evr.db.Where("is_done = 0 AND event_date < ?", now).Find(&events).Error
	return events, translateErr(err)
}

func (evr *EventRepo) AddParticipant(p *model.EventParticipant) error {
	return translateErr(evr.db.Create(p).Error)
}

func (evr *EventRepo) GetParticipant(eventId, userId string) (*model.EventParticipant, error) {
	var p model.EventParticipant
	err := evr.db.Where("event_id = ? AND user_id = ?", eventId, userId).First(&p).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return &p, nil
}

func (evr *EventRepo) RemoveParticipant(eventId, userId string) error {
	return translateErr(evr.db.
		Where("event_id = ? AND user_id = ?", eventId, userId).
		Delete(&model.EventParticipant{}).Error)
}

func (evr *EventRepo) CountParticipants(eventId string) (int64, error) {
	var count int64
	err := evr.db.Model(&model.EventParticipant{}).
		Where("event_id = ?", eventId).Count(&count).Error
	return count, translateErr(err)
}

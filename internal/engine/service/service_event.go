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
	"errors"
	"time"

	"github.com/go-campus/campus/internal/engine/core"
	"github.com/go-campus/campus/internal/engine/model"
	"github.com/go-campus/campus/internal/engine/repo"
	"github.com/go-campus/campus/pkg/id"
	"github.com/go-campus/campus/pkg/log"
)

// EventService 社团活动与报名
type EventService struct {
	txm      repo.ITxManager
	repos    *repo.Repositories
	security *ClubSecurityService
}

func NewEventService(txm repo.ITxManager, repos *repo.Repositories, security *ClubSecurityService) *EventService {
	return &EventService{txm: txm, repos: repos, security: security}
}

// CreateEvent 社长/干部/管理员可为社团创建活动
func (es *EventService) CreateEvent(clubId, creatorId string, req *model.CreateEventReq) (*model.Event, error) {
	event := &model.Event{
		EventId:         id.GetUUID(),
		ClubId:          clubId,
		Name:            req.Name,
		Description:     req.Description,
		Location:        req.Location,
		EventDate:       req.EventDate,
		MaxParticipants: req.MaxParticipants,
		IsActive:        1,
	}

	err := es.txm.RunInTx(func(r *repo.Repositories) error {
		club, err := lockClub(r, clubId)
		if err != nil {
			return err
		}
		if club.Status != model.ClubStatusApproved || club.IsActive != 1 {
			return core.ErrClubNotApproved
		}

		ok, err := es.security.CanProcessRequests(r, creatorId, clubId)
		if err != nil {
			return err
		}
		if !ok {
			return core.ErrNotProcessor
		}

		return r.Event.Create(event)
	})
	if err != nil {
		return nil, err
	}
	return event, nil
}

// Join 报名活动，人数上限用社团行锁串行校验
func (es *EventService) Join(eventId, userId string) error {
	return es.txm.RunInTx(func(r *repo.Repositories) error {
		event, err := r.Event.GetByEventId(eventId)
		if err != nil {
			if errors.Is(err, core.ErrNotFound) {
				return core.ErrEventNotFound
			}
			return err
		}

		if _, err := lockClub(r, event.ClubId); err != nil {
			return err
		}

		if _, err := loadUser(r, userId); err != nil {
			return err
		}

		if _, err := r.Event.GetParticipant(eventId, userId); err == nil {
			return core.ErrAlreadyParticipant
		} else if !errors.Is(err, core.ErrNotFound) {
			return err
		}

		if event.MaxParticipants > 0 {
			count, err := r.Event.CountParticipants(eventId)
			if err != nil {
				return err
			}
			if count >= int64(event.MaxParticipants) {
				return core.ErrEventFull
			}
		}

		p := &model.EventParticipant{
			EventId:  eventId,
			UserId:   userId,
			JoinedAt: time.Now(),
		}
		if err := r.Event.AddParticipant(p); err != nil {
			if errors.Is(err, core.ErrConflict) {
				return core.ErrAlreadyParticipant
			}
			return err
		}
		return nil
	})
}

// Withdraw 退出报名
func (es *EventService) Withdraw(eventId, userId string) error {
	return es.txm.RunInTx(func(r *repo.Repositories) error {
		if _, err := r.Event.GetParticipant(eventId, userId); err != nil {
			if errors.Is(err, core.ErrNotFound) {
				return core.ErrEventNotFound
			}
			return err
		}
		return r.Event.RemoveParticipant(eventId, userId)
	})
}

func (es *EventService) ListUpcoming(clubId string) ([]model.Event, error) {
	return es.repos.Event.ListUpcoming(clubId, time.Now())
}

func (es *EventService) ListPast(clubId string) ([]model.Event, error) {
	return es.repos.Event.ListPast(clubId, time.Now())
}

// MarkDueEventsDone 将已过期的活动标记为完成，定时任务调用
func (es *EventService) MarkDueEventsDone() error {
	return es.txm.RunInTx(func(r *repo.Repositories) error {
		due, err := r.Event.ListDue(time.Now())
		if err != nil {
			return err
		}
		for i := range due {
			due[i].IsDone = 1
			if err := r.Event.Save(&due[i]); err != nil {
				return err
			}
		}
		if len(due) > 0 {
			log.Infow("marked past events done", "count", len(due))
		}
		return nil
	})
}

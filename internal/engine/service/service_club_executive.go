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
)

// ClubExecutiveService 维护社团干部名册。
// 干部必然是成员；社长相关的干部行只能经由换届流程变更。
type ClubExecutiveService struct {
	txm      repo.ITxManager
	repos    *repo.Repositories
	roleSync *RoleSyncService
}

func NewClubExecutiveService(txm repo.ITxManager, repos *repo.Repositories, roleSync *RoleSyncService) *ClubExecutiveService {
	return &ClubExecutiveService{txm: txm, repos: repos, roleSync: roleSync}
}

// AddExecutive 任命干部。用户若不是成员会被自动加入成员名册。
func (es *ClubExecutiveService) AddExecutive(clubId, userId, position string) error {
	return es.txm.RunInTx(func(r *repo.Repositories) error {
		if _, err := lockClub(r, clubId); err != nil {
			return err
		}
		if _, err := loadUser(r, userId); err != nil {
			return err
		}

		if _, err := r.ClubExecutive.GetActiveExecutive(clubId, userId); err == nil {
			return core.ErrExecAlreadyIn
		} else if !errors.Is(err, core.ErrNotFound) {
			return err
		}

		// 干部必须同时是成员
		if err := ensureActiveMember(r, clubId, userId); err != nil {
			return err
		}

		if err := upsertActiveExecutive(r, clubId, userId, position); err != nil {
			return err
		}

		return es.roleSync.Recompute(r, userId)
	})
}

// ensureActiveMember 保证用户持有活跃成员行，已在册时为幂等操作
func ensureActiveMember(r *repo.Repositories, clubId, userId string) error {
	err := addMemberTx(r, clubId, userId)
	if err != nil && !errors.Is(err, core.ErrMemberAlreadyIn) {
		return err
	}
	return nil
}

// upsertActiveExecutive 写入活跃干部行：历史行原地复活，否则新建
func upsertActiveExecutive(r *repo.Repositories, clubId, userId, position string) error {
	existing, err := r.ClubExecutive.GetExecutive(clubId, userId)
	switch {
	case err == nil:
		existing.Position = position
		if existing.IsActive != 1 {
			existing.IsActive = 1
			existing.JoinDate = time.Now()
			existing.LeaveDate = nil
		}
		return r.ClubExecutive.Save(existing)
	case errors.Is(err, core.ErrNotFound):
		e := &model.ClubExecutive{
			ClubId:   clubId,
			UserId:   userId,
			Position: position,
			IsActive: 1,
			JoinDate: time.Now(),
		}
		if err := r.ClubExecutive.AddExecutive(e); err != nil {
			if errors.Is(err, core.ErrConflict) {
				return core.ErrExecAlreadyIn
			}
			return err
		}
		return nil
	default:
		return err
	}
}

// RemoveExecutive 卸任干部。现任社长不可经此路径卸任，必须走换届。
func (es *ClubExecutiveService) RemoveExecutive(clubId, userId string) error {
	return es.txm.RunInTx(func(r *repo.Repositories) error {
		club, err := lockClub(r, clubId)
		if err != nil {
			return err
		}

		if club.HeadUserId == userId {
			return core.ErrHeadRowProtected
		}

		e, err := r.ClubExecutive.GetActiveExecutive(clubId, userId)
		if err != nil {
			if errors.Is(err, core.ErrNotFound) {
				return core.ErrExecNotFound
			}
			return err
		}

		now := time.Now()
		e.IsActive = 0
		e.LeaveDate = &now
		if err := r.ClubExecutive.Save(e); err != nil {
			return err
		}

		// 用户在其他社团可能仍是干部或社长，交给统一重算
		return es.roleSync.Recompute(r, userId)
	})
}

// UpdatePosition 修改干部职位。社长的 "Club Head" 行受保护。
func (es *ClubExecutiveService) UpdatePosition(clubId, userId, newPosition string) error {
	return es.txm.RunInTx(func(r *repo.Repositories) error {
		club, err := lockClub(r, clubId)
		if err != nil {
			return err
		}

		e, err := r.ClubExecutive.GetActiveExecutive(clubId, userId)
		if err != nil {
			if errors.Is(err, core.ErrNotFound) {
				return core.ErrExecNotFound
			}
			return err
		}

		if e.Position == model.PositionClubHead && club.HeadUserId == userId {
			return core.ErrHeadRowProtected
		}

		e.Position = newPosition
		return r.ClubExecutive.Save(e)
	})
}

// ReactivateExecutive 复活历史干部行并重算角色
func (es *ClubExecutiveService) ReactivateExecutive(clubId, userId, position string) error {
	return es.txm.RunInTx(func(r *repo.Repositories) error {
		if _, err := lockClub(r, clubId); err != nil {
			return err
		}

		e, err := r.ClubExecutive.GetExecutive(clubId, userId)
		if err != nil {
			if errors.Is(err, core.ErrNotFound) {
				return core.ErrExecNotFound
			}
			return err
		}
		if e.IsActive == 1 {
			return core.ErrExecAlreadyIn
		}

		if err := ensureActiveMember(r, clubId, userId); err != nil {
			return err
		}

		e.Position = position
		e.IsActive = 1
		e.JoinDate = time.Now()
		e.LeaveDate = nil
		if err := r.ClubExecutive.Save(e); err != nil {
			return err
		}

		return es.roleSync.Recompute(r, userId)
	})
}

func (es *ClubExecutiveService) ListActiveExecutives(clubId string) ([]model.ClubExecutive, error) {
	return es.repos.ClubExecutive.ListActive(clubId)
}

func (es *ClubExecutiveService) ListExecutiveHistory(clubId string) ([]model.ClubExecutive, error) {
	return es.repos.ClubExecutive.ListHistory(clubId)
}

// ListClubsOfExecutive 返回用户担任在任干部的全部社团关系
func (es *ClubExecutiveService) ListClubsOfExecutive(userId string) ([]model.ClubExecutive, error) {
	return es.repos.ClubExecutive.ListActiveByUser(userId)
}

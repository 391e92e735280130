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

// ClubMemberService 维护社团成员名册，软删除保留历史
type ClubMemberService struct {
	txm   repo.ITxManager
	repos *repo.Repositories
}

func NewClubMemberService(txm repo.ITxManager, repos *repo.Repositories) *ClubMemberService {
	return &ClubMemberService{txm: txm, repos: repos}
}

// AddMember 将用户加入社团。
// 已有活跃成员关系时返回 Conflict，重复加入只能走 ReactivateMember。
func (ms *ClubMemberService) AddMember(clubId, userId string) error {
	return ms.txm.RunInTx(func(r *repo.Repositories) error {
		// 1. 锁定社团行，同社团的并发变更在此串行
		if _, err := lockClub(r, clubId); err != nil {
			return err
		}

		// 2. 用户必须存在
		if _, err := loadUser(r, userId); err != nil {
			return err
		}

		// 3. 写入成员行
		return addMemberTx(r, clubId, userId)
	})
}

// addMemberTx 在调用方事务内写入成员关系，供注册审批、入社审批复用。
// 存在非活跃历史行时原地复活，唯一索引保证并发下只有一个赢家。
func addMemberTx(r *repo.Repositories, clubId, userId string) error {
	existing, err := r.ClubMember.GetMember(clubId, userId)
	switch {
	case err == nil:
		if existing.IsActive == 1 {
			return core.ErrMemberAlreadyIn
		}
		existing.IsActive = 1
		existing.JoinDate = time.Now()
		existing.LeaveDate = nil
		return r.ClubMember.Save(existing)
	case errors.Is(err, core.ErrNotFound):
		m := &model.ClubMember{
			ClubId:   clubId,
			UserId:   userId,
			IsActive: 1,
			JoinDate: time.Now(),
		}
		if err := r.ClubMember.AddMember(m); err != nil {
			if errors.Is(err, core.ErrConflict) {
				return core.ErrMemberAlreadyIn
			}
			return err
		}
		return nil
	default:
		return err
	}
}

// RemoveMember 移出成员。社长和在任干部不可直接移出。
func (ms *ClubMemberService) RemoveMember(clubId, userId string) error {
	return ms.txm.RunInTx(func(r *repo.Repositories) error {
		club, err := lockClub(r, clubId)
		if err != nil {
			return err
		}

		if club.HeadUserId == userId {
			return core.ErrMemberIsHead
		}

		// 干部身份未卸任前不允许退出成员名册
		if _, err := r.ClubExecutive.GetActiveExecutive(clubId, userId); err == nil {
			return core.ErrMemberIsExecutive
		} else if !errors.Is(err, core.ErrNotFound) {
			return err
		}

		m, err := r.ClubMember.GetActiveMember(clubId, userId)
		if err != nil {
			if errors.Is(err, core.ErrNotFound) {
				return core.ErrMemberNotFound
			}
			return err
		}

		now := time.Now()
		m.IsActive = 0
		m.LeaveDate = &now
		return r.ClubMember.Save(m)
	})
}

// ReactivateMember 复活历史成员行：join date 重置，leave date 清空
func (ms *ClubMemberService) ReactivateMember(clubId, userId string) error {
	return ms.txm.RunInTx(func(r *repo.Repositories) error {
		if _, err := lockClub(r, clubId); err != nil {
			return err
		}

		m, err := r.ClubMember.GetMember(clubId, userId)
		if err != nil {
			if errors.Is(err, core.ErrNotFound) {
				return core.ErrMemberNotFound
			}
			return err
		}
		if m.IsActive == 1 {
			return core.ErrMemberAlreadyIn
		}

		m.IsActive = 1
		m.JoinDate = time.Now()
		m.LeaveDate = nil
		return r.ClubMember.Save(m)
	})
}

func (ms *ClubMemberService) ListActiveMembers(clubId string) ([]model.ClubMember, error) {
	return ms.repos.ClubMember.ListActive(clubId)
}

func (ms *ClubMemberService) ListMemberHistory(clubId string) ([]model.ClubMember, error) {
	return ms.repos.ClubMember.ListHistory(clubId)
}

func (ms *ClubMemberService) CountActiveMembers(clubId string) (int64, error) {
	return ms.repos.ClubMember.CountActive(clubId)
}

func (ms *ClubMemberService) SearchMembers(clubId, name string) ([]model.User, error) {
	return ms.repos.ClubMember.SearchActiveByName(clubId, name)
}

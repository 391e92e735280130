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

	"github.com/go-campus/campus/internal/engine/core"
	"github.com/go-campus/campus/internal/engine/model"
	"github.com/go-campus/campus/internal/engine/repo"
	"github.com/go-campus/campus/pkg/log"
	"github.com/go-campus/campus/pkg/metrics"
)

// ClubService 社团基础信息与换届
type ClubService struct {
	txm      repo.ITxManager
	repos    *repo.Repositories
	roleSync *RoleSyncService
}

func NewClubService(txm repo.ITxManager, repos *repo.Repositories, roleSync *RoleSyncService) *ClubService {
	return &ClubService{txm: txm, repos: repos, roleSync: roleSync}
}

func (cs *ClubService) GetClub(clubId string) (*model.Club, error) {
	return cs.repos.Club.GetClubByClubId(clubId)
}

// UpdateClub 更新名称/简介，改名时重新做全局查重
func (cs *ClubService) UpdateClub(clubId string, req *model.UpdateClubReq) error {
	return cs.txm.RunInTx(func(r *repo.Repositories) error {
		club, err := lockClub(r, clubId)
		if err != nil {
			return err
		}

		updates := map[string]any{}
		if req.Name != "" && req.Name != club.Name {
			taken, err := r.Club.NameExists(req.Name)
			if err != nil {
				return err
			}
			if taken {
				return core.ErrClubNameTaken
			}
			updates["name"] = req.Name
		}
		if req.Description != "" {
			updates["description"] = req.Description
		}
		if len(updates) == 0 {
			return nil
		}
		if err := r.Club.UpdateClub(clubId, updates); err != nil {
			// 改名撞上 name 唯一索引
			if _, renamed := updates["name"]; renamed && errors.Is(err, core.ErrConflict) {
				return core.ErrClubNameTaken
			}
			return err
		}
		return nil
	})
}

// ChangeHead 换届。全部步骤在一个事务内完成，社团任何时刻
// 都不会出现零个或两个社长。
func (cs *ClubService) ChangeHead(clubId, newHeadUserId string) error {
	err := cs.txm.RunInTx(func(r *repo.Repositories) error {
		// 1. 锁定社团行，记录前任
		club, err := lockClub(r, clubId)
		if err != nil {
			return err
		}
		previousHead := club.HeadUserId

		if _, err := loadUser(r, newHeadUserId); err != nil {
			return err
		}

		// 2. 新任必须是在册成员
		if err := ensureActiveMember(r, clubId, newHeadUserId); err != nil {
			return err
		}

		// 3. 新任的干部行：缺失则新建，已有则改写职位为 Club Head
		if err := upsertActiveExecutive(r, clubId, newHeadUserId, model.PositionClubHead); err != nil {
			return err
		}

		// 4. 落库社长指针
		if err := r.Club.SetHead(clubId, newHeadUserId); err != nil {
			return err
		}

		// 5. 前任降级为 Former Club Head，历史永远保留
		if previousHead != "" && previousHead != newHeadUserId {
			if err := upsertActiveExecutive(r, clubId, previousHead, model.PositionFormerClubHead); err != nil {
				// 前任可能已是干部，复活/改名都不应冲突
				if !errors.Is(err, core.ErrExecAlreadyIn) {
					return err
				}
			}

			// 6. 双方角色重算；前任保有干部行，必然落在 executive 而非 member
			if err := cs.roleSync.Recompute(r, previousHead); err != nil {
				return err
			}
		}

		return cs.roleSync.Recompute(r, newHeadUserId)
	})
	if err != nil {
		return err
	}

	log.Infow("club head transferred", "clubId", clubId, "newHead", newHeadUserId)
	metrics.HeadTransfersTotal.Inc()
	return nil
}

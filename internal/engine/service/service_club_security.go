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
)

// ClubSecurityService 审批权限判定。
// 能力集合判断（管理员 或 社长 或 该社团在任干部），每次调用
// 现查现算，不做角色继承。
type ClubSecurityService struct {
	repos *repo.Repositories
}

func NewClubSecurityService(repos *repo.Repositories) *ClubSecurityService {
	return &ClubSecurityService{repos: repos}
}

// CanProcessRequests 判断 userId 是否可处理 clubId 的入社申请与活动管理
func (ss *ClubSecurityService) CanProcessRequests(r *repo.Repositories, userId, clubId string) (bool, error) {
	u, err := r.User.GetUserByUserId(userId)
	if err != nil {
		return false, err
	}
	if u.Role == model.RoleAdmin {
		return true, nil
	}

	club, err := r.Club.GetClubByClubId(clubId)
	if err != nil {
		return false, err
	}
	if club.HeadUserId == userId {
		return true, nil
	}

	if _, err := r.ClubExecutive.GetActiveExecutive(clubId, userId); err == nil {
		return true, nil
	} else if !errors.Is(err, core.ErrNotFound) {
		return false, err
	}

	return false, nil
}

// CanProcess 非事务路径上的便捷入口
func (ss *ClubSecurityService) CanProcess(userId, clubId string) (bool, error) {
	return ss.CanProcessRequests(ss.repos, userId, clubId)
}

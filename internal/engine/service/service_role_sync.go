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
	"github.com/go-campus/campus/internal/engine/model"
	"github.com/go-campus/campus/internal/engine/repo"
	"github.com/go-campus/campus/pkg/log"
	"github.com/go-campus/campus/pkg/metrics"
)

// RoleSyncService 是用户全局角色的唯一写入方。
// 任何改动成员/干部/社长关系的操作都必须在同一事务内调用 Recompute，
// 其他代码不得直接写 User.Role。
type RoleSyncService struct{}

func NewRoleSyncService() *RoleSyncService {
	return &RoleSyncService{}
}

// Recompute 按以下优先级重算角色并在变化时落库：
// 担任 >=1 个社团社长 -> head；否则有 >=1 条在任干部行 -> executive；
// 否则 member。admin 永远不被自动降级。
func (rs *RoleSyncService) Recompute(r *repo.Repositories, userId string) error {
	u, err := r.User.GetUserByUserId(userId)
	if err != nil {
		return err
	}
	if u.Role == model.RoleAdmin {
		return nil
	}

	headed, err := r.Club.CountHeadedBy(userId)
	if err != nil {
		return err
	}

	role := model.RoleMember
	if headed > 0 {
		role = model.RoleHead
	} else {
		execs, err := r.ClubExecutive.CountActiveByUser(userId)
		if err != nil {
			return err
		}
		if execs > 0 {
			role = model.RoleExecutive
		}
	}

	if role == u.Role {
		return nil
	}

	if err := r.User.UpdateRole(userId, role); err != nil {
		return err
	}
	log.Debugw("role recomputed", "userId", userId, "from", u.Role, "to", role)
	metrics.RoleSyncsTotal.WithLabelValues(role).Inc()
	return nil
}

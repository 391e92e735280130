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

// lockClub 锁定社团行。只有缺行映射为 ErrClubNotFound，
// 存储层故障（锁等待超时、断连）原样上抛，不得伪装成缺行。
func lockClub(r *repo.Repositories, clubId string) (*model.Club, error) {
	club, err := r.Club.GetClubForUpdate(clubId)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, core.ErrClubNotFound
		}
		return nil, err
	}
	return club, nil
}

// loadUser 读取用户，缺行映射为 ErrUserNotFound，其余错误原样上抛
func loadUser(r *repo.Repositories, userId string) (*model.User, error) {
	u, err := r.User.GetUserByUserId(userId)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, core.ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

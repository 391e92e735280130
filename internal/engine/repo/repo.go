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
	"errors"

	"github.com/go-campus/campus/internal/engine/core"
	"github.com/go-campus/campus/pkg/cache"
	"github.com/go-campus/campus/pkg/database"
	"gorm.io/gorm"
)

// Repositories 统一管理所有 repository
type Repositories struct {
	User              IUserRepository
	Club              IClubRepository
	ClubMember        IClubMemberRepository
	ClubExecutive     IClubExecutiveRepository
	MembershipRequest IMembershipRequestRepository
	Event             IEventRepository
}

// NewRepositories 初始化所有 repository
func NewRepositories(db database.IDatabase, cache cache.ICache) *Repositories {
	gdb := db.Database()
	return &Repositories{
		User:              NewUserRepo(gdb, cache),
		Club:              NewClubRepo(gdb),
		ClubMember:        NewClubMemberRepo(gdb),
		ClubExecutive:     NewClubExecutiveRepo(gdb),
		MembershipRequest: NewMembershipRequestRepo(gdb),
		Event:             NewEventRepo(gdb),
	}
}

// withTx 返回绑定到事务的 Repositories 副本
func (r *Repositories) withTx(tx *gorm.DB) *Repositories {
	return &Repositories{
		User:              r.User.WithTx(tx),
		Club:              r.Club.WithTx(tx),
		ClubMember:        r.ClubMember.WithTx(tx),
		ClubExecutive:     r.ClubExecutive.WithTx(tx),
		MembershipRequest: r.MembershipRequest.WithTx(tx),
		Event:             r.Event.WithTx(tx),
	}
}

// ITxManager 事务边界，所有治理类变更都在一个 RunInTx 内完成
type ITxManager interface {
	RunInTx(fn func(r *Repositories) error) error
}

type TxManager struct {
	db    database.IDatabase
	repos *Repositories
}

func NewTxManager(db database.IDatabase, repos *Repositories) ITxManager {
	return &TxManager{db: db, repos: repos}
}

// RunInTx 在单个数据库事务中执行 fn，fn 返回错误时整体回滚
func (tm *TxManager) RunInTx(fn func(r *Repositories) error) error {
	return tm.db.Database().Transaction(func(tx *gorm.DB) error {
		return fn(tm.repos.withTx(tx))
	})
}

func Count(tx *gorm.DB) (int64, error) {
	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// translateErr 将 gorm 哨兵错误映射为错误类别
func translateErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return core.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return core.ErrConflict
	default:
		return err
	}
}

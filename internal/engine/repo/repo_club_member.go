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
	"github.com/go-campus/campus/internal/engine/model"
	"gorm.io/gorm"
)

type IClubMemberRepository interface {
	AddMember(m *model.ClubMember) error
	// GetMember 返回 (club, user) 的成员行，无论活跃与否
	GetMember(clubId, userId string) (*model.ClubMember, error)
	GetActiveMember(clubId, userId string) (*model.ClubMember, error)
	Save(m *model.ClubMember) error
	ListActive(clubId string) ([]model.ClubMember, error)
	ListHistory(clubId string) ([]model.ClubMember, error)
	CountActive(clubId string) (int64, error)
	// SearchActiveByName 按用户名/姓名模糊检索某社团的在册成员
	SearchActiveByName(clubId, name string) ([]model.User, error)
	ListActiveByUser(userId string) ([]model.ClubMember, error)
	WithTx(tx *gorm.DB) IClubMemberRepository
}

type ClubMemberRepo struct {
	db *gorm.DB
}

func NewClubMemberRepo(db *gorm.DB) IClubMemberRepository {
	return &ClubMemberRepo{db: db}
}

func (mr *ClubMemberRepo) WithTx(tx *gorm.DB) IClubMemberRepository {
	return &ClubMemberRepo{db: tx}
}

func (mr *ClubMemberRepo) AddMember(m *model.ClubMember) error {
	return translateErr(mr.db.Create(m).Error)
}

func (mr *ClubMemberRepo) GetMember(clubId, userId string) (*model.ClubMember, error) {
	var m model.ClubMember
	err := mr.db.Where("club_id = ? AND user_id = ?", clubId, userId).First(&m).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return &m, nil
}

func (mr *ClubMemberRepo) GetActiveMember(clubId, userId string) (*model.ClubMember, error) {
	var m model.ClubMember
	err := mr.db.Where("club_id = ? AND user_id = ? AND is_active = 1", clubId, userId).First(&m).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return &m, nil
}

func (mr *ClubMemberRepo) Save(m *model.ClubMember) error {
	return translateErr(mr.db.Save(m).Error)
}

func (mr *ClubMemberRepo) ListActive(clubId string) ([]model.ClubMember, error) {
	var members []model.ClubMember
	err := mr.db.Where("club_id = ? AND is_active = 1", clubId).
		Order("join_date ASC").Find(&members).Error
	return members, translateErr(err)
}

func (mr *ClubMemberRepo) ListHistory(clubId string) ([]model.ClubMember, error) {
	var members []model.ClubMember
	err := mr.db.Where("club_id = ?", clubId).
		Order("join_date ASC").Find(&members).Error
	return members, translateErr(err)
}

func (mr *ClubMemberRepo) CountActive(clubId string) (int64, error) {
	var count int64
	err := mr.db.Model(&model.ClubMember{}).
		Where("club_id = ? AND is_active = 1", clubId).Count(&count).Error
	return count, translateErr(err)
}

func (mr *ClubMemberRepo) SearchActiveByName(clubId, name string) ([]model.User, error) {
	var users []model.User
	pattern := "%" + name + "%"
	err := mr.db.Model(&model.User{}).
		Joins("JOIN t_club_member cm ON cm.user_id = t_user.user_id").
		Where("cm.club_id = ? AND cm.is_active = 1", clubId).
		Where("t_user.username LIKE ? OR t_user.first_name LIKE ? OR t_user.last_name LIKE ?",
			pattern, pattern, pattern).
		Find(&users).Error
	return users, translateErr(err)
}

func (mr *ClubMemberRepo) ListActiveByUser(userId string) ([]model.ClubMember, error) {
	var members []model.ClubMember
	err := mr.db.Where("user_id = ? AND is_active = 1", userId).Find(&members).Error
	return members, translateErr(err)
}

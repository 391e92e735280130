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
	"gorm.io/gorm/clause"
)

type IClubRepository interface {
	CreateClub(c *model.Club) error
	GetClubByClubId(clubId string) (*model.Club, error)
	// GetClubForUpdate 以行锁读取社团，作为同社团并发变更的串行化点
	GetClubForUpdate(clubId string) (*model.Club, error)
	NameExists(name string) (bool, error)
	UpdateClub(clubId string, updates map[string]any) error
	SetStatus(clubId, status string) error
	SetHead(clubId, headUserId string) error
	ListByStatus(status string) ([]model.Club, error)
	ListHeadedBy(userId string) ([]model.Club, error)
	CountHeadedBy(userId string) (int64, error)
	WithTx(tx *gorm.DB) IClubRepository
}

type ClubRepo struct {
	db *gorm.DB
}

func NewClubRepo(db *gorm.DB) IClubRepository {
	return &ClubRepo{db: db}
}

func (cr *ClubRepo) WithTx(tx *gorm.DB) IClubRepository {
	return &ClubRepo{db: tx}
}

func (cr *ClubRepo) CreateClub(c *model.Club) error {
	return translateErr(cr.db.Create(c).Error)
}

func (cr *ClubRepo) GetClubByClubId(clubId string) (*model.Club, error) {
	var c model.Club
	if err := cr.db.Where("club_id = ?", clubId).First(&c).Error; err != nil {
		return nil, translateErr(err)
	}
	return &c, nil
}

func (cr *ClubRepo) GetClubForUpdate(clubId string) (*model.Club, error) {
	var c model.Club
	err := cr.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("club_id = ?", clubId).First(&c).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return &c, nil
}

// NameExists 全表范围忽略大小写查重，已拒绝社团的名称同样占用
func (cr *ClubRepo) NameExists(name string) (bool, error) {
	var count int64
	err := cr.db.Model(&model.Club{}).
		Where("LOWER(name) = LOWER(?)", name).
		Count(&count).Error
	if err != nil {
		return false, translateErr(err)
	}
	return count > 0, nil
}

func (cr *ClubRepo) UpdateClub(clubId string, updates map[string]any) error {
	return translateErr(cr.db.Model(&model.Club{}).
		Where("club_id = ?", clubId).
		Updates(updates).Error)
}

func (cr *ClubRepo) SetStatus(clubId, status string) error {
	return cr.UpdateClub(clubId, map[string]any{"status": status})
}

func (cr *ClubRepo) SetHead(clubId, headUserId string) error {
	return cr.UpdateClub(clubId, map[string]any{"head_user_id": headUserId})
}

func (cr *ClubRepo) ListByStatus(status string) ([]model.Club, error) {
	var clubs []model.Club
	err := cr.db.Where("status = ?", status).Order("created_at DESC").Find(&clubs).Error
	return clubs, translateErr(err)
}

func (cr *ClubRepo) ListHeadedBy(userId string) ([]model.Club, error) {
	var clubs []model.Club
	err := cr.db.Where("head_user_id = ?", userId).Find(&clubs).Error
	return clubs, translateErr(err)
}

// CountHeadedBy 只统计已批准的社团。待审社团的 head_user_id
// 仅是候任人，批准之前不构成社长身份。
func (cr *ClubRepo) CountHeadedBy(userId string) (int64, error) {
	var count int64
	err := cr.db.Model(&model.Club{}).
		Where("head_user_id = ? AND status = ?", userId, model.ClubStatusApproved).
		Count(&count).Error
	return count, translateErr(err)
}

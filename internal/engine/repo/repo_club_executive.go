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

type IClubExecutiveRepository interface {
	AddExecutive(e *model.ClubExecutive) error
	GetExecutive(clubId, userId string) (*model.ClubExecutive, error)
	GetActiveExecutive(clubId, userId string) (*model.ClubExecutive, error)
	Save(e *model.ClubExecutive) error
	ListActive(clubId string) ([]model.ClubExecutive, error)
	ListHistory(clubId string) ([]model.ClubExecutive, error)
	// CountActiveByUser 统计用户跨社团的在任干部行数，角色同步的输入之一
	CountActiveByUser(userId string) (int64, error)
	ListActiveByUser(userId string) ([]model.ClubExecutive, error)
	WithTx(tx *gorm.DB) IClubExecutiveRepository
}

type ClubExecutiveRepo struct {
	db *gorm.DB
}

func NewClubExecutiveRepo(db *gorm.DB) IClubExecutiveRepository {
	return &ClubExecutiveRepo{db: db}
}

func (er *ClubExecutiveRepo) WithTx(tx *gorm.DB) IClubExecutiveRepository {
	return &ClubExecutiveRepo{db: tx}
}

func (er *ClubExecutiveRepo) AddExecutive(e *model.ClubExecutive) error {
	return translateErr(er.db.Create(e).Error)
}

func (er *ClubExecutiveRepo) GetExecutive(clubId, userId string) (*model.ClubExecutive, error) {
	var e model.ClubExecutive
	err := er.db.Where("club_id = ? AND user_id = ?", clubId, userId).First(&e).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return &e, nil
}

func (er *ClubExecutiveRepo) GetActiveExecutive(clubId, userId string) (*model.ClubExecutive, error) {
	var e model.ClubExecutive
	err := er.db.Where("club_id = ? AND user_id = ? AND is_active = 1", clubId, userId).First(&e).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return &e, nil
}

func (er *ClubExecutiveRepo) Save(e *model.ClubExecutive) error {
	return translateErr(er.db.Save(e).Error)
}

func (er *ClubExecutiveRepo) ListActive(clubId string) ([]model.ClubExecutive, error) {
	var execs []model.ClubExecutive
	err := er.db.Where("club_id = ? AND is_active = 1", clubId).
		Order("join_date ASC").Find(&execs).Error
	return execs, translateErr(err)
}

func (er *ClubExecutiveRepo) ListHistory(clubId string) ([]model.ClubExecutive, error) {
	var execs []model.ClubExecutive
	err := er.db.Where("club_id = ?", clubId).
		Order("join_date ASC").Find(&execs).Error
	return execs, translateErr(err)
}

func (er *ClubExecutiveRepo) CountActiveByUser(userId string) (int64, error) {
	var count int64
	err := er.db.Model(&model.ClubExecutive{}).
		Where("user_id = ? AND is_active = 1", userId).Count(&count).Error
	return count, translateErr(err)
}

func (er *ClubExecutiveRepo) ListActiveByUser(userId string) ([]model.ClubExecutive, error) {
	var execs []model.ClubExecutive
	err := er.db.Where("user_id = ? AND is_active = 1", userId).Find(&execs).Error
	return execs, translateErr(err)
}

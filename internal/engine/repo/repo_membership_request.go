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

type IMembershipRequestRepository interface {
	Create(req *model.MembershipRequest) error
	GetByRequestId(requestId string) (*model.MembershipRequest, error)
	GetPending(clubId, userId string) (*model.MembershipRequest, error)
	Save(req *model.MembershipRequest) error
	Delete(requestId string) error
	ListByClub(clubId, status string) ([]model.MembershipRequest, error)
	ListByUser(userId string) ([]model.MembershipRequest, error)
	WithTx(tx *gorm.DB) IMembershipRequestRepository
}

type MembershipRequestRepo struct {
	db *gorm.DB
}

func NewMembershipRequestRepo(db *gorm.DB) IMembershipRequestRepository {
	return &MembershipRequestRepo{db: db}
}

func (rr *MembershipRequestRepo) WithTx(tx *gorm.DB) IMembershipRequestRepository {
	return &MembershipRequestRepo{db: tx}
}

func (rr *MembershipRequestRepo) Create(req *model.MembershipRequest) error {
	return translateErr(rr.db.Create(req).Error)
}

func (rr *MembershipRequestRepo) GetByRequestId(requestId string) (*model.MembershipRequest, error) {
	var req model.MembershipRequest
	err := rr.db.Where("request_id = ?", requestId).First(&req).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return &req, nil
}

func (rr *MembershipRequestRepo) GetPending(clubId, userId string) (*model.MembershipRequest, error) {
	var req model.MembershipRequest
	err := rr.db.Where("club_id = ? AND user_id = ? AND status = ?",
		clubId, userId, model.RequestStatusPending).First(&req).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return &req, nil
}

func (rr *MembershipRequestRepo) Save(req *model.MembershipRequest) error {
	return translateErr(rr.db.Save(req).Error)
}

func (rr *MembershipRequestRepo) Delete(requestId string) error {
	return translateErr(rr.db.Where("request_id = ?", requestId).
		Delete(&model.MembershipRequest{}).Error)
}

func (rr *MembershipRequestRepo) ListByClub(clubId, status string) ([]model.MembershipRequest, error) {
	var reqs []model.MembershipRequest
	q := rr.db.Where("club_id = ?", clubId)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Order("request_date DESC").Find(&reqs).Error
	return reqs, translateErr(err)
}

func (rr *MembershipRequestRepo) ListByUser(userId string) ([]model.MembershipRequest, error) {
	var reqs []model.MembershipRequest
	err := rr.db.Where("user_id = ?", userId).Order("request_date DESC").Find(&reqs).Error
	return reqs, translateErr(err)
}

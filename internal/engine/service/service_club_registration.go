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
	"fmt"

	"github.com/go-campus/campus/internal/engine/core"
	"github.com/go-campus/campus/internal/engine/model"
	"github.com/go-campus/campus/internal/engine/repo"
	"github.com/go-campus/campus/internal/pkg/notify"
	"github.com/go-campus/campus/pkg/id"
	"github.com/go-campus/campus/pkg/log"
	"github.com/go-campus/campus/pkg/metrics"
)

// ClubRegistrationService 社团注册审批流。
// 状态机 PENDING -> {APPROVED, REJECTED}，每次提交各自终态，
// 名称一旦被占用（含被拒绝的提交）不再回收，重新提交产生新记录。
type ClubRegistrationService struct {
	txm      repo.ITxManager
	repos    *repo.Repositories
	roleSync *RoleSyncService
	tokens   *VerificationTokenStore
	notifier notify.Notifier
}

func NewClubRegistrationService(
	txm repo.ITxManager,
	repos *repo.Repositories,
	roleSync *RoleSyncService,
	tokens *VerificationTokenStore,
	notifier notify.Notifier,
) *ClubRegistrationService {
	return &ClubRegistrationService{
		txm:      txm,
		repos:    repos,
		roleSync: roleSync,
		tokens:   tokens,
		notifier: notifier,
	}
}

// Register 提交注册。社团以 PENDING + active 入库，指定社长人选，
// 此时不产生任何成员/干部行；校验令牌发给管理员。
func (rs *ClubRegistrationService) Register(req *model.CreateClubReq) (*model.Club, error) {
	club := &model.Club{
		ClubId:      id.GetUUID(),
		Name:        req.Name,
		Description: req.Description,
		Status:      model.ClubStatusPending,
		IsActive:    1,
		HeadUserId:  req.HeadUserId,
	}

	err := rs.txm.RunInTx(func(r *repo.Repositories) error {
		taken, err := r.Club.NameExists(req.Name)
		if err != nil {
			return err
		}
		if taken {
			return core.ErrClubNameTaken
		}

		if _, err := loadUser(r, req.HeadUserId); err != nil {
			return err
		}

		// name 上的唯一索引兜底并发提交，查重通过后仍可能撞键
		if err := r.Club.CreateClub(club); err != nil {
			if errors.Is(err, core.ErrConflict) {
				return core.ErrClubNameTaken
			}
			return err
		}
		return nil
	})
	if err != nil {
		metrics.ClubRegistrationsTotal.WithLabelValues("failed").Inc()
		return nil, err
	}

	// 提交成功后签发令牌并通知管理员，投递失败不影响注册结果
	token := rs.tokens.Issue(club.ClubId)
	rs.notifyAdmins(club, token)

	metrics.ClubRegistrationsTotal.WithLabelValues("submitted").Inc()
	log.Infow("club registration submitted", "clubId", club.ClubId, "name", club.Name)
	return club, nil
}

// Approve 审核通过：置 APPROVED，给社长种入成员与 Club Head 干部行，
// 重算其角色。令牌在落库成功后消费。
func (rs *ClubRegistrationService) Approve(clubId, token string) error {
	if !rs.tokens.Validate(token, clubId) {
		return core.ErrInvalidToken
	}

	var headUserId string
	err := rs.txm.RunInTx(func(r *repo.Repositories) error {
		club, err := lockClub(r, clubId)
		if err != nil {
			return err
		}
		if club.Status != model.ClubStatusPending {
			return core.ErrClubNotPending
		}
		headUserId = club.HeadUserId

		if err := r.Club.SetStatus(clubId, model.ClubStatusApproved); err != nil {
			return err
		}

		if err := ensureActiveMember(r, clubId, headUserId); err != nil {
			return err
		}
		if err := upsertActiveExecutive(r, clubId, headUserId, model.PositionClubHead); err != nil {
			return err
		}

		return rs.roleSync.Recompute(r, headUserId)
	})
	if err != nil {
		return err
	}

	rs.tokens.Consume(token)
	rs.notifyHead(headUserId, clubId, "Your club has been approved", "Congratulations, your club registration was approved.")
	metrics.ClubReviewsTotal.WithLabelValues("approved").Inc()
	log.Infow("club approved", "clubId", clubId)
	return nil
}

// Reject 审核拒绝：置 REJECTED，不产生任何名册行
func (rs *ClubRegistrationService) Reject(clubId, token, reason string) error {
	if !rs.tokens.Validate(token, clubId) {
		return core.ErrInvalidToken
	}

	var headUserId string
	err := rs.txm.RunInTx(func(r *repo.Repositories) error {
		club, err := lockClub(r, clubId)
		if err != nil {
			return err
		}
		if club.Status != model.ClubStatusPending {
			return core.ErrClubNotPending
		}
		headUserId = club.HeadUserId

		return r.Club.SetStatus(clubId, model.ClubStatusRejected)
	})
	if err != nil {
		return err
	}

	rs.tokens.Consume(token)
	rs.notifyHead(headUserId, clubId, "Your club registration was rejected", reason)
	metrics.ClubReviewsTotal.WithLabelValues("rejected").Inc()
	log.Infow("club rejected", "clubId", clubId, "reason", reason)
	return nil
}

// CreateClub 管理员直建，跳过审核直接 APPROVED 并完成种入
func (rs *ClubRegistrationService) CreateClub(req *model.CreateClubReq) (*model.Club, error) {
	club := &model.Club{
		ClubId:      id.GetUUID(),
		Name:        req.Name,
		Description: req.Description,
		Status:      model.ClubStatusApproved,
		IsActive:    1,
		HeadUserId:  req.HeadUserId,
	}

	err := rs.txm.RunInTx(func(r *repo.Repositories) error {
		taken, err := r.Club.NameExists(req.Name)
		if err != nil {
			return err
		}
		if taken {
			return core.ErrClubNameTaken
		}

		if _, err := loadUser(r, req.HeadUserId); err != nil {
			return err
		}

		if err := r.Club.CreateClub(club); err != nil {
			if errors.Is(err, core.ErrConflict) {
				return core.ErrClubNameTaken
			}
			return err
		}

		if err := ensureActiveMember(r, club.ClubId, req.HeadUserId); err != nil {
			return err
		}
		if err := upsertActiveExecutive(r, club.ClubId, req.HeadUserId, model.PositionClubHead); err != nil {
			return err
		}

		return rs.roleSync.Recompute(r, req.HeadUserId)
	})
	if err != nil {
		return nil, err
	}
	return club, nil
}

func (rs *ClubRegistrationService) ListPending() ([]model.Club, error) {
	return rs.repos.Club.ListByStatus(model.ClubStatusPending)
}

func (rs *ClubRegistrationService) ListApproved() ([]model.Club, error) {
	return rs.repos.Club.ListByStatus(model.ClubStatusApproved)
}

func (rs *ClubRegistrationService) ListRejected() ([]model.Club, error) {
	return rs.repos.Club.ListByStatus(model.ClubStatusRejected)
}

func (rs *ClubRegistrationService) notifyAdmins(club *model.Club, token string) {
	admins, err := rs.repos.User.ListAdmins()
	if err != nil {
		log.Errorw("failed to list admins for registration notice", "error", err)
		return
	}
	subject := fmt.Sprintf("Club registration pending review: %s", club.Name)
	body := fmt.Sprintf("Club %q (%s) is waiting for review.\nVerification token: %s", club.Name, club.ClubId, token)
	for _, admin := range admins {
		rs.notifier.Notify(admin.Email, subject, body)
	}
}

func (rs *ClubRegistrationService) notifyHead(headUserId, clubId, subject, body string) {
	head, err := rs.repos.User.GetUserByUserId(headUserId)
	if err != nil {
		log.Errorw("failed to load head for review notice", "clubId", clubId, "error", err)
		return
	}
	rs.notifier.Notify(head.Email, subject, body)
}

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
	"time"

	"github.com/go-campus/campus/internal/engine/core"
	"github.com/go-campus/campus/internal/engine/model"
	"github.com/go-campus/campus/internal/engine/repo"
	"github.com/go-campus/campus/internal/pkg/notify"
	"github.com/go-campus/campus/pkg/id"
	"github.com/go-campus/campus/pkg/log"
	"github.com/go-campus/campus/pkg/metrics"
)

// MembershipRequestService 入社申请流
type MembershipRequestService struct {
	txm      repo.ITxManager
	repos    *repo.Repositories
	security *ClubSecurityService
	notifier notify.Notifier
}

func NewMembershipRequestService(
	txm repo.ITxManager,
	repos *repo.Repositories,
	security *ClubSecurityService,
	notifier notify.Notifier,
) *MembershipRequestService {
	return &MembershipRequestService{
		txm:      txm,
		repos:    repos,
		security: security,
		notifier: notifier,
	}
}

// Create 提交入社申请。社团必须 APPROVED 且 active，
// 申请人不能已是在册成员，同一 (user, club) 只允许一条 PENDING。
func (rs *MembershipRequestService) Create(userId, clubId, message string) (*model.MembershipRequest, error) {
	req := &model.MembershipRequest{
		RequestId:   id.GetUUID(),
		UserId:      userId,
		ClubId:      clubId,
		Message:     message,
		Status:      model.RequestStatusPending,
		RequestDate: time.Now(),
	}

	err := rs.txm.RunInTx(func(r *repo.Repositories) error {
		club, err := lockClub(r, clubId)
		if err != nil {
			return err
		}
		if club.Status != model.ClubStatusApproved || club.IsActive != 1 {
			return core.ErrClubNotApproved
		}

		if _, err := loadUser(r, userId); err != nil {
			return err
		}

		if _, err := r.ClubMember.GetActiveMember(clubId, userId); err == nil {
			return core.ErrMemberAlreadyIn
		} else if !errors.Is(err, core.ErrNotFound) {
			return err
		}

		if _, err := r.MembershipRequest.GetPending(clubId, userId); err == nil {
			return core.ErrDuplicateRequest
		} else if !errors.Is(err, core.ErrNotFound) {
			return err
		}

		return r.MembershipRequest.Create(req)
	})
	if err != nil {
		return nil, err
	}

	metrics.MembershipRequestsTotal.WithLabelValues("created").Inc()
	return req, nil
}

// Approve 批准申请并把申请人写入成员名册
func (rs *MembershipRequestService) Approve(requestId, processorId, message string) error {
	var requesterId string
	err := rs.txm.RunInTx(func(r *repo.Repositories) error {
		req, err := rs.loadPendingForProcess(r, requestId, processorId)
		if err != nil {
			return err
		}
		requesterId = req.UserId

		// 名册写入与状态流转同一事务
		if err := addMemberTx(r, req.ClubId, req.UserId); err != nil {
			return err
		}

		now := time.Now()
		req.Status = model.RequestStatusApproved
		req.ProcessedBy = processorId
		req.ProcessedAt = &now
		req.ResponseMessage = message
		return r.MembershipRequest.Save(req)
	})
	if err != nil {
		return err
	}

	rs.notifyRequester(requesterId, "Your membership request was approved", message)
	metrics.MembershipRequestsTotal.WithLabelValues("approved").Inc()
	return nil
}

// Reject 拒绝申请
func (rs *MembershipRequestService) Reject(requestId, processorId, message string) error {
	var requesterId string
	err := rs.txm.RunInTx(func(r *repo.Repositories) error {
		req, err := rs.loadPendingForProcess(r, requestId, processorId)
		if err != nil {
			return err
		}
		requesterId = req.UserId

		now := time.Now()
		req.Status = model.RequestStatusRejected
		req.ProcessedBy = processorId
		req.ProcessedAt = &now
		req.ResponseMessage = message
		return r.MembershipRequest.Save(req)
	})
	if err != nil {
		return err
	}

	rs.notifyRequester(requesterId, "Your membership request was rejected", message)
	metrics.MembershipRequestsTotal.WithLabelValues("rejected").Inc()
	return nil
}

// loadPendingForProcess 加载申请并做状态与处理人校验。
// 先锁社团行再做判定，与其他同社团变更互斥。
func (rs *MembershipRequestService) loadPendingForProcess(r *repo.Repositories, requestId, processorId string) (*model.MembershipRequest, error) {
	req, err := r.MembershipRequest.GetByRequestId(requestId)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, core.ErrRequestNotFound
		}
		return nil, err
	}

	if _, err := lockClub(r, req.ClubId); err != nil {
		return nil, err
	}

	// 锁内重读，避免并发处理同一申请
	req, err = r.MembershipRequest.GetByRequestId(requestId)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, core.ErrRequestNotFound
		}
		return nil, err
	}
	if req.Status != model.RequestStatusPending {
		return nil, core.ErrRequestProcessed
	}

	ok, err := rs.security.CanProcessRequests(r, processorId, req.ClubId)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, core.ErrNotProcessor
	}

	return req, nil
}

// Cancel 申请人撤回自己的 PENDING 申请，记录直接删除
func (rs *MembershipRequestService) Cancel(requestId, userId string) error {
	return rs.txm.RunInTx(func(r *repo.Repositories) error {
		req, err := r.MembershipRequest.GetByRequestId(requestId)
		if err != nil {
			if errors.Is(err, core.ErrNotFound) {
				return core.ErrRequestNotFound
			}
			return err
		}

		if req.UserId != userId {
			return core.ErrNotRequester
		}
		if req.Status != model.RequestStatusPending {
			return core.ErrRequestProcessed
		}

		return r.MembershipRequest.Delete(requestId)
	})
}

func (rs *MembershipRequestService) GetRequest(requestId string) (*model.MembershipRequest, error) {
	req, err := rs.repos.MembershipRequest.GetByRequestId(requestId)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, core.ErrRequestNotFound
		}
		return nil, err
	}
	return req, nil
}

func (rs *MembershipRequestService) ListByClub(clubId, status string) ([]model.MembershipRequest, error) {
	return rs.repos.MembershipRequest.ListByClub(clubId, status)
}

func (rs *MembershipRequestService) ListByUser(userId string) ([]model.MembershipRequest, error) {
	return rs.repos.MembershipRequest.ListByUser(userId)
}

func (rs *MembershipRequestService) notifyRequester(userId, subject, body string) {
	u, err := rs.repos.User.GetUserByUserId(userId)
	if err != nil {
		log.Errorw("failed to load requester for notice", "userId", userId, "error", err)
		return
	}
	rs.notifier.Notify(u.Email, subject, body)
}

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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-campus/campus/internal/engine/core"
	"github.com/go-campus/campus/internal/engine/model"
)

func newRequestService(env *fakeEnv) *MembershipRequestService {
	security := NewClubSecurityService(env.repos)
	return NewMembershipRequestService(env.txm, env.repos, security, env.notifier)
}

func seedApprovedClub(env *fakeEnv) {
	env.addUser("head", model.RoleHead)
	env.addClub("c1", "Chess Club", model.ClubStatusApproved, "head")
	env.addMember("c1", "head", 1)
	env.addExecutive("c1", "head", model.PositionClubHead, 1)
}

func TestCreateRequest(t *testing.T) {
	env := newFakeEnv()
	seedApprovedClub(env)
	env.addUser("alice", model.RoleMember)

	rs := newRequestService(env)

	req, err := rs.Create("alice", "c1", "please let me in")
	require.NoError(t, err)
	require.NotNil(t, req)
	assert.Equal(t, model.RequestStatusPending, req.Status)
	assert.NotEmpty(t, req.RequestId)
	assert.False(t, req.RequestDate.IsZero())

	// 同一 (user, club) 的第二条 PENDING 被拒
	_, err = rs.Create("alice", "c1", "again")
	assert.ErrorIs(t, err, core.ErrDuplicateRequest)
}

func TestCreateRequest_Preconditions(t *testing.T) {
	env := newFakeEnv()
	env.addUser("head", model.RoleHead)
	env.addUser("alice", model.RoleMember)
	env.addClub("pending", "Film Club", model.ClubStatusPending, "head")
	seedApprovedClub(env)
	env.addMember("c1", "alice", 1)

	rs := newRequestService(env)

	// 未获批的社团不接受申请
	_, err := rs.Create("alice", "pending", "")
	assert.ErrorIs(t, err, core.ErrClubNotApproved)

	// 在册成员无需申请
	_, err = rs.Create("alice", "c1", "")
	assert.ErrorIs(t, err, core.ErrMemberAlreadyIn)

	_, err = rs.Create("ghost", "c1", "")
	assert.ErrorIs(t, err, core.ErrUserNotFound)

	_, err = rs.Create("alice", "nope", "")
	assert.ErrorIs(t, err, core.ErrClubNotFound)
}

func TestApproveRequest(t *testing.T) {
	env := newFakeEnv()
	seedApprovedClub(env)
	env.addUser("alice", model.RoleMember)

	rs := newRequestService(env)

	req, err := rs.Create("alice", "c1", "hi")
	require.NoError(t, err)

	require.NoError(t, rs.Approve(req.RequestId, "head", "welcome aboard"))

	stored, err := rs.GetRequest(req.RequestId)
	require.NoError(t, err)
	assert.Equal(t, model.RequestStatusApproved, stored.Status)
	assert.Equal(t, "head", stored.ProcessedBy)
	require.NotNil(t, stored.ProcessedAt)
	assert.Equal(t, "welcome aboard", stored.ResponseMessage)

	// 审批与入册同一事务
	m := env.member("c1", "alice")
	require.NotNil(t, m)
	assert.Equal(t, 1, m.IsActive)

	// 申请人收到通知
	notices := env.notifier.notices()
	require.NotEmpty(t, notices)
	assert.Equal(t, "alice@example.edu", notices[len(notices)-1].Address)
}

func TestApproveRequest_OnlyProcessorsAllowed(t *testing.T) {
	env := newFakeEnv()
	seedApprovedClub(env)
	env.addUser("alice", model.RoleMember)
	env.addUser("mallory", model.RoleMember)
	env.addMember("c1", "mallory", 1)

	rs := newRequestService(env)

	req, err := rs.Create("alice", "c1", "")
	require.NoError(t, err)

	// 普通成员无权处理
	err = rs.Approve(req.RequestId, "mallory", "")
	assert.ErrorIs(t, err, core.ErrNotProcessor)
	assert.Nil(t, env.member("c1", "alice"))

	// 该社团的在任干部可以
	env.addUser("treasurer", model.RoleExecutive)
	env.addMember("c1", "treasurer", 1)
	env.addExecutive("c1", "treasurer", "Treasurer", 1)
	require.NoError(t, rs.Approve(req.RequestId, "treasurer", ""))
}

func TestApproveRequest_AdminAllowed(t *testing.T) {
	env := newFakeEnv()
	seedApprovedClub(env)
	env.addUser("alice", model.RoleMember)
	env.addUser("admin", model.RoleAdmin)

	rs := newRequestService(env)

	req, err := rs.Create("alice", "c1", "")
	require.NoError(t, err)
	require.NoError(t, rs.Approve(req.RequestId, "admin", ""))
}

func TestProcessRequest_Terminal(t *testing.T) {
	env := newFakeEnv()
	seedApprovedClub(env)
	env.addUser("alice", model.RoleMember)

	rs := newRequestService(env)

	req, err := rs.Create("alice", "c1", "")
	require.NoError(t, err)

	require.NoError(t, rs.Reject(req.RequestId, "head", "roster is full"))

	stored, err := rs.GetRequest(req.RequestId)
	require.NoError(t, err)
	assert.Equal(t, model.RequestStatusRejected, stored.Status)
	assert.Nil(t, env.member("c1", "alice"))

	// 已处理的申请不允许二次处理
	assert.ErrorIs(t, rs.Approve(req.RequestId, "head", ""), core.ErrRequestProcessed)
	assert.ErrorIs(t, rs.Reject(req.RequestId, "head", ""), core.ErrRequestProcessed)

	// 拒绝后可以重新申请
	_, err = rs.Create("alice", "c1", "second try")
	require.NoError(t, err)
}

func TestCancelRequest(t *testing.T) {
	env := newFakeEnv()
	seedApprovedClub(env)
	env.addUser("alice", model.RoleMember)
	env.addUser("bob", model.RoleMember)

	rs := newRequestService(env)

	req, err := rs.Create("alice", "c1", "")
	require.NoError(t, err)

	// 只有申请人本人能撤回
	assert.ErrorIs(t, rs.Cancel(req.RequestId, "bob"), core.ErrNotRequester)

	require.NoError(t, rs.Cancel(req.RequestId, "alice"))

	// 撤回即删除，随后可重新提交
	_, err = rs.GetRequest(req.RequestId)
	assert.ErrorIs(t, err, core.ErrRequestNotFound)

	_, err = rs.Create("alice", "c1", "take two")
	require.NoError(t, err)
}

func TestCancelRequest_ProcessedIsImmutable(t *testing.T) {
	env := newFakeEnv()
	seedApprovedClub(env)
	env.addUser("alice", model.RoleMember)

	rs := newRequestService(env)

	req, err := rs.Create("alice", "c1", "")
	require.NoError(t, err)
	require.NoError(t, rs.Approve(req.RequestId, "head", ""))

	assert.ErrorIs(t, rs.Cancel(req.RequestId, "alice"), core.ErrRequestProcessed)
}

func TestListRequests(t *testing.T) {
	env := newFakeEnv()
	seedApprovedClub(env)
	env.addUser("alice", model.RoleMember)
	env.addUser("bob", model.RoleMember)

	rs := newRequestService(env)

	reqA, err := rs.Create("alice", "c1", "")
	require.NoError(t, err)
	_, err = rs.Create("bob", "c1", "")
	require.NoError(t, err)
	require.NoError(t, rs.Approve(reqA.RequestId, "head", ""))

	all, err := rs.ListByClub("c1", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	pendingOnly, err := rs.ListByClub("c1", model.RequestStatusPending)
	require.NoError(t, err)
	require.Len(t, pendingOnly, 1)
	assert.Equal(t, "bob", pendingOnly[0].UserId)

	mine, err := rs.ListByUser("alice")
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}

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
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-campus/campus/internal/engine/core"
	"github.com/go-campus/campus/internal/engine/model"
)

func newEventService(env *fakeEnv) *EventService {
	return NewEventService(env.txm, env.repos, NewClubSecurityService(env.repos))
}

func TestCreateEvent(t *testing.T) {
	env := newFakeEnv()
	seedApprovedClub(env)

	es := newEventService(env)

	event, err := es.CreateEvent("c1", "head", &model.CreateEventReq{
		Name:      "Blitz Tournament",
		Location:  "Room 101",
		EventDate: time.Now().Add(48 * time.Hour),
	})
	require.NoError(t, err)
	require.NotNil(t, event)
	assert.NotEmpty(t, event.EventId)
	assert.Equal(t, 1, event.IsActive)

	upcoming, err := es.ListUpcoming("c1")
	require.NoError(t, err)
	assert.Len(t, upcoming, 1)
}

func TestCreateEvent_Preconditions(t *testing.T) {
	env := newFakeEnv()
	seedApprovedClub(env)
	env.addUser("member", model.RoleMember)
	env.addMember("c1", "member", 1)
	env.addUser("founder", model.RoleMember)
	env.addClub("pending", "Film Club", model.ClubStatusPending, "founder")

	es := newEventService(env)
	req := &model.CreateEventReq{Name: "x", EventDate: time.Now().Add(time.Hour)}

	// 普通成员无权创建活动
	_, err := es.CreateEvent("c1", "member", req)
	assert.ErrorIs(t, err, core.ErrNotProcessor)

	// 未获批的社团不能办活动
	_, err = es.CreateEvent("pending", "founder", req)
	assert.ErrorIs(t, err, core.ErrClubNotApproved)
}

func TestJoinEvent(t *testing.T) {
	env := newFakeEnv()
	seedApprovedClub(env)
	env.addUser("alice", model.RoleMember)

	es := newEventService(env)

	event, err := es.CreateEvent("c1", "head", &model.CreateEventReq{
		Name:      "Blitz Tournament",
		EventDate: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	require.NoError(t, es.Join(event.EventId, "alice"))

	// 重复报名报冲突
	assert.ErrorIs(t, es.Join(event.EventId, "alice"), core.ErrAlreadyParticipant)

	require.NoError(t, es.Withdraw(event.EventId, "alice"))
	require.NoError(t, es.Join(event.EventId, "alice"))
}

func TestJoinEvent_CapacityLimit(t *testing.T) {
	env := newFakeEnv()
	seedApprovedClub(env)
	env.addUser("alice", model.RoleMember)
	env.addUser("bob", model.RoleMember)

	es := newEventService(env)

	event, err := es.CreateEvent("c1", "head", &model.CreateEventReq{
		Name:            "Workshop",
		EventDate:       time.Now().Add(time.Hour),
		MaxParticipants: 1,
	})
	require.NoError(t, err)

	require.NoError(t, es.Join(event.EventId, "alice"))
	assert.ErrorIs(t, es.Join(event.EventId, "bob"), core.ErrEventFull)

	// 有人退出后名额释放
	require.NoError(t, es.Withdraw(event.EventId, "alice"))
	require.NoError(t, es.Join(event.EventId, "bob"))
}

func TestJoinEvent_NotFound(t *testing.T) {
	env := newFakeEnv()
	env.addUser("alice", model.RoleMember)

	es := newEventService(env)
	assert.ErrorIs(t, es.Join("nope", "alice"), core.ErrEventNotFound)
}

func TestMarkDueEventsDone(t *testing.T) {
	env := newFakeEnv()
	seedApprovedClub(env)

	es := newEventService(env)

	past, err := es.CreateEvent("c1", "head", &model.CreateEventReq{
		Name:      "Past Meetup",
		EventDate: time.Now().Add(-time.Hour),
	})
	require.NoError(t, err)
	future, err := es.CreateEvent("c1", "head", &model.CreateEventReq{
		Name:      "Future Meetup",
		EventDate: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	require.NoError(t, es.MarkDueEventsDone())

	pastStored, err := env.repos.Event.GetByEventId(past.EventId)
	require.NoError(t, err)
	assert.Equal(t, 1, pastStored.IsDone)

	futureStored, err := env.repos.Event.GetByEventId(future.EventId)
	require.NoError(t, err)
	assert.Equal(t, 0, futureStored.IsDone)
}

func TestEventScheduler_StartStop(t *testing.T) {
	env := newFakeEnv()
	ss := NewEventSchedulerService(newEventService(env))

	require.NoError(t, ss.Start())
	ss.Stop()
}

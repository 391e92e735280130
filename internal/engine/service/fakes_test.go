package service

import (
	"sort"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/go-campus/campus/internal/engine/core"
	"github.com/go-campus/campus/internal/engine/model"
	"github.com/go-campus/campus/internal/engine/repo"
)

// 基于内存 map 的 repository 实现，服务层测试共用。
// 与真实实现保持同样的错误约定：缺记录返 core.ErrNotFound，
// 唯一键冲突返 core.ErrConflict。

type fakeStore struct {
	mu           sync.Mutex
	users        map[string]*model.User
	clubs        map[string]*model.Club
	members      map[string]*model.ClubMember
	execs        map[string]*model.ClubExecutive
	requests     map[string]*model.MembershipRequest
	events       map[string]*model.Event
	participants map[string]*model.EventParticipant
	sessions     map[string]bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:        make(map[string]*model.User),
		clubs:        make(map[string]*model.Club),
		members:      make(map[string]*model.ClubMember),
		execs:        make(map[string]*model.ClubExecutive),
		requests:     make(map[string]*model.MembershipRequest),
		events:       make(map[string]*model.Event),
		participants: make(map[string]*model.EventParticipant),
		sessions:     make(map[string]bool),
	}
}

func pairKey(a, b string) string { return a + "|" + b }

type fakeNotifier struct {
	mu   sync.Mutex
	sent []fakeNotice
}

type fakeNotice struct {
	Address string
	Subject string
	Body    string
}

func (n *fakeNotifier) Notify(address, subject, body string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, fakeNotice{Address: address, Subject: subject, Body: body})
}

func (n *fakeNotifier) notices() []fakeNotice {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]fakeNotice, len(n.sent))
	copy(out, n.sent)
	return out
}

// fakeTxManager 直接执行 fn，无真实事务语义
type fakeTxManager struct {
	repos *repo.Repositories
}

func (tm *fakeTxManager) RunInTx(fn func(r *repo.Repositories) error) error {
	return fn(tm.repos)
}

type fakeEnv struct {
	store    *fakeStore
	repos    *repo.Repositories
	txm      repo.ITxManager
	notifier *fakeNotifier
}

func newFakeEnv() *fakeEnv {
	store := newFakeStore()
	repos := &repo.Repositories{
		User:              &fakeUserRepo{store: store},
		Club:              &fakeClubRepo{store: store},
		ClubMember:        &fakeClubMemberRepo{store: store},
		ClubExecutive:     &fakeClubExecutiveRepo{store: store},
		MembershipRequest: &fakeMembershipRequestRepo{store: store},
		Event:             &fakeEventRepo{store: store},
	}
	return &fakeEnv{
		store:    store,
		repos:    repos,
		txm:      &fakeTxManager{repos: repos},
		notifier: &fakeNotifier{},
	}
}

// seed helpers

func (e *fakeEnv) addUser(userId, role string) *model.User {
	u := &model.User{
		UserId:   userId,
		Username: userId,
		Email:    userId + "@example.edu",
		Role:     role,
		IsActive: 1,
	}
	e.store.mu.Lock()
	defer e.store.mu.Unlock()
	e.store.users[userId] = u
	return u
}

func (e *fakeEnv) addClub(clubId, name, status, headUserId string) *model.Club {
	c := &model.Club{
		ClubId:     clubId,
		Name:       name,
		Status:     status,
		IsActive:   1,
		HeadUserId: headUserId,
	}
	e.store.mu.Lock()
	defer e.store.mu.Unlock()
	e.store.clubs[clubId] = c
	return c
}

func (e *fakeEnv) addMember(clubId, userId string, active int) *model.ClubMember {
	m := &model.ClubMember{
		ClubId:   clubId,
		UserId:   userId,
		IsActive: active,
		JoinDate: time.Now().Add(-24 * time.Hour),
	}
	if active == 0 {
		left := time.Now().Add(-time.Hour)
		m.LeaveDate = &left
	}
	e.store.mu.Lock()
	defer e.store.mu.Unlock()
	e.store.members[pairKey(clubId, userId)] = m
	return m
}

func (e *fakeEnv) addExecutive(clubId, userId, position string, active int) *model.ClubExecutive {
	x := &model.ClubExecutive{
		ClubId:   clubId,
		UserId:   userId,
		Position: position,
		IsActive: active,
		JoinDate: time.Now().Add(-24 * time.Hour),
	}
	if active == 0 {
		left := time.Now().Add(-time.Hour)
		x.LeaveDate = &left
	}
	e.store.mu.Lock()
	defer e.store.mu.Unlock()
	e.store.execs[pairKey(clubId, userId)] = x
	return x
}

func (e *fakeEnv) member(clubId, userId string) *model.ClubMember {
	e.store.mu.Lock()
	defer e.store.mu.Unlock()
	return e.store.members[pairKey(clubId, userId)]
}

func (e *fakeEnv) executive(clubId, userId string) *model.ClubExecutive {
	e.store.mu.Lock()
	defer e.store.mu.Unlock()
	return e.store.execs[pairKey(clubId, userId)]
}

func (e *fakeEnv) user(userId string) *model.User {
	e.store.mu.Lock()
	defer e.store.mu.Unlock()
	return e.store.users[userId]
}

func (e *fakeEnv) userByName(username string) *model.User {
	e.store.mu.Lock()
	defer e.store.mu.Unlock()
	for _, u := range e.store.users {
		if u.Username == username {
			return u
		}
	}
	return nil
}

func (e *fakeEnv) club(clubId string) *model.Club {
	e.store.mu.Lock()
	defer e.store.mu.Unlock()
	return e.store.clubs[clubId]
}

// ---- user repo ----

type fakeUserRepo struct {
	store *fakeStore
}

func (r *fakeUserRepo) WithTx(tx *gorm.DB) repo.IUserRepository { return r }

func (r *fakeUserRepo) CreateUser(u *model.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.users {
		if existing.Username == u.Username || existing.UserId == u.UserId {
			return core.ErrConflict
		}
	}
	cp := *u
	r.store.users[u.UserId] = &cp
	return nil
}

func (r *fakeUserRepo) GetUserByUserId(userId string) (*model.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	u, ok := r.store.users[userId]
	if !ok {
		return nil, core.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetUserByUsername(username string) (*model.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, u := range r.store.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, core.ErrNotFound
}

func (r *fakeUserRepo) UpdateRole(userId, role string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	u, ok := r.store.users[userId]
	if !ok {
		return core.ErrNotFound
	}
	u.Role = role
	return nil
}

func (r *fakeUserRepo) UpdateUser(userId string, in *model.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	u, ok := r.store.users[userId]
	if !ok {
		return core.ErrNotFound
	}
	u.FirstName = in.FirstName
	u.LastName = in.LastName
	u.Email = in.Email
	u.Phone = in.Phone
	return nil
}

func (r *fakeUserRepo) ListAdmins() ([]model.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []model.User
	for _, u := range r.store.users {
		if u.Role == model.RoleAdmin {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserId < out[j].UserId })
	return out, nil
}

func (r *fakeUserRepo) SetSession(userId string, _ *model.LoginResp, _ time.Duration) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.sessions[userId] = true
	return nil
}

func (r *fakeUserRepo) DelSession(userId string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.sessions, userId)
	return nil
}

// ---- club repo ----

type fakeClubRepo struct {
	store *fakeStore
}

func (r *fakeClubRepo) WithTx(tx *gorm.DB) repo.IClubRepository { return r }

func (r *fakeClubRepo) CreateClub(c *model.Club) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.clubs[c.ClubId]; ok {
		return core.ErrConflict
	}
	// name 唯一索引，CI 排序规则下忽略大小写
	for _, existing := range r.store.clubs {
		if strings.EqualFold(existing.Name, c.Name) {
			return core.ErrConflict
		}
	}
	cp := *c
	r.store.clubs[c.ClubId] = &cp
	return nil
}

func (r *fakeClubRepo) GetClubByClubId(clubId string) (*model.Club, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	c, ok := r.store.clubs[clubId]
	if !ok {
		return nil, core.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeClubRepo) GetClubForUpdate(clubId string) (*model.Club, error) {
	return r.GetClubByClubId(clubId)
}

func (r *fakeClubRepo) NameExists(name string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, c := range r.store.clubs {
		if strings.EqualFold(c.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeClubRepo) UpdateClub(clubId string, updates map[string]any) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	c, ok := r.store.clubs[clubId]
	if !ok {
		return core.ErrNotFound
	}
	if v, ok := updates["name"]; ok {
		c.Name = v.(string)
	}
	if v, ok := updates["description"]; ok {
		c.Description = v.(string)
	}
	if v, ok := updates["status"]; ok {
		c.Status = v.(string)
	}
	if v, ok := updates["head_user_id"]; ok {
		c.HeadUserId = v.(string)
	}
	return nil
}

func (r *fakeClubRepo) SetStatus(clubId, status string) error {
	return r.UpdateClub(clubId, map[string]any{"status": status})
}

func (r *fakeClubRepo) SetHead(clubId, headUserId string) error {
	return r.UpdateClub(clubId, map[string]any{"head_user_id": headUserId})
}

func (r *fakeClubRepo) ListByStatus(status string) ([]model.Club, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []model.Club
	for _, c := range r.store.clubs {
		if c.Status == status {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ClubId < out[j].ClubId })
	return out, nil
}

func (r *fakeClubRepo) ListHeadedBy(userId string) ([]model.Club, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []model.Club
	for _, c := range r.store.clubs {
		if c.HeadUserId == userId {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeClubRepo) CountHeadedBy(userId string) (int64, error) {
	clubs, _ := r.ListHeadedBy(userId)
	var count int64
	for _, c := range clubs {
		if c.Status == model.ClubStatusApproved {
			count++
		}
	}
	return count, nil
}

// ---- club member repo ----

type fakeClubMemberRepo struct {
	store *fakeStore
}

func (r *fakeClubMemberRepo) WithTx(tx *gorm.DB) repo.IClubMemberRepository { return r }

func (r *fakeClubMemberRepo) AddMember(m *model.ClubMember) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	key := pairKey(m.ClubId, m.UserId)
	if _, ok := r.store.members[key]; ok {
		return core.ErrConflict
	}
	cp := *m
	r.store.members[key] = &cp
	return nil
}

func (r *fakeClubMemberRepo) GetMember(clubId, userId string) (*model.ClubMember, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	m, ok := r.store.members[pairKey(clubId, userId)]
	if !ok {
		return nil, core.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *fakeClubMemberRepo) GetActiveMember(clubId, userId string) (*model.ClubMember, error) {
	m, err := r.GetMember(clubId, userId)
	if err != nil {
		return nil, err
	}
	if m.IsActive != 1 {
		return nil, core.ErrNotFound
	}
	return m, nil
}

func (r *fakeClubMemberRepo) Save(m *model.ClubMember) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	key := pairKey(m.ClubId, m.UserId)
	if _, ok := r.store.members[key]; !ok {
		return core.ErrNotFound
	}
	cp := *m
	r.store.members[key] = &cp
	return nil
}

func (r *fakeClubMemberRepo) ListActive(clubId string) ([]model.ClubMember, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []model.ClubMember
	for _, m := range r.store.members {
		if m.ClubId == clubId && m.IsActive == 1 {
			out = append(out, *m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserId < out[j].UserId })
	return out, nil
}

func (r *fakeClubMemberRepo) ListHistory(clubId string) ([]model.ClubMember, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []model.ClubMember
	for _, m := range r.store.members {
		if m.ClubId == clubId {
			out = append(out, *m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserId < out[j].UserId })
	return out, nil
}

func (r *fakeClubMemberRepo) CountActive(clubId string) (int64, error) {
	active, _ := r.ListActive(clubId)
	return int64(len(active)), nil
}

func (r *fakeClubMemberRepo) SearchActiveByName(clubId, name string) ([]model.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []model.User
	for _, m := range r.store.members {
		if m.ClubId != clubId || m.IsActive != 1 {
			continue
		}
		u, ok := r.store.users[m.UserId]
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(u.Username), strings.ToLower(name)) ||
			strings.Contains(strings.ToLower(u.FirstName), strings.ToLower(name)) ||
			strings.Contains(strings.ToLower(u.LastName), strings.ToLower(name)) {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserId < out[j].UserId })
	return out, nil
}

func (r *fakeClubMemberRepo) ListActiveByUser(userId string) ([]model.ClubMember, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []model.ClubMember
	for _, m := range r.store.members {
		if m.UserId == userId && m.IsActive == 1 {
			out = append(out, *m)
		}
	}
	return out, nil
}

// ---- club executive repo ----

type fakeClubExecutiveRepo struct {
	store *fakeStore
}

func (r *fakeClubExecutiveRepo) WithTx(tx *gorm.DB) repo.IClubExecutiveRepository { return r }

func (r *fakeClubExecutiveRepo) AddExecutive(e *model.ClubExecutive) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	key := pairKey(e.ClubId, e.UserId)
	if _, ok := r.store.execs[key]; ok {
		return core.ErrConflict
	}
	cp := *e
	r.store.execs[key] = &cp
	return nil
}

func (r *fakeClubExecutiveRepo) GetExecutive(clubId, userId string) (*model.ClubExecutive, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	e, ok := r.store.execs[pairKey(clubId, userId)]
	if !ok {
		return nil, core.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *fakeClubExecutiveRepo) GetActiveExecutive(clubId, userId string) (*model.ClubExecutive, error) {
	e, err := r.GetExecutive(clubId, userId)
	if err != nil {
		return nil, err
	}
	if e.IsActive != 1 {
		return nil, core.ErrNotFound
	}
	return e, nil
}

func (r *fakeClubExecutiveRepo) Save(e *model.ClubExecutive) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	key := pairKey(e.ClubId, e.UserId)
	if _, ok := r.store.execs[key]; !ok {
		return core.ErrNotFound
	}
	cp := *e
	r.store.execs[key] = &cp
	return nil
}

func (r *fakeClubExecutiveRepo) ListActive(clubId string) ([]model.ClubExecutive, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []model.ClubExecutive
	for _, e := range r.store.execs {
		if e.ClubId == clubId && e.IsActive == 1 {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserId < out[j].UserId })
	return out, nil
}

func (r *fakeClubExecutiveRepo) ListHistory(clubId string) ([]model.ClubExecutive, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []model.ClubExecutive
	for _, e := range r.store.execs {
		if e.ClubId == clubId {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserId < out[j].UserId })
	return out, nil
}

func (r *fakeClubExecutiveRepo) CountActiveByUser(userId string) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var count int64
	for _, e := range r.store.execs {
		if e.UserId == userId && e.IsActive == 1 {
			count++
		}
	}
	return count, nil
}

func (r *fakeClubExecutiveRepo) ListActiveByUser(userId string) ([]model.ClubExecutive, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []model.ClubExecutive
	for _, e := range r.store.execs {
		if e.UserId == userId && e.IsActive == 1 {
			out = append(out, *e)
		}
	}
	return out, nil
}

// ---- membership request repo ----

type fakeMembershipRequestRepo struct {
	store *fakeStore
}

func (r *fakeMembershipRequestRepo) WithTx(tx *gorm.DB) repo.IMembershipRequestRepository { return r }

func (r *fakeMembershipRequestRepo) Create(req *model.MembershipRequest) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.requests[req.RequestId]; ok {
		return core.ErrConflict
	}
	cp := *req
	r.store.requests[req.RequestId] = &cp
	return nil
}

func (r *fakeMembershipRequestRepo) GetByRequestId(requestId string) (*model.MembershipRequest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	req, ok := r.store.requests[requestId]
	if !ok {
		return nil, core.ErrNotFound
	}
	cp := *req
	return &cp, nil
}

func (r *fakeMembershipRequestRepo) GetPending(clubId, userId string) (*model.MembershipRequest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, req := range r.store.requests {
		if req.ClubId == clubId && req.UserId == userId && req.Status == model.RequestStatusPending {
			cp := *req
			return &cp, nil
		}
	}
	return nil, core.ErrNotFound
}

func (r *fakeMembershipRequestRepo) Save(req *model.MembershipRequest) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.requests[req.RequestId]; !ok {
		return core.ErrNotFound
	}
	cp := *req
	r.store.requests[req.RequestId] = &cp
	return nil
}

func (r *fakeMembershipRequestRepo) Delete(requestId string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.requests[requestId]; !ok {
		return core.ErrNotFound
	}
	delete(r.store.requests, requestId)
	return nil
}

func (r *fakeMembershipRequestRepo) ListByClub(clubId, status string) ([]model.MembershipRequest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []model.MembershipRequest
	for _, req := range r.store.requests {
		if req.ClubId != clubId {
			continue
		}
		if status != "" && req.Status != status {
			continue
		}
		out = append(out, *req)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RequestId < out[j].RequestId })
	return out, nil
}

func (r *fakeMembershipRequestRepo) ListByUser(userId string) ([]model.MembershipRequest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []model.MembershipRequest
	for _, req := range r.store.requests {
		if req.UserId == userId {
			out = append(out, *req)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RequestId < out[j].RequestId })
	return out, nil
}

// ---- event repo ----

type fakeEventRepo struct {
	store *fakeStore
}

func (r *fakeEventRepo) WithTx(tx *gorm.DB) repo.IEventRepository { return r }

func (r *fakeEventRepo) Create(e *model.Event) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.events[e.EventId]; ok {
		return core.ErrConflict
	}
	cp := *e
	r.store.events[e.EventId] = &cp
	return nil
}

func (r *fakeEventRepo) GetByEventId(eventId string) (*model.Event, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	e, ok := r.store.events[eventId]
	if !ok {
		return nil, core.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *fakeEventRepo) Save(e *model.Event) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.events[e.EventId]; !ok {
		return core.ErrNotFound
	}
	cp := *e
	r.store.events[e.EventId] = &cp
	return nil
}

func (r *fakeEventRepo) ListUpcoming(clubId string, now time.Time) ([]model.Event, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []model.Event
	for _, e := range r.store.events {
		if e.ClubId == clubId && e.EventDate.After(now) {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EventDate.Before(out[j].EventDate) })
	return out, nil
}

func (r *fakeEventRepo) ListPast(clubId string, now time.Time) ([]model.Event, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []model.Event
	for _, e := range r.store.events {
		if e.ClubId == clubId && !e.EventDate.After(now) {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EventDate.After(out[j].EventDate) })
	return out, nil
}

func (r *fakeEventRepo) ListDue(now time.Time) ([]model.Event, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []model.Event
	for _, e := range r.store.events {
		if e.IsDone == 0 && e.EventDate.Before(now) {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *fakeEventRepo) AddParticipant(p *model.EventParticipant) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	key := pairKey(p.EventId, p.UserId)
	if _, ok := r.store.participants[key]; ok {
		return core.ErrConflict
	}
	cp := *p
	r.store.participants[key] = &cp
	return nil
}

func (r *fakeEventRepo) GetParticipant(eventId, userId string) (*model.EventParticipant, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	p, ok := r.store.participants[pairKey(eventId, userId)]
	if !ok {
		return nil, core.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeEventRepo) RemoveParticipant(eventId, userId string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	key := pairKey(eventId, userId)
	if _, ok := r.store.participants[key]; !ok {
		return core.ErrNotFound
	}
	delete(r.store.participants, key)
	return nil
}

func (r *fakeEventRepo) CountParticipants(eventId string) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var count int64
	for _, p := range r.store.participants {
		if p.EventId == eventId {
			count++
		}
	}
	return count, nil
}

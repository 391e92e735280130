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
	"sync"
	"time"

	"github.com/go-campus/campus/pkg/id"
)

// VerificationTokenStore 持有待审核社团的一次性校验令牌。
// 令牌只存在于进程内存，进程重启即全部失效，注册人重新提交即可。
type VerificationTokenStore struct {
	mu      sync.Mutex
	tokens  map[string]tokenEntry
	ttl     time.Duration
	nowFunc func() time.Time
}

type tokenEntry struct {
	clubId    string
	expiresAt time.Time
}

const defaultTokenTTL = 24 * time.Hour

func NewVerificationTokenStore(ttl time.Duration) *VerificationTokenStore {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &VerificationTokenStore{
		tokens:  make(map[string]tokenEntry),
		ttl:     ttl,
		nowFunc: time.Now,
	}
}

// Issue 为社团签发新令牌
func (ts *VerificationTokenStore) Issue(clubId string) string {
	token := id.GetUUID()
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.tokens[token] = tokenEntry{
		clubId:    clubId,
		expiresAt: ts.nowFunc().Add(ts.ttl),
	}
	return token
}

// Validate 校验令牌是否有效且绑定到 clubId，不消费
func (ts *VerificationTokenStore) Validate(token, clubId string) bool {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	entry, ok := ts.tokens[token]
	if !ok {
		return false
	}
	if ts.nowFunc().After(entry.expiresAt) {
		delete(ts.tokens, token)
		return false
	}
	return entry.clubId == clubId
}

// Consume 消费令牌，审核落库成功后调用
func (ts *VerificationTokenStore) Consume(token string) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	delete(ts.tokens, token)
}

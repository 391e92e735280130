package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-campus/campus/internal/engine/core"
	"github.com/go-campus/campus/internal/engine/model"
	httpx "github.com/go-campus/campus/pkg/http"
)

var testAuth = httpx.Auth{
	SecretKey:     "test-secret",
	AccessExpire:  60,
	RefreshExpire: 1440,
}

func TestUserRegister(t *testing.T) {
	env := newFakeEnv()
	us := NewUserService(env.repos)

	user, err := us.Register(&model.Register{
		Username: "alice",
		Password: "s3cret",
		Email:    "alice@example.edu",
	})
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotEmpty(t, user.UserId)
	assert.Equal(t, model.RoleMember, user.Role)
	assert.NotEqual(t, "s3cret", user.Password, "password must be stored hashed")

	// 用户名冲突
	_, err = us.Register(&model.Register{Username: "alice", Password: "other"})
	assert.ErrorIs(t, err, core.ErrConflict)

	// 缺少用户名或密码
	_, err = us.Register(&model.Register{Username: "", Password: "x"})
	assert.Error(t, err)
}

func TestUserLogin(t *testing.T) {
	env := newFakeEnv()
	us := NewUserService(env.repos)

	user, err := us.Register(&model.Register{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)

	resp, err := us.Login(&model.Login{Username: "alice", Password: "s3cret"}, testAuth)
	require.NoError(t, err)
	assert.Equal(t, user.UserId, resp.UserInfo.UserId)
	assert.NotEmpty(t, resp.Token["accessToken"])
	assert.NotEmpty(t, resp.Token["refreshToken"])
	assert.True(t, env.store.sessions[user.UserId], "login must establish a session")

	require.NoError(t, us.Logout(user.UserId))
	assert.False(t, env.store.sessions[user.UserId])
}

func TestUserLogin_Failures(t *testing.T) {
	env := newFakeEnv()
	us := NewUserService(env.repos)

	_, err := us.Register(&model.Register{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)

	// 密码错误与用户不存在返回同一个错误，不暴露账号是否存在
	_, err = us.Login(&model.Login{Username: "alice", Password: "wrong"}, testAuth)
	assert.ErrorIs(t, err, core.ErrWrongPassword)

	_, err = us.Login(&model.Login{Username: "nobody", Password: "x"}, testAuth)
	assert.ErrorIs(t, err, core.ErrWrongPassword)

	// 停用账号拒绝登录
	stored := env.userByName("alice")
	require.NotNil(t, stored)
	stored.IsActive = 0
	_, err = us.Login(&model.Login{Username: "alice", Password: "s3cret"}, testAuth)
	assert.ErrorIs(t, err, core.ErrUserDisabled)
}

func TestGetUser(t *testing.T) {
	env := newFakeEnv()
	env.addUser("alice", model.RoleMember)
	us := NewUserService(env.repos)

	u, err := us.GetUser("alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.UserId)

	_, err = us.GetUser("ghost")
	assert.ErrorIs(t, err, core.ErrUserNotFound)
}

package service

import (
	"errors"
	"time"

	"github.com/go-campus/campus/internal/engine/core"
	"github.com/go-campus/campus/internal/engine/model"
	"github.com/go-campus/campus/internal/engine/repo"
	httpx "github.com/go-campus/campus/pkg/http"
	"github.com/go-campus/campus/pkg/http/jwt"
	"github.com/go-campus/campus/pkg/id"
	"github.com/go-campus/campus/pkg/log"
	"golang.org/x/crypto/bcrypt"
)

/**
 * @file: service_user.go
 * @description: user service
 */

type UserService struct {
	repos *repo.Repositories
}

func NewUserService(repos *repo.Repositories) *UserService {
	return &UserService{repos: repos}
}

// Register 注册新用户，初始角色恒为 member
func (us *UserService) Register(register *model.Register) (*model.User, error) {
	if register.Username == "" || register.Password == "" {
		return nil, core.ErrNotAuthorized
	}

	if _, err := us.repos.User.GetUserByUsername(register.Username); err == nil {
		return nil, core.Wrapf(core.ErrConflict, "username %s", register.Username)
	} else if !errors.Is(err, core.ErrNotFound) {
		return nil, err
	}

	hash, err := hashPassword(register.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		UserId:    id.GetUUID(),
		Username:  register.Username,
		FirstName: register.FirstName,
		LastName:  register.LastName,
		Email:     register.Email,
		Phone:     register.Phone,
		Password:  hash,
		Role:      model.RoleMember,
		IsActive:  1,
	}
	if err := us.repos.User.CreateUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login 校验密码，签发 access/refresh token 并写入会话缓存
func (us *UserService) Login(login *model.Login, auth httpx.Auth) (*model.LoginResp, error) {
	user, err := us.repos.User.GetUserByUsername(login.Username)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, core.ErrWrongPassword
		}
		return nil, err
	}
	if user.IsActive != 1 {
		return nil, core.ErrUserDisabled
	}

	if !comparePassword(user.Password, login.Password) {
		log.Warnw("incorrect password", "username", login.Username)
		return nil, core.ErrWrongPassword
	}

	aToken, rToken, err := jwt.GenToken(user.UserId, []byte(auth.SecretKey), auth.AccessExpire, auth.RefreshExpire)
	if err != nil {
		return nil, err
	}

	resp := &model.LoginResp{
		UserInfo: model.UserInfo{
			UserId:    user.UserId,
			Username:  user.Username,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
			Phone:     user.Phone,
			Role:      user.Role,
		},
		Token: map[string]string{
			"accessToken":  aToken,
			"refreshToken": rToken,
		},
		ExpireAt: time.Now().Add(auth.AccessExpire * time.Minute).Unix(),
	}

	if err := us.repos.User.SetSession(user.UserId, resp, auth.AccessExpire*time.Minute); err != nil {
		return nil, err
	}

	return resp, nil
}

// Logout 清除会话缓存，认证中间件随即拒绝旧令牌
func (us *UserService) Logout(userId string) error {
	return us.repos.User.DelSession(userId)
}

func (us *UserService) GetUser(userId string) (*model.User, error) {
	u, err := us.repos.User.GetUserByUserId(userId)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, core.ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (us *UserService) UpdateUser(userId string, u *model.User) error {
	return us.repos.User.UpdateUser(userId, u)
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func comparePassword(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}

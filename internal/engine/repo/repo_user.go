package repo

import (
	"context"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-campus/campus/internal/engine/consts"
	"github.com/go-campus/campus/internal/engine/model"
	"github.com/go-campus/campus/pkg/cache"
	"github.com/go-campus/campus/pkg/log"
	"gorm.io/gorm"
)

type IUserRepository interface {
	CreateUser(u *model.User) error
	GetUserByUserId(userId string) (*model.User, error)
	GetUserByUsername(username string) (*model.User, error)
	UpdateRole(userId, role string) error
	UpdateUser(userId string, u *model.User) error
	ListAdmins() ([]model.User, error)
	SetSession(userId string, loginResp *model.LoginResp, expire time.Duration) error
	DelSession(userId string) error
	WithTx(tx *gorm.DB) IUserRepository
}

type UserRepo struct {
	db    *gorm.DB
	cache cache.ICache
}

func NewUserRepo(db *gorm.DB, cache cache.ICache) IUserRepository {
	return &UserRepo{db: db, cache: cache}
}

func (ur *UserRepo) WithTx(tx *gorm.DB) IUserRepository {
	return &UserRepo{db: tx, cache: ur.cache}
}

func (ur *UserRepo) CreateUser(u *model.User) error {
	return translateErr(ur.db.Create(u).Error)
}

func (ur *UserRepo) GetUserByUserId(userId string) (*model.User, error) {
	var u model.User
	if err := ur.db.Where("user_id = ?", userId).First(&u).Error; err != nil {
		return nil, translateErr(err)
	}
	return &u, nil
}

func (ur *UserRepo) GetUserByUsername(username string) (*model.User, error) {
	var u model.User
	if err := ur.db.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, translateErr(err)
	}
	return &u, nil
}

// UpdateRole 仅供角色同步逻辑调用，其他调用方不得直接改写 role
func (ur *UserRepo) UpdateRole(userId, role string) error {
	return translateErr(ur.db.Model(&model.User{}).
		Where("user_id = ?", userId).
		Update("role", role).Error)
}

// UpdateUser 更新用户信息（user_id, username, password, role, created_at 不可更新）
func (ur *UserRepo) UpdateUser(userId string, u *model.User) error {
	return translateErr(ur.db.Model(&model.User{}).
		Where("user_id = ?", userId).
		Omit("user_id", "username", "password", "role", "created_at").
		Updates(u).Error)
}

func (ur *UserRepo) ListAdmins() ([]model.User, error) {
	var admins []model.User
	err := ur.db.Where("role = ? AND is_active = 1", model.RoleAdmin).Find(&admins).Error
	return admins, translateErr(err)
}

// SetSession 将登录会话写入 Redis，供认证中间件校验
func (ur *UserRepo) SetSession(userId string, loginResp *model.LoginResp, expire time.Duration) error {
	if ur.cache == nil {
		return nil
	}
	key := consts.UserInfoKey + userId
	payload, err := sonic.MarshalString(loginResp)
	if err != nil {
		return err
	}
	if err := ur.cache.Set(context.Background(), key, payload, expire).Err(); err != nil {
		log.Errorw("failed to cache login session", "userId", userId, "error", err)
		return err
	}
	return nil
}

func (ur *UserRepo) DelSession(userId string) error {
	if ur.cache == nil {
		return nil
	}
	key := consts.UserInfoKey + userId
	return ur.cache.Del(context.Background(), key).Err()
}

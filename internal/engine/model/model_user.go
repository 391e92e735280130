package model

/**
 * @file: model_user.go
 * @description: user model
 */

type User struct {
	BaseModel
	UserId    string `gorm:"column:user_id;uniqueIndex" json:"userId"`
	Username  string `gorm:"column:username;uniqueIndex" json:"username"`
	FirstName string `gorm:"column:first_name" json:"firstName"`
	LastName  string `gorm:"column:last_name" json:"lastName"`
	Password  string `gorm:"column:password" json:"-"`
	Email     string `gorm:"column:email" json:"email"`
	Phone     string `gorm:"column:phone" json:"phone"`
	Role      string `gorm:"column:role;default:member" json:"role"` // member, executive, head, admin
	IsActive  int    `gorm:"column:is_active;default:1" json:"isActive"` // 0: disabled, 1: enabled
}

func (User) TableName() string {
	return "t_user"
}

// UserRole 用户全局角色，由 RoleSyncService 统一维护
const (
	RoleMember    = "member"    // 普通成员
	RoleExecutive = "executive" // 至少一个社团的在任干部
	RoleHead      = "head"      // 至少一个社团的社长
	RoleAdmin     = "admin"     // 管理员，不参与自动重算
)

type Register struct {
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
}

type Login struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResp struct {
	UserInfo UserInfo          `json:"userInfo"`
	Token    map[string]string `json:"token"`
	ExpireAt int64             `json:"-"`
}

type UserInfo struct {
	UserId    string `json:"userId"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
}

package consts

// Session 会话相关常量
const (
	// UserInfoKey Redis 中用户会话信息的 key 前缀
	UserInfoKey = "campus:user:info:"
)

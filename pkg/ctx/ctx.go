package ctx

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

/**
 * @file: ctx.go
 * @description: Global context
 */

type Context struct {
	MySQLIns *gorm.DB
	RedisIns redis.UniversalClient
	Ctx      context.Context
	Log      *zap.SugaredLogger
}

func NewContext(ctx context.Context, mysql *gorm.DB, rds redis.UniversalClient, log *zap.SugaredLogger) *Context {
	return &Context{
		MySQLIns: mysql,
		RedisIns: rds,
		Ctx:      ctx,
		Log:      log,
	}
}

func (c *Context) GetCtx() context.Context {
	return c.Ctx
}

func (c *Context) SetMySQLIns(db *gorm.DB) {
	c.MySQLIns = db
}

func (c *Context) GetMySQLIns() *gorm.DB {
	return c.MySQLIns
}

func (c *Context) SetRedisIns(rds redis.UniversalClient) {
	c.RedisIns = rds
}

func (c *Context) GetRedisIns() redis.UniversalClient {
	return c.RedisIns
}

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

package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/go-campus/campus/internal/engine/conf"
	"github.com/go-campus/campus/internal/engine/model"
	"github.com/go-campus/campus/internal/engine/repo"
	"github.com/go-campus/campus/internal/engine/router"
	"github.com/go-campus/campus/internal/engine/service"
	"github.com/go-campus/campus/internal/pkg/notify"
	"github.com/go-campus/campus/internal/pkg/notify/channel"
	"github.com/go-campus/campus/internal/pkg/weather"
	"github.com/go-campus/campus/pkg/cache"
	"github.com/go-campus/campus/pkg/ctx"
	"github.com/go-campus/campus/pkg/database"
	"github.com/go-campus/campus/pkg/log"
)

// App 聚合运行期依赖，cleanup 负责反向释放
type App struct {
	HttpApp  *fiber.App
	Ctx      *ctx.Context
	Services *service.Services
	AppConf  conf.AppConfig
}

// NewApp init app, return App instance and cleanup function
func NewApp(appConf conf.AppConfig) (*App, func(), error) {
	log.MustInit(&appConf.Log)

	gormDB, err := database.NewDatabase(appConf.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("init database: %w", err)
	}
	if err := autoMigrate(gormDB); err != nil {
		return nil, nil, fmt.Errorf("auto migrate: %w", err)
	}
	db := database.NewGormDB(gormDB)

	redisClient, err := cache.NewRedis(appConf.Redis)
	if err != nil {
		return nil, nil, fmt.Errorf("init redis: %w", err)
	}
	redisCache := cache.NewRedisCache(redisClient)

	appCtx := ctx.NewContext(context.Background(), gormDB, redisClient, log.GetLogger())

	repos := repo.NewRepositories(db, redisCache)
	txm := repo.NewTxManager(db, repos)

	notifier, err := newNotifier(appConf.Notify)
	if err != nil {
		return nil, nil, fmt.Errorf("init notifier: %w", err)
	}

	tokenTTL := time.Duration(appConf.Token.TTLHours) * time.Hour
	services := service.NewServices(txm, repos, notifier, tokenTTL)

	if err := services.EventScheduler.Start(); err != nil {
		return nil, nil, fmt.Errorf("start event scheduler: %w", err)
	}

	// 天气为可选能力，未配置 apiKey 时不注册客户端
	var weatherCli *weather.Client
	if appConf.Weather.ApiKey != "" {
		weatherCli = weather.NewClient(appConf.Weather.ApiKey, appConf.Weather.City, 10*time.Second)
	}

	rt := router.NewRouter(&appConf.Http, appCtx, services, weatherCli)
	httpApp := rt.Router()

	cleanup := func() {
		services.EventScheduler.Stop()
		log.Info("event scheduler stopped")

		if err := redisClient.Close(); err != nil {
			log.Errorw("failed to close redis client", "error", err)
		}
		if sqlDB, err := gormDB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				log.Errorw("failed to close database", "error", err)
			}
		}
	}

	app := &App{
		HttpApp:  httpApp,
		Ctx:      appCtx,
		Services: services,
		AppConf:  appConf,
	}
	return app, cleanup, nil
}

func newNotifier(cfg conf.NotifyConfig) (notify.Notifier, error) {
	switch cfg.Channel {
	case "email":
		ch := channel.NewEmailChannel(cfg.SmtpHost, cfg.SmtpPort, cfg.FromEmail, cfg.Username, cfg.Password)
		if err := ch.Validate(); err != nil {
			return nil, err
		}
		return notify.NewNotifyManager(ch, cfg.Timeout), nil
	case "stdout", "":
		return notify.NewNotifyManager(channel.NewStdoutChannel(), cfg.Timeout), nil
	default:
		return nil, fmt.Errorf("unknown notify channel: %s", cfg.Channel)
	}
}

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Club{},
		&model.ClubMember{},
		&model.ClubExecutive{},
		&model.MembershipRequest{},
		&model.Event{},
		&model.EventParticipant{},
	)
}

package conf

import (
	"fmt"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/go-campus/campus/pkg/cache"
	"github.com/go-campus/campus/pkg/database"
	"github.com/go-campus/campus/pkg/http"
	"github.com/go-campus/campus/pkg/log"
)

/**
 * @file: conf.go
 * @description: app config
 */

type AppConfig struct {
	Log      log.Conf
	Http     http.Http
	Database database.Database
	Redis    cache.Redis
	Notify   NotifyConfig
	Weather  WeatherConfig
	Token    TokenConfig
}

// NotifyConfig 通知通道配置，channel 为 email 或 stdout
type NotifyConfig struct {
	Channel   string
	SmtpHost  string
	SmtpPort  int
	FromEmail string
	Username  string
	Password  string
	Timeout   time.Duration
}

type WeatherConfig struct {
	ApiKey string
	City   string
}

// TokenConfig 注册校验令牌的有效期（小时）
type TokenConfig struct {
	TTLHours int
}

var (
	cfg  AppConfig
	once sync.Once
)

func NewConf(confDir string) AppConfig {
	once.Do(func() {
		var err error
		cfg, err = LoadConfigFile(confDir)
		if err != nil {
			panic(fmt.Sprintf("load conf file error: %s", err))
		}
	})
	return cfg
}

// LoadConfigFile load conf file
func LoadConfigFile(confDir string) (AppConfig, error) {

	config := viper.New()
	config.SetConfigFile(confDir)
	config.AddConfigPath("./conf.d")
	config.SetConfigName("config")
	config.SetConfigType("toml")
	if err := config.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("failed to read configuration file: %v", err)
	}

	config.WatchConfig()
	config.OnConfigChange(func(e fsnotify.Event) {
		log.Infof("configuration changed, reloading: %s", e.Name)
		if err := config.Unmarshal(&cfg); err != nil {
			log.Errorf("failed to unmarshal configuration file: %v", err)
		}
	})
	if err := config.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal configuration file: %v", err)
	}
	fmt.Printf("[Init] config file path: %s\n", confDir)

	return cfg, nil
}

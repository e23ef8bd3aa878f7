package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config 应用配置
type Config struct {
	Database DatabaseConfig
	Log      LogConfig
	Export   ExportConfig
	Seed     SeedConfig
}

type DatabaseConfig struct {
	Path string
}

type LogConfig struct {
	Level string
}

type ExportConfig struct {
	Dir string
}

// SeedConfig 首次启动演示数据的规模；Seed 非零时随机序列可复现
type SeedConfig struct {
	Customers int
	Orders    int
	Seed      int64
}

// Load 读取配置：默认值 < config.yaml < COFFEEPOS_ 环境变量
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("coffeepos")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("database.path", "coffee_shop.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("export.dir", ".")
	v.SetDefault("seed.customers", 3)
	v.SetDefault("seed.orders", 5)
	v.SetDefault("seed.seed", 0)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

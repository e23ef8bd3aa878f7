package database

import (
	"fmt"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/d60-Lab/coffee-pos/config"
)

// InitDB 按配置打开库文件
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	return Open(cfg.Database.Path)
}

// Open 打开 SQLite 连接并开启外键约束
// TranslateError 把底层约束错误翻译成 gorm 哨兵错误，供仓储层分类
func Open(path string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on", path)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	return db, nil
}

// FirstLaunch 判断是否首次启动；必须在建立连接之前调用，打开连接本身就会创建库文件
func FirstLaunch(cfg *config.Config) bool {
	_, err := os.Stat(cfg.Database.Path)
	return os.IsNotExist(err)
}

// Close 释放底层连接
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

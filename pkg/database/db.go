package database

import (
	"Quill/config"
	"Quill/pkg/log"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB 初始化数据库连接
func NewDB(conf *config.Config) (*gorm.DB, error) {
	dialector, err := Dialector(conf.Database)
	if err != nil {
		return nil, err
	}

	level := logger.Warn
	if conf.Debug() {
		level = logger.Info
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.New(zap.NewStdLog(log.L), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		log.L.Error("failed to connect database", zap.Error(err))
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(40)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	log.L.Info("connect database success", zap.String("driver", conf.Database.Driver))
	return db, nil
}

func Dialector(conf *config.Database) (gorm.Dialector, error) {
	switch conf.Driver {
	case config.DriverMySQL:
		return mysql.Open(conf.Dsn()), nil
	case config.DriverPostgres:
		return postgres.Open(conf.Dsn()), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", conf.Driver)
	}
}

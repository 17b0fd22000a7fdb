package db

import (
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GormLogLevel maps GORM_LOG_LEVEL onto gorm's logger levels.
func GormLogLevel(s string) logger.LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

func OpenGorm(dsn string, level logger.LogLevel, log *zap.Logger) (*gorm.DB, error) {
	return OpenGormWithDialector(mysql.Open(dsn), level, log)
}

// OpenGormWithDialector opens, tunes the pool, then pings once. TranslateError
// is on so unique violations surface as gorm.ErrDuplicatedKey.
func OpenGormWithDialector(dial gorm.Dialector, level logger.LogLevel, log *zap.Logger) (*gorm.DB, error) {
	if log == nil {
		log = zap.NewNop()
	}
	cfg := &gorm.Config{
		Logger:         logger.Default.LogMode(level),
		TranslateError: true,
		// pinged below, after the pool is configured
		DisableAutomaticPing: true,
	}
	db, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	log.Info("gorm: connected", zap.String("dialect", dial.Name()))
	return db, nil
}

// Package storage holds the optional database handle. The API never reads or
// writes through it; the ops server pings it for readiness.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/liamashdown/flowintel/internal/config"
	"github.com/liamashdown/flowintel/internal/metrics"
)

const connectTimeout = 10 * time.Second

// DB wraps the GORM database connection
type DB struct {
	conn *gorm.DB
	log  *logrus.Logger
}

// New opens the database named by cfg.DatabaseDSN and verifies it answers
func New(cfg *config.Config, log *logrus.Logger) (*DB, error) {
	gormLogger := logger.New(
		&gormLogAdapter{log: log},
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	conn, err := gorm.Open(mysql.Open(cfg.DatabaseDSN), &gorm.Config{
		Logger:                 gormLogger,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.DatabaseMaxConns)
	sqlDB.SetMaxIdleConns(max(cfg.DatabaseMaxConns/2, 1))
	sqlDB.SetConnMaxIdleTime(cfg.DatabaseMaxIdleTime)

	db := &DB{conn: conn, log: log}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := db.Ping(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	log.Info("Database connection established")

	return db, nil
}

// Ping checks the connection is alive
func (db *DB) Ping(ctx context.Context) error {
	start := time.Now()
	sqlDB, err := db.conn.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	metrics.RecordStoragePing(time.Since(start), err)
	return err
}

// Close closes the database connection
func (db *DB) Close() error {
	sqlDB, err := db.conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// gormLogAdapter forwards GORM's log lines to logrus at debug level
type gormLogAdapter struct {
	log *logrus.Logger
}

func (a *gormLogAdapter) Printf(format string, args ...interface{}) {
	a.log.Debugf(format, args...)
}

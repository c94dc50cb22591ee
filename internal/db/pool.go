package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	defaultMaxOpenConns    = 8
	defaultConnMaxLifetime = 30 * time.Minute
)

// Pool wraps the gorm connection for the run-history store. Queries go
// through Raw/Exec so the schema stays explicit.
type Pool struct {
	db *gorm.DB
}

func NewPool(ctx context.Context, databaseURL string) (*Pool, error) {
	trimmed := strings.TrimSpace(databaseURL)
	if trimmed == "" {
		return nil, fmt.Errorf("database URL is required")
	}

	gormDB, err := gorm.Open(postgres.Open(trimmed), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrap sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(defaultMaxOpenConns)
	sqlDB.SetConnMaxLifetime(defaultConnMaxLifetime)

	pool := &Pool{db: gormDB}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

func (p *Pool) Ping(ctx context.Context) error {
	if p == nil || p.db == nil {
		return fmt.Errorf("pool is not initialized")
	}
	sqlDB, err := p.db.DB()
	if err != nil {
		return fmt.Errorf("unwrap sql.DB: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}

func (p *Pool) Close() {
	if p == nil || p.db == nil {
		return
	}
	if sqlDB, err := p.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func (p *Pool) exec(ctx context.Context, query string, args ...any) error {
	if p == nil || p.db == nil {
		return fmt.Errorf("pool is not initialized")
	}
	return p.db.WithContext(ctx).Exec(query, args...).Error
}

func (p *Pool) queryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return p.db.WithContext(ctx).Raw(query, args...).Row()
}

func (p *Pool) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return p.db.WithContext(ctx).Raw(query, args...).Rows()
}

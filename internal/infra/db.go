package infra

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewDBPool initializes a new pgx connection pool using the provided configuration.
func NewDBPool(ctx context.Context, cfg *Config) (*pgxpool.Pool, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	poolCfg.MaxConns = 10
	poolCfg.MinConns = 1
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConnIdleTime = 30 * time.Minute

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	return pool, nil
}

// NewDBPoolWithRetry connects with bounded retry and linear backoff. The
// batch sweeper uses this because it tolerates starting a few minutes late
// far better than failing the whole run on a transient connection error.
func NewDBPoolWithRetry(ctx context.Context, cfg *Config, logger Logger) (*pgxpool.Pool, error) {
	attempts := cfg.DBConnRetries
	if attempts < 1 {
		attempts = 1
	}
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		pool, err := NewDBPool(ctx, cfg)
		if err == nil {
			if pingErr := pool.Ping(ctx); pingErr == nil {
				return pool, nil
			} else {
				pool.Close()
				err = pingErr
			}
		}
		lastErr = err
		if attempt < attempts {
			wait := cfg.DBConnBackoff * time.Duration(attempt)
			logger.Warn().Err(err).Int("attempt", attempt).Dur("backoff", wait).Msg("database connect failed, retrying")
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(wait):
			}
		}
	}
	return nil, fmt.Errorf("connect database after %d attempts: %w", attempts, lastErr)
}

// IsNoRows reports whether the error is a pgx no-rows result.
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

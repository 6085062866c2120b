// Package db owns the PostgreSQL connection pool and the query executor built on it.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Options tunes the pool created by New.
type Options struct {
	DSN           string
	MaxConns      int32
	TLSSkipVerify bool
}

// New creates a new PostgreSQL connection pool and verifies it with a ping.
// The caller owns the pool and must Close it on shutdown.
func New(ctx context.Context, opts Options) (*pgxpool.Pool, error) {
	config, err := ParseConfig(opts)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("platform/db: new pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("platform/db: ping: %w", err)
	}

	return pool, nil
}

// ParseConfig turns Options into a pgxpool config without connecting.
func ParseConfig(opts Options) (*pgxpool.Config, error) {
	config, err := pgxpool.ParseConfig(opts.DSN)
	if err != nil {
		return nil, fmt.Errorf("platform/db: parse config: %w", err)
	}
	if opts.MaxConns > 0 {
		config.MaxConns = opts.MaxConns
	}
	// Managed providers hand out certificates the host cannot verify.
	if opts.TLSSkipVerify && config.ConnConfig.TLSConfig != nil {
		config.ConnConfig.TLSConfig.InsecureSkipVerify = true
		for _, fallback := range config.ConnConfig.Fallbacks {
			if fallback.TLSConfig != nil {
				fallback.TLSConfig.InsecureSkipVerify = true
			}
		}
	}
	return config, nil
}

// Package repository implements Postgres persistence for accounts.
package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository holds the pgx pool the account queries run against.
type Repository struct {
	pool *pgxpool.Pool
}

// New opens a connection pool against databaseURL and verifies it with a
// ping. Pool bounds come from configuration.
func New(ctx context.Context, databaseURL string, maxConns, minConns int32) (*Repository, error) {
	poolCfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	poolCfg.MaxConns = maxConns
	poolCfg.MinConns = minConns

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Repository{pool: pool}, nil
}

// Ping reports whether the database is reachable.
func (r *Repository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// Close releases the connection pool.
func (r *Repository) Close() {
	r.pool.Close()
}

// Pool exposes the underlying pool for test plumbing such as schema resets
// and advisory locks. Account access goes through the Repository methods.
func (r *Repository) Pool() *pgxpool.Pool {
	return r.pool
}

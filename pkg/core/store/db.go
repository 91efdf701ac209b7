// Package store persists standardized filings and stitched statement
// snapshots. Postgres is the primary backend; a file-based fallback keeps
// local runs working without a database.
package store

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	pool     *pgxpool.Pool
	poolOnce sync.Once
)

// InitDB opens the shared connection pool from the DATABASE_URL environment
// variable and verifies it with a ping. Repeated calls reuse the first pool.
func InitDB(ctx context.Context) error {
	var err error
	poolOnce.Do(func() {
		dsn := os.Getenv("DATABASE_URL")
		if dsn == "" {
			err = fmt.Errorf("DATABASE_URL not set")
			return
		}

		cfg, parseErr := pgxpool.ParseConfig(dsn)
		if parseErr != nil {
			err = fmt.Errorf("parse DATABASE_URL: %w", parseErr)
			return
		}

		p, openErr := pgxpool.NewWithConfig(ctx, cfg)
		if openErr != nil {
			err = fmt.Errorf("open postgres pool: %w", openErr)
			return
		}
		if pingErr := p.Ping(ctx); pingErr != nil {
			p.Close()
			err = fmt.Errorf("ping postgres: %w", pingErr)
			return
		}

		pool = p
		log.Printf("[STORE] postgres pool ready")
	})
	return err
}

// GetPool returns the shared pool, or nil before InitDB succeeds. Callers
// taking a nil pool (SnapshotCache, FilingsRepo) degrade to their file or
// error paths.
func GetPool() *pgxpool.Pool {
	return pool
}

// Close releases the shared pool.
func Close() {
	if pool != nil {
		pool.Close()
	}
}

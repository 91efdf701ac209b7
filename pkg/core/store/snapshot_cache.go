package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	gocache "github.com/patrickmn/go-cache"

	"xbrl_fundamentals/pkg/core/stitch"
)

// SnapshotCache caches stitched statement snapshots so repeat renders of
// the same registrant skip re-stitching. Hybrid layout: in-memory layer
// in front, DB primary, file system fallback for local runs without a
// database.
type SnapshotCache struct {
	pool    *pgxpool.Pool
	fileDir string
	mem     *gocache.Cache
}

// NewSnapshotCache creates a snapshot cache. If pool is nil, snapshots go
// to the file directory; if dir is also empty, a default local cache
// directory is used.
func NewSnapshotCache(pool *pgxpool.Pool, dir string) *SnapshotCache {
	if pool == nil && dir == "" {
		dir = filepath.Join(".cache", "snapshots")
	}
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Printf("[WARNING] Check SnapshotCache dir: %v\n", err)
		}
	}
	return &SnapshotCache{
		pool:    pool,
		fileDir: dir,
		mem:     gocache.New(30*time.Minute, 10*time.Minute),
	}
}

// SnapshotEntry wraps a stitched statement with its cache identity.
type SnapshotEntry struct {
	CIK        string            `json:"cik"`
	Role       string            `json:"role"`
	Statement  *stitch.Statement `json:"statement"`
	StitchedAt time.Time         `json:"stitched_at"`
}

func snapshotKey(cik, role string) string {
	return cik + "|" + role
}

// Get retrieves a cached snapshot for one registrant and statement role.
// A miss returns (nil, nil).
func (c *SnapshotCache) Get(ctx context.Context, cik, role string) (*stitch.Statement, error) {
	key := snapshotKey(cik, role)
	if v, ok := c.mem.Get(key); ok {
		return v.(*stitch.Statement), nil
	}

	if c.pool != nil {
		query := `
			SELECT data FROM statement_snapshots
			WHERE cik = $1 AND role = $2
			ORDER BY created_at DESC
			LIMIT 1
		`
		var data []byte
		if err := c.pool.QueryRow(ctx, query, cik, role).Scan(&data); err != nil {
			return nil, nil
		}
		var st stitch.Statement
		if err := json.Unmarshal(data, &st); err != nil {
			return nil, fmt.Errorf("failed to unmarshal db snapshot: %w", err)
		}
		c.mem.Set(key, &st, gocache.DefaultExpiration)
		return &st, nil
	}

	if c.fileDir != "" {
		data, err := os.ReadFile(c.snapshotPath(cik, role))
		if err != nil {
			return nil, nil
		}
		var entry SnapshotEntry
		if err := json.Unmarshal(data, &entry); err != nil || entry.Statement == nil {
			return nil, nil
		}
		c.mem.Set(key, entry.Statement, gocache.DefaultExpiration)
		return entry.Statement, nil
	}

	return nil, nil
}

// Save stores a stitched snapshot, replacing any previous snapshot for
// the same registrant and role.
func (c *SnapshotCache) Save(ctx context.Context, st *stitch.Statement) error {
	entry := SnapshotEntry{
		CIK:        st.CIK,
		Role:       st.Role,
		Statement:  st,
		StitchedAt: time.Now().UTC(),
	}

	if c.pool != nil {
		data, err := json.Marshal(st)
		if err != nil {
			return fmt.Errorf("marshal snapshot: %w", err)
		}
		query := `
			INSERT INTO statement_snapshots (cik, role, data)
			VALUES ($1, $2, $3)
			ON CONFLICT (cik, role)
			DO UPDATE SET data = EXCLUDED.data, created_at = NOW()
		`
		if _, err := c.pool.Exec(ctx, query, st.CIK, st.Role, data); err != nil {
			return fmt.Errorf("failed to save snapshot to db: %w", err)
		}
	}

	if c.fileDir != "" {
		data, err := json.MarshalIndent(entry, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal snapshot entry: %w", err)
		}
		if err := os.WriteFile(c.snapshotPath(st.CIK, st.Role), data, 0644); err != nil {
			return fmt.Errorf("failed to save snapshot to file cache: %w", err)
		}
	}

	c.mem.Set(snapshotKey(st.CIK, st.Role), st, gocache.DefaultExpiration)
	return nil
}

// Invalidate drops a cached snapshot from every layer, used after a new
// filing for the registrant lands.
func (c *SnapshotCache) Invalidate(ctx context.Context, cik, role string) error {
	c.mem.Delete(snapshotKey(cik, role))

	if c.pool != nil {
		query := `DELETE FROM statement_snapshots WHERE cik = $1 AND role = $2`
		if _, err := c.pool.Exec(ctx, query, cik, role); err != nil {
			return fmt.Errorf("failed to invalidate db snapshot: %w", err)
		}
	}
	if c.fileDir != "" {
		if err := os.Remove(c.snapshotPath(cik, role)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove snapshot file: %w", err)
		}
	}
	return nil
}

func (c *SnapshotCache) snapshotPath(cik, role string) string {
	safe := strings.ReplaceAll(cik+"_"+role, "/", "_")
	return filepath.Join(c.fileDir, safe+".json")
}

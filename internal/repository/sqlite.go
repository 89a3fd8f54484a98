package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/advisorhq/web/internal/tenant"
)

const schema = `
CREATE TABLE IF NOT EXISTS tenants (
	id     TEXT PRIMARY KEY,
	name   TEXT NOT NULL,
	domain TEXT NOT NULL DEFAULT '',
	record TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_tenants_domain ON tenants(domain);
`

// SQLite stores each tenant as one row with the full record serialized as
// JSON. Tenants are few and read whole at startup; name and domain are
// extracted into columns for inspection, not for queries.
type SQLite struct {
	db   *sql.DB
	path string
}

var _ tenant.Repository = (*SQLite)(nil)

// NewSQLite opens (and if needed creates) the tenant database under
// dataDir.
func NewSQLite(dataDir string) (*SQLite, error) {
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	dbPath := filepath.Join(dataDir, "tenants.db")

	// WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLite{db: db, path: dbPath}, nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) Path() string {
	return s.path
}

func (s *SQLite) LoadAll(ctx context.Context) ([]tenant.Tenant, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT record FROM tenants ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying tenants: %w", err)
	}
	defer rows.Close()

	var out []tenant.Tenant
	for rows.Next() {
		var record string
		if err := rows.Scan(&record); err != nil {
			return nil, fmt.Errorf("scanning tenant row: %w", err)
		}
		var t tenant.Tenant
		if err := json.Unmarshal([]byte(record), &t); err != nil {
			return nil, fmt.Errorf("decoding tenant record: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *SQLite) Persist(ctx context.Context, t tenant.Tenant) error {
	record, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("encoding tenant %q: %w", t.ID, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO tenants (id, name, domain, record) VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name, domain = excluded.domain, record = excluded.record`,
		t.ID, t.Name, t.Domain, string(record))
	if err != nil {
		return fmt.Errorf("upserting tenant %q: %w", t.ID, err)
	}
	return nil
}

func (s *SQLite) Remove(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM tenants WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting tenant %q: %w", id, err)
	}
	return nil
}

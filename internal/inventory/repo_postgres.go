package inventory

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"linedesk/pkg/utils"
)

// PostgresRepo persists lines and groups as jsonb documents. Insertion order
// is preserved through a bigserial position column so List matches the memory
// repository's ordering contract.
type PostgresRepo struct {
	db *sql.DB
}

func NewPostgresRepo(db *sql.DB) *PostgresRepo {
	return &PostgresRepo{db: db}
}

// EnsureSchema creates the tables when they do not exist yet. Kept idempotent
// so startup can call it unconditionally.
func (r *PostgresRepo) EnsureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS lines (
	id        TEXT PRIMARY KEY,
	position  BIGSERIAL,
	data      JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE TABLE IF NOT EXISTS line_groups (
	id        TEXT PRIMARY KEY,
	position  BIGSERIAL,
	data      JSONB NOT NULL
);`
	_, err := r.db.ExecContext(ctx, ddl)
	return err
}

func (r *PostgresRepo) List(ctx context.Context) ([]Line, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT data FROM lines ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Line
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var l Line
		if err := json.Unmarshal(raw, &l); err != nil {
			return nil, fmt.Errorf("decode line row: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) Get(ctx context.Context, id string) (Line, error) {
	var raw []byte
	err := r.db.QueryRowContext(ctx, `SELECT data FROM lines WHERE id = $1`, id).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return Line{}, ErrNotFound
	}
	if err != nil {
		return Line{}, err
	}
	var l Line
	if err := json.Unmarshal(raw, &l); err != nil {
		return Line{}, fmt.Errorf("decode line row: %w", err)
	}
	return l, nil
}

func (r *PostgresRepo) Put(ctx context.Context, l Line) error {
	raw, err := json.Marshal(l)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
INSERT INTO lines (id, data) VALUES ($1, $2)
ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
		l.ID, raw)
	return err
}

func (r *PostgresRepo) Groups(ctx context.Context) ([]Group, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT data FROM line_groups ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Group
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var g Group
		if err := json.Unmarshal(raw, &g); err != nil {
			return nil, fmt.Errorf("decode group row: %w", err)
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// SeedIfEmpty loads the fixture dataset into an empty database so a fresh
// postgres deployment starts with the same data as memory mode. Runs in one
// transaction; a partially seeded store is never visible.
func (r *PostgresRepo) SeedIfEmpty(ctx context.Context, lines []Line, groups []Group) error {
	return utils.WithTx(ctx, r.db, &sql.TxOptions{}, func(ctx context.Context, tx *sql.Tx) error {
		var n int
		if err := tx.QueryRowContext(ctx, `SELECT count(*) FROM lines`).Scan(&n); err != nil {
			return err
		}
		if n > 0 {
			return nil
		}
		for _, l := range lines {
			raw, err := json.Marshal(l)
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO lines (id, data) VALUES ($1, $2)`, l.ID, raw); err != nil {
				return err
			}
		}
		for _, g := range groups {
			raw, err := json.Marshal(g)
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO line_groups (id, data) VALUES ($1, $2)`, g.ID, raw); err != nil {
				return err
			}
		}
		return nil
	})
}

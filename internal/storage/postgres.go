package storage

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgUndefinedTable = "42P01"

	createKVTable = `CREATE TABLE IF NOT EXISTS atlas_kv (
		key   TEXT PRIMARY KEY,
		value JSONB NOT NULL
	)`
)

// PostgresStore keeps one row per collection in a single key/value table.
// The upsert is a single statement, so writes stay atomic per key.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore wraps an existing pool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Migrate creates the backing table.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, createKVTable)
	return err
}

func (s *PostgresStore) Get(ctx context.Context, key string, dest any) (bool, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx, `SELECT value FROM atlas_kv WHERE key = $1`, key).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) || isUndefinedTable(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (s *PostgresStore) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO atlas_kv (key, value) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
		key, raw)
	if isUndefinedTable(err) {
		if merr := s.Migrate(ctx); merr != nil {
			return merr
		}
		_, err = s.pool.Exec(ctx,
			`INSERT INTO atlas_kv (key, value) VALUES ($1, $2)
			 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
			key, raw)
	}
	return err
}

func (s *PostgresStore) Remove(ctx context.Context, key string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM atlas_kv WHERE key = $1`, key)
	if isUndefinedTable(err) {
		return nil
	}
	return err
}

func (s *PostgresStore) Clear(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM atlas_kv WHERE key = ANY($1)`, Keys())
	if isUndefinedTable(err) {
		return nil
	}
	return err
}

// isUndefinedTable detects reads that race the first migration.
func isUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUndefinedTable
}

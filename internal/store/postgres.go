package store

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gerry-coffee/internal/domain"
)

// Postgres stores documents in the app_state table.
type Postgres struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) *Postgres {
	return &Postgres{pool: pool, logger: logger}
}

func (s *Postgres) Load(ctx context.Context, key string) ([]byte, error) {
	const q = `
SELECT value
FROM app_state
WHERE key = $1
`
	var value []byte
	if err := s.pool.QueryRow(ctx, q, key).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return value, nil
}

func (s *Postgres) Save(ctx context.Context, key string, value []byte) error {
	const q = `
INSERT INTO app_state (key, value, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE
SET value = EXCLUDED.value,
    updated_at = now()
`
	if _, err := s.pool.Exec(ctx, q, key, value); err != nil {
		if s.logger != nil {
			s.logger.Printf("save %s failed: %v", key, err)
		}
		return err
	}
	return nil
}

func (s *Postgres) Keys(ctx context.Context) ([]string, error) {
	const q = `
SELECT key
FROM app_state
ORDER BY key
`
	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

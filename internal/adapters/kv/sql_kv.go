package kv

import (
	"colis-service/internal/adapters/repositories"
	"colis-service/internal/platform/obs"
	"colis-service/internal/ports"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

var _ ports.KeyValueStorage = (*SQLStore)(nil)

// SQLStore keeps values in the kv_store table created by
// repositories.InitSchema. It serves both SQLite and PostgreSQL.
type SQLStore struct {
	DB      *sql.DB
	Dialect repositories.Dialect
}

func NewSQLStore(db *sql.DB, dialect repositories.Dialect) *SQLStore {
	return &SQLStore{DB: db, Dialect: dialect}
}

func (s *SQLStore) Get(ctx context.Context, key string) (_ string, _ bool, err error) {
	defer obs.Time(ctx, "kv.sql.Get")(&err)

	if s.DB == nil {
		return "", false, errors.New("sql kv: db is nil")
	}
	if strings.TrimSpace(key) == "" {
		return "", false, errors.New("get kv: key must not be empty")
	}

	q := fmt.Sprintf(`SELECT payload FROM kv_store WHERE name = %s;`, s.Dialect.Bind(1))

	var value string
	err = s.DB.QueryRowContext(ctx, q, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get kv key=%q: %w", key, err)
	}

	return value, true, nil
}

func (s *SQLStore) Set(ctx context.Context, key string, value string) (err error) {
	defer obs.Time(ctx, "kv.sql.Set")(&err)

	if s.DB == nil {
		return errors.New("sql kv: db is nil")
	}
	if strings.TrimSpace(key) == "" {
		return errors.New("set kv: key must not be empty")
	}

	q := fmt.Sprintf(`
	INSERT INTO kv_store (name, payload)
	VALUES (%s, %s)
	ON CONFLICT (name) DO UPDATE
	SET payload = EXCLUDED.payload;
	`, s.Dialect.Bind(1), s.Dialect.Bind(2))

	if _, err := s.DB.ExecContext(ctx, q, key, value); err != nil {
		return fmt.Errorf("set kv key=%q: %w", key, err)
	}

	return nil
}

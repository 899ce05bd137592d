package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/client-dashboard-api/infrastructure/database"
	"github.com/vfg2006/client-dashboard-api/infrastructure/database/postgres"
)

const kvTable = "kv_entries"

const createTableSQL = `CREATE TABLE IF NOT EXISTS kv_entries (
	entry_key   TEXT PRIMARY KEY,
	entry_value TEXT NOT NULL,
	updated_at  BIGINT NOT NULL
)`

const upsertSuffix = "ON CONFLICT (entry_key) DO UPDATE SET entry_value = EXCLUDED.entry_value, updated_at = EXCLUDED.updated_at"

// SQLStore guarda as entradas em uma tabela única; funciona com postgres e sqlite
type SQLStore struct {
	conn        *database.Connection
	placeholder squirrel.PlaceholderFormat
	now         func() time.Time
}

func NewSQLStore(ctx context.Context, conn *database.Connection) (*SQLStore, error) {
	store := &SQLStore{
		conn:        conn,
		placeholder: squirrel.Question,
		now:         time.Now,
	}
	if conn.Driver == postgres.DriverName {
		store.placeholder = squirrel.Dollar
	}

	if _, err := conn.ExecContext(ctx, createTableSQL); err != nil {
		return nil, fmt.Errorf("erro ao criar tabela %s: %w", kvTable, err)
	}

	return store, nil
}

func (s *SQLStore) Get(ctx context.Context, key string) (string, error) {
	query, args, err := squirrel.
		Select("entry_value").
		From(kvTable).
		Where(squirrel.Eq{"entry_key": key}).
		PlaceholderFormat(s.placeholder).
		ToSql()
	if err != nil {
		return "", err
	}

	var value string
	if err := s.conn.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}

	return value, nil
}

func (s *SQLStore) Set(ctx context.Context, key, value string) error {
	query, args, err := s.upsert(key, value)
	if err != nil {
		return err
	}

	_, err = s.conn.ExecContext(ctx, query, args...)
	return err
}

func (s *SQLStore) SetMany(ctx context.Context, entries map[string]string) error {
	return s.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for key, value := range entries {
			query, args, err := s.upsert(key, value)
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("erro ao gravar %s: %w", key, err)
			}
		}
		return nil
	})
}

func (s *SQLStore) upsert(key, value string) (string, []interface{}, error) {
	return squirrel.
		Insert(kvTable).
		Columns("entry_key", "entry_value", "updated_at").
		Values(key, value, s.now().UnixMilli()).
		Suffix(upsertSuffix).
		PlaceholderFormat(s.placeholder).
		ToSql()
}

func (s *SQLStore) Delete(ctx context.Context, key string) error {
	query, args, err := squirrel.
		Delete(kvTable).
		Where(squirrel.Eq{"entry_key": key}).
		PlaceholderFormat(s.placeholder).
		ToSql()
	if err != nil {
		return err
	}

	_, err = s.conn.ExecContext(ctx, query, args...)
	return err
}

func (s *SQLStore) Ping(ctx context.Context) error {
	return s.conn.Ping(ctx)
}

func (s *SQLStore) Close() error {
	return s.conn.Close()
}

package database

import (
	"context"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"storefront/config"
)

// Open connects to the configured backend and applies the pool limits.
func Open(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	dbConn, err := sqlx.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("db open (%s) failed: %w", cfg.Driver, err)
	}
	if cfg.MaxOpenConns > 0 {
		dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
	if err := dbConn.Ping(); err != nil {
		dbConn.Close()
		return nil, fmt.Errorf("db ping (%s) failed: %w", cfg.Driver, err)
	}
	zap.L().Info("database connection established", zap.String("driver", cfg.Driver))
	return dbConn, nil
}

// Store is the storefront's view of the external data store. Every
// operation is an independent request; nothing here spans a transaction.
type Store struct {
	db     *sqlx.DB
	source string
}

// NewStore wraps db. source is the provenance tag written on new records
// and used to filter order lookups.
func NewStore(db *sqlx.DB, source string) *Store {
	return &Store{db: db, source: source}
}

func (s *Store) Source() string { return s.source }

func (s *Store) DB() *sqlx.DB { return s.db }

func (s *Store) get(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return s.db.GetContext(ctx, dest, s.db.Rebind(query), args...)
}

func (s *Store) selectAll(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return s.db.SelectContext(ctx, dest, s.db.Rebind(query), args...)
}

func (s *Store) exec(ctx context.Context, query string, args ...interface{}) (int64, error) {
	res, err := s.db.ExecContext(ctx, s.db.Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Package postgres implements run persistence on PostgreSQL using pgx behind
// a database/sql wrapper and goqu for query construction.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

// Options defines the configuration parameters for the PostgreSQL connection.
type Options struct {
	// Username is the PostgreSQL user to connect as
	Username string
	// Password is the password for the specified user
	Password string
	// Host is the PostgreSQL server hostname or IP address
	Host string
	// SslMode specifies the SSL mode for the connection (e.g., "disable", "require")
	SslMode string
	// Port is the PostgreSQL server port number
	Port int
	// Database is the name of the database to connect to
	Database string
	// ConnMaxLifetime is the maximum amount of time a connection may be reused
	ConnMaxLifetime time.Duration
	// ConnMaxIdleTime is the maximum amount of time a connection may be idle
	ConnMaxIdleTime time.Duration
	// MaxOpenConnections is the maximum number of open connections to the database
	MaxOpenConnections int
	// MaxIdleConnections is the maximum number of connections in the idle connection pool
	MaxIdleConnections int
}

// PgSQL implements storage.RunStore for PostgreSQL.
type PgSQL struct {
	// DB is the database/sql wrapper around the pgx pool, shared with goqu and
	// goose.
	DB *sql.DB
	// Builder is the goqu handle used to construct SQL queries bound to DB.
	Builder *goqu.Database
	// Pool is the underlying pgx connection pool.
	Pool *pgxpool.Pool
}

// New creates a PostgreSQL store backed by pgxpool, with a database/sql
// wrapper for compatibility with goqu and migrations.
func New(ctx context.Context, options Options) (*PgSQL, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s dbname=%s password=%s sslmode=%s",
		options.Host,
		options.Port,
		options.Username,
		options.Database,
		options.Password,
		options.SslMode)
	cfg, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("could not parse pgxpool config: %w", err)
	}
	if options.MaxOpenConnections > 0 {
		cfg.MaxConns = int32(options.MaxOpenConnections) //nolint: gosec
	}
	if options.MaxIdleConnections > 0 {
		cfg.MinConns = int32(options.MaxIdleConnections) //nolint: gosec
	}
	if options.ConnMaxLifetime > 0 {
		cfg.MaxConnLifetime = options.ConnMaxLifetime
	}
	if options.ConnMaxIdleTime > 0 {
		cfg.MaxConnIdleTime = options.ConnMaxIdleTime
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("could not create pgx pool: %w", err)
	}

	// wrap the pool with a *sql.DB to keep compatibility with goqu and goose
	sqlDB := stdlib.OpenDBFromPool(pool)

	return &PgSQL{
		DB:      sqlDB,
		Builder: goqu.Dialect("postgres").DB(sqlDB),
		Pool:    pool,
	}, nil
}

// Close closes the database/sql wrapper and the pgx pool.
func (p *PgSQL) Close() error {
	if p.DB != nil {
		_ = p.DB.Close()
	}
	if p.Pool != nil {
		p.Pool.Close()
	}

	return nil
}

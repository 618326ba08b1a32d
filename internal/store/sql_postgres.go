package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-finance-advisor/internal/config"
	"github.com/MKhiriev/go-finance-advisor/internal/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/stdlib"
)

// NewConnectPostgres opens a PostgreSQL pool through the pgx stdlib driver.
// Sessions run in UTC with the configured statement_timeout.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	connConfig, err := pgx.ParseConfig(cfg.URL())
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error parsing database url")
		return nil, fmt.Errorf("error parsing database url: %w", err)
	}

	connConfig.RuntimeParams["timezone"] = "UTC"
	if cfg.StatementTimeout > 0 {
		connConfig.RuntimeParams["statement_timeout"] = strconv.FormatInt(cfg.StatementTimeout.Milliseconds(), 10)
	}

	// establish connection
	conn := stdlib.OpenDB(*connConfig)

	// setup connections
	conn.SetMaxOpenConns(cfg.PoolSize + cfg.MaxOverflow)
	conn.SetMaxIdleConns(cfg.PoolSize)
	conn.SetConnMaxLifetime(cfg.PoolRecycle)

	// ping database
	pingCtx := ctx
	if cfg.PoolTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, cfg.PoolTimeout)
		defer cancel()
	}

	if err = conn.PingContext(pingCtx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}
	log.Info().
		Str("func", "NewConnectPostgres").
		Str("url", RedactURL(cfg.URL())).
		Msg("connected to database successfully")

	return newDB(conn, config.DialectPostgres, cfg, log), nil
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

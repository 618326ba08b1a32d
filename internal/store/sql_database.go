package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	"github.com/MKhiriev/go-finance-advisor/internal/config"
	"github.com/MKhiriev/go-finance-advisor/internal/logger"
	"github.com/MKhiriev/go-finance-advisor/migrations"
	"github.com/MKhiriev/go-finance-advisor/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/avast/retry-go/v4"
)

const (
	defaultRetryAttempts = 3
	defaultRetryDelay    = 100 * time.Millisecond
)

// DB wraps *sql.DB with the dialect-specific query builder, the error
// classifier used to decide on retries and the settings reported by /info.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	retryAttempts      uint
	retryDelay         time.Duration
	echo               bool
	cfg                config.DB
	logger             *logger.Logger
}

func newDB(conn *sql.DB, dialect string, cfg config.DB, log *logger.Logger) *DB {
	db := &DB{
		DB:            conn,
		dialect:       dialect,
		retryAttempts: defaultRetryAttempts,
		retryDelay:    defaultRetryDelay,
		echo:          cfg.Echo,
		cfg:           cfg,
		logger:        log,
	}

	switch dialect {
	case config.DialectPostgres:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	}

	return db
}

// NewConnectDB opens the database selected by cfg.Dialect.
func NewConnectDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if cfg.Dialect() == config.DialectPostgres {
		return NewConnectPostgres(ctx, cfg, log)
	}

	return NewConnectSQLite(ctx, cfg, log)
}

// Migrate applies the embedded schema migrations of the DB's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// Dialect returns config.DialectPostgres or config.DialectSQLite.
func (db *DB) Dialect() string {
	return db.dialect
}

// Ping runs SELECT 1.
func (db *DB) Ping(ctx context.Context) error {
	var one int
	if err := db.QueryRowContext(ctx, "SELECT 1").Scan(&one); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// Version returns the server version string.
func (db *DB) Version(ctx context.Context) (string, error) {
	query := "SELECT sqlite_version()"
	if db.dialect == config.DialectPostgres {
		query = "SELECT version()"
	}

	var version string
	if err := db.QueryRowContext(ctx, query).Scan(&version); err != nil {
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return version, nil
}

// Info describes the connection without credentials. Version is filled in
// when the database answers.
func (db *DB) Info(ctx context.Context) models.DatabaseInfo {
	info := models.DatabaseInfo{
		Type: db.dialect,
		URL:  RedactURL(db.cfg.URL()),
	}
	if db.dialect == config.DialectPostgres {
		info.PoolSize = db.cfg.PoolSize
		info.MaxOverflow = db.cfg.MaxOverflow
	}

	if version, err := db.Version(ctx); err == nil {
		info.Version = version
	}

	return info
}

// withRetry runs fn again while the classifier reports the error as
// transient. The last error is returned unchanged.
func (db *DB) withRetry(ctx context.Context, fn func() error) error {
	attempts := db.retryAttempts
	if attempts == 0 {
		attempts = 1
	}

	return retry.Do(fn,
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(db.retryDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable
		}),
		retry.OnRetry(func(attempt uint, err error) {
			logger.FromContext(ctx).Warn().Err(err).
				Str("func", "*DB.withRetry").
				Uint("attempt", attempt+1).
				Msg("retrying database operation")
		}),
	)
}

// logQuery prints statements when STORAGE_DB_ECHO is on.
func (db *DB) logQuery(ctx context.Context, query string, args []any) {
	if !db.echo {
		return
	}

	logger.FromContext(ctx).Debug().
		Str("func", "*DB.logQuery").
		Str("query", query).
		Interface("args", args).
		Msg("sql")
}

// RedactURL masks the password of a connection URL. Values that do not
// parse as URLs are returned as they are.
func RedactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	return u.Redacted()
}

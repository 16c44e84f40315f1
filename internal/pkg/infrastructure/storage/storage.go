package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Config struct {
	host     string
	user     string
	password string
	port     string
	dbname   string
	sslmode  string
}

func (c Config) ConnStr() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", c.user, c.password, c.host, c.port, c.dbname, c.sslmode)
}

func NewConfig(host, user, password, port, dbname, sslmode string) Config {
	return Config{
		host:     host,
		user:     user,
		password: password,
		port:     port,
		dbname:   dbname,
		sslmode:  sslmode,
	}
}

const (
	poolMinConns        = 5
	poolMaxConns        = 15 // base capacity plus overflow
	poolMaxConnLifetime = time.Hour

	// idle connections are pinged on this interval, the closest the pool
	// gets to a health check before use
	poolHealthCheckPeriod = time.Minute

	initAttempts  = 10
	initRetryWait = 3 * time.Second
)

func poolConfig(config Config) (*pgxpool.Config, error) {
	cfg, err := pgxpool.ParseConfig(config.ConnStr())
	if err != nil {
		return nil, err
	}

	cfg.MinConns = poolMinConns
	cfg.MaxConns = poolMaxConns
	cfg.MaxConnLifetime = poolMaxConnLifetime
	cfg.HealthCheckPeriod = poolHealthCheckPeriod

	return cfg, nil
}

func NewPool(ctx context.Context, config Config) (*pgxpool.Pool, error) {
	cfg, err := poolConfig(config)
	if err != nil {
		return nil, err
	}

	logging.GetFromContext(ctx).Info("creating database connection pool",
		"host", config.host, "dbname", config.dbname)

	p, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	err = p.Ping(ctx)
	if err != nil {
		return nil, err
	}

	return p, nil
}

var (
	ErrNoRows      = errors.New("no rows in result set")
	ErrQueryRow    = errors.New("could not execute query")
	ErrStoreFailed = errors.New("could not store data")
)

type Storage struct {
	pool *pgxpool.Pool
}

func NewWithPool(pool *pgxpool.Pool) *Storage {
	return &Storage{pool: pool}
}

func New(ctx context.Context, config Config) (*Storage, error) {
	pool, err := NewPool(ctx, config)
	if err != nil {
		return nil, err
	}

	return &Storage{pool: pool}, nil
}

// Initialize creates the required tables if they do not exist yet. Table
// creation is retried with a fixed delay while the database is unreachable,
// so that a slow starting database does not kill the service. Errors that are
// not connectivity related propagate immediately.
func (s *Storage) Initialize(ctx context.Context) error {
	log := logging.GetFromContext(ctx)

	var err error

	for attempt := 1; attempt <= initAttempts; attempt++ {
		err = s.createTables(ctx)
		if err == nil {
			return nil
		}

		if pingErr := s.pool.Ping(ctx); pingErr == nil {
			return err
		}

		log.Warn("database not reachable, retrying table creation",
			"attempt", attempt, "max_attempts", initAttempts, "err", err.Error())

		select {
		case <-time.After(initRetryWait):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return fmt.Errorf("could not create tables after %d attempts: %w", initAttempts, err)
}

func (s *Storage) createTables(ctx context.Context) error {
	ddl := `
		CREATE TABLE IF NOT EXISTS sensors (
			id			BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
			name		VARCHAR(255)	NOT NULL,
			description	VARCHAR(255)	NOT NULL,
			unit		VARCHAR(50)		NOT NULL
		);

		CREATE TABLE IF NOT EXISTS sensor_data (
			id			BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
			sensor_id	BIGINT				NOT NULL REFERENCES sensors (id),
			value		DOUBLE PRECISION	NOT NULL,
			time		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS sensor_data_sensor_id_time_idx ON sensor_data (sensor_id, time DESC);
	`

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, ddl)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Storage) Close() {
	s.pool.Close()
}

// inTx runs fn inside a transaction. The transaction is committed when fn
// returns nil and rolled back otherwise, with the original error returned
// unchanged. The deferred rollback is a no-op after a successful commit.
func (s *Storage) inTx(ctx context.Context, fn func(pgx.Tx) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = fn(tx)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

package wrds

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"famafrench/internal/logger"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

// Connection is the read-only session against the WRDS Postgres
// warehouse. It owns the *sql.DB handle and a single reconnect retry:
// transient failures get one reconnect-and-retry, anything else is
// returned to the caller. Repositories share one Connection, so the
// handle swap on reconnect is guarded.
type Connection struct {
	mu        sync.Mutex
	db        *sql.DB
	params    ConnectionParams
	SessionID uuid.UUID
}

type ConnectionParams struct {
	Username string
	Password string
	Host     string
	Port     int
	Database string
}

const (
	DefaultHost     = "wrds-pgdata.wharton.upenn.edu"
	DefaultPort     = 9737
	DefaultDatabase = "wrds"
)

func (p ConnectionParams) withDefaults() ConnectionParams {
	if p.Host == "" {
		p.Host = DefaultHost
	}
	if p.Port == 0 {
		p.Port = DefaultPort
	}
	if p.Database == "" {
		p.Database = DefaultDatabase
	}
	return p
}

func (p ConnectionParams) connectionStr() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=require application_name=famafrench",
		p.Host, p.Port, p.Username, p.Password, p.Database,
	)
}

func Connect(ctx context.Context, params ConnectionParams) (*Connection, error) {
	params = params.withDefaults()
	if params.Username == "" || params.Password == "" {
		return nil, fmt.Errorf("wrds credentials missing: set WRDS_USERNAME and WRDS_PASSWORD")
	}

	db, err := sql.Open("postgres", params.connectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to open wrds connection: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to reach wrds host %s: %w", params.Host, err)
	}

	conn := &Connection{
		db:        db,
		params:    params,
		SessionID: uuid.New(),
	}
	logger.FromContext(ctx).Infow("connected to wrds",
		"host", params.Host,
		"session", conn.SessionID,
	)

	return conn, nil
}

func (c *Connection) Close() error {
	return c.handle().Close()
}

// DB exposes the underlying handle for go-jet statements.
func (c *Connection) DB() *sql.DB {
	return c.handle()
}

func (c *Connection) handle() *sql.DB {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.db
}

// reconnect replaces the dead handle, unless a concurrent caller beat
// us to it, and refreshes the session id to match the new session.
func (c *Connection) reconnect(ctx context.Context, dead *sql.DB) (*sql.DB, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db != dead {
		return c.db, nil
	}

	reconnected, err := Connect(ctx, c.params)
	if err != nil {
		return nil, err
	}
	dead.Close()
	c.db = reconnected.db
	c.SessionID = reconnected.SessionID
	return c.db, nil
}

// Query runs fn, reconnecting once if the session dropped. WRDS kills
// idle sessions aggressively, so a single retry after reconnect covers
// the common failure without masking real query errors.
func (c *Connection) Query(ctx context.Context, name string, fn func(db *sql.DB) error) error {
	runID := uuid.New()
	log := logger.FromContext(ctx)
	start := time.Now()

	db := c.handle()
	err := fn(db)
	if err != nil && db.PingContext(ctx) != nil {
		log.Warnw("wrds session dropped, reconnecting", "query", name, "run", runID)
		db, err = c.reconnect(ctx, db)
		if err != nil {
			return fmt.Errorf("failed to reconnect to wrds: %w", err)
		}
		err = fn(db)
	}
	if err != nil {
		return fmt.Errorf("wrds query %s failed: %w", name, err)
	}

	log.Debugw("wrds query complete",
		"query", name,
		"run", runID,
		"elapsed", time.Since(start),
	)
	return nil
}

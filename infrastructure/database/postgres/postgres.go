package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/andresholmo/tiktok-arbitrage-api/internal/config"
	_ "github.com/lib/pq"
)

const driverName = "postgres"

type Conn interface {
	Queryer
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
	Close() error
	Ping(context.Context) error
	RunInTransaction(context.Context, func(*sql.Tx) error) error
}

// Connection é o pool compartilhado pelos repositórios e pelo advisory lock
type Connection struct {
	*sql.DB
}

func NewConnection(ctx context.Context, cfg config.Database) (*Connection, error) {
	db, err := sql.Open(driverName, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("abrindo conexão com o banco: %w", err)
	}

	conn := &Connection{DB: db}
	if err := conn.Ping(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("banco indisponível: %w", err)
	}

	return conn, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// RunInTransaction faz commit quando fn retorna nil; erro ou panic desfazem a transação
func (c *Connection) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Join(err, rbErr)
		}
		return err
	}

	return tx.Commit()
}

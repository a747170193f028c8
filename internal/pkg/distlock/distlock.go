package distlock

import (
	"context"
	"database/sql"
	"errors"
	"hash/fnv"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrNotHeld = errors.New("lock não pertence a este processo")

// DistLock trava uma chave entre instâncias da API.
// Cada instância deve ser usada por uma única goroutine.
type DistLock interface {
	Acquire(ctx context.Context) (bool, error)
	Release(ctx context.Context) error
}

// Factory cria locks usando Redis quando configurado e advisory lock do Postgres caso contrário
type Factory struct {
	redis *redis.Client
	db    *sql.DB
	ttl   time.Duration
}

func NewFactory(redisClient *redis.Client, db *sql.DB, ttl time.Duration) *Factory {
	return &Factory{
		redis: redisClient,
		db:    db,
		ttl:   ttl,
	}
}

func (f *Factory) NewLock(key string) DistLock {
	if f.redis != nil {
		return NewRedisLock(f.redis, key, f.ttl)
	}
	return NewPGAdvisoryLock(f.db, key)
}

// PGAdvisoryLock usa pg_try_advisory_lock, que é por sessão: lock e unlock
// precisam rodar na mesma conexão, por isso ela fica presa até o Release.
type PGAdvisoryLock struct {
	db     *sql.DB
	conn   *sql.Conn
	lockID int64
}

func NewPGAdvisoryLock(db *sql.DB, key string) *PGAdvisoryLock {
	h := fnv.New64a()
	h.Write([]byte(key))

	return &PGAdvisoryLock{
		db:     db,
		lockID: int64(h.Sum64()),
	}
}

func (l *PGAdvisoryLock) Acquire(ctx context.Context) (bool, error) {
	if l.conn != nil {
		return false, nil
	}

	conn, err := l.db.Conn(ctx)
	if err != nil {
		return false, err
	}

	var acquired bool
	if err := conn.QueryRowContext(ctx, "SELECT pg_try_advisory_lock($1)", l.lockID).Scan(&acquired); err != nil {
		conn.Close()
		return false, err
	}

	if !acquired {
		conn.Close()
		return false, nil
	}

	l.conn = conn
	return true, nil
}

func (l *PGAdvisoryLock) Release(ctx context.Context) error {
	if l.conn == nil {
		return ErrNotHeld
	}

	conn := l.conn
	l.conn = nil
	defer conn.Close()

	_, err := conn.ExecContext(ctx, "SELECT pg_advisory_unlock($1)", l.lockID)
	return err
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/andresholmo/tiktok-arbitrage-api/infrastructure/database/postgres"
)

const syncStatusTable = "user_sync_status"

type SyncStatusRepository interface {
	Touch(ctx context.Context, userID string, syncedAt time.Time) error
	GetLastSyncedAt(ctx context.Context, userID string) (*time.Time, error)
}

type syncStatusRepository struct {
	conn *postgres.Connection
}

func NewSyncStatusRepository(conn *postgres.Connection) SyncStatusRepository {
	return &syncStatusRepository{
		conn: conn,
	}
}

// Touch grava o horário da última sincronização do usuário
func (r *syncStatusRepository) Touch(ctx context.Context, userID string, syncedAt time.Time) error {
	query, args, err := squirrel.
		Insert(syncStatusTable).
		Columns("user_id", "last_synced_at").
		Values(userID, syncedAt).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET last_synced_at = EXCLUDED.last_synced_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return wrapExecError(err)
	}

	return nil
}

func (r *syncStatusRepository) GetLastSyncedAt(ctx context.Context, userID string) (*time.Time, error) {
	query, args, err := squirrel.
		Select("last_synced_at").
		From(syncStatusTable).
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var syncedAt time.Time
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&syncedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get last sync: %w", err)
	}

	return &syncedAt, nil
}

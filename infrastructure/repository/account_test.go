package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRepository_ListByUser(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewAccountRepository(conn)

	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id, advertiser_id, name, created_at FROM accounts WHERE user_id = $1")).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "advertiser_id", "name", "created_at"}).
			AddRow("ACC001", "user-1", nil, "Conta padrão", created).
			AddRow("ACC002", "user-1", "7001", "Conta BR", created))

	accounts, err := repo.ListByUser(context.Background(), "user-1")

	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Nil(t, accounts[0].AdvertiserID)
	require.NotNil(t, accounts[1].AdvertiserID)
	assert.Equal(t, "7001", *accounts[1].AdvertiserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_GetByID_NaoEncontrada(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewAccountRepository(conn)

	mock.ExpectQuery(regexp.QuoteMeta("FROM accounts WHERE id = $1")).
		WithArgs("ACC404").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "advertiser_id", "name", "created_at"}))

	account, err := repo.GetByID(context.Background(), "ACC404")

	require.NoError(t, err)
	assert.Nil(t, account)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_Delete(t *testing.T) {
	t.Run("Remove campanhas, importações e a conta", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewAccountRepository(conn)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM period_import_campaigns WHERE import_id IN (SELECT id FROM period_imports WHERE account_id = $1)")).
			WithArgs("ACC001").
			WillReturnResult(sqlmock.NewResult(0, 12))
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM period_imports WHERE account_id = $1")).
			WithArgs("ACC001").
			WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM accounts WHERE id = $1")).
			WithArgs("ACC001").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.Delete(context.Background(), "ACC001")

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Conta inexistente faz rollback", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewAccountRepository(conn)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM period_import_campaigns")).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM period_imports")).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM accounts")).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.Delete(context.Background(), "ACC404")

		assert.ErrorIs(t, err, ErrAccountNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSyncStatusRepository(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewSyncStatusRepository(conn)

	syncedAt := time.Date(2024, 3, 2, 6, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO user_sync_status (user_id,last_synced_at) VALUES ($1,$2) ON CONFLICT (user_id) DO UPDATE")).
		WithArgs("user-1", syncedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT last_synced_at FROM user_sync_status WHERE user_id = $1")).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"last_synced_at"}).AddRow(syncedAt))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT last_synced_at FROM user_sync_status")).
		WithArgs("user-2").
		WillReturnRows(sqlmock.NewRows([]string{"last_synced_at"}))

	require.NoError(t, repo.Touch(context.Background(), "user-1", syncedAt))

	got, err := repo.GetLastSyncedAt(context.Background(), "user-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, syncedAt.Equal(*got))

	missing, err := repo.GetLastSyncedAt(context.Background(), "user-2")
	require.NoError(t, err)
	assert.Nil(t, missing)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_ListUserIDs(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewAccountRepository(conn)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT user_id FROM accounts ORDER BY user_id ASC")).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow("user-1").AddRow("user-2"))

	userIDs, err := repo.ListUserIDs(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"user-1", "user-2"}, userIDs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/andresholmo/tiktok-arbitrage-api/infrastructure/database/postgres"
	"github.com/andresholmo/tiktok-arbitrage-api/internal/domain"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

const accountsTable = "accounts"

var ErrAccountNotFound = errors.New("account not found")

type AccountRepository interface {
	GetByID(ctx context.Context, accountID string) (*domain.Account, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Account, error)
	ListUserIDs(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, accountID string) error
}

type accountRepository struct {
	conn *postgres.Connection
}

func NewAccountRepository(conn *postgres.Connection) AccountRepository {
	return &accountRepository{
		conn: conn,
	}
}

func (a *accountRepository) GetByID(ctx context.Context, accountID string) (*domain.Account, error) {
	accountSQL, accountArgs, err := squirrel.
		Select("id", "user_id", "advertiser_id", "name", "created_at").
		From(accountsTable).
		Where(squirrel.Eq{"id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	acc := &domain.Account{}
	err = a.conn.QueryRowContext(ctx, accountSQL, accountArgs...).Scan(
		&acc.ID,
		&acc.UserID,
		&acc.AdvertiserID,
		&acc.Name,
		&acc.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return acc, nil
}

func (a *accountRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Account, error) {
	accountsSQL, accountsArgs, err := squirrel.
		Select("id", "user_id", "advertiser_id", "name", "created_at").
		From(accountsTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := a.conn.QueryContext(ctx, accountsSQL, accountsArgs...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	accounts := make([]*domain.Account, 0)
	for rows.Next() {
		acc := &domain.Account{}
		if err := rows.Scan(
			&acc.ID,
			&acc.UserID,
			&acc.AdvertiserID,
			&acc.Name,
			&acc.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao deserializar a conta: %w", err)
		}

		accounts = append(accounts, acc)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return accounts, nil
}

// ListUserIDs retorna os usuários que possuem ao menos uma conta cadastrada
func (a *accountRepository) ListUserIDs(ctx context.Context) ([]string, error) {
	usersSQL, usersArgs, err := squirrel.
		Select("DISTINCT user_id").
		From(accountsTable).
		OrderBy("user_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := a.conn.QueryContext(ctx, usersSQL, usersArgs...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	userIDs := make([]string, 0)
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("erro ao ler usuário: %w", err)
		}
		userIDs = append(userIDs, userID)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return userIDs, nil
}

// Delete remove a conta junto com suas importações e campanhas
func (a *accountRepository) Delete(ctx context.Context, accountID string) error {
	return a.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		importIDs := squirrel.
			Select("id").
			From(periodImportsTable).
			Where(squirrel.Eq{"account_id": accountID})

		campaignsSQL, campaignsArgs, err := squirrel.
			Delete(periodCampaignsTable).
			Where(squirrel.Expr("import_id IN (?)", importIDs)).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, campaignsSQL, campaignsArgs...); err != nil {
			return wrapExecError(err)
		}

		importsSQL, importsArgs, err := squirrel.
			Delete(periodImportsTable).
			Where(squirrel.Eq{"account_id": accountID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, importsSQL, importsArgs...); err != nil {
			return wrapExecError(err)
		}

		accountSQL, accountArgs, err := squirrel.
			Delete(accountsTable).
			Where(squirrel.Eq{"id": accountID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build query: %w", err)
		}

		result, err := tx.ExecContext(ctx, accountSQL, accountArgs...)
		if err != nil {
			return wrapExecError(err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("error getting rows affected: %w", err)
		}

		if rowsAffected == 0 {
			return ErrAccountNotFound
		}

		logrus.WithField("account_id", accountID).Info("Conta removida com importações e campanhas")

		return nil
	})
}

func wrapExecError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
	}
	return fmt.Errorf("failed to execute query: %w", err)
}

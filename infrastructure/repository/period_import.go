package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/andresholmo/tiktok-arbitrage-api/infrastructure/database/postgres"
	"github.com/andresholmo/tiktok-arbitrage-api/internal/domain"
	"github.com/lib/pq"
)

const (
	periodImportsTable   = "period_imports"
	periodCampaignsTable = "period_import_campaigns"

	// limite de linhas por INSERT para ficar abaixo do máximo de parâmetros do Postgres
	campaignInsertBatchSize = 500

	uniqueViolationCode = "23505"
)

var (
	ErrPeriodImportNotFound = errors.New("period import not found")
	ErrPeriodImportConflict = errors.New("period import already exists")
)

var periodImportColumns = []string{
	"id", "user_id", "account_id", "advertiser_id", "start_date", "end_date",
	"spend", "tracked_revenue", "tracked_profit", "tracked_roi",
	"real_revenue", "real_profit", "real_roi",
	"spend_impressions", "spend_clicks", "revenue_impressions", "revenue_clicks",
	"network_impressions", "campaign_count", "created_at", "updated_at",
}

var periodCampaignColumns = []string{
	"import_id", "position", "campaign_id", "campaign_name",
	"spend", "spend_impressions", "spend_clicks", "spend_ctr", "cpc",
	"status", "daily_budget", "auto_optimized",
	"conversions", "cost_per_conversion", "conversion_rate",
	"revenue", "revenue_impressions", "revenue_clicks", "revenue_ctr", "ecpm",
	"profit", "roi", "has_spend", "has_revenue",
}

type PeriodImportRepository interface {
	GetByPeriod(ctx context.Context, userID, accountID string, startDate, endDate time.Time) (*domain.PeriodTotals, error)
	Create(ctx context.Context, totals *domain.PeriodTotals, campaigns []domain.ReconciledCampaign) error
	Replace(ctx context.Context, totals *domain.PeriodTotals, campaigns []domain.ReconciledCampaign) error
	ListByRange(ctx context.Context, filters domain.PeriodImportFilters) ([]*domain.PeriodTotals, error)
	ListCampaigns(ctx context.Context, importIDs []string) ([]domain.ReconciledCampaign, error)
}

type periodImportRepository struct {
	conn *postgres.Connection
}

func NewPeriodImportRepository(conn *postgres.Connection) PeriodImportRepository {
	return &periodImportRepository{
		conn: conn,
	}
}

func (r *periodImportRepository) GetByPeriod(
	ctx context.Context,
	userID, accountID string,
	startDate, endDate time.Time,
) (*domain.PeriodTotals, error) {
	query, args, err := squirrel.
		Select(periodImportColumns...).
		From(periodImportsTable).
		Where(squirrel.Eq{
			"user_id":    userID,
			"account_id": accountID,
			"start_date": startDate.Format(time.DateOnly),
			"end_date":   endDate.Format(time.DateOnly),
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	totals, err := scanPeriodTotals(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get period import: %w", err)
	}

	return totals, nil
}

// Create insere a importação e as campanhas na mesma transação
func (r *periodImportRepository) Create(ctx context.Context, totals *domain.PeriodTotals, campaigns []domain.ReconciledCampaign) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		query, args, err := squirrel.
			Insert(periodImportsTable).
			Columns(periodImportColumns...).
			Values(
				totals.ID,
				totals.UserID,
				totals.AccountID,
				totals.AdvertiserID,
				totals.StartDate.Format(time.DateOnly),
				totals.EndDate.Format(time.DateOnly),
				totals.Spend,
				totals.TrackedRevenue,
				totals.TrackedProfit,
				totals.TrackedROI,
				totals.RealRevenue,
				totals.RealProfit,
				totals.RealROI,
				totals.SpendImpressions,
				totals.SpendClicks,
				totals.RevenueImpressions,
				totals.RevenueClicks,
				totals.NetworkImpressions,
				totals.CampaignCount,
				totals.CreatedAt,
				totals.UpdatedAt,
			).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			var pqErr *pq.Error
			if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
				return fmt.Errorf("%w: %s", ErrPeriodImportConflict, pqErr.Message)
			}
			return wrapExecError(err)
		}

		return insertCampaigns(ctx, tx, totals.ID, campaigns)
	})
}

// Replace atualiza os totais e substitui todas as campanhas da importação
// (delete seguido de insert) na mesma transação
func (r *periodImportRepository) Replace(ctx context.Context, totals *domain.PeriodTotals, campaigns []domain.ReconciledCampaign) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		query, args, err := squirrel.
			Update(periodImportsTable).
			SetMap(map[string]any{
				"spend":               totals.Spend,
				"tracked_revenue":     totals.TrackedRevenue,
				"tracked_profit":      totals.TrackedProfit,
				"tracked_roi":         totals.TrackedROI,
				"real_revenue":        totals.RealRevenue,
				"real_profit":         totals.RealProfit,
				"real_roi":            totals.RealROI,
				"spend_impressions":   totals.SpendImpressions,
				"spend_clicks":        totals.SpendClicks,
				"revenue_impressions": totals.RevenueImpressions,
				"revenue_clicks":      totals.RevenueClicks,
				"network_impressions": totals.NetworkImpressions,
				"campaign_count":      totals.CampaignCount,
				"updated_at":          totals.UpdatedAt,
			}).
			Where(squirrel.Eq{"id": totals.ID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build query: %w", err)
		}

		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return wrapExecError(err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("error getting rows affected: %w", err)
		}

		if rowsAffected == 0 {
			return ErrPeriodImportNotFound
		}

		deleteSQL, deleteArgs, err := squirrel.
			Delete(periodCampaignsTable).
			Where(squirrel.Eq{"import_id": totals.ID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, deleteSQL, deleteArgs...); err != nil {
			return wrapExecError(err)
		}

		return insertCampaigns(ctx, tx, totals.ID, campaigns)
	})
}

// ListByRange lista as importações contidas no intervalo, da mais antiga para a mais recente
func (r *periodImportRepository) ListByRange(ctx context.Context, filters domain.PeriodImportFilters) ([]*domain.PeriodTotals, error) {
	query, args, err := squirrel.
		Select(periodImportColumns...).
		From(periodImportsTable).
		Where(squirrel.Eq{
			"user_id":    filters.UserID,
			"account_id": filters.AccountID,
		}).
		Where(squirrel.GtOrEq{"start_date": filters.StartDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"end_date": filters.EndDate.Format(time.DateOnly)}).
		OrderBy("start_date ASC", "end_date ASC", "updated_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	imports := make([]*domain.PeriodTotals, 0)
	for rows.Next() {
		totals, err := scanPeriodTotals(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao deserializar importação: %w", err)
		}
		imports = append(imports, totals)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return imports, nil
}

// ListCampaigns retorna as campanhas das importações na ordem cronológica das importações
func (r *periodImportRepository) ListCampaigns(ctx context.Context, importIDs []string) ([]domain.ReconciledCampaign, error) {
	if len(importIDs) == 0 {
		return []domain.ReconciledCampaign{}, nil
	}

	columns := make([]string, 0, len(periodCampaignColumns))
	for _, column := range periodCampaignColumns[2:] {
		columns = append(columns, "c."+column)
	}

	query, args, err := squirrel.
		Select(columns...).
		From(periodCampaignsTable+" c").
		Join(periodImportsTable+" p ON p.id = c.import_id").
		Where(squirrel.Eq{"c.import_id": importIDs}).
		OrderBy("p.start_date ASC", "p.end_date ASC", "p.updated_at ASC", "c.position ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	campaigns := make([]domain.ReconciledCampaign, 0)
	for rows.Next() {
		var c domain.ReconciledCampaign
		var status string
		if err := rows.Scan(
			&c.CampaignID,
			&c.CampaignName,
			&c.Spend,
			&c.SpendImpressions,
			&c.SpendClicks,
			&c.SpendCTR,
			&c.CPC,
			&status,
			&c.DailyBudget,
			&c.AutoOptimized,
			&c.Conversions,
			&c.CostPerConversion,
			&c.ConversionRate,
			&c.Revenue,
			&c.RevenueImpressions,
			&c.RevenueClicks,
			&c.RevenueCTR,
			&c.ECPM,
			&c.Profit,
			&c.ROI,
			&c.HasSpend,
			&c.HasRevenue,
		); err != nil {
			return nil, fmt.Errorf("erro ao deserializar campanha: %w", err)
		}

		c.Status = domain.CampaignStatus(status)
		campaigns = append(campaigns, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return campaigns, nil
}

func insertCampaigns(ctx context.Context, tx *sql.Tx, importID string, campaigns []domain.ReconciledCampaign) error {
	for start := 0; start < len(campaigns); start += campaignInsertBatchSize {
		end := min(start+campaignInsertBatchSize, len(campaigns))

		query := squirrel.
			Insert(periodCampaignsTable).
			Columns(periodCampaignColumns...).
			PlaceholderFormat(squirrel.Dollar)

		for i, c := range campaigns[start:end] {
			query = query.Values(
				importID,
				start+i,
				c.CampaignID,
				c.CampaignName,
				c.Spend,
				c.SpendImpressions,
				c.SpendClicks,
				c.SpendCTR,
				c.CPC,
				string(c.Status),
				c.DailyBudget,
				c.AutoOptimized,
				c.Conversions,
				c.CostPerConversion,
				c.ConversionRate,
				c.Revenue,
				c.RevenueImpressions,
				c.RevenueClicks,
				c.RevenueCTR,
				c.ECPM,
				c.Profit,
				c.ROI,
				c.HasSpend,
				c.HasRevenue,
			)
		}

		sqlQuery, args, err := query.ToSql()
		if err != nil {
			return fmt.Errorf("failed to build query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return wrapExecError(err)
		}
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPeriodTotals(row rowScanner) (*domain.PeriodTotals, error) {
	totals := &domain.PeriodTotals{}

	if err := row.Scan(
		&totals.ID,
		&totals.UserID,
		&totals.AccountID,
		&totals.AdvertiserID,
		&totals.StartDate,
		&totals.EndDate,
		&totals.Spend,
		&totals.TrackedRevenue,
		&totals.TrackedProfit,
		&totals.TrackedROI,
		&totals.RealRevenue,
		&totals.RealProfit,
		&totals.RealROI,
		&totals.SpendImpressions,
		&totals.SpendClicks,
		&totals.RevenueImpressions,
		&totals.RevenueClicks,
		&totals.NetworkImpressions,
		&totals.CampaignCount,
		&totals.CreatedAt,
		&totals.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return totals, nil
}

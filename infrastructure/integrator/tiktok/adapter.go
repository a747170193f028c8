package tiktok

import (
	"math"
	"strings"

	tiktokdomain "github.com/andresholmo/tiktok-arbitrage-api/infrastructure/integrator/tiktok/domain"
	"github.com/andresholmo/tiktok-arbitrage-api/internal/domain"
)

// ToSpendRecords converte as linhas do relatório (v1.2 ou v1.3) em SpendRecord,
// completando status, orçamento e tipo da campanha a partir do cadastro
func ToSpendRecords(rows []tiktokdomain.ReportRow, campaigns map[string]tiktokdomain.Campaign) []domain.SpendRecord {
	records := make([]domain.SpendRecord, 0, len(rows))

	for _, row := range rows {
		m := row.Metrics
		campaignID := strings.TrimSpace(row.Dimensions.CampaignID)
		info, hasInfo := campaigns[campaignID]

		name := strings.TrimSpace(m.CampaignName)
		if name == "" && hasInfo {
			name = strings.TrimSpace(info.CampaignName)
		}

		record := domain.SpendRecord{
			CampaignID:        campaignID,
			CampaignName:      name,
			Spend:             tiktokdomain.FirstOf(m.Spend, m.StatCost),
			Impressions:       toCount(tiktokdomain.FirstOf(m.Impressions, m.ShowCnt)),
			Clicks:            toCount(tiktokdomain.FirstOf(m.Clicks, m.ClickCnt)),
			CTR:               tiktokdomain.FirstOf(m.CTR),
			CPC:               tiktokdomain.FirstOf(m.CPC),
			Conversions:       toCount(tiktokdomain.FirstOf(m.Conversion, m.ConvertCnt)),
			CostPerConversion: tiktokdomain.FirstOf(m.CostPerConversion),
			ConversionRate:    tiktokdomain.FirstOf(m.ConversionRate),
			Status:            domain.CampaignStatusUnknown,
		}

		if hasInfo {
			record.Status = ToCampaignStatus(info.OperationStatus)
			record.AutoOptimized = info.IsSmartPerformanceCampaign
			if info.BudgetMode == tiktokdomain.BudgetModeDay && info.Budget != nil {
				budget := info.Budget.Float64()
				record.DailyBudget = &budget
			}
		}

		records = append(records, record)
	}

	return records
}

// ToCampaignStatus mapeia o status operacional, incluindo os formatos antigos
func ToCampaignStatus(operationStatus string) domain.CampaignStatus {
	switch strings.ToUpper(strings.TrimSpace(operationStatus)) {
	case "ENABLE", "ENABLED", "CAMPAIGN_STATUS_ENABLE":
		return domain.CampaignStatusEnabled
	case "DISABLE", "DISABLED", "CAMPAIGN_STATUS_DISABLE":
		return domain.CampaignStatusDisabled
	default:
		return domain.CampaignStatusUnknown
	}
}

func toOperationStatus(status domain.CampaignStatus) (string, bool) {
	switch status {
	case domain.CampaignStatusEnabled:
		return tiktokdomain.OperationStatusEnable, true
	case domain.CampaignStatusDisabled:
		return tiktokdomain.OperationStatusDisable, true
	default:
		return "", false
	}
}

func toCount(v float64) int64 {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int64(math.Round(v))
}

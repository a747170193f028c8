package reconciling

import (
	"strings"

	"github.com/andresholmo/tiktok-arbitrage-api/internal/domain"
	"github.com/andresholmo/tiktok-arbitrage-api/pkg/utils"
)

// ComputeDisplayTotals soma as campanhas selecionadas que passam pelos filtros.
// Seleção vazia considera todas as campanhas.
func ComputeDisplayTotals(
	campaigns []domain.ReconciledCampaign,
	selection domain.DisplaySelection,
	filters domain.DisplayFilters,
) domain.DisplayTotals {
	selected := make(map[string]struct{}, len(selection.CampaignNames))
	for _, name := range selection.CampaignNames {
		if key := Normalize(name); key != "" {
			selected[key] = struct{}{}
		}
	}

	search := strings.ToUpper(strings.TrimSpace(filters.Search))

	var spend, revenue utils.Money
	totals := domain.DisplayTotals{}

	for _, campaign := range campaigns {
		key := Normalize(campaign.CampaignName)

		if len(selected) > 0 {
			if _, ok := selected[key]; !ok {
				continue
			}
		}

		if !filters.IncludeNoData && campaign.Status == domain.CampaignStatusNoData {
			continue
		}

		if filters.Status != "" && campaign.Status != filters.Status {
			continue
		}

		if search != "" && !strings.Contains(key, search) {
			continue
		}

		totals.CampaignCount++
		spend.Add(campaign.Spend)
		revenue.Add(campaign.Revenue)
		totals.Impressions += campaign.SpendImpressions
		totals.Clicks += campaign.SpendClicks
	}

	totals.Spend = spend.Float64()
	totals.Revenue = revenue.Float64()
	totals.Profit = Profit(totals.Revenue, totals.Spend)
	totals.ROI = ROI(totals.Revenue, totals.Spend)
	totals.CTR = CTR(totals.Clicks, totals.Impressions, 0)
	totals.CPC = CPC(totals.Spend, totals.Clicks, 0)

	return totals
}

package reconciling

import (
	"github.com/andresholmo/tiktok-arbitrage-api/internal/domain"
	"github.com/andresholmo/tiktok-arbitrage-api/pkg/utils"
)

// ComputePeriodTotals calcula os totais rastreados e reais de um conjunto reconciliado.
//
// A receita rastreada soma apenas campanhas presentes na fonte de gasto; a receita
// real é o total da rede informado pela fonte de receita, independente do cruzamento.
func ComputePeriodTotals(campaigns []domain.ReconciledCampaign, network domain.NetworkRevenue) domain.PeriodTotals {
	var spend, trackedRevenue utils.Money

	totals := domain.PeriodTotals{
		CampaignCount:      len(campaigns),
		NetworkImpressions: nonNegativeCount(network.Impressions),
	}

	for _, campaign := range campaigns {
		spend.Add(campaign.Spend)
		totals.SpendImpressions += campaign.SpendImpressions
		totals.SpendClicks += campaign.SpendClicks

		if !campaign.HasSpend {
			continue
		}

		trackedRevenue.Add(campaign.Revenue)
		totals.RevenueImpressions += campaign.RevenueImpressions
		totals.RevenueClicks += campaign.RevenueClicks
	}

	totals.Spend = spend.Float64()
	totals.TrackedRevenue = trackedRevenue.Float64()
	totals.RealRevenue = utils.FiniteOrZero(network.Revenue)

	recomputeTotals(&totals)

	return totals
}

// CombineTotals soma os totais de várias importações e recalcula lucro e ROI
func CombineTotals(imports []*domain.PeriodTotals) *domain.PeriodTotals {
	var spend, trackedRevenue, realRevenue utils.Money

	combined := &domain.PeriodTotals{}
	for _, item := range imports {
		if item == nil {
			continue
		}

		spend.Add(item.Spend)
		trackedRevenue.Add(item.TrackedRevenue)
		realRevenue.Add(item.RealRevenue)

		combined.SpendImpressions += item.SpendImpressions
		combined.SpendClicks += item.SpendClicks
		combined.RevenueImpressions += item.RevenueImpressions
		combined.RevenueClicks += item.RevenueClicks
		combined.NetworkImpressions += item.NetworkImpressions
		combined.CampaignCount += item.CampaignCount
	}

	combined.Spend = spend.Float64()
	combined.TrackedRevenue = trackedRevenue.Float64()
	combined.RealRevenue = realRevenue.Float64()

	recomputeTotals(combined)

	return combined
}

func recomputeTotals(totals *domain.PeriodTotals) {
	totals.TrackedProfit = Profit(totals.TrackedRevenue, totals.Spend)
	totals.TrackedROI = ROI(totals.TrackedRevenue, totals.Spend)
	totals.RealProfit = Profit(totals.RealRevenue, totals.Spend)
	totals.RealROI = ROI(totals.RealRevenue, totals.Spend)
}

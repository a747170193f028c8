package reconciling

import (
	"github.com/andresholmo/tiktok-arbitrage-api/internal/domain"
	"github.com/andresholmo/tiktok-arbitrage-api/pkg/utils"
)

type campaignGroup struct {
	campaign      domain.ReconciledCampaign
	nameFromSpend bool
	knownStatus   domain.CampaignStatus
	spend         utils.Money
	revenue       utils.Money
}

// Aggregate combina campanhas de vários snapshots do mesmo período.
//
// Os contadores (gasto, receita, impressões, cliques, conversões) são somados;
// status, orçamento diário, flag de otimização automática, custo por conversão e
// taxa de conversão vêm do membro mais recente. Lucro, ROI, CTR, CPC e eCPM são
// recalculados a partir dos contadores somados. A ordem de saída é a da primeira
// ocorrência de cada nome. Registros com nome normalizado vazio nunca são agrupados.
func Aggregate(records []domain.ReconciledCampaign) []domain.ReconciledCampaign {
	groups := make(map[string]*campaignGroup, len(records))
	order := make([]*campaignGroup, 0, len(records))

	for _, record := range records {
		key := Normalize(record.CampaignName)

		group, exists := groups[key]
		if !exists || key == "" {
			group = &campaignGroup{
				campaign: domain.ReconciledCampaign{
					CampaignName: record.CampaignName,
				},
				nameFromSpend: record.HasSpend,
			}
			if key != "" {
				groups[key] = group
			}
			order = append(order, group)
		}

		group.add(record)
	}

	aggregated := make([]domain.ReconciledCampaign, 0, len(order))
	for _, group := range order {
		aggregated = append(aggregated, group.result())
	}

	return aggregated
}

// Displayable remove as campanhas "no data"; usado apenas na exibição
func Displayable(records []domain.ReconciledCampaign) []domain.ReconciledCampaign {
	displayable := make([]domain.ReconciledCampaign, 0, len(records))
	for _, record := range records {
		if record.Status == domain.CampaignStatusNoData {
			continue
		}
		displayable = append(displayable, record)
	}
	return displayable
}

func (g *campaignGroup) add(record domain.ReconciledCampaign) {
	c := &g.campaign

	if record.HasSpend && !g.nameFromSpend {
		c.CampaignName = record.CampaignName
		g.nameFromSpend = true
	}

	g.spend.Add(record.Spend)
	g.revenue.Add(record.Revenue)

	c.SpendImpressions += record.SpendImpressions
	c.SpendClicks += record.SpendClicks
	c.RevenueImpressions += record.RevenueImpressions
	c.RevenueClicks += record.RevenueClicks
	c.Conversions += record.Conversions

	if record.CampaignID != "" {
		c.CampaignID = record.CampaignID
	}

	if record.Status.IsKnown() {
		g.knownStatus = record.Status
	}

	if record.HasSpend {
		c.DailyBudget = record.DailyBudget
		c.AutoOptimized = record.AutoOptimized
		c.CostPerConversion = record.CostPerConversion
		c.ConversionRate = record.ConversionRate
		c.SpendCTR = record.SpendCTR
		c.CPC = record.CPC
	}

	if record.HasRevenue {
		c.RevenueCTR = record.RevenueCTR
		c.ECPM = record.ECPM
	}

	c.HasSpend = c.HasSpend || record.HasSpend
	c.HasRevenue = c.HasRevenue || record.HasRevenue
}

func (g *campaignGroup) result() domain.ReconciledCampaign {
	c := g.campaign

	c.Spend = g.spend.Float64()
	c.Revenue = g.revenue.Float64()

	// SpendCTR, CPC, RevenueCTR e ECPM guardam o último valor e servem de fallback
	c.SpendCTR = CTR(c.SpendClicks, c.SpendImpressions, c.SpendCTR)
	c.CPC = CPC(c.Spend, c.SpendClicks, c.CPC)
	c.RevenueCTR = CTR(c.RevenueClicks, c.RevenueImpressions, c.RevenueCTR)
	c.ECPM = ECPM(c.Revenue, c.RevenueImpressions, c.ECPM)

	c.Profit = Profit(c.Revenue, c.Spend)
	c.ROI = ROI(c.Revenue, c.Spend)
	c.Status = DeriveStatus(g.knownStatus, c.Spend)

	return c
}

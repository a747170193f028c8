package reconciling

import (
	"strings"

	"github.com/andresholmo/tiktok-arbitrage-api/internal/domain"
	"github.com/andresholmo/tiktok-arbitrage-api/pkg/utils"
)

// Reconciliation é o resultado de um cruzamento gasto x receita
type Reconciliation struct {
	Campaigns []domain.ReconciledCampaign
	// Collisions lista as chaves normalizadas que apareceram mais de uma vez
	// nas linhas de receita; apenas a última linha de cada chave é usada.
	Collisions []string
}

// Reconcile cruza as linhas de gasto e receita de um período pelo nome normalizado.
//
// Cada linha de gasto gera exatamente uma campanha, consumindo no máximo uma linha
// de receita. As linhas de receita que sobram viram campanhas sem gasto com status
// "no data". Chaves vazias nunca são cruzadas.
func Reconcile(spendRows []domain.SpendRecord, revenueRows []domain.RevenueRecord) Reconciliation {
	lookup := make(map[string]domain.RevenueRecord, len(revenueRows))
	order := make([]string, 0, len(revenueRows))
	unkeyed := make([]domain.RevenueRecord, 0)
	collisions := make([]string, 0)

	for _, row := range revenueRows {
		key := Normalize(row.CampaignName)
		if key == "" {
			unkeyed = append(unkeyed, row)
			continue
		}

		if _, exists := lookup[key]; exists {
			collisions = append(collisions, key)
		} else {
			order = append(order, key)
		}

		lookup[key] = row
	}

	campaigns := make([]domain.ReconciledCampaign, 0, len(spendRows)+len(lookup)+len(unkeyed))

	for _, row := range spendRows {
		campaign := fromSpend(row)

		key := Normalize(row.CampaignName)
		if match, ok := lookup[key]; ok && key != "" {
			applyRevenue(&campaign, match)
			delete(lookup, key)
		}

		finalize(&campaign)
		campaigns = append(campaigns, campaign)
	}

	for _, key := range order {
		match, ok := lookup[key]
		if !ok {
			continue
		}

		campaigns = append(campaigns, orphanRevenue(match))
	}

	for _, row := range unkeyed {
		campaigns = append(campaigns, orphanRevenue(row))
	}

	return Reconciliation{
		Campaigns:  campaigns,
		Collisions: collisions,
	}
}

// DeriveStatus aplica a regra de status: o status da fonte de gasto quando
// conhecido, ENABLED quando houve gasto e "no data" nos demais casos
func DeriveStatus(status domain.CampaignStatus, spend float64) domain.CampaignStatus {
	if status.IsKnown() {
		return status
	}

	if spend > 0 {
		return domain.CampaignStatusEnabled
	}

	return domain.CampaignStatusNoData
}

func fromSpend(row domain.SpendRecord) domain.ReconciledCampaign {
	spend := utils.NonNegative(row.Spend)
	impressions := nonNegativeCount(row.Impressions)
	clicks := nonNegativeCount(row.Clicks)
	conversions := nonNegativeCount(row.Conversions)

	return domain.ReconciledCampaign{
		CampaignID:        strings.TrimSpace(row.CampaignID),
		CampaignName:      strings.TrimSpace(row.CampaignName),
		Spend:             spend,
		SpendImpressions:  impressions,
		SpendClicks:       clicks,
		SpendCTR:          CTR(clicks, impressions, row.CTR),
		CPC:               CPC(spend, clicks, row.CPC),
		Status:            row.Status,
		DailyBudget:       sanitizeBudget(row.DailyBudget),
		AutoOptimized:     row.AutoOptimized,
		Conversions:       conversions,
		CostPerConversion: CostPerConversion(spend, conversions, row.CostPerConversion),
		ConversionRate:    ConversionRate(conversions, clicks, row.ConversionRate),
		HasSpend:          true,
	}
}

func applyRevenue(campaign *domain.ReconciledCampaign, row domain.RevenueRecord) {
	revenue := utils.FiniteOrZero(row.Revenue)
	impressions := nonNegativeCount(row.Impressions)
	clicks := nonNegativeCount(row.Clicks)

	campaign.Revenue = revenue
	campaign.RevenueImpressions = impressions
	campaign.RevenueClicks = clicks
	campaign.RevenueCTR = CTR(clicks, impressions, row.CTR)
	campaign.ECPM = ECPM(revenue, impressions, row.ECPM)
	campaign.HasRevenue = true
}

func orphanRevenue(row domain.RevenueRecord) domain.ReconciledCampaign {
	campaign := domain.ReconciledCampaign{
		CampaignName: StripRevenuePrefix(row.CampaignName),
	}

	applyRevenue(&campaign, row)
	finalize(&campaign)

	return campaign
}

func finalize(campaign *domain.ReconciledCampaign) {
	campaign.Profit = Profit(campaign.Revenue, campaign.Spend)
	campaign.ROI = ROI(campaign.Revenue, campaign.Spend)
	campaign.Status = DeriveStatus(campaign.Status, campaign.Spend)
}

func nonNegativeCount(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}

func sanitizeBudget(budget *float64) *float64 {
	if budget == nil {
		return nil
	}

	value := utils.FiniteOrZero(*budget)
	if value < 0 {
		return nil
	}

	return &value
}

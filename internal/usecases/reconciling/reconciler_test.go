package reconciling

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/andresholmo/tiktok-arbitrage-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcile_CampanhaCasadaNasDuasFontes(t *testing.T) {
	spend := []domain.SpendRecord{
		{CampaignID: "1", CampaignName: "CAMP-A", Spend: 100, Clicks: 10, Impressions: 1000},
	}
	revenue := []domain.RevenueRecord{
		{CampaignName: "camp-a ", Revenue: 150, Impressions: 1000},
	}

	result := Reconcile(spend, revenue)

	require.Len(t, result.Campaigns, 1)
	campaign := result.Campaigns[0]
	assert.Equal(t, "CAMP-A", campaign.CampaignName)
	assert.Equal(t, 100.0, campaign.Spend)
	assert.Equal(t, 150.0, campaign.Revenue)
	assert.Equal(t, 50.0, campaign.Profit)
	require.NotNil(t, campaign.ROI)
	assert.InDelta(t, 50.0, *campaign.ROI, 1e-9)
	assert.InDelta(t, 1.0, campaign.SpendCTR, 1e-9)
	assert.InDelta(t, 10.0, campaign.CPC, 1e-9)
	assert.InDelta(t, 150.0, campaign.ECPM, 1e-9)
	assert.Equal(t, domain.CampaignStatusEnabled, campaign.Status)
	assert.True(t, campaign.Matched())
	assert.Empty(t, result.Collisions)
}

func TestReconcile_ReceitaSemGasto(t *testing.T) {
	result := Reconcile(nil, []domain.RevenueRecord{{CampaignName: "ORPHAN", Revenue: 30}})

	require.Len(t, result.Campaigns, 1)
	campaign := result.Campaigns[0]
	assert.Equal(t, "ORPHAN", campaign.CampaignName)
	assert.Equal(t, 0.0, campaign.Spend)
	assert.Equal(t, 30.0, campaign.Revenue)
	assert.Equal(t, domain.CampaignStatusNoData, campaign.Status)
	assert.Nil(t, campaign.ROI)
	assert.False(t, campaign.HasSpend)
	assert.True(t, campaign.HasRevenue)
}

func TestReconcile_Status(t *testing.T) {
	tests := []struct {
		name     string
		spend    domain.SpendRecord
		expected domain.CampaignStatus
	}{
		{
			name:     "Status da fonte de gasto é mantido",
			spend:    domain.SpendRecord{CampaignName: "A", Spend: 0, Status: domain.CampaignStatusDisabled},
			expected: domain.CampaignStatusDisabled,
		},
		{
			name:     "Sem status e com gasto vira ENABLED",
			spend:    domain.SpendRecord{CampaignName: "A", Spend: 10},
			expected: domain.CampaignStatusEnabled,
		},
		{
			name:     "Status desconhecido e sem gasto vira no data",
			spend:    domain.SpendRecord{CampaignName: "A", Status: domain.CampaignStatusUnknown},
			expected: domain.CampaignStatusNoData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Reconcile([]domain.SpendRecord{tt.spend}, nil)
			require.Len(t, result.Campaigns, 1)
			assert.Equal(t, tt.expected, result.Campaigns[0].Status)
		})
	}
}

func TestReconcile_ChavesDuplicadasNaReceita(t *testing.T) {
	revenue := []domain.RevenueRecord{
		{CampaignName: "utm_campaign=Camp-A", Revenue: 10},
		{CampaignName: "CAMP-A", Revenue: 40},
	}
	spend := []domain.SpendRecord{{CampaignName: "camp-a", Spend: 20}}

	result := Reconcile(spend, revenue)

	require.Len(t, result.Campaigns, 1)
	assert.Equal(t, 40.0, result.Campaigns[0].Revenue)
	assert.Equal(t, []string{"CAMP-A"}, result.Collisions)
}

func TestReconcile_GastoDuplicadoNaoReusaReceita(t *testing.T) {
	spend := []domain.SpendRecord{
		{CampaignID: "1", CampaignName: "Camp-A", Spend: 20},
		{CampaignID: "2", CampaignName: "camp-a", Spend: 5},
	}
	revenue := []domain.RevenueRecord{{CampaignName: "CAMP-A", Revenue: 40}}

	result := Reconcile(spend, revenue)

	require.Len(t, result.Campaigns, 2)
	assert.Equal(t, 40.0, result.Campaigns[0].Revenue)
	assert.Equal(t, 0.0, result.Campaigns[1].Revenue)
	assert.False(t, result.Campaigns[1].HasRevenue)
}

func TestReconcile_NomesVaziosNuncaSaoCruzados(t *testing.T) {
	spend := []domain.SpendRecord{{CampaignName: "  ", Spend: 10}}
	revenue := []domain.RevenueRecord{{CampaignName: "", Revenue: 7}, {CampaignName: "utm_campaign=", Revenue: 3}}

	result := Reconcile(spend, revenue)

	require.Len(t, result.Campaigns, 3)
	assert.Equal(t, 0.0, result.Campaigns[0].Revenue)
	assert.Equal(t, 7.0, result.Campaigns[1].Revenue)
	assert.Equal(t, 3.0, result.Campaigns[2].Revenue)
}

func TestReconcile_ValoresInvalidosSaoZerados(t *testing.T) {
	budget := -5.0
	spend := []domain.SpendRecord{
		{CampaignName: "A", Spend: -10, Impressions: -3, Clicks: -1, DailyBudget: &budget},
	}

	result := Reconcile(spend, nil)

	require.Len(t, result.Campaigns, 1)
	campaign := result.Campaigns[0]
	assert.Equal(t, 0.0, campaign.Spend)
	assert.Equal(t, int64(0), campaign.SpendImpressions)
	assert.Equal(t, int64(0), campaign.SpendClicks)
	assert.Nil(t, campaign.DailyBudget)
	assert.Nil(t, campaign.ROI)
}

func TestReconcile_TodaLinhaApareceUmaVez(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 200; round++ {
		pool := rng.Intn(8) + 1

		spend := make([]domain.SpendRecord, rng.Intn(10))
		var totalSpend float64
		for i := range spend {
			spend[i] = domain.SpendRecord{
				CampaignName: randomCase(rng, fmt.Sprintf("camp-%d", rng.Intn(pool))),
				Spend:        float64(rng.Intn(10000)) / 100,
			}
			totalSpend += spend[i].Spend
		}

		names := rng.Perm(pool)[:rng.Intn(pool+1)]
		revenue := make([]domain.RevenueRecord, len(names))
		var totalRevenue float64
		for i, n := range names {
			revenue[i] = domain.RevenueRecord{
				CampaignName: "utm_campaign=" + fmt.Sprintf("camp-%d ", n),
				Revenue:      float64(rng.Intn(10000)) / 100,
			}
			totalRevenue += revenue[i].Revenue
		}

		result := Reconcile(spend, revenue)

		assert.LessOrEqual(t, len(result.Campaigns), len(spend)+len(revenue))

		withSpend, withRevenue := 0, 0
		var gotSpend, gotRevenue float64
		for _, campaign := range result.Campaigns {
			if campaign.HasSpend {
				withSpend++
			}
			if campaign.HasRevenue {
				withRevenue++
			}
			gotSpend += campaign.Spend
			gotRevenue += campaign.Revenue
		}

		assert.Equal(t, len(spend), withSpend)
		assert.Equal(t, len(revenue), withRevenue)
		assert.InDelta(t, totalSpend, gotSpend, 1e-6)
		assert.InDelta(t, totalRevenue, gotRevenue, 1e-6)
	}
}

func randomCase(rng *rand.Rand, s string) string {
	out := []byte(s)
	for i, c := range out {
		if c >= 'a' && c <= 'z' && rng.Intn(2) == 0 {
			out[i] = c - 32
		}
	}
	if rng.Intn(2) == 0 {
		return " " + string(out) + "\t"
	}
	return string(out)
}

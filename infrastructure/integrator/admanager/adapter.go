package admanager

import (
	"strings"
	"time"

	admanagerdomain "github.com/andresholmo/tiktok-arbitrage-api/infrastructure/integrator/admanager/domain"
	"github.com/andresholmo/tiktok-arbitrage-api/internal/domain"
	"github.com/andresholmo/tiktok-arbitrage-api/pkg/utils"
)

const campaignKeyPrefix = "utm_campaign="

// ordem das métricas pedidas em revenueMetrics
const (
	revenueIndex = iota
	impressionsIndex
	clicksIndex
)

var revenueMetrics = []string{
	admanagerdomain.MetricRevenue,
	admanagerdomain.MetricImpressions,
	admanagerdomain.MetricClicks,
}

// ToRevenueRecords converte as linhas do relatório por key-value em RevenueRecord.
// Linhas de outras chaves (utm_source, utm_medium...) são ignoradas.
func ToRevenueRecords(rows []admanagerdomain.Row, date time.Time) []domain.RevenueRecord {
	records := make([]domain.RevenueRecord, 0, len(rows))

	for _, row := range rows {
		if len(row.DimensionValues) == 0 {
			continue
		}

		name, ok := campaignName(row.DimensionValues[0].String())
		if !ok {
			continue
		}

		revenue, impressions, clicks := metricValues(row)

		records = append(records, domain.RevenueRecord{
			CampaignName: name,
			Date:         date,
			Revenue:      revenue,
			Impressions:  impressions,
			Clicks:       clicks,
		})
	}

	return records
}

// ToNetworkRevenue soma as linhas do relatório filtrado pela origem de tráfego
func ToNetworkRevenue(rows []admanagerdomain.Row) domain.NetworkRevenue {
	var (
		total   utils.Money
		network domain.NetworkRevenue
	)

	for _, row := range rows {
		revenue, impressions, clicks := metricValues(row)
		total.Add(revenue)
		network.Impressions += impressions
		network.Clicks += clicks
	}

	network.Revenue = total.Float64()
	return network
}

func campaignName(keyValue string) (string, bool) {
	keyValue = strings.TrimSpace(keyValue)
	if len(keyValue) < len(campaignKeyPrefix) || !strings.EqualFold(keyValue[:len(campaignKeyPrefix)], campaignKeyPrefix) {
		return "", false
	}

	return strings.TrimSpace(keyValue[len(campaignKeyPrefix):]), true
}

func metricValues(row admanagerdomain.Row) (float64, int64, int64) {
	if len(row.MetricValueGroups) == 0 {
		return 0, 0, 0
	}

	values := row.MetricValueGroups[0].PrimaryValues
	value := func(i int) admanagerdomain.Value {
		if i < len(values) {
			return values[i]
		}
		return admanagerdomain.Value{}
	}

	return value(revenueIndex).Money(), value(impressionsIndex).Int64(), value(clicksIndex).Int64()
}

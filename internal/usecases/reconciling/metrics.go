package reconciling

import "github.com/andresholmo/tiktok-arbitrage-api/pkg/utils"

// As funções abaixo são totais: nunca retornam NaN ou Inf. Quando o
// denominador é zero usam o valor pré-calculado pela fonte (fallback).

func Profit(revenue, spend float64) float64 {
	return utils.FiniteOrZero(revenue) - utils.FiniteOrZero(spend)
}

// ROI retorna nil quando não há gasto, ROI indefinido não é zero
func ROI(revenue, spend float64) *float64 {
	spend = utils.FiniteOrZero(spend)
	if spend <= 0 {
		return nil
	}

	roi := (utils.FiniteOrZero(revenue) - spend) / spend * 100
	return &roi
}

func CTR(clicks, impressions int64, fallback float64) float64 {
	if impressions <= 0 {
		return utils.FiniteOrZero(fallback)
	}
	return float64(clicks) / float64(impressions) * 100
}

func CPC(spend float64, clicks int64, fallback float64) float64 {
	if clicks <= 0 {
		return utils.FiniteOrZero(fallback)
	}
	return utils.FiniteOrZero(spend) / float64(clicks)
}

func ECPM(revenue float64, impressions int64, fallback float64) float64 {
	if impressions <= 0 {
		return utils.FiniteOrZero(fallback)
	}
	return utils.FiniteOrZero(revenue) / float64(impressions) * 1000
}

func ConversionRate(conversions, clicks int64, fallback float64) float64 {
	if clicks <= 0 {
		return utils.FiniteOrZero(fallback)
	}
	return float64(conversions) / float64(clicks) * 100
}

func CostPerConversion(spend float64, conversions int64, fallback float64) float64 {
	if conversions <= 0 {
		return utils.FiniteOrZero(fallback)
	}
	return utils.FiniteOrZero(spend) / float64(conversions)
}

package tiktokdomain

import (
	"strings"

	"github.com/andresholmo/tiktok-arbitrage-api/pkg/utils"
)

// Number aceita métricas enviadas como número ou como texto ("12.34", "-", "").
// Valores inválidos viram zero em vez de falhar o decode da página inteira.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if raw == "null" {
		*n = 0
		return nil
	}

	*n = Number(utils.ParseNumber(raw))
	return nil
}

func (n *Number) Float64() float64 {
	if n == nil {
		return 0
	}
	return float64(*n)
}

// FirstOf retorna o primeiro valor presente na ordem informada
func FirstOf(values ...*Number) float64 {
	for _, v := range values {
		if v != nil {
			return v.Float64()
		}
	}
	return 0
}

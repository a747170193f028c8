package utils

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	rounded, _ := decimal.NewFromFloat(f).Round(2).Float64()
	return rounded
}

// Money acumula valores monetários em decimal para não acumular erro de ponto flutuante
type Money struct {
	total decimal.Decimal
}

func (m *Money) Add(v float64) {
	m.total = m.total.Add(decimal.NewFromFloat(FiniteOrZero(v)))
}

func (m Money) Float64() float64 {
	f, _ := m.total.Float64()
	return f
}

// SumMoney soma valores monetários com precisão decimal
func SumMoney(values ...float64) float64 {
	var m Money
	for _, v := range values {
		m.Add(v)
	}
	return m.Float64()
}

func FiniteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// NonNegative zera valores negativos ou não finitos
func NonNegative(v float64) float64 {
	v = FiniteOrZero(v)
	if v < 0 {
		return 0
	}
	return v
}

// ParseNumber converte números vindos como texto; valores inválidos viram zero
func ParseNumber(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "-" {
		return 0
	}

	raw = strings.TrimSuffix(raw, "%")

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}

	return FiniteOrZero(v)
}

func ParseCount(raw string) int64 {
	v := ParseNumber(raw)
	if v <= 0 {
		return 0
	}
	return int64(math.Round(v))
}

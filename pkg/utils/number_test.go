package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		expect float64
	}{
		{name: "Decimal", raw: "12.34", expect: 12.34},
		{name: "Com espaços", raw: " 7 ", expect: 7},
		{name: "Percentual", raw: "1.5%", expect: 1.5},
		{name: "Traço", raw: "-", expect: 0},
		{name: "Vazio", raw: "", expect: 0},
		{name: "Texto inválido", raw: "abc", expect: 0},
		{name: "NaN", raw: "NaN", expect: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, ParseNumber(tt.raw))
		})
	}
}

func TestParseCount(t *testing.T) {
	assert.Equal(t, int64(3), ParseCount("2.6"))
	assert.Equal(t, int64(0), ParseCount("-4"))
	assert.Equal(t, int64(1200), ParseCount("1200"))
}

func TestSumMoney(t *testing.T) {
	assert.Equal(t, 0.3, SumMoney(0.1, 0.2))
	assert.Equal(t, 10.0, SumMoney(10, math.NaN(), math.Inf(1)))
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 1.24, RoundWithTwoDecimalPlace(1.235))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(math.NaN()))
}

func TestNonNegative(t *testing.T) {
	assert.Equal(t, 0.0, NonNegative(-1))
	assert.Equal(t, 2.5, NonNegative(2.5))
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	assert.NoError(t, err)
	assert.Len(t, id, 12)
}

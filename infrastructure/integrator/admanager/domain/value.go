package admanagerdomain

import (
	"strconv"

	"github.com/shopspring/decimal"
)

const microsExponent = -6

// Value é o valor tipado da API: int64 chega como string JSON, double como número
type Value struct {
	IntValue    *string  `json:"intValue,omitempty"`
	DoubleValue *float64 `json:"doubleValue,omitempty"`
	StringValue *string  `json:"stringValue,omitempty"`
}

func StringValue(s string) Value {
	return Value{StringValue: &s}
}

func (v Value) String() string {
	switch {
	case v.StringValue != nil:
		return *v.StringValue
	case v.IntValue != nil:
		return *v.IntValue
	case v.DoubleValue != nil:
		return strconv.FormatFloat(*v.DoubleValue, 'f', -1, 64)
	default:
		return ""
	}
}

func (v Value) Int64() int64 {
	switch {
	case v.IntValue != nil:
		n, err := strconv.ParseInt(*v.IntValue, 10, 64)
		if err != nil {
			return 0
		}
		return n
	case v.DoubleValue != nil:
		return int64(*v.DoubleValue)
	default:
		return 0
	}
}

// Money converte um valor monetário: inteiros vêm em micros, doubles já na moeda
func (v Value) Money() float64 {
	switch {
	case v.IntValue != nil:
		return decimal.New(v.Int64(), microsExponent).InexactFloat64()
	case v.DoubleValue != nil:
		return *v.DoubleValue
	default:
		return 0
	}
}

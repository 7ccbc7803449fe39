package decimalx

import "github.com/shopspring/decimal"

func MustFromString(s string) decimal.Decimal {
	f, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return f
}

var hundred = decimal.NewFromInt(100)

// PercentChange returns (close - open) / open * 100. open must be non-zero.
func PercentChange(open, close decimal.Decimal) decimal.Decimal {
	return close.Sub(open).Div(open).Mul(hundred)
}

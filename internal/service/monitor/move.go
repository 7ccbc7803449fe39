package monitor

import (
	"github.com/fzhv/binance-move-alert/internal/service/exchange"
	"github.com/fzhv/binance-move-alert/pkg/decimalx"
	"github.com/shopspring/decimal"
)

// Evaluate computes the signed percentage move of a candle against its open
// and decides whether it reaches threshold. The boundary is inclusive: a
// move of exactly threshold percent triggers. The kline must already be
// validated by the fetcher (positive open), so this never fails.
func Evaluate(symbol exchange.Symbol, interval exchange.Interval, kline exchange.Kline, threshold decimal.Decimal) (MoveSignal, bool) {
	movePercent := decimalx.PercentChange(kline.Open, kline.Close)

	direction := Up
	if movePercent.IsNegative() {
		direction = Down
	}

	signal := MoveSignal{
		Symbol:      symbol,
		Interval:    interval,
		OpenTime:    kline.OpenTime,
		MovePercent: movePercent,
		Direction:   direction,
		Kline:       kline,
	}
	return signal, movePercent.Abs().GreaterThanOrEqual(threshold)
}

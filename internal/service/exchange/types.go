package exchange

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrUniverseUnavailable means the tradable symbol listing could not be
	// retrieved; the whole cycle is skipped, never single symbols.
	ErrUniverseUnavailable = errors.New("exchange: symbol universe unavailable")
	// ErrMalformedKline covers empty kline responses and non-positive opens.
	// A zero open must surface as a fetch failure, not as a 100% move.
	ErrMalformedKline = errors.New("exchange: malformed kline")
)

// Symbol 交易对
type Symbol struct {
	Base  string
	Quote string
}

func (s Symbol) ToString() string {
	return fmt.Sprintf("%s%s", s.Base, s.Quote)
}

func (s Symbol) ToSlashString() string {
	return fmt.Sprintf("%s/%s", s.Base, s.Quote)
}

type Interval string

func (i Interval) ToString() string {
	return string(i)
}

const (
	Interval1m  Interval = "1m"
	Interval3m  Interval = "3m"
	Interval5m  Interval = "5m"
	Interval15m Interval = "15m"
	Interval30m Interval = "30m"
	Interval1h  Interval = "1h"
)

var intervalDurations = map[Interval]time.Duration{
	Interval1m:  time.Minute,
	Interval3m:  3 * time.Minute,
	Interval5m:  5 * time.Minute,
	Interval15m: 15 * time.Minute,
	Interval30m: 30 * time.Minute,
	Interval1h:  time.Hour,
}

// ParseInterval validates a candle granularity against the supported set.
func ParseInterval(s string) (Interval, error) {
	i := Interval(s)
	if _, ok := intervalDurations[i]; !ok {
		return "", fmt.Errorf("unsupported interval %q", s)
	}
	return i, nil
}

func (i Interval) Duration() time.Duration {
	return intervalDurations[i]
}

// AlignedOpenTime floors now to the interval boundary on the UTC epoch.
// Binance aligns its candle windows the same way, so this must agree with
// the open time reported in the kline itself.
func AlignedOpenTime(now time.Time, interval Interval) time.Time {
	ms := interval.Duration().Milliseconds()
	return time.UnixMilli(now.UnixMilli() / ms * ms)
}

type Kline struct {
	OpenTime  time.Time
	CloseTime time.Time
	Open      decimal.Decimal
	Close     decimal.Decimal
	High      decimal.Decimal
	Low       decimal.Decimal
	Volume    decimal.Decimal // 成交量
}

type MarketService interface {
	// GetCurrentKline returns the candle that is open at call time.
	GetCurrentKline(ctx context.Context, symbol Symbol, interval Interval) (Kline, error)
}

type SymbolService interface {
	// GetTradableSymbols lists all currently tradable perpetual symbols
	// quoted in quote, in the order the exchange reports them.
	GetTradableSymbols(ctx context.Context, quote string) ([]Symbol, error)
}

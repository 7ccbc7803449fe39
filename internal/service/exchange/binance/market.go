package binance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/adshao/go-binance/v2/futures"
	"github.com/fzhv/binance-move-alert/internal/service/exchange"
	"github.com/shopspring/decimal"
)

var _ exchange.MarketService = (*MarketService)(nil)

type MarketService struct {
	cli *futures.Client
	now func() time.Time
}

// NewMarketService 创建市场数据服务
func NewMarketService(cli *futures.Client) *MarketService {
	return &MarketService{cli: cli, now: time.Now}
}

// GetCurrentKline fetches the still-forming candle for symbol. The exchange
// returns the newest candle first when limit is 1, so one row is enough.
func (m *MarketService) GetCurrentKline(ctx context.Context, symbol exchange.Symbol, interval exchange.Interval) (exchange.Kline, error) {
	res, err := m.cli.NewKlinesService().
		Symbol(symbol.ToString()). // 币安合约API使用 BTCUSDT 格式，不是 BTC/USDT
		Interval(interval.ToString()).
		Limit(1).
		Do(ctx)
	if err != nil {
		return exchange.Kline{}, err
	}
	if len(res) == 0 {
		return exchange.Kline{}, fmt.Errorf("%w: empty kline response for %s", exchange.ErrMalformedKline, symbol.ToString())
	}

	kline, err := m.convertKline(res[len(res)-1])
	if err != nil {
		return exchange.Kline{}, fmt.Errorf("%w: %s: %v", exchange.ErrMalformedKline, symbol.ToString(), err)
	}
	if !kline.Open.IsPositive() {
		return exchange.Kline{}, fmt.Errorf("%w: %s open price %s", exchange.ErrMalformedKline, symbol.ToString(), kline.Open)
	}

	// The ledger key is the exchange-reported open time. It should equal the
	// local epoch floor; if it ever drifts the dedup keys would disagree
	// between polls, so make the mismatch visible.
	if aligned := exchange.AlignedOpenTime(m.now(), interval); !kline.OpenTime.Equal(aligned) {
		slog.Warn("kline open time differs from local interval floor",
			"symbol", symbol.ToString(),
			"openTime", kline.OpenTime.UnixMilli(),
			"aligned", aligned.UnixMilli())
	}
	return kline, nil
}

func (m *MarketService) convertKline(k *futures.Kline) (exchange.Kline, error) {
	klineOpen, err := decimal.NewFromString(k.Open)
	if err != nil {
		return exchange.Kline{}, err
	}
	klineClose, err := decimal.NewFromString(k.Close)
	if err != nil {
		return exchange.Kline{}, err
	}
	klineHigh, err := decimal.NewFromString(k.High)
	if err != nil {
		return exchange.Kline{}, err
	}
	klineLow, err := decimal.NewFromString(k.Low)
	if err != nil {
		return exchange.Kline{}, err
	}
	klineVolume, err := decimal.NewFromString(k.Volume)
	if err != nil {
		return exchange.Kline{}, err
	}
	return exchange.Kline{
		OpenTime:  time.UnixMilli(k.OpenTime),
		CloseTime: time.UnixMilli(k.CloseTime),
		Open:      klineOpen,
		Close:     klineClose,
		High:      klineHigh,
		Low:       klineLow,
		Volume:    klineVolume,
	}, nil
}

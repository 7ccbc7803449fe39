package monitor

import (
	"context"
	"time"

	"github.com/fzhv/binance-move-alert/internal/service/exchange"
	"github.com/shopspring/decimal"
)

type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// MoveSignal 单根K线异动信号
type MoveSignal struct {
	Symbol      exchange.Symbol   `json:"symbol"`
	Interval    exchange.Interval `json:"interval"`
	OpenTime    time.Time         `json:"open_time"`
	MovePercent decimal.Decimal   `json:"move_percent"`
	Direction   Direction         `json:"direction"`
	Kline       exchange.Kline    `json:"kline"`
}

// MoveService 监控服务接口
type MoveService interface {
	Scan(ctx context.Context, symbols []exchange.Symbol) error
}

type Notifier interface {
	Notify(ctx context.Context, signal MoveSignal) error
}

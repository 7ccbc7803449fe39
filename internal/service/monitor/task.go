package monitor

import (
	"context"

	"github.com/fzhv/binance-move-alert/internal/schedule"
	"github.com/fzhv/binance-move-alert/internal/service/exchange"
	"github.com/samber/lo"
)

type MoveMonitorTask struct {
	symbolSvc    exchange.SymbolService
	moveSvc      MoveService
	quote        string
	rejectSymbol func(ctx context.Context, symbol exchange.Symbol) bool // if true, reject
}

func NewMoveMonitorTask(moveSvc MoveService, symbolSvc exchange.SymbolService, quote string,
	reject ...func(ctx context.Context, symbol exchange.Symbol) bool) schedule.Task {
	task := &MoveMonitorTask{
		symbolSvc: symbolSvc,
		moveSvc:   moveSvc,
		quote:     quote,
		rejectSymbol: func(ctx context.Context, symbol exchange.Symbol) bool {
			return false
		},
	}

	if len(reject) > 0 {
		task.rejectSymbol = reject[0]
	}
	return task
}

// Run executes one cycle. A universe listing failure is returned as-is and
// skips the whole cycle; the runner just waits for the next tick.
func (t *MoveMonitorTask) Run(ctx context.Context) error {
	symbols, err := t.symbolSvc.GetTradableSymbols(ctx, t.quote)
	if err != nil {
		return err
	}

	symbols = lo.Reject(symbols, func(item exchange.Symbol, index int) bool {
		return t.rejectSymbol(ctx, item)
	})

	return t.moveSvc.Scan(ctx, symbols)
}

func (t *MoveMonitorTask) Name() string {
	return "candle move monitor task"
}

package monitor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/fzhv/binance-move-alert/internal/entity"
	"github.com/fzhv/binance-move-alert/internal/repo"
	"github.com/fzhv/binance-move-alert/internal/service/exchange"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const defaultConcurrency = 50

type MoveMonitor struct {
	notifier Notifier

	repo repo.AlertRepo

	marketSvc exchange.MarketService

	interval    exchange.Interval
	threshold   decimal.Decimal
	concurrency int
	now         func() time.Time
}

type consoleNotifier struct {
}

func (c consoleNotifier) Notify(ctx context.Context, signal MoveSignal) error {
	fmt.Println("candle move signal", signal)
	return nil
}

type Option func(m *MoveMonitor)

func WithNotifier(notifier Notifier) Option {
	return func(m *MoveMonitor) {
		m.notifier = notifier
	}
}

// WithConcurrency caps in-flight kline fetches to respect API weight limits.
func WithConcurrency(n int) Option {
	return func(m *MoveMonitor) {
		if n > 0 {
			m.concurrency = n
		}
	}
}

func NewMoveMonitor(repo repo.AlertRepo, marketSvc exchange.MarketService,
	interval exchange.Interval, threshold decimal.Decimal, opts ...Option) MoveService {
	monitor := &MoveMonitor{
		repo:        repo,
		marketSvc:   marketSvc,
		interval:    interval,
		threshold:   threshold,
		concurrency: defaultConcurrency,
		notifier:    consoleNotifier{},
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(monitor)
	}
	return monitor
}

// Scan runs one cycle over symbols. Workers never return an error: a failed
// symbol is logged and skipped so its siblings still get evaluated.
func (m *MoveMonitor) Scan(ctx context.Context, symbols []exchange.Symbol) error {
	var eg errgroup.Group
	eg.SetLimit(m.concurrency)

	var sent atomic.Int64
	for _, symbol := range symbols {
		symbol := symbol
		eg.Go(func() error {
			if m.checkSymbol(ctx, symbol) {
				sent.Add(1)
			}
			return nil
		})
	}
	_ = eg.Wait()

	if n := sent.Load(); n > 0 {
		slog.Info("cycle complete", "alerts", n, "symbols", len(symbols))
	} else {
		slog.Info("no new alerts this cycle", "symbols", len(symbols))
	}
	return nil
}

func (m *MoveMonitor) checkSymbol(ctx context.Context, symbol exchange.Symbol) bool {
	kline, err := m.marketSvc.GetCurrentKline(ctx, symbol, m.interval)
	if err != nil {
		slog.Error("failed to fetch current kline", "symbol", symbol.ToString(), "error", err)
		return false
	}

	signal, triggered := Evaluate(symbol, m.interval, kline, m.threshold)
	if !triggered {
		return false
	}

	alerted, err := m.repo.HasAlerted(ctx, symbol.ToString(), kline.OpenTime)
	if err != nil {
		// No record means no proof an alert was not already sent; missing
		// one alert beats risking a duplicate.
		slog.Error("ledger check failed, suppressing alert",
			"symbol", symbol.ToString(), "openTime", kline.OpenTime.UnixMilli(), "error", err)
		return false
	}
	if alerted {
		return false
	}

	// The insert is the authoritative dedup gate: two overlapping cycles can
	// both pass HasAlerted, only one insert wins the unique key.
	_, err = m.repo.Create(ctx, entity.Alert{
		Symbol:      symbol.ToString(),
		OpenTime:    kline.OpenTime.UnixMilli(),
		MovePercent: signal.MovePercent.InexactFloat64(),
		SentAt:      m.now(),
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateAlert) {
			slog.Info("alert already recorded",
				"symbol", symbol.ToString(), "openTime", kline.OpenTime.UnixMilli())
		} else {
			slog.Error("failed to record alert, suppressing notification",
				"symbol", symbol.ToString(), "openTime", kline.OpenTime.UnixMilli(), "error", err)
		}
		return false
	}

	// Once recorded the alert counts as sent; a delivery failure is logged
	// and never rolls the record back.
	if err = m.notifier.Notify(ctx, signal); err != nil {
		slog.Error("failed to deliver alert", "symbol", symbol.ToString(),
			"openTime", kline.OpenTime.UnixMilli(), "error", err)
		return true
	}

	slog.Info("alert sent", "symbol", symbol.ToString(),
		"move", signal.MovePercent.StringFixed(2), "openTime", kline.OpenTime.UnixMilli())
	return true
}

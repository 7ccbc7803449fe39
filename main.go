package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fzhv/binance-move-alert/internal/repo"
	"github.com/fzhv/binance-move-alert/internal/schedule"
	"github.com/fzhv/binance-move-alert/internal/service/exchange"
	"github.com/fzhv/binance-move-alert/internal/service/exchange/binance"
	"github.com/fzhv/binance-move-alert/internal/service/monitor"
	"github.com/fzhv/binance-move-alert/ioc"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func initViper() {

	// --config=./config/xxx.yaml
	file := pflag.String("config", "", "specify config file")
	pflag.Parse()

	viper.SetDefault("threshold", 6.0)
	viper.SetDefault("interval", "15m")
	viper.SetDefault("poll_seconds", 60)
	viper.SetDefault("quote", "USDT")
	viper.SetDefault("excluded", "")
	viper.SetDefault("concurrency", 50)
	viper.SetDefault("db_path", "alerts.db")
	viper.AutomaticEnv()

	if *file != "" {
		viper.SetConfigFile(*file)
		err := viper.ReadInConfig()
		if err != nil {
			panic(fmt.Errorf("fatal error config file: %s \n", err))
		}
	}
}

func excludedSymbols() []string {
	raw := strings.Split(viper.GetString("excluded"), ",")
	return lo.FilterMap(raw, func(item string, index int) (string, bool) {
		item = strings.ToUpper(strings.TrimSpace(item))
		return item, item != ""
	})
}

func main() {
	initViper()

	interval, err := exchange.ParseInterval(viper.GetString("interval"))
	if err != nil {
		panic(err)
	}
	threshold := decimal.NewFromFloat(viper.GetFloat64("threshold"))
	pollSeconds := viper.GetInt("poll_seconds")
	if pollSeconds <= 0 {
		panic(fmt.Errorf("poll_seconds must be positive, got %d", pollSeconds))
	}
	quote := viper.GetString("quote")

	db := ioc.InitDB()
	if err = repo.InitTables(db); err != nil {
		panic(err)
	}
	alertRepo := repo.NewAlertRepo(db)

	bian := ioc.InitBinanceCli()
	telegramSvc := ioc.InitTelegramSvc()

	symbolSvc := binance.NewSymbolService(bian, excludedSymbols())
	marketSvc := binance.NewMarketService(bian)

	moveMonitor := monitor.NewMoveMonitor(alertRepo, marketSvc, interval, threshold,
		monitor.WithNotifier(monitor.NewMessageNotifier(telegramSvc)),
		monitor.WithConcurrency(viper.GetInt("concurrency")))
	task := monitor.NewMoveMonitorTask(moveMonitor, symbolSvc, quote)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	slog.Info("starting watcher",
		"interval", interval.ToString(),
		"threshold", threshold.String(),
		"poll_seconds", pollSeconds,
		"quote", quote)

	runner := schedule.NewIntervalRunner(task, time.Duration(pollSeconds)*time.Second)
	runner.Start(ctx)
}

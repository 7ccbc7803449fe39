package binance

import (
	"context"
	"fmt"
	"strings"

	"github.com/adshao/go-binance/v2/futures"
	"github.com/fzhv/binance-move-alert/internal/service/exchange"
	"github.com/samber/lo"
)

type SymbolService struct {
	cli      *futures.Client
	excluded map[string]struct{}
}

// NewSymbolService lists USDT-M perpetual symbols. excluded entries are full
// symbol strings (e.g. BTCUSDT) and are matched case-insensitively.
func NewSymbolService(cli *futures.Client, excluded []string) exchange.SymbolService {
	return &SymbolService{
		cli: cli,
		excluded: lo.SliceToMap(excluded, func(item string) (string, struct{}) {
			return strings.ToUpper(strings.TrimSpace(item)), struct{}{}
		}),
	}
}

func (svc *SymbolService) GetTradableSymbols(ctx context.Context, quote string) ([]exchange.Symbol, error) {
	info, err := svc.cli.NewExchangeInfoService().Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", exchange.ErrUniverseUnavailable, err)
	}

	symbols := lo.Filter(info.Symbols, func(item futures.Symbol, index int) bool {
		if item.Status != "TRADING" {
			return false
		}
		if item.ContractType != "PERPETUAL" {
			return false
		}
		return item.QuoteAsset == quote
	})

	res := lo.Map(symbols, func(item futures.Symbol, index int) exchange.Symbol {
		return exchange.Symbol{
			Base:  item.BaseAsset,
			Quote: item.QuoteAsset,
		}
	})
	return svc.filterExcluded(res), nil
}

func (svc *SymbolService) filterExcluded(s []exchange.Symbol) []exchange.Symbol {
	return lo.Reject(s, func(item exchange.Symbol, index int) bool {
		_, ok := svc.excluded[item.ToString()]
		return ok
	})
}

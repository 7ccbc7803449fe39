package binance

import (
	"testing"

	"github.com/fzhv/binance-move-alert/internal/service/exchange"
	"github.com/stretchr/testify/assert"
)

func TestSymbolService_FilterExcluded(t *testing.T) {
	svc := NewSymbolService(nil, []string{"btcusdt", " ETHUSDT "}).(*SymbolService)

	in := []exchange.Symbol{
		{Base: "BTC", Quote: "USDT"},
		{Base: "ETH", Quote: "USDT"},
		{Base: "SOL", Quote: "USDT"},
	}
	out := svc.filterExcluded(in)

	assert.Equal(t, []exchange.Symbol{{Base: "SOL", Quote: "USDT"}}, out)
}

func TestSymbolService_NoExclusions(t *testing.T) {
	svc := NewSymbolService(nil, nil).(*SymbolService)

	in := []exchange.Symbol{
		{Base: "BTC", Quote: "USDT"},
		{Base: "SOL", Quote: "USDT"},
	}
	assert.Equal(t, in, svc.filterExcluded(in))
}

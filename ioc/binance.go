package ioc

import (
	"github.com/adshao/go-binance/v2/futures"
	"github.com/spf13/viper"
)

// InitBinanceCli builds the USDT-M futures client. Market data endpoints are
// public, so empty credentials are fine.
func InitBinanceCli() *futures.Client {
	return futures.NewClient(
		viper.GetString("binance_api_key"),
		viper.GetString("binance_api_secret"),
	)
}

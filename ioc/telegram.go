package ioc

import (
	"strings"

	"github.com/fzhv/binance-move-alert/internal/service/notification"
	"github.com/spf13/viper"
)

func InitTelegramSvc() *notification.TelegramService {
	token := strings.TrimSpace(viper.GetString("telegram_bot_token"))
	chatID := strings.TrimSpace(viper.GetString("telegram_chat_id"))
	if token == "" || chatID == "" {
		panic("please set telegram_bot_token and telegram_chat_id in config or environment")
	}
	return notification.NewTelegramService(token, chatID)
}

package monitor

import (
	"context"
	"fmt"

	"github.com/fzhv/binance-move-alert/internal/service/notification"
)

type messageNotifier struct {
	svc notification.Service
}

// NewMessageNotifier formats move signals into alert messages and hands them
// to a push-message channel.
func NewMessageNotifier(svc notification.Service) Notifier {
	return &messageNotifier{svc: svc}
}

func (n *messageNotifier) Notify(ctx context.Context, signal MoveSignal) error {
	return n.svc.SendHTML(ctx, formatSignal(signal))
}

func formatSignal(signal MoveSignal) string {
	direction := "▲ UP"
	if signal.Direction == Down {
		direction = "▼ DOWN"
	}
	k := signal.Kline
	return fmt.Sprintf("<b>%s</b> %s\n"+
		"Interval: %s | Move: <b>%s%%</b>\n"+
		"Open: %s | Close: %s\n"+
		"High: %s | Low: %s\n"+
		"Open Time: %s UTC",
		signal.Symbol.ToString(), direction,
		signal.Interval.ToString(), signal.MovePercent.Abs().StringFixed(2),
		k.Open, k.Close,
		k.High, k.Low,
		signal.OpenTime.UTC().Format("2006-01-02 15:04:05"))
}

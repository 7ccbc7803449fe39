package notification

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const telegramAPI = "https://api.telegram.org"

var _ Service = (*TelegramService)(nil)

type TelegramService struct {
	token  string
	chatID string
	cli    *http.Client

	baseURL     string
	maxAttempts int
	backoff     func(attempt int) time.Duration
}

type TelegramOption func(s *TelegramService)

// WithBaseURL points the service at a different Bot API host, for tests.
func WithBaseURL(u string) TelegramOption {
	return func(s *TelegramService) {
		s.baseURL = u
	}
}

func WithBackoff(f func(attempt int) time.Duration) TelegramOption {
	return func(s *TelegramService) {
		s.backoff = f
	}
}

func NewTelegramService(token, chatID string, opts ...TelegramOption) *TelegramService {
	svc := &TelegramService{
		token:       token,
		chatID:      chatID,
		cli:         &http.Client{Timeout: 20 * time.Second},
		baseURL:     telegramAPI,
		maxAttempts: 3,
		backoff: func(attempt int) time.Duration {
			return time.Duration(1+attempt*2) * time.Second
		},
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// SendHTML posts a sendMessage call with HTML parse mode. Rate-limit and
// server errors are retried with backoff up to maxAttempts; any other
// non-2xx response fails immediately.
func (s *TelegramService) SendHTML(ctx context.Context, text string) error {
	api := fmt.Sprintf("%s/bot%s/sendMessage", s.baseURL, s.token)
	payload := url.Values{
		"chat_id":                  {s.chatID},
		"text":                     {text},
		"parse_mode":               {"HTML"},
		"disable_web_page_preview": {"true"},
	}

	var lastErr error
	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(s.backoff(attempt - 1)):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, api, strings.NewReader(payload.Encode()))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		resp, err := s.cli.Do(req)
		if err != nil {
			lastErr = err
			continue
		}
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		_ = resp.Body.Close()

		switch {
		case resp.StatusCode >= 200 && resp.StatusCode < 300:
			return nil
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			lastErr = fmt.Errorf("telegram responded %d: %s", resp.StatusCode, body)
		default:
			return fmt.Errorf("telegram responded %d: %s", resp.StatusCode, body)
		}
	}
	return fmt.Errorf("telegram send failed after %d attempts: %w", s.maxAttempts, lastErr)
}

package notification

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noBackoff(attempt int) time.Duration {
	return 0
}

func TestTelegramService_SendHTML(t *testing.T) {
	var got atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		got.Store(url.Values(r.Form))
		assert.Equal(t, "/bottest-token/sendMessage", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	svc := NewTelegramService("test-token", "12345", WithBaseURL(srv.URL), WithBackoff(noBackoff))
	require.NoError(t, svc.SendHTML(context.Background(), "<b>BTCUSDT</b> ▲ UP"))

	form := got.Load().(url.Values)
	assert.Equal(t, "12345", form.Get("chat_id"))
	assert.Equal(t, "<b>BTCUSDT</b> ▲ UP", form.Get("text"))
	assert.Equal(t, "HTML", form.Get("parse_mode"))
	assert.Equal(t, "true", form.Get("disable_web_page_preview"))
}

func TestTelegramService_RetriesOnRateLimit(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	svc := NewTelegramService("t", "c", WithBaseURL(srv.URL), WithBackoff(noBackoff))
	require.NoError(t, svc.SendHTML(context.Background(), "hi"))
	assert.Equal(t, int64(3), calls.Load())
}

func TestTelegramService_GivesUpAfterMaxAttempts(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	svc := NewTelegramService("t", "c", WithBaseURL(srv.URL), WithBackoff(noBackoff))
	err := svc.SendHTML(context.Background(), "hi")
	assert.Error(t, err)
	assert.Equal(t, int64(3), calls.Load())
}

func TestTelegramService_NoRetryOnClientError(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	svc := NewTelegramService("t", "c", WithBaseURL(srv.URL), WithBackoff(noBackoff))
	err := svc.SendHTML(context.Background(), "hi")
	assert.Error(t, err)
	assert.Equal(t, int64(1), calls.Load(), "4xx responses other than 429 must not be retried")
}

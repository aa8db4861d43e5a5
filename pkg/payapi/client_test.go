package payapi_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/fivetwenty-io/payapi/pkg/payapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSend(t *testing.T) {
	t.Parallel()

	client := newFakeClient(map[string]string{"GET /items/a": `{"id":"a"}`})

	got, err := payapi.Send[item](context.Background(), client, payapi.NewRequest(payapi.MethodGet, "/items/a"))
	require.NoError(t, err)
	assert.Equal(t, "a", got.ID)

	_, err = payapi.Send[item](context.Background(), client, payapi.NewRequest(payapi.MethodGet, "/items/missing"))
	require.Error(t, err)
	assert.True(t, payapi.IsNotFound(err))
	assert.Len(t, client.Calls(), 2)
}

func TestSendAsync(t *testing.T) {
	t.Parallel()

	client := newFakeClient(map[string]string{"GET /items/a": `{"id":"a"}`})

	future := payapi.SendAsync[item](context.Background(), client, payapi.NewRequest(payapi.MethodGet, "/items/a"))

	select {
	case <-future.Done():
	case <-time.After(time.Second):
		t.Fatal("future never completed")
	}

	got, err := future.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "a", got.ID)
}

type blockingAsync struct{}

func (blockingAsync) ExecuteAsync(ctx context.Context, _ *payapi.RequestBuilder, _ any) <-chan error {
	return make(chan error)
}

func TestSendAsync_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	future := payapi.SendAsync[item](ctx, blockingAsync{}, payapi.NewRequest(payapi.MethodGet, "/items/a"))

	cancel()

	got, err := future.Await(context.Background())
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, got)
}

func TestFuture_AwaitRespectsOwnContext(t *testing.T) {
	t.Parallel()

	future := payapi.SendAsync[item](context.Background(), blockingAsync{}, payapi.NewRequest(payapi.MethodGet, "/items/a"))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := future.Await(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		config  *payapi.Config
		wantErr error
	}{
		{
			name:    "nil",
			wantErr: payapi.ErrConfigRequired,
		},
		{
			name:   "minimal",
			config: &payapi.Config{BaseURL: "https://api.example.com/v1", APIKey: "sk_test_123"},
		},
		{
			name:    "missing key",
			config:  &payapi.Config{BaseURL: "https://api.example.com/v1"},
			wantErr: payapi.ErrInvalidConfig,
		},
		{
			name:    "bad url",
			config:  &payapi.Config{BaseURL: "not a url", APIKey: "sk_test_123"},
			wantErr: payapi.ErrInvalidConfig,
		},
		{
			name:    "bad account",
			config:  &payapi.Config{BaseURL: "https://api.example.com", APIKey: "sk_test_123", Account: "cus_1"},
			wantErr: payapi.ErrInvalidConfig,
		},
		{
			name: "inverted backoff",
			config: &payapi.Config{
				BaseURL:      "https://api.example.com",
				APIKey:       "sk_test_123",
				RetryWaitMin: time.Second,
				RetryWaitMax: time.Millisecond,
			},
			wantErr: payapi.ErrInvalidConfig,
		},
		{
			name:    "too many retries",
			config:  &payapi.Config{BaseURL: "https://api.example.com", APIKey: "sk_test_123", RetryMax: 50},
			wantErr: payapi.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.config.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)

				return
			}

			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSlogLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := payapi.NewSlogLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	logger.Debug("HTTP Request", map[string]interface{}{"method": "GET", "url": "/invoices"})
	logger.Error("failed", nil)

	out := buf.String()
	assert.Contains(t, out, "msg=\"HTTP Request\" method=GET url=/invoices")
	assert.Contains(t, out, "level=ERROR msg=failed")
}

func TestIdempotencyKeyContext(t *testing.T) {
	t.Parallel()

	_, ok := payapi.IdempotencyKeyFrom(context.Background())
	assert.False(t, ok)

	key, ok := payapi.IdempotencyKeyFrom(payapi.WithIdempotencyKey(context.Background(), "order-42"))
	require.True(t, ok)
	assert.Equal(t, "order-42", key)
}

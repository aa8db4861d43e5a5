package payapi

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Client executes a request and blocks until the response is decoded into
// out, which must be a pointer.
type Client interface {
	Execute(ctx context.Context, req *RequestBuilder, out any) error
}

// AsyncClient starts a request and returns immediately. The returned channel
// yields exactly one value, nil on success, and is then closed. out must not
// be read before that value arrives.
type AsyncClient interface {
	ExecuteAsync(ctx context.Context, req *RequestBuilder, out any) <-chan error
}

// Send executes req with client and decodes the response as T.
func Send[T any](ctx context.Context, client Client, req *RequestBuilder) (*T, error) {
	out := new(T)

	err := client.Execute(ctx, req, out)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// SendAsync starts req on client and returns a Future for the decoded T.
func SendAsync[T any](ctx context.Context, client AsyncClient, req *RequestBuilder) *Future[T] {
	future := &Future[T]{done: make(chan struct{})}
	out := new(T)
	result := client.ExecuteAsync(ctx, req, out)

	go func() {
		defer close(future.done)

		select {
		case err := <-result:
			if err != nil {
				future.err = err

				return
			}

			future.value = out
		case <-ctx.Done():
			future.err = ctx.Err()
		}
	}()

	return future
}

// Future is the pending result of SendAsync.
type Future[T any] struct {
	done  chan struct{}
	value *T
	err   error
}

// Done is closed once the result is available.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the result is available or ctx ends. Abandoning a
// Future stops nothing on the server: a request already sent may still be
// processed.
func (f *Future[T]) Await(ctx context.Context) (*T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for payclient.New.
//
// # Authentication
//
// APIKey is sent as a Bearer token on every request. Restricted keys work the
// same way; the server decides what they may do.
//
// # Timeouts and retries
//
// Per-request deadlines should come from the context passed to Send.
// HTTPTimeout bounds a single attempt. Failed attempts (connection errors,
// 429 and 5xx) are retried up to RetryMax times with exponential backoff
// between RetryWaitMin and RetryWaitMax; every retry of a POST reuses the same
// Idempotency-Key.
type Config struct {
	// BaseURL of the API, e.g. "https://api.example.com/v1". payclient.New
	// trims a trailing slash and adds "https://" when no scheme is present.
	BaseURL string `validate:"required,url"`
	// APIKey is the secret key.
	APIKey string `validate:"required"`
	// APIVersion pins the response schema. Empty uses the account default.
	APIVersion string `validate:"omitempty,max=32"`
	// Account scopes every request to a connected account.
	Account string `validate:"omitempty,startswith=acct_"`

	// Zero values below select the payclient defaults.
	HTTPTimeout  time.Duration `validate:"gte=0"`
	RetryMax     int           `validate:"gte=0,lte=10"`
	RetryWaitMin time.Duration `validate:"gte=0"`
	RetryWaitMax time.Duration `validate:"gte=0,gtefield=RetryWaitMin"`
	// DisableRetries sends every request exactly once.
	DisableRetries bool
	// MaxNetworkConcurrency caps in-flight requests on one client. Zero
	// leaves it unbounded.
	MaxNetworkConcurrency int `validate:"gte=0"`

	// Debug enables request/response logging when a Logger is provided.
	Debug bool
	// Logger receives transport and retry logs.
	Logger Logger `validate:"-"`
	// RequestInterceptors run in order before every call.
	RequestInterceptors []RequestInterceptor `validate:"-"`
	// ResponseInterceptors run in order after every completed call.
	ResponseInterceptors []ResponseInterceptor `validate:"-"`
	// UserAgent overrides the default User-Agent header.
	UserAgent string
}

var configValidator = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints.
func (c *Config) Validate() error {
	if c == nil {
		return ErrConfigRequired
	}

	err := configValidator.Struct(c)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

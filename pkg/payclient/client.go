// Package payclient provides the main entry point for creating API clients.
package payclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/payapi/internal/auth"
	"github.com/fivetwenty-io/payapi/internal/constants"
	payhttp "github.com/fivetwenty-io/payapi/internal/http"
	"github.com/fivetwenty-io/payapi/pkg/payapi"
)

// Client executes bindings in both blocking and async mode.
type Client interface {
	payapi.Client
	payapi.AsyncClient
}

// New creates a client from config. Unset fields take defaults; config is
// updated in place with the values actually used.
func New(ctx context.Context, config *payapi.Config) (Client, error) {
	if config == nil {
		return nil, payapi.ErrConfigRequired
	}

	applyDefaults(config)

	err := config.Validate()
	if err != nil {
		return nil, err
	}

	return newTransport(config, auth.NewStaticKeyProvider(config.APIKey)), nil
}

// NewWithKey creates a client for the production endpoint.
func NewWithKey(ctx context.Context, apiKey string) (Client, error) {
	return New(ctx, &payapi.Config{APIKey: apiKey})
}

// NewFromEnv creates a client whose key is read from PAYAPI_SECRET_KEY on
// every request.
func NewFromEnv(ctx context.Context, config *payapi.Config) (Client, error) {
	if config == nil {
		config = &payapi.Config{}
	}

	keys := auth.NewEnvKeyProvider(constants.SecretKeyEnv)

	key, err := keys.GetKey(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading secret key: %w", err)
	}

	config.APIKey = key
	applyDefaults(config)

	err = config.Validate()
	if err != nil {
		return nil, err
	}

	return newTransport(config, keys), nil
}

// NormalizeBaseURL trims a trailing slash and adds https:// when no scheme
// is given.
func NormalizeBaseURL(baseURL string) string {
	baseURL = strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return constants.DefaultBaseURL
	}

	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	return baseURL
}

func applyDefaults(config *payapi.Config) {
	config.BaseURL = NormalizeBaseURL(config.BaseURL)

	if config.HTTPTimeout == 0 {
		config.HTTPTimeout = constants.DefaultHTTPTimeout
	}

	if config.DisableRetries {
		config.RetryMax = 0
	} else if config.RetryMax == 0 {
		config.RetryMax = constants.DefaultRetryMax
	}

	if config.RetryWaitMin == 0 {
		config.RetryWaitMin = constants.DefaultRetryWaitMin
	}

	if config.RetryWaitMax == 0 {
		config.RetryWaitMax = max(constants.DefaultRetryWaitMax, config.RetryWaitMin)
	}

	if config.UserAgent == "" {
		config.UserAgent = constants.DefaultUserAgent
	}
}

func newTransport(config *payapi.Config, keys auth.KeyProvider) *payhttp.Client {
	opts := []payhttp.Option{
		payhttp.WithRetryConfig(config.RetryMax, config.RetryWaitMin, config.RetryWaitMax),
		payhttp.WithHTTPTimeout(config.HTTPTimeout),
		payhttp.WithUserAgent(config.UserAgent),
		payhttp.WithAPIVersion(config.APIVersion),
		payhttp.WithAccount(config.Account),
		payhttp.WithMaxConcurrency(config.MaxNetworkConcurrency),
	}

	if config.Logger != nil {
		opts = append(opts,
			payhttp.WithLogger(config.Logger),
			payhttp.WithDebug(config.Debug),
		)

		// Rejected calls are always logged; every call only when debugging.
		opts = append(opts, payhttp.WithResponseInterceptor(payapi.LoggingResponseInterceptor(config.Logger)))

		if config.Debug {
			opts = append(opts, payhttp.WithRequestInterceptor(payapi.LoggingInterceptor(config.Logger)))
		}
	}

	for _, interceptor := range config.RequestInterceptors {
		opts = append(opts, payhttp.WithRequestInterceptor(interceptor))
	}

	for _, interceptor := range config.ResponseInterceptors {
		opts = append(opts, payhttp.WithResponseInterceptor(interceptor))
	}

	return payhttp.NewClient(config.BaseURL, keys, opts...)
}

// Package auth supplies secret keys to the transport.
package auth

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fivetwenty-io/payapi/internal/constants"
)

// Static errors for err113 compliance.
var (
	ErrNoKey = errors.New("no secret key available")
)

// KeyProvider returns the secret key to authenticate a request with.
type KeyProvider interface {
	GetKey(ctx context.Context) (string, error)
}

// KeyProviderFunc adapts a function to KeyProvider.
type KeyProviderFunc func(ctx context.Context) (string, error)

// GetKey implements KeyProvider.
func (f KeyProviderFunc) GetKey(ctx context.Context) (string, error) {
	return f(ctx)
}

// StaticKeyProvider always returns the same key.
type StaticKeyProvider struct {
	key string
}

// NewStaticKeyProvider creates a provider for key.
func NewStaticKeyProvider(key string) *StaticKeyProvider {
	return &StaticKeyProvider{key: key}
}

// GetKey implements KeyProvider.
func (p *StaticKeyProvider) GetKey(ctx context.Context) (string, error) {
	if p.key == "" {
		return "", ErrNoKey
	}

	return p.key, nil
}

// EnvKeyProvider reads the key from an environment variable on every call,
// so a rotated key is picked up without rebuilding the client.
type EnvKeyProvider struct {
	variable string
	lookup   func(string) (string, bool)
}

// NewEnvKeyProvider reads variable, or PAYAPI_SECRET_KEY when empty.
func NewEnvKeyProvider(variable string) *EnvKeyProvider {
	if variable == "" {
		variable = constants.SecretKeyEnv
	}

	return &EnvKeyProvider{variable: variable, lookup: os.LookupEnv}
}

// GetKey implements KeyProvider.
func (p *EnvKeyProvider) GetKey(ctx context.Context) (string, error) {
	key, ok := p.lookup(p.variable)
	if !ok || strings.TrimSpace(key) == "" {
		return "", fmt.Errorf("%w: %s is not set", ErrNoKey, p.variable)
	}

	return strings.TrimSpace(key), nil
}

// ChainKeyProvider asks each provider in turn and returns the first key
// found. Errors other than ErrNoKey stop the search.
type ChainKeyProvider []KeyProvider

// GetKey implements KeyProvider.
func (c ChainKeyProvider) GetKey(ctx context.Context) (string, error) {
	for _, provider := range c {
		key, err := provider.GetKey(ctx)
		if err == nil {
			return key, nil
		}

		if !errors.Is(err, ErrNoKey) {
			return "", err
		}
	}

	return "", ErrNoKey
}

// KeyMode classifies a secret key by prefix.
type KeyMode string

// Key modes.
const (
	KeyModeTest    KeyMode = "test"
	KeyModeLive    KeyMode = "live"
	KeyModeUnknown KeyMode = "unknown"
)

// ModeOf reports whether key is a test or live key. Restricted keys (rk_)
// follow the same convention as secret keys (sk_).
func ModeOf(key string) KeyMode {
	for _, prefix := range []string{"sk_", "rk_"} {
		rest, ok := strings.CutPrefix(key, prefix)
		if !ok {
			continue
		}

		switch {
		case strings.HasPrefix(rest, "test_"):
			return KeyModeTest
		case strings.HasPrefix(rest, "live_"):
			return KeyModeLive
		}
	}

	return KeyModeUnknown
}

// ValidateFormat checks that key looks like a secret or restricted key.
func ValidateFormat(key string) error {
	if ModeOf(key) == KeyModeUnknown {
		return constants.ErrInvalidKeyFormat
	}

	return nil
}

// Mask hides all but the mode prefix and the last few characters of key.
func Mask(key string) string {
	if len(key) <= constants.MaskedKeyVisible {
		return constants.MaskedSecret
	}

	prefix := ""
	if ModeOf(key) != KeyModeUnknown {
		prefix = key[:len("sk_test_")]
	}

	return prefix + constants.MaskedSecret + key[len(key)-constants.MaskedKeyVisible:]
}

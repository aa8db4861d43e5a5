package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/payapi/internal/auth"
	"github.com/fivetwenty-io/payapi/internal/constants"
)

var errVault = errors.New("vault sealed")

func TestStaticKeyProvider(t *testing.T) {
	t.Parallel()

	key, err := auth.NewStaticKeyProvider("sk_test_123").GetKey(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "sk_test_123", key)

	_, err = auth.NewStaticKeyProvider("").GetKey(context.Background())
	require.ErrorIs(t, err, auth.ErrNoKey)
}

func TestEnvKeyProvider(t *testing.T) {
	t.Setenv("PAYAPI_TEST_KEY", " sk_test_env \n")

	key, err := auth.NewEnvKeyProvider("PAYAPI_TEST_KEY").GetKey(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "sk_test_env", key)

	_, err = auth.NewEnvKeyProvider("PAYAPI_TEST_KEY_MISSING").GetKey(context.Background())
	require.ErrorIs(t, err, auth.ErrNoKey)
}

func TestChainKeyProvider(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		chain   auth.ChainKeyProvider
		want    string
		wantErr error
	}{
		{
			name:  "first available key wins",
			chain: auth.ChainKeyProvider{auth.NewStaticKeyProvider(""), auth.NewStaticKeyProvider("sk_test_2")},
			want:  "sk_test_2",
		},
		{
			name:    "nothing configured",
			chain:   auth.ChainKeyProvider{auth.NewStaticKeyProvider("")},
			wantErr: auth.ErrNoKey,
		},
		{
			name: "hard failures stop the search",
			chain: auth.ChainKeyProvider{
				auth.KeyProviderFunc(func(context.Context) (string, error) { return "", errVault }),
				auth.NewStaticKeyProvider("sk_test_3"),
			},
			wantErr: errVault,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			key, err := tt.chain.GetKey(context.Background())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, key)
		})
	}
}

func TestModeOfAndMask(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key    string
		mode   auth.KeyMode
		masked string
	}{
		{"sk_test_abcdef123456", auth.KeyModeTest, "sk_test_***3456"},
		{"rk_live_abcdef987654", auth.KeyModeLive, "rk_live_***7654"},
		{"pk_test_abcdef", auth.KeyModeUnknown, "***cdef"},
		{"abc", auth.KeyModeUnknown, "***"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.mode, auth.ModeOf(tt.key))
			assert.Equal(t, tt.masked, auth.Mask(tt.key))
		})
	}

	require.ErrorIs(t, auth.ValidateFormat("pk_test_1"), constants.ErrInvalidKeyFormat)
	require.NoError(t, auth.ValidateFormat("sk_live_1"))
}

package commands

import (
	"bytes"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/payapi/internal/constants"
	"github.com/fivetwenty-io/payapi/pkg/resources"
)

func TestParseTimestamp(t *testing.T) {
	t.Parallel()

	base := time.Unix(1700000000, 0)

	tests := []struct {
		name    string
		raw     string
		want    resources.Timestamp
		wantErr bool
	}{
		{name: "unix seconds", raw: "1700000000", want: 1700000000},
		{name: "RFC 3339", raw: "2023-11-14T22:13:20Z", want: 1700000000},
		{name: "RFC 3339 with offset", raw: "2023-11-14T23:13:20+01:00", want: 1700000000},
		{name: "relative", raw: "+1h", want: 1700003600},
		{name: "relative with spaces", raw: " +30m ", want: 1700001800},
		{name: "bad relative", raw: "+soon", wantErr: true},
		{name: "garbage", raw: "tomorrow", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseTimestamp(tt.raw, base)
			if tt.wantErr {
				require.ErrorIs(t, err, constants.ErrInvalidTimestamp)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTimestamp_Now(t *testing.T) {
	t.Parallel()

	before := time.Now().Unix()

	got, err := parseTimestamp("now", time.Time{})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, int64(got), before)
}

func TestParseMetadata(t *testing.T) {
	t.Parallel()

	t.Run("set and clear", func(t *testing.T) {
		t.Parallel()

		params, err := parseMetadata([]string{"order=42", "note=a=b", "stale="})
		require.NoError(t, err)
		require.Len(t, params, 3)

		require.NotNil(t, params["order"])
		assert.Equal(t, "42", *params["order"])
		require.NotNil(t, params["note"])
		assert.Equal(t, "a=b", *params["note"])
		require.NotNil(t, params["stale"])
		assert.Empty(t, *params["stale"])
	})

	t.Run("no flags sends nothing", func(t *testing.T) {
		t.Parallel()

		params, err := parseMetadata(nil)
		require.NoError(t, err)
		assert.Nil(t, params)
	})

	t.Run("missing separator", func(t *testing.T) {
		t.Parallel()

		_, err := parseMetadata([]string{"order"})
		require.ErrorIs(t, err, constants.ErrInvalidMetadata)
	})

	t.Run("missing key", func(t *testing.T) {
		t.Parallel()

		_, err := parseMetadata([]string{"=value"})
		require.ErrorIs(t, err, constants.ErrInvalidMetadata)
	})
}

func TestParseEnum(t *testing.T) {
	t.Parallel()

	status, err := parseEnum[resources.InvoiceStatus]("status", "paid")
	require.NoError(t, err)
	assert.Equal(t, resources.InvoiceStatusPaid, status)

	_, err = parseEnum[resources.InvoiceStatus]("status", "settled")
	require.ErrorIs(t, err, constants.ErrInvalidEnumValue)
	assert.Contains(t, err.Error(), "--status")

	types, err := parseEnums[resources.PaymentMethodType]("payment-method-types", []string{"card", "sepa_debit"})
	require.NoError(t, err)
	assert.Equal(t, []resources.PaymentMethodType{"card", "sepa_debit"}, types)

	_, err = parseEnums[resources.PaymentMethodType]("payment-method-types", []string{"card", "carrier_pigeon"})
	require.ErrorIs(t, err, constants.ErrInvalidEnumValue)
}

func TestFormatAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		amount   int64
		currency resources.Currency
		want     string
	}{
		{1050, resources.CurrencyUSD, "10.50 USD"},
		{5, resources.CurrencyUSD, "0.05 USD"},
		{-1999, resources.CurrencyUSD, "-19.99 USD"},
		{1000, resources.CurrencyJPY, "1000 JPY"},
		{1234, resources.CurrencyBHD, "1.234 BHD"},
		{0, resources.Currency("xyz"), "0.00 XYZ"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatAmount(tt.amount, tt.currency))
	}
}

func TestFormatHelpers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, constants.NotAvailable, formatTimestamp(0))
	assert.Equal(t, "2023-11-14 22:13:20", formatTimestamp(1700000000))
	assert.Equal(t, constants.NotAvailable, formatOptionalTimestamp(nil))

	var missing *string

	assert.Equal(t, constants.NotAvailable, formatOptional(missing))

	name := "Jenny"
	assert.Equal(t, "Jenny", formatOptional(&name))

	assert.Equal(t, "a=1, b=2", formatMetadata(resources.Metadata{"b": "2", "a": "1"}))
	assert.Empty(t, formatMetadata(nil))

	assert.Equal(t, constants.NotAvailable, expandableID[resources.CustomerID, resources.Customer](nil))
	assert.Equal(t, "cus_1", expandableID(resources.ExpandableID[resources.CustomerID, resources.Customer]("cus_1")))
}

// The tests below change global viper state and must not run in parallel.

func useOutput(t *testing.T, format string) {
	t.Helper()

	viper.Set("output", format)
	t.Cleanup(viper.Reset)
}

func TestWriteOutput(t *testing.T) {
	clock := resources.TestClock{ID: "clock_1", FrozenTime: 1700000000, Status: resources.TestClockStatusReady}

	t.Run("json", func(t *testing.T) {
		useOutput(t, constants.FormatJSON)

		var out bytes.Buffer

		require.NoError(t, writeOutput(&out, clock, testClockDetails(&clock)))
		assert.Contains(t, out.String(), `"id": "clock_1"`)
		assert.Contains(t, out.String(), `"frozen_time": 1700000000`)
	})

	t.Run("yaml", func(t *testing.T) {
		useOutput(t, constants.FormatYAML)

		var out bytes.Buffer

		require.NoError(t, writeOutput(&out, clock, testClockDetails(&clock)))
		assert.Contains(t, out.String(), "id: clock_1")
		assert.Contains(t, out.String(), "frozen_time: 1700000000")
	})

	t.Run("table", func(t *testing.T) {
		useOutput(t, constants.FormatTable)

		var out bytes.Buffer

		require.NoError(t, writeOutput(&out, clock, testClockDetails(&clock)))
		assert.Contains(t, out.String(), "clock_1")
		assert.Contains(t, out.String(), "2023-11-14 22:13:20")
	})

	t.Run("default is table", func(t *testing.T) {
		useOutput(t, "")

		var out bytes.Buffer

		require.NoError(t, writeOutput(&out, clock, testClockDetails(&clock)))
		assert.Contains(t, out.String(), "clock_1")
		assert.NotContains(t, out.String(), "{")
	})

	t.Run("unknown format", func(t *testing.T) {
		useOutput(t, "xml")

		var out bytes.Buffer

		err := writeOutput(&out, clock, testClockDetails(&clock))
		require.ErrorIs(t, err, constants.ErrInvalidOutput)
		assert.Empty(t, out.String())
	})
}

func TestResolveKey(t *testing.T) {
	t.Run("flag wins over environment", func(t *testing.T) {
		t.Setenv(constants.SecretKeyEnv, "sk_test_env")
		viper.Set("api_key", "sk_test_flag")
		t.Cleanup(viper.Reset)

		key, err := resolveKey(t.Context())
		require.NoError(t, err)
		assert.Equal(t, "sk_test_flag", key)
	})

	t.Run("environment fallback", func(t *testing.T) {
		t.Setenv(constants.SecretKeyEnv, "sk_test_env")
		t.Cleanup(viper.Reset)

		key, err := resolveKey(t.Context())
		require.NoError(t, err)
		assert.Equal(t, "sk_test_env", key)
	})

	t.Run("nothing configured", func(t *testing.T) {
		t.Setenv(constants.SecretKeyEnv, "")
		t.Cleanup(viper.Reset)

		_, err := resolveKey(t.Context())
		require.ErrorIs(t, err, constants.ErrNoSecretKey)
	})

	t.Run("live key refused for test helpers", func(t *testing.T) {
		viper.Set("api_key", "sk_live_abc")
		t.Cleanup(viper.Reset)

		require.ErrorIs(t, requireTestKey(t.Context()), constants.ErrLiveKeyNotAllowed)
	})
}

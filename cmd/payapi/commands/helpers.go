// Package commands implements the payapi CLI command tree.
package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/payapi/internal/auth"
	"github.com/fivetwenty-io/payapi/internal/constants"
	"github.com/fivetwenty-io/payapi/pkg/payapi"
	"github.com/fivetwenty-io/payapi/pkg/payclient"
	"github.com/fivetwenty-io/payapi/pkg/resources"
)

const timeLayout = "2006-01-02 15:04:05"

// Static errors for err113 compliance.
var (
	ErrMissingFlag = errors.New("missing flag")
	ErrInvalidFlag = errors.New("invalid flag")
)

// resolveKey returns the key from --api-key, PAYAPI_API_KEY or the config
// file, falling back to PAYAPI_SECRET_KEY.
func resolveKey(ctx context.Context) (string, error) {
	keys := auth.ChainKeyProvider{
		auth.NewStaticKeyProvider(strings.TrimSpace(viper.GetString("api_key"))),
		auth.NewEnvKeyProvider(constants.SecretKeyEnv),
	}

	key, err := keys.GetKey(ctx)
	if errors.Is(err, auth.ErrNoKey) {
		return "", constants.ErrNoSecretKey
	}

	if err != nil {
		return "", fmt.Errorf("failed to read secret key: %w", err)
	}

	return key, nil
}

// newClient creates an API client from flags, environment and config file.
func newClient(ctx context.Context) (payclient.Client, error) {
	key, err := resolveKey(ctx)
	if err != nil {
		return nil, err
	}

	return newClientWithKey(ctx, key)
}

func newClientWithKey(ctx context.Context, key string) (payclient.Client, error) {
	config := &payapi.Config{
		BaseURL:               viper.GetString("api"),
		APIKey:                key,
		APIVersion:            viper.GetString("api_version"),
		Account:               viper.GetString("account"),
		MaxNetworkConcurrency: constants.DefaultConcurrencyLimit,
	}

	if viper.GetBool("verbose") {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		config.Logger = payapi.NewSlogLogger(slog.New(handler))
		config.Debug = true
	}

	client, err := payclient.New(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// requireTestKey refuses to run test helpers with a live key.
func requireTestKey(ctx context.Context) error {
	key, err := resolveKey(ctx)
	if err != nil {
		return err
	}

	if auth.ModeOf(key) == auth.KeyModeLive {
		return constants.ErrLiveKeyNotAllowed
	}

	return nil
}

// writeOutput prints value in the selected output format. table fills the
// table for the default format.
func writeOutput(out io.Writer, value any, table func(t *tablewriter.Table)) error {
	switch format := outputFormat(); format {
	case constants.FormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")

		return encoder.Encode(value)
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(out)
		defer func() {
			_ = encoder.Close()
		}()

		return encoder.Encode(value)
	case constants.FormatTable:
		writer := tablewriter.NewWriter(out)
		table(writer)

		err := writer.Render()
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("%w: %q", constants.ErrInvalidOutput, format)
	}
}

func outputFormat() string {
	format := strings.ToLower(viper.GetString("output"))
	if format == "" {
		return constants.FormatTable
	}

	return format
}

// parseTimestamp accepts "now", unix seconds, RFC 3339 or "+DURATION"
// relative to base.
func parseTimestamp(raw string, base time.Time) (resources.Timestamp, error) {
	raw = strings.TrimSpace(raw)

	switch {
	case raw == "now":
		return resources.TimestampFrom(time.Now()), nil
	case strings.HasPrefix(raw, "+"):
		offset, err := time.ParseDuration(raw[1:])
		if err != nil {
			return 0, fmt.Errorf("%w: %q", constants.ErrInvalidTimestamp, raw)
		}

		return resources.TimestampFrom(base.Add(offset)), nil
	}

	seconds, err := strconv.ParseInt(raw, 10, 64)
	if err == nil {
		return resources.Timestamp(seconds), nil
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", constants.ErrInvalidTimestamp, raw)
	}

	return resources.TimestampFrom(parsed), nil
}

// parseMetadata turns key=value pairs into params. "key=" clears the key.
func parseMetadata(pairs []string) (resources.MetadataParams, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	params := make(resources.MetadataParams, len(pairs))

	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q", constants.ErrInvalidMetadata, pair)
		}

		if value == "" {
			params.Clear(key)
		} else {
			params.Set(key, value)
		}
	}

	return params, nil
}

type knownEnum interface {
	~string
	IsKnown() bool
}

// parseEnum rejects values the client does not know how to send.
func parseEnum[T knownEnum](flag, raw string) (T, error) {
	value := T(raw)
	if !value.IsKnown() {
		return value, fmt.Errorf("%w for --%s: %q", constants.ErrInvalidEnumValue, flag, raw)
	}

	return value, nil
}

func parseEnums[T knownEnum](flag string, raw []string) ([]T, error) {
	values := make([]T, 0, len(raw))

	for _, item := range raw {
		value, err := parseEnum[T](flag, item)
		if err != nil {
			return nil, err
		}

		values = append(values, value)
	}

	return values, nil
}

// confirm asks a yes/no question on the command's streams.
func confirm(cmd *cobra.Command, question string) bool {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (y/N): ", question)

	var response string

	_, _ = fmt.Fscanln(cmd.InOrStdin(), &response)

	return response == "y" || response == "Y"
}

func formatTimestamp(ts resources.Timestamp) string {
	if ts == 0 {
		return constants.NotAvailable
	}

	return ts.Time().Format(timeLayout)
}

func formatOptionalTimestamp(ts *resources.Timestamp) string {
	if ts == nil {
		return constants.NotAvailable
	}

	return formatTimestamp(*ts)
}

func formatOptional[T ~string](value *T) string {
	if value == nil || *value == "" {
		return constants.NotAvailable
	}

	return string(*value)
}

// formatAmount renders an amount in the currency's smallest unit as a
// decimal, e.g. 1050 usd as "10.50 USD".
func formatAmount(amount int64, currency resources.Currency) string {
	code := strings.ToUpper(currency.String())

	units := currency.MinorUnits()
	if units == 0 {
		return fmt.Sprintf("%d %s", amount, code)
	}

	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	divisor := int64(1)
	for range units {
		divisor *= 10
	}

	return fmt.Sprintf("%s%d.%0*d %s", sign, amount/divisor, units, amount%divisor, code)
}

func formatMetadata(metadata resources.Metadata) string {
	if len(metadata) == 0 {
		return ""
	}

	pairs := make([]string, 0, len(metadata))
	for key, value := range metadata {
		pairs = append(pairs, key+"="+value)
	}

	slices.Sort(pairs)

	return strings.Join(pairs, ", ")
}

func expandableID[ID ~string, T any](ref *resources.Expandable[ID, T]) string {
	if ref == nil {
		return constants.NotAvailable
	}

	return string(ref.ID)
}

// addListFlags registers the paging flags shared by list commands.
func addListFlags(cmd *cobra.Command, limit *int64, all *bool) {
	cmd.Flags().Int64Var(limit, "limit", constants.DefaultPageSize, "page size")
	cmd.Flags().BoolVar(all, "all", false, "fetch every page")
}

// collect returns the first page, or every page when all is set.
func collect[T payapi.Object](cmd *cobra.Command, client payapi.Client, paginator *payapi.Paginator[T], all bool) ([]T, error) {
	limit, _ := cmd.Flags().GetInt64("limit")
	if limit < 1 || limit > constants.MaxPageSize {
		return nil, fmt.Errorf("%w: --limit must be between 1 and %d", ErrInvalidFlag, constants.MaxPageSize)
	}

	if all {
		return paginator.Collect(cmd.Context(), client)
	}

	page, err := payapi.Send[payapi.List[T]](cmd.Context(), client, paginator.Request())
	if err != nil {
		return nil, err
	}

	return page.Data, nil
}

package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/fivetwenty-io/payapi/internal/auth"
	"github.com/fivetwenty-io/payapi/internal/constants"
	"github.com/fivetwenty-io/payapi/pkg/endpoints"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var (
		apiKey     string
		skipVerify bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store a secret key",
		Long:  "Check a secret key against the API and store it in the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiKey == "" {
				key, err := readSecret(cmd, "Secret key: ")
				if err != nil {
					return err
				}

				apiKey = key
			}

			apiKey = strings.TrimSpace(apiKey)

			err := auth.ValidateFormat(apiKey)
			if err != nil {
				return err
			}

			if !skipVerify {
				err = verifyKey(cmd.Context(), apiKey)
				if err != nil {
					return err
				}
			}

			config, err := loadConfig()
			if err != nil {
				return err
			}

			config.APIKey = apiKey
			if api := viper.GetString("api"); api != "" {
				config.API = api
			}

			err = saveConfig(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged in with %s mode key %s\n", auth.ModeOf(apiKey), auth.Mask(apiKey))

			return nil
		},
	}

	cmd.Flags().StringVar(&apiKey, "key", "", "secret key (prompted when omitted)")
	cmd.Flags().BoolVar(&skipVerify, "skip-verify", false, "store the key without calling the API")

	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored secret key",
		Long:  "Remove the secret key from the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig()
			if err != nil {
				return err
			}

			config.APIKey = ""

			err = saveConfig(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Logged out")

			return nil
		},
	}
}

// readSecret reads without echo from a terminal and reads a plain line
// otherwise, so that keys can be piped in.
func readSecret(cmd *cobra.Command, prompt string) (string, error) {
	in := cmd.InOrStdin()

	if file, ok := in.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		_, _ = fmt.Fprint(cmd.OutOrStdout(), prompt)

		secret, err := term.ReadPassword(int(file.Fd()))

		_, _ = fmt.Fprintln(cmd.OutOrStdout())

		if err != nil {
			return "", fmt.Errorf("failed to read secret key: %w", err)
		}

		return string(secret), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read secret key: %w", err)
	}

	return strings.TrimSpace(line), nil
}

// verifyKey makes the cheapest authenticated call.
func verifyKey(ctx context.Context, key string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	client, err := newClientWithKey(ctx, key)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, constants.ShortHTTPTimeout)
	defer cancel()

	_, err = endpoints.NewListCustomer().Limit(1).Send(ctx, client)
	if err != nil {
		return fmt.Errorf("failed to verify secret key: %w", err)
	}

	return nil
}

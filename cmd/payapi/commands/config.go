package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/payapi/internal/auth"
	"github.com/fivetwenty-io/payapi/internal/constants"
)

// Config represents the CLI configuration file.
type Config struct {
	API        string `json:"api,omitempty"         yaml:"api,omitempty"`
	APIKey     string `json:"api_key,omitempty"     yaml:"api_key,omitempty"`
	APIVersion string `json:"api_version,omitempty" yaml:"api_version,omitempty"`
	Account    string `json:"account,omitempty"     yaml:"account,omitempty"`
	Output     string `json:"output,omitempty"      yaml:"output,omitempty"`
}

var configKeys = []string{"api", "api_key", "api_version", "account", "output"}

func (c *Config) field(key string) (*string, error) {
	switch key {
	case "api":
		return &c.API, nil
	case "api_key":
		return &c.APIKey, nil
	case "api_version":
		return &c.APIVersion, nil
	case "account":
		return &c.Account, nil
	case "output":
		return &c.Output, nil
	default:
		return nil, fmt.Errorf("%w: %q (valid keys: %s)", constants.ErrUnknownConfigKey, key, strings.Join(configKeys, ", "))
	}
}

// masked returns a copy safe to print.
func (c Config) masked() Config {
	if c.APIKey != "" {
		c.APIKey = auth.Mask(c.APIKey)
	}

	return c
}

// configPath returns the file the CLI reads and writes.
func configPath() (string, error) {
	if path := viper.GetString("config"); path != "" {
		return path, nil
	}

	if path := viper.ConfigFileUsed(); path != "" {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to find home directory: %w", err)
	}

	return filepath.Join(home, ".payapi", "config.yml"), nil
}

// loadConfig reads the config file. A missing file is an empty config.
func loadConfig() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := &Config{}

	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return config, nil
}

// saveConfig writes config with permissions that keep the key private.
func saveConfig(config *Config) error {
	path, err := configPath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func validateConfigValue(key, value string) error {
	switch key {
	case "api_key":
		return auth.ValidateFormat(value)
	case "output":
		if !slices.Contains([]string{constants.FormatJSON, constants.FormatYAML, constants.FormatTable}, value) {
			return fmt.Errorf("%w: %q", constants.ErrInvalidOutput, value)
		}
	}

	return nil
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change the settings stored in the payapi config file",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the stored configuration with the secret key masked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig()
			if err != nil {
				return err
			}

			shown := config.masked()

			return writeOutput(cmd.OutOrStdout(), shown, func(table *tablewriter.Table) {
				table.Header("Property", "Value")

				for _, key := range configKeys {
					value, _ := shown.field(key)
					if *value == "" {
						continue
					}

					_ = table.Append(key, *value)
				}
			})
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value. Valid keys: " + strings.Join(configKeys, ", "),
		Args:  cobra.ExactArgs(2), //nolint:mnd // key and value
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], strings.TrimSpace(args[1])

			config, err := loadConfig()
			if err != nil {
				return err
			}

			field, err := config.field(key)
			if err != nil {
				return err
			}

			err = validateConfigValue(key, value)
			if err != nil {
				return err
			}

			*field = value

			err = saveConfig(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", key)

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Remove a configuration value",
		Long:  "Remove a configuration value so that the default applies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig()
			if err != nil {
				return err
			}

			field, err := config.field(args[0])
			if err != nil {
				return err
			}

			*field = ""

			err = saveConfig(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unset %s\n", args[0])

			return nil
		},
	}
}

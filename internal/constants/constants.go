package constants

import "time"

// Version is the client version reported in the User-Agent header.
const Version = "0.4.0"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files. The file
	// holds secret keys.
	ConfigFilePerm = 0600
)

// API defaults.
const (
	// DefaultBaseURL is the production API endpoint.
	DefaultBaseURL = "https://api.payapi.io/v1"

	// DefaultUserAgent is sent when no User-Agent is configured.
	DefaultUserAgent = "payapi-go/" + Version

	// SecretKeyEnv names the environment variable holding the secret key.
	SecretKeyEnv = "PAYAPI_SECRET_KEY"

	// ConfigEnvPrefix prefixes environment overrides for CLI settings.
	ConfigEnvPrefix = "PAYAPI"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout bounds a single attempt. Some endpoints, such as
	// advancing a test clock, are slow to answer.
	DefaultHTTPTimeout = 80 * time.Second

	// ShortHTTPTimeout is used by the CLI connectivity check.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry and concurrency limits.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 2

	// DefaultRetryWaitMin is the first backoff interval.
	DefaultRetryWaitMin = 500 * time.Millisecond

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 5 * time.Second

	// DefaultConcurrencyLimit limits concurrent CLI fetches.
	DefaultConcurrencyLimit = 3
)

// Request headers.
const (
	HeaderAccount        = "Payapi-Account"
	HeaderAPIVersion     = "Payapi-Version"
	HeaderIdempotencyKey = "Idempotency-Key"
	HeaderRequestID      = "Request-Id"
	HeaderShouldRetry    = "X-Should-Retry"
)

// Pagination limits.
const (
	// DefaultPageSize is what the server returns when no limit is sent.
	DefaultPageSize = 10

	// MaxPageSize is the largest limit the server accepts.
	MaxPageSize = 100
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"

	// MaskedKeyVisible is how many trailing characters of a key stay visible.
	MaskedKeyVisible = 4
)

// Format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for table output format.
	FormatTable = "table"
)

package constants

import "errors"

// Configuration errors.
var (
	ErrNoSecretKey       = errors.New("no secret key configured, run 'payapi login' or set " + SecretKeyEnv)
	ErrUnknownConfigKey  = errors.New("unknown configuration key")
	ErrInvalidOutput     = errors.New("output format must be json, yaml or table")
	ErrInvalidKeyFormat  = errors.New("secret keys start with sk_ or rk_")
	ErrLiveKeyNotAllowed = errors.New("test helpers require a test mode key")
)

// Argument errors.
var (
	ErrInvalidTimestamp = errors.New("invalid timestamp, use unix seconds or RFC 3339")
	ErrInvalidMetadata  = errors.New("metadata must be key=value")
	ErrInvalidEnumValue = errors.New("invalid value")
)

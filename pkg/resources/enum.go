package resources

import (
	"errors"
	"fmt"
	"slices"
)

// Static errors for err113 compliance.
var (
	ErrUnrecognizedValue = errors.New("unrecognized enum value")
	ErrUnionEmpty        = errors.New("union has no variant set")
	ErrUnionUndecodable  = errors.New("value matches no union variant")
)

// Enums come in two flavours. Response enums accept any string: values this
// client version does not recognize are kept verbatim and report IsUnknown.
// Request-only enums reject unrecognized strings in their Parse function.
// Either way, an unknown value is never sent: the form encoder refuses any
// value whose IsKnown method returns false.

func isKnown[T ~string](value T, known []T) bool {
	return slices.Contains(known, value)
}

func parseStrict[T ~string](kind, raw string, known []T) (T, error) {
	value := T(raw)
	if !isKnown(value, known) {
		return value, fmt.Errorf("%w: %s %q", ErrUnrecognizedValue, kind, raw)
	}

	return value, nil
}

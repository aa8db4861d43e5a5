package payapi

import (
	"fmt"
	"net/http"
	"strings"
)

// Method is the HTTP verb of a request. The set is closed.
type Method int

// Supported methods.
const (
	MethodGet Method = iota
	MethodPost
	MethodDelete
)

// String returns the canonical upper-case verb.
func (m Method) String() string {
	switch m {
	case MethodGet:
		return http.MethodGet
	case MethodPost:
		return http.MethodPost
	case MethodDelete:
		return http.MethodDelete
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod accepts the verb in any case.
func ParseMethod(raw string) (Method, error) {
	switch strings.ToUpper(raw) {
	case http.MethodGet:
		return MethodGet, nil
	case http.MethodPost:
		return MethodPost, nil
	case http.MethodDelete:
		return MethodDelete, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedMethod, raw)
	}
}

// Placement says where a request's parameters travel.
type Placement int

// Parameter placements.
const (
	PlacementNone Placement = iota
	PlacementQuery
	PlacementBody
)

func (p Placement) String() string {
	switch p {
	case PlacementQuery:
		return "query"
	case PlacementBody:
		return "body"
	default:
		return "none"
	}
}

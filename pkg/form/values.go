package form

import (
	"net/url"
	"strings"
)

// Pair is a single encoded key/value.
type Pair struct {
	Key   string
	Value string
}

// Values is an ordered list of encoded pairs. Unlike url.Values it keeps
// insertion order, so the wire output follows the declaration order of the
// parameter record.
type Values struct {
	pairs []Pair
}

// Add appends a pair.
func (v *Values) Add(key, value string) {
	v.pairs = append(v.pairs, Pair{Key: key, Value: value})
}

// Len returns the number of pairs.
func (v *Values) Len() int {
	if v == nil {
		return 0
	}

	return len(v.pairs)
}

// Empty reports whether no pairs were encoded.
func (v *Values) Empty() bool {
	return v.Len() == 0
}

// Pairs returns a copy of the encoded pairs in order.
func (v *Values) Pairs() []Pair {
	if v == nil {
		return nil
	}

	out := make([]Pair, len(v.pairs))
	copy(out, v.pairs)

	return out
}

// Get returns the first value stored under key.
func (v *Values) Get(key string) (string, bool) {
	if v == nil {
		return "", false
	}

	for _, pair := range v.pairs {
		if pair.Key == key {
			return pair.Value, true
		}
	}

	return "", false
}

// All returns every value stored under key, in order.
func (v *Values) All(key string) []string {
	if v == nil {
		return nil
	}

	var out []string

	for _, pair := range v.pairs {
		if pair.Key == key {
			out = append(out, pair.Value)
		}
	}

	return out
}

// HasPrefix reports whether any key equals name or is nested under it
// (name[...]).
func (v *Values) HasPrefix(name string) bool {
	if v == nil {
		return false
	}

	for _, pair := range v.pairs {
		if pair.Key == name || strings.HasPrefix(pair.Key, name+"[") {
			return true
		}
	}

	return false
}

// URLValues converts to url.Values. Ordering across keys is lost.
func (v *Values) URLValues() url.Values {
	out := url.Values{}

	if v == nil {
		return out
	}

	for _, pair := range v.pairs {
		out.Add(pair.Key, pair.Value)
	}

	return out
}

// Encode renders the pairs as application/x-www-form-urlencoded. Bracket
// characters in keys are left literal.
func (v *Values) Encode() string {
	if v == nil || len(v.pairs) == 0 {
		return ""
	}

	var builder strings.Builder

	for i, pair := range v.pairs {
		if i > 0 {
			builder.WriteByte('&')
		}

		builder.WriteString(escapeKey(pair.Key))
		builder.WriteByte('=')
		builder.WriteString(url.QueryEscape(pair.Value))
	}

	return builder.String()
}

var bracketUnescaper = strings.NewReplacer("%5B", "[", "%5D", "]")

func escapeKey(key string) string {
	return bracketUnescaper.Replace(url.QueryEscape(key))
}

package resources

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/payapi/pkg/form"
)

// Parameter unions accept either a keyword or a typed value and are sent
// without a discriminator. Decoding tries each variant in declaration order.

// RangeQuery filters a timestamp field by bounds. Unset bounds are open.
type RangeQuery struct {
	GT  *Timestamp `form:"gt"  json:"gt,omitempty"  yaml:"gt,omitempty"`
	GTE *Timestamp `form:"gte" json:"gte,omitempty" yaml:"gte,omitempty"`
	LT  *Timestamp `form:"lt"  json:"lt,omitempty"  yaml:"lt,omitempty"`
	LTE *Timestamp `form:"lte" json:"lte,omitempty" yaml:"lte,omitempty"`
}

// RangeQueryTimestamp matches either an exact timestamp or a range.
type RangeQueryTimestamp struct {
	Range     *RangeQuery
	Timestamp *Timestamp
}

// RangeQueryAt matches exactly ts.
func RangeQueryAt(ts Timestamp) RangeQueryTimestamp {
	return RangeQueryTimestamp{Timestamp: &ts}
}

// RangeQueryWithin matches timestamps inside bounds.
func RangeQueryWithin(bounds RangeQuery) RangeQueryTimestamp {
	return RangeQueryTimestamp{Range: &bounds}
}

// AppendForm implements form.Appender.
func (r RangeQueryTimestamp) AppendForm(values *form.Values, key string, mode form.Mode) error {
	switch {
	case r.Range != nil:
		return form.AppendValue(values, key, *r.Range, mode)
	case r.Timestamp != nil:
		return form.AppendValue(values, key, int64(*r.Timestamp), mode)
	default:
		return fmt.Errorf("%w: %s", ErrUnionEmpty, key)
	}
}

// MarshalJSON implements json.Marshaler.
func (r RangeQueryTimestamp) MarshalJSON() ([]byte, error) {
	switch {
	case r.Range != nil:
		return json.Marshal(r.Range)
	case r.Timestamp != nil:
		return json.Marshal(r.Timestamp)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *RangeQueryTimestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var ts Timestamp
	if json.Unmarshal(data, &ts) == nil {
		*r = RangeQueryTimestamp{Timestamp: &ts}

		return nil
	}

	var bounds RangeQuery
	if data[0] == '{' && json.Unmarshal(data, &bounds) == nil {
		*r = RangeQueryTimestamp{Range: &bounds}

		return nil
	}

	return fmt.Errorf("%w: range query %s", ErrUnionUndecodable, data)
}

// BillingCycleAnchorKeyword is the keyword form of BillingCycleAnchor.
type BillingCycleAnchorKeyword string

// Billing cycle anchor keywords.
const (
	BillingCycleAnchorKeywordNow       BillingCycleAnchorKeyword = "now"
	BillingCycleAnchorKeywordUnchanged BillingCycleAnchorKeyword = "unchanged"
)

var billingCycleAnchorKeywordValues = []BillingCycleAnchorKeyword{
	BillingCycleAnchorKeywordNow, BillingCycleAnchorKeywordUnchanged,
}

// ParseBillingCycleAnchorKeyword fails on values outside the known set.
func ParseBillingCycleAnchorKeyword(raw string) (BillingCycleAnchorKeyword, error) {
	return parseStrict("billingCycleAnchorKeyword", raw, billingCycleAnchorKeywordValues)
}

func (b BillingCycleAnchorKeyword) String() string { return string(b) }

func (b BillingCycleAnchorKeyword) IsKnown() bool {
	return isKnown(b, billingCycleAnchorKeywordValues)
}

func (b BillingCycleAnchorKeyword) IsUnknown() bool { return !b.IsKnown() }

// BillingCycleAnchor is either a keyword or a timestamp.
type BillingCycleAnchor struct {
	Keyword   *BillingCycleAnchorKeyword
	Timestamp *Timestamp
}

// BillingCycleAnchorNow resets the cycle to the time of the request.
func BillingCycleAnchorNow() BillingCycleAnchor {
	keyword := BillingCycleAnchorKeywordNow

	return BillingCycleAnchor{Keyword: &keyword}
}

// BillingCycleAnchorUnchanged keeps the existing cycle.
func BillingCycleAnchorUnchanged() BillingCycleAnchor {
	keyword := BillingCycleAnchorKeywordUnchanged

	return BillingCycleAnchor{Keyword: &keyword}
}

// BillingCycleAnchorAt anchors the cycle at ts.
func BillingCycleAnchorAt(ts Timestamp) BillingCycleAnchor {
	return BillingCycleAnchor{Timestamp: &ts}
}

// AppendForm implements form.Appender.
func (b BillingCycleAnchor) AppendForm(values *form.Values, key string, mode form.Mode) error {
	switch {
	case b.Keyword != nil:
		return form.AppendValue(values, key, *b.Keyword, mode)
	case b.Timestamp != nil:
		return form.AppendValue(values, key, int64(*b.Timestamp), mode)
	default:
		return fmt.Errorf("%w: %s", ErrUnionEmpty, key)
	}
}

// MarshalJSON implements json.Marshaler.
func (b BillingCycleAnchor) MarshalJSON() ([]byte, error) {
	return marshalKeywordOrTimestamp(b.Keyword, b.Timestamp)
}

// UnmarshalJSON implements json.Unmarshaler.
func (b *BillingCycleAnchor) UnmarshalJSON(data []byte) error {
	keyword, ts, err := unmarshalKeywordOrTimestamp(data, billingCycleAnchorKeywordValues)
	if err != nil {
		return fmt.Errorf("billing cycle anchor: %w", err)
	}

	*b = BillingCycleAnchor{Keyword: keyword, Timestamp: ts}

	return nil
}

// TrialEndKeyword is the keyword form of TrialEnd.
type TrialEndKeyword string

// TrialEndKeywordNow ends the trial immediately.
const TrialEndKeywordNow TrialEndKeyword = "now"

var trialEndKeywordValues = []TrialEndKeyword{TrialEndKeywordNow}

// ParseTrialEndKeyword fails on values outside the known set.
func ParseTrialEndKeyword(raw string) (TrialEndKeyword, error) {
	return parseStrict("trialEndKeyword", raw, trialEndKeywordValues)
}

func (t TrialEndKeyword) String() string { return string(t) }

func (t TrialEndKeyword) IsKnown() bool { return isKnown(t, trialEndKeywordValues) }

func (t TrialEndKeyword) IsUnknown() bool { return !t.IsKnown() }

// TrialEnd is either "now" or a timestamp.
type TrialEnd struct {
	Keyword   *TrialEndKeyword
	Timestamp *Timestamp
}

// TrialEndNow ends the trial at the time of the request.
func TrialEndNow() TrialEnd {
	keyword := TrialEndKeywordNow

	return TrialEnd{Keyword: &keyword}
}

// TrialEndAt ends the trial at ts.
func TrialEndAt(ts Timestamp) TrialEnd {
	return TrialEnd{Timestamp: &ts}
}

// AppendForm implements form.Appender.
func (t TrialEnd) AppendForm(values *form.Values, key string, mode form.Mode) error {
	switch {
	case t.Keyword != nil:
		return form.AppendValue(values, key, *t.Keyword, mode)
	case t.Timestamp != nil:
		return form.AppendValue(values, key, int64(*t.Timestamp), mode)
	default:
		return fmt.Errorf("%w: %s", ErrUnionEmpty, key)
	}
}

// MarshalJSON implements json.Marshaler.
func (t TrialEnd) MarshalJSON() ([]byte, error) {
	return marshalKeywordOrTimestamp(t.Keyword, t.Timestamp)
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *TrialEnd) UnmarshalJSON(data []byte) error {
	keyword, ts, err := unmarshalKeywordOrTimestamp(data, trialEndKeywordValues)
	if err != nil {
		return fmt.Errorf("trial end: %w", err)
	}

	*t = TrialEnd{Keyword: keyword, Timestamp: ts}

	return nil
}

func marshalKeywordOrTimestamp[K ~string](keyword *K, ts *Timestamp) ([]byte, error) {
	switch {
	case keyword != nil:
		return json.Marshal(string(*keyword))
	case ts != nil:
		return json.Marshal(int64(*ts))
	default:
		return []byte("null"), nil
	}
}

func unmarshalKeywordOrTimestamp[K ~string](data []byte, known []K) (*K, *Timestamp, error) {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil, nil, nil
	}

	var raw string
	if json.Unmarshal(data, &raw) == nil {
		keyword, err := parseStrict("keyword", raw, known)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %w", ErrUnionUndecodable, err)
		}

		return &keyword, nil, nil
	}

	var ts Timestamp
	if json.Unmarshal(data, &ts) == nil {
		return nil, &ts, nil
	}

	return nil, nil, fmt.Errorf("%w: %s", ErrUnionUndecodable, data)
}

package form_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/payapi/pkg/form"
)

type testStatus string

func (s testStatus) IsKnown() bool {
	return s == "open" || s == "paid"
}

type testOnline struct {
	IPAddress *string `form:"ip_address"`
	UserAgent *string `form:"user_agent"`
}

type testAcceptance struct {
	Type   testStatus  `form:"type"`
	Online *testOnline `form:"online"`
}

type testNested struct {
	CustomerAcceptance *testAcceptance `form:"customer_acceptance"`
}

type testItem struct {
	Price    *string `form:"price"`
	Quantity *int64  `form:"quantity"`
}

type testParams struct {
	Name      *string            `form:"name"`
	Amount    *int64             `form:"amount"`
	Enabled   *bool              `form:"enabled"`
	Rate      *float64           `form:"rate"`
	Status    *testStatus        `form:"status"`
	Tags      []string           `form:"tags"`
	Items     []testItem         `form:"items"`
	Metadata  map[string]*string `form:"metadata"`
	Mandate   *testNested        `form:"mandate_data"`
	Required  string             `form:"required"`
	Ignored   *string            `form:"-"`
	untagged  string
	NoTag     string
	FrozenDay int64 `form:"frozen_day"`
}

type unionValue struct {
	Keyword *string
	Number  *int64
}

func (u unionValue) AppendForm(values *form.Values, key string, mode form.Mode) error {
	if u.Keyword != nil {
		values.Add(key, *u.Keyword)

		return nil
	}

	return form.AppendValue(values, key, u.Number, mode)
}

type unionParams struct {
	Anchor *unionValue `form:"anchor"`
}

type embeddedCursor struct {
	Limit *int64 `form:"limit"`
}

type embeddingParams struct {
	Status *string `form:"status"`
	embeddedCursor
}

func ptr[T any](v T) *T {
	return &v
}

func TestEncode_OmitsAbsentFields(t *testing.T) {
	t.Parallel()

	values, err := form.Encode(&testParams{}, form.ModeBody)
	require.NoError(t, err)

	assert.Equal(t, "required=&frozen_day=0", values.Encode())
	assert.False(t, values.HasPrefix("name"))
	assert.False(t, values.HasPrefix("metadata"))
	assert.False(t, values.HasPrefix("tags"))
}

func TestEncode_EmptyIsDistinctFromAbsent(t *testing.T) {
	t.Parallel()

	params := &testParams{
		Name:     ptr(""),
		Tags:     []string{},
		Metadata: map[string]*string{},
		Required: "x",
	}

	values, err := form.Encode(params, form.ModeBody)
	require.NoError(t, err)

	assert.Equal(t, "name=&tags=&metadata=&required=x&frozen_day=0", values.Encode())
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestEncode_Scalars(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		params   *testParams
		key      string
		expected string
	}{
		{
			name:     "string with space",
			params:   &testParams{Name: ptr("Q4 preview")},
			key:      "name",
			expected: "Q4 preview",
		},
		{
			name:     "negative integer",
			params:   &testParams{Amount: ptr(int64(-500))},
			key:      "amount",
			expected: "-500",
		},
		{
			name:     "zero integer",
			params:   &testParams{Amount: ptr(int64(0))},
			key:      "amount",
			expected: "0",
		},
		{
			name:     "boolean false",
			params:   &testParams{Enabled: ptr(false)},
			key:      "enabled",
			expected: "false",
		},
		{
			name:     "float",
			params:   &testParams{Rate: ptr(12.5)},
			key:      "rate",
			expected: "12.5",
		},
		{
			name:     "known enum",
			params:   &testParams{Status: ptr(testStatus("open"))},
			key:      "status",
			expected: "open",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			values, err := form.Encode(testCase.params, form.ModeBody)
			require.NoError(t, err)

			got, ok := values.Get(testCase.key)
			require.True(t, ok)
			assert.Equal(t, testCase.expected, got)
		})
	}
}

func TestEncode_UnknownEnumRejected(t *testing.T) {
	t.Parallel()

	_, err := form.Encode(&testParams{Status: ptr(testStatus("future_method_xyz"))}, form.ModeBody)
	require.Error(t, err)
	assert.True(t, errors.Is(err, form.ErrUnknownEnumValue))
	assert.Contains(t, err.Error(), "future_method_xyz")
}

func TestEncode_NestedRecords(t *testing.T) {
	t.Parallel()

	params := &testParams{
		Mandate: &testNested{
			CustomerAcceptance: &testAcceptance{
				Type: "open",
				Online: &testOnline{
					IPAddress: ptr("198.51.100.7"),
					UserAgent: ptr("ExampleUA/1.0"),
				},
			},
		},
		Required: "r",
	}

	values, err := form.Encode(params, form.ModeBody)
	require.NoError(t, err)

	assert.Equal(t,
		"mandate_data[customer_acceptance][type]=open"+
			"&mandate_data[customer_acceptance][online][ip_address]=198.51.100.7"+
			"&mandate_data[customer_acceptance][online][user_agent]=ExampleUA%2F1.0"+
			"&required=r&frozen_day=0",
		values.Encode())
}

func TestEncode_Sequences(t *testing.T) {
	t.Parallel()

	params := &testParams{
		Tags: []string{"a", "b"},
		Items: []testItem{
			{Price: ptr("price_1"), Quantity: ptr(int64(2))},
			{Price: ptr("price_2")},
		},
	}

	body, err := form.Encode(params, form.ModeBody)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, body.All("tags[0]"))
	assert.Equal(t, []string{"b"}, body.All("tags[1]"))
	assert.Equal(t, []string{"price_1"}, body.All("items[0][price]"))
	assert.Equal(t, []string{"2"}, body.All("items[0][quantity]"))
	assert.Equal(t, []string{"price_2"}, body.All("items[1][price]"))

	query, err := form.Encode(params, form.ModeQuery)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, query.All("tags"))
	assert.Equal(t, []string{"price_1"}, query.All("items[0][price]"))
}

func TestEncode_MetadataEntries(t *testing.T) {
	t.Parallel()

	params := &testParams{
		Metadata: map[string]*string{
			"order": ptr("6735"),
			"clear": ptr(""),
			"unset": nil,
		},
	}

	values, err := form.Encode(params, form.ModeBody)
	require.NoError(t, err)

	assert.Equal(t, []string{"6735"}, values.All("metadata[order]"))
	assert.Equal(t, []string{""}, values.All("metadata[clear]"))
	assert.Equal(t, []string{""}, values.All("metadata[unset]"))
	assert.Equal(t, 1, len(values.All("metadata[order]")))
}

func TestEncode_UntaggedUnion(t *testing.T) {
	t.Parallel()

	keyword, err := form.Encode(&unionParams{Anchor: &unionValue{Keyword: ptr("now")}}, form.ModeBody)
	require.NoError(t, err)
	assert.Equal(t, "anchor=now", keyword.Encode())

	number, err := form.Encode(&unionParams{Anchor: &unionValue{Number: ptr(int64(1700000000))}}, form.ModeBody)
	require.NoError(t, err)
	assert.Equal(t, "anchor=1700000000", number.Encode())
}

func TestEncode_EmbeddedStructFlattens(t *testing.T) {
	t.Parallel()

	params := &embeddingParams{Status: ptr("open")}
	params.Limit = ptr(int64(2))

	values, err := form.Encode(params, form.ModeQuery)
	require.NoError(t, err)
	assert.Equal(t, "status=open&limit=2", values.Encode())
}

func TestEncode_RejectsNonStruct(t *testing.T) {
	t.Parallel()

	_, err := form.Encode(42, form.ModeBody)
	require.ErrorIs(t, err, form.ErrNotStruct)

	values, err := form.Encode(nil, form.ModeBody)
	require.NoError(t, err)
	assert.True(t, values.Empty())

	var nilParams *testParams

	values, err = form.Encode(nilParams, form.ModeBody)
	require.NoError(t, err)
	assert.True(t, values.Empty())
}

func TestEncode_UnsupportedMapKey(t *testing.T) {
	t.Parallel()

	type badParams struct {
		Counts map[int]string `form:"counts"`
	}

	_, err := form.Encode(&badParams{Counts: map[int]string{1: "a"}}, form.ModeBody)
	require.ErrorIs(t, err, form.ErrUnsupportedType)
}

package resources_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/fivetwenty-io/payapi/pkg/resources"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandable_DecodesIDOrObject(t *testing.T) {
	t.Parallel()

	var holder struct {
		Customer *resources.Expandable[resources.CustomerID, resources.Customer] `json:"customer"`
	}

	err := json.Unmarshal([]byte(`{"customer":"cus_123"}`), &holder)
	require.NoError(t, err)
	require.NotNil(t, holder.Customer)
	assert.Equal(t, resources.CustomerID("cus_123"), holder.Customer.ID)
	assert.False(t, holder.Customer.IsExpanded())

	err = json.Unmarshal([]byte(`{"customer":{"id":"cus_456","object":"customer","email":"a@example.com"}}`), &holder)
	require.NoError(t, err)
	require.True(t, holder.Customer.IsExpanded())
	assert.Equal(t, resources.CustomerID("cus_456"), holder.Customer.ID)
	assert.Equal(t, "a@example.com", *holder.Customer.Object.Email)

	err = json.Unmarshal([]byte(`{"customer":null}`), &holder)
	require.NoError(t, err)
	assert.Nil(t, holder.Customer)
}

func TestExpandable_MarshalKeepsShape(t *testing.T) {
	t.Parallel()

	ref := resources.ExpandableID[resources.TestClockID, resources.TestClock]("clock_1")

	data, err := json.Marshal(ref)
	require.NoError(t, err)
	assert.JSONEq(t, `"clock_1"`, string(data))

	expanded := resources.Expandable[resources.TestClockID, resources.TestClock]{
		ID:     "clock_1",
		Object: &resources.TestClock{ID: "clock_1", Object: "test_helpers.test_clock"},
	}

	data, err = json.Marshal(expanded)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"object":"test_helpers.test_clock"`)
}

func TestTimestamp(t *testing.T) {
	t.Parallel()

	ts := resources.TimestampFrom(time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC))
	assert.Equal(t, resources.Timestamp(1_700_000_000), ts)
	assert.Equal(t, "1700000000", ts.String())
	assert.Equal(t, 2023, ts.Time().Year())
}

func TestMetadataParams_States(t *testing.T) {
	t.Parallel()

	params := resources.NewMetadataParams(map[string]string{"order": "42"}).
		Clear("note").
		Unset("legacy")

	require.Len(t, params, 3)
	assert.Equal(t, "42", *params["order"])
	assert.Empty(t, *params["note"])
	assert.Nil(t, params["legacy"])

	_, present := params["absent"]
	assert.False(t, present)
}

func TestList_Last(t *testing.T) {
	t.Parallel()

	var empty resources.List[resources.Invoice]

	_, ok := empty.Last()
	assert.False(t, ok)

	page := resources.List[resources.Invoice]{
		Data: []resources.Invoice{{ID: "in_A"}, {ID: "in_B"}},
	}

	last, ok := page.Last()
	require.True(t, ok)
	assert.Equal(t, "in_B", last.ObjectID())
}

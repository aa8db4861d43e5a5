package resources_test

import (
	"encoding/json"
	"testing"

	"github.com/fivetwenty-io/payapi/pkg/resources"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerOrDeleted_SelectsVariant(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		body        string
		wantDeleted bool
		wantID      string
	}{
		{
			name:   "live customer",
			body:   `{"id":"cus_1","object":"customer","email":"jenny@example.com","tax_exempt":"none"}`,
			wantID: "cus_1",
		},
		{
			name:        "deleted customer",
			body:        `{"id":"cus_2","object":"customer","deleted":true}`,
			wantDeleted: true,
			wantID:      "cus_2",
		},
		{
			name:   "explicit false flag",
			body:   `{"id":"cus_3","object":"customer","deleted":false}`,
			wantID: "cus_3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var result resources.CustomerOrDeleted

			err := json.Unmarshal([]byte(tt.body), &result)
			require.NoError(t, err)

			assert.Equal(t, tt.wantDeleted, result.IsDeleted())
			assert.Equal(t, tt.wantID, result.ObjectID())

			if tt.wantDeleted {
				assert.Nil(t, result.Customer)
				assert.True(t, result.Deleted.Deleted)
			} else {
				require.NotNil(t, result.Customer)
				assert.Nil(t, result.Deleted)
			}
		})
	}
}

func TestCustomer_RoundTrip(t *testing.T) {
	t.Parallel()

	exempt := resources.TaxExemptReverse
	email := "jenny@example.com"
	city := "Berlin"

	customer := resources.Customer{
		ID:        "cus_9",
		Object:    "customer",
		Balance:   -500,
		Email:     &email,
		Address:   &resources.Address{City: &city},
		Metadata:  resources.Metadata{"tier": "gold"},
		TaxExempt: &exempt,
		TestClock: resources.ExpandableID[resources.TestClockID, resources.TestClock]("clock_1"),
	}

	data, err := json.Marshal(resources.CustomerOrDeleted{Customer: &customer})
	require.NoError(t, err)

	var decoded resources.CustomerOrDeleted

	err = json.Unmarshal(data, &decoded)
	require.NoError(t, err)
	require.NotNil(t, decoded.Customer)
	assert.Equal(t, customer, *decoded.Customer)
}

package resources_test

import (
	"encoding/json"
	"testing"

	"github.com/fivetwenty-io/payapi/pkg/resources"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const invoiceFixture = `{
  "id": "in_1",
  "object": "invoice",
  "amount_due": 2000,
  "amount_paid": 0,
  "amount_remaining": 2000,
  "collection_method": "future_method_xyz",
  "created": 1700000000,
  "currency": "usd",
  "customer": "cus_1",
  "discounts": ["di_1", {"id": "di_2", "object": "discount", "coupon": {"id": "co_1", "duration": "once", "percent_off": 12.5}, "start": 1700000000}],
  "lines": {
    "object": "list",
    "data": [
      {"id": "il_1", "object": "line_item", "amount": 2000, "currency": "usd", "type": "subscription", "period": {"start": 1, "end": 2}}
    ],
    "has_more": false,
    "url": "/v1/invoices/in_1/lines"
  },
  "metadata": {"order": "42"},
  "status": "open",
  "status_transitions": {"finalized_at": 1700000100},
  "test_clock": {"id": "clock_1", "object": "test_helpers.test_clock", "status": "ready", "frozen_time": 1700000000}
}`

func TestInvoice_DecodesUnknownCollectionMethod(t *testing.T) {
	t.Parallel()

	var invoice resources.Invoice

	err := json.Unmarshal([]byte(invoiceFixture), &invoice)
	require.NoError(t, err)

	assert.Equal(t, resources.InvoiceID("in_1"), invoice.ID)
	assert.True(t, invoice.CollectionMethod.IsUnknown())
	assert.Equal(t, "future_method_xyz", invoice.CollectionMethod.String())

	require.NotNil(t, invoice.Status)
	assert.Equal(t, resources.InvoiceStatusOpen, *invoice.Status)
	assert.Equal(t, resources.CurrencyUSD, invoice.Currency)

	require.NotNil(t, invoice.Customer)
	assert.Equal(t, resources.CustomerID("cus_1"), invoice.Customer.ID)

	require.Len(t, invoice.Discounts, 2)
	assert.False(t, invoice.Discounts[0].IsExpanded())
	assert.True(t, invoice.Discounts[1].IsExpanded())
	assert.Equal(t, resources.DiscountID("di_2"), invoice.Discounts[1].ID)
	assert.Equal(t, resources.CouponDurationOnce, invoice.Discounts[1].Object.Coupon.Duration)

	require.Len(t, invoice.Lines.Data, 1)
	assert.Equal(t, resources.InvoiceLineItemTypeSubscription, invoice.Lines.Data[0].Type)

	require.True(t, invoice.TestClock.IsExpanded())
	assert.Equal(t, resources.TestClockStatusReady, invoice.TestClock.Object.Status)
	assert.Equal(t, resources.TestClockID("clock_1"), invoice.TestClock.ID)

	require.NotNil(t, invoice.StatusTransitions.FinalizedAt)
	assert.Equal(t, resources.Timestamp(1_700_000_100), *invoice.StatusTransitions.FinalizedAt)
}

func TestInvoice_RoundTrip(t *testing.T) {
	t.Parallel()

	status := resources.InvoiceStatusPaid
	footer := "Thanks"
	due := resources.Timestamp(1_700_086_400)

	invoice := resources.Invoice{
		ID:               "in_2",
		Object:           "invoice",
		AmountDue:        1500,
		AmountPaid:       1500,
		CollectionMethod: resources.CollectionMethodSendInvoice,
		Currency:         resources.CurrencyEUR,
		Customer:         resources.ExpandableID[resources.CustomerID, resources.Customer]("cus_2"),
		CustomFields:     []resources.CustomField{{Name: "PO", Value: "1234"}},
		DueDate:          &due,
		Footer:           &footer,
		Lines: resources.List[resources.InvoiceLineItem]{
			Object: "list",
			Data: []resources.InvoiceLineItem{
				{ID: "il_1", Amount: 1500, Currency: resources.CurrencyEUR, Type: resources.InvoiceLineItemTypeInvoiceitem},
			},
			URL: "/v1/invoices/in_2/lines",
		},
		Metadata: resources.Metadata{"order": "42"},
		Status:   &status,
	}

	data, err := json.Marshal(invoice)
	require.NoError(t, err)

	var decoded resources.Invoice

	err = json.Unmarshal(data, &decoded)
	require.NoError(t, err)
	assert.Equal(t, invoice, decoded)
}

func TestDeletedTypes(t *testing.T) {
	t.Parallel()

	var clock resources.DeletedTestClock

	err := json.Unmarshal([]byte(`{"id":"clock_Z","object":"test_helpers.test_clock","deleted":true}`), &clock)
	require.NoError(t, err)
	assert.Equal(t, resources.TestClockID("clock_Z"), clock.ID)
	assert.True(t, clock.Deleted)
	assert.Equal(t, "clock_Z", clock.ObjectID())
}

package endpoints_test

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/payapi/pkg/endpoints"
	"github.com/fivetwenty-io/payapi/pkg/form"
	"github.com/fivetwenty-io/payapi/pkg/payapi"
	"github.com/fivetwenty-io/payapi/pkg/resources"
)

func TestListInvoicePaginatesAcrossPages(t *testing.T) {
	t.Parallel()

	client := newRecordingClient(map[string]string{
		"GET /invoices?status=open&limit=2":                     `{"object":"list","url":"/v1/invoices","data":[{"id":"in_A"},{"id":"in_B"}],"has_more":true}`,
		"GET /invoices?status=open&limit=2&starting_after=in_B": `{"object":"list","url":"/v1/invoices","data":[{"id":"in_C"}],"has_more":false}`,
	})

	list := endpoints.NewListInvoice().Status(resources.InvoiceStatusOpen).Limit(2)

	invoices, err := list.Paginate().Collect(context.Background(), client)
	require.NoError(t, err)

	ids := make([]resources.InvoiceID, 0, len(invoices))
	for _, invoice := range invoices {
		ids = append(ids, invoice.ID)
	}

	assert.Equal(t, []resources.InvoiceID{"in_A", "in_B", "in_C"}, ids)

	requests := client.Requests()
	require.Len(t, requests, 2)
	assert.Equal(t, "/invoices?status=open&limit=2", requests[0].URL())
	assert.Equal(t, "/invoices?status=open&limit=2&starting_after=in_B", requests[1].URL())

	// Paginating never touches the binding's own cursor.
	assert.Nil(t, list.Params().StartingAfter)
}

func TestListInvoiceSinglePageStopsFetching(t *testing.T) {
	t.Parallel()

	client := newRecordingClient(map[string]string{
		"GET /invoices?customer=cus_1": `{"object":"list","data":[{"id":"in_A"},{"id":"in_B"}],"has_more":false}`,
	})

	paginator := endpoints.NewListInvoice().Customer("cus_1").Paginate()

	invoices, err := paginator.Collect(context.Background(), client)
	require.NoError(t, err)

	assert.Len(t, invoices, 2)
	assert.Equal(t, 1, paginator.Pages())
	assert.Len(t, client.Requests(), 1)
}

func TestListInvoiceCreatedRange(t *testing.T) {
	t.Parallel()

	request, err := encode(endpoints.NewListInvoice().
		Created(resources.RangeQueryWithin(resources.RangeQuery{GTE: payapi.Ptr[resources.Timestamp](100)})).
		DueDate(resources.RangeQueryAt(200)))
	require.NoError(t, err)

	assert.Equal(t, "/invoices?created[gte]=100&due_date=200", request.URL())
}

func TestUpdateInvoiceDiscounts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		binding *endpoints.UpdateInvoice
		body    string
	}{
		{
			name:    "empty slice clears discounts",
			binding: endpoints.NewUpdateInvoice("in_X").Discounts([]endpoints.DiscountParams{}),
			body:    "discounts=",
		},
		{
			name:    "unset discounts are omitted",
			binding: endpoints.NewUpdateInvoice("in_X"),
			body:    "",
		},
		{
			name: "discounts are indexed",
			binding: endpoints.NewUpdateInvoice("in_X").Discounts([]endpoints.DiscountParams{
				{Coupon: payapi.Ptr[resources.CouponID]("co_1")},
				{PromotionCode: payapi.Ptr[resources.PromotionCodeID]("promo_1")},
			}),
			body: "discounts[0][coupon]=co_1&discounts[1][promotion_code]=promo_1",
		},
		{
			name:    "empty description is sent",
			binding: endpoints.NewUpdateInvoice("in_X").Description(""),
			body:    "description=",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			request, err := encode(tt.binding)
			require.NoError(t, err)

			assert.Equal(t, payapi.MethodPost, request.Method)
			assert.Equal(t, "/invoices/in_X", request.Path)
			assert.Equal(t, tt.body, request.Body)
		})
	}
}

func TestUpdateInvoiceRejectsUnknownCollectionMethod(t *testing.T) {
	t.Parallel()

	client := newRecordingClient(nil)
	binding := endpoints.NewUpdateInvoice("in_X").
		CollectionMethod(resources.ParseCollectionMethod("future_method_xyz"))

	_, err := binding.Send(context.Background(), client)
	require.Error(t, err)

	require.ErrorIs(t, err, payapi.ErrEncoding)
	require.ErrorIs(t, err, form.ErrUnknownEnumValue)
	assert.Empty(t, client.Requests())
}

func TestRetrieveInvoiceDecodesUnknownEnum(t *testing.T) {
	t.Parallel()

	client := newRecordingClient(map[string]string{
		"GET /invoices/in_1": `{"id":"in_1","object":"invoice","collection_method":"future_method_xyz","status":"draft"}`,
	})

	invoice, err := endpoints.NewRetrieveInvoice("in_1").Send(context.Background(), client)
	require.NoError(t, err)

	assert.True(t, invoice.CollectionMethod.IsUnknown())
	assert.Equal(t, "future_method_xyz", invoice.CollectionMethod.String())
	require.NotNil(t, invoice.Status)
	assert.Equal(t, resources.InvoiceStatusDraft, *invoice.Status)
}

func TestCreateInvoiceMetadata(t *testing.T) {
	t.Parallel()

	metadata := resources.NewMetadataParams(map[string]string{"order": "42", "team": "billing"}).
		Clear("stale").
		Unset("gone")

	request, err := encode(endpoints.NewCreateInvoice().Customer("cus_1").Metadata(metadata))
	require.NoError(t, err)

	values, err := url.ParseQuery(request.Body)
	require.NoError(t, err)

	assert.Equal(t, []string{"42"}, values["metadata[order]"])
	assert.Equal(t, []string{"billing"}, values["metadata[team]"])
	assert.Equal(t, []string{""}, values["metadata[stale]"])
	assert.Equal(t, []string{""}, values["metadata[gone]"])
	assert.Equal(t, []string{"cus_1"}, values["customer"])
}

func TestCreateInvoiceOmitsAbsentFields(t *testing.T) {
	t.Parallel()

	request, err := encode(endpoints.NewCreateInvoice().
		Customer("cus_1").
		AutoAdvance(false).
		PendingInvoiceItemsBehavior(resources.PendingInvoiceItemsBehaviorExclude))
	require.NoError(t, err)

	assert.Equal(t, "auto_advance=false&customer=cus_1&pending_invoice_items_behavior=exclude", request.Body)

	for _, absent := range []string{"metadata", "discounts", "footer", "expand", "transfer_data"} {
		assert.NotContains(t, request.Body, absent)
	}
}

func TestInvoicePathsEscapeIDs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		binding payapi.Binding
		path    string
	}{
		{"retrieve", endpoints.NewRetrieveInvoice("in/../x"), "/invoices/in%2F..%2Fx"},
		{"delete", endpoints.NewDeleteInvoice("in_1"), "/invoices/in_1"},
		{"finalize", endpoints.NewFinalizeInvoice("in_1"), "/invoices/in_1/finalize"},
		{"pay", endpoints.NewPayInvoice("in_1"), "/invoices/in_1/pay"},
		{"void", endpoints.NewVoidInvoice("in_1"), "/invoices/in_1/void"},
		{"mark uncollectible", endpoints.NewMarkUncollectibleInvoice("in_1"), "/invoices/in_1/mark_uncollectible"},
		{"send", endpoints.NewSendInvoice("in_1"), "/invoices/in_1/send"},
		{"lines", endpoints.NewListLinesInvoice("in_1"), "/invoices/in_1/lines"},
		{"upcoming", endpoints.NewUpcomingInvoice(), "/invoices/upcoming"},
		{"upcoming lines", endpoints.NewUpcomingLinesInvoice(), "/invoices/upcoming/lines"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			request := tt.binding.Build()
			assert.Equal(t, tt.path, request.Path())
			assert.NotContains(t, request.Path(), "{")
			assert.NotContains(t, request.Path(), "%s")
		})
	}
}

func TestPayInvoiceBody(t *testing.T) {
	t.Parallel()

	request, err := encode(endpoints.NewPayInvoice("in_1").PaidOutOfBand(true).PaymentMethod("pm_1"))
	require.NoError(t, err)

	assert.Equal(t, "paid_out_of_band=true&payment_method=pm_1", request.Body)
}

func TestUpcomingInvoiceUnions(t *testing.T) {
	t.Parallel()

	request, err := encode(endpoints.NewUpcomingInvoice().
		Customer("cus_1").
		SubscriptionBillingCycleAnchor(resources.BillingCycleAnchorUnchanged()).
		SubscriptionItems([]endpoints.SubscriptionItemParams{
			{Price: payapi.Ptr[resources.PriceID]("price_1"), Quantity: payapi.Int64(2)},
		}).
		SubscriptionProrationBehavior(resources.ProrationBehaviorNone).
		SubscriptionTrialEnd(resources.TrialEndNow()))
	require.NoError(t, err)

	assert.Equal(t, payapi.MethodGet, request.Method)
	assert.Equal(t, strings.Join([]string{
		"customer=cus_1",
		"subscription_billing_cycle_anchor=unchanged",
		"subscription_items[0][price]=price_1",
		"subscription_items[0][quantity]=2",
		"subscription_proration_behavior=none",
		"subscription_trial_end=now",
	}, "&"), request.Query)
}

func TestUpcomingLinesInvoicePaginates(t *testing.T) {
	t.Parallel()

	client := newRecordingClient(map[string]string{
		"GET /invoices/upcoming/lines?customer=cus_1&subscription_trial_end=1700000000&limit=1":                     `{"object":"list","data":[{"id":"il_1"}],"has_more":true}`,
		"GET /invoices/upcoming/lines?customer=cus_1&subscription_trial_end=1700000000&limit=1&starting_after=il_1": `{"object":"list","data":[],"has_more":true}`,
	})

	lines, err := endpoints.NewUpcomingLinesInvoice().
		Customer("cus_1").
		SubscriptionTrialEnd(resources.TrialEndAt(1_700_000_000)).
		Limit(1).
		Paginate().
		Collect(context.Background(), client)
	require.NoError(t, err)

	require.Len(t, lines, 1)
	assert.Equal(t, resources.InvoiceLineItemID("il_1"), lines[0].ID)
	assert.Len(t, client.Requests(), 2)
}

func TestBuildDoesNotMutateBinding(t *testing.T) {
	t.Parallel()

	binding := endpoints.NewListInvoice().Status(resources.InvoiceStatusPaid).Limit(5)
	before := binding.Params()

	first, err := encode(binding)
	require.NoError(t, err)

	client := newRecordingClient(map[string]string{
		"GET /invoices?status=paid&limit=5": `{"object":"list","data":[],"has_more":false}`,
	})
	_, err = binding.Send(context.Background(), client)
	require.NoError(t, err)

	second, err := encode(binding)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, before, binding.Params())
}

package endpoints_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/payapi/pkg/endpoints"
	"github.com/fivetwenty-io/payapi/pkg/payapi"
	"github.com/fivetwenty-io/payapi/pkg/resources"
)

func TestRetrieveCustomerVariants(t *testing.T) {
	t.Parallel()

	client := newRecordingClient(map[string]string{
		"GET /customers/cus_live": `{"id":"cus_live","object":"customer","email":"a@example.com"}`,
		"GET /customers/cus_gone": `{"id":"cus_gone","object":"customer","deleted":true}`,
	})

	live, err := endpoints.NewRetrieveCustomer("cus_live").Send(context.Background(), client)
	require.NoError(t, err)
	require.False(t, live.IsDeleted())
	require.NotNil(t, live.Customer)
	assert.Equal(t, "a@example.com", *live.Customer.Email)

	gone, err := endpoints.NewRetrieveCustomer("cus_gone").Send(context.Background(), client)
	require.NoError(t, err)
	require.True(t, gone.IsDeleted())
	assert.Equal(t, "cus_gone", gone.ObjectID())
}

func TestRetrieveCustomerNotFound(t *testing.T) {
	t.Parallel()

	_, err := endpoints.NewRetrieveCustomer("cus_missing").Send(context.Background(), newRecordingClient(nil))
	require.Error(t, err)

	assert.True(t, payapi.IsNotFound(err))
}

func TestCreateCustomerNestedRecords(t *testing.T) {
	t.Parallel()

	request, err := encode(endpoints.NewCreateCustomer().
		Address(resources.Address{City: payapi.String("Berlin"), Country: payapi.String("DE")}).
		Email("a@example.com").
		InvoiceSettings(endpoints.InvoiceSettingsParams{Footer: payapi.String("")}).
		PreferredLocales([]string{"de", "en"}).
		TaxExempt(resources.TaxExemptReverse).
		TestClock("clock_1"))
	require.NoError(t, err)

	assert.Equal(t,
		"address[city]=Berlin&address[country]=DE"+
			"&email=a%40example.com"+
			"&invoice_settings[footer]="+
			"&preferred_locales[0]=de&preferred_locales[1]=en"+
			"&tax_exempt=reverse"+
			"&test_clock=clock_1",
		request.Body)
}

func TestDeleteCustomer(t *testing.T) {
	t.Parallel()

	client := newRecordingClient(map[string]string{
		"DELETE /customers/cus_1": `{"id":"cus_1","object":"customer","deleted":true}`,
	})

	deleted, err := endpoints.NewDeleteCustomer("cus_1").Send(context.Background(), client)
	require.NoError(t, err)

	assert.True(t, deleted.Deleted)
	assert.Equal(t, resources.CustomerID("cus_1"), deleted.ID)
}

func TestListCustomerStopsOnEmptyPage(t *testing.T) {
	t.Parallel()

	client := newRecordingClient(map[string]string{
		"GET /customers?email=a%40example.com": `{"object":"list","data":[],"has_more":true}`,
	})

	customers, err := endpoints.NewListCustomer().Email("a@example.com").Paginate().Collect(context.Background(), client)
	require.NoError(t, err)

	assert.Empty(t, customers)
	assert.Len(t, client.Requests(), 1)
}

func TestUpdateCustomerBalanceAllowsNegative(t *testing.T) {
	t.Parallel()

	request, err := encode(endpoints.NewUpdateCustomer("cus_1").Balance(-500))
	require.NoError(t, err)

	assert.Equal(t, "/customers/cus_1", request.Path)
	assert.Equal(t, "balance=-500", request.Body)
}

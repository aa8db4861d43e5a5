package payapi_test

import (
	"testing"

	"github.com/fivetwenty-io/payapi/pkg/form"
	"github.com/fivetwenty-io/payapi/pkg/payapi"
	"github.com/fivetwenty-io/payapi/pkg/resources"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clockParams struct {
	FrozenTime resources.Timestamp `form:"frozen_time"`
	Name       *string             `form:"name"`
}

type statusParams struct {
	Status *resources.InvoiceStatus `form:"status"`
}

func TestMethod(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want payapi.Method
	}{
		{"GET", payapi.MethodGet},
		{"post", payapi.MethodPost},
		{"Delete", payapi.MethodDelete},
	}

	for _, tt := range tests {
		method, err := payapi.ParseMethod(tt.raw)
		require.NoError(t, err)
		assert.Equal(t, tt.want, method)

		roundTrip, err := payapi.ParseMethod(method.String())
		require.NoError(t, err)
		assert.Equal(t, method, roundTrip)
	}

	_, err := payapi.ParseMethod("PATCH")
	require.ErrorIs(t, err, payapi.ErrUnsupportedMethod)
}

func TestRequestBuilder_Encode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		request   *payapi.RequestBuilder
		placement payapi.Placement
		wantURL   string
		wantBody  string
	}{
		{
			name: "form body",
			request: payapi.NewRequest(payapi.MethodPost, "/test_helpers/test_clocks").
				Form(&clockParams{FrozenTime: 1_700_000_000, Name: payapi.String("Q4 preview")}),
			placement: payapi.PlacementBody,
			wantURL:   "/test_helpers/test_clocks",
			wantBody:  "frozen_time=1700000000&name=Q4+preview",
		},
		{
			name: "query string",
			request: payapi.NewRequest(payapi.MethodGet, "/invoices").
				Query(&statusParams{Status: payapi.Ptr(resources.InvoiceStatusOpen)}),
			placement: payapi.PlacementQuery,
			wantURL:   "/invoices?status=open",
		},
		{
			name:      "empty query",
			request:   payapi.NewRequest(payapi.MethodGet, "/invoices").Query(&statusParams{}),
			placement: payapi.PlacementQuery,
			wantURL:   "/invoices",
		},
		{
			name:      "no payload",
			request:   payapi.NewRequest(payapi.MethodDelete, "/test_helpers/test_clocks/clock_Z"),
			placement: payapi.PlacementNone,
			wantURL:   "/test_helpers/test_clocks/clock_Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.placement, tt.request.Placement())

			encoded, err := tt.request.Encode()
			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, encoded.URL())
			assert.Equal(t, tt.wantBody, encoded.Body)
		})
	}
}

func TestRequestBuilder_ConflictingPayload(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		request *payapi.RequestBuilder
	}{
		{
			name: "query and form",
			request: payapi.NewRequest(payapi.MethodPost, "/invoices").
				Query(&statusParams{}).
				Form(&clockParams{}),
		},
		{
			name:    "form on GET",
			request: payapi.NewRequest(payapi.MethodGet, "/invoices").Form(&clockParams{}),
		},
		{
			name:    "form on DELETE",
			request: payapi.NewRequest(payapi.MethodDelete, "/test_helpers/test_clocks/clock_Z").Form(&clockParams{}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := tt.request.Encode()
			require.ErrorIs(t, err, payapi.ErrEncoding)
			require.ErrorIs(t, err, payapi.ErrConflictingPayload)
		})
	}
}

func TestRequestBuilder_RejectsUnknownEnum(t *testing.T) {
	t.Parallel()

	unknown := resources.ParseInvoiceStatus("archived")
	request := payapi.NewRequest(payapi.MethodGet, "/invoices").Query(&statusParams{Status: &unknown})

	_, err := request.Encode()
	require.ErrorIs(t, err, payapi.ErrEncoding)
	require.ErrorIs(t, err, form.ErrUnknownEnumValue)
	assert.Contains(t, err.Error(), `status="archived"`)
}

package payapi_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fivetwenty-io/payapi/pkg/payapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func twoPageClient() *fakeClient {
	return newFakeClient(map[string]string{
		"GET /items?status=open&limit=2":                     `{"object":"list","data":[{"id":"in_A"},{"id":"in_B"}],"has_more":true,"url":"/items"}`,
		"GET /items?status=open&limit=2&starting_after=in_B": `{"object":"list","data":[{"id":"in_C"}],"has_more":false,"url":"/items"}`,
	})
}

func TestPaginator_FollowsCursor(t *testing.T) {
	t.Parallel()

	client := twoPageClient()
	params := listParams{Status: payapi.String("open"), Limit: payapi.Int64(2)}
	paginator := itemPaginator(params)

	assert.True(t, paginator.HasNext())

	items, err := paginator.Collect(context.Background(), client)
	require.NoError(t, err)

	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}

	assert.Equal(t, []string{"in_A", "in_B", "in_C"}, ids)
	assert.Equal(t, []string{
		"GET /items?status=open&limit=2",
		"GET /items?status=open&limit=2&starting_after=in_B",
	}, client.Calls())
	assert.Equal(t, 2, paginator.Pages())
	assert.False(t, paginator.HasNext())

	// The caller's params are untouched.
	assert.Nil(t, params.StartingAfter)

	_, err = paginator.Next(context.Background(), client)
	require.ErrorIs(t, err, payapi.ErrNoMoreItems)
	assert.Len(t, client.Calls(), 2)
}

func TestPaginator_SinglePageStops(t *testing.T) {
	t.Parallel()

	client := newFakeClient(map[string]string{
		"GET /items": `{"object":"list","data":[{"id":"a"},{"id":"b"}],"has_more":false}`,
	})

	items, err := itemPaginator(listParams{}).Collect(context.Background(), client)
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Len(t, client.Calls(), 1)
}

func TestPaginator_EmptyPages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "no more", body: `{"object":"list","data":[],"has_more":false}`},
		{name: "has_more on empty page", body: `{"object":"list","data":[],"has_more":true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := newFakeClient(map[string]string{"GET /items": tt.body})

			items, err := itemPaginator(listParams{}).Collect(context.Background(), client)
			require.NoError(t, err)
			assert.Empty(t, items)
			assert.Len(t, client.Calls(), 1)
		})
	}
}

func TestPaginator_ErrorTerminates(t *testing.T) {
	t.Parallel()

	client := twoPageClient()
	client.failures["GET /items?status=open&limit=2&starting_after=in_B"] = errBoom

	paginator := itemPaginator(listParams{Status: payapi.String("open"), Limit: payapi.Int64(2)})

	var (
		seen    []string
		lastErr error
	)

	for it, err := range paginator.All(context.Background(), client) {
		if err != nil {
			lastErr = err

			break
		}

		seen = append(seen, it.ID)
	}

	assert.Equal(t, []string{"in_A", "in_B"}, seen)
	require.ErrorIs(t, lastErr, errBoom)

	_, err := paginator.Next(context.Background(), client)
	require.ErrorIs(t, err, errBoom)
	assert.Len(t, client.Calls(), 2)
}

func TestPaginator_MaxPages(t *testing.T) {
	t.Parallel()

	client := twoPageClient()
	paginator := itemPaginator(listParams{Status: payapi.String("open"), Limit: payapi.Int64(2)}, payapi.WithMaxPages(1))

	items, err := paginator.Collect(context.Background(), client)
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Len(t, client.Calls(), 1)
}

func TestPaginator_ForEachStopsOnCallbackError(t *testing.T) {
	t.Parallel()

	client := twoPageClient()
	paginator := itemPaginator(listParams{Status: payapi.String("open"), Limit: payapi.Int64(2)})

	count := 0
	err := paginator.ForEach(context.Background(), client, func(it item) error {
		count++
		if it.ID == "in_B" {
			return errBoom
		}

		return nil
	})

	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, 2, count)
	assert.Len(t, client.Calls(), 1)
}

func TestPaginator_Stream(t *testing.T) {
	t.Parallel()

	client := twoPageClient()
	paginator := itemPaginator(listParams{Status: payapi.String("open"), Limit: payapi.Int64(2)})

	var ids []string

	for result := range paginator.Stream(context.Background(), client) {
		require.NoError(t, result.Err)

		ids = append(ids, result.Item.ID)
	}

	assert.Equal(t, []string{"in_A", "in_B", "in_C"}, ids)
	assert.Equal(t, 2, paginator.Pages())
}

func TestPaginator_StreamReportsError(t *testing.T) {
	t.Parallel()

	client := newFakeClient(map[string]string{})
	client.failures["GET /items"] = errBoom

	var errs []error

	for result := range itemPaginator(listParams{}).Stream(context.Background(), client) {
		errs = append(errs, result.Err)
	}

	require.Len(t, errs, 1)
	require.ErrorIs(t, errs[0], errBoom)
}

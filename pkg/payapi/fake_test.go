package payapi_test

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/fivetwenty-io/payapi/pkg/payapi"
)

// fakeClient answers requests from canned JSON keyed by "METHOD url".
type fakeClient struct {
	mu        sync.Mutex
	responses map[string]string
	failures  map[string]error
	calls     []string
}

func newFakeClient(responses map[string]string) *fakeClient {
	return &fakeClient{responses: responses, failures: map[string]error{}}
}

func (f *fakeClient) Execute(ctx context.Context, req *payapi.RequestBuilder, out any) error {
	encoded, err := req.Encode()
	if err != nil {
		return err
	}

	key := encoded.Method.String() + " " + encoded.URL()

	f.mu.Lock()
	f.calls = append(f.calls, key)
	body, ok := f.responses[key]
	failure := f.failures[key]
	f.mu.Unlock()

	if failure != nil {
		return failure
	}

	if !ok {
		return &payapi.APIError{Type: payapi.ErrorTypeInvalidRequest, Message: "no such route " + key, HTTPStatusCode: 404}
	}

	err = json.Unmarshal([]byte(body), out)
	if err != nil {
		return fmt.Errorf("%w: %w", payapi.ErrDecoding, err)
	}

	return nil
}

func (f *fakeClient) ExecuteAsync(ctx context.Context, req *payapi.RequestBuilder, out any) <-chan error {
	result := make(chan error, 1)

	go func() {
		defer close(result)

		result <- f.Execute(ctx, req, out)
	}()

	return result
}

func (f *fakeClient) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]string(nil), f.calls...)
}

type item struct {
	ID string `json:"id"`
}

func (i item) ObjectID() string { return i.ID }

type listParams struct {
	Status        *string `form:"status"`
	Limit         *int64  `form:"limit"`
	StartingAfter *string `form:"starting_after"`
}

func itemPaginator(params listParams, opts ...payapi.PaginatorOption) *payapi.Paginator[item] {
	return payapi.NewPaginator[item](func(cursor string) *payapi.RequestBuilder {
		page := params
		if cursor != "" {
			page.StartingAfter = &cursor
		}

		return payapi.NewRequest(payapi.MethodGet, "/items").Query(&page)
	}, opts...)
}

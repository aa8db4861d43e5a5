package endpoints_test

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/fivetwenty-io/payapi/pkg/payapi"
)

// recordingClient answers from canned JSON keyed by "METHOD url" and keeps
// every encoded request it saw.
type recordingClient struct {
	mu        sync.Mutex
	responses map[string]string
	requests  []payapi.EncodedRequest
}

func newRecordingClient(responses map[string]string) *recordingClient {
	return &recordingClient{responses: responses}
}

func (c *recordingClient) Execute(ctx context.Context, req *payapi.RequestBuilder, out any) error {
	encoded, err := req.Encode()
	if err != nil {
		return err
	}

	key := encoded.Method.String() + " " + encoded.URL()

	c.mu.Lock()
	c.requests = append(c.requests, encoded)
	body, ok := c.responses[key]
	c.mu.Unlock()

	if !ok {
		return &payapi.APIError{Type: payapi.ErrorTypeInvalidRequest, Message: "no such route " + key, HTTPStatusCode: 404}
	}

	err = json.Unmarshal([]byte(body), out)
	if err != nil {
		return fmt.Errorf("%w: %w", payapi.ErrDecoding, err)
	}

	return nil
}

func (c *recordingClient) ExecuteAsync(ctx context.Context, req *payapi.RequestBuilder, out any) <-chan error {
	result := make(chan error, 1)

	go func() {
		defer close(result)

		result <- c.Execute(ctx, req, out)
	}()

	return result
}

func (c *recordingClient) Requests() []payapi.EncodedRequest {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]payapi.EncodedRequest(nil), c.requests...)
}

// encode builds and serializes a binding.
func encode(binding payapi.Binding) (payapi.EncodedRequest, error) {
	return binding.Build().Encode()
}

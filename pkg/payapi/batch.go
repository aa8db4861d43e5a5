package payapi

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

const defaultBatchConcurrency = 5

// BatchOperation is one binding to execute in a batch. Out receives the
// decoded response and must be a pointer.
type BatchOperation struct {
	ID       string
	Request  Binding
	Out      any
	Callback func(result *BatchResult)
}

// BatchResult is the outcome of one BatchOperation.
type BatchResult struct {
	ID       string
	Success  bool
	Data     any
	Error    error
	Duration time.Duration
}

// BatchExecutor runs independent operations concurrently. The server imposes
// no ordering across them; callers that need create-then-confirm must await
// the first call themselves.
type BatchExecutor struct {
	client      Client
	concurrency int
	timeout     time.Duration
}

// NewBatchExecutor creates a new batch executor. A concurrency of zero or less
// uses the default.
func NewBatchExecutor(client Client, concurrency int) *BatchExecutor {
	if concurrency <= 0 {
		concurrency = defaultBatchConcurrency
	}

	return &BatchExecutor{
		client:      client,
		concurrency: concurrency,
	}
}

// SetTimeout bounds each operation. Zero leaves only the caller's deadline.
func (b *BatchExecutor) SetTimeout(timeout time.Duration) {
	b.timeout = timeout
}

// Execute runs every operation and returns results in submission order. A
// failed operation never cancels its siblings; cancelling ctx does.
func (b *BatchExecutor) Execute(ctx context.Context, operations []BatchOperation) []BatchResult {
	results := make([]BatchResult, len(operations))

	var group errgroup.Group

	group.SetLimit(b.concurrency)

	for index, operation := range operations {
		group.Go(func() error {
			opCtx := ctx

			if b.timeout > 0 {
				var cancel context.CancelFunc

				opCtx, cancel = context.WithTimeout(ctx, b.timeout)
				defer cancel()
			}

			start := time.Now()
			err := b.client.Execute(opCtx, operation.Request.Build(), operation.Out)

			result := BatchResult{
				ID:       operation.ID,
				Success:  err == nil,
				Error:    err,
				Duration: time.Since(start),
			}
			if err == nil {
				result.Data = operation.Out
			}

			results[index] = result

			if operation.Callback != nil {
				operation.Callback(&result)
			}

			return nil
		})
	}

	_ = group.Wait()

	return results
}

// Failed returns the results that carry an error.
func Failed(results []BatchResult) []BatchResult {
	var failed []BatchResult

	for _, result := range results {
		if !result.Success {
			failed = append(failed, result)
		}
	}

	return failed
}

// BatchBuilder helps build batch operations.
type BatchBuilder struct {
	operations []BatchOperation
}

// NewBatchBuilder creates a new batch builder.
func NewBatchBuilder() *BatchBuilder {
	return &BatchBuilder{}
}

// Add queues binding under id, decoding into out.
func (b *BatchBuilder) Add(id string, binding Binding, out any) *BatchBuilder {
	b.operations = append(b.operations, BatchOperation{
		ID:      id,
		Request: binding,
		Out:     out,
	})

	return b
}

// AddOperation adds a prepared operation.
func (b *BatchBuilder) AddOperation(operation BatchOperation) *BatchBuilder {
	b.operations = append(b.operations, operation)

	return b
}

// Build returns the built operations.
func (b *BatchBuilder) Build() []BatchOperation {
	return b.operations
}

package endpoints

import (
	"context"

	"github.com/fivetwenty-io/payapi/pkg/payapi"
	"github.com/fivetwenty-io/payapi/pkg/resources"
)

// CreateTestClockParams are the parameters of CreateTestClock.
type CreateTestClockParams struct {
	FrozenTime resources.Timestamp `form:"frozen_time"`
	Name       *string             `form:"name"`
	Expand     []string            `form:"expand"`
}

// CreateTestClock creates a test clock frozen at a point in time.
type CreateTestClock struct {
	params CreateTestClockParams
}

// NewCreateTestClock starts a test clock frozen at frozenTime.
func NewCreateTestClock(frozenTime resources.Timestamp) *CreateTestClock {
	return &CreateTestClock{
		params: CreateTestClockParams{FrozenTime: frozenTime},
	}
}

// Name labels the clock.
func (c *CreateTestClock) Name(name string) *CreateTestClock {
	c.params.Name = &name

	return c
}

// Expand asks for the named references to be returned as full objects.
func (c *CreateTestClock) Expand(expand ...string) *CreateTestClock {
	c.params.Expand = expand

	return c
}

// Params returns a copy of the parameters set so far.
func (c *CreateTestClock) Params() CreateTestClockParams {
	return c.params
}

// Build implements payapi.Binding.
func (c *CreateTestClock) Build() *payapi.RequestBuilder {
	params := c.params

	return payapi.NewRequest(payapi.MethodPost, "/test_helpers/test_clocks").Form(&params)
}

// Send executes the request and blocks until the response is decoded.
func (c *CreateTestClock) Send(ctx context.Context, client payapi.Client) (*resources.TestClock, error) {
	return payapi.Send[resources.TestClock](ctx, client, c.Build())
}

// SendAsync starts the request and returns its pending result.
func (c *CreateTestClock) SendAsync(ctx context.Context, client payapi.AsyncClient) *payapi.Future[resources.TestClock] {
	return payapi.SendAsync[resources.TestClock](ctx, client, c.Build())
}

// RetrieveTestClockParams are the parameters of RetrieveTestClock.
type RetrieveTestClockParams struct {
	Expand []string `form:"expand"`
}

// RetrieveTestClock fetches a test clock.
type RetrieveTestClock struct {
	id     resources.TestClockID
	params RetrieveTestClockParams
}

// NewRetrieveTestClock starts the request.
func NewRetrieveTestClock(id resources.TestClockID) *RetrieveTestClock {
	return &RetrieveTestClock{
		id: id,
	}
}

// Expand asks for the named references to be returned as full objects.
func (r *RetrieveTestClock) Expand(expand ...string) *RetrieveTestClock {
	r.params.Expand = expand

	return r
}

// Params returns a copy of the parameters set so far.
func (r *RetrieveTestClock) Params() RetrieveTestClockParams {
	return r.params
}

// Build implements payapi.Binding.
func (r *RetrieveTestClock) Build() *payapi.RequestBuilder {
	params := r.params

	return payapi.NewRequest(payapi.MethodGet, pathf("/test_helpers/test_clocks/%s", r.id)).Query(&params)
}

// Send executes the request and blocks until the response is decoded.
func (r *RetrieveTestClock) Send(ctx context.Context, client payapi.Client) (*resources.TestClock, error) {
	return payapi.Send[resources.TestClock](ctx, client, r.Build())
}

// SendAsync starts the request and returns its pending result.
func (r *RetrieveTestClock) SendAsync(ctx context.Context, client payapi.AsyncClient) *payapi.Future[resources.TestClock] {
	return payapi.SendAsync[resources.TestClock](ctx, client, r.Build())
}

// DeleteTestClockParams are the parameters of DeleteTestClock.
type DeleteTestClockParams struct{}

// DeleteTestClock deletes a test clock. The request carries no parameters.
type DeleteTestClock struct {
	id     resources.TestClockID
	params DeleteTestClockParams
}

// NewDeleteTestClock starts the request.
func NewDeleteTestClock(id resources.TestClockID) *DeleteTestClock {
	return &DeleteTestClock{
		id: id,
	}
}

// Params returns a copy of the parameters set so far.
func (d *DeleteTestClock) Params() DeleteTestClockParams {
	return d.params
}

// Build implements payapi.Binding.
func (d *DeleteTestClock) Build() *payapi.RequestBuilder {
	return payapi.NewRequest(payapi.MethodDelete, pathf("/test_helpers/test_clocks/%s", d.id))
}

// Send executes the request and blocks until the response is decoded.
func (d *DeleteTestClock) Send(ctx context.Context, client payapi.Client) (*resources.DeletedTestClock, error) {
	return payapi.Send[resources.DeletedTestClock](ctx, client, d.Build())
}

// SendAsync starts the request and returns its pending result.
func (d *DeleteTestClock) SendAsync(ctx context.Context, client payapi.AsyncClient) *payapi.Future[resources.DeletedTestClock] {
	return payapi.SendAsync[resources.DeletedTestClock](ctx, client, d.Build())
}

// ListTestClockParams are the parameters of ListTestClock.
type ListTestClockParams struct {
	Limit         *int64   `form:"limit"`
	EndingBefore  *string  `form:"ending_before"`
	StartingAfter *string  `form:"starting_after"`
	Expand        []string `form:"expand"`
}

// ListTestClock lists test clocks, newest first.
type ListTestClock struct {
	params ListTestClockParams
}

// NewListTestClock starts the request.
func NewListTestClock() *ListTestClock {
	return &ListTestClock{}
}

// Limit caps the page size, 1 to 100; the server default is 10.
func (l *ListTestClock) Limit(limit int64) *ListTestClock {
	l.params.Limit = &limit

	return l
}

// EndingBefore is the cursor for the previous page.
func (l *ListTestClock) EndingBefore(endingBefore string) *ListTestClock {
	l.params.EndingBefore = &endingBefore

	return l
}

// StartingAfter is the cursor for the next page; Paginate sets it.
func (l *ListTestClock) StartingAfter(startingAfter string) *ListTestClock {
	l.params.StartingAfter = &startingAfter

	return l
}

// Expand asks for the named references to be returned as full objects.
func (l *ListTestClock) Expand(expand ...string) *ListTestClock {
	l.params.Expand = expand

	return l
}

// Params returns a copy of the parameters set so far.
func (l *ListTestClock) Params() ListTestClockParams {
	return l.params
}

// Build implements payapi.Binding.
func (l *ListTestClock) Build() *payapi.RequestBuilder {
	params := l.params

	return payapi.NewRequest(payapi.MethodGet, "/test_helpers/test_clocks").Query(&params)
}

// Send executes the request and blocks until the response is decoded.
func (l *ListTestClock) Send(ctx context.Context, client payapi.Client) (*payapi.List[resources.TestClock], error) {
	return payapi.Send[payapi.List[resources.TestClock]](ctx, client, l.Build())
}

// SendAsync starts the request and returns its pending result.
func (l *ListTestClock) SendAsync(ctx context.Context, client payapi.AsyncClient) *payapi.Future[payapi.List[resources.TestClock]] {
	return payapi.SendAsync[payapi.List[resources.TestClock]](ctx, client, l.Build())
}

// Paginate walks every page, following the starting_after cursor.
func (l *ListTestClock) Paginate(opts ...payapi.PaginatorOption) *payapi.Paginator[resources.TestClock] {
	params := l.params
	path := "/test_helpers/test_clocks"

	return payapi.NewPaginator[resources.TestClock](func(startingAfter string) *payapi.RequestBuilder {
		page := params
		if startingAfter != "" {
			page.StartingAfter = &startingAfter
		}

		return payapi.NewRequest(payapi.MethodGet, path).Query(&page)
	}, opts...)
}

// AdvanceTestClockParams are the parameters of AdvanceTestClock.
type AdvanceTestClockParams struct {
	FrozenTime resources.Timestamp `form:"frozen_time"`
	Expand     []string            `form:"expand"`
}

// AdvanceTestClock moves a test clock forward. The clock reports status
// advancing until every object attached to it has caught up.
type AdvanceTestClock struct {
	id     resources.TestClockID
	params AdvanceTestClockParams
}

// NewAdvanceTestClock advances the clock to frozenTime, which must be later than its current time.
func NewAdvanceTestClock(id resources.TestClockID, frozenTime resources.Timestamp) *AdvanceTestClock {
	return &AdvanceTestClock{
		id:     id,
		params: AdvanceTestClockParams{FrozenTime: frozenTime},
	}
}

// Expand asks for the named references to be returned as full objects.
func (a *AdvanceTestClock) Expand(expand ...string) *AdvanceTestClock {
	a.params.Expand = expand

	return a
}

// Params returns a copy of the parameters set so far.
func (a *AdvanceTestClock) Params() AdvanceTestClockParams {
	return a.params
}

// Build implements payapi.Binding.
func (a *AdvanceTestClock) Build() *payapi.RequestBuilder {
	params := a.params

	return payapi.NewRequest(payapi.MethodPost, pathf("/test_helpers/test_clocks/%s/advance", a.id)).Form(&params)
}

// Send executes the request and blocks until the response is decoded.
func (a *AdvanceTestClock) Send(ctx context.Context, client payapi.Client) (*resources.TestClock, error) {
	return payapi.Send[resources.TestClock](ctx, client, a.Build())
}

// SendAsync starts the request and returns its pending result.
func (a *AdvanceTestClock) SendAsync(ctx context.Context, client payapi.AsyncClient) *payapi.Future[resources.TestClock] {
	return payapi.SendAsync[resources.TestClock](ctx, client, a.Build())
}

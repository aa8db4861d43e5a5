package payapi

import (
	"context"
	"errors"
	"iter"

	"github.com/fivetwenty-io/payapi/pkg/resources"
)

// List is the paginated list envelope.
type List[T any] = resources.List[T]

// Object is implemented by every resource that can appear in a list; its ID
// is the cursor for the next page.
type Object interface {
	ObjectID() string
}

// PageItem is one element delivered by Paginator.Stream.
type PageItem[T any] struct {
	Item T
	Err  error
}

// PaginatorOption tunes a Paginator.
type PaginatorOption func(*paginatorConfig)

type paginatorConfig struct {
	maxPages int
}

// WithMaxPages stops after n fetches even if more pages exist.
func WithMaxPages(n int) PaginatorOption {
	return func(c *paginatorConfig) {
		c.maxPages = n
	}
}

// Paginator walks a cursor-paginated list. It is single-use and not safe for
// concurrent use: pages are fetched strictly in order.
type Paginator[T Object] struct {
	build    func(startingAfter string) *RequestBuilder
	maxPages int

	cursor string
	buffer []T
	done   bool
	err    error
	pages  int
}

// NewPaginator builds a Paginator. build must return the list request for the
// given cursor, empty for the first page, without touching shared state.
func NewPaginator[T Object](build func(startingAfter string) *RequestBuilder, opts ...PaginatorOption) *Paginator[T] {
	config := paginatorConfig{}
	for _, opt := range opts {
		opt(&config)
	}

	return &Paginator[T]{
		build:    build,
		maxPages: config.maxPages,
	}
}

// Pages returns the number of fetches issued so far.
func (p *Paginator[T]) Pages() int {
	return p.pages
}

// Request returns the request the next fetch would issue.
func (p *Paginator[T]) Request() *RequestBuilder {
	return p.build(p.cursor)
}

// HasNext reports whether Next may return another item. It does not fetch.
func (p *Paginator[T]) HasNext() bool {
	return len(p.buffer) > 0 || !p.done
}

// Next returns the next item, fetching a page when the buffer is empty. At the
// end it returns ErrNoMoreItems. A failed fetch ends iteration and its error is
// returned from every later call.
func (p *Paginator[T]) Next(ctx context.Context, client Client) (T, error) {
	var zero T

	for len(p.buffer) == 0 {
		if p.err != nil {
			return zero, p.err
		}

		if p.done {
			return zero, ErrNoMoreItems
		}

		var page List[T]

		err := client.Execute(ctx, p.Request(), &page)
		p.pages++

		if err != nil {
			p.err = err
			p.done = true

			return zero, err
		}

		p.accept(&page)
	}

	item := p.buffer[0]
	p.buffer = p.buffer[1:]

	return item, nil
}

func (p *Paginator[T]) accept(page *List[T]) {
	p.buffer = page.Data

	last, ok := page.Last()
	if !ok {
		// An empty page ends the stream even if has_more is set.
		p.done = true

		return
	}

	p.cursor = last.ObjectID()
	p.done = !page.HasMore || (p.maxPages > 0 && p.pages >= p.maxPages)
}

// All yields every remaining item. Iteration stops after the first error.
func (p *Paginator[T]) All(ctx context.Context, client Client) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for {
			item, err := p.Next(ctx, client)
			if errors.Is(err, ErrNoMoreItems) {
				return
			}

			if err != nil {
				var zero T

				yield(zero, err)

				return
			}

			if !yield(item, nil) {
				return
			}
		}
	}
}

// Collect fetches every remaining item.
func (p *Paginator[T]) Collect(ctx context.Context, client Client) ([]T, error) {
	var items []T

	for item, err := range p.All(ctx, client) {
		if err != nil {
			return items, err
		}

		items = append(items, item)
	}

	return items, nil
}

// ForEach calls fn for every remaining item and stops at the first error.
func (p *Paginator[T]) ForEach(ctx context.Context, client Client, fn func(T) error) error {
	for item, err := range p.All(ctx, client) {
		if err != nil {
			return err
		}

		err = fn(item)
		if err != nil {
			return err
		}
	}

	return nil
}

// Stream walks the list on an AsyncClient and delivers items on the returned
// channel, which is closed at the end. Cancelling ctx stops further fetches.
func (p *Paginator[T]) Stream(ctx context.Context, client AsyncClient) <-chan PageItem[T] {
	items := make(chan PageItem[T])

	go func() {
		defer close(items)

		send := func(item PageItem[T]) bool {
			select {
			case items <- item:
				return true
			case <-ctx.Done():
				return false
			}
		}

		for {
			for len(p.buffer) > 0 {
				item := p.buffer[0]
				p.buffer = p.buffer[1:]

				if !send(PageItem[T]{Item: item}) {
					return
				}
			}

			if p.done {
				if p.err != nil {
					send(PageItem[T]{Err: p.err})
				}

				return
			}

			var page List[T]

			var err error

			select {
			case err = <-client.ExecuteAsync(ctx, p.Request(), &page):
			case <-ctx.Done():
				err = ctx.Err()
			}

			p.pages++

			if err != nil {
				p.err = err
				p.done = true

				continue
			}

			p.accept(&page)
		}
	}()

	return items
}

// Package payapi is the request runtime shared by every endpoint binding.
//
// # Overview
//
// A binding (see package endpoints) describes one API operation. It produces a
// RequestBuilder carrying the HTTP method, the interpolated path and at most
// one parameter record, which is encoded into the query string for GET and
// DELETE and into a form body for POST. The builder is executed by whichever
// transport capability the caller holds:
//
//	clock, err := endpoints.NewCreateTestClock(1_700_000_000).
//	  Name("Q4 preview").
//	  Send(ctx, client)
//
// or, without blocking the caller:
//
//	future := endpoints.NewRetrieveInvoice("in_123").SendAsync(ctx, client)
//	invoice, err := future.Await(ctx)
//
// A concrete client is built by payclient.New.
//
// # Pagination
//
// List bindings return a Paginator that follows the starting_after cursor
// until the server reports no more pages:
//
//	for invoice, err := range endpoints.NewListInvoice().Status(resources.InvoiceStatusOpen).Paginate().All(ctx, client) {
//	  if err != nil { return err }
//	  _ = invoice
//	}
//
// # Errors
//
// Non-2xx responses surface as *APIError. Helpers such as IsNotFound,
// IsRateLimited and IsCardError branch on common cases. Encoding, transport
// and decoding failures wrap ErrEncoding, ErrTransport and ErrDecoding.
package payapi

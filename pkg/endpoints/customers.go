package endpoints

import (
	"context"

	"github.com/fivetwenty-io/payapi/pkg/payapi"
	"github.com/fivetwenty-io/payapi/pkg/resources"
)

// CreateCustomerParams are the parameters of CreateCustomer.
type CreateCustomerParams struct {
	Address          *resources.Address         `form:"address"`
	Balance          *int64                     `form:"balance"`
	Description      *string                    `form:"description"`
	Email            *string                    `form:"email"`
	InvoicePrefix    *string                    `form:"invoice_prefix"`
	InvoiceSettings  *InvoiceSettingsParams     `form:"invoice_settings"`
	PaymentMethod    *resources.PaymentMethodID `form:"payment_method"`
	Metadata         resources.MetadataParams   `form:"metadata"`
	Name             *string                    `form:"name"`
	Phone            *string                    `form:"phone"`
	PreferredLocales []string                   `form:"preferred_locales"`
	Shipping         *resources.Shipping        `form:"shipping"`
	TaxExempt        *resources.TaxExempt       `form:"tax_exempt"`
	TestClock        *resources.TestClockID     `form:"test_clock"`
	Expand           []string                   `form:"expand"`
}

// CreateCustomer creates a customer.
type CreateCustomer struct {
	params CreateCustomerParams
}

// NewCreateCustomer starts the request.
func NewCreateCustomer() *CreateCustomer {
	return &CreateCustomer{}
}

// Address sets the billing address.
func (c *CreateCustomer) Address(address resources.Address) *CreateCustomer {
	c.params.Address = &address

	return c
}

// Balance is in the smallest currency unit; negative is a credit.
func (c *CreateCustomer) Balance(balance int64) *CreateCustomer {
	c.params.Balance = &balance

	return c
}

// Description sets a free-form description.
func (c *CreateCustomer) Description(description string) *CreateCustomer {
	c.params.Description = &description

	return c
}

// Email sets the email address.
func (c *CreateCustomer) Email(email string) *CreateCustomer {
	c.params.Email = &email

	return c
}

// InvoicePrefix sets the prefix for generated invoice numbers.
func (c *CreateCustomer) InvoicePrefix(invoicePrefix string) *CreateCustomer {
	c.params.InvoicePrefix = &invoicePrefix

	return c
}

// InvoiceSettings sets the default invoice settings.
func (c *CreateCustomer) InvoiceSettings(invoiceSettings InvoiceSettingsParams) *CreateCustomer {
	c.params.InvoiceSettings = &invoiceSettings

	return c
}

// PaymentMethod sets the payment method.
func (c *CreateCustomer) PaymentMethod(paymentMethod resources.PaymentMethodID) *CreateCustomer {
	c.params.PaymentMethod = &paymentMethod

	return c
}

// Metadata sets, clears (empty value) or unsets (nil value) metadata keys.
func (c *CreateCustomer) Metadata(metadata resources.MetadataParams) *CreateCustomer {
	c.params.Metadata = metadata

	return c
}

// Name sets the full name or business name.
func (c *CreateCustomer) Name(name string) *CreateCustomer {
	c.params.Name = &name

	return c
}

// Phone sets the phone number.
func (c *CreateCustomer) Phone(phone string) *CreateCustomer {
	c.params.Phone = &phone

	return c
}

// PreferredLocales sets the customer's preferred languages, most preferred
// first.
func (c *CreateCustomer) PreferredLocales(preferredLocales []string) *CreateCustomer {
	c.params.PreferredLocales = preferredLocales

	return c
}

// Shipping sets the shipping details.
func (c *CreateCustomer) Shipping(shipping resources.Shipping) *CreateCustomer {
	c.params.Shipping = &shipping

	return c
}

// TaxExempt sets the tax exemption status.
func (c *CreateCustomer) TaxExempt(taxExempt resources.TaxExempt) *CreateCustomer {
	c.params.TaxExempt = &taxExempt

	return c
}

// TestClock attaches the customer to a test clock.
func (c *CreateCustomer) TestClock(testClock resources.TestClockID) *CreateCustomer {
	c.params.TestClock = &testClock

	return c
}

// Expand asks for the named references to be returned as full objects.
func (c *CreateCustomer) Expand(expand ...string) *CreateCustomer {
	c.params.Expand = expand

	return c
}

// Params returns a copy of the parameters set so far.
func (c *CreateCustomer) Params() CreateCustomerParams {
	return c.params
}

// Build implements payapi.Binding.
func (c *CreateCustomer) Build() *payapi.RequestBuilder {
	params := c.params

	return payapi.NewRequest(payapi.MethodPost, "/customers").Form(&params)
}

// Send executes the request and blocks until the response is decoded.
func (c *CreateCustomer) Send(ctx context.Context, client payapi.Client) (*resources.Customer, error) {
	return payapi.Send[resources.Customer](ctx, client, c.Build())
}

// SendAsync starts the request and returns its pending result.
func (c *CreateCustomer) SendAsync(ctx context.Context, client payapi.AsyncClient) *payapi.Future[resources.Customer] {
	return payapi.SendAsync[resources.Customer](ctx, client, c.Build())
}

// RetrieveCustomerParams are the parameters of RetrieveCustomer.
type RetrieveCustomerParams struct {
	Expand []string `form:"expand"`
}

// RetrieveCustomer fetches a customer. A deleted customer is still returned,
// as the Deleted variant of the result.
type RetrieveCustomer struct {
	id     resources.CustomerID
	params RetrieveCustomerParams
}

// NewRetrieveCustomer starts the request.
func NewRetrieveCustomer(id resources.CustomerID) *RetrieveCustomer {
	return &RetrieveCustomer{
		id: id,
	}
}

// Expand asks for the named references to be returned as full objects.
func (r *RetrieveCustomer) Expand(expand ...string) *RetrieveCustomer {
	r.params.Expand = expand

	return r
}

// Params returns a copy of the parameters set so far.
func (r *RetrieveCustomer) Params() RetrieveCustomerParams {
	return r.params
}

// Build implements payapi.Binding.
func (r *RetrieveCustomer) Build() *payapi.RequestBuilder {
	params := r.params

	return payapi.NewRequest(payapi.MethodGet, pathf("/customers/%s", r.id)).Query(&params)
}

// Send executes the request and blocks until the response is decoded.
func (r *RetrieveCustomer) Send(ctx context.Context, client payapi.Client) (*resources.CustomerOrDeleted, error) {
	return payapi.Send[resources.CustomerOrDeleted](ctx, client, r.Build())
}

// SendAsync starts the request and returns its pending result.
func (r *RetrieveCustomer) SendAsync(ctx context.Context, client payapi.AsyncClient) *payapi.Future[resources.CustomerOrDeleted] {
	return payapi.SendAsync[resources.CustomerOrDeleted](ctx, client, r.Build())
}

// UpdateCustomerParams are the parameters of UpdateCustomer.
type UpdateCustomerParams struct {
	Address          *resources.Address       `form:"address"`
	Balance          *int64                   `form:"balance"`
	Description      *string                  `form:"description"`
	Email            *string                  `form:"email"`
	InvoicePrefix    *string                  `form:"invoice_prefix"`
	InvoiceSettings  *InvoiceSettingsParams   `form:"invoice_settings"`
	Metadata         resources.MetadataParams `form:"metadata"`
	Name             *string                  `form:"name"`
	Phone            *string                  `form:"phone"`
	PreferredLocales []string                 `form:"preferred_locales"`
	Shipping         *resources.Shipping      `form:"shipping"`
	TaxExempt        *resources.TaxExempt     `form:"tax_exempt"`
	Expand           []string                 `form:"expand"`
}

// UpdateCustomer changes a customer.
type UpdateCustomer struct {
	id     resources.CustomerID
	params UpdateCustomerParams
}

// NewUpdateCustomer starts the request.
func NewUpdateCustomer(id resources.CustomerID) *UpdateCustomer {
	return &UpdateCustomer{
		id: id,
	}
}

// Address sets the billing address.
func (u *UpdateCustomer) Address(address resources.Address) *UpdateCustomer {
	u.params.Address = &address

	return u
}

// Balance is in the smallest currency unit; negative is a credit.
func (u *UpdateCustomer) Balance(balance int64) *UpdateCustomer {
	u.params.Balance = &balance

	return u
}

// Description sets a free-form description.
func (u *UpdateCustomer) Description(description string) *UpdateCustomer {
	u.params.Description = &description

	return u
}

// Email sets the email address.
func (u *UpdateCustomer) Email(email string) *UpdateCustomer {
	u.params.Email = &email

	return u
}

// InvoicePrefix sets the prefix for generated invoice numbers.
func (u *UpdateCustomer) InvoicePrefix(invoicePrefix string) *UpdateCustomer {
	u.params.InvoicePrefix = &invoicePrefix

	return u
}

// InvoiceSettings sets the default invoice settings.
func (u *UpdateCustomer) InvoiceSettings(invoiceSettings InvoiceSettingsParams) *UpdateCustomer {
	u.params.InvoiceSettings = &invoiceSettings

	return u
}

// Metadata sets, clears (empty value) or unsets (nil value) metadata keys.
func (u *UpdateCustomer) Metadata(metadata resources.MetadataParams) *UpdateCustomer {
	u.params.Metadata = metadata

	return u
}

// Name sets the full name or business name.
func (u *UpdateCustomer) Name(name string) *UpdateCustomer {
	u.params.Name = &name

	return u
}

// Phone sets the phone number.
func (u *UpdateCustomer) Phone(phone string) *UpdateCustomer {
	u.params.Phone = &phone

	return u
}

// PreferredLocales sets the customer's preferred languages, most preferred
// first.
func (u *UpdateCustomer) PreferredLocales(preferredLocales []string) *UpdateCustomer {
	u.params.PreferredLocales = preferredLocales

	return u
}

// Shipping sets the shipping details.
func (u *UpdateCustomer) Shipping(shipping resources.Shipping) *UpdateCustomer {
	u.params.Shipping = &shipping

	return u
}

// TaxExempt sets the tax exemption status.
func (u *UpdateCustomer) TaxExempt(taxExempt resources.TaxExempt) *UpdateCustomer {
	u.params.TaxExempt = &taxExempt

	return u
}

// Expand asks for the named references to be returned as full objects.
func (u *UpdateCustomer) Expand(expand ...string) *UpdateCustomer {
	u.params.Expand = expand

	return u
}

// Params returns a copy of the parameters set so far.
func (u *UpdateCustomer) Params() UpdateCustomerParams {
	return u.params
}

// Build implements payapi.Binding.
func (u *UpdateCustomer) Build() *payapi.RequestBuilder {
	params := u.params

	return payapi.NewRequest(payapi.MethodPost, pathf("/customers/%s", u.id)).Form(&params)
}

// Send executes the request and blocks until the response is decoded.
func (u *UpdateCustomer) Send(ctx context.Context, client payapi.Client) (*resources.Customer, error) {
	return payapi.Send[resources.Customer](ctx, client, u.Build())
}

// SendAsync starts the request and returns its pending result.
func (u *UpdateCustomer) SendAsync(ctx context.Context, client payapi.AsyncClient) *payapi.Future[resources.Customer] {
	return payapi.SendAsync[resources.Customer](ctx, client, u.Build())
}

// DeleteCustomerParams are the parameters of DeleteCustomer.
type DeleteCustomerParams struct{}

// DeleteCustomer permanently deletes a customer and cancels its subscriptions.
type DeleteCustomer struct {
	id     resources.CustomerID
	params DeleteCustomerParams
}

// NewDeleteCustomer starts the request.
func NewDeleteCustomer(id resources.CustomerID) *DeleteCustomer {
	return &DeleteCustomer{
		id: id,
	}
}

// Params returns a copy of the parameters set so far.
func (d *DeleteCustomer) Params() DeleteCustomerParams {
	return d.params
}

// Build implements payapi.Binding.
func (d *DeleteCustomer) Build() *payapi.RequestBuilder {
	return payapi.NewRequest(payapi.MethodDelete, pathf("/customers/%s", d.id))
}

// Send executes the request and blocks until the response is decoded.
func (d *DeleteCustomer) Send(ctx context.Context, client payapi.Client) (*resources.DeletedCustomer, error) {
	return payapi.Send[resources.DeletedCustomer](ctx, client, d.Build())
}

// SendAsync starts the request and returns its pending result.
func (d *DeleteCustomer) SendAsync(ctx context.Context, client payapi.AsyncClient) *payapi.Future[resources.DeletedCustomer] {
	return payapi.SendAsync[resources.DeletedCustomer](ctx, client, d.Build())
}

// ListCustomerParams are the parameters of ListCustomer.
type ListCustomerParams struct {
	Created       *resources.RangeQueryTimestamp `form:"created"`
	Email         *string                        `form:"email"`
	TestClock     *resources.TestClockID         `form:"test_clock"`
	Limit         *int64                         `form:"limit"`
	EndingBefore  *string                        `form:"ending_before"`
	StartingAfter *string                        `form:"starting_after"`
	Expand        []string                       `form:"expand"`
}

// ListCustomer lists customers, newest first.
type ListCustomer struct {
	params ListCustomerParams
}

// NewListCustomer starts the request.
func NewListCustomer() *ListCustomer {
	return &ListCustomer{}
}

// Created filters by creation time.
func (l *ListCustomer) Created(created resources.RangeQueryTimestamp) *ListCustomer {
	l.params.Created = &created

	return l
}

// Email filters by exact email address, case sensitive.
func (l *ListCustomer) Email(email string) *ListCustomer {
	l.params.Email = &email

	return l
}

// TestClock filters by test clock.
func (l *ListCustomer) TestClock(testClock resources.TestClockID) *ListCustomer {
	l.params.TestClock = &testClock

	return l
}

// Limit caps the page size, 1 to 100; the server default is 10.
func (l *ListCustomer) Limit(limit int64) *ListCustomer {
	l.params.Limit = &limit

	return l
}

// EndingBefore is the cursor for the previous page.
func (l *ListCustomer) EndingBefore(endingBefore string) *ListCustomer {
	l.params.EndingBefore = &endingBefore

	return l
}

// StartingAfter is the cursor for the next page; Paginate sets it.
func (l *ListCustomer) StartingAfter(startingAfter string) *ListCustomer {
	l.params.StartingAfter = &startingAfter

	return l
}

// Expand asks for the named references to be returned as full objects.
func (l *ListCustomer) Expand(expand ...string) *ListCustomer {
	l.params.Expand = expand

	return l
}

// Params returns a copy of the parameters set so far.
func (l *ListCustomer) Params() ListCustomerParams {
	return l.params
}

// Build implements payapi.Binding.
func (l *ListCustomer) Build() *payapi.RequestBuilder {
	params := l.params

	return payapi.NewRequest(payapi.MethodGet, "/customers").Query(&params)
}

// Send executes the request and blocks until the response is decoded.
func (l *ListCustomer) Send(ctx context.Context, client payapi.Client) (*payapi.List[resources.Customer], error) {
	return payapi.Send[payapi.List[resources.Customer]](ctx, client, l.Build())
}

// SendAsync starts the request and returns its pending result.
func (l *ListCustomer) SendAsync(ctx context.Context, client payapi.AsyncClient) *payapi.Future[payapi.List[resources.Customer]] {
	return payapi.SendAsync[payapi.List[resources.Customer]](ctx, client, l.Build())
}

// Paginate walks every page, following the starting_after cursor.
func (l *ListCustomer) Paginate(opts ...payapi.PaginatorOption) *payapi.Paginator[resources.Customer] {
	params := l.params
	path := "/customers"

	return payapi.NewPaginator[resources.Customer](func(startingAfter string) *payapi.RequestBuilder {
		page := params
		if startingAfter != "" {
			page.StartingAfter = &startingAfter
		}

		return payapi.NewRequest(payapi.MethodGet, path).Query(&page)
	}, opts...)
}

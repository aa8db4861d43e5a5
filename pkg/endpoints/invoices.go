package endpoints

import (
	"context"

	"github.com/fivetwenty-io/payapi/pkg/payapi"
	"github.com/fivetwenty-io/payapi/pkg/resources"
)

// CreateInvoiceParams are the parameters of CreateInvoice.
type CreateInvoiceParams struct {
	AccountTaxIDs               []resources.TaxIDID                    `form:"account_tax_ids"`
	ApplicationFeeAmount        *int64                                 `form:"application_fee_amount"`
	AutoAdvance                 *bool                                  `form:"auto_advance"`
	AutomaticTax                *AutomaticTaxParams                    `form:"automatic_tax"`
	CollectionMethod            *resources.CollectionMethod            `form:"collection_method"`
	Currency                    *resources.Currency                    `form:"currency"`
	CustomFields                []resources.CustomField                `form:"custom_fields"`
	Customer                    *resources.CustomerID                  `form:"customer"`
	DaysUntilDue                *int64                                 `form:"days_until_due"`
	DefaultPaymentMethod        *resources.PaymentMethodID             `form:"default_payment_method"`
	DefaultTaxRates             []resources.TaxRateID                  `form:"default_tax_rates"`
	Description                 *string                                `form:"description"`
	Discounts                   []DiscountParams                       `form:"discounts"`
	DueDate                     *resources.Timestamp                   `form:"due_date"`
	Footer                      *string                                `form:"footer"`
	Metadata                    resources.MetadataParams               `form:"metadata"`
	PendingInvoiceItemsBehavior *resources.PendingInvoiceItemsBehavior `form:"pending_invoice_items_behavior"`
	StatementDescriptor         *string                                `form:"statement_descriptor"`
	Subscription                *resources.SubscriptionID              `form:"subscription"`
	TransferData                *TransferDataParams                    `form:"transfer_data"`
	Expand                      []string                               `form:"expand"`
}

// CreateInvoice drafts an invoice. Pending invoice items for the customer
// are pulled in unless PendingInvoiceItemsBehavior says otherwise.
type CreateInvoice struct {
	params CreateInvoiceParams
}

// NewCreateInvoice starts the request.
func NewCreateInvoice() *CreateInvoice {
	return &CreateInvoice{}
}

// AccountTaxIDs replaces the account tax IDs. An empty slice clears them.
func (c *CreateInvoice) AccountTaxIDs(accountTaxIDs []resources.TaxIDID) *CreateInvoice {
	c.params.AccountTaxIDs = accountTaxIDs

	return c
}

// ApplicationFeeAmount sets the fee in minor units kept by the platform.
func (c *CreateInvoice) ApplicationFeeAmount(applicationFeeAmount int64) *CreateInvoice {
	c.params.ApplicationFeeAmount = &applicationFeeAmount

	return c
}

// AutoAdvance sets whether the invoice is finalized and collected
// automatically.
func (c *CreateInvoice) AutoAdvance(autoAdvance bool) *CreateInvoice {
	c.params.AutoAdvance = &autoAdvance

	return c
}

// AutomaticTax sets automatic tax calculation.
func (c *CreateInvoice) AutomaticTax(automaticTax AutomaticTaxParams) *CreateInvoice {
	c.params.AutomaticTax = &automaticTax

	return c
}

// CollectionMethod sets how the invoice is collected.
func (c *CreateInvoice) CollectionMethod(collectionMethod resources.CollectionMethod) *CreateInvoice {
	c.params.CollectionMethod = &collectionMethod

	return c
}

// Currency sets the three-letter currency code.
func (c *CreateInvoice) Currency(currency resources.Currency) *CreateInvoice {
	c.params.Currency = &currency

	return c
}

// CustomFields sets up to four name/value pairs shown on the invoice.
func (c *CreateInvoice) CustomFields(customFields []resources.CustomField) *CreateInvoice {
	c.params.CustomFields = customFields

	return c
}

// Customer sets the customer.
func (c *CreateInvoice) Customer(customer resources.CustomerID) *CreateInvoice {
	c.params.Customer = &customer

	return c
}

// DaysUntilDue sets the number of days before a sent invoice is due.
func (c *CreateInvoice) DaysUntilDue(daysUntilDue int64) *CreateInvoice {
	c.params.DaysUntilDue = &daysUntilDue

	return c
}

// DefaultPaymentMethod sets the payment method used when none is given at
// payment time.
func (c *CreateInvoice) DefaultPaymentMethod(defaultPaymentMethod resources.PaymentMethodID) *CreateInvoice {
	c.params.DefaultPaymentMethod = &defaultPaymentMethod

	return c
}

// DefaultTaxRates sets the tax rates applied to lines without their own.
func (c *CreateInvoice) DefaultTaxRates(defaultTaxRates []resources.TaxRateID) *CreateInvoice {
	c.params.DefaultTaxRates = defaultTaxRates

	return c
}

// Description is shown to the customer. An empty string clears it.
func (c *CreateInvoice) Description(description string) *CreateInvoice {
	c.params.Description = &description

	return c
}

// Discounts replaces the invoice discounts. An empty slice removes them all.
func (c *CreateInvoice) Discounts(discounts []DiscountParams) *CreateInvoice {
	c.params.Discounts = discounts

	return c
}

// DueDate sets the due date.
func (c *CreateInvoice) DueDate(dueDate resources.Timestamp) *CreateInvoice {
	c.params.DueDate = &dueDate

	return c
}

// Footer sets the footer printed on the invoice.
func (c *CreateInvoice) Footer(footer string) *CreateInvoice {
	c.params.Footer = &footer

	return c
}

// Metadata sets, clears (empty value) or unsets (nil value) metadata keys.
func (c *CreateInvoice) Metadata(metadata resources.MetadataParams) *CreateInvoice {
	c.params.Metadata = metadata

	return c
}

// PendingInvoiceItemsBehavior sets whether pending invoice items are pulled in.
func (c *CreateInvoice) PendingInvoiceItemsBehavior(pendingInvoiceItemsBehavior resources.PendingInvoiceItemsBehavior) *CreateInvoice {
	c.params.PendingInvoiceItemsBehavior = &pendingInvoiceItemsBehavior

	return c
}

// StatementDescriptor sets the text shown on the customer's statement.
func (c *CreateInvoice) StatementDescriptor(statementDescriptor string) *CreateInvoice {
	c.params.StatementDescriptor = &statementDescriptor

	return c
}

// Subscription sets the subscription.
func (c *CreateInvoice) Subscription(subscription resources.SubscriptionID) *CreateInvoice {
	c.params.Subscription = &subscription

	return c
}

// TransferData sets the connected account that receives the funds.
func (c *CreateInvoice) TransferData(transferData TransferDataParams) *CreateInvoice {
	c.params.TransferData = &transferData

	return c
}

// Expand asks for the named references to be returned as full objects.
func (c *CreateInvoice) Expand(expand ...string) *CreateInvoice {
	c.params.Expand = expand

	return c
}

// Params returns a copy of the parameters set so far.
func (c *CreateInvoice) Params() CreateInvoiceParams {
	return c.params
}

// Build implements payapi.Binding.
func (c *CreateInvoice) Build() *payapi.RequestBuilder {
	params := c.params

	return payapi.NewRequest(payapi.MethodPost, "/invoices").Form(&params)
}

// Send executes the request and blocks until the response is decoded.
func (c *CreateInvoice) Send(ctx context.Context, client payapi.Client) (*resources.Invoice, error) {
	return payapi.Send[resources.Invoice](ctx, client, c.Build())
}

// SendAsync starts the request and returns its pending result.
func (c *CreateInvoice) SendAsync(ctx context.Context, client payapi.AsyncClient) *payapi.Future[resources.Invoice] {
	return payapi.SendAsync[resources.Invoice](ctx, client, c.Build())
}

// RetrieveInvoiceParams are the parameters of RetrieveInvoice.
type RetrieveInvoiceParams struct {
	Expand []string `form:"expand"`
}

// RetrieveInvoice fetches an invoice.
type RetrieveInvoice struct {
	id     resources.InvoiceID
	params RetrieveInvoiceParams
}

// NewRetrieveInvoice starts the request.
func NewRetrieveInvoice(id resources.InvoiceID) *RetrieveInvoice {
	return &RetrieveInvoice{
		id: id,
	}
}

// Expand asks for the named references to be returned as full objects.
func (r *RetrieveInvoice) Expand(expand ...string) *RetrieveInvoice {
	r.params.Expand = expand

	return r
}

// Params returns a copy of the parameters set so far.
func (r *RetrieveInvoice) Params() RetrieveInvoiceParams {
	return r.params
}

// Build implements payapi.Binding.
func (r *RetrieveInvoice) Build() *payapi.RequestBuilder {
	params := r.params

	return payapi.NewRequest(payapi.MethodGet, pathf("/invoices/%s", r.id)).Query(&params)
}

// Send executes the request and blocks until the response is decoded.
func (r *RetrieveInvoice) Send(ctx context.Context, client payapi.Client) (*resources.Invoice, error) {
	return payapi.Send[resources.Invoice](ctx, client, r.Build())
}

// SendAsync starts the request and returns its pending result.
func (r *RetrieveInvoice) SendAsync(ctx context.Context, client payapi.AsyncClient) *payapi.Future[resources.Invoice] {
	return payapi.SendAsync[resources.Invoice](ctx, client, r.Build())
}

// UpdateInvoiceParams are the parameters of UpdateInvoice.
type UpdateInvoiceParams struct {
	AccountTaxIDs        []resources.TaxIDID         `form:"account_tax_ids"`
	ApplicationFeeAmount *int64                      `form:"application_fee_amount"`
	AutoAdvance          *bool                       `form:"auto_advance"`
	AutomaticTax         *AutomaticTaxParams         `form:"automatic_tax"`
	CollectionMethod     *resources.CollectionMethod `form:"collection_method"`
	CustomFields         []resources.CustomField     `form:"custom_fields"`
	DaysUntilDue         *int64                      `form:"days_until_due"`
	DefaultPaymentMethod *resources.PaymentMethodID  `form:"default_payment_method"`
	DefaultTaxRates      []resources.TaxRateID       `form:"default_tax_rates"`
	Description          *string                     `form:"description"`
	Discounts            []DiscountParams            `form:"discounts"`
	DueDate              *resources.Timestamp        `form:"due_date"`
	Footer               *string                     `form:"footer"`
	Metadata             resources.MetadataParams    `form:"metadata"`
	StatementDescriptor  *string                     `form:"statement_descriptor"`
	TransferData         *TransferDataParams         `form:"transfer_data"`
	Expand               []string                    `form:"expand"`
}

// UpdateInvoice changes a draft invoice. Finalized invoices accept only a
// subset of fields; the server rejects the rest.
type UpdateInvoice struct {
	id     resources.InvoiceID
	params UpdateInvoiceParams
}

// NewUpdateInvoice starts the request.
func NewUpdateInvoice(id resources.InvoiceID) *UpdateInvoice {
	return &UpdateInvoice{
		id: id,
	}
}

// AccountTaxIDs replaces the account tax IDs. An empty slice clears them.
func (u *UpdateInvoice) AccountTaxIDs(accountTaxIDs []resources.TaxIDID) *UpdateInvoice {
	u.params.AccountTaxIDs = accountTaxIDs

	return u
}

// ApplicationFeeAmount sets the fee in minor units kept by the platform.
func (u *UpdateInvoice) ApplicationFeeAmount(applicationFeeAmount int64) *UpdateInvoice {
	u.params.ApplicationFeeAmount = &applicationFeeAmount

	return u
}

// AutoAdvance sets whether the invoice is finalized and collected
// automatically.
func (u *UpdateInvoice) AutoAdvance(autoAdvance bool) *UpdateInvoice {
	u.params.AutoAdvance = &autoAdvance

	return u
}

// AutomaticTax sets automatic tax calculation.
func (u *UpdateInvoice) AutomaticTax(automaticTax AutomaticTaxParams) *UpdateInvoice {
	u.params.AutomaticTax = &automaticTax

	return u
}

// CollectionMethod sets how the invoice is collected.
func (u *UpdateInvoice) CollectionMethod(collectionMethod resources.CollectionMethod) *UpdateInvoice {
	u.params.CollectionMethod = &collectionMethod

	return u
}

// CustomFields sets up to four name/value pairs shown on the invoice.
func (u *UpdateInvoice) CustomFields(customFields []resources.CustomField) *UpdateInvoice {
	u.params.CustomFields = customFields

	return u
}

// DaysUntilDue sets the number of days before a sent invoice is due.
func (u *UpdateInvoice) DaysUntilDue(daysUntilDue int64) *UpdateInvoice {
	u.params.DaysUntilDue = &daysUntilDue

	return u
}

// DefaultPaymentMethod sets the payment method used when none is given at
// payment time.
func (u *UpdateInvoice) DefaultPaymentMethod(defaultPaymentMethod resources.PaymentMethodID) *UpdateInvoice {
	u.params.DefaultPaymentMethod = &defaultPaymentMethod

	return u
}

// DefaultTaxRates sets the tax rates applied to lines without their own.
func (u *UpdateInvoice) DefaultTaxRates(defaultTaxRates []resources.TaxRateID) *UpdateInvoice {
	u.params.DefaultTaxRates = defaultTaxRates

	return u
}

// Description is shown to the customer. An empty string clears it.
func (u *UpdateInvoice) Description(description string) *UpdateInvoice {
	u.params.Description = &description

	return u
}

// Discounts replaces the invoice discounts. An empty slice removes them all.
func (u *UpdateInvoice) Discounts(discounts []DiscountParams) *UpdateInvoice {
	u.params.Discounts = discounts

	return u
}

// DueDate sets the due date.
func (u *UpdateInvoice) DueDate(dueDate resources.Timestamp) *UpdateInvoice {
	u.params.DueDate = &dueDate

	return u
}

// Footer sets the footer printed on the invoice.
func (u *UpdateInvoice) Footer(footer string) *UpdateInvoice {
	u.params.Footer = &footer

	return u
}

// Metadata sets, clears (empty value) or unsets (nil value) metadata keys.
func (u *UpdateInvoice) Metadata(metadata resources.MetadataParams) *UpdateInvoice {
	u.params.Metadata = metadata

	return u
}

// StatementDescriptor sets the text shown on the customer's statement.
func (u *UpdateInvoice) StatementDescriptor(statementDescriptor string) *UpdateInvoice {
	u.params.StatementDescriptor = &statementDescriptor

	return u
}

// TransferData sets the connected account that receives the funds.
func (u *UpdateInvoice) TransferData(transferData TransferDataParams) *UpdateInvoice {
	u.params.TransferData = &transferData

	return u
}

// Expand asks for the named references to be returned as full objects.
func (u *UpdateInvoice) Expand(expand ...string) *UpdateInvoice {
	u.params.Expand = expand

	return u
}

// Params returns a copy of the parameters set so far.
func (u *UpdateInvoice) Params() UpdateInvoiceParams {
	return u.params
}

// Build implements payapi.Binding.
func (u *UpdateInvoice) Build() *payapi.RequestBuilder {
	params := u.params

	return payapi.NewRequest(payapi.MethodPost, pathf("/invoices/%s", u.id)).Form(&params)
}

// Send executes the request and blocks until the response is decoded.
func (u *UpdateInvoice) Send(ctx context.Context, client payapi.Client) (*resources.Invoice, error) {
	return payapi.Send[resources.Invoice](ctx, client, u.Build())
}

// SendAsync starts the request and returns its pending result.
func (u *UpdateInvoice) SendAsync(ctx context.Context, client payapi.AsyncClient) *payapi.Future[resources.Invoice] {
	return payapi.SendAsync[resources.Invoice](ctx, client, u.Build())
}

// DeleteInvoiceParams are the parameters of DeleteInvoice.
type DeleteInvoiceParams struct{}

// DeleteInvoice permanently deletes a draft invoice.
type DeleteInvoice struct {
	id     resources.InvoiceID
	params DeleteInvoiceParams
}

// NewDeleteInvoice starts the request.
func NewDeleteInvoice(id resources.InvoiceID) *DeleteInvoice {
	return &DeleteInvoice{
		id: id,
	}
}

// Params returns a copy of the parameters set so far.
func (d *DeleteInvoice) Params() DeleteInvoiceParams {
	return d.params
}

// Build implements payapi.Binding.
func (d *DeleteInvoice) Build() *payapi.RequestBuilder {
	return payapi.NewRequest(payapi.MethodDelete, pathf("/invoices/%s", d.id))
}

// Send executes the request and blocks until the response is decoded.
func (d *DeleteInvoice) Send(ctx context.Context, client payapi.Client) (*resources.DeletedInvoice, error) {
	return payapi.Send[resources.DeletedInvoice](ctx, client, d.Build())
}

// SendAsync starts the request and returns its pending result.
func (d *DeleteInvoice) SendAsync(ctx context.Context, client payapi.AsyncClient) *payapi.Future[resources.DeletedInvoice] {
	return payapi.SendAsync[resources.DeletedInvoice](ctx, client, d.Build())
}

// ListInvoiceParams are the parameters of ListInvoice.
type ListInvoiceParams struct {
	Customer         *resources.CustomerID          `form:"customer"`
	Status           *resources.InvoiceStatus       `form:"status"`
	Subscription     *resources.SubscriptionID      `form:"subscription"`
	CollectionMethod *resources.CollectionMethod    `form:"collection_method"`
	Created          *resources.RangeQueryTimestamp `form:"created"`
	DueDate          *resources.RangeQueryTimestamp `form:"due_date"`
	Limit            *int64                         `form:"limit"`
	EndingBefore     *string                        `form:"ending_before"`
	StartingAfter    *string                        `form:"starting_after"`
	Expand           []string                       `form:"expand"`
}

// ListInvoice lists invoices, newest first.
type ListInvoice struct {
	params ListInvoiceParams
}

// NewListInvoice starts the request.
func NewListInvoice() *ListInvoice {
	return &ListInvoice{}
}

// Customer only returns invoices for this customer.
func (l *ListInvoice) Customer(customer resources.CustomerID) *ListInvoice {
	l.params.Customer = &customer

	return l
}

// Status only returns invoices in this status.
func (l *ListInvoice) Status(status resources.InvoiceStatus) *ListInvoice {
	l.params.Status = &status

	return l
}

// Subscription only returns invoices for this subscription.
func (l *ListInvoice) Subscription(subscription resources.SubscriptionID) *ListInvoice {
	l.params.Subscription = &subscription

	return l
}

// CollectionMethod filters by collection method.
func (l *ListInvoice) CollectionMethod(collectionMethod resources.CollectionMethod) *ListInvoice {
	l.params.CollectionMethod = &collectionMethod

	return l
}

// Created filters on creation time, exactly or by range.
func (l *ListInvoice) Created(created resources.RangeQueryTimestamp) *ListInvoice {
	l.params.Created = &created

	return l
}

// DueDate filters by due date.
func (l *ListInvoice) DueDate(dueDate resources.RangeQueryTimestamp) *ListInvoice {
	l.params.DueDate = &dueDate

	return l
}

// Limit caps the page size, 1 to 100; the server default is 10.
func (l *ListInvoice) Limit(limit int64) *ListInvoice {
	l.params.Limit = &limit

	return l
}

// EndingBefore is the cursor for the previous page.
func (l *ListInvoice) EndingBefore(endingBefore string) *ListInvoice {
	l.params.EndingBefore = &endingBefore

	return l
}

// StartingAfter is the cursor for the next page; Paginate sets it.
func (l *ListInvoice) StartingAfter(startingAfter string) *ListInvoice {
	l.params.StartingAfter = &startingAfter

	return l
}

// Expand asks for the named references to be returned as full objects.
func (l *ListInvoice) Expand(expand ...string) *ListInvoice {
	l.params.Expand = expand

	return l
}

// Params returns a copy of the parameters set so far.
func (l *ListInvoice) Params() ListInvoiceParams {
	return l.params
}

// Build implements payapi.Binding.
func (l *ListInvoice) Build() *payapi.RequestBuilder {
	params := l.params

	return payapi.NewRequest(payapi.MethodGet, "/invoices").Query(&params)
}

// Send executes the request and blocks until the response is decoded.
func (l *ListInvoice) Send(ctx context.Context, client payapi.Client) (*payapi.List[resources.Invoice], error) {
	return payapi.Send[payapi.List[resources.Invoice]](ctx, client, l.Build())
}

// SendAsync starts the request and returns its pending result.
func (l *ListInvoice) SendAsync(ctx context.Context, client payapi.AsyncClient) *payapi.Future[payapi.List[resources.Invoice]] {
	return payapi.SendAsync[payapi.List[resources.Invoice]](ctx, client, l.Build())
}

// Paginate walks every page, following the starting_after cursor.
func (l *ListInvoice) Paginate(opts ...payapi.PaginatorOption) *payapi.Paginator[resources.Invoice] {
	params := l.params
	path := "/invoices"

	return payapi.NewPaginator[resources.Invoice](func(startingAfter string) *payapi.RequestBuilder {
		page := params
		if startingAfter != "" {
			page.StartingAfter = &startingAfter
		}

		return payapi.NewRequest(payapi.MethodGet, path).Query(&page)
	}, opts...)
}

// FinalizeInvoiceParams are the parameters of FinalizeInvoice.
type FinalizeInvoiceParams struct {
	AutoAdvance *bool    `form:"auto_advance"`
	Expand      []string `form:"expand"`
}

// FinalizeInvoice moves a draft invoice to open.
type FinalizeInvoice struct {
	id     resources.InvoiceID
	params FinalizeInvoiceParams
}

// NewFinalizeInvoice starts the request.
func NewFinalizeInvoice(id resources.InvoiceID) *FinalizeInvoice {
	return &FinalizeInvoice{
		id: id,
	}
}

// AutoAdvance controls whether the invoice is collected automatically after
// finalizing.
func (f *FinalizeInvoice) AutoAdvance(autoAdvance bool) *FinalizeInvoice {
	f.params.AutoAdvance = &autoAdvance

	return f
}

// Expand asks for the named references to be returned as full objects.
func (f *FinalizeInvoice) Expand(expand ...string) *FinalizeInvoice {
	f.params.Expand = expand

	return f
}

// Params returns a copy of the parameters set so far.
func (f *FinalizeInvoice) Params() FinalizeInvoiceParams {
	return f.params
}

// Build implements payapi.Binding.
func (f *FinalizeInvoice) Build() *payapi.RequestBuilder {
	params := f.params

	return payapi.NewRequest(payapi.MethodPost, pathf("/invoices/%s/finalize", f.id)).Form(&params)
}

// Send executes the request and blocks until the response is decoded.
func (f *FinalizeInvoice) Send(ctx context.Context, client payapi.Client) (*resources.Invoice, error) {
	return payapi.Send[resources.Invoice](ctx, client, f.Build())
}

// SendAsync starts the request and returns its pending result.
func (f *FinalizeInvoice) SendAsync(ctx context.Context, client payapi.AsyncClient) *payapi.Future[resources.Invoice] {
	return payapi.SendAsync[resources.Invoice](ctx, client, f.Build())
}

// PayInvoiceParams are the parameters of PayInvoice.
type PayInvoiceParams struct {
	Forgive       *bool                      `form:"forgive"`
	Mandate       *resources.MandateID       `form:"mandate"`
	OffSession    *bool                      `form:"off_session"`
	PaidOutOfBand *bool                      `form:"paid_out_of_band"`
	PaymentMethod *resources.PaymentMethodID `form:"payment_method"`
	Source        *string                    `form:"source"`
	Expand        []string                   `form:"expand"`
}

// PayInvoice attempts payment outside the normal collection schedule.
type PayInvoice struct {
	id     resources.InvoiceID
	params PayInvoiceParams
}

// NewPayInvoice starts the request.
func NewPayInvoice(id resources.InvoiceID) *PayInvoice {
	return &PayInvoice{
		id: id,
	}
}

// Forgive sets whether a partial payment settles the whole invoice.
func (p *PayInvoice) Forgive(forgive bool) *PayInvoice {
	p.params.Forgive = &forgive

	return p
}

// Mandate sets the mandate authorizing the payment.
func (p *PayInvoice) Mandate(mandate resources.MandateID) *PayInvoice {
	p.params.Mandate = &mandate

	return p
}

// OffSession sets whether the customer is absent during payment.
func (p *PayInvoice) OffSession(offSession bool) *PayInvoice {
	p.params.OffSession = &offSession

	return p
}

// PaidOutOfBand marks the invoice paid without collecting funds.
func (p *PayInvoice) PaidOutOfBand(paidOutOfBand bool) *PayInvoice {
	p.params.PaidOutOfBand = &paidOutOfBand

	return p
}

// PaymentMethod sets the payment method.
func (p *PayInvoice) PaymentMethod(paymentMethod resources.PaymentMethodID) *PayInvoice {
	p.params.PaymentMethod = &paymentMethod

	return p
}

// Source sets the payment source to charge.
func (p *PayInvoice) Source(source string) *PayInvoice {
	p.params.Source = &source

	return p
}

// Expand asks for the named references to be returned as full objects.
func (p *PayInvoice) Expand(expand ...string) *PayInvoice {
	p.params.Expand = expand

	return p
}

// Params returns a copy of the parameters set so far.
func (p *PayInvoice) Params() PayInvoiceParams {
	return p.params
}

// Build implements payapi.Binding.
func (p *PayInvoice) Build() *payapi.RequestBuilder {
	params := p.params

	return payapi.NewRequest(payapi.MethodPost, pathf("/invoices/%s/pay", p.id)).Form(&params)
}

// Send executes the request and blocks until the response is decoded.
func (p *PayInvoice) Send(ctx context.Context, client payapi.Client) (*resources.Invoice, error) {
	return payapi.Send[resources.Invoice](ctx, client, p.Build())
}

// SendAsync starts the request and returns its pending result.
func (p *PayInvoice) SendAsync(ctx context.Context, client payapi.AsyncClient) *payapi.Future[resources.Invoice] {
	return payapi.SendAsync[resources.Invoice](ctx, client, p.Build())
}

// VoidInvoiceParams are the parameters of VoidInvoice.
type VoidInvoiceParams struct {
	Expand []string `form:"expand"`
}

// VoidInvoice voids a finalized invoice.
type VoidInvoice struct {
	id     resources.InvoiceID
	params VoidInvoiceParams
}

// NewVoidInvoice starts the request.
func NewVoidInvoice(id resources.InvoiceID) *VoidInvoice {
	return &VoidInvoice{
		id: id,
	}
}

// Expand asks for the named references to be returned as full objects.
func (v *VoidInvoice) Expand(expand ...string) *VoidInvoice {
	v.params.Expand = expand

	return v
}

// Params returns a copy of the parameters set so far.
func (v *VoidInvoice) Params() VoidInvoiceParams {
	return v.params
}

// Build implements payapi.Binding.
func (v *VoidInvoice) Build() *payapi.RequestBuilder {
	params := v.params

	return payapi.NewRequest(payapi.MethodPost, pathf("/invoices/%s/void", v.id)).Form(&params)
}

// Send executes the request and blocks until the response is decoded.
func (v *VoidInvoice) Send(ctx context.Context, client payapi.Client) (*resources.Invoice, error) {
	return payapi.Send[resources.Invoice](ctx, client, v.Build())
}

// SendAsync starts the request and returns its pending result.
func (v *VoidInvoice) SendAsync(ctx context.Context, client payapi.AsyncClient) *payapi.Future[resources.Invoice] {
	return payapi.SendAsync[resources.Invoice](ctx, client, v.Build())
}

// MarkUncollectibleInvoiceParams are the parameters of MarkUncollectibleInvoice.
type MarkUncollectibleInvoiceParams struct {
	Expand []string `form:"expand"`
}

// MarkUncollectibleInvoice writes off an open invoice.
type MarkUncollectibleInvoice struct {
	id     resources.InvoiceID
	params MarkUncollectibleInvoiceParams
}

// NewMarkUncollectibleInvoice starts the request.
func NewMarkUncollectibleInvoice(id resources.InvoiceID) *MarkUncollectibleInvoice {
	return &MarkUncollectibleInvoice{
		id: id,
	}
}

// Expand asks for the named references to be returned as full objects.
func (m *MarkUncollectibleInvoice) Expand(expand ...string) *MarkUncollectibleInvoice {
	m.params.Expand = expand

	return m
}

// Params returns a copy of the parameters set so far.
func (m *MarkUncollectibleInvoice) Params() MarkUncollectibleInvoiceParams {
	return m.params
}

// Build implements payapi.Binding.
func (m *MarkUncollectibleInvoice) Build() *payapi.RequestBuilder {
	params := m.params

	return payapi.NewRequest(payapi.MethodPost, pathf("/invoices/%s/mark_uncollectible", m.id)).Form(&params)
}

// Send executes the request and blocks until the response is decoded.
func (m *MarkUncollectibleInvoice) Send(ctx context.Context, client payapi.Client) (*resources.Invoice, error) {
	return payapi.Send[resources.Invoice](ctx, client, m.Build())
}

// SendAsync starts the request and returns its pending result.
func (m *MarkUncollectibleInvoice) SendAsync(ctx context.Context, client payapi.AsyncClient) *payapi.Future[resources.Invoice] {
	return payapi.SendAsync[resources.Invoice](ctx, client, m.Build())
}

// SendInvoiceParams are the parameters of SendInvoice.
type SendInvoiceParams struct {
	Expand []string `form:"expand"`
}

// SendInvoice emails an invoice to the customer.
type SendInvoice struct {
	id     resources.InvoiceID
	params SendInvoiceParams
}

// NewSendInvoice starts the request.
func NewSendInvoice(id resources.InvoiceID) *SendInvoice {
	return &SendInvoice{
		id: id,
	}
}

// Expand asks for the named references to be returned as full objects.
func (s *SendInvoice) Expand(expand ...string) *SendInvoice {
	s.params.Expand = expand

	return s
}

// Params returns a copy of the parameters set so far.
func (s *SendInvoice) Params() SendInvoiceParams {
	return s.params
}

// Build implements payapi.Binding.
func (s *SendInvoice) Build() *payapi.RequestBuilder {
	params := s.params

	return payapi.NewRequest(payapi.MethodPost, pathf("/invoices/%s/send", s.id)).Form(&params)
}

// Send executes the request and blocks until the response is decoded.
func (s *SendInvoice) Send(ctx context.Context, client payapi.Client) (*resources.Invoice, error) {
	return payapi.Send[resources.Invoice](ctx, client, s.Build())
}

// SendAsync starts the request and returns its pending result.
func (s *SendInvoice) SendAsync(ctx context.Context, client payapi.AsyncClient) *payapi.Future[resources.Invoice] {
	return payapi.SendAsync[resources.Invoice](ctx, client, s.Build())
}

// UpcomingInvoiceParams are the parameters of UpcomingInvoice.
type UpcomingInvoiceParams struct {
	Coupon                         *resources.CouponID           `form:"coupon"`
	Currency                       *resources.Currency           `form:"currency"`
	Customer                       *resources.CustomerID         `form:"customer"`
	Discounts                      []DiscountParams              `form:"discounts"`
	InvoiceItems                   []UpcomingInvoiceItemParams   `form:"invoice_items"`
	Subscription                   *resources.SubscriptionID     `form:"subscription"`
	SubscriptionBillingCycleAnchor *resources.BillingCycleAnchor `form:"subscription_billing_cycle_anchor"`
	SubscriptionCancelAt           *resources.Timestamp          `form:"subscription_cancel_at"`
	SubscriptionCancelAtPeriodEnd  *bool                         `form:"subscription_cancel_at_period_end"`
	SubscriptionCancelNow          *bool                         `form:"subscription_cancel_now"`
	SubscriptionDefaultTaxRates    []resources.TaxRateID         `form:"subscription_default_tax_rates"`
	SubscriptionItems              []SubscriptionItemParams      `form:"subscription_items"`
	SubscriptionProrationBehavior  *resources.ProrationBehavior  `form:"subscription_proration_behavior"`
	SubscriptionProrationDate      *resources.Timestamp          `form:"subscription_proration_date"`
	SubscriptionStartDate          *resources.Timestamp          `form:"subscription_start_date"`
	SubscriptionTrialEnd           *resources.TrialEnd           `form:"subscription_trial_end"`
	Expand                         []string                      `form:"expand"`
}

// UpcomingInvoice previews the next invoice for a customer or subscription.
// The result has no ID. Subscription* fields preview a change without applying it.
type UpcomingInvoice struct {
	params UpcomingInvoiceParams
}

// NewUpcomingInvoice starts the request.
func NewUpcomingInvoice() *UpcomingInvoice {
	return &UpcomingInvoice{}
}

// Coupon sets a coupon to apply in the preview.
func (u *UpcomingInvoice) Coupon(coupon resources.CouponID) *UpcomingInvoice {
	u.params.Coupon = &coupon

	return u
}

// Currency sets the three-letter currency code.
func (u *UpcomingInvoice) Currency(currency resources.Currency) *UpcomingInvoice {
	u.params.Currency = &currency

	return u
}

// Customer sets the customer.
func (u *UpcomingInvoice) Customer(customer resources.CustomerID) *UpcomingInvoice {
	u.params.Customer = &customer

	return u
}

// Discounts sets the discounts to apply in the preview.
func (u *UpcomingInvoice) Discounts(discounts []DiscountParams) *UpcomingInvoice {
	u.params.Discounts = discounts

	return u
}

// InvoiceItems sets pending invoice items to add or change in the preview.
func (u *UpcomingInvoice) InvoiceItems(invoiceItems []UpcomingInvoiceItemParams) *UpcomingInvoice {
	u.params.InvoiceItems = invoiceItems

	return u
}

// Subscription sets the subscription.
func (u *UpcomingInvoice) Subscription(subscription resources.SubscriptionID) *UpcomingInvoice {
	u.params.Subscription = &subscription

	return u
}

// SubscriptionBillingCycleAnchor previews a new anchor: now, unchanged or a timestamp.
func (u *UpcomingInvoice) SubscriptionBillingCycleAnchor(subscriptionBillingCycleAnchor resources.BillingCycleAnchor) *UpcomingInvoice {
	u.params.SubscriptionBillingCycleAnchor = &subscriptionBillingCycleAnchor

	return u
}

// SubscriptionCancelAt sets when the previewed subscription is cancelled.
func (u *UpcomingInvoice) SubscriptionCancelAt(subscriptionCancelAt resources.Timestamp) *UpcomingInvoice {
	u.params.SubscriptionCancelAt = &subscriptionCancelAt

	return u
}

// SubscriptionCancelAtPeriodEnd sets whether the previewed subscription ends
// with the current period.
func (u *UpcomingInvoice) SubscriptionCancelAtPeriodEnd(subscriptionCancelAtPeriodEnd bool) *UpcomingInvoice {
	u.params.SubscriptionCancelAtPeriodEnd = &subscriptionCancelAtPeriodEnd

	return u
}

// SubscriptionCancelNow sets whether the previewed subscription is cancelled
// immediately.
func (u *UpcomingInvoice) SubscriptionCancelNow(subscriptionCancelNow bool) *UpcomingInvoice {
	u.params.SubscriptionCancelNow = &subscriptionCancelNow

	return u
}

// SubscriptionDefaultTaxRates sets the previewed subscription's default tax
// rates.
func (u *UpcomingInvoice) SubscriptionDefaultTaxRates(subscriptionDefaultTaxRates []resources.TaxRateID) *UpcomingInvoice {
	u.params.SubscriptionDefaultTaxRates = subscriptionDefaultTaxRates

	return u
}

// SubscriptionItems sets the previewed subscription items.
func (u *UpcomingInvoice) SubscriptionItems(subscriptionItems []SubscriptionItemParams) *UpcomingInvoice {
	u.params.SubscriptionItems = subscriptionItems

	return u
}

// SubscriptionProrationBehavior sets how changes in the preview are prorated.
func (u *UpcomingInvoice) SubscriptionProrationBehavior(subscriptionProrationBehavior resources.ProrationBehavior) *UpcomingInvoice {
	u.params.SubscriptionProrationBehavior = &subscriptionProrationBehavior

	return u
}

// SubscriptionProrationDate sets the time prorations are calculated at.
func (u *UpcomingInvoice) SubscriptionProrationDate(subscriptionProrationDate resources.Timestamp) *UpcomingInvoice {
	u.params.SubscriptionProrationDate = &subscriptionProrationDate

	return u
}

// SubscriptionStartDate sets when the previewed subscription starts.
func (u *UpcomingInvoice) SubscriptionStartDate(subscriptionStartDate resources.Timestamp) *UpcomingInvoice {
	u.params.SubscriptionStartDate = &subscriptionStartDate

	return u
}

// SubscriptionTrialEnd previews ending the trial now or at a timestamp.
func (u *UpcomingInvoice) SubscriptionTrialEnd(subscriptionTrialEnd resources.TrialEnd) *UpcomingInvoice {
	u.params.SubscriptionTrialEnd = &subscriptionTrialEnd

	return u
}

// Expand asks for the named references to be returned as full objects.
func (u *UpcomingInvoice) Expand(expand ...string) *UpcomingInvoice {
	u.params.Expand = expand

	return u
}

// Params returns a copy of the parameters set so far.
func (u *UpcomingInvoice) Params() UpcomingInvoiceParams {
	return u.params
}

// Build implements payapi.Binding.
func (u *UpcomingInvoice) Build() *payapi.RequestBuilder {
	params := u.params

	return payapi.NewRequest(payapi.MethodGet, "/invoices/upcoming").Query(&params)
}

// Send executes the request and blocks until the response is decoded.
func (u *UpcomingInvoice) Send(ctx context.Context, client payapi.Client) (*resources.Invoice, error) {
	return payapi.Send[resources.Invoice](ctx, client, u.Build())
}

// SendAsync starts the request and returns its pending result.
func (u *UpcomingInvoice) SendAsync(ctx context.Context, client payapi.AsyncClient) *payapi.Future[resources.Invoice] {
	return payapi.SendAsync[resources.Invoice](ctx, client, u.Build())
}

// UpcomingLinesInvoiceParams are the parameters of UpcomingLinesInvoice.
type UpcomingLinesInvoiceParams struct {
	UpcomingInvoiceParams

	Limit         *int64  `form:"limit"`
	EndingBefore  *string `form:"ending_before"`
	StartingAfter *string `form:"starting_after"`
}

// UpcomingLinesInvoice lists the line items of an upcoming invoice preview.
type UpcomingLinesInvoice struct {
	params UpcomingLinesInvoiceParams
}

// NewUpcomingLinesInvoice starts the request.
func NewUpcomingLinesInvoice() *UpcomingLinesInvoice {
	return &UpcomingLinesInvoice{}
}

// Coupon sets a coupon to apply in the preview.
func (u *UpcomingLinesInvoice) Coupon(coupon resources.CouponID) *UpcomingLinesInvoice {
	u.params.UpcomingInvoiceParams.Coupon = &coupon

	return u
}

// Currency sets the three-letter currency code.
func (u *UpcomingLinesInvoice) Currency(currency resources.Currency) *UpcomingLinesInvoice {
	u.params.UpcomingInvoiceParams.Currency = &currency

	return u
}

// Customer sets the customer.
func (u *UpcomingLinesInvoice) Customer(customer resources.CustomerID) *UpcomingLinesInvoice {
	u.params.UpcomingInvoiceParams.Customer = &customer

	return u
}

// Discounts sets the discounts to apply in the preview.
func (u *UpcomingLinesInvoice) Discounts(discounts []DiscountParams) *UpcomingLinesInvoice {
	u.params.UpcomingInvoiceParams.Discounts = discounts

	return u
}

// InvoiceItems sets pending invoice items to add or change in the preview.
func (u *UpcomingLinesInvoice) InvoiceItems(invoiceItems []UpcomingInvoiceItemParams) *UpcomingLinesInvoice {
	u.params.UpcomingInvoiceParams.InvoiceItems = invoiceItems

	return u
}

// Subscription sets the subscription.
func (u *UpcomingLinesInvoice) Subscription(subscription resources.SubscriptionID) *UpcomingLinesInvoice {
	u.params.UpcomingInvoiceParams.Subscription = &subscription

	return u
}

// SubscriptionBillingCycleAnchor previews a new anchor: now, unchanged or a timestamp.
func (u *UpcomingLinesInvoice) SubscriptionBillingCycleAnchor(subscriptionBillingCycleAnchor resources.BillingCycleAnchor) *UpcomingLinesInvoice {
	u.params.UpcomingInvoiceParams.SubscriptionBillingCycleAnchor = &subscriptionBillingCycleAnchor

	return u
}

// SubscriptionCancelAt sets when the previewed subscription is cancelled.
func (u *UpcomingLinesInvoice) SubscriptionCancelAt(subscriptionCancelAt resources.Timestamp) *UpcomingLinesInvoice {
	u.params.UpcomingInvoiceParams.SubscriptionCancelAt = &subscriptionCancelAt

	return u
}

// SubscriptionCancelAtPeriodEnd sets whether the previewed subscription ends
// with the current period.
func (u *UpcomingLinesInvoice) SubscriptionCancelAtPeriodEnd(subscriptionCancelAtPeriodEnd bool) *UpcomingLinesInvoice {
	u.params.UpcomingInvoiceParams.SubscriptionCancelAtPeriodEnd = &subscriptionCancelAtPeriodEnd

	return u
}

// SubscriptionCancelNow sets whether the previewed subscription is cancelled
// immediately.
func (u *UpcomingLinesInvoice) SubscriptionCancelNow(subscriptionCancelNow bool) *UpcomingLinesInvoice {
	u.params.UpcomingInvoiceParams.SubscriptionCancelNow = &subscriptionCancelNow

	return u
}

// SubscriptionDefaultTaxRates sets the previewed subscription's default tax
// rates.
func (u *UpcomingLinesInvoice) SubscriptionDefaultTaxRates(subscriptionDefaultTaxRates []resources.TaxRateID) *UpcomingLinesInvoice {
	u.params.UpcomingInvoiceParams.SubscriptionDefaultTaxRates = subscriptionDefaultTaxRates

	return u
}

// SubscriptionItems sets the previewed subscription items.
func (u *UpcomingLinesInvoice) SubscriptionItems(subscriptionItems []SubscriptionItemParams) *UpcomingLinesInvoice {
	u.params.UpcomingInvoiceParams.SubscriptionItems = subscriptionItems

	return u
}

// SubscriptionProrationBehavior sets how changes in the preview are prorated.
func (u *UpcomingLinesInvoice) SubscriptionProrationBehavior(subscriptionProrationBehavior resources.ProrationBehavior) *UpcomingLinesInvoice {
	u.params.UpcomingInvoiceParams.SubscriptionProrationBehavior = &subscriptionProrationBehavior

	return u
}

// SubscriptionProrationDate sets the time prorations are calculated at.
func (u *UpcomingLinesInvoice) SubscriptionProrationDate(subscriptionProrationDate resources.Timestamp) *UpcomingLinesInvoice {
	u.params.UpcomingInvoiceParams.SubscriptionProrationDate = &subscriptionProrationDate

	return u
}

// SubscriptionStartDate sets when the previewed subscription starts.
func (u *UpcomingLinesInvoice) SubscriptionStartDate(subscriptionStartDate resources.Timestamp) *UpcomingLinesInvoice {
	u.params.UpcomingInvoiceParams.SubscriptionStartDate = &subscriptionStartDate

	return u
}

// SubscriptionTrialEnd previews ending the trial now or at a timestamp.
func (u *UpcomingLinesInvoice) SubscriptionTrialEnd(subscriptionTrialEnd resources.TrialEnd) *UpcomingLinesInvoice {
	u.params.UpcomingInvoiceParams.SubscriptionTrialEnd = &subscriptionTrialEnd

	return u
}

// Limit caps the page size, 1 to 100; the server default is 10.
func (u *UpcomingLinesInvoice) Limit(limit int64) *UpcomingLinesInvoice {
	u.params.Limit = &limit

	return u
}

// EndingBefore is the cursor for the previous page.
func (u *UpcomingLinesInvoice) EndingBefore(endingBefore string) *UpcomingLinesInvoice {
	u.params.EndingBefore = &endingBefore

	return u
}

// StartingAfter is the cursor for the next page; Paginate sets it.
func (u *UpcomingLinesInvoice) StartingAfter(startingAfter string) *UpcomingLinesInvoice {
	u.params.StartingAfter = &startingAfter

	return u
}

// Params returns a copy of the parameters set so far.
func (u *UpcomingLinesInvoice) Params() UpcomingLinesInvoiceParams {
	return u.params
}

// Build implements payapi.Binding.
func (u *UpcomingLinesInvoice) Build() *payapi.RequestBuilder {
	params := u.params

	return payapi.NewRequest(payapi.MethodGet, "/invoices/upcoming/lines").Query(&params)
}

// Send executes the request and blocks until the response is decoded.
func (u *UpcomingLinesInvoice) Send(ctx context.Context, client payapi.Client) (*payapi.List[resources.InvoiceLineItem], error) {
	return payapi.Send[payapi.List[resources.InvoiceLineItem]](ctx, client, u.Build())
}

// SendAsync starts the request and returns its pending result.
func (u *UpcomingLinesInvoice) SendAsync(ctx context.Context, client payapi.AsyncClient) *payapi.Future[payapi.List[resources.InvoiceLineItem]] {
	return payapi.SendAsync[payapi.List[resources.InvoiceLineItem]](ctx, client, u.Build())
}

// Paginate walks every page, following the starting_after cursor.
func (u *UpcomingLinesInvoice) Paginate(opts ...payapi.PaginatorOption) *payapi.Paginator[resources.InvoiceLineItem] {
	params := u.params
	path := "/invoices/upcoming/lines"

	return payapi.NewPaginator[resources.InvoiceLineItem](func(startingAfter string) *payapi.RequestBuilder {
		page := params
		if startingAfter != "" {
			page.StartingAfter = &startingAfter
		}

		return payapi.NewRequest(payapi.MethodGet, path).Query(&page)
	}, opts...)
}

// ListLinesInvoiceParams are the parameters of ListLinesInvoice.
type ListLinesInvoiceParams struct {
	Limit         *int64   `form:"limit"`
	EndingBefore  *string  `form:"ending_before"`
	StartingAfter *string  `form:"starting_after"`
	Expand        []string `form:"expand"`
}

// ListLinesInvoice lists the line items of an invoice.
type ListLinesInvoice struct {
	id     resources.InvoiceID
	params ListLinesInvoiceParams
}

// NewListLinesInvoice starts the request.
func NewListLinesInvoice(id resources.InvoiceID) *ListLinesInvoice {
	return &ListLinesInvoice{
		id: id,
	}
}

// Limit caps the page size, 1 to 100; the server default is 10.
func (l *ListLinesInvoice) Limit(limit int64) *ListLinesInvoice {
	l.params.Limit = &limit

	return l
}

// EndingBefore is the cursor for the previous page.
func (l *ListLinesInvoice) EndingBefore(endingBefore string) *ListLinesInvoice {
	l.params.EndingBefore = &endingBefore

	return l
}

// StartingAfter is the cursor for the next page; Paginate sets it.
func (l *ListLinesInvoice) StartingAfter(startingAfter string) *ListLinesInvoice {
	l.params.StartingAfter = &startingAfter

	return l
}

// Expand asks for the named references to be returned as full objects.
func (l *ListLinesInvoice) Expand(expand ...string) *ListLinesInvoice {
	l.params.Expand = expand

	return l
}

// Params returns a copy of the parameters set so far.
func (l *ListLinesInvoice) Params() ListLinesInvoiceParams {
	return l.params
}

// Build implements payapi.Binding.
func (l *ListLinesInvoice) Build() *payapi.RequestBuilder {
	params := l.params

	return payapi.NewRequest(payapi.MethodGet, pathf("/invoices/%s/lines", l.id)).Query(&params)
}

// Send executes the request and blocks until the response is decoded.
func (l *ListLinesInvoice) Send(ctx context.Context, client payapi.Client) (*payapi.List[resources.InvoiceLineItem], error) {
	return payapi.Send[payapi.List[resources.InvoiceLineItem]](ctx, client, l.Build())
}

// SendAsync starts the request and returns its pending result.
func (l *ListLinesInvoice) SendAsync(ctx context.Context, client payapi.AsyncClient) *payapi.Future[payapi.List[resources.InvoiceLineItem]] {
	return payapi.SendAsync[payapi.List[resources.InvoiceLineItem]](ctx, client, l.Build())
}

// Paginate walks every page, following the starting_after cursor.
func (l *ListLinesInvoice) Paginate(opts ...payapi.PaginatorOption) *payapi.Paginator[resources.InvoiceLineItem] {
	params := l.params
	path := pathf("/invoices/%s/lines", l.id)

	return payapi.NewPaginator[resources.InvoiceLineItem](func(startingAfter string) *payapi.RequestBuilder {
		page := params
		if startingAfter != "" {
			page.StartingAfter = &startingAfter
		}

		return payapi.NewRequest(payapi.MethodGet, path).Query(&page)
	}, opts...)
}

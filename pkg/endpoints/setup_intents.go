package endpoints

import (
	"context"

	"github.com/fivetwenty-io/payapi/pkg/payapi"
	"github.com/fivetwenty-io/payapi/pkg/resources"
)

// CreateSetupIntentParams are the parameters of CreateSetupIntent.
type CreateSetupIntentParams struct {
	AttachToSelf            *bool                          `form:"attach_to_self"`
	AutomaticPaymentMethods *AutomaticPaymentMethodsParams `form:"automatic_payment_methods"`
	Confirm                 *bool                          `form:"confirm"`
	Customer                *resources.CustomerID          `form:"customer"`
	Description             *string                        `form:"description"`
	FlowDirections          []resources.FlowDirection      `form:"flow_directions"`
	MandateData             *MandateDataParams             `form:"mandate_data"`
	Metadata                resources.MetadataParams       `form:"metadata"`
	OnBehalfOf              *resources.AccountID           `form:"on_behalf_of"`
	PaymentMethod           *resources.PaymentMethodID     `form:"payment_method"`
	PaymentMethodTypes      []resources.PaymentMethodType  `form:"payment_method_types"`
	ReturnURL               *string                        `form:"return_url"`
	SingleUse               *SingleUseParams               `form:"single_use"`
	Usage                   *resources.SetupIntentUsage    `form:"usage"`
	UseStripeSDK            *bool                          `form:"use_stripe_sdk"`
	Expand                  []string                       `form:"expand"`
}

// CreateSetupIntent starts collecting a payment method for future payments.
type CreateSetupIntent struct {
	params CreateSetupIntentParams
}

// NewCreateSetupIntent starts the request.
func NewCreateSetupIntent() *CreateSetupIntent {
	return &CreateSetupIntent{}
}

// AttachToSelf sets whether the payment method is attached to the intent's
// own account.
func (c *CreateSetupIntent) AttachToSelf(attachToSelf bool) *CreateSetupIntent {
	c.params.AttachToSelf = &attachToSelf

	return c
}

// AutomaticPaymentMethods sets whether payment methods are chosen from
// dashboard settings.
func (c *CreateSetupIntent) AutomaticPaymentMethods(automaticPaymentMethods AutomaticPaymentMethodsParams) *CreateSetupIntent {
	c.params.AutomaticPaymentMethods = &automaticPaymentMethods

	return c
}

// Confirm confirms the intent in the same request.
func (c *CreateSetupIntent) Confirm(confirm bool) *CreateSetupIntent {
	c.params.Confirm = &confirm

	return c
}

// Customer sets the customer.
func (c *CreateSetupIntent) Customer(customer resources.CustomerID) *CreateSetupIntent {
	c.params.Customer = &customer

	return c
}

// Description sets a free-form description.
func (c *CreateSetupIntent) Description(description string) *CreateSetupIntent {
	c.params.Description = &description

	return c
}

// FlowDirections sets the directions money may move with the saved method.
func (c *CreateSetupIntent) FlowDirections(flowDirections []resources.FlowDirection) *CreateSetupIntent {
	c.params.FlowDirections = flowDirections

	return c
}

// MandateData sets the mandate acceptance details.
func (c *CreateSetupIntent) MandateData(mandateData MandateDataParams) *CreateSetupIntent {
	c.params.MandateData = &mandateData

	return c
}

// Metadata sets, clears (empty value) or unsets (nil value) metadata keys.
func (c *CreateSetupIntent) Metadata(metadata resources.MetadataParams) *CreateSetupIntent {
	c.params.Metadata = metadata

	return c
}

// OnBehalfOf sets the connected account the payment method is set up for.
func (c *CreateSetupIntent) OnBehalfOf(onBehalfOf resources.AccountID) *CreateSetupIntent {
	c.params.OnBehalfOf = &onBehalfOf

	return c
}

// PaymentMethod sets the payment method.
func (c *CreateSetupIntent) PaymentMethod(paymentMethod resources.PaymentMethodID) *CreateSetupIntent {
	c.params.PaymentMethod = &paymentMethod

	return c
}

// PaymentMethodTypes sets the allowed payment method types.
func (c *CreateSetupIntent) PaymentMethodTypes(paymentMethodTypes []resources.PaymentMethodType) *CreateSetupIntent {
	c.params.PaymentMethodTypes = paymentMethodTypes

	return c
}

// ReturnURL sets where the customer is sent after an off-site authentication.
func (c *CreateSetupIntent) ReturnURL(returnURL string) *CreateSetupIntent {
	c.params.ReturnURL = &returnURL

	return c
}

// SingleUse sets the amount and currency of a single-use mandate.
func (c *CreateSetupIntent) SingleUse(singleUse SingleUseParams) *CreateSetupIntent {
	c.params.SingleUse = &singleUse

	return c
}

// Usage sets whether the method is reused on or off session.
func (c *CreateSetupIntent) Usage(usage resources.SetupIntentUsage) *CreateSetupIntent {
	c.params.Usage = &usage

	return c
}

// UseSDK requests next actions shaped for the mobile SDKs.
func (c *CreateSetupIntent) UseSDK(useSDK bool) *CreateSetupIntent {
	c.params.UseStripeSDK = &useSDK

	return c
}

// Expand asks for the named references to be returned as full objects.
func (c *CreateSetupIntent) Expand(expand ...string) *CreateSetupIntent {
	c.params.Expand = expand

	return c
}

// Params returns a copy of the parameters set so far.
func (c *CreateSetupIntent) Params() CreateSetupIntentParams {
	return c.params
}

// Build implements payapi.Binding.
func (c *CreateSetupIntent) Build() *payapi.RequestBuilder {
	params := c.params

	return payapi.NewRequest(payapi.MethodPost, "/setup_intents").Form(&params)
}

// Send executes the request and blocks until the response is decoded.
func (c *CreateSetupIntent) Send(ctx context.Context, client payapi.Client) (*resources.SetupIntent, error) {
	return payapi.Send[resources.SetupIntent](ctx, client, c.Build())
}

// SendAsync starts the request and returns its pending result.
func (c *CreateSetupIntent) SendAsync(ctx context.Context, client payapi.AsyncClient) *payapi.Future[resources.SetupIntent] {
	return payapi.SendAsync[resources.SetupIntent](ctx, client, c.Build())
}

// RetrieveSetupIntentParams are the parameters of RetrieveSetupIntent.
type RetrieveSetupIntentParams struct {
	ClientSecret *string  `form:"client_secret"`
	Expand       []string `form:"expand"`
}

// RetrieveSetupIntent fetches a setup intent.
type RetrieveSetupIntent struct {
	id     resources.SetupIntentID
	params RetrieveSetupIntentParams
}

// NewRetrieveSetupIntent starts the request.
func NewRetrieveSetupIntent(id resources.SetupIntentID) *RetrieveSetupIntent {
	return &RetrieveSetupIntent{
		id: id,
	}
}

// ClientSecret is required when called with a publishable key.
func (r *RetrieveSetupIntent) ClientSecret(clientSecret string) *RetrieveSetupIntent {
	r.params.ClientSecret = &clientSecret

	return r
}

// Expand asks for the named references to be returned as full objects.
func (r *RetrieveSetupIntent) Expand(expand ...string) *RetrieveSetupIntent {
	r.params.Expand = expand

	return r
}

// Params returns a copy of the parameters set so far.
func (r *RetrieveSetupIntent) Params() RetrieveSetupIntentParams {
	return r.params
}

// Build implements payapi.Binding.
func (r *RetrieveSetupIntent) Build() *payapi.RequestBuilder {
	params := r.params

	return payapi.NewRequest(payapi.MethodGet, pathf("/setup_intents/%s", r.id)).Query(&params)
}

// Send executes the request and blocks until the response is decoded.
func (r *RetrieveSetupIntent) Send(ctx context.Context, client payapi.Client) (*resources.SetupIntent, error) {
	return payapi.Send[resources.SetupIntent](ctx, client, r.Build())
}

// SendAsync starts the request and returns its pending result.
func (r *RetrieveSetupIntent) SendAsync(ctx context.Context, client payapi.AsyncClient) *payapi.Future[resources.SetupIntent] {
	return payapi.SendAsync[resources.SetupIntent](ctx, client, r.Build())
}

// UpdateSetupIntentParams are the parameters of UpdateSetupIntent.
type UpdateSetupIntentParams struct {
	AttachToSelf       *bool                         `form:"attach_to_self"`
	FlowDirections     []resources.FlowDirection     `form:"flow_directions"`
	Customer           *resources.CustomerID         `form:"customer"`
	Description        *string                       `form:"description"`
	Metadata           resources.MetadataParams      `form:"metadata"`
	PaymentMethod      *resources.PaymentMethodID    `form:"payment_method"`
	PaymentMethodTypes []resources.PaymentMethodType `form:"payment_method_types"`
	Expand             []string                      `form:"expand"`
}

// UpdateSetupIntent changes a setup intent that is not yet confirmed.
type UpdateSetupIntent struct {
	id     resources.SetupIntentID
	params UpdateSetupIntentParams
}

// NewUpdateSetupIntent starts the request.
func NewUpdateSetupIntent(id resources.SetupIntentID) *UpdateSetupIntent {
	return &UpdateSetupIntent{
		id: id,
	}
}

// AttachToSelf sets whether the payment method is attached to the intent's
// own account.
func (u *UpdateSetupIntent) AttachToSelf(attachToSelf bool) *UpdateSetupIntent {
	u.params.AttachToSelf = &attachToSelf

	return u
}

// FlowDirections sets the directions money may move with the saved method.
func (u *UpdateSetupIntent) FlowDirections(flowDirections []resources.FlowDirection) *UpdateSetupIntent {
	u.params.FlowDirections = flowDirections

	return u
}

// Customer sets the customer.
func (u *UpdateSetupIntent) Customer(customer resources.CustomerID) *UpdateSetupIntent {
	u.params.Customer = &customer

	return u
}

// Description sets a free-form description.
func (u *UpdateSetupIntent) Description(description string) *UpdateSetupIntent {
	u.params.Description = &description

	return u
}

// Metadata sets, clears (empty value) or unsets (nil value) metadata keys.
func (u *UpdateSetupIntent) Metadata(metadata resources.MetadataParams) *UpdateSetupIntent {
	u.params.Metadata = metadata

	return u
}

// PaymentMethod sets the payment method.
func (u *UpdateSetupIntent) PaymentMethod(paymentMethod resources.PaymentMethodID) *UpdateSetupIntent {
	u.params.PaymentMethod = &paymentMethod

	return u
}

// PaymentMethodTypes sets the allowed payment method types.
func (u *UpdateSetupIntent) PaymentMethodTypes(paymentMethodTypes []resources.PaymentMethodType) *UpdateSetupIntent {
	u.params.PaymentMethodTypes = paymentMethodTypes

	return u
}

// Expand asks for the named references to be returned as full objects.
func (u *UpdateSetupIntent) Expand(expand ...string) *UpdateSetupIntent {
	u.params.Expand = expand

	return u
}

// Params returns a copy of the parameters set so far.
func (u *UpdateSetupIntent) Params() UpdateSetupIntentParams {
	return u.params
}

// Build implements payapi.Binding.
func (u *UpdateSetupIntent) Build() *payapi.RequestBuilder {
	params := u.params

	return payapi.NewRequest(payapi.MethodPost, pathf("/setup_intents/%s", u.id)).Form(&params)
}

// Send executes the request and blocks until the response is decoded.
func (u *UpdateSetupIntent) Send(ctx context.Context, client payapi.Client) (*resources.SetupIntent, error) {
	return payapi.Send[resources.SetupIntent](ctx, client, u.Build())
}

// SendAsync starts the request and returns its pending result.
func (u *UpdateSetupIntent) SendAsync(ctx context.Context, client payapi.AsyncClient) *payapi.Future[resources.SetupIntent] {
	return payapi.SendAsync[resources.SetupIntent](ctx, client, u.Build())
}

// ListSetupIntentParams are the parameters of ListSetupIntent.
type ListSetupIntentParams struct {
	AttachToSelf  *bool                          `form:"attach_to_self"`
	Created       *resources.RangeQueryTimestamp `form:"created"`
	Customer      *resources.CustomerID          `form:"customer"`
	PaymentMethod *resources.PaymentMethodID     `form:"payment_method"`
	Limit         *int64                         `form:"limit"`
	EndingBefore  *string                        `form:"ending_before"`
	StartingAfter *string                        `form:"starting_after"`
	Expand        []string                       `form:"expand"`
}

// ListSetupIntent lists setup intents.
type ListSetupIntent struct {
	params ListSetupIntentParams
}

// NewListSetupIntent starts the request.
func NewListSetupIntent() *ListSetupIntent {
	return &ListSetupIntent{}
}

// AttachToSelf filters by whether the payment method is attached to the
// intent's own account.
func (l *ListSetupIntent) AttachToSelf(attachToSelf bool) *ListSetupIntent {
	l.params.AttachToSelf = &attachToSelf

	return l
}

// Created filters by creation time.
func (l *ListSetupIntent) Created(created resources.RangeQueryTimestamp) *ListSetupIntent {
	l.params.Created = &created

	return l
}

// Customer filters by customer.
func (l *ListSetupIntent) Customer(customer resources.CustomerID) *ListSetupIntent {
	l.params.Customer = &customer

	return l
}

// PaymentMethod filters by payment method.
func (l *ListSetupIntent) PaymentMethod(paymentMethod resources.PaymentMethodID) *ListSetupIntent {
	l.params.PaymentMethod = &paymentMethod

	return l
}

// Limit caps the page size, 1 to 100; the server default is 10.
func (l *ListSetupIntent) Limit(limit int64) *ListSetupIntent {
	l.params.Limit = &limit

	return l
}

// EndingBefore is the cursor for the previous page.
func (l *ListSetupIntent) EndingBefore(endingBefore string) *ListSetupIntent {
	l.params.EndingBefore = &endingBefore

	return l
}

// StartingAfter is the cursor for the next page; Paginate sets it.
func (l *ListSetupIntent) StartingAfter(startingAfter string) *ListSetupIntent {
	l.params.StartingAfter = &startingAfter

	return l
}

// Expand asks for the named references to be returned as full objects.
func (l *ListSetupIntent) Expand(expand ...string) *ListSetupIntent {
	l.params.Expand = expand

	return l
}

// Params returns a copy of the parameters set so far.
func (l *ListSetupIntent) Params() ListSetupIntentParams {
	return l.params
}

// Build implements payapi.Binding.
func (l *ListSetupIntent) Build() *payapi.RequestBuilder {
	params := l.params

	return payapi.NewRequest(payapi.MethodGet, "/setup_intents").Query(&params)
}

// Send executes the request and blocks until the response is decoded.
func (l *ListSetupIntent) Send(ctx context.Context, client payapi.Client) (*payapi.List[resources.SetupIntent], error) {
	return payapi.Send[payapi.List[resources.SetupIntent]](ctx, client, l.Build())
}

// SendAsync starts the request and returns its pending result.
func (l *ListSetupIntent) SendAsync(ctx context.Context, client payapi.AsyncClient) *payapi.Future[payapi.List[resources.SetupIntent]] {
	return payapi.SendAsync[payapi.List[resources.SetupIntent]](ctx, client, l.Build())
}

// Paginate walks every page, following the starting_after cursor.
func (l *ListSetupIntent) Paginate(opts ...payapi.PaginatorOption) *payapi.Paginator[resources.SetupIntent] {
	params := l.params
	path := "/setup_intents"

	return payapi.NewPaginator[resources.SetupIntent](func(startingAfter string) *payapi.RequestBuilder {
		page := params
		if startingAfter != "" {
			page.StartingAfter = &startingAfter
		}

		return payapi.NewRequest(payapi.MethodGet, path).Query(&page)
	}, opts...)
}

// ConfirmSetupIntentParams are the parameters of ConfirmSetupIntent.
type ConfirmSetupIntentParams struct {
	MandateData   *MandateDataParams         `form:"mandate_data"`
	PaymentMethod *resources.PaymentMethodID `form:"payment_method"`
	ReturnURL     *string                    `form:"return_url"`
	UseStripeSDK  *bool                      `form:"use_stripe_sdk"`
	Expand        []string                   `form:"expand"`
}

// ConfirmSetupIntent confirms that the customer intends to save the payment method.
type ConfirmSetupIntent struct {
	id     resources.SetupIntentID
	params ConfirmSetupIntentParams
}

// NewConfirmSetupIntent starts the request.
func NewConfirmSetupIntent(id resources.SetupIntentID) *ConfirmSetupIntent {
	return &ConfirmSetupIntent{
		id: id,
	}
}

// MandateData sets the mandate acceptance details.
func (c *ConfirmSetupIntent) MandateData(mandateData MandateDataParams) *ConfirmSetupIntent {
	c.params.MandateData = &mandateData

	return c
}

// PaymentMethod sets the payment method.
func (c *ConfirmSetupIntent) PaymentMethod(paymentMethod resources.PaymentMethodID) *ConfirmSetupIntent {
	c.params.PaymentMethod = &paymentMethod

	return c
}

// ReturnURL sets where the customer is sent after an off-site authentication.
func (c *ConfirmSetupIntent) ReturnURL(returnURL string) *ConfirmSetupIntent {
	c.params.ReturnURL = &returnURL

	return c
}

// UseSDK sets whether next actions are handled by a client SDK.
func (c *ConfirmSetupIntent) UseSDK(useSDK bool) *ConfirmSetupIntent {
	c.params.UseStripeSDK = &useSDK

	return c
}

// Expand asks for the named references to be returned as full objects.
func (c *ConfirmSetupIntent) Expand(expand ...string) *ConfirmSetupIntent {
	c.params.Expand = expand

	return c
}

// Params returns a copy of the parameters set so far.
func (c *ConfirmSetupIntent) Params() ConfirmSetupIntentParams {
	return c.params
}

// Build implements payapi.Binding.
func (c *ConfirmSetupIntent) Build() *payapi.RequestBuilder {
	params := c.params

	return payapi.NewRequest(payapi.MethodPost, pathf("/setup_intents/%s/confirm", c.id)).Form(&params)
}

// Send executes the request and blocks until the response is decoded.
func (c *ConfirmSetupIntent) Send(ctx context.Context, client payapi.Client) (*resources.SetupIntent, error) {
	return payapi.Send[resources.SetupIntent](ctx, client, c.Build())
}

// SendAsync starts the request and returns its pending result.
func (c *ConfirmSetupIntent) SendAsync(ctx context.Context, client payapi.AsyncClient) *payapi.Future[resources.SetupIntent] {
	return payapi.SendAsync[resources.SetupIntent](ctx, client, c.Build())
}

// CancelSetupIntentParams are the parameters of CancelSetupIntent.
type CancelSetupIntentParams struct {
	CancellationReason *resources.SetupIntentCancellationReason `form:"cancellation_reason"`
	Expand             []string                                 `form:"expand"`
}

// CancelSetupIntent cancels a setup intent that has not succeeded.
type CancelSetupIntent struct {
	id     resources.SetupIntentID
	params CancelSetupIntentParams
}

// NewCancelSetupIntent starts the request.
func NewCancelSetupIntent(id resources.SetupIntentID) *CancelSetupIntent {
	return &CancelSetupIntent{
		id: id,
	}
}

// CancellationReason sets why the intent was cancelled.
func (c *CancelSetupIntent) CancellationReason(cancellationReason resources.SetupIntentCancellationReason) *CancelSetupIntent {
	c.params.CancellationReason = &cancellationReason

	return c
}

// Expand asks for the named references to be returned as full objects.
func (c *CancelSetupIntent) Expand(expand ...string) *CancelSetupIntent {
	c.params.Expand = expand

	return c
}

// Params returns a copy of the parameters set so far.
func (c *CancelSetupIntent) Params() CancelSetupIntentParams {
	return c.params
}

// Build implements payapi.Binding.
func (c *CancelSetupIntent) Build() *payapi.RequestBuilder {
	params := c.params

	return payapi.NewRequest(payapi.MethodPost, pathf("/setup_intents/%s/cancel", c.id)).Form(&params)
}

// Send executes the request and blocks until the response is decoded.
func (c *CancelSetupIntent) Send(ctx context.Context, client payapi.Client) (*resources.SetupIntent, error) {
	return payapi.Send[resources.SetupIntent](ctx, client, c.Build())
}

// SendAsync starts the request and returns its pending result.
func (c *CancelSetupIntent) SendAsync(ctx context.Context, client payapi.AsyncClient) *payapi.Future[resources.SetupIntent] {
	return payapi.SendAsync[resources.SetupIntent](ctx, client, c.Build())
}

// VerifyMicrodepositsSetupIntentParams are the parameters of VerifyMicrodepositsSetupIntent.
type VerifyMicrodepositsSetupIntentParams struct {
	Amounts        []int64  `form:"amounts"`
	DescriptorCode *string  `form:"descriptor_code"`
	Expand         []string `form:"expand"`
}

// VerifyMicrodepositsSetupIntent verifies a bank account with the amounts or
// descriptor code of the microdeposits sent to it.
type VerifyMicrodepositsSetupIntent struct {
	id     resources.SetupIntentID
	params VerifyMicrodepositsSetupIntentParams
}

// NewVerifyMicrodepositsSetupIntent starts the request.
func NewVerifyMicrodepositsSetupIntent(id resources.SetupIntentID) *VerifyMicrodepositsSetupIntent {
	return &VerifyMicrodepositsSetupIntent{
		id: id,
	}
}

// Amounts are the two deposit amounts in cents.
func (v *VerifyMicrodepositsSetupIntent) Amounts(amounts []int64) *VerifyMicrodepositsSetupIntent {
	v.params.Amounts = amounts

	return v
}

// DescriptorCode sets the six-character code from the statement descriptor.
func (v *VerifyMicrodepositsSetupIntent) DescriptorCode(descriptorCode string) *VerifyMicrodepositsSetupIntent {
	v.params.DescriptorCode = &descriptorCode

	return v
}

// Expand asks for the named references to be returned as full objects.
func (v *VerifyMicrodepositsSetupIntent) Expand(expand ...string) *VerifyMicrodepositsSetupIntent {
	v.params.Expand = expand

	return v
}

// Params returns a copy of the parameters set so far.
func (v *VerifyMicrodepositsSetupIntent) Params() VerifyMicrodepositsSetupIntentParams {
	return v.params
}

// Build implements payapi.Binding.
func (v *VerifyMicrodepositsSetupIntent) Build() *payapi.RequestBuilder {
	params := v.params

	return payapi.NewRequest(payapi.MethodPost, pathf("/setup_intents/%s/verify_microdeposits", v.id)).Form(&params)
}

// Send executes the request and blocks until the response is decoded.
func (v *VerifyMicrodepositsSetupIntent) Send(ctx context.Context, client payapi.Client) (*resources.SetupIntent, error) {
	return payapi.Send[resources.SetupIntent](ctx, client, v.Build())
}

// SendAsync starts the request and returns its pending result.
func (v *VerifyMicrodepositsSetupIntent) SendAsync(ctx context.Context, client payapi.AsyncClient) *payapi.Future[resources.SetupIntent] {
	return payapi.SendAsync[resources.SetupIntent](ctx, client, v.Build())
}

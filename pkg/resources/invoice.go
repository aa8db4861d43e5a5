package resources

// Invoice is a statement of amounts owed by a customer. Upcoming invoices are
// previews and carry no ID.
type Invoice struct {
	ID                   InvoiceID                                   `json:"id,omitempty"                 yaml:"id,omitempty"`
	Object               string                                      `json:"object"                       yaml:"object"`
	AccountCountry       *string                                     `json:"account_country"              yaml:"account_country"`
	AccountName          *string                                     `json:"account_name"                 yaml:"account_name"`
	AccountTaxIDs        []TaxIDID                                   `json:"account_tax_ids"              yaml:"account_tax_ids"`
	AmountDue            int64                                       `json:"amount_due"                   yaml:"amount_due"`
	AmountPaid           int64                                       `json:"amount_paid"                  yaml:"amount_paid"`
	AmountRemaining      int64                                       `json:"amount_remaining"             yaml:"amount_remaining"`
	ApplicationFeeAmount *int64                                      `json:"application_fee_amount"       yaml:"application_fee_amount"`
	AttemptCount         int64                                       `json:"attempt_count"                yaml:"attempt_count"`
	Attempted            bool                                        `json:"attempted"                    yaml:"attempted"`
	AutoAdvance          *bool                                       `json:"auto_advance,omitempty"       yaml:"auto_advance,omitempty"`
	AutomaticTax         InvoiceAutomaticTax                         `json:"automatic_tax"                yaml:"automatic_tax"`
	BillingReason        *BillingReason                              `json:"billing_reason"               yaml:"billing_reason"`
	CollectionMethod     CollectionMethod                            `json:"collection_method"            yaml:"collection_method"`
	Created              Timestamp                                   `json:"created"                      yaml:"created"`
	Currency             Currency                                    `json:"currency"                     yaml:"currency"`
	CustomFields         []CustomField                               `json:"custom_fields"                yaml:"custom_fields"`
	Customer             *Expandable[CustomerID, Customer]           `json:"customer"                     yaml:"customer"`
	CustomerAddress      *Address                                    `json:"customer_address"             yaml:"customer_address"`
	CustomerEmail        *string                                     `json:"customer_email"               yaml:"customer_email"`
	CustomerName         *string                                     `json:"customer_name"                yaml:"customer_name"`
	CustomerPhone        *string                                     `json:"customer_phone"               yaml:"customer_phone"`
	CustomerShipping     *Shipping                                   `json:"customer_shipping"            yaml:"customer_shipping"`
	CustomerTaxExempt    *TaxExempt                                  `json:"customer_tax_exempt"          yaml:"customer_tax_exempt"`
	DefaultPaymentMethod *Expandable[PaymentMethodID, PaymentMethod] `json:"default_payment_method"       yaml:"default_payment_method"`
	DefaultTaxRates      []TaxRate                                   `json:"default_tax_rates"            yaml:"default_tax_rates"`
	Description          *string                                     `json:"description"                  yaml:"description"`
	Discounts            []Expandable[DiscountID, Discount]          `json:"discounts"                    yaml:"discounts"`
	DueDate              *Timestamp                                  `json:"due_date"                     yaml:"due_date"`
	EndingBalance        *int64                                      `json:"ending_balance"               yaml:"ending_balance"`
	Footer               *string                                     `json:"footer"                       yaml:"footer"`
	HostedInvoiceURL     *string                                     `json:"hosted_invoice_url,omitempty" yaml:"hosted_invoice_url,omitempty"`
	InvoicePDF           *string                                     `json:"invoice_pdf,omitempty"        yaml:"invoice_pdf,omitempty"`
	Lines                List[InvoiceLineItem]                       `json:"lines"                        yaml:"lines"`
	Livemode             bool                                        `json:"livemode"                     yaml:"livemode"`
	Metadata             Metadata                                    `json:"metadata"                     yaml:"metadata"`
	NextPaymentAttempt   *Timestamp                                  `json:"next_payment_attempt"         yaml:"next_payment_attempt"`
	Number               *string                                     `json:"number"                       yaml:"number"`
	Paid                 bool                                        `json:"paid"                         yaml:"paid"`
	PaidOutOfBand        bool                                        `json:"paid_out_of_band"             yaml:"paid_out_of_band"`
	PeriodEnd            Timestamp                                   `json:"period_end"                   yaml:"period_end"`
	PeriodStart          Timestamp                                   `json:"period_start"                 yaml:"period_start"`
	StartingBalance      int64                                       `json:"starting_balance"             yaml:"starting_balance"`
	StatementDescriptor  *string                                     `json:"statement_descriptor"         yaml:"statement_descriptor"`
	Status               *InvoiceStatus                              `json:"status"                       yaml:"status"`
	StatusTransitions    InvoiceStatusTransitions                    `json:"status_transitions"           yaml:"status_transitions"`
	Subscription         *Expandable[SubscriptionID, Subscription]   `json:"subscription"                 yaml:"subscription"`
	Subtotal             int64                                       `json:"subtotal"                     yaml:"subtotal"`
	Tax                  *int64                                      `json:"tax"                          yaml:"tax"`
	TestClock            *Expandable[TestClockID, TestClock]         `json:"test_clock"                   yaml:"test_clock"`
	Total                int64                                       `json:"total"                        yaml:"total"`
	WebhooksDeliveredAt  *Timestamp                                  `json:"webhooks_delivered_at"        yaml:"webhooks_delivered_at"`
}

// ObjectID returns the invoice ID, which is empty for upcoming invoices.
func (i Invoice) ObjectID() string {
	return string(i.ID)
}

// InvoiceAutomaticTax reports whether tax is calculated automatically.
type InvoiceAutomaticTax struct {
	Enabled bool                `json:"enabled" yaml:"enabled"`
	Status  *AutomaticTaxStatus `json:"status"  yaml:"status"`
}

// InvoiceStatusTransitions records when the invoice entered each status.
type InvoiceStatusTransitions struct {
	FinalizedAt           *Timestamp `json:"finalized_at"            yaml:"finalized_at"`
	MarkedUncollectibleAt *Timestamp `json:"marked_uncollectible_at" yaml:"marked_uncollectible_at"`
	PaidAt                *Timestamp `json:"paid_at"                 yaml:"paid_at"`
	VoidedAt              *Timestamp `json:"voided_at"               yaml:"voided_at"`
}

// CustomField is a name/value pair printed on the invoice PDF.
type CustomField struct {
	Name  string `form:"name"  json:"name"  yaml:"name"`
	Value string `form:"value" json:"value" yaml:"value"`
}

// InvoiceLineItem is one line of an invoice.
type InvoiceLineItem struct {
	ID               InvoiceLineItemID                  `json:"id"                          yaml:"id"`
	Object           string                             `json:"object"                      yaml:"object"`
	Amount           int64                              `json:"amount"                      yaml:"amount"`
	Currency         Currency                           `json:"currency"                    yaml:"currency"`
	Description      *string                            `json:"description"                 yaml:"description"`
	DiscountAmounts  []DiscountAmount                   `json:"discount_amounts"            yaml:"discount_amounts"`
	Discountable     bool                               `json:"discountable"                yaml:"discountable"`
	Discounts        []Expandable[DiscountID, Discount] `json:"discounts"                   yaml:"discounts"`
	Invoice          *InvoiceID                         `json:"invoice,omitempty"           yaml:"invoice,omitempty"`
	InvoiceItem      *InvoiceItemID                     `json:"invoice_item,omitempty"      yaml:"invoice_item,omitempty"`
	Livemode         bool                               `json:"livemode"                    yaml:"livemode"`
	Metadata         Metadata                           `json:"metadata"                    yaml:"metadata"`
	Period           LineItemPeriod                     `json:"period"                      yaml:"period"`
	Price            *Price                             `json:"price"                       yaml:"price"`
	Proration        bool                               `json:"proration"                   yaml:"proration"`
	Quantity         *int64                             `json:"quantity"                    yaml:"quantity"`
	Subscription     *SubscriptionID                    `json:"subscription"                yaml:"subscription"`
	SubscriptionItem *SubscriptionItemID                `json:"subscription_item,omitempty" yaml:"subscription_item,omitempty"`
	TaxRates         []TaxRate                          `json:"tax_rates"                   yaml:"tax_rates"`
	Type             InvoiceLineItemType                `json:"type"                        yaml:"type"`
}

// ObjectID returns the line item ID.
func (l InvoiceLineItem) ObjectID() string {
	return string(l.ID)
}

// LineItemPeriod is the span a line item covers.
type LineItemPeriod struct {
	End   Timestamp `json:"end"   yaml:"end"`
	Start Timestamp `json:"start" yaml:"start"`
}

// InvoiceStatus is the lifecycle state of an invoice.
type InvoiceStatus string

// Invoice statuses.
const (
	InvoiceStatusDraft         InvoiceStatus = "draft"
	InvoiceStatusOpen          InvoiceStatus = "open"
	InvoiceStatusPaid          InvoiceStatus = "paid"
	InvoiceStatusUncollectible InvoiceStatus = "uncollectible"
	InvoiceStatusVoid          InvoiceStatus = "void"
)

var invoiceStatusValues = []InvoiceStatus{
	InvoiceStatusDraft, InvoiceStatusOpen, InvoiceStatusPaid, InvoiceStatusUncollectible,
	InvoiceStatusVoid,
}

// ParseInvoiceStatus never fails; unrecognized values are retained.
func ParseInvoiceStatus(raw string) InvoiceStatus {
	return InvoiceStatus(raw)
}

func (i InvoiceStatus) String() string { return string(i) }

func (i InvoiceStatus) IsKnown() bool { return isKnown(i, invoiceStatusValues) }

func (i InvoiceStatus) IsUnknown() bool { return !i.IsKnown() }

// CollectionMethod decides whether the customer is charged automatically or
// emailed an invoice to pay.
type CollectionMethod string

// Collection methods.
const (
	CollectionMethodChargeAutomatically CollectionMethod = "charge_automatically"
	CollectionMethodSendInvoice         CollectionMethod = "send_invoice"
)

var collectionMethodValues = []CollectionMethod{
	CollectionMethodChargeAutomatically, CollectionMethodSendInvoice,
}

// ParseCollectionMethod never fails; unrecognized values are retained.
func ParseCollectionMethod(raw string) CollectionMethod {
	return CollectionMethod(raw)
}

func (c CollectionMethod) String() string { return string(c) }

func (c CollectionMethod) IsKnown() bool { return isKnown(c, collectionMethodValues) }

func (c CollectionMethod) IsUnknown() bool { return !c.IsKnown() }

// BillingReason explains why an invoice was created.
type BillingReason string

// Billing reasons.
const (
	BillingReasonAutomaticPendingInvoiceItemInvoice BillingReason = "automatic_pending_invoice_item_invoice"
	BillingReasonManual                             BillingReason = "manual"
	BillingReasonQuoteAccept                        BillingReason = "quote_accept"
	BillingReasonSubscription                       BillingReason = "subscription"
	BillingReasonSubscriptionCreate                 BillingReason = "subscription_create"
	BillingReasonSubscriptionCycle                  BillingReason = "subscription_cycle"
	BillingReasonSubscriptionThreshold              BillingReason = "subscription_threshold"
	BillingReasonSubscriptionUpdate                 BillingReason = "subscription_update"
	BillingReasonUpcoming                           BillingReason = "upcoming"
)

var billingReasonValues = []BillingReason{
	BillingReasonAutomaticPendingInvoiceItemInvoice, BillingReasonManual,
	BillingReasonQuoteAccept, BillingReasonSubscription, BillingReasonSubscriptionCreate,
	BillingReasonSubscriptionCycle, BillingReasonSubscriptionThreshold,
	BillingReasonSubscriptionUpdate, BillingReasonUpcoming,
}

// ParseBillingReason never fails; unrecognized values are retained.
func ParseBillingReason(raw string) BillingReason {
	return BillingReason(raw)
}

func (b BillingReason) String() string { return string(b) }

func (b BillingReason) IsKnown() bool { return isKnown(b, billingReasonValues) }

func (b BillingReason) IsUnknown() bool { return !b.IsKnown() }

// AutomaticTaxStatus is the outcome of automatic tax calculation.
type AutomaticTaxStatus string

// Automatic tax statuses.
const (
	AutomaticTaxStatusComplete               AutomaticTaxStatus = "complete"
	AutomaticTaxStatusFailed                 AutomaticTaxStatus = "failed"
	AutomaticTaxStatusRequiresLocationInputs AutomaticTaxStatus = "requires_location_inputs"
)

var automaticTaxStatusValues = []AutomaticTaxStatus{
	AutomaticTaxStatusComplete, AutomaticTaxStatusFailed,
	AutomaticTaxStatusRequiresLocationInputs,
}

// ParseAutomaticTaxStatus never fails; unrecognized values are retained.
func ParseAutomaticTaxStatus(raw string) AutomaticTaxStatus {
	return AutomaticTaxStatus(raw)
}

func (a AutomaticTaxStatus) String() string { return string(a) }

func (a AutomaticTaxStatus) IsKnown() bool { return isKnown(a, automaticTaxStatusValues) }

func (a AutomaticTaxStatus) IsUnknown() bool { return !a.IsKnown() }

// InvoiceLineItemType tells invoice items apart from subscription lines.
type InvoiceLineItemType string

// Line item types.
const (
	InvoiceLineItemTypeInvoiceitem  InvoiceLineItemType = "invoiceitem"
	InvoiceLineItemTypeSubscription InvoiceLineItemType = "subscription"
)

var invoiceLineItemTypeValues = []InvoiceLineItemType{
	InvoiceLineItemTypeInvoiceitem, InvoiceLineItemTypeSubscription,
}

// ParseInvoiceLineItemType never fails; unrecognized values are retained.
func ParseInvoiceLineItemType(raw string) InvoiceLineItemType {
	return InvoiceLineItemType(raw)
}

func (i InvoiceLineItemType) String() string { return string(i) }

func (i InvoiceLineItemType) IsKnown() bool { return isKnown(i, invoiceLineItemTypeValues) }

func (i InvoiceLineItemType) IsUnknown() bool { return !i.IsKnown() }

// PendingInvoiceItemsBehavior controls whether pending invoice items are pulled
// into a new invoice. It is only ever sent.
type PendingInvoiceItemsBehavior string

// Pending invoice item behaviors.
const (
	PendingInvoiceItemsBehaviorExclude PendingInvoiceItemsBehavior = "exclude"
	PendingInvoiceItemsBehaviorInclude PendingInvoiceItemsBehavior = "include"
)

var pendingInvoiceItemsBehaviorValues = []PendingInvoiceItemsBehavior{
	PendingInvoiceItemsBehaviorExclude, PendingInvoiceItemsBehaviorInclude,
}

// ParsePendingInvoiceItemsBehavior fails on values outside the known set.
func ParsePendingInvoiceItemsBehavior(raw string) (PendingInvoiceItemsBehavior, error) {
	return parseStrict("pendingInvoiceItemsBehavior", raw, pendingInvoiceItemsBehaviorValues)
}

func (p PendingInvoiceItemsBehavior) String() string { return string(p) }

func (p PendingInvoiceItemsBehavior) IsKnown() bool { return isKnown(p, pendingInvoiceItemsBehaviorValues) }

func (p PendingInvoiceItemsBehavior) IsUnknown() bool { return !p.IsKnown() }

// ProrationBehavior controls prorations when previewing subscription changes.
type ProrationBehavior string

// Proration behaviors.
const (
	ProrationBehaviorAlwaysInvoice    ProrationBehavior = "always_invoice"
	ProrationBehaviorCreateProrations ProrationBehavior = "create_prorations"
	ProrationBehaviorNone             ProrationBehavior = "none"
)

var prorationBehaviorValues = []ProrationBehavior{
	ProrationBehaviorAlwaysInvoice, ProrationBehaviorCreateProrations, ProrationBehaviorNone,
}

// ParseProrationBehavior fails on values outside the known set.
func ParseProrationBehavior(raw string) (ProrationBehavior, error) {
	return parseStrict("prorationBehavior", raw, prorationBehaviorValues)
}

func (p ProrationBehavior) String() string { return string(p) }

func (p ProrationBehavior) IsKnown() bool { return isKnown(p, prorationBehaviorValues) }

func (p ProrationBehavior) IsUnknown() bool { return !p.IsKnown() }

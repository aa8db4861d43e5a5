package resources

// Subscription bills a customer on a recurring schedule. Only the fields the
// invoice endpoints rely on are modelled.
type Subscription struct {
	ID                 SubscriptionID                      `json:"id"                   yaml:"id"`
	Object             string                              `json:"object"               yaml:"object"`
	CancelAt           *Timestamp                          `json:"cancel_at"            yaml:"cancel_at"`
	CancelAtPeriodEnd  bool                                `json:"cancel_at_period_end" yaml:"cancel_at_period_end"`
	CanceledAt         *Timestamp                          `json:"canceled_at"          yaml:"canceled_at"`
	CollectionMethod   CollectionMethod                    `json:"collection_method"    yaml:"collection_method"`
	Created            Timestamp                           `json:"created"              yaml:"created"`
	Currency           Currency                            `json:"currency"             yaml:"currency"`
	CurrentPeriodEnd   Timestamp                           `json:"current_period_end"   yaml:"current_period_end"`
	CurrentPeriodStart Timestamp                           `json:"current_period_start" yaml:"current_period_start"`
	Customer           Expandable[CustomerID, Customer]    `json:"customer"             yaml:"customer"`
	DaysUntilDue       *int64                              `json:"days_until_due"       yaml:"days_until_due"`
	Livemode           bool                                `json:"livemode"             yaml:"livemode"`
	Metadata           Metadata                            `json:"metadata"             yaml:"metadata"`
	StartDate          Timestamp                           `json:"start_date"           yaml:"start_date"`
	Status             SubscriptionStatus                  `json:"status"               yaml:"status"`
	TestClock          *Expandable[TestClockID, TestClock] `json:"test_clock"           yaml:"test_clock"`
	TrialEnd           *Timestamp                          `json:"trial_end"            yaml:"trial_end"`
	TrialStart         *Timestamp                          `json:"trial_start"          yaml:"trial_start"`
}

// ObjectID returns the subscription ID.
func (s Subscription) ObjectID() string {
	return string(s.ID)
}

// SubscriptionStatus is the billing state of a subscription.
type SubscriptionStatus string

// Subscription statuses.
const (
	SubscriptionStatusActive            SubscriptionStatus = "active"
	SubscriptionStatusCanceled          SubscriptionStatus = "canceled"
	SubscriptionStatusIncomplete        SubscriptionStatus = "incomplete"
	SubscriptionStatusIncompleteExpired SubscriptionStatus = "incomplete_expired"
	SubscriptionStatusPastDue           SubscriptionStatus = "past_due"
	SubscriptionStatusPaused            SubscriptionStatus = "paused"
	SubscriptionStatusTrialing          SubscriptionStatus = "trialing"
	SubscriptionStatusUnpaid            SubscriptionStatus = "unpaid"
)

var subscriptionStatusValues = []SubscriptionStatus{
	SubscriptionStatusActive, SubscriptionStatusCanceled, SubscriptionStatusIncomplete,
	SubscriptionStatusIncompleteExpired, SubscriptionStatusPastDue, SubscriptionStatusPaused,
	SubscriptionStatusTrialing, SubscriptionStatusUnpaid,
}

// ParseSubscriptionStatus never fails; unrecognized values are retained.
func ParseSubscriptionStatus(raw string) SubscriptionStatus {
	return SubscriptionStatus(raw)
}

func (s SubscriptionStatus) String() string { return string(s) }

func (s SubscriptionStatus) IsKnown() bool { return isKnown(s, subscriptionStatusValues) }

func (s SubscriptionStatus) IsUnknown() bool { return !s.IsKnown() }

// Price is the unit cost, currency and billing cycle of a product.
type Price struct {
	ID         PriceID         `json:"id"          yaml:"id"`
	Object     string          `json:"object"      yaml:"object"`
	Active     bool            `json:"active"      yaml:"active"`
	Created    Timestamp       `json:"created"     yaml:"created"`
	Currency   Currency        `json:"currency"    yaml:"currency"`
	Livemode   bool            `json:"livemode"    yaml:"livemode"`
	LookupKey  *string         `json:"lookup_key"  yaml:"lookup_key"`
	Metadata   Metadata        `json:"metadata"    yaml:"metadata"`
	Nickname   *string         `json:"nickname"    yaml:"nickname"`
	Product    ProductID       `json:"product"     yaml:"product"`
	Recurring  *PriceRecurring `json:"recurring"   yaml:"recurring"`
	Type       PriceType       `json:"type"        yaml:"type"`
	UnitAmount *int64          `json:"unit_amount" yaml:"unit_amount"`
}

// ObjectID returns the price ID.
func (p Price) ObjectID() string {
	return string(p.ID)
}

// PriceRecurring is the billing interval of a recurring price.
type PriceRecurring struct {
	Interval      RecurringInterval `json:"interval"       yaml:"interval"`
	IntervalCount int64             `json:"interval_count" yaml:"interval_count"`
}

// PriceType distinguishes one-time from recurring prices.
type PriceType string

// Price types.
const (
	PriceTypeOneTime   PriceType = "one_time"
	PriceTypeRecurring PriceType = "recurring"
)

var priceTypeValues = []PriceType{
	PriceTypeOneTime, PriceTypeRecurring,
}

// ParsePriceType never fails; unrecognized values are retained.
func ParsePriceType(raw string) PriceType {
	return PriceType(raw)
}

func (p PriceType) String() string { return string(p) }

func (p PriceType) IsKnown() bool { return isKnown(p, priceTypeValues) }

func (p PriceType) IsUnknown() bool { return !p.IsKnown() }

// RecurringInterval is the billing frequency unit.
type RecurringInterval string

// Recurring intervals.
const (
	RecurringIntervalDay   RecurringInterval = "day"
	RecurringIntervalMonth RecurringInterval = "month"
	RecurringIntervalWeek  RecurringInterval = "week"
	RecurringIntervalYear  RecurringInterval = "year"
)

var recurringIntervalValues = []RecurringInterval{
	RecurringIntervalDay, RecurringIntervalMonth, RecurringIntervalWeek, RecurringIntervalYear,
}

// ParseRecurringInterval never fails; unrecognized values are retained.
func ParseRecurringInterval(raw string) RecurringInterval {
	return RecurringInterval(raw)
}

func (r RecurringInterval) String() string { return string(r) }

func (r RecurringInterval) IsKnown() bool { return isKnown(r, recurringIntervalValues) }

func (r RecurringInterval) IsUnknown() bool { return !r.IsKnown() }

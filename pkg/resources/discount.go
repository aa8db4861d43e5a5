package resources

// Discount is a coupon applied to a customer, subscription, invoice or line item.
type Discount struct {
	ID            DiscountID       `json:"id"             yaml:"id"`
	Object        string           `json:"object"         yaml:"object"`
	Coupon        Coupon           `json:"coupon"         yaml:"coupon"`
	Customer      *CustomerID      `json:"customer"       yaml:"customer"`
	End           *Timestamp       `json:"end"            yaml:"end"`
	Invoice       *InvoiceID       `json:"invoice"        yaml:"invoice"`
	InvoiceItem   *InvoiceItemID   `json:"invoice_item"   yaml:"invoice_item"`
	PromotionCode *PromotionCodeID `json:"promotion_code" yaml:"promotion_code"`
	Start         Timestamp        `json:"start"          yaml:"start"`
	Subscription  *SubscriptionID  `json:"subscription"   yaml:"subscription"`
}

// ObjectID returns the discount ID.
func (d Discount) ObjectID() string {
	return string(d.ID)
}

// Coupon describes an amount or percentage off. Exactly one of AmountOff and
// PercentOff is set.
type Coupon struct {
	ID               CouponID       `json:"id"                 yaml:"id"`
	Object           string         `json:"object"             yaml:"object"`
	AmountOff        *int64         `json:"amount_off"         yaml:"amount_off"`
	Created          Timestamp      `json:"created"            yaml:"created"`
	Currency         *Currency      `json:"currency"           yaml:"currency"`
	Duration         CouponDuration `json:"duration"           yaml:"duration"`
	DurationInMonths *int64         `json:"duration_in_months" yaml:"duration_in_months"`
	Livemode         bool           `json:"livemode"           yaml:"livemode"`
	MaxRedemptions   *int64         `json:"max_redemptions"    yaml:"max_redemptions"`
	Metadata         Metadata       `json:"metadata"           yaml:"metadata"`
	Name             *string        `json:"name"               yaml:"name"`
	PercentOff       *float64       `json:"percent_off"        yaml:"percent_off"`
	RedeemBy         *Timestamp     `json:"redeem_by"          yaml:"redeem_by"`
	TimesRedeemed    int64          `json:"times_redeemed"     yaml:"times_redeemed"`
	Valid            bool           `json:"valid"              yaml:"valid"`
}

// ObjectID returns the coupon ID.
func (c Coupon) ObjectID() string {
	return string(c.ID)
}

// CouponDuration is how long a discount built from a coupon lasts.
type CouponDuration string

// Coupon durations.
const (
	CouponDurationForever   CouponDuration = "forever"
	CouponDurationOnce      CouponDuration = "once"
	CouponDurationRepeating CouponDuration = "repeating"
)

var couponDurationValues = []CouponDuration{
	CouponDurationForever, CouponDurationOnce, CouponDurationRepeating,
}

// ParseCouponDuration never fails; unrecognized values are retained.
func ParseCouponDuration(raw string) CouponDuration {
	return CouponDuration(raw)
}

func (c CouponDuration) String() string { return string(c) }

func (c CouponDuration) IsKnown() bool { return isKnown(c, couponDurationValues) }

func (c CouponDuration) IsUnknown() bool { return !c.IsKnown() }

// DiscountAmount is the portion of a line item taken off by one discount.
type DiscountAmount struct {
	Amount   int64                            `json:"amount"   yaml:"amount"`
	Discount Expandable[DiscountID, Discount] `json:"discount" yaml:"discount"`
}

// TaxRate is a percentage applied to invoice line items.
type TaxRate struct {
	ID           TaxRateID `json:"id"           yaml:"id"`
	Object       string    `json:"object"       yaml:"object"`
	Active       bool      `json:"active"       yaml:"active"`
	Country      *string   `json:"country"      yaml:"country"`
	Created      Timestamp `json:"created"      yaml:"created"`
	Description  *string   `json:"description"  yaml:"description"`
	DisplayName  string    `json:"display_name" yaml:"display_name"`
	Inclusive    bool      `json:"inclusive"    yaml:"inclusive"`
	Jurisdiction *string   `json:"jurisdiction" yaml:"jurisdiction"`
	Livemode     bool      `json:"livemode"     yaml:"livemode"`
	Metadata     Metadata  `json:"metadata"     yaml:"metadata"`
	Percentage   float64   `json:"percentage"   yaml:"percentage"`
}

// ObjectID returns the tax rate ID.
func (t TaxRate) ObjectID() string {
	return string(t.ID)
}

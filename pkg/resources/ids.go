package resources

// Identifiers are opaque strings assigned by the server. Each resource has its
// own type so an ID of one kind cannot be passed where another is expected.
// Construction is unchecked; the server validates the format.

// AccountID identifies a connected account.
type AccountID string

// String implements fmt.Stringer.
func (id AccountID) String() string {
	return string(id)
}

// ApplicationID identifies a platform application.
type ApplicationID string

// String implements fmt.Stringer.
func (id ApplicationID) String() string {
	return string(id)
}

// ChargeID identifies a charge.
type ChargeID string

// String implements fmt.Stringer.
func (id ChargeID) String() string {
	return string(id)
}

// CouponID identifies a coupon.
type CouponID string

// String implements fmt.Stringer.
func (id CouponID) String() string {
	return string(id)
}

// CustomerID identifies a customer.
type CustomerID string

// String implements fmt.Stringer.
func (id CustomerID) String() string {
	return string(id)
}

// DiscountID identifies a discount.
type DiscountID string

// String implements fmt.Stringer.
func (id DiscountID) String() string {
	return string(id)
}

// InvoiceID identifies an invoice.
type InvoiceID string

// String implements fmt.Stringer.
func (id InvoiceID) String() string {
	return string(id)
}

// InvoiceItemID identifies a pending invoice item.
type InvoiceItemID string

// String implements fmt.Stringer.
func (id InvoiceItemID) String() string {
	return string(id)
}

// InvoiceLineItemID identifies an invoice line item.
type InvoiceLineItemID string

// String implements fmt.Stringer.
func (id InvoiceLineItemID) String() string {
	return string(id)
}

// MandateID identifies a mandate.
type MandateID string

// String implements fmt.Stringer.
func (id MandateID) String() string {
	return string(id)
}

// PaymentIntentID identifies a payment intent.
type PaymentIntentID string

// String implements fmt.Stringer.
func (id PaymentIntentID) String() string {
	return string(id)
}

// PaymentMethodID identifies a payment method.
type PaymentMethodID string

// String implements fmt.Stringer.
func (id PaymentMethodID) String() string {
	return string(id)
}

// PriceID identifies a price.
type PriceID string

// String implements fmt.Stringer.
func (id PriceID) String() string {
	return string(id)
}

// ProductID identifies a product.
type ProductID string

// String implements fmt.Stringer.
func (id ProductID) String() string {
	return string(id)
}

// PromotionCodeID identifies a promotion code.
type PromotionCodeID string

// String implements fmt.Stringer.
func (id PromotionCodeID) String() string {
	return string(id)
}

// SetupAttemptID identifies a setup attempt.
type SetupAttemptID string

// String implements fmt.Stringer.
func (id SetupAttemptID) String() string {
	return string(id)
}

// SetupIntentID identifies a setup intent.
type SetupIntentID string

// String implements fmt.Stringer.
func (id SetupIntentID) String() string {
	return string(id)
}

// SubscriptionID identifies a subscription.
type SubscriptionID string

// String implements fmt.Stringer.
func (id SubscriptionID) String() string {
	return string(id)
}

// SubscriptionItemID identifies a subscription item.
type SubscriptionItemID string

// String implements fmt.Stringer.
func (id SubscriptionItemID) String() string {
	return string(id)
}

// SubscriptionScheduleID identifies a subscription schedule.
type SubscriptionScheduleID string

// String implements fmt.Stringer.
func (id SubscriptionScheduleID) String() string {
	return string(id)
}

// TaxIDID identifies a tax ID.
type TaxIDID string

// String implements fmt.Stringer.
func (id TaxIDID) String() string {
	return string(id)
}

// TaxRateID identifies a tax rate.
type TaxRateID string

// String implements fmt.Stringer.
func (id TaxRateID) String() string {
	return string(id)
}

// TestClockID identifies a test clock.
type TestClockID string

// String implements fmt.Stringer.
func (id TestClockID) String() string {
	return string(id)
}

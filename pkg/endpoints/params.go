package endpoints

import (
	"github.com/fivetwenty-io/payapi/pkg/form"
	"github.com/fivetwenty-io/payapi/pkg/resources"
)

// DiscountParams references one discount to apply. Set exactly one field.
type DiscountParams struct {
	Coupon        *resources.CouponID        `form:"coupon"`
	Discount      *resources.DiscountID      `form:"discount"`
	PromotionCode *resources.PromotionCodeID `form:"promotion_code"`
}

// AutomaticTaxParams turns automatic tax calculation on or off.
type AutomaticTaxParams struct {
	Enabled bool `form:"enabled"`
}

// TransferDataParams routes part of the payment to a connected account.
type TransferDataParams struct {
	Amount      *int64              `form:"amount"`
	Destination resources.AccountID `form:"destination"`
}

// PeriodParams is a service period bounded by two timestamps.
type PeriodParams struct {
	End   resources.Timestamp `form:"end"`
	Start resources.Timestamp `form:"start"`
}

// UpcomingInvoiceItemParams adds or changes a pending invoice item in a preview.
type UpcomingInvoiceItemParams struct {
	Amount       *int64                   `form:"amount"`
	Currency     *resources.Currency      `form:"currency"`
	Description  *string                  `form:"description"`
	Discountable *bool                    `form:"discountable"`
	Discounts    []DiscountParams         `form:"discounts"`
	InvoiceItem  *resources.InvoiceItemID `form:"invoiceitem"`
	Metadata     resources.MetadataParams `form:"metadata"`
	Period       *PeriodParams            `form:"period"`
	Price        *resources.PriceID       `form:"price"`
	Quantity     *int64                   `form:"quantity"`
	TaxRates     []resources.TaxRateID    `form:"tax_rates"`
	UnitAmount   *int64                   `form:"unit_amount"`
}

// SubscriptionItemParams adds, changes or removes a subscription item in a preview.
type SubscriptionItemParams struct {
	ClearUsage *bool                         `form:"clear_usage"`
	Deleted    *bool                         `form:"deleted"`
	ID         *resources.SubscriptionItemID `form:"id"`
	Metadata   resources.MetadataParams      `form:"metadata"`
	Price      *resources.PriceID            `form:"price"`
	Quantity   *int64                        `form:"quantity"`
	TaxRates   []resources.TaxRateID         `form:"tax_rates"`
}

// AutomaticPaymentMethodsParams lets the server choose payment methods.
type AutomaticPaymentMethodsParams struct {
	AllowRedirects *resources.AllowRedirects `form:"allow_redirects"`
	Enabled        bool                      `form:"enabled"`
}

// MandateDataParams records how the customer accepted a mandate.
type MandateDataParams struct {
	CustomerAcceptance CustomerAcceptanceParams `form:"customer_acceptance"`
}

// CustomerAcceptanceParams sets Type and the matching Online or Offline record.
type CustomerAcceptanceParams struct {
	Type       resources.CustomerAcceptanceType `form:"type"`
	AcceptedAt *resources.Timestamp             `form:"accepted_at"`
	Offline    *OfflineAcceptanceParams         `form:"offline"`
	Online     *OnlineAcceptanceParams          `form:"online"`
}

// OnlineAcceptanceParams records where an online mandate was accepted.
type OnlineAcceptanceParams struct {
	IPAddress string `form:"ip_address"`
	UserAgent string `form:"user_agent"`
}

// OfflineAcceptanceParams has no fields. When set it is sent as an empty value
// so the server sees the key.
type OfflineAcceptanceParams struct{}

// AppendForm implements form.Appender.
func (OfflineAcceptanceParams) AppendForm(values *form.Values, key string, _ form.Mode) error {
	values.Add(key, "")

	return nil
}

// SingleUseParams caps a single-use mandate.
type SingleUseParams struct {
	Amount   int64              `form:"amount"`
	Currency resources.Currency `form:"currency"`
}

// InvoiceSettingsParams are the customer's invoice defaults.
type InvoiceSettingsParams struct {
	CustomFields         []resources.CustomField    `form:"custom_fields"`
	DefaultPaymentMethod *resources.PaymentMethodID `form:"default_payment_method"`
	Footer               *string                    `form:"footer"`
}

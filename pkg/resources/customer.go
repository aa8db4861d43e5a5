package resources

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Customer is a buyer whose payment methods, invoices and subscriptions are
// tracked together.
type Customer struct {
	ID                  CustomerID                          `json:"id"                    yaml:"id"`
	Object              string                              `json:"object"                yaml:"object"`
	Address             *Address                            `json:"address"               yaml:"address"`
	Balance             int64                               `json:"balance"               yaml:"balance"`
	Created             Timestamp                           `json:"created"               yaml:"created"`
	Currency            *Currency                           `json:"currency"              yaml:"currency"`
	DefaultSource       *string                             `json:"default_source"        yaml:"default_source"`
	Delinquent          *bool                               `json:"delinquent"            yaml:"delinquent"`
	Description         *string                             `json:"description"           yaml:"description"`
	Discount            *Discount                           `json:"discount"              yaml:"discount"`
	Email               *string                             `json:"email"                 yaml:"email"`
	InvoicePrefix       *string                             `json:"invoice_prefix"        yaml:"invoice_prefix"`
	InvoiceSettings     CustomerInvoiceSettings             `json:"invoice_settings"      yaml:"invoice_settings"`
	Livemode            bool                                `json:"livemode"              yaml:"livemode"`
	Metadata            Metadata                            `json:"metadata"              yaml:"metadata"`
	Name                *string                             `json:"name"                  yaml:"name"`
	NextInvoiceSequence *int64                              `json:"next_invoice_sequence" yaml:"next_invoice_sequence"`
	Phone               *string                             `json:"phone"                 yaml:"phone"`
	PreferredLocales    []string                            `json:"preferred_locales"     yaml:"preferred_locales"`
	Shipping            *Shipping                           `json:"shipping"              yaml:"shipping"`
	TaxExempt           *TaxExempt                          `json:"tax_exempt"            yaml:"tax_exempt"`
	TestClock           *Expandable[TestClockID, TestClock] `json:"test_clock"            yaml:"test_clock"`
}

// ObjectID returns the customer ID.
func (c Customer) ObjectID() string {
	return string(c.ID)
}

// CustomerInvoiceSettings are the defaults applied to the customer's invoices.
type CustomerInvoiceSettings struct {
	CustomFields         []CustomField                               `json:"custom_fields"          yaml:"custom_fields"`
	DefaultPaymentMethod *Expandable[PaymentMethodID, PaymentMethod] `json:"default_payment_method" yaml:"default_payment_method"`
	Footer               *string                                     `json:"footer"                 yaml:"footer"`
}

// TaxExempt is the customer's tax exemption status.
type TaxExempt string

// Tax exemption statuses.
const (
	TaxExemptExempt  TaxExempt = "exempt"
	TaxExemptNone    TaxExempt = "none"
	TaxExemptReverse TaxExempt = "reverse"
)

var taxExemptValues = []TaxExempt{
	TaxExemptExempt, TaxExemptNone, TaxExemptReverse,
}

// ParseTaxExempt never fails; unrecognized values are retained.
func ParseTaxExempt(raw string) TaxExempt {
	return TaxExempt(raw)
}

func (t TaxExempt) String() string { return string(t) }

func (t TaxExempt) IsKnown() bool { return isKnown(t, taxExemptValues) }

func (t TaxExempt) IsUnknown() bool { return !t.IsKnown() }

// CustomerOrDeleted is the result of retrieving a customer, which may have been
// deleted. Exactly one field is set.
type CustomerOrDeleted struct {
	Customer *Customer
	Deleted  *DeletedCustomer
}

// IsDeleted reports whether the customer no longer exists.
func (c CustomerOrDeleted) IsDeleted() bool {
	return c.Deleted != nil
}

// ObjectID returns the ID of whichever variant is set.
func (c CustomerOrDeleted) ObjectID() string {
	switch {
	case c.Deleted != nil:
		return c.Deleted.ObjectID()
	case c.Customer != nil:
		return c.Customer.ObjectID()
	default:
		return ""
	}
}

// UnmarshalJSON selects the variant by the "deleted" flag.
func (c *CustomerOrDeleted) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var probe struct {
		Deleted bool `json:"deleted"`
	}

	err := json.Unmarshal(data, &probe)
	if err != nil {
		return fmt.Errorf("decoding customer: %w", err)
	}

	if probe.Deleted {
		var deleted DeletedCustomer

		err = json.Unmarshal(data, &deleted)
		if err != nil {
			return fmt.Errorf("decoding deleted customer: %w", err)
		}

		c.Customer, c.Deleted = nil, &deleted

		return nil
	}

	var customer Customer

	err = json.Unmarshal(data, &customer)
	if err != nil {
		return fmt.Errorf("decoding customer: %w", err)
	}

	c.Customer, c.Deleted = &customer, nil

	return nil
}

// MarshalJSON writes the variant that is set.
func (c CustomerOrDeleted) MarshalJSON() ([]byte, error) {
	switch {
	case c.Deleted != nil:
		return json.Marshal(c.Deleted)
	case c.Customer != nil:
		return json.Marshal(c.Customer)
	default:
		return []byte("null"), nil
	}
}

// MarshalYAML writes the variant that is set.
func (c CustomerOrDeleted) MarshalYAML() (interface{}, error) {
	if c.Deleted != nil {
		return c.Deleted, nil
	}

	return c.Customer, nil
}

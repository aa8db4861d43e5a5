package resources

// Mandate records the customer's permission to debit their payment method.
type Mandate struct {
	ID                 MandateID                                  `json:"id"                   yaml:"id"`
	Object             string                                     `json:"object"               yaml:"object"`
	CustomerAcceptance CustomerAcceptance                         `json:"customer_acceptance"  yaml:"customer_acceptance"`
	Livemode           bool                                       `json:"livemode"             yaml:"livemode"`
	PaymentMethod      Expandable[PaymentMethodID, PaymentMethod] `json:"payment_method"       yaml:"payment_method"`
	SingleUse          *MandateSingleUse                          `json:"single_use,omitempty" yaml:"single_use,omitempty"`
	Status             MandateStatus                              `json:"status"               yaml:"status"`
	Type               MandateType                                `json:"type"                 yaml:"type"`
}

// ObjectID returns the mandate ID.
func (m Mandate) ObjectID() string {
	return string(m.ID)
}

// CustomerAcceptance describes how the customer agreed to the mandate.
type CustomerAcceptance struct {
	AcceptedAt *Timestamp             `json:"accepted_at"       yaml:"accepted_at"`
	Offline    *OfflineAcceptance     `json:"offline,omitempty" yaml:"offline,omitempty"`
	Online     *OnlineAcceptance      `json:"online,omitempty"  yaml:"online,omitempty"`
	Type       CustomerAcceptanceType `json:"type"              yaml:"type"`
}

// OfflineAcceptance carries no fields; its presence is the signal.
type OfflineAcceptance struct{}

// OnlineAcceptance identifies the browser session that accepted the mandate.
type OnlineAcceptance struct {
	IPAddress *string `json:"ip_address" yaml:"ip_address"`
	UserAgent *string `json:"user_agent" yaml:"user_agent"`
}

// MandateSingleUse is the amount a single-use mandate allows.
type MandateSingleUse struct {
	Amount   int64    `json:"amount"   yaml:"amount"`
	Currency Currency `json:"currency" yaml:"currency"`
}

// CustomerAcceptanceType is how the mandate was accepted.
type CustomerAcceptanceType string

// Acceptance types.
const (
	CustomerAcceptanceTypeOffline CustomerAcceptanceType = "offline"
	CustomerAcceptanceTypeOnline  CustomerAcceptanceType = "online"
)

var customerAcceptanceTypeValues = []CustomerAcceptanceType{
	CustomerAcceptanceTypeOffline, CustomerAcceptanceTypeOnline,
}

// ParseCustomerAcceptanceType never fails; unrecognized values are retained.
func ParseCustomerAcceptanceType(raw string) CustomerAcceptanceType {
	return CustomerAcceptanceType(raw)
}

func (c CustomerAcceptanceType) String() string { return string(c) }

func (c CustomerAcceptanceType) IsKnown() bool { return isKnown(c, customerAcceptanceTypeValues) }

func (c CustomerAcceptanceType) IsUnknown() bool { return !c.IsKnown() }

// MandateStatus reports whether the mandate can be used.
type MandateStatus string

// Mandate statuses.
const (
	MandateStatusActive   MandateStatus = "active"
	MandateStatusInactive MandateStatus = "inactive"
	MandateStatusPending  MandateStatus = "pending"
)

var mandateStatusValues = []MandateStatus{
	MandateStatusActive, MandateStatusInactive, MandateStatusPending,
}

// ParseMandateStatus never fails; unrecognized values are retained.
func ParseMandateStatus(raw string) MandateStatus {
	return MandateStatus(raw)
}

func (m MandateStatus) String() string { return string(m) }

func (m MandateStatus) IsKnown() bool { return isKnown(m, mandateStatusValues) }

func (m MandateStatus) IsUnknown() bool { return !m.IsKnown() }

// MandateType is the reuse policy of a mandate.
type MandateType string

// Mandate types.
const (
	MandateTypeMultiUse  MandateType = "multi_use"
	MandateTypeSingleUse MandateType = "single_use"
)

var mandateTypeValues = []MandateType{
	MandateTypeMultiUse, MandateTypeSingleUse,
}

// ParseMandateType never fails; unrecognized values are retained.
func ParseMandateType(raw string) MandateType {
	return MandateType(raw)
}

func (m MandateType) String() string { return string(m) }

func (m MandateType) IsKnown() bool { return isKnown(m, mandateTypeValues) }

func (m MandateType) IsUnknown() bool { return !m.IsKnown() }

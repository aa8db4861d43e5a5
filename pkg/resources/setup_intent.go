package resources

// SetupIntent guides the collection of a payment method for future payments.
type SetupIntent struct {
	ID                      SetupIntentID                               `json:"id"                        yaml:"id"`
	Object                  string                                      `json:"object"                    yaml:"object"`
	Application             *ApplicationID                              `json:"application"               yaml:"application"`
	AttachToSelf            *bool                                       `json:"attach_to_self,omitempty"  yaml:"attach_to_self,omitempty"`
	AutomaticPaymentMethods *SetupIntentAutomaticPaymentMethods         `json:"automatic_payment_methods" yaml:"automatic_payment_methods"`
	CancellationReason      *SetupIntentCancellationReason              `json:"cancellation_reason"       yaml:"cancellation_reason"`
	ClientSecret            *string                                     `json:"client_secret"             yaml:"client_secret"`
	Created                 Timestamp                                   `json:"created"                   yaml:"created"`
	Customer                *Expandable[CustomerID, Customer]           `json:"customer"                  yaml:"customer"`
	Description             *string                                     `json:"description"               yaml:"description"`
	FlowDirections          []FlowDirection                             `json:"flow_directions"           yaml:"flow_directions"`
	LastSetupError          *SetupError                                 `json:"last_setup_error"          yaml:"last_setup_error"`
	LatestAttempt           *SetupAttemptID                             `json:"latest_attempt"            yaml:"latest_attempt"`
	Livemode                bool                                        `json:"livemode"                  yaml:"livemode"`
	Mandate                 *Expandable[MandateID, Mandate]             `json:"mandate"                   yaml:"mandate"`
	Metadata                Metadata                                    `json:"metadata"                  yaml:"metadata"`
	NextAction              *SetupIntentNextAction                      `json:"next_action"               yaml:"next_action"`
	OnBehalfOf              *AccountID                                  `json:"on_behalf_of"              yaml:"on_behalf_of"`
	PaymentMethod           *Expandable[PaymentMethodID, PaymentMethod] `json:"payment_method"            yaml:"payment_method"`
	PaymentMethodTypes      []PaymentMethodType                         `json:"payment_method_types"      yaml:"payment_method_types"`
	SingleUseMandate        *Expandable[MandateID, Mandate]             `json:"single_use_mandate"        yaml:"single_use_mandate"`
	Status                  SetupIntentStatus                           `json:"status"                    yaml:"status"`
	Usage                   SetupIntentUsage                            `json:"usage"                     yaml:"usage"`
}

// ObjectID returns the setup intent ID.
func (s SetupIntent) ObjectID() string {
	return string(s.ID)
}

// SetupIntentAutomaticPaymentMethods reports whether payment methods come
// from dashboard settings.
type SetupIntentAutomaticPaymentMethods struct {
	AllowRedirects *AllowRedirects `json:"allow_redirects" yaml:"allow_redirects"`
	Enabled        *bool           `json:"enabled"         yaml:"enabled"`
}

// SetupError is the last failure recorded while setting up the payment method.
type SetupError struct {
	Code          *string        `json:"code"           yaml:"code"`
	DeclineCode   *string        `json:"decline_code"   yaml:"decline_code"`
	DocURL        *string        `json:"doc_url"        yaml:"doc_url"`
	Message       *string        `json:"message"        yaml:"message"`
	Param         *string        `json:"param"          yaml:"param"`
	PaymentMethod *PaymentMethod `json:"payment_method" yaml:"payment_method"`
	Type          SetupErrorType `json:"type"           yaml:"type"`
}

// SetupIntentNextAction tells the integration what the customer must do next.
// Type selects which of the other fields is populated.
type SetupIntentNextAction struct {
	Type                    NextActionType           `json:"type"                                yaml:"type"`
	RedirectToURL           *NextActionRedirect      `json:"redirect_to_url,omitempty"           yaml:"redirect_to_url,omitempty"`
	VerifyWithMicrodeposits *NextActionMicrodeposits `json:"verify_with_microdeposits,omitempty" yaml:"verify_with_microdeposits,omitempty"`
}

// NextActionRedirect sends the customer to a URL to authenticate.
type NextActionRedirect struct {
	ReturnURL *string `json:"return_url" yaml:"return_url"`
	URL       *string `json:"url"        yaml:"url"`
}

// NextActionMicrodeposits waits for the customer to confirm deposit amounts.
type NextActionMicrodeposits struct {
	ArrivalDate           Timestamp         `json:"arrival_date"            yaml:"arrival_date"`
	HostedVerificationURL string            `json:"hosted_verification_url" yaml:"hosted_verification_url"`
	MicrodepositType      *MicrodepositType `json:"microdeposit_type"       yaml:"microdeposit_type"`
}

// SetupIntentStatus is the state of a setup intent.
type SetupIntentStatus string

// Setup intent statuses.
const (
	SetupIntentStatusCanceled              SetupIntentStatus = "canceled"
	SetupIntentStatusProcessing            SetupIntentStatus = "processing"
	SetupIntentStatusRequiresAction        SetupIntentStatus = "requires_action"
	SetupIntentStatusRequiresConfirmation  SetupIntentStatus = "requires_confirmation"
	SetupIntentStatusRequiresPaymentMethod SetupIntentStatus = "requires_payment_method"
	SetupIntentStatusSucceeded             SetupIntentStatus = "succeeded"
)

var setupIntentStatusValues = []SetupIntentStatus{
	SetupIntentStatusCanceled, SetupIntentStatusProcessing, SetupIntentStatusRequiresAction,
	SetupIntentStatusRequiresConfirmation, SetupIntentStatusRequiresPaymentMethod,
	SetupIntentStatusSucceeded,
}

// ParseSetupIntentStatus never fails; unrecognized values are retained.
func ParseSetupIntentStatus(raw string) SetupIntentStatus {
	return SetupIntentStatus(raw)
}

func (s SetupIntentStatus) String() string { return string(s) }

func (s SetupIntentStatus) IsKnown() bool { return isKnown(s, setupIntentStatusValues) }

func (s SetupIntentStatus) IsUnknown() bool { return !s.IsKnown() }

// SetupIntentUsage says how the saved payment method will be used.
type SetupIntentUsage string

// Setup intent usages.
const (
	SetupIntentUsageOffSession SetupIntentUsage = "off_session"
	SetupIntentUsageOnSession  SetupIntentUsage = "on_session"
)

var setupIntentUsageValues = []SetupIntentUsage{
	SetupIntentUsageOffSession, SetupIntentUsageOnSession,
}

// ParseSetupIntentUsage never fails; unrecognized values are retained.
func ParseSetupIntentUsage(raw string) SetupIntentUsage {
	return SetupIntentUsage(raw)
}

func (s SetupIntentUsage) String() string { return string(s) }

func (s SetupIntentUsage) IsKnown() bool { return isKnown(s, setupIntentUsageValues) }

func (s SetupIntentUsage) IsUnknown() bool { return !s.IsKnown() }

// FlowDirection is the direction of money movement a setup intent allows.
type FlowDirection string

// Flow directions.
const (
	FlowDirectionInbound  FlowDirection = "inbound"
	FlowDirectionOutbound FlowDirection = "outbound"
)

var flowDirectionValues = []FlowDirection{
	FlowDirectionInbound, FlowDirectionOutbound,
}

// ParseFlowDirection never fails; unrecognized values are retained.
func ParseFlowDirection(raw string) FlowDirection {
	return FlowDirection(raw)
}

func (f FlowDirection) String() string { return string(f) }

func (f FlowDirection) IsKnown() bool { return isKnown(f, flowDirectionValues) }

func (f FlowDirection) IsUnknown() bool { return !f.IsKnown() }

// SetupIntentCancellationReason is recorded when a setup intent is canceled.
type SetupIntentCancellationReason string

// Cancellation reasons.
const (
	SetupIntentCancellationReasonAbandoned           SetupIntentCancellationReason = "abandoned"
	SetupIntentCancellationReasonDuplicate           SetupIntentCancellationReason = "duplicate"
	SetupIntentCancellationReasonRequestedByCustomer SetupIntentCancellationReason = "requested_by_customer"
)

var setupIntentCancellationReasonValues = []SetupIntentCancellationReason{
	SetupIntentCancellationReasonAbandoned, SetupIntentCancellationReasonDuplicate,
	SetupIntentCancellationReasonRequestedByCustomer,
}

// ParseSetupIntentCancellationReason never fails; unrecognized values are retained.
func ParseSetupIntentCancellationReason(raw string) SetupIntentCancellationReason {
	return SetupIntentCancellationReason(raw)
}

func (s SetupIntentCancellationReason) String() string { return string(s) }

func (s SetupIntentCancellationReason) IsKnown() bool { return isKnown(s, setupIntentCancellationReasonValues) }

func (s SetupIntentCancellationReason) IsUnknown() bool { return !s.IsKnown() }

// AllowRedirects limits automatic payment methods to those without redirects.
type AllowRedirects string

// Redirect policies.
const (
	AllowRedirectsAlways AllowRedirects = "always"
	AllowRedirectsNever  AllowRedirects = "never"
)

var allowRedirectsValues = []AllowRedirects{
	AllowRedirectsAlways, AllowRedirectsNever,
}

// ParseAllowRedirects never fails; unrecognized values are retained.
func ParseAllowRedirects(raw string) AllowRedirects {
	return AllowRedirects(raw)
}

func (a AllowRedirects) String() string { return string(a) }

func (a AllowRedirects) IsKnown() bool { return isKnown(a, allowRedirectsValues) }

func (a AllowRedirects) IsUnknown() bool { return !a.IsKnown() }

// NextActionType names the pending customer action.
type NextActionType string

// Next action types.
const (
	NextActionTypeRedirectToURL           NextActionType = "redirect_to_url"
	NextActionTypeUseStripeSDK            NextActionType = "use_stripe_sdk"
	NextActionTypeVerifyWithMicrodeposits NextActionType = "verify_with_microdeposits"
)

var nextActionTypeValues = []NextActionType{
	NextActionTypeRedirectToURL, NextActionTypeUseStripeSDK,
	NextActionTypeVerifyWithMicrodeposits,
}

// ParseNextActionType never fails; unrecognized values are retained.
func ParseNextActionType(raw string) NextActionType {
	return NextActionType(raw)
}

func (n NextActionType) String() string { return string(n) }

func (n NextActionType) IsKnown() bool { return isKnown(n, nextActionTypeValues) }

func (n NextActionType) IsUnknown() bool { return !n.IsKnown() }

// MicrodepositType is how bank account ownership is being verified.
type MicrodepositType string

// Microdeposit types.
const (
	MicrodepositTypeAmounts        MicrodepositType = "amounts"
	MicrodepositTypeDescriptorCode MicrodepositType = "descriptor_code"
)

var microdepositTypeValues = []MicrodepositType{
	MicrodepositTypeAmounts, MicrodepositTypeDescriptorCode,
}

// ParseMicrodepositType never fails; unrecognized values are retained.
func ParseMicrodepositType(raw string) MicrodepositType {
	return MicrodepositType(raw)
}

func (m MicrodepositType) String() string { return string(m) }

func (m MicrodepositType) IsKnown() bool { return isKnown(m, microdepositTypeValues) }

func (m MicrodepositType) IsUnknown() bool { return !m.IsKnown() }

// SetupErrorType is the category of a setup failure.
type SetupErrorType string

// Setup error types.
const (
	SetupErrorTypeApiError            SetupErrorType = "api_error"
	SetupErrorTypeCardError           SetupErrorType = "card_error"
	SetupErrorTypeIdempotencyError    SetupErrorType = "idempotency_error"
	SetupErrorTypeInvalidRequestError SetupErrorType = "invalid_request_error"
)

var setupErrorTypeValues = []SetupErrorType{
	SetupErrorTypeApiError, SetupErrorTypeCardError, SetupErrorTypeIdempotencyError,
	SetupErrorTypeInvalidRequestError,
}

// ParseSetupErrorType never fails; unrecognized values are retained.
func ParseSetupErrorType(raw string) SetupErrorType {
	return SetupErrorType(raw)
}

func (s SetupErrorType) String() string { return string(s) }

func (s SetupErrorType) IsKnown() bool { return isKnown(s, setupErrorTypeValues) }

func (s SetupErrorType) IsUnknown() bool { return !s.IsKnown() }

package resources

// PaymentMethod is a reusable instrument such as a card or bank account.
type PaymentMethod struct {
	ID             PaymentMethodID    `json:"id"              yaml:"id"`
	Object         string             `json:"object"          yaml:"object"`
	BillingDetails BillingDetails     `json:"billing_details" yaml:"billing_details"`
	Card           *PaymentMethodCard `json:"card,omitempty"  yaml:"card,omitempty"`
	Created        Timestamp          `json:"created"         yaml:"created"`
	Customer       *CustomerID        `json:"customer"        yaml:"customer"`
	Livemode       bool               `json:"livemode"        yaml:"livemode"`
	Metadata       Metadata           `json:"metadata"        yaml:"metadata"`
	Type           PaymentMethodType  `json:"type"            yaml:"type"`
}

// ObjectID returns the payment method ID.
func (p PaymentMethod) ObjectID() string {
	return string(p.ID)
}

// BillingDetails is the contact information attached to a payment method.
type BillingDetails struct {
	Address *Address `form:"address" json:"address" yaml:"address"`
	Email   *string  `form:"email"   json:"email"   yaml:"email"`
	Name    *string  `form:"name"    json:"name"    yaml:"name"`
	Phone   *string  `form:"phone"   json:"phone"   yaml:"phone"`
}

// PaymentMethodCard holds the non-sensitive details of a card.
type PaymentMethodCard struct {
	Brand       CardBrand   `json:"brand"       yaml:"brand"`
	Country     *string     `json:"country"     yaml:"country"`
	ExpMonth    int64       `json:"exp_month"   yaml:"exp_month"`
	ExpYear     int64       `json:"exp_year"    yaml:"exp_year"`
	Fingerprint *string     `json:"fingerprint" yaml:"fingerprint"`
	Funding     CardFunding `json:"funding"     yaml:"funding"`
	Last4       string      `json:"last4"       yaml:"last4"`
}

// PaymentMethodType names the kind of instrument. New types appear regularly.
type PaymentMethodType string

// Payment method types.
const (
	PaymentMethodTypeACSSDebit        PaymentMethodType = "acss_debit"
	PaymentMethodTypeAffirm           PaymentMethodType = "affirm"
	PaymentMethodTypeAfterpayClearpay PaymentMethodType = "afterpay_clearpay"
	PaymentMethodTypeAlipay           PaymentMethodType = "alipay"
	PaymentMethodTypeAUBECSDebit      PaymentMethodType = "au_becs_debit"
	PaymentMethodTypeBACSDebit        PaymentMethodType = "bacs_debit"
	PaymentMethodTypeBancontact       PaymentMethodType = "bancontact"
	PaymentMethodTypeBlik             PaymentMethodType = "blik"
	PaymentMethodTypeBoleto           PaymentMethodType = "boleto"
	PaymentMethodTypeCard             PaymentMethodType = "card"
	PaymentMethodTypeCardPresent      PaymentMethodType = "card_present"
	PaymentMethodTypeCashapp          PaymentMethodType = "cashapp"
	PaymentMethodTypeCustomerBalance  PaymentMethodType = "customer_balance"
	PaymentMethodTypeEps              PaymentMethodType = "eps"
	PaymentMethodTypeFpx              PaymentMethodType = "fpx"
	PaymentMethodTypeGiropay          PaymentMethodType = "giropay"
	PaymentMethodTypeGrabpay          PaymentMethodType = "grabpay"
	PaymentMethodTypeIdeal            PaymentMethodType = "ideal"
	PaymentMethodTypeKlarna           PaymentMethodType = "klarna"
	PaymentMethodTypeKonbini          PaymentMethodType = "konbini"
	PaymentMethodTypeLink             PaymentMethodType = "link"
	PaymentMethodTypeOxxo             PaymentMethodType = "oxxo"
	PaymentMethodTypeP24              PaymentMethodType = "p24"
	PaymentMethodTypePaynow           PaymentMethodType = "paynow"
	PaymentMethodTypePaypal           PaymentMethodType = "paypal"
	PaymentMethodTypePix              PaymentMethodType = "pix"
	PaymentMethodTypePromptpay        PaymentMethodType = "promptpay"
	PaymentMethodTypeSEPADebit        PaymentMethodType = "sepa_debit"
	PaymentMethodTypeSofort           PaymentMethodType = "sofort"
	PaymentMethodTypeUSBankAccount    PaymentMethodType = "us_bank_account"
	PaymentMethodTypeWechatPay        PaymentMethodType = "wechat_pay"
	PaymentMethodTypeZip              PaymentMethodType = "zip"
)

var paymentMethodTypeValues = []PaymentMethodType{
	PaymentMethodTypeACSSDebit, PaymentMethodTypeAffirm, PaymentMethodTypeAfterpayClearpay,
	PaymentMethodTypeAlipay, PaymentMethodTypeAUBECSDebit, PaymentMethodTypeBACSDebit,
	PaymentMethodTypeBancontact, PaymentMethodTypeBlik, PaymentMethodTypeBoleto,
	PaymentMethodTypeCard, PaymentMethodTypeCardPresent, PaymentMethodTypeCashapp,
	PaymentMethodTypeCustomerBalance, PaymentMethodTypeEps, PaymentMethodTypeFpx,
	PaymentMethodTypeGiropay, PaymentMethodTypeGrabpay, PaymentMethodTypeIdeal,
	PaymentMethodTypeKlarna, PaymentMethodTypeKonbini, PaymentMethodTypeLink,
	PaymentMethodTypeOxxo, PaymentMethodTypeP24, PaymentMethodTypePaynow, PaymentMethodTypePaypal,
	PaymentMethodTypePix, PaymentMethodTypePromptpay, PaymentMethodTypeSEPADebit,
	PaymentMethodTypeSofort, PaymentMethodTypeUSBankAccount, PaymentMethodTypeWechatPay,
	PaymentMethodTypeZip,
}

// ParsePaymentMethodType never fails; unrecognized values are retained.
func ParsePaymentMethodType(raw string) PaymentMethodType {
	return PaymentMethodType(raw)
}

func (p PaymentMethodType) String() string { return string(p) }

func (p PaymentMethodType) IsKnown() bool { return isKnown(p, paymentMethodTypeValues) }

func (p PaymentMethodType) IsUnknown() bool { return !p.IsKnown() }

// CardBrand is the card network. The server itself reports "unknown" when it
// cannot tell, which is a known value here.
type CardBrand string

// Card brands.
const (
	CardBrandAmex       CardBrand = "amex"
	CardBrandDiners     CardBrand = "diners"
	CardBrandDiscover   CardBrand = "discover"
	CardBrandEftposAU   CardBrand = "eftpos_au"
	CardBrandJcb        CardBrand = "jcb"
	CardBrandMastercard CardBrand = "mastercard"
	CardBrandUnionpay   CardBrand = "unionpay"
	CardBrandUnknown    CardBrand = "unknown"
	CardBrandVisa       CardBrand = "visa"
)

var cardBrandValues = []CardBrand{
	CardBrandAmex, CardBrandDiners, CardBrandDiscover, CardBrandEftposAU, CardBrandJcb,
	CardBrandMastercard, CardBrandUnionpay, CardBrandUnknown, CardBrandVisa,
}

// ParseCardBrand never fails; unrecognized values are retained.
func ParseCardBrand(raw string) CardBrand {
	return CardBrand(raw)
}

func (c CardBrand) String() string { return string(c) }

func (c CardBrand) IsKnown() bool { return isKnown(c, cardBrandValues) }

func (c CardBrand) IsUnknown() bool { return !c.IsKnown() }

// CardFunding is the card's funding source.
type CardFunding string

// Card funding sources.
const (
	CardFundingCredit  CardFunding = "credit"
	CardFundingDebit   CardFunding = "debit"
	CardFundingPrepaid CardFunding = "prepaid"
	CardFundingUnknown CardFunding = "unknown"
)

var cardFundingValues = []CardFunding{
	CardFundingCredit, CardFundingDebit, CardFundingPrepaid, CardFundingUnknown,
}

// ParseCardFunding never fails; unrecognized values are retained.
func ParseCardFunding(raw string) CardFunding {
	return CardFunding(raw)
}

func (c CardFunding) String() string { return string(c) }

func (c CardFunding) IsKnown() bool { return isKnown(c, cardFundingValues) }

func (c CardFunding) IsUnknown() bool { return !c.IsKnown() }

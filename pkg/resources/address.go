package resources

// Address is a postal address. Every component is optional.
type Address struct {
	City       *string `form:"city"        json:"city"        yaml:"city"`
	Country    *string `form:"country"     json:"country"     yaml:"country"`
	Line1      *string `form:"line1"       json:"line1"       yaml:"line1"`
	Line2      *string `form:"line2"       json:"line2"       yaml:"line2"`
	PostalCode *string `form:"postal_code" json:"postal_code" yaml:"postal_code"`
	State      *string `form:"state"       json:"state"       yaml:"state"`
}

// Shipping is a delivery address with recipient details.
type Shipping struct {
	Address        Address `form:"address"         json:"address"                   yaml:"address"`
	Name           string  `form:"name"            json:"name"                      yaml:"name"`
	Phone          *string `form:"phone"           json:"phone"                     yaml:"phone"`
	Carrier        *string `form:"carrier"         json:"carrier,omitempty"         yaml:"carrier,omitempty"`
	TrackingNumber *string `form:"tracking_number" json:"tracking_number,omitempty" yaml:"tracking_number,omitempty"`
}

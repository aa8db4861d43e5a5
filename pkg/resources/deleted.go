package resources

// DeletedTestClock is returned when a test clock is deleted.
type DeletedTestClock struct {
	ID      TestClockID `json:"id"      yaml:"id"`
	Object  string      `json:"object"  yaml:"object"`
	Deleted bool        `json:"deleted" yaml:"deleted"`
}

// ObjectID returns the deleted clock ID.
func (d DeletedTestClock) ObjectID() string {
	return string(d.ID)
}

// DeletedInvoice is returned when a draft invoice is deleted.
type DeletedInvoice struct {
	ID      InvoiceID `json:"id"      yaml:"id"`
	Object  string    `json:"object"  yaml:"object"`
	Deleted bool      `json:"deleted" yaml:"deleted"`
}

// ObjectID returns the deleted invoice ID.
func (d DeletedInvoice) ObjectID() string {
	return string(d.ID)
}

// DeletedCustomer is returned when a customer is deleted, and by retrieve
// when the ID names a customer that no longer exists.
type DeletedCustomer struct {
	ID      CustomerID `json:"id"      yaml:"id"`
	Object  string     `json:"object"  yaml:"object"`
	Deleted bool       `json:"deleted" yaml:"deleted"`
}

// ObjectID returns the deleted customer ID.
func (d DeletedCustomer) ObjectID() string {
	return string(d.ID)
}

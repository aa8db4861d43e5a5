package resources

// TestClock freezes time for the objects attached to it so billing can be
// simulated without waiting.
type TestClock struct {
	ID           TestClockID     `json:"id"            yaml:"id"`
	Object       string          `json:"object"        yaml:"object"`
	Created      Timestamp       `json:"created"       yaml:"created"`
	DeletesAfter Timestamp       `json:"deletes_after" yaml:"deletes_after"`
	FrozenTime   Timestamp       `json:"frozen_time"   yaml:"frozen_time"`
	Livemode     bool            `json:"livemode"      yaml:"livemode"`
	Name         *string         `json:"name"          yaml:"name"`
	Status       TestClockStatus `json:"status"        yaml:"status"`
}

// ObjectID returns the clock ID.
func (t TestClock) ObjectID() string {
	return string(t.ID)
}

// TestClockStatus reports whether a clock is still catching up to its frozen time.
type TestClockStatus string

// Test clock statuses.
const (
	TestClockStatusAdvancing       TestClockStatus = "advancing"
	TestClockStatusInternalFailure TestClockStatus = "internal_failure"
	TestClockStatusReady           TestClockStatus = "ready"
)

var testClockStatusValues = []TestClockStatus{
	TestClockStatusAdvancing, TestClockStatusInternalFailure, TestClockStatusReady,
}

// ParseTestClockStatus never fails; unrecognized values are retained.
func ParseTestClockStatus(raw string) TestClockStatus {
	return TestClockStatus(raw)
}

func (t TestClockStatus) String() string { return string(t) }

func (t TestClockStatus) IsKnown() bool { return isKnown(t, testClockStatusValues) }

func (t TestClockStatus) IsUnknown() bool { return !t.IsKnown() }

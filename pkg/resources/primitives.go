package resources

import (
	"strconv"
	"time"
)

// Timestamp is a point in time as signed seconds since the Unix epoch.
type Timestamp int64

// TimestampFrom converts a time.Time, truncating to whole seconds.
func TimestampFrom(t time.Time) Timestamp {
	return Timestamp(t.Unix())
}

// Time returns the timestamp as a UTC time.Time.
func (t Timestamp) Time() time.Time {
	return time.Unix(int64(t), 0).UTC()
}

// String renders the decimal seconds value, which is also its wire form.
func (t Timestamp) String() string {
	return strconv.FormatInt(int64(t), 10)
}

// Metadata is the caller-defined string map attached to most resources.
type Metadata map[string]string

// MetadataParams is the request form of Metadata. It distinguishes the three
// states the server understands for a key: absent from the map (left
// unchanged), mapped to an empty string (cleared) and mapped to nil (unset).
// A non-nil empty MetadataParams clears every key; a nil one sends nothing.
type MetadataParams map[string]*string

// NewMetadataParams builds params that set each entry of values.
func NewMetadataParams(values map[string]string) MetadataParams {
	params := make(MetadataParams, len(values))
	for key, value := range values {
		params.Set(key, value)
	}

	return params
}

// Set assigns value to key.
func (m MetadataParams) Set(key, value string) MetadataParams {
	m[key] = &value

	return m
}

// Clear sends an empty string for key.
func (m MetadataParams) Clear(key string) MetadataParams {
	empty := ""
	m[key] = &empty

	return m
}

// Unset marks key as null.
func (m MetadataParams) Unset(key string) MetadataParams {
	m[key] = nil

	return m
}

package resources

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Expandable is a reference the server returns either as a bare ID or, when
// the request asked to expand it, as the full object.
type Expandable[ID ~string, T any] struct {
	ID     ID
	Object *T
}

// ExpandableID builds an unexpanded reference.
func ExpandableID[ID ~string, T any](id ID) *Expandable[ID, T] {
	return &Expandable[ID, T]{ID: id}
}

// IsExpanded reports whether the full object is present.
func (e *Expandable[ID, T]) IsExpanded() bool {
	return e != nil && e.Object != nil
}

// UnmarshalJSON tries the ID form first and falls back to the object form.
func (e *Expandable[ID, T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	var id ID

	err := json.Unmarshal(trimmed, &id)
	if err == nil {
		e.ID = id
		e.Object = nil

		return nil
	}

	var object T

	err = json.Unmarshal(trimmed, &object)
	if err != nil {
		return fmt.Errorf("decoding expandable reference: %w", err)
	}

	e.Object = &object

	if identified, ok := any(&object).(interface{ ObjectID() string }); ok {
		e.ID = ID(identified.ObjectID())
	}

	return nil
}

// MarshalJSON writes the object when expanded and the ID otherwise.
func (e Expandable[ID, T]) MarshalJSON() ([]byte, error) {
	if e.Object != nil {
		return json.Marshal(e.Object)
	}

	return json.Marshal(e.ID)
}

// MarshalYAML mirrors MarshalJSON.
func (e Expandable[ID, T]) MarshalYAML() (interface{}, error) {
	if e.Object != nil {
		return e.Object, nil
	}

	return string(e.ID), nil
}

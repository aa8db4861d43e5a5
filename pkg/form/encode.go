// Package form serializes parameter records into the API's
// application/x-www-form-urlencoded dialect.
//
// Records are structs whose exported fields carry a `form:"name"` tag. A nil
// pointer, slice or map is absent and produces no key at all. A non-nil empty
// value is present: an empty string encodes as "name=", and so do empty slices
// and maps, which the server reads as "clear this field". Nested records use
// bracket keys (parent[child]), maps use parent[key], and sequences use
// explicit indices (list[0], list[1]) in request bodies and repeated keys in
// query strings.
package form

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strconv"
)

// Static errors for err113 compliance.
var (
	ErrUnknownEnumValue = errors.New("unknown enum value cannot be sent")
	ErrUnsupportedType  = errors.New("unsupported parameter type")
	ErrNotStruct        = errors.New("parameters must be a struct")
)

// Mode selects how sequences are laid out.
type Mode int

const (
	// ModeBody indexes sequences explicitly: list[0]=a&list[1]=b.
	ModeBody Mode = iota
	// ModeQuery repeats the key for scalar sequences: list=a&list=b.
	ModeQuery
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	if m == ModeQuery {
		return "query"
	}

	return "body"
}

// Enum is implemented by string-backed enums. Values for which IsKnown
// returns false were received from the server and are never sent back.
type Enum interface {
	IsKnown() bool
}

// Valuer is implemented by types that encode as a single scalar.
type Valuer interface {
	FormValue() (string, error)
}

// Appender is implemented by types that write their own keys under key.
// Untagged unions use it to emit whichever variant is populated without a
// discriminator.
type Appender interface {
	AppendForm(values *Values, key string, mode Mode) error
}

// Encode serializes params, which must be a struct or a pointer to one. A nil
// pointer encodes to an empty set.
func Encode(params any, mode Mode) (*Values, error) {
	values := &Values{}

	if params == nil {
		return values, nil
	}

	rv := reflect.ValueOf(params)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return values, nil
		}

		rv = rv.Elem()
	}

	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: got %s", ErrNotStruct, rv.Kind())
	}

	if custom, ok := asAppender(rv); ok {
		err := custom.AppendForm(values, "", mode)
		if err != nil {
			return nil, err
		}

		return values, nil
	}

	err := encodeStruct(values, "", rv, mode)
	if err != nil {
		return nil, err
	}

	return values, nil
}

// AppendValue encodes value under key. Appender implementations call it to
// serialize the variant they hold.
func AppendValue(values *Values, key string, value any, mode Mode) error {
	return encodeValue(values, key, reflect.ValueOf(value), mode)
}

func childKey(prefix, name string) string {
	if prefix == "" {
		return name
	}

	return prefix + "[" + name + "]"
}

func encodeStruct(values *Values, prefix string, rv reflect.Value, mode Mode) error {
	rt := rv.Type()

	for i := range rt.NumField() {
		field := rt.Field(i)
		if !field.IsExported() && !field.Anonymous {
			continue
		}

		tag, tagged := field.Tag.Lookup("form")
		if tag == "-" {
			continue
		}

		fieldValue := rv.Field(i)

		if !tagged {
			if field.Anonymous && indirectKind(field.Type) == reflect.Struct {
				if fieldValue.Kind() == reflect.Pointer {
					if fieldValue.IsNil() {
						continue
					}

					fieldValue = fieldValue.Elem()
				}

				err := encodeStruct(values, prefix, fieldValue, mode)
				if err != nil {
					return err
				}
			}

			continue
		}

		if !field.IsExported() {
			continue
		}

		err := encodeValue(values, childKey(prefix, tag), fieldValue, mode)
		if err != nil {
			return err
		}
	}

	return nil
}

func indirectKind(t reflect.Type) reflect.Kind {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return t.Kind()
}

func asAppender(rv reflect.Value) (Appender, bool) {
	if rv.CanInterface() {
		if custom, ok := rv.Interface().(Appender); ok {
			return custom, true
		}
	}

	if rv.CanAddr() && rv.Addr().CanInterface() {
		if custom, ok := rv.Addr().Interface().(Appender); ok {
			return custom, true
		}
	}

	return nil, false
}

func asValuer(rv reflect.Value) (Valuer, bool) {
	if rv.CanInterface() {
		if custom, ok := rv.Interface().(Valuer); ok {
			return custom, true
		}
	}

	if rv.CanAddr() && rv.Addr().CanInterface() {
		if custom, ok := rv.Addr().Interface().(Valuer); ok {
			return custom, true
		}
	}

	return nil, false
}

//nolint:cyclop // one branch per reflect kind
func encodeValue(values *Values, key string, rv reflect.Value, mode Mode) error {
	if !rv.IsValid() {
		return nil
	}

	if rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}

		return encodeValue(values, key, rv.Elem(), mode)
	}

	if custom, ok := asAppender(rv); ok {
		return custom.AppendForm(values, key, mode)
	}

	if custom, ok := asValuer(rv); ok {
		value, err := custom.FormValue()
		if err != nil {
			return fmt.Errorf("encoding %s: %w", key, err)
		}

		values.Add(key, value)

		return nil
	}

	if rv.CanInterface() {
		if enum, ok := rv.Interface().(Enum); ok && !enum.IsKnown() {
			return fmt.Errorf("%w: %s=%q", ErrUnknownEnumValue, key, rv.String())
		}
	}

	switch rv.Kind() {
	case reflect.String:
		values.Add(key, rv.String())
	case reflect.Bool:
		values.Add(key, strconv.FormatBool(rv.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		values.Add(key, strconv.FormatInt(rv.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		values.Add(key, strconv.FormatUint(rv.Uint(), 10))
	case reflect.Float32, reflect.Float64:
		values.Add(key, strconv.FormatFloat(rv.Float(), 'f', -1, 64))
	case reflect.Struct:
		return encodeStruct(values, key, rv, mode)
	case reflect.Slice, reflect.Array:
		return encodeSequence(values, key, rv, mode)
	case reflect.Map:
		return encodeMap(values, key, rv, mode)
	default:
		return fmt.Errorf("%w: %s (%s)", ErrUnsupportedType, key, rv.Type())
	}

	return nil
}

func encodeSequence(values *Values, key string, rv reflect.Value, mode Mode) error {
	if rv.Kind() == reflect.Slice && rv.IsNil() {
		return nil
	}

	if rv.Len() == 0 {
		values.Add(key, "")

		return nil
	}

	for i := range rv.Len() {
		elem := rv.Index(i)

		elemKey := key + "[" + strconv.Itoa(i) + "]"
		if mode == ModeQuery && isScalar(elem) {
			elemKey = key
		}

		err := encodeValue(values, elemKey, elem, mode)
		if err != nil {
			return err
		}
	}

	return nil
}

func encodeMap(values *Values, key string, rv reflect.Value, mode Mode) error {
	if rv.IsNil() {
		return nil
	}

	if rv.Type().Key().Kind() != reflect.String {
		return fmt.Errorf("%w: %s has non-string map keys", ErrUnsupportedType, key)
	}

	if rv.Len() == 0 {
		values.Add(key, "")

		return nil
	}

	mapKeys := rv.MapKeys()
	slices.SortFunc(mapKeys, func(a, b reflect.Value) int {
		switch {
		case a.String() < b.String():
			return -1
		case a.String() > b.String():
			return 1
		default:
			return 0
		}
	})

	for _, mapKey := range mapKeys {
		elem := rv.MapIndex(mapKey)
		elemKey := key + "[" + mapKey.String() + "]"

		// A nil entry unsets the key server-side.
		if (elem.Kind() == reflect.Pointer || elem.Kind() == reflect.Interface) && elem.IsNil() {
			values.Add(elemKey, "")

			continue
		}

		err := encodeValue(values, elemKey, elem, mode)
		if err != nil {
			return err
		}
	}

	return nil
}

func isScalar(rv reflect.Value) bool {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return true
		}

		rv = rv.Elem()
	}

	if _, ok := asAppender(rv); ok {
		return false
	}

	if _, ok := asValuer(rv); ok {
		return true
	}

	switch rv.Kind() {
	case reflect.Struct, reflect.Slice, reflect.Array, reflect.Map:
		return false
	default:
		return true
	}
}

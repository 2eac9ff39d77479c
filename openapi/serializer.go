package openapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

var (
	errNotScalar  = errors.New("value is not a scalar")
	errEmptyBody  = errors.New("empty response body")
	errNullBody   = errors.New("response body is null")
	errTargetType = errors.New("result type does not match the declared body kind")
)

// ToPathValue stringifies a scalar path parameter.
func ToPathValue(v any) (string, error) {
	return toScalarString(v)
}

// ToQueryValues serializes a query parameter per its declared style.
// Slices with explode repeat the parameter once per element; without explode
// they are joined with commas. Nil and empty values yield no entries.
func ToQueryValues(v any, explode bool) ([]string, error) {
	rv := indirect(reflect.ValueOf(v))
	if !rv.IsValid() {
		return nil, nil
	}

	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		s, err := toScalarString(rv.Interface())
		if err != nil {
			return nil, err
		}

		return []string{s}, nil
	}

	// []byte is sent as a string, not as a list of numbers
	if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
		return []string{string(rv.Bytes())}, nil
	}

	values := make([]string, 0, rv.Len())
	for i := range rv.Len() {
		s, err := toScalarString(rv.Index(i).Interface())
		if err != nil {
			return nil, err
		}
		values = append(values, s)
	}

	if len(values) == 0 {
		return nil, nil
	}

	if !explode {
		return []string{strings.Join(values, ",")}, nil
	}

	return values, nil
}

// Serialize encodes a request body value as JSON
func Serialize(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize %T: %w", v, err)
	}

	return data, nil
}

// Deserialize maps a response body into target, which must be a non-nil
// pointer. Raw and string kinds require *[]byte and *string targets.
func Deserialize(data []byte, kind BodyKind, target any) error {
	switch kind {
	case BodyNone:
		return nil
	case BodyBytes:
		out, ok := target.(*[]byte)
		if !ok {
			return fmt.Errorf("%w: %s into %T", errTargetType, kind, target)
		}
		*out = data
		return nil
	case BodyString:
		out, ok := target.(*string)
		if !ok {
			return fmt.Errorf("%w: %s into %T", errTargetType, kind, target)
		}
		*out = string(data)
		return nil
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return errEmptyBody
	}
	if bytes.Equal(trimmed, []byte("null")) {
		return errNullBody
	}

	if err := json.Unmarshal(trimmed, target); err != nil {
		return fmt.Errorf("failed to parse response as %T: %w", target, err)
	}

	return nil
}

// isEmpty reports whether a required parameter counts as not provided. A
// list counts as empty when every element is.
func isEmpty(v any) bool {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return true
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return true
		}
		return isEmpty(rv.Elem().Interface())
	case reflect.String, reflect.Map:
		return rv.Len() == 0
	case reflect.Slice, reflect.Array:
		for i := range rv.Len() {
			if !isEmpty(rv.Index(i).Interface()) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func indirect(rv reflect.Value) reflect.Value {
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}

	return rv
}

func toScalarString(v any) (string, error) {
	rv := indirect(reflect.ValueOf(v))
	if !rv.IsValid() {
		return "", fmt.Errorf("%w: nil", errNotScalar)
	}

	switch val := v.(type) {
	case string:
		return val, nil
	case bool:
		return strconv.FormatBool(val), nil
	case time.Time:
		return val.Format(time.RFC3339), nil
	case fmt.Stringer:
		return val.String(), nil
	}

	switch rv.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), nil
	case reflect.Struct:
		if t, ok := rv.Interface().(time.Time); ok {
			return t.Format(time.RFC3339), nil
		}
	}

	return "", fmt.Errorf("%w: %T", errNotScalar, v)
}

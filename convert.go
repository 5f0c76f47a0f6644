package argot

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

///////////////////////////////////////////////////////////////////////////////
// Conversion engine
///////////////////////////////////////////////////////////////////////////////

// errAssignNotImplemented marks a target type the conversion engine
// has no strategy for. It is intercepted by the value adapter and
// downgraded to a notifier warning; the token is dropped.
var errAssignNotImplemented = errors.New("assignment is not implemented")

// convertValue converts a raw token into the given settable value.
//
// Strategy selection, in order:
//  1. encoding.TextUnmarshaler, if the target or its address
//     implements it
//  2. built-in conversions keyed by reflect.Kind (with overflow
//     checking for numeric kinds) plus the special struct types
//     uuid.UUID, time.Time and time.Duration
//  3. errAssignNotImplemented for everything else
func convertValue(field reflect.Value, value string) error {
	// Special types are matched before the kind switch so that
	// time.Duration does not fall into the int64 branch.
	switch field.Type() {
	case DurationType:
		return setDurationValue(field, value)
	case TimeType:
		return setTimeValue(field, value)
	case UUIDType:
		return setUUIDValue(field, value)
	}

	if field.CanInterface() {
		if unmarshaler, ok := field.Interface().(encoding.TextUnmarshaler); ok {
			return unmarshaler.UnmarshalText([]byte(value))
		}
		if field.CanAddr() {
			if unmarshaler, ok := field.Addr().Interface().(encoding.TextUnmarshaler); ok {
				return unmarshaler.UnmarshalText([]byte(value))
			}
		}
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return setIntValue(field, value)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return setUintValue(field, value)
	case reflect.Float32, reflect.Float64:
		return setFloatValue(field, value)
	case reflect.Complex64, reflect.Complex128:
		return setComplexValue(field, value)
	case reflect.Bool:
		return setBoolValue(field, value)
	case reflect.Slice:
		return setSliceValue(field, value)
	case reflect.Interface:
		return setInterfaceValue(field, value)
	default:
		return fmt.Errorf("%w: %s", errAssignNotImplemented, field.Type())
	}
}

// setIntValue sets integer field values with overflow checking
func setIntValue(field reflect.Value, value string) error {
	intValue, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fmt.Errorf("error converting value to int: %w", err)
	}

	if field.OverflowInt(intValue) {
		return fmt.Errorf("value %d overflows %s", intValue, field.Type().Name())
	}

	field.SetInt(intValue)
	return nil
}

// setUintValue sets unsigned integer field values with overflow checking
func setUintValue(field reflect.Value, value string) error {
	uintValue, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return fmt.Errorf("error converting value to uint: %w", err)
	}

	if field.OverflowUint(uintValue) {
		return fmt.Errorf("value %d overflows %s", uintValue, field.Type().Name())
	}

	field.SetUint(uintValue)
	return nil
}

// setFloatValue sets float field values with overflow checking
func setFloatValue(field reflect.Value, value string) error {
	floatValue, err := strconv.ParseFloat(value, field.Type().Bits())
	if err != nil {
		return fmt.Errorf("error converting value to float: %w", err)
	}

	if field.OverflowFloat(floatValue) {
		return fmt.Errorf("value %f overflows %s", floatValue, field.Type().Name())
	}

	field.SetFloat(floatValue)
	return nil
}

// setComplexValue sets complex field values
func setComplexValue(field reflect.Value, value string) error {
	complexValue, err := strconv.ParseComplex(value, field.Type().Bits())
	if err != nil {
		return fmt.Errorf("error converting value to complex: %w", err)
	}

	if field.OverflowComplex(complexValue) {
		return fmt.Errorf("value %v overflows %s", complexValue, field.Type().Name())
	}

	field.SetComplex(complexValue)
	return nil
}

// setBoolValue sets boolean field values.
//
// Many common boolean representations are supported:
//   - "true", "1", "yes", "on" (case insensitive)
//   - "false", "0", "no", "off" (case insensitive)
//   - Standard boolean parsing using strconv.ParseBool
func setBoolValue(field reflect.Value, value string) error {
	switch value {
	case "true", "1", "yes", "on", "True", "TRUE", "YES", "ON":
		field.SetBool(true)
		return nil
	case "false", "0", "no", "off", "False", "FALSE", "NO", "OFF":
		field.SetBool(false)
		return nil
	default:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("error converting value to bool: %w", err)
		}
		field.SetBool(boolValue)
		return nil
	}
}

// setSliceValue sets slice field values. Only []byte is convertible
// from a single token; other slice types are sequence targets and are
// filled element by element, never through convertValue.
func setSliceValue(field reflect.Value, value string) error {
	if field.Type().Elem().Kind() == reflect.Uint8 {
		field.SetBytes([]byte(value))
		return nil
	}
	return fmt.Errorf("%w: %s", errAssignNotImplemented, field.Type())
}

// setDurationValue sets time.Duration field values
func setDurationValue(field reflect.Value, value string) error {
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("error converting value to time.Duration: %w", err)
	}
	field.SetInt(int64(d))
	return nil
}

// setTimeValue sets time.Time field values, trying a few common layouts
func setTimeValue(field reflect.Value, value string) error {
	formats := []string{
		time.RFC3339,
		time.RFC3339Nano,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
		"15:04:05",
	}

	var timeValue time.Time
	var err error
	for _, format := range formats {
		if timeValue, err = time.Parse(format, value); err == nil {
			break
		}
	}
	if err != nil {
		return fmt.Errorf("error converting value to time.Time: %w", err)
	}

	field.Set(reflect.ValueOf(timeValue))
	return nil
}

// setUUIDValue sets uuid.UUID field values
func setUUIDValue(field reflect.Value, value string) error {
	uuidValue, err := uuid.Parse(value)
	if err != nil {
		return fmt.Errorf("error converting value to UUID: %w", err)
	}
	field.Set(reflect.ValueOf(uuidValue))
	return nil
}

// setInterfaceValue sets interface{} field values
func setInterfaceValue(field reflect.Value, value string) error {
	if field.NumMethod() != 0 {
		return fmt.Errorf("%w: %s", errAssignNotImplemented, field.Type())
	}

	// For an empty interface, store the raw token.
	field.Set(reflect.ValueOf(value))
	return nil
}

// warnAssignNotImplemented surfaces a tier-3 conversion miss through
// the notifier. The parse continues and the token is dropped.
func warnAssignNotImplemented(value string, err error) {
	notifier.Warn("assignment is not implemented",
		zap.String("value", value),
		zap.Error(err),
	)
}

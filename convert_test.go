package argot

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestConvertValue(t *testing.T) {
	tests := []struct {
		name     string
		target   any
		value    string
		expected any
		wantErr  bool
	}{
		{"string", ptr(""), "hello", "hello", false},
		{"int_valid", ptr(0), "42", 42, false},
		{"int_negative", ptr(0), "-5", -5, false},
		{"int_invalid", ptr(0), "abc", 0, true},
		{"int8_overflow", ptr(int8(0)), "300", int8(0), true},
		{"uint_valid", ptr(uint(0)), "42", uint(42), false},
		{"uint_negative", ptr(uint(0)), "-1", uint(0), true},
		{"float_valid", ptr(0.0), "-0.3", -0.3, false},
		{"float_invalid", ptr(0.0), "x", 0.0, true},
		{"complex_valid", ptr(complex128(0)), "3+4i", complex(3, 4), false},
		{"bool_true", ptr(false), "true", true, false},
		{"bool_yes", ptr(false), "YES", true, false},
		{"bool_off", ptr(true), "off", false, false},
		{"bool_invalid", ptr(false), "maybe", false, true},
		{"bytes", ptr([]byte(nil)), "raw", []byte("raw"), false},
		{"duration", ptr(time.Duration(0)), "1h30m", 90 * time.Minute, false},
		{"duration_invalid", ptr(time.Duration(0)), "soon", time.Duration(0), true},
		{
			"uuid_valid",
			ptr(uuid.UUID{}),
			"550e8400-e29b-41d4-a716-446655440000",
			uuid.MustParse("550e8400-e29b-41d4-a716-446655440000"),
			false,
		},
		{"uuid_invalid", ptr(uuid.UUID{}), "invalid-uuid", uuid.UUID{}, true},
		{"interface", ptr(any(nil)), "token", any("token"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field := reflect.ValueOf(tt.target).Elem()
			err := convertValue(field, tt.value)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, field.Interface())
		})
	}
}

func TestConvertValueTime(t *testing.T) {
	layouts := []string{
		"2021-03-04T05:06:07Z",
		"2021-03-04T05:06:07",
		"2021-03-04 05:06:07",
		"2021-03-04",
	}

	for _, raw := range layouts {
		var target time.Time
		err := convertValue(reflect.ValueOf(&target).Elem(), raw)
		require.NoError(t, err, "layout %q", raw)
		assert.Equal(t, 2021, target.Year())
		assert.Equal(t, time.March, target.Month())
	}

	var target time.Time
	assert.Error(t, convertValue(reflect.ValueOf(&target).Elem(), "not a time"))
}

type upperText string

func (u *upperText) UnmarshalText(text []byte) error {
	*u = upperText(string(text) + "!")
	return nil
}

func TestConvertValueTextUnmarshaler(t *testing.T) {
	var target upperText
	err := convertValue(reflect.ValueOf(&target).Elem(), "loud")
	require.NoError(t, err)
	assert.Equal(t, upperText("loud!"), target)
}

func TestConvertValueNotImplemented(t *testing.T) {
	var target struct{ A int }
	err := convertValue(reflect.ValueOf(&target).Elem(), "x")
	assert.ErrorIs(t, err, errAssignNotImplemented)

	var ch chan int
	err = convertValue(reflect.ValueOf(&ch).Elem(), "x")
	assert.ErrorIs(t, err, errAssignNotImplemented)
}

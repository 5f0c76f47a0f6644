package argot

import (
	"errors"
	"reflect"
)

///////////////////////////////////////////////////////////////////////////////
// Value target adapter
///////////////////////////////////////////////////////////////////////////////

var (
	ErrTargetNotPointer   = errors.New("argument target must be a non-nil pointer")
	errInvalidChoiceValue = errors.New("value is not in the list of valid choices")
)

// valueShape is the closed set of target shapes an adapter can bind.
type valueShape int

const (
	voidShape     valueShape = iota // no bound variable (help options)
	scalarShape                     // *T, overwritten in place
	optionalShape                   // **T, allocated on first assignment
	sequenceShape                   // *[]T, appended in input order
)

// TargetID identifies the caller-owned variable a Value is bound to.
// Two registrations wrapping the same variable compare equal, which is
// how alias spellings like -v/--verbose end up sharing one assignment
// count.
type TargetID struct {
	Type reflect.Type
	Addr uintptr
}

// AssignAction converts one raw token into the bound variable. The
// default action runs the built-in conversion engine; custom actions
// installed with OptionConfig.Action may interpret the token however
// they like and report failure by returning an error.
type AssignAction func(v *Value, rawValue string, env *Environment) error

// DefaultAction assigns an absent-value to the bound variable after
// matching completed without any assignment to it.
type DefaultAction func(v *Value)

// Value is the type-erased adapter between a syntactic match and a
// caller-owned variable. It tracks the number of assignments made
// through any option sharing the underlying target and whether any of
// those assignments failed.
type Value struct {
	target  any           // the caller's pointer; nil for void values
	elem    reflect.Value // Elem() of the pointer, cached at registration
	shape   valueShape
	assigns int
	badArgs bool
}

// newValue classifies the target's shape and wraps it. A nil target
// produces a void value that accepts assignments without storing them.
func newValue(target any) (*Value, error) {
	if target == nil {
		return &Value{shape: voidShape}, nil
	}

	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return nil, ErrTargetNotPointer
	}

	elem := rv.Elem()
	shape := scalarShape
	switch elem.Kind() {
	case reflect.Ptr:
		shape = optionalShape
	case reflect.Slice:
		// []byte converts from a single token, so it stays scalar.
		if elem.Type() != ByteSliceType {
			shape = sequenceShape
		}
	}

	return &Value{target: target, elem: elem, shape: shape}, nil
}

// reset restores the bound variable to its zero representation and
// clears the error flag. The assignment counter is cleared separately
// by resetCount, exactly once per parse.
func (v *Value) reset() {
	v.badArgs = false
	if v.shape == voidShape {
		return
	}
	v.elem.Set(reflect.Zero(v.elem.Type()))
}

func (v *Value) resetCount() {
	v.assigns = 0
}

// setValue runs the assign action for one token. The counter is
// incremented before the action runs so that a failed conversion still
// counts as an assignment; the failure itself is recorded on the error
// flag and surfaced by the caller as a result entry, never as a
// mid-scan abort.
func (v *Value) setValue(rawValue string, action AssignAction, env *Environment) error {
	v.assigns++
	err := action(v, rawValue, env)
	if err != nil {
		v.markBadArgument()
	}
	return err
}

// setDefault is invoked after matching completes, only for definitions
// that received zero assignments and declare a default.
func (v *Value) setDefault(action DefaultAction) {
	action(v)
}

// markBadArgument records that an assignment through this value failed.
func (v *Value) markBadArgument() {
	v.badArgs = true
}

// AssignCount reports the number of assignments made through all the
// options that share this value.
func (v *Value) AssignCount() int {
	return v.assigns
}

// HasBadArguments reports whether any assignment through this value
// failed conversion.
func (v *Value) HasBadArguments() bool {
	return v.badArgs
}

// Target returns the caller-owned pointer this value is bound to, or
// nil for void values.
func (v *Value) Target() any {
	return v.target
}

// TargetID returns the identity of the bound variable.
func (v *Value) TargetID() TargetID {
	if v.shape == voidShape {
		return TargetID{}
	}
	rv := reflect.ValueOf(v.target)
	return TargetID{Type: rv.Type(), Addr: rv.Pointer()}
}

// sharesTargetWith reports whether two values wrap the same variable.
func (v *Value) sharesTargetWith(other *Value) bool {
	if v.shape == voidShape || other.shape == voidShape {
		return false
	}
	return v.TargetID() == other.TargetID()
}

// Assign converts rawValue into the bound variable using the built-in
// conversion engine, honoring the value's shape: scalars convert in
// place, optionals convert into a fresh allocation, sequences convert
// into a temporary and append. An unsupported target type is a
// non-fatal diagnostic and the token is dropped.
func (v *Value) Assign(rawValue string) error {
	var err error
	switch v.shape {
	case voidShape:
		return nil
	case scalarShape:
		err = convertValue(v.elem, rawValue)
	case optionalShape:
		tmp := reflect.New(v.elem.Type().Elem())
		if err = convertValue(tmp.Elem(), rawValue); err == nil {
			v.elem.Set(tmp)
		}
	case sequenceShape:
		tmp := reflect.New(v.elem.Type().Elem())
		if err = convertValue(tmp.Elem(), rawValue); err == nil {
			v.elem.Set(reflect.Append(v.elem, tmp.Elem()))
		}
	}

	if errors.Is(err, errAssignNotImplemented) {
		warnAssignNotImplemented(rawValue, err)
		return nil
	}
	return err
}

// defaultAssignAction is used for options without a custom action.
func defaultAssignAction(v *Value, rawValue string, _ *Environment) error {
	return v.Assign(rawValue)
}

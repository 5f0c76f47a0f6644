package argot

import (
	"errors"
	"reflect"
	"strings"
)

var ErrStructTargetInvalid = errors.New("struct target must be a non-nil pointer to a struct")

// AddStruct registers one argument per tagged exported field of a
// struct. Recognized tags:
//
//	arg:"--long,-s"   option spellings, or a single bare positional name
//	help:"..."        raw help text
//	default:"..."     absent-value default
//
// Fields without an arg tag are skipped. Non-flag option fields get
// their arity inferred from the field's shape: sequences accept any
// number of tokens, everything except bool takes exactly one. As with
// Add, malformed names are programmer errors and panic.
//
//	type serveOpts struct {
//		Port    int      `arg:"--port,-p" help:"listen port" default:"8080"`
//		Verbose bool     `arg:"--verbose,-v"`
//		Roots   []string `arg:"root" help:"content roots"`
//	}
func (p *ArgumentParser) AddStruct(target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return ErrStructTargetInvalid
	}

	elem := rv.Elem()
	typ := elem.Type()

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		tag, ok := field.Tag.Lookup(ArgStructTag)
		if !ok {
			continue
		}

		names := strings.Split(tag, ",")
		for j := range names {
			names[j] = strings.TrimSpace(names[j])
		}

		cfg := p.Add(elem.Field(i).Addr().Interface(), names...)

		if !cfg.option.positional && field.Type.Kind() != reflect.Bool {
			if cfg.option.value.shape == sequenceShape {
				cfg.MinArgs(1)
			} else {
				cfg.NArgs(1)
			}
		}

		if help, ok := field.Tag.Lookup(HelpStructTag); ok {
			cfg.Help(help)
		}
		if def, ok := field.Tag.Lookup(DefaultStructTag); ok {
			cfg.Absent(def)
		}
	}

	return nil
}

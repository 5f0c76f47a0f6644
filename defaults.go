package argot

import (
	"errors"
	"strings"

	"github.com/tidwall/gjson"
)

var ErrInvalidDefaultsDocument = errors.New("defaults document is not valid JSON")

// SetDefaultsJSON installs absent-value defaults from a JSON document.
// Top-level keys are matched against registered names with the leading
// dashes stripped, so {"num": 7, "verbose": true} covers --num and
// --verbose as well as positionals named num or verbose. A matched
// default behaves exactly like one installed with Absent: it is
// assigned through the normal conversion path, after matching, only
// when the definition received zero assignments.
//
// Defaults configured through OptionConfig.Absent are overwritten by a
// matching document key; unmatched definitions keep theirs.
func (p *ArgumentParser) SetDefaultsJSON(doc []byte) error {
	if !gjson.ValidBytes(doc) {
		return ErrInvalidDefaultsDocument
	}
	root := gjson.ParseBytes(doc)

	install := func(o *Option) {
		for _, name := range []string{o.longName, o.shortName} {
			key := strings.TrimLeft(name, "-")
			if key == "" {
				continue
			}
			if res := root.Get(key); res.Exists() {
				rawValue := res.String()
				o.defaultAction = func(v *Value) {
					if err := v.Assign(rawValue); err != nil {
						notifier.Warn("default value could not be assigned")
					}
				}
				return
			}
		}
	}

	for _, o := range p.def.options {
		install(o)
	}
	for _, o := range p.def.positionals {
		install(o)
	}
	return nil
}

package argot

import (
	"slices"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// Option / positional definition
///////////////////////////////////////////////////////////////////////////////

// Option is the static description of one registered argument, either
// a dash-prefixed option or a positional parameter. It is created by
// ArgumentParser.Add and configured through the returned OptionConfig.
type Option struct {
	value         *Value
	shortName     string
	longName      string // bare display name for positionals
	metavar       string
	help          string
	minArgs       int
	maxArgs       int // < 0 means unbounded
	required      bool
	positional    bool
	flagValue     string
	choices       []string
	action        AssignAction
	defaultAction DefaultAction
	group         *OptionGroup
}

func newOption(value *Value) *Option {
	return &Option{
		value:     value,
		flagValue: DefaultFlagValue,
	}
}

// hasName reports whether name is one of the option's spellings.
func (o *Option) hasName(name string) bool {
	return name != "" && (name == o.shortName || name == o.longName)
}

// helpName is the name used to identify the option in results and
// error reports: the long spelling when there is one.
func (o *Option) helpName() string {
	if o.longName != "" {
		return o.longName
	}
	return o.shortName
}

// metavarName is the placeholder used in usage fragments.
func (o *Option) metavarName() string {
	if o.metavar != "" {
		return o.metavar
	}
	name := strings.TrimLeft(o.helpName(), "-")
	if o.positional {
		return name
	}
	return strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}

func (o *Option) isRequired() bool {
	return o.required
}

// wasAssigned reports whether any value was assigned through this
// option or any alias sharing its target.
func (o *Option) wasAssigned() bool {
	return o.value.AssignCount() > 0
}

// needsMoreArguments reports whether the definition is still below its
// minimum arity.
func (o *Option) needsMoreArguments() bool {
	return o.value.AssignCount() < o.minArgs
}

// acceptsAnyArguments reports whether the definition consumes value
// tokens at all; flags do not.
func (o *Option) acceptsAnyArguments() bool {
	return o.maxArgs != 0
}

func (o *Option) argumentCounts() (min, max int) {
	return o.minArgs, o.maxArgs
}

func (o *Option) hasDefault() bool {
	return o.defaultAction != nil
}

func (o *Option) assignDefault() {
	o.value.setDefault(o.defaultAction)
}

func (o *Option) getGroup() *OptionGroup {
	return o.group
}

func (o *Option) setGroup(g *OptionGroup) {
	o.group = g
}

func (o *Option) resetValue() {
	o.value.reset()
	o.value.resetCount()
}

// setValue routes one matched token into the bound target. Choices are
// validated first; the assign action only runs for admissible tokens.
func (o *Option) setValue(rawValue string, env *Environment) error {
	if len(o.choices) > 0 && !slices.Contains(o.choices, rawValue) {
		o.value.assigns++
		o.value.markBadArgument()
		return errInvalidChoiceValue
	}

	action := o.action
	if action == nil {
		action = defaultAssignAction
	}
	return o.value.setValue(rawValue, action, env)
}

// hasCustomAction reports whether the caller installed an assign
// action; failures of custom actions are reported as action errors
// rather than conversion errors.
func (o *Option) hasCustomAction() bool {
	return o.action != nil
}

///////////////////////////////////////////////////////////////////////////////
// OptionConfig
///////////////////////////////////////////////////////////////////////////////

// OptionConfig is the chainable configuration handle returned by
// ArgumentParser.Add.
type OptionConfig struct {
	option *Option
}

// NArgs fixes the arity to exactly count value tokens.
func (c *OptionConfig) NArgs(count int) *OptionConfig {
	c.option.minArgs = count
	c.option.maxArgs = count
	return c
}

// MinArgs requires at least count value tokens and leaves the maximum
// unbounded.
func (c *OptionConfig) MinArgs(count int) *OptionConfig {
	c.option.minArgs = count
	c.option.maxArgs = -1
	return c
}

// MaxArgs accepts up to count value tokens.
func (c *OptionConfig) MaxArgs(count int) *OptionConfig {
	c.option.minArgs = 0
	c.option.maxArgs = count
	return c
}

// Required marks the option as mandatory. Positionals are implicitly
// required and ignore this.
func (c *OptionConfig) Required() *OptionConfig {
	c.option.required = true
	return c
}

// Help sets the raw help text rendered by the help formatter.
func (c *OptionConfig) Help(text string) *OptionConfig {
	c.option.help = text
	return c
}

// MetaVar sets the placeholder name used in usage fragments.
func (c *OptionConfig) MetaVar(name string) *OptionConfig {
	c.option.metavar = name
	return c
}

// Absent installs a default: when the option receives zero assignments
// during a parse, rawValue is assigned through the normal conversion
// path after matching completes.
func (c *OptionConfig) Absent(rawValue string) *OptionConfig {
	c.option.defaultAction = func(v *Value) {
		if err := v.Assign(rawValue); err != nil {
			notifier.Warn("default value could not be assigned")
		}
	}
	return c
}

// Choices restricts admissible tokens to the given set; anything else
// is reported as an invalid choice.
func (c *OptionConfig) Choices(values ...string) *OptionConfig {
	c.option.choices = values
	return c
}

// Action replaces the built-in conversion with a custom assign action.
func (c *OptionConfig) Action(action AssignAction) *OptionConfig {
	c.option.action = action
	return c
}

// FlagValue sets the token assigned when a flag option is present.
func (c *OptionConfig) FlagValue(value string) *OptionConfig {
	c.option.flagValue = value
	return c
}

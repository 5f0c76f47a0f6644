package argot

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"
)

///////////////////////////////////////////////////////////////////////////////
// Parser configuration
///////////////////////////////////////////////////////////////////////////////

// ParserConfigData is the inspectable snapshot of a parser's
// configuration.
type ParserConfigData struct {
	Program     string
	Usage       string
	Description string
	Epilog      string
	Output      io.Writer
	Formatter   Formatter
}

// ParserConfig is the fluent configuration handle returned by
// ArgumentParser.Config.
type ParserConfig struct {
	data ParserConfigData
}

// Program sets the program name used in usage lines.
func (c *ParserConfig) Program(program string) *ParserConfig {
	c.data.Program = program
	return c
}

// Usage overrides the generated usage line.
func (c *ParserConfig) Usage(usage string) *ParserConfig {
	c.data.Usage = usage
	return c
}

// Description sets the text shown between the usage line and the
// argument descriptions.
func (c *ParserConfig) Description(description string) *ParserConfig {
	c.data.Description = description
	return c
}

// Epilog sets the text shown after the argument descriptions.
func (c *ParserConfig) Epilog(epilog string) *ParserConfig {
	c.data.Epilog = epilog
	return c
}

// Output redirects help and error description output. The writer must
// outlive the parser. Defaults to standard output.
func (c *ParserConfig) Output(w io.Writer) *ParserConfig {
	c.data.Output = w
	return c
}

// Formatter replaces the help formatter collaborator.
func (c *ParserConfig) Formatter(f Formatter) *ParserConfig {
	c.data.Formatter = f
	return c
}

///////////////////////////////////////////////////////////////////////////////
// ArgumentParser
///////////////////////////////////////////////////////////////////////////////

// ArgumentParser owns the registered definitions, groups and commands,
// and runs the token matcher over input slices. Registration methods
// panic on programmer misuse (duplicate or malformed names, group kind
// conflicts); user input problems are collected into the ParseResult.
type ArgumentParser struct {
	config      ParserConfig
	def         parserDefinition
	helpNames   map[string]struct{}
	groups      map[string]*OptionGroup
	activeGroup *OptionGroup
	targets     []Options
}

func NewParser() *ArgumentParser {
	return &ArgumentParser{
		helpNames: make(map[string]struct{}),
		groups:    make(map[string]*OptionGroup),
	}
}

// Config returns the configuration handle of the parser.
func (p *ArgumentParser) Config() *ParserConfig {
	return &p.config
}

// GetConfig returns the parser configuration for inspection.
func (p *ArgumentParser) GetConfig() ParserConfigData {
	return p.config.data
}

// Add registers an argument bound to target, which must be a non-nil
// pointer. Names starting with a dash register an option (one long
// and/or one short spelling); a single bare name registers a
// positional. Registering a second argument bound to the same variable
// shares the value adapter, so alias spellings compose their
// assignment counts.
func (p *ArgumentParser) Add(target any, names ...string) *OptionConfig {
	value, err := newValue(target)
	if err != nil {
		panic(fmt.Sprintf("argot: %v", err))
	}
	if shared := p.findSharedValue(value); shared != nil {
		value = shared
	}
	return p.tryAddArgument(newOption(value), names)
}

// AddArguments calls opts.AddArguments with this parser and keeps a
// reference so the structure outlives the parser.
func (p *ArgumentParser) AddArguments(opts Options) {
	if opts != nil {
		p.targets = append(p.targets, opts)
		opts.AddArguments(p)
	}
}

// AddCommand registers a sub-command whose definition set is built
// lazily by factory on first dispatch.
func (p *ArgumentParser) AddCommand(name string, factory OptionsFactory) *CommandConfig {
	cmd := newCommand(name, factory)
	switch {
	case cmd.name == "":
		panic("argot: a command must have a name")
	case !cmd.hasFactory():
		panic("argot: a command must have an options factory")
	case strings.HasPrefix(cmd.name, ShortNamePrefix):
		panic("argot: command name must not start with a dash")
	case p.def.findCommand(cmd.name) != nil:
		panic(fmt.Sprintf("argot: command %q is already defined", cmd.name))
	}

	p.def.commands = append(p.def.commands, cmd)
	return &CommandConfig{command: cmd}
}

// AddGroup opens a plain group: every argument registered until
// EndGroup belongs to it. Reopening an existing group with the same
// kind is allowed; reopening an exclusive group as plain panics.
func (p *ArgumentParser) AddGroup(name string) *GroupConfig {
	if g := p.findGroup(name); g != nil {
		if g.IsExclusive() {
			panic(fmt.Sprintf("argot: group %q is exclusive, cannot reopen as plain", name))
		}
		p.activeGroup = g
	} else {
		p.activeGroup = p.addGroup(name, false)
	}
	return &GroupConfig{group: p.activeGroup}
}

// AddExclusiveGroup opens an exclusive group: at most one member may
// be assigned during a parse.
func (p *ArgumentParser) AddExclusiveGroup(name string) *GroupConfig {
	if g := p.findGroup(name); g != nil {
		if !g.IsExclusive() {
			panic(fmt.Sprintf("argot: group %q is plain, cannot reopen as exclusive", name))
		}
		p.activeGroup = g
	} else {
		p.activeGroup = p.addGroup(name, true)
	}
	return &GroupConfig{group: p.activeGroup}
}

// EndGroup closes the active group; subsequent registrations are
// ungrouped.
func (p *ArgumentParser) EndGroup() {
	p.activeGroup = nil
}

// AddHelpOption registers a special option that displays help and
// terminates the parse.
func (p *ArgumentParser) AddHelpOption(names ...string) *OptionConfig {
	for _, name := range names {
		if name != "" && !strings.HasPrefix(name, ShortNamePrefix) {
			panic("argot: a help argument must be an option")
		}
	}

	cfg := p.Add(nil, names...).Help("Display this help message and exit.")
	for _, name := range names {
		if name != "" {
			p.helpNames[name] = struct{}{}
		}
	}
	return cfg
}

// AddDefaultHelpOption registers --help and -h, skipping spellings
// already taken by other options. It panics if both are taken. Parse
// calls it implicitly when no help option was registered.
func (p *ArgumentParser) AddDefaultHelpOption() *OptionConfig {
	pShort := p.def.findOption(DefaultHelpShortName)
	pLong := p.def.findOption(DefaultHelpLongName)

	switch {
	case pShort == nil && pLong == nil:
		return p.AddHelpOption(DefaultHelpShortName, DefaultHelpLongName)
	case pShort == nil:
		return p.AddHelpOption(DefaultHelpShortName)
	case pLong == nil:
		return p.AddHelpOption(DefaultHelpLongName)
	}
	panic("argot: the default help options are hidden by other options")
}

///////////////////////////////////////////////////////////////////////////////
// Parse
///////////////////////////////////////////////////////////////////////////////

// Parse scans the token slice, typically os.Args[1:], and returns the
// accumulated outcome. A parser must not run overlapping Parse calls
// from multiple goroutines; definitions and bound targets are mutated
// in place.
func (p *ArgumentParser) Parse(args []string) ParseResult {
	result := &resultBuilder{}
	if args == nil {
		result.addError("argv", InvalidInput)
		return result.getResult()
	}

	p.verifyDefinedOptions()
	p.parseInto(args, result)

	if result.hasArgumentProblems() {
		result.signalErrorsShown()
		res := result.getResult()
		describeErrors(p.output(), res)
		return res
	}

	return result.getResult()
}

func (p *ArgumentParser) parseInto(args []string, result *resultBuilder) {
	if len(args) == 0 && p.hasRequiredArguments() {
		p.generateHelp()
		result.signalHelpShown()
		result.requestExit()
		return
	}

	for _, o := range p.def.options {
		o.resetValue()
	}
	for _, o := range p.def.positionals {
		o.resetValue()
	}

	for _, a := range args {
		if _, ok := p.helpNames[a]; ok {
			p.generateHelp()
			result.signalHelpShown()
			result.requestExit()
			return
		}
	}

	env := &Environment{parser: p, builder: result}
	matcher := newTokenMatcher(&p.def, result, env)
	matcher.parse(args)
	if result.wasExitRequested() {
		result.addError("", ExitRequested)
		return
	}

	p.assignDefaultValues()

	p.reportMissingOptions(result)
	p.reportExclusiveViolations(result)
	p.reportMissingGroups(result)
}

func (p *ArgumentParser) assignDefaultValues() {
	for _, o := range p.def.options {
		if !o.wasAssigned() && o.hasDefault() {
			o.assignDefault()
		}
	}
	for _, o := range p.def.positionals {
		if !o.wasAssigned() && o.hasDefault() {
			o.assignDefault()
		}
	}
}

// verifyDefinedOptions runs the registration-time invariants that can
// only be checked once the definition set is complete.
func (p *ArgumentParser) verifyDefinedOptions() {
	if len(p.helpNames) == 0 {
		p.EndGroup()
		if p.def.findOption(DefaultHelpShortName) == nil || p.def.findOption(DefaultHelpLongName) == nil {
			p.AddDefaultHelpOption()
		} else {
			notifier.Warn("the default help options are hidden by other options")
		}
	}

	// A required option can not be in an exclusive group.
	for _, o := range p.def.options {
		if o.isRequired() {
			if g := o.getGroup(); g != nil && g.IsExclusive() {
				panic(fmt.Sprintf("argot: required option %q in exclusive group %q", o.helpName(), g.Name()))
			}
		}
	}
}

func (p *ArgumentParser) hasRequiredArguments() bool {
	for _, o := range p.def.options {
		if o.isRequired() {
			return true
		}
	}
	for _, o := range p.def.positionals {
		if o.isRequired() || o.minArgs > 0 {
			return true
		}
	}
	return false
}

func (p *ArgumentParser) reportMissingOptions(result *resultBuilder) {
	for _, o := range p.def.options {
		if o.isRequired() && !o.wasAssigned() {
			result.addError(o.helpName(), MissingOption)
		}
	}
	for _, o := range p.def.positionals {
		if o.needsMoreArguments() {
			result.addError(o.helpName(), MissingArgument)
		}
	}
}

func (p *ArgumentParser) reportExclusiveViolations(result *resultBuilder) {
	assigned := make(map[string][]string)
	var order []string

	for _, o := range p.def.options {
		g := o.getGroup()
		if g != nil && g.IsExclusive() && o.wasAssigned() {
			if _, seen := assigned[g.Name()]; !seen {
				order = append(order, g.Name())
			}
			assigned[g.Name()] = append(assigned[g.Name()], o.helpName())
		}
	}

	for _, name := range order {
		if members := assigned[name]; len(members) > 1 {
			result.addError(members[0], ExclusiveViolation)
		}
	}
}

func (p *ArgumentParser) reportMissingGroups(result *resultBuilder) {
	counts := make(map[string]int)
	var order []string

	for _, o := range p.def.options {
		g := o.getGroup()
		if g != nil && g.IsRequired() {
			if _, seen := counts[g.Name()]; !seen {
				order = append(order, g.Name())
				counts[g.Name()] = 0
			}
			if o.wasAssigned() {
				counts[g.Name()]++
			}
		}
	}

	for _, name := range order {
		if counts[name] < 1 {
			result.addError(name, MissingOptionGroup)
		}
	}
}

///////////////////////////////////////////////////////////////////////////////
// Registration internals
///////////////////////////////////////////////////////////////////////////////

func (p *ArgumentParser) findSharedValue(v *Value) *Value {
	for _, o := range p.def.options {
		if o.value.sharesTargetWith(v) {
			return o.value
		}
	}
	for _, o := range p.def.positionals {
		if o.value.sharesTargetWith(v) {
			return o.value
		}
	}
	return nil
}

func (p *ArgumentParser) tryAddArgument(opt *Option, names []string) *OptionConfig {
	cleaned := names[:0:0]
	for _, name := range names {
		if name != "" {
			cleaned = append(cleaned, name)
		}
	}

	if len(cleaned) == 0 {
		panic("argot: an argument must have a name")
	}
	for _, name := range cleaned {
		if strings.ContainsFunc(name, unicode.IsSpace) {
			panic("argot: argument names must not contain spaces")
		}
	}

	dashed := 0
	for _, name := range cleaned {
		if strings.HasPrefix(name, ShortNamePrefix) {
			dashed++
		}
	}

	switch dashed {
	case 0:
		opt.positional = true
		opt.longName = cleaned[0]
		if opt.value.shape == sequenceShape {
			opt.minArgs, opt.maxArgs = 0, -1
		} else {
			opt.required = true
			opt.minArgs, opt.maxArgs = 1, 1
		}

		// Positional parameters are required so they can't be in an
		// exclusive group. Such a membership is simply ignored.
		if p.activeGroup != nil && !p.activeGroup.IsExclusive() {
			opt.setGroup(p.activeGroup)
		}

		p.def.positionals = append(p.def.positionals, opt)

	case len(cleaned):
		p.trySetNames(opt, cleaned)
		p.ensureIsNewOption(opt.longName)
		p.ensureIsNewOption(opt.shortName)

		if p.activeGroup != nil {
			opt.setGroup(p.activeGroup)
		}

		p.def.options = append(p.def.options, opt)

	default:
		panic("argot: the argument must be either positional or an option")
	}

	return &OptionConfig{option: opt}
}

func (p *ArgumentParser) trySetNames(opt *Option, names []string) {
	for _, name := range names {
		if name == "" || name == "-" || name == "--" || name[0] != '-' {
			continue
		}

		if strings.HasPrefix(name, LongNamePrefix) {
			opt.longName = name
		} else {
			if utf8.RuneCountInString(name) > 2 {
				panic("argot: short option name has too many characters")
			}
			opt.shortName = name
		}
	}

	if opt.helpName() == "" {
		panic("argot: an option must have a name")
	}
}

func (p *ArgumentParser) ensureIsNewOption(name string) {
	if name == "" {
		return
	}
	if existing := p.def.findOption(name); existing != nil {
		panic(fmt.Sprintf("argot: option %q is already defined", name))
	}
}

func (p *ArgumentParser) addGroup(name string, exclusive bool) *OptionGroup {
	if name == "" {
		panic("argot: a group must have a name")
	}

	g := newOptionGroup(name, exclusive)
	p.groups[g.Name()] = g
	return g
}

func (p *ArgumentParser) findGroup(name string) *OptionGroup {
	return p.groups[strings.ToLower(name)]
}

func (p *ArgumentParser) output() io.Writer {
	if w := p.config.data.Output; w != nil {
		return w
	}
	return os.Stdout
}

///////////////////////////////////////////////////////////////////////////////
// Package-level default parser
///////////////////////////////////////////////////////////////////////////////

// The package keeps a default parser so small programs can register
// and parse without constructing one, mirroring the standard flag
// package's CommandLine.
var defaultParser = NewParser()

// Default returns the package-level parser.
func Default() *ArgumentParser {
	return defaultParser
}

// Add registers an argument on the package-level parser.
func Add(target any, names ...string) *OptionConfig {
	return defaultParser.Add(target, names...)
}

// AddCommand registers a sub-command on the package-level parser.
func AddCommand(name string, factory OptionsFactory) *CommandConfig {
	return defaultParser.AddCommand(name, factory)
}

// Parse runs the package-level parser over the token slice.
func Parse(args []string) ParseResult {
	return defaultParser.Parse(args)
}

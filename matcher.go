package argot

import (
	"errors"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// Parser definition arena
///////////////////////////////////////////////////////////////////////////////

// parserDefinition is the owned arena of definitions shared between
// the registration API and the token matcher.
type parserDefinition struct {
	options     []*Option
	positionals []*Option
	commands    []*Command
}

func (d *parserDefinition) findOption(name string) *Option {
	for _, o := range d.options {
		if o.hasName(name) {
			return o
		}
	}
	return nil
}

func (d *parserDefinition) findCommand(name string) *Command {
	for _, c := range d.commands {
		if c.hasName(name) {
			return c
		}
	}
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// Token matcher
///////////////////////////////////////////////////////////////////////////////

// tokenMatcher consumes the token stream and allocates each token to a
// definition. Its state machine has two states: idle, and one option
// active and awaiting argument tokens. The ordered queue of positional
// definitions advances monotonically; consumed counts per positional
// are tracked here so the reservation rule can be evaluated per token.
type tokenMatcher struct {
	def         *parserDefinition
	result      *resultBuilder
	env         *Environment
	active      *Option
	activeCount int
	position    int
	consumed    []int
}

func newTokenMatcher(def *parserDefinition, result *resultBuilder, env *Environment) *tokenMatcher {
	return &tokenMatcher{
		def:      def,
		result:   result,
		env:      env,
		consumed: make([]int, len(def.positionals)),
	}
}

// parse scans the token slice to exhaustion, unless an assign action
// requests an exit or a sub-command takes over the remainder.
func (m *tokenMatcher) parse(args []string) {
	for i := 0; i < len(args); i++ {
		if m.result.wasExitRequested() {
			return
		}
		if m.dispatchToken(args[i], args[i+1:]) {
			return
		}
	}
	m.closeActiveOption()
}

// dispatchToken classifies one token. It returns true when a
// sub-command consumed the remainder of the stream.
//
// Classification priority: an exact option-name match always wins over
// feeding the active option, except when the token looks like a
// negative number; negative numbers bind as values whenever an option
// is active and accepting, or no short option spells the token's
// leading two characters.
func (m *tokenMatcher) dispatchToken(token string, rest []string) bool {
	if looksLikeNegativeNumber(token) {
		if m.activeAcceptsArguments() {
			m.feedActiveOption(token)
			return false
		}
		if m.def.findOption(token[:2]) == nil {
			m.allocateValueToken(token, len(rest))
			return false
		}
		// The leading digit spells a registered short option after
		// all; fall through to the option probe.
	}

	if strings.HasPrefix(token, ShortNamePrefix) && token != ShortNamePrefix {
		name, embedded, hasEmbedded := splitOptionToken(token)
		if opt := m.def.findOption(name); opt != nil {
			m.startOption(opt, embedded, hasEmbedded)
			return false
		}

		if m.activeAcceptsArguments() {
			m.feedActiveOption(token)
			return false
		}

		m.result.addError(token, UnknownOption)
		return false
	}

	if m.activeAcceptsArguments() {
		m.feedActiveOption(token)
		return false
	}

	if cmd := m.def.findCommand(token); cmd != nil {
		m.closeActiveOption()
		m.dispatchCommand(cmd, rest)
		return true
	}

	m.allocateValueToken(token, len(rest))
	return false
}

// startOption makes opt the active option. If a different option was
// active and still below its minimum arity, that is a missing-argument
// condition recorded immediately.
func (m *tokenMatcher) startOption(opt *Option, embedded string, hasEmbedded bool) {
	m.closeActiveOption()

	if hasEmbedded {
		if !opt.acceptsAnyArguments() {
			m.result.addError(opt.helpName(), FlagTakesNoParameter)
			return
		}
		m.assignValue(opt, embedded)
		if opt.minArgs > 1 {
			m.result.addError(opt.helpName(), MissingArgument)
		}
		return
	}

	if !opt.acceptsAnyArguments() {
		m.assignValue(opt, opt.flagValue)
		return
	}

	m.active = opt
	m.activeCount = 0
}

// closeActiveOption returns the matcher to the idle state, reporting
// the active option if it is still below its minimum arity.
func (m *tokenMatcher) closeActiveOption() {
	if m.active != nil && m.activeCount < m.active.minArgs {
		m.result.addError(m.active.helpName(), MissingArgument)
	}
	m.active = nil
	m.activeCount = 0
}

func (m *tokenMatcher) activeAcceptsArguments() bool {
	return m.active != nil && (m.active.maxArgs < 0 || m.activeCount < m.active.maxArgs)
}

func (m *tokenMatcher) feedActiveOption(token string) {
	m.assignValue(m.active, token)
	m.activeCount++
	if m.active.maxArgs >= 0 && m.activeCount >= m.active.maxArgs {
		m.active = nil
		m.activeCount = 0
	}
}

// allocateValueToken offers a non-option token to the positional
// distribution. The queue is walked left to right; a positional below
// its minimum must take the token, one at its maximum yields, and a
// variable-arity positional yields once the remaining stream is
// reserved for the minimums of later positionals. Tokens no positional
// can take are ignored arguments.
func (m *tokenMatcher) allocateValueToken(token string, tailLen int) {
	for m.position < len(m.def.positionals) {
		p := m.def.positionals[m.position]

		if m.consumed[m.position] < p.minArgs {
			m.assignPositional(p, token)
			return
		}
		if p.maxArgs >= 0 && m.consumed[m.position] >= p.maxArgs {
			m.position++
			continue
		}
		if tailLen+1 <= m.reservedMinimumAfter(m.position) {
			m.position++
			continue
		}

		m.assignPositional(p, token)
		return
	}

	m.result.addIgnored(token)
}

func (m *tokenMatcher) assignPositional(p *Option, token string) {
	m.assignValue(p, token)
	m.consumed[m.position]++
	if p.maxArgs >= 0 && m.consumed[m.position] >= p.maxArgs {
		m.position++
	}
}

// reservedMinimumAfter is the number of stream tokens that must be
// kept for the minimum arities of positionals after index i.
func (m *tokenMatcher) reservedMinimumAfter(i int) int {
	reserved := 0
	for j := i + 1; j < len(m.def.positionals); j++ {
		if need := m.def.positionals[j].minArgs - m.consumed[j]; need > 0 {
			reserved += need
		}
	}
	return reserved
}

// assignValue routes one token into a definition's target and turns
// assignment failures into result entries; nothing propagates across
// the matcher.
func (m *tokenMatcher) assignValue(opt *Option, rawValue string) {
	err := opt.setValue(rawValue, m.env)
	switch {
	case err == nil:
	case errors.Is(err, errInvalidChoiceValue):
		m.result.addError(opt.helpName(), InvalidChoice)
	case opt.hasCustomAction():
		m.result.addError(err.Error(), ActionError)
	default:
		m.result.addError(opt.helpName(), ConversionError)
	}
}

// dispatchCommand hands the remaining token slice to the sub-command's
// own parser and merges its outcome into the parent result.
func (m *tokenMatcher) dispatchCommand(cmd *Command, rest []string) {
	opts := cmd.Options()
	if opts == nil {
		m.result.addIgnored(cmd.name)
		return
	}

	sub := NewParser()
	sub.Config().Program(cmd.name)
	if w := m.env.parser.GetConfig().Output; w != nil {
		sub.Config().Output(w)
	}
	opts.AddArguments(sub)

	m.result.addResult(sub.Parse(rest))
}

// looksLikeNegativeNumber reports whether the token is a dash followed
// by a digit, the shape shared by negative numeric values and short
// option probes.
func looksLikeNegativeNumber(token string) bool {
	return len(token) >= 2 && token[0] == '-' && token[1] >= '0' && token[1] <= '9'
}

// splitOptionToken splits "--name=value" at the first '='. Tokens
// without an embedded value pass through unchanged.
func splitOptionToken(token string) (name, embedded string, hasEmbedded bool) {
	if i := strings.IndexByte(token, '='); i >= 0 {
		return token[:i], token[i+1:], true
	}
	return token, "", false
}

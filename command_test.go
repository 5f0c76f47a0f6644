package argot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type addCmdOptions struct {
	Name  string
	Force bool
}

func (o *addCmdOptions) AddArguments(p *ArgumentParser) {
	p.Add(&o.Name, "--name").NArgs(1)
	p.Add(&o.Force, "--force")
}

func TestCommandOptionsAreBuiltLazily(t *testing.T) {
	p := newTestParser()
	built := 0
	cfg := p.AddCommand("add", func(name string) Options {
		built++
		return &addCmdOptions{}
	})
	cfg.Help("add an entry")

	res := p.Parse([]string{})
	assert.True(t, res.Ok())
	assert.Equal(t, 0, built)

	res = p.Parse([]string{"add", "--force"})
	assert.True(t, res.Ok())
	assert.Equal(t, 1, built)

	// Options keeps returning the instance the factory built.
	opts := cfg.command.Options().(*addCmdOptions)
	assert.True(t, opts.Force)
	assert.Same(t, opts, cfg.command.Options())
}

func TestCommandConsumesRemainder(t *testing.T) {
	p := newTestParser()
	var verbose bool
	p.Add(&verbose, "--verbose")
	cfg := p.AddCommand("add", func(name string) Options {
		return &addCmdOptions{}
	})

	res := p.Parse([]string{"--verbose", "add", "--name", "widget"})
	assert.True(t, res.Ok())
	assert.True(t, verbose)

	opts := cfg.command.Options().(*addCmdOptions)
	assert.Equal(t, "widget", opts.Name)
}

func TestCommandProblemsMergeIntoParentResult(t *testing.T) {
	p := newTestParser()
	var verbose bool
	p.Add(&verbose, "--verbose")
	p.AddCommand("add", func(name string) Options {
		return &addCmdOptions{}
	})

	// The parent's options are out of scope after the command name.
	res := p.Parse([]string{"add", "--verbose"})
	assert.False(t, res.Ok())
	require.Len(t, res.Errors(), 1)
	assert.Equal(t, ParseError{Option: "--verbose", Code: UnknownOption}, res.Errors()[0])
	assert.False(t, verbose)
}

func TestCommandNameOnlyMatchesLeadingPositionalSlot(t *testing.T) {
	p := newTestParser()
	var n int
	p.Add(&n, "--num").NArgs(1)
	p.AddCommand("add", func(name string) Options {
		return &addCmdOptions{}
	})

	// Fed to the active option, the token is a value, not a command.
	res := p.Parse([]string{"--num", "add"})
	assert.False(t, res.Ok())
	assert.True(t, res.hasCode(ConversionError))
}

func TestCommandRegistrationPanics(t *testing.T) {
	factory := func(name string) Options { return &addCmdOptions{} }

	assert.Panics(t, func() {
		newTestParser().AddCommand("", factory)
	}, "empty command name")

	assert.Panics(t, func() {
		newTestParser().AddCommand("add", nil)
	}, "missing factory")

	assert.Panics(t, func() {
		newTestParser().AddCommand("-add", factory)
	}, "dash-prefixed command name")

	assert.Panics(t, func() {
		p := newTestParser()
		p.AddCommand("add", factory)
		p.AddCommand("add", factory)
	}, "duplicate command name")
}

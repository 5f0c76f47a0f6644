package argot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type serveTagOptions struct {
	Port     int      `arg:"--port,-p" help:"listen port" default:"8080"`
	Verbose  bool     `arg:"--verbose,-v"`
	Roots    []string `arg:"root" help:"content roots"`
	Untagged string
	ignored  int `arg:"--ignored"`
}

func TestAddStruct(t *testing.T) {
	p := newTestParser()
	var opts serveTagOptions
	require.NoError(t, p.AddStruct(&opts))

	res := p.Parse([]string{"-p", "80", "--verbose", "a", "b"})
	assert.True(t, res.Ok())
	assert.Equal(t, 80, opts.Port)
	assert.True(t, opts.Verbose)
	assert.Equal(t, []string{"a", "b"}, opts.Roots)
	assert.Equal(t, "", opts.Untagged)
	assert.Equal(t, 0, opts.ignored)

	assert.Nil(t, p.def.findOption("--ignored"))
	assert.Nil(t, p.def.findOption("--untagged"))
}

func TestAddStructDefaults(t *testing.T) {
	p := newTestParser()
	var opts serveTagOptions
	require.NoError(t, p.AddStruct(&opts))

	res := p.Parse([]string{"a"})
	assert.True(t, res.Ok())
	assert.Equal(t, 8080, opts.Port)
	assert.Equal(t, []string{"a"}, opts.Roots)
}

func TestAddStructHelpTag(t *testing.T) {
	p := newTestParser()
	var opts serveTagOptions
	require.NoError(t, p.AddStruct(&opts))

	desc, ok := p.DescribeArgument("--port")
	require.True(t, ok)
	assert.Equal(t, "listen port", desc.Help)
}

func TestAddStructInvalidTarget(t *testing.T) {
	p := newTestParser()

	assert.ErrorIs(t, p.AddStruct(42), ErrStructTargetInvalid)
	assert.ErrorIs(t, p.AddStruct(nil), ErrStructTargetInvalid)

	var n int
	assert.ErrorIs(t, p.AddStruct(&n), ErrStructTargetInvalid)

	var nilOpts *serveTagOptions
	assert.ErrorIs(t, p.AddStruct(nilOpts), ErrStructTargetInvalid)
}

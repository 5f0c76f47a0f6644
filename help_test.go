package argot

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsageFragment(t *testing.T) {
	tests := []struct {
		min, max int
		expected string
	}{
		{1, 1, "M"},
		{2, 2, "M M"},
		{2, -1, "M M [M ...]"},
		{0, -1, "[M ...]"},
		{1, 2, "M[M]"},
		{0, 1, "[M]"},
		{0, 2, "[M {0..2}]"},
		{1, 3, "M [M {0..2}]"},
		{0, 0, ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, usageFragment("M", tt.min, tt.max),
			"min=%d max=%d", tt.min, tt.max)
	}
}

func TestDescribeArguments(t *testing.T) {
	p := newTestParser()
	var n int
	var verbose bool
	var files []string
	p.Add(&n, "--dry-run", "-n").NArgs(1).Required().Help("number of runs")
	p.Add(&verbose, "--verbose")
	p.Add(&files, "file")
	p.AddCommand("add", func(name string) Options { return &addCmdOptions{} }).
		Help("add an entry")

	descriptions := p.DescribeArguments()
	require.Len(t, descriptions, 4)

	opt := descriptions[0]
	assert.Equal(t, "--dry-run", opt.HelpName)
	assert.Equal(t, "-n", opt.ShortName)
	assert.Equal(t, "DRY_RUN", opt.Metavar)
	assert.Equal(t, "DRY_RUN", opt.Arguments)
	assert.Equal(t, "number of runs", opt.Help)
	assert.True(t, opt.IsRequired)

	// Flags consume no tokens, so they render no usage fragment.
	assert.Equal(t, "", descriptions[1].Arguments)

	pos := descriptions[2]
	assert.Equal(t, "file", pos.Metavar)
	assert.Equal(t, "[file ...]", pos.Arguments)

	cmd := descriptions[3]
	assert.True(t, cmd.IsCommand)
	assert.Equal(t, "add", cmd.HelpName)
	assert.Equal(t, "add an entry", cmd.Help)
}

func TestDescribeArgument(t *testing.T) {
	p := newTestParser()
	var n int
	var file string
	p.Add(&n, "--num", "-n").NArgs(1).MetaVar("COUNT")
	p.Add(&file, "input")

	desc, ok := p.DescribeArgument("-n")
	require.True(t, ok)
	assert.Equal(t, "--num", desc.HelpName)
	assert.Equal(t, "COUNT", desc.Metavar)

	desc, ok = p.DescribeArgument("input")
	require.True(t, ok)
	assert.Equal(t, "input", desc.HelpName)

	_, ok = p.DescribeArgument("--bogus")
	assert.False(t, ok)
}

func TestDescribeArgumentGroupMetadata(t *testing.T) {
	p := newTestParser()
	var a bool
	p.AddExclusiveGroup("mode").Title("Run mode")
	p.Add(&a, "--fast")
	p.EndGroup()

	desc, ok := p.DescribeArgument("--fast")
	require.True(t, ok)
	assert.Equal(t, "mode", desc.Group.Name)
	assert.Equal(t, "Run mode", desc.Group.Title)
	assert.True(t, desc.Group.IsExclusive)
}

func TestDefaultFormatterOutput(t *testing.T) {
	var out bytes.Buffer
	p := NewParser()
	p.Config().
		Program("frob").
		Description("Frobnicates the inputs.").
		Epilog("See the manual for details.").
		Output(&out)
	var n int
	var files []string
	p.Add(&n, "--num", "-n").NArgs(1).Help("how many")
	p.Add(&files, "file").MinArgs(1)

	res := p.Parse([]string{"--help"})
	require.True(t, res.HelpWasShown())

	text := out.String()
	assert.Contains(t, text, "usage: frob [options] file [file ...]\n")
	assert.Contains(t, text, "Frobnicates the inputs.")
	assert.Contains(t, text, "-n, --num NUM\thow many")
	assert.Contains(t, text, "See the manual for details.")
}

func TestUsageOverride(t *testing.T) {
	var out bytes.Buffer
	p := NewParser()
	p.Config().Usage("frob [-n NUM] file...").Output(&out)
	var n int
	p.Add(&n, "--num", "-n").NArgs(1)

	p.Parse([]string{"--help"})
	assert.Contains(t, out.String(), "usage: frob [-n NUM] file...\n")
}

type recordingFormatter struct {
	calls int
}

func (f *recordingFormatter) Format(p *ArgumentParser, w io.Writer) {
	f.calls++
	io.WriteString(w, "custom help\n")
}

func TestCustomFormatter(t *testing.T) {
	var out bytes.Buffer
	f := &recordingFormatter{}
	p := NewParser()
	p.Config().Formatter(f).Output(&out)
	var n int
	p.Add(&n, "--num").NArgs(1)

	res := p.Parse([]string{"--help"})
	assert.True(t, res.HelpWasShown())
	assert.Equal(t, 1, f.calls)
	assert.Equal(t, "custom help\n", out.String())
}

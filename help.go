package argot

import (
	"fmt"
	"io"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// Help descriptors
///////////////////////////////////////////////////////////////////////////////

// GroupDescription is the group metadata exposed to the help
// formatter.
type GroupDescription struct {
	Name        string
	Title       string
	Description string
	IsExclusive bool
	IsRequired  bool
}

// ArgumentDescription is the per-definition descriptor record an
// external formatter renders. The core never formats help text beyond
// the Arguments usage fragment.
type ArgumentDescription struct {
	HelpName   string
	ShortName  string
	LongName   string
	Metavar    string
	Arguments  string
	Help       string
	IsRequired bool
	IsCommand  bool
	Group      GroupDescription
}

// DescribeArgument returns the descriptor for the named option or
// positional. The second result is false for unknown names.
func (p *ArgumentParser) DescribeArgument(name string) (ArgumentDescription, bool) {
	args := p.def.options
	if !strings.HasPrefix(name, ShortNamePrefix) {
		args = p.def.positionals
	}
	for _, o := range args {
		if o.hasName(name) {
			return describeOption(o), true
		}
	}
	return ArgumentDescription{}, false
}

// DescribeArguments returns descriptors for every registered option,
// positional and command, in registration order.
func (p *ArgumentParser) DescribeArguments() []ArgumentDescription {
	var descriptions []ArgumentDescription

	for _, o := range p.def.options {
		descriptions = append(descriptions, describeOption(o))
	}
	for _, o := range p.def.positionals {
		descriptions = append(descriptions, describeOption(o))
	}
	for _, c := range p.def.commands {
		descriptions = append(descriptions, describeCommand(c))
	}

	return descriptions
}

func describeOption(o *Option) ArgumentDescription {
	desc := ArgumentDescription{
		HelpName:   o.helpName(),
		ShortName:  o.shortName,
		LongName:   o.longName,
		Metavar:    o.metavarName(),
		Help:       o.help,
		IsRequired: o.isRequired(),
	}

	if o.acceptsAnyArguments() {
		min, max := o.argumentCounts()
		desc.Arguments = usageFragment(o.metavarName(), min, max)
	}

	if g := o.getGroup(); g != nil {
		desc.Group = GroupDescription{
			Name:        g.Name(),
			Title:       g.Title(),
			Description: g.Description(),
			IsExclusive: g.IsExclusive(),
			IsRequired:  g.IsRequired(),
		}
	}

	return desc
}

func describeCommand(c *Command) ArgumentDescription {
	return ArgumentDescription{
		HelpName:  c.Name(),
		LongName:  c.Name(),
		Help:      c.Help(),
		IsCommand: true,
	}
}

// usageFragment renders the arity bounds as a usage fragment, e.g.
// "M M [M ...]" for (2,unbounded) or "M [M]" for (1,2).
func usageFragment(metavar string, min, max int) string {
	var frag string
	if min > 0 {
		frag = metavar
		for i := 1; i < min; i++ {
			frag += " " + metavar
		}
	}

	switch {
	case max < 0:
		opt := "[" + metavar + " ...]"
		if frag != "" {
			opt = " " + opt
		}
		frag += opt
	case max-min == 1:
		frag += "[" + metavar + "]"
	case max > min:
		opt := fmt.Sprintf("[%s {0..%d}]", metavar, max-min)
		if frag != "" {
			opt = " " + opt
		}
		frag += opt
	}

	return frag
}

///////////////////////////////////////////////////////////////////////////////
// Formatter collaborator
///////////////////////////////////////////////////////////////////////////////

// Formatter renders help text from the parser's descriptor records.
// The core only triggers it when a help token is recognized or when a
// parser with required arguments is invoked with no input.
type Formatter interface {
	Format(p *ArgumentParser, w io.Writer)
}

// defaultFormatter is a deliberately small renderer; programs wanting
// wrapped or localized output install their own through
// Config().Formatter.
type defaultFormatter struct{}

func (defaultFormatter) Format(p *ArgumentParser, w io.Writer) {
	cfg := p.GetConfig()

	usage := cfg.Usage
	if usage == "" {
		program := cfg.Program
		if program == "" {
			program = "program"
		}
		usage = program + " [options]"
		for _, o := range p.def.positionals {
			min, max := o.argumentCounts()
			if frag := usageFragment(o.metavarName(), min, max); frag != "" {
				usage += " " + frag
			}
		}
	}
	fmt.Fprintf(w, "usage: %s\n", usage)

	if cfg.Description != "" {
		fmt.Fprintf(w, "\n%s\n", cfg.Description)
	}

	descriptions := p.DescribeArguments()
	if len(descriptions) > 0 {
		fmt.Fprintln(w)
		for _, d := range descriptions {
			fmt.Fprintf(w, "  %s\n", formatArgumentLine(d))
		}
	}

	if cfg.Epilog != "" {
		fmt.Fprintf(w, "\n%s\n", cfg.Epilog)
	}
}

func formatArgumentLine(d ArgumentDescription) string {
	var names string
	switch {
	case d.IsCommand:
		names = d.HelpName
	case d.ShortName != "" && d.LongName != "":
		names = d.ShortName + ", " + d.LongName
	default:
		names = d.HelpName
	}

	if d.Arguments != "" {
		names += " " + d.Arguments
	}
	if d.Help != "" {
		names += "\t" + d.Help
	}
	return names
}

// generateHelp triggers the formatter collaborator on the configured
// output writer.
func (p *ArgumentParser) generateHelp() {
	f := p.config.data.Formatter
	if f == nil {
		f = defaultFormatter{}
	}
	f.Format(p, p.output())
}

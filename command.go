package argot

///////////////////////////////////////////////////////////////////////////////
// Commands
///////////////////////////////////////////////////////////////////////////////

// Options is implemented by structures that register their fields as
// arguments on a parser. AddArguments is called once, either directly
// through ArgumentParser.AddArguments or lazily when a sub-command is
// dispatched.
type Options interface {
	AddArguments(parser *ArgumentParser)
}

// OptionsFactory lazily builds the Options of a sub-command the first
// time its name is matched.
type OptionsFactory func(name string) Options

// Command is a named sub-parser entry. Its factory runs only if the
// command name is matched as the first unconsumed positional token;
// the command then greedily consumes the remainder of the token slice
// with its own parser.
type Command struct {
	name    string
	help    string
	options Options
	factory OptionsFactory
}

func newCommand(name string, factory OptionsFactory) *Command {
	return &Command{name: name, factory: factory}
}

func (c *Command) Name() string { return c.name }
func (c *Command) Help() string { return c.help }

func (c *Command) hasName(name string) bool {
	return name != "" && name == c.name
}

func (c *Command) hasFactory() bool {
	return c.factory != nil
}

// Options returns the command's argument structure, building it on
// first use. After a parse that dispatched this command, the parsed
// values live in the returned structure.
func (c *Command) Options() Options {
	if c.options == nil && c.factory != nil {
		c.options = c.factory(c.name)
	}
	return c.options
}

///////////////////////////////////////////////////////////////////////////////
// CommandConfig
///////////////////////////////////////////////////////////////////////////////

// CommandConfig is the chainable configuration handle returned by
// ArgumentParser.AddCommand.
type CommandConfig struct {
	command *Command
}

// Help sets the descriptive text shown for the command.
func (c *CommandConfig) Help(text string) *CommandConfig {
	c.command.help = text
	return c
}

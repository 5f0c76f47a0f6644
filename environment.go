package argot

import (
	"io"
	"os"
)

// Environment is the opaque context passed through to assign actions.
// It lets target-specific logic interact with the running parse
// without the matcher depending on it.
type Environment struct {
	parser  *ArgumentParser
	builder *resultBuilder
}

// Parser returns the parser owning the current parse.
func (e *Environment) Parser() *ArgumentParser {
	return e.parser
}

// Output returns the parser's configured output writer, defaulting to
// standard output.
func (e *Environment) Output() io.Writer {
	if w := e.parser.GetConfig().Output; w != nil {
		return w
	}
	return os.Stdout
}

// RequestExit stops the parse after the current token. The result will
// carry an exit-requested entry and the remaining post-pass checks are
// skipped.
func (e *Environment) RequestExit() {
	e.builder.requestExit()
}

// NotifyHelpShown records that help text was displayed by an action.
func (e *Environment) NotifyHelpShown() {
	e.builder.signalHelpShown()
}

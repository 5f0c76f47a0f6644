package argot

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

///////////////////////////////////////////////////////////////////////////////
// Error taxonomy
///////////////////////////////////////////////////////////////////////////////

// ErrorCode classifies one parse-time violation.
type ErrorCode int

const (
	// UnknownOption marks a token that matched no registered name and
	// could not be allocated to a positional.
	UnknownOption ErrorCode = iota
	// ExclusiveViolation marks the first assigned option of an
	// exclusive group that had more than one member assigned.
	ExclusiveViolation
	// MissingOption marks a required option with zero assignments.
	MissingOption
	// MissingOptionGroup marks a required group with zero assigned
	// members.
	MissingOptionGroup
	// MissingArgument marks a definition left below its minimum arity.
	MissingArgument
	// ConversionError marks a token the built-in conversion rejected.
	ConversionError
	// InvalidChoice marks a token outside the configured choices.
	InvalidChoice
	// FlagTakesNoParameter marks an embedded =value on a flag option.
	FlagTakesNoParameter
	// ExitRequested marks a parse stopped early by an assign action.
	ExitRequested
	// ActionError carries the message of a failed custom action.
	ActionError
	// InvalidInput marks unusable parser input (nil token slice).
	InvalidInput
)

func (c ErrorCode) String() string {
	switch c {
	case UnknownOption:
		return "UnknownOption"
	case ExclusiveViolation:
		return "ExclusiveViolation"
	case MissingOption:
		return "MissingOption"
	case MissingOptionGroup:
		return "MissingOptionGroup"
	case MissingArgument:
		return "MissingArgument"
	case ConversionError:
		return "ConversionError"
	case InvalidChoice:
		return "InvalidChoice"
	case FlagTakesNoParameter:
		return "FlagTakesNoParameter"
	case ExitRequested:
		return "ExitRequested"
	case ActionError:
		return "ActionError"
	case InvalidInput:
		return "InvalidInput"
	default:
		return fmt.Sprintf("ErrorCode(%d)", int(c))
	}
}

// ParseError is one violation entry: the name of the offending
// definition (possibly empty for control entries) and the error kind.
type ParseError struct {
	Option string
	Code   ErrorCode
}

///////////////////////////////////////////////////////////////////////////////
// ParseResult
///////////////////////////////////////////////////////////////////////////////

// ParseResult is the outcome of one Parse invocation. It is immutable
// once returned.
type ParseResult struct {
	errors           []ParseError
	ignoredArguments []string
	helpWasShown     bool
	errorsWereShown  bool
	exitRequested    bool
}

// Ok reports whether the parse completed without violations.
func (r *ParseResult) Ok() bool {
	return len(r.errors) == 0 && len(r.ignoredArguments) == 0
}

// Errors returns the collected violations in the order they were
// detected.
func (r *ParseResult) Errors() []ParseError {
	return r.errors
}

// IgnoredArguments returns the unrecognized tokens in input order.
func (r *ParseResult) IgnoredArguments() []string {
	return r.ignoredArguments
}

// HelpWasShown reports whether the parse triggered the help
// collaborator.
func (r *ParseResult) HelpWasShown() bool {
	return r.helpWasShown
}

// ErrorsWereShown reports whether the parser already described the
// violations on its output writer.
func (r *ParseResult) ErrorsWereShown() bool {
	return r.errorsWereShown
}

// ExitRequested reports whether the caller must stop processing, for
// example after help was displayed. The top-level caller is expected
// to check this before acting on the parsed values.
func (r *ParseResult) ExitRequested() bool {
	return r.exitRequested
}

// hasCode reports whether an entry with the given code was collected.
func (r *ParseResult) hasCode(code ErrorCode) bool {
	for _, e := range r.errors {
		if e.Code == code {
			return true
		}
	}
	return false
}

///////////////////////////////////////////////////////////////////////////////
// Result builder
///////////////////////////////////////////////////////////////////////////////

// resultBuilder accumulates violations and control signals during one
// parse and produces the final ParseResult.
type resultBuilder struct {
	result ParseResult
}

func (b *resultBuilder) addError(optionName string, code ErrorCode) {
	b.result.errors = append(b.result.errors, ParseError{Option: optionName, Code: code})
}

func (b *resultBuilder) addIgnored(token string) {
	b.result.ignoredArguments = append(b.result.ignoredArguments, token)
}

// addResult merges a sub-command's outcome into the parent result.
func (b *resultBuilder) addResult(sub ParseResult) {
	b.result.errors = append(b.result.errors, sub.errors...)
	b.result.ignoredArguments = append(b.result.ignoredArguments, sub.ignoredArguments...)
	b.result.helpWasShown = b.result.helpWasShown || sub.helpWasShown
	b.result.errorsWereShown = b.result.errorsWereShown || sub.errorsWereShown
	if sub.exitRequested {
		b.requestExit()
	}
}

func (b *resultBuilder) signalHelpShown() {
	b.result.helpWasShown = true
}

func (b *resultBuilder) signalErrorsShown() {
	b.result.errorsWereShown = true
}

func (b *resultBuilder) requestExit() {
	b.result.exitRequested = true
}

func (b *resultBuilder) wasExitRequested() bool {
	return b.result.exitRequested
}

// hasArgumentProblems reports whether anything was collected that the
// error describer should render.
func (b *resultBuilder) hasArgumentProblems() bool {
	return len(b.result.errors) > 0 || len(b.result.ignoredArguments) > 0
}

func (b *resultBuilder) getResult() ParseResult {
	return b.result
}

///////////////////////////////////////////////////////////////////////////////
// Error description
///////////////////////////////////////////////////////////////////////////////

var errorLabel = color.New(color.FgRed, color.Bold).Sprint("Error:")

// describeErrors renders the collected violations, one line each, in
// the order they were detected.
func describeErrors(w io.Writer, result ParseResult) {
	for _, e := range result.errors {
		switch e.Code {
		case UnknownOption:
			fmt.Fprintf(w, "%s Unknown option: '%s'\n", errorLabel, e.Option)
		case ExclusiveViolation:
			fmt.Fprintf(w, "%s Only one option from an exclusive group can be set. '%s'\n", errorLabel, e.Option)
		case MissingOption:
			fmt.Fprintf(w, "%s A required option is missing: '%s'\n", errorLabel, e.Option)
		case MissingOptionGroup:
			fmt.Fprintf(w, "%s A required option from a group is missing: '%s'\n", errorLabel, e.Option)
		case MissingArgument:
			fmt.Fprintf(w, "%s An argument is missing: '%s'\n", errorLabel, e.Option)
		case ConversionError:
			fmt.Fprintf(w, "%s The argument could not be converted: '%s'\n", errorLabel, e.Option)
		case InvalidChoice:
			fmt.Fprintf(w, "%s The value is not in the list of valid values: '%s'\n", errorLabel, e.Option)
		case FlagTakesNoParameter:
			fmt.Fprintf(w, "%s Flag options do not accept parameters: '%s'\n", errorLabel, e.Option)
		case ExitRequested:
			// A control signal, not a user-facing problem.
		case ActionError:
			fmt.Fprintf(w, "%s %s\n", errorLabel, e.Option)
		case InvalidInput:
			fmt.Fprintf(w, "%s Parser input is invalid.\n", errorLabel)
		}
	}

	if len(result.ignoredArguments) > 0 {
		fmt.Fprintf(w, "%s Ignored arguments: %s\n",
			errorLabel, strings.Join(result.ignoredArguments, ", "))
	}
}

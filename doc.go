// Package argot is a declarative command-line argument parser.
//
// Callers register named options, positional parameters, mutually
// exclusive or required groups, and sub-commands, each bound to a
// caller-owned variable. Parse consumes a token slice (typically
// os.Args[1:]), classifies every token as an option name, an option
// argument, a positional value or an unrecognized token, and populates
// the bound variables through type-erased value adapters.
//
// A minimal program:
//
//	var verbose bool
//	var num int
//	var files []string
//
//	p := argot.NewParser()
//	p.Config().Program("frob")
//	p.Add(&verbose, "--verbose", "-v").Help("enable verbose output")
//	p.Add(&num, "--num").NArgs(1).Help("a number")
//	p.Add(&files, "file").Help("files to frob")
//
//	res := p.Parse(os.Args[1:])
//	if res.ExitRequested() {
//		os.Exit(0)
//	}
//	if !res.Ok() {
//		os.Exit(1)
//	}
//
// Supported target shapes:
//   - *T: a scalar target, overwritten on every assignment
//   - **T: an optional target, allocated on the first assignment
//   - *[]T: a sequence target, appended to in input order
//
// Element conversion supports strings, all integer and float kinds,
// complex numbers, booleans (including yes/no/on/off spellings),
// time.Time, time.Duration, uuid.UUID, []byte, and any type
// implementing encoding.TextUnmarshaler.
//
// Parse never fails part-way through bad user input: every violation
// is collected into the returned ParseResult so the caller sees the
// full set of problems in one report. Misconfiguration at
// registration time (duplicate or malformed names, conflicting group
// kinds) is a programmer error and panics, like the standard flag
// package.
//
// A parser instance serves one logical invocation at a time. The
// registered definitions and their bound targets are mutated in place
// during Parse, so concurrent Parse calls against the same parser
// require external synchronization.
package argot

// Package obslog carries the engine's internal diagnostic logging. It wraps
// gologger the way the teacher's pkg/runner/logger.go wraps it for its CLI,
// minus the banner theatrics — this is a library's debug trail, not a
// user-facing interface, and nothing here ever changes control flow.
package obslog

import "github.com/projectdiscovery/gologger"

// Debugf records a diagnostic trace. It is a no-op output unless a caller
// has raised gologger's verbosity, and never affects the generators or
// dispatcher it annotates.
func Debugf(format string, args ...interface{}) {
	gologger.Debug().Msgf(format, args...)
}

// Warnf records a condition worth a human's attention that still does not
// warrant failing the operation in progress.
func Warnf(format string, args ...interface{}) {
	gologger.Warning().Msgf(format, args...)
}

// Package progress provides the Sink collaborator spec §6 names: a
// one-method interface the solver and disambiguator call at every yield
// point, plus a no-op and a terminal-spinner implementation.
//
// Grounded on the pack's eng618-parable-bloom CLI tool, which drives
// github.com/briandowns/spinner for its own long-running build steps;
// SpinnerSink reuses that library the same way, updating the spinner's
// suffix text on every Report call instead of printing a line per call.
package progress

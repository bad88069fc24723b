// Package report collects per-file outcomes of a transformation pass.
// Errors are file-scoped and never abort the pass; the CLI prints warnings
// and failures as they happen, then a styled summary, and maps Failed()
// onto the process exit code.
package report

import (
	"fmt"
	"io"
)

// Kind classifies a diagnostic per the error taxonomy: content that cannot
// be processed as text, filesystem failures, and unresolvable link targets.
type Kind int

const (
	KindParse Kind = iota
	KindIO
	KindResolution
)

func (k Kind) String() string {
	switch k {
	case KindParse:
		return "parse"
	case KindIO:
		return "io"
	default:
		return "resolution"
	}
}

// Diagnostic is one recorded warning or failure.
type Diagnostic struct {
	Path string
	Kind Kind
	Msg  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: [%s] %s", d.Path, d.Kind, d.Msg)
}

// Report accumulates the outcome of one tool invocation. Processing is
// strictly sequential, so no locking.
type Report struct {
	out     io.Writer
	verbose bool

	changed   int
	unchanged int
	skipped   int

	warnings []Diagnostic
	failures []Diagnostic
}

// New returns a report writing progress diagnostics to out (stderr in
// practice). With verbose set, informational notes are printed too.
func New(out io.Writer, verbose bool) *Report {
	return &Report{out: out, verbose: verbose}
}

// Changed records a file that was (or with dry-run, would be) rewritten.
func (r *Report) Changed(path string, msg string) {
	r.changed++
	if r.verbose {
		fmt.Fprintf(r.out, "%s: %s\n", path, msg)
	}
}

// Unchanged records a file the pass left untouched.
func (r *Report) Unchanged(path string) {
	r.unchanged++
}

// Skipped records a file the pass did not apply to at all.
func (r *Report) Skipped(path string, reason string) {
	r.skipped++
	if r.verbose {
		fmt.Fprintf(r.out, "%s: skipped: %s\n", path, reason)
	}
}

// Note records an informational detail, shown only in verbose mode. Every
// skipped heading or link gets one; nothing is silently swallowed.
func (r *Report) Note(path string, format string, args ...any) {
	if r.verbose {
		fmt.Fprintf(r.out, "%s: %s\n", path, fmt.Sprintf(format, args...))
	}
}

// Warn records a non-fatal diagnostic (unresolved link and friends) and
// prints it immediately.
func (r *Report) Warn(path string, kind Kind, format string, args ...any) {
	d := Diagnostic{Path: path, Kind: kind, Msg: fmt.Sprintf(format, args...)}
	r.warnings = append(r.warnings, d)
	fmt.Fprintf(r.out, "warning: %s\n", d)
}

// Fail records a file-scoped failure and prints it immediately. The pass
// continues with the remaining files.
func (r *Report) Fail(path string, kind Kind, err error) {
	d := Diagnostic{Path: path, Kind: kind, Msg: err.Error()}
	r.failures = append(r.failures, d)
	fmt.Fprintf(r.out, "error: %s\n", d)
}

// Failed reports whether any file-scoped failure occurred. Warnings alone
// do not fail a run.
func (r *Report) Failed() bool {
	return len(r.failures) > 0
}

// Counts returns changed/unchanged/skipped file totals.
func (r *Report) Counts() (changed, unchanged, skipped int) {
	return r.changed, r.unchanged, r.skipped
}

// Warnings returns the recorded non-fatal diagnostics.
func (r *Report) Warnings() []Diagnostic {
	return r.warnings
}

// Failures returns the recorded file-scoped failures.
func (r *Report) Failures() []Diagnostic {
	return r.failures
}

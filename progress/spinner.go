package progress

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
)

// SpinnerSink renders progress as a terminal spinner whose suffix text
// tracks the most recent phase/done/total report.
type SpinnerSink struct {
	s *spinner.Spinner
}

// NewSpinnerSink starts a spinner writing to the process's standard
// output and returns a Sink that drives it.
func NewSpinnerSink() *SpinnerSink {
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
	s.Start()

	return &SpinnerSink{s: s}
}

// Report updates the spinner's suffix with the current phase and
// fractional progress.
func (sp *SpinnerSink) Report(phase string, done, total int) {
	if sp == nil || sp.s == nil {
		return
	}
	sp.s.Suffix = fmt.Sprintf(" %s (%d/%d)", phase, done, total)
}

// Stop halts the spinner. Callers should defer this after construction.
func (sp *SpinnerSink) Stop() {
	if sp == nil || sp.s == nil {
		return
	}
	sp.s.Stop()
}

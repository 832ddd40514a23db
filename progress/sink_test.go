package progress_test

import (
	"testing"

	"github.com/katalvlaran/nonolath/progress"
)

func TestNullSink_NeverPanics(t *testing.T) {
	var s progress.Sink = progress.NullSink{}
	s.Report("skim", 1, 10)
	s.Report("", 0, 0)
}

func TestSpinnerSink_ReportAndStopAreSafeOnNil(t *testing.T) {
	var sp *progress.SpinnerSink
	sp.Report("scrub", 2, 5)
	sp.Stop()
}

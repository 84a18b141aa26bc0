package observ

import (
	"strings"
	"testing"
	"time"

	"intlc/internal/pipeline"
)

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	idx := tm.Begin("load")
	tm.End(idx, "3 files")
	tm.End(42, "ignored")

	var timings pipeline.Timings
	timings.Add(pipeline.StageScan, 2*time.Millisecond)
	timings.Add(pipeline.StageWrite, time.Millisecond)
	tm.RecordStages(timings, pipeline.StageRead, pipeline.StageScan, pipeline.StageWrite)

	report := tm.Report()
	if len(report.Phases) != 3 {
		t.Fatalf("phases = %+v", report.Phases)
	}
	if report.Phases[1].Name != "scan" || report.Phases[1].DurationMS != 2 {
		t.Errorf("scan phase = %+v", report.Phases[1])
	}
	if report.TotalMS < 3 {
		t.Errorf("total = %v, want at least 3ms", report.TotalMS)
	}

	summary := tm.Summary()
	for _, want := range []string{"timings:", "load", "// 3 files", "scan", "write", "total"} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary does not contain %q:\n%s", want, summary)
		}
	}
	if strings.Contains(summary, "read") {
		t.Errorf("unrecorded stage in summary:\n%s", summary)
	}
}

func TestEmptyTimer(t *testing.T) {
	if r := NewTimer().Report(); r.TotalMS != 0 || r.Phases != nil {
		t.Errorf("empty report = %+v", r)
	}
}

package pipeline

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestDisplayFiles(t *testing.T) {
	base := t.TempDir()
	files := []string{
		filepath.Join(base, "src", "b.tsx"),
		filepath.Join(base, "a.tsx"),
		filepath.Join(base, "src", "b.tsx"),
		"",
	}
	got := DisplayFiles(files, base)
	if diff := cmp.Diff([]string{"src/b.tsx", "a.tsx"}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestTimingsAccumulate(t *testing.T) {
	var tm Timings
	tm.Add(StageScan, time.Millisecond)
	tm.Add(StageScan, 2*time.Millisecond)
	tm.Add(StageWrite, time.Millisecond)
	if got := tm.Duration(StageScan); got != 3*time.Millisecond {
		t.Errorf("scan = %v", got)
	}
	if tm.Has(StageCompile) {
		t.Error("compile stage was never recorded")
	}
	if got := tm.Sum(StageScan, StageWrite); got != 4*time.Millisecond {
		t.Errorf("sum = %v", got)
	}
	var nilTimings *Timings
	nilTimings.Add(StageScan, time.Second)
}

func TestEmit(t *testing.T) {
	Emit(nil, "a", StageRead, StatusDone, nil, 0)

	sink := &RecordingSink{}
	EmitQueued(sink, []string{"a", "b"}, StageScan)
	boom := errors.New("boom")
	Emit(sink, "a", StageScan, StatusError, boom, time.Second)

	events := sink.Events()
	if len(events) != 3 {
		t.Fatalf("got %d events", len(events))
	}
	if events[1].File != "b" || events[1].Status != StatusQueued {
		t.Errorf("second event = %+v", events[1])
	}
	if !errors.Is(events[2].Err, boom) || events[2].Elapsed != time.Second {
		t.Errorf("third event = %+v", events[2])
	}
}

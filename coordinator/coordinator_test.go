package coordinator

import (
	"errors"
	"testing"

	"github.com/SynapticNetworks/ripplenet/timeline"
)

type fakeStream struct {
	steps    int
	pushAt   []int // snapshot of steps taken when Value() is called
	finished bool
}

func (f *fakeStream) Value() []timeline.Value {
	f.pushAt = append(f.pushAt, f.steps)
	return []timeline.Value{timeline.Int(f.steps)}
}

func (f *fakeStream) IsFinish() bool { return f.finished }

func (f *fakeStream) Step() {
	f.steps++
	if f.steps >= 3 {
		f.finished = true
	}
}

type fakeLayer struct {
	pushed [][]timeline.Value
	failOn int // 1-indexed push number to fail on, 0 disables
}

func (f *fakeLayer) PushData(values []timeline.Value) error {
	f.pushed = append(f.pushed, values)
	if f.failOn != 0 && len(f.pushed) == f.failOn {
		return errors.New("push rejected")
	}
	return nil
}

type recordingLogger struct {
	samples []int
	done    int
}

func (r *recordingLogger) LogSample(n int) { r.samples = append(r.samples, n) }
func (r *recordingLogger) LogDone(total int) { r.done = total }

type summaryRecordingLogger struct {
	recordingLogger
	gotSummary    bool
	mean          float64
	stddev        float64
	max           float64
}

func (r *summaryRecordingLogger) LogSummary(mean, stddev, max float64) {
	r.gotSummary = true
	r.mean, r.stddev, r.max = mean, stddev, max
}

func TestRunDrainsUntilFinished(t *testing.T) {
	s := &fakeStream{}
	l := &fakeLayer{}
	logger := &recordingLogger{}

	count, err := Run(s, l, logger)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
	if len(l.pushed) != 3 {
		t.Errorf("pushed %d samples, want 3", len(l.pushed))
	}
	if logger.done != 3 {
		t.Errorf("LogDone total = %d, want 3", logger.done)
	}
	if len(logger.samples) != 3 {
		t.Errorf("LogSample called %d times, want 3", len(logger.samples))
	}
}

func TestRunStopsOnFirstPushError(t *testing.T) {
	s := &fakeStream{}
	l := &fakeLayer{failOn: 2}

	count, err := Run(s, l, nil)
	if err == nil {
		t.Fatal("expected an error from the failing push")
	}
	if count != 1 {
		t.Errorf("count = %d, want 1 (loop should stop at the failing push)", count)
	}
}

func TestRunReportsSummaryToLoggerThatImplementsIt(t *testing.T) {
	s := &fakeStream{}
	l := &fakeLayer{}
	logger := &summaryRecordingLogger{}

	if _, err := Run(s, l, logger); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !logger.gotSummary {
		t.Fatal("expected LogSummary to be called")
	}
	if logger.max != 2 {
		t.Errorf("max = %v, want 2 (steps pushed were 0, 1, 2)", logger.max)
	}
}

func TestRunOnAlreadyFinishedStreamPushesNothing(t *testing.T) {
	s := &fakeStream{finished: true}
	l := &fakeLayer{}

	count, err := Run(s, l, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
}

// Package coordinator implements the training coordinator (C9): it
// drains a merged training stream into the data layer, one sample per
// tick, until every child stream is finished.
package coordinator

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/SynapticNetworks/ripplenet/timeline"
)

// MergedStream is the subset of stream.MergedStream the coordinator
// needs, narrowed to an interface so it can be driven by a fake in
// tests without constructing real CSV files.
type MergedStream interface {
	Value() []timeline.Value
	IsFinish() bool
	Step()
}

// DataLayer is the subset of datalayer.Layer the coordinator pushes
// into.
type DataLayer interface {
	PushData(values []timeline.Value) error
}

// Logger receives one line per pushed sample and one summary line when a
// run completes. A nil Logger disables both.
type Logger interface {
	LogSample(n int)
	LogDone(total int)
}

// SummaryLogger is an optional extension a Logger may also implement: it
// receives the mean, standard deviation, and maximum of the per-sample
// numeric magnitudes seen over a completed run (Enum/Datetime components
// don't contribute a magnitude and are skipped). A Logger that doesn't
// implement it simply doesn't get the extra line.
type SummaryLogger interface {
	LogSummary(mean, stddev, max float64)
}

// sampleMagnitude reduces one pushed sample to a single float64 summary
// (the mean of its numeric components), so a run of mixed Float/Integer
// channels still yields one comparable number per sample.
func sampleMagnitude(values []timeline.Value) (float64, bool) {
	var sum float64
	var n int
	for _, v := range values {
		switch v.Kind {
		case timeline.KindFloat:
			sum += v.Float
			n++
		case timeline.KindInteger:
			sum += float64(v.Integer)
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// Run pulls from stream until IsFinish(), pushing each current value into
// layer and calling Step() after every push. It returns the number of
// samples pushed, and the first PushData error encountered (the loop
// stops immediately on error since a rejected sample means the stream's
// channel configuration does not match the network's, which will not
// resolve itself on the next sample).
func Run(stream MergedStream, layer DataLayer, logger Logger) (int, error) {
	count := 0
	var magnitudes []float64

	for !stream.IsFinish() {
		values := stream.Value()
		if err := layer.PushData(values); err != nil {
			return count, err
		}
		count++
		if m, ok := sampleMagnitude(values); ok {
			magnitudes = append(magnitudes, m)
		}
		if logger != nil {
			logger.LogSample(count)
		}
		stream.Step()
	}

	if logger != nil {
		logger.LogDone(count)
		if sl, ok := logger.(SummaryLogger); ok && len(magnitudes) > 0 {
			mean, stddev := stat.MeanStdDev(magnitudes, nil)
			sl.LogSummary(mean, stddev, floats.Max(magnitudes))
		}
	}
	return count, nil
}

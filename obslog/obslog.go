// Package obslog adapts a zap.SugaredLogger to the small logging
// interfaces the rest of the module depends on (network.Logger,
// coordinator.Logger, HTTP middleware, the scheduler), so every
// component logs through one structured sink instead of the standard
// library's log package.
package obslog

import (
	"go.uber.org/zap"

	"github.com/SynapticNetworks/ripplenet/network"
)

// Logger wraps a *zap.SugaredLogger and satisfies every logging
// interface used across the module.
type Logger struct {
	s *zap.SugaredLogger
}

// New builds a production zap logger (JSON encoding, info level) and
// wraps it. Callers should defer Sync() on the result before exit.
func New() (*Logger, error) {
	z, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return &Logger{s: z.Sugar()}, nil
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	return l.s.Sync()
}

// LogLearn implements network.Logger.
func (l *Logger) LogLearn(e network.LearnEvent) {
	l.s.Debugw("learn pass", "layer", e.LayerIndex, "inc", e.IncCount, "dec", e.DecCount)
}

// LogSample implements coordinator.Logger.
func (l *Logger) LogSample(n int) {
	l.s.Debugw("training sample pushed", "count", n)
}

// LogDone implements coordinator.Logger.
func (l *Logger) LogDone(total int) {
	l.s.Infow("training run complete", "samples", total)
}

// LogSummary implements coordinator.SummaryLogger.
func (l *Logger) LogSummary(mean, stddev, max float64) {
	l.s.Infow("training run sample magnitudes", "mean", mean, "stddev", stddev, "max", max)
}

// LogRequest records one completed HTTP request, for the middleware's
// per-request access log line.
func (l *Logger) LogRequest(method, path string, status int, durationMS float64) {
	l.s.Infow("http request", "method", method, "path", path, "status", status, "duration_ms", durationMS)
}

// LogPanic records a recovered panic from an HTTP handler, before the
// middleware turns it into a 500 response.
func (l *Logger) LogPanic(method, path string, recovered any) {
	l.s.Errorw("http handler panic", "method", method, "path", path, "recovered", recovered)
}

// LogReceiverFailure records one failed fan-out POST from the training
// service's /update_receivers broadcast.
func (l *Logger) LogReceiverFailure(url string, err error) {
	l.s.Warnw("receiver update failed", "url", url, "error", err)
}

// LogScheduleFailure records a failed scheduler tick.
func (l *Logger) LogScheduleFailure(target string, err error) {
	l.s.Warnw("scheduled update_receivers call failed", "target", target, "error", err)
}

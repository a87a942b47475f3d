// Package scheduler implements the cron-driven broadcast trigger (C13):
// on each tick it asks the training server to push a snapshot out to its
// configured receivers. The scheduler itself holds no training state.
package scheduler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/robfig/cron/v3"
)

// FailureLogger receives one call per failed scheduled call.
type FailureLogger interface {
	LogScheduleFailure(target string, err error)
}

// Scheduler wraps a robfig/cron/v3 runner that POSTs to
// trainingServerURL + "/update_receivers" on every tick of spec.
type Scheduler struct {
	cron   *cron.Cron
	client *http.Client
	target string
	logger FailureLogger
}

// New builds a Scheduler that will POST to trainingServerURL +
// "/update_receivers" on the given spec. The cron runner is built with
// WithSeconds so spec is a 6-field expression (seconds first), allowing
// sub-minute broadcast intervals.
func New(trainingServerURL, spec string, logger FailureLogger) (*Scheduler, error) {
	s := &Scheduler{
		cron:   cron.New(cron.WithSeconds()),
		client: &http.Client{Timeout: 10 * time.Second},
		target: trainingServerURL + "/update_receivers",
		logger: logger,
	}

	if _, err := s.cron.AddFunc(spec, s.tick); err != nil {
		return nil, fmt.Errorf("scheduler: invalid cron spec %q: %w", spec, err)
	}
	return s, nil
}

// Start begins running the schedule in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the schedule, waiting for any in-flight tick to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) tick() {
	resp, err := s.client.Post(s.target, "application/octet-stream", nil)
	if err != nil {
		if s.logger != nil {
			s.logger.LogScheduleFailure(s.target, err)
		}
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if s.logger != nil {
			s.logger.LogScheduleFailure(s.target, fmt.Errorf("scheduler: training server returned status %d", resp.StatusCode))
		}
	}
}

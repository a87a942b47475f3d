// Package trainingservice implements the training HTTP service (C10):
// accepting pushed samples and broadcasting snapshots to receivers.
package trainingservice

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"github.com/SynapticNetworks/ripplenet/httpmw"
	"github.com/SynapticNetworks/ripplenet/timeline"
)

// DataLayer is the subset of datalayer.Layer the service pushes samples
// into.
type DataLayer interface {
	PushData(values []timeline.Value) error
}

// Dumper produces the current network's gzip snapshot for broadcast.
type Dumper interface {
	GzipDump() ([]byte, error)
}

// ReceiverFailureLogger receives one call per failed broadcast POST.
type ReceiverFailureLogger interface {
	LogReceiverFailure(url string, err error)
}

// Service wires the push_data/update_receivers handlers onto a
// gorilla/mux router.
type Service struct {
	layer     DataLayer
	dumper    Dumper
	receivers []string
	logger    ReceiverFailureLogger
	client    *http.Client
}

// New builds a Service that broadcasts to the given receiver URLs on
// every /update_receivers call.
func New(layer DataLayer, dumper Dumper, receivers []string, logger ReceiverFailureLogger) *Service {
	return &Service{
		layer:     layer,
		dumper:    dumper,
		receivers: receivers,
		logger:    logger,
		client:    &http.Client{Timeout: 5 * time.Second},
	}
}

// Router builds a gorilla/mux router exposing /push_data and
// /update_receivers, wrapped in access-log and panic-recovery
// middleware.
func (s *Service) Router(access func(http.Handler) http.Handler, recover func(http.Handler) http.Handler) *mux.Router {
	r := mux.NewRouter()
	r.Use(recover)
	r.Use(access)
	r.HandleFunc("/push_data", s.handlePushData).Methods(http.MethodPost)
	r.HandleFunc("/update_receivers", s.handleUpdateReceivers).Methods(http.MethodPost)
	return r
}

func (s *Service) handlePushData(w http.ResponseWriter, r *http.Request) {
	var values []timeline.Value
	if err := json.NewDecoder(r.Body).Decode(&values); err != nil {
		httpmw.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.layer.PushData(values); err != nil {
		httpmw.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (s *Service) handleUpdateReceivers(w http.ResponseWriter, r *http.Request) {
	snapshot, err := s.dumper.GzipDump()
	if err != nil {
		httpmw.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.broadcast(snapshot)
	w.WriteHeader(http.StatusOK)
}

// broadcast fans snapshot out to every receiver concurrently, bounded by
// a counting semaphore sized to the receiver list so one slow receiver
// never stalls the others. Individual failures are logged, never
// returned: the broadcast is best-effort, and one unreachable receiver
// should never fail the request that triggered it.
func (s *Service) broadcast(snapshot []byte) {
	sem := make(chan struct{}, max(1, len(s.receivers)))
	var wg sync.WaitGroup

	for _, url := range s.receivers {
		url := url
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			s.postSnapshot(url, snapshot)
		}()
	}

	wg.Wait()
}

func (s *Service) postSnapshot(url string, snapshot []byte) {
	req, err := http.NewRequest(http.MethodPost, url+"/update_network", bytesReader(snapshot))
	if err != nil {
		if s.logger != nil {
			s.logger.LogReceiverFailure(url, err)
		}
		return
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := s.client.Do(req)
	if err != nil {
		if s.logger != nil {
			s.logger.LogReceiverFailure(url, err)
		}
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if s.logger != nil {
			s.logger.LogReceiverFailure(url, httpStatusError(resp.StatusCode))
		}
	}
}

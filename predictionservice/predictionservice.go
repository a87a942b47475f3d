// Package predictionservice implements the prediction HTTP service
// (C11): serving predictions and accepting snapshot replacements.
package predictionservice

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/SynapticNetworks/ripplenet/httpmw"
	"github.com/SynapticNetworks/ripplenet/network"
	"github.com/SynapticNetworks/ripplenet/timeline"
)

// DataLayer is the subset of datalayer.Layer the service predicts
// against and replaces the network on.
type DataLayer interface {
	Predict(values []timeline.Value) ([]timeline.Value, error)
	ReplaceNetwork(n *network.Network)
}

// Service wires the predict/update_network handlers onto a gorilla/mux
// router.
type Service struct {
	layer DataLayer
}

// New builds a Service backed by layer.
func New(layer DataLayer) *Service {
	return &Service{layer: layer}
}

// Router builds a gorilla/mux router exposing /predict and
// /update_network, wrapped in access-log and panic-recovery middleware.
func (s *Service) Router(access func(http.Handler) http.Handler, recover func(http.Handler) http.Handler) *mux.Router {
	r := mux.NewRouter()
	r.Use(recover)
	r.Use(access)
	r.HandleFunc("/predict", s.handlePredict).Methods(http.MethodPost)
	r.HandleFunc("/update_network", s.handleUpdateNetwork).Methods(http.MethodPost)
	return r
}

func (s *Service) handlePredict(w http.ResponseWriter, r *http.Request) {
	var values []timeline.Value
	if err := json.NewDecoder(r.Body).Decode(&values); err != nil {
		httpmw.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	predicted, err := s.layer.Predict(values)
	if err != nil {
		httpmw.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(predicted)
}

func (s *Service) handleUpdateNetwork(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		httpmw.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	restored, err := network.FromGzipDump(raw, nil)
	if err != nil {
		msg := err.Error()
		if errors.Is(err, network.ErrGzip) {
			msg = "gzip: " + msg
		} else if errors.Is(err, network.ErrJSON) {
			msg = "json: " + msg
		}
		httpmw.WriteError(w, http.StatusBadRequest, msg)
		return
	}

	s.layer.ReplaceNetwork(restored)
	w.WriteHeader(http.StatusOK)
}

package predictionservice

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SynapticNetworks/ripplenet/network"
	"github.com/SynapticNetworks/ripplenet/timeline"
	"github.com/SynapticNetworks/ripplenet/types"
)

func passthrough(next http.Handler) http.Handler { return next }

type fakeLayer struct {
	predictErr error
	replaced   *network.Network
}

func (f *fakeLayer) Predict(values []timeline.Value) ([]timeline.Value, error) {
	if f.predictErr != nil {
		return nil, f.predictErr
	}
	return values, nil
}

func (f *fakeLayer) ReplaceNetwork(n *network.Network) {
	f.replaced = n
}

func testNetwork() *network.Network {
	lp := types.LayerParams{FieldWidth: 2, FieldHeight: 2, LayerWidth: 2, LayerHeight: 1}
	sp := types.SynapseParams{
		Alpha: 1.0, H: 1, Gamma: 0.5, GDec: 0.05, GInc: 0.1, G0: 0.2,
		MaxG: 1.0, InitialStrongG: 0.8, Threshold: 0.5,
		RefractInterval: 2, SignalShiftInterval: 0,
	}
	return network.New(lp, sp, nil)
}

func TestHandlePredictReturnsJSON(t *testing.T) {
	svc := New(&fakeLayer{})
	router := svc.Router(passthrough, passthrough)

	body, _ := json.Marshal([]timeline.Value{timeline.Int(3)})
	req := httptest.NewRequest(http.MethodPost, "/predict", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body=%s", rec.Code, rec.Body.String())
	}

	var out []timeline.Value
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(out) != 1 || out[0].Integer != 3 {
		t.Errorf("got %+v, want one Integer(3) value", out)
	}
}

func TestHandlePredictRejectsCodecError(t *testing.T) {
	svc := New(&fakeLayer{predictErr: fmtErr("rejected")})
	router := svc.Router(passthrough, passthrough)

	body, _ := json.Marshal([]timeline.Value{timeline.Int(3)})
	req := httptest.NewRequest(http.MethodPost, "/predict", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleUpdateNetworkReplacesOnValidGzip(t *testing.T) {
	n := testNetwork()
	gz, err := n.GzipDump()
	if err != nil {
		t.Fatalf("GzipDump: %v", err)
	}

	layer := &fakeLayer{}
	svc := New(layer)
	router := svc.Router(passthrough, passthrough)

	req := httptest.NewRequest(http.MethodPost, "/update_network", bytes.NewReader(gz))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body=%s", rec.Code, rec.Body.String())
	}
	if layer.replaced == nil {
		t.Fatal("expected ReplaceNetwork to be called")
	}
}

func TestHandleUpdateNetworkRejectsGarbageAsBadRequest(t *testing.T) {
	svc := New(&fakeLayer{})
	router := svc.Router(passthrough, passthrough)

	req := httptest.NewRequest(http.MethodPost, "/update_network", bytes.NewReader([]byte("not gzip")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}

	var body map[string]string
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body["error"] == "" {
		t.Error("expected a non-empty error message distinguishing gzip/json failure")
	}
}

type fmtErrType string

func (e fmtErrType) Error() string { return string(e) }

func fmtErr(msg string) error { return fmtErrType(msg) }

// Package httpmw provides the access-log and panic-recovery middleware
// shared by the training and prediction services (C16).
package httpmw

import (
	"encoding/json"
	"net/http"
	"time"
)

// RequestLogger receives one call per completed request.
type RequestLogger interface {
	LogRequest(method, path string, status int, durationMS float64)
}

// PanicLogger receives one call per recovered handler panic.
type PanicLogger interface {
	LogPanic(method, path string, recovered any)
}

// statusRecorder captures the status code written by the wrapped
// handler, defaulting to 200 if WriteHeader is never called.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// AccessLog logs method, path, status, and duration for every request.
func AccessLog(logger RequestLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()
			next.ServeHTTP(rec, r)
			logger.LogRequest(r.Method, r.URL.Path, rec.status, float64(time.Since(start).Microseconds())/1000.0)
		})
	}
}

// errorBody is the JSON shape every handled failure returns:
// {"error": "..."}.
type errorBody struct {
	Error string `json:"error"`
}

// WriteError writes status with a JSON {"error": msg} body.
func WriteError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorBody{Error: msg})
}

// Recover turns a panic inside the wrapped handler into a 500 JSON
// error envelope instead of letting it crash the server, after
// reporting it to logger.
func Recover(logger PanicLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.LogPanic(r.Method, r.URL.Path, rec)
					WriteError(w, http.StatusInternalServerError, "internal error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

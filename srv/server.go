// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package srv implements an HTTP front to evaluate stresses and equilibrium states
package srv

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofem/mech/mdl/solid"
	"github.com/gofem/mech/mdl/thermal"
	"github.com/google/uuid"
)

// RunIdHeader holds the response header with the identifier of each request
const RunIdHeader = "X-Run-Id"

// Server holds the handlers; it keeps no simulation state
type Server struct {
	logger   *log.Logger
	validate *validator.Validate
}

// New returns a new server; a default logger is used if logger is nil
func New(logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{logger: logger, validate: validator.New()}
}

// Router returns the HTTP handler with all routes
func (o *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(o.runId)
	r.Use(middleware.Recoverer)
	r.Get("/healthz", o.healthz)
	r.Get("/models", o.models)
	r.Post("/stress", o.stress)
	r.Post("/root", o.root)
	return r
}

// runId sets the run identifier and logs each request
func (o *Server) runId(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set(RunIdHeader, id)
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		t0 := time.Now()
		next.ServeHTTP(ww, r)
		o.logger.Info("request", "method", r.Method, "path", r.URL.Path, "status", ww.Status(), "run", id, "elapsed", time.Since(t0))
	})
}

// ModelData defines a leaf model by name and parameters
type ModelData struct {
	Model string     `json:"model" validate:"required"` // name of model; e.g. "neo-hookean"
	Prms  dbf.Params `json:"prms"`                      // parameters; example parameters are used if empty
}

// allocate allocates and initialises the model
func (o ModelData) allocate() (solid.Model, error) {
	m, err := solid.New(o.Model)
	if err != nil {
		return nil, &httpError{http.StatusNotFound, err.Error()}
	}
	prms := o.Prms
	if len(prms) == 0 {
		prms = m.GetPrms(true)
	}
	if err = m.Init(prms); err != nil {
		return nil, &httpError{http.StatusBadRequest, err.Error()}
	}
	return m, nil
}

// handlers ////////////////////////////////////////////////////////////////////////////////////////

func (o *Server) healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ok")); err != nil {
		o.logger.Error("cannot write health check response", "err", err)
	}
}

// ModelsResponse lists the available models
type ModelsResponse struct {
	Solid   []string `json:"solid"`
	Thermal []string `json:"thermal"`
}

func (o *Server) models(w http.ResponseWriter, r *http.Request) {
	o.respond(w, http.StatusOK, ModelsResponse{Solid: solid.Names(), Thermal: thermal.Names()})
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// httpError holds an error and its status code
type httpError struct {
	Status int
	Msg    string
}

func (o *httpError) Error() string { return o.Msg }

// ErrorResponse holds the message of a failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

// decode decodes and validates the request body
func (o *Server) decode(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &httpError{http.StatusBadRequest, "invalid request body: " + err.Error()}
	}
	if err := o.validate.Struct(v); err != nil {
		return &httpError{http.StatusBadRequest, "invalid request: " + err.Error()}
	}
	return nil
}

// fail writes an error response; constitutive failures are unprocessable
func (o *Server) fail(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	var he *httpError
	var se *solid.Error
	switch {
	case errors.As(err, &he):
		status = he.Status
	case errors.As(err, &se):
		status = http.StatusUnprocessableEntity
	}
	o.logger.Warn("request failed", "status", status, "err", err)
	o.respond(w, status, ErrorResponse{Error: err.Error()})
}

// respond writes v as JSON
func (o *Server) respond(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		o.logger.Error("cannot encode response", "err", err)
	}
}

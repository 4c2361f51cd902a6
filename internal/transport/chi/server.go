// Package chi implements the HTTP API for the conversion service.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/kailas-cloud/bnggrid"
	"github.com/kailas-cloud/bnggrid/internal/version"

	convertuc "github.com/kailas-cloud/bnggrid/internal/usecase/convert"
)

// Error codes returned in JSON error bodies.
const (
	codeBadRequest    = "bad_request"
	codeBatchTooLarge = "batch_too_large"
)

// Server holds the HTTP handlers for the conversion endpoints.
type Server struct {
	convert *convertuc.Service
	logger  *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(convert *convertuc.Service, logger *zap.Logger) *Server {
	return &Server{convert: convert, logger: logger}
}

// Routes mounts the API endpoints on the given router.
func (s *Server) Routes(r chi.Router) {
	r.Post("/v1/convert", s.handleConvert)
	r.Post("/v1/convert/batch", s.handleConvertBatch)
	r.Post("/v1/convert/inverse", s.handleInverse)
	r.Get("/health", s.handleHealth)
}

type convertRequest struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

type batchRequest struct {
	Lons []float64 `json:"lons"`
	Lats []float64 `json:"lats"`
}

type batchResponse struct {
	Points []bnggrid.GridPoint `json:"points"`
}

type inverseRequest struct {
	Easting  float64 `json:"easting"`
	Northing float64 `json:"northing"`
}

type inverseResponse struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, s.convert.Single(req.Lon, req.Lat))
}

func (s *Server) handleConvertBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	points, err := s.convert.Batch(req.Lons, req.Lats)
	if err != nil {
		s.handleConvertError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, batchResponse{Points: points})
}

func (s *Server) handleInverse(w http.ResponseWriter, r *http.Request) {
	var req inverseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	lon, lat := s.convert.Inverse(req.Easting, req.Northing)
	writeJSON(w, http.StatusOK, inverseResponse{Lon: lon, Lat: lat})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": version.Version,
	})
}

func (s *Server) handleConvertError(w http.ResponseWriter, err error) {
	var tooLarge *convertuc.ErrBatchTooLarge
	switch {
	case errors.As(err, &tooLarge):
		writeError(w, http.StatusBadRequest, codeBatchTooLarge, err.Error())
	case errors.Is(err, bnggrid.ErrLengthMismatch):
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
	default:
		s.logger.Error("batch conversion failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

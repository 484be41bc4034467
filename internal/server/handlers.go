package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/leapstack-labs/sqlmerge/internal/params"
	"github.com/leapstack-labs/sqlmerge/internal/pipeline"
	"github.com/leapstack-labs/sqlmerge/pkg/format"
	"github.com/leapstack-labs/sqlmerge/pkg/highlight"
	"github.com/leapstack-labs/sqlmerge/pkg/merge"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

type sqlRequest struct {
	SQL string `json:"sql"`
}

type mergeRequest struct {
	SQL      string          `json:"sql"`
	Params   json.RawMessage `json:"params"`
	Beautify bool            `json:"beautify"`
	Minify   bool            `json:"minify"`
}

type countResponse struct {
	Placeholders int `json:"placeholders"`
}

type sqlResponse struct {
	SQL      string `json:"sql"`
	External bool   `json:"external_formatter,omitempty"`
}

type highlightResponse struct {
	HTML string `json:"html"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCount(w http.ResponseWriter, r *http.Request) {
	var req sqlRequest
	if !s.decode(w, r, &req) {
		return
	}
	s.writeJSON(w, http.StatusOK, countResponse{Placeholders: merge.CountPlaceholders(req.SQL)})
}

func (s *Server) handleMerge(w http.ResponseWriter, r *http.Request) {
	var req mergeRequest
	if !s.decode(w, r, &req) {
		return
	}

	values, err := decodeParams(req.Params)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	opts := pipeline.Options{Beautify: req.Beautify, Minify: req.Minify}
	s.writeJSON(w, http.StatusOK, pipeline.Run(r.Context(), req.SQL, values, opts, s.beautifier))
}

func (s *Server) handleFormat(w http.ResponseWriter, r *http.Request) {
	var req sqlRequest
	if !s.decode(w, r, &req) {
		return
	}
	out, external := s.beautifier.Format(r.Context(), req.SQL)
	s.writeJSON(w, http.StatusOK, sqlResponse{SQL: out, External: external})
}

func (s *Server) handleMinify(w http.ResponseWriter, r *http.Request) {
	var req sqlRequest
	if !s.decode(w, r, &req) {
		return
	}
	s.writeJSON(w, http.StatusOK, sqlResponse{SQL: format.Minify(req.SQL)})
}

func (s *Server) handleHighlight(w http.ResponseWriter, r *http.Request) {
	var req sqlRequest
	if !s.decode(w, r, &req) {
		return
	}
	s.writeJSON(w, http.StatusOK, highlightResponse{HTML: highlight.HTML(req.SQL)})
}

// handleLoad accepts a load payload as the request body, JSON or YAML by
// Content-Type. Post-processing is selected with the beautify and minify
// query parameters.
func (s *Server) handleLoad(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("failed to read request body: %w", err))
		return
	}

	kind := params.KindJSON
	if strings.Contains(r.Header.Get("Content-Type"), "yaml") {
		kind = params.KindYAML
	}
	payload, err := params.DecodeLoad(data, kind)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	opts := pipeline.Options{
		Beautify: queryBool(r, "beautify"),
		Minify:   queryBool(r, "minify"),
	}
	s.writeJSON(w, http.StatusOK, pipeline.Run(r.Context(), payload.SQL, payload.Values, opts, s.beautifier))
}

// decodeParams decodes the params field of a merge request. A missing or
// null field means no parameters.
func decodeParams(raw json.RawMessage) ([]merge.Value, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return []merge.Value{}, nil
	}
	return params.DecodeArray(string(raw))
}

func queryBool(r *http.Request, name string) bool {
	v, err := strconv.ParseBool(r.URL.Query().Get(name))
	return err == nil && v
}

// decode reads a JSON request body into v, writing a 400 response on
// failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("empty body")
		}
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return false
	}
	return true
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.logger.Debug("request failed", "status", status, "error", err)
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to write response", "error", err)
	}
}

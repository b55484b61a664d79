package web

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"nldump/internal/dumper"
	"nldump/internal/genl"
	"nldump/internal/store"
)

// defaultCaptureLimit applies when /api/captures has no limit parameter.
const defaultCaptureLimit = 100

type statusResponse struct {
	Version   string        `json:"version"`
	Families  int           `json:"families"`
	WSClients int           `json:"ws_clients"`
	Dumper    *dumper.Stats `json:"dumper,omitempty"`
	Captures  *int          `json:"captures,omitempty"`
}

func (s *Server) handleAPIStatus(w http.ResponseWriter, r *http.Request) {
	resp := statusResponse{
		Version:   s.version,
		Families:  len(s.registry.All()),
		WSClients: s.wsHub.Clients(),
	}
	if s.stats != nil {
		st := s.stats()
		resp.Dumper = &st
	}
	if s.store != nil {
		n, err := s.store.CountCaptures()
		if err != nil {
			s.logger.Error("count captures", "err", err)
			s.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
			return
		}
		resp.Captures = &n
	}
	s.writeJSON(w, http.StatusOK, resp)
}

type familyView struct {
	Name     string        `json:"name"`
	ID       uint16        `json:"id"`
	Version  uint8         `json:"version"`
	Commands []commandView `json:"commands"`
	Attrs    int           `json:"attrs"`
}

type commandView struct {
	ID   uint8  `json:"id"`
	Name string `json:"name"`
}

func (s *Server) handleAPIFamilies(w http.ResponseWriter, r *http.Request) {
	families := s.registry.All()
	views := make([]familyView, 0, len(families))
	for _, f := range families {
		v := familyView{
			Name:     f.Name,
			ID:       f.ID,
			Version:  f.Version,
			Commands: make([]commandView, 0, len(f.Commands)),
			Attrs:    f.Attrs.Count(),
		}
		for id, name := range f.Commands {
			v.Commands = append(v.Commands, commandView{ID: id, Name: name})
		}
		sort.Slice(v.Commands, func(i, j int) bool { return v.Commands[i].ID < v.Commands[j].ID })
		views = append(views, v)
	}
	s.writeJSON(w, http.StatusOK, views)
}

type decodeRequest struct {
	Hex     string `json:"hex"`
	Verbose bool   `json:"verbose"`
}

type decodeResponse struct {
	Messages []genl.Decoded `json:"messages"`
	Error    string         `json:"error,omitempty"`
}

func (s *Server) handleAPIDecode(w http.ResponseWriter, r *http.Request) {
	var req decodeRequest
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1 MB limit
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	data, err := parseHex(req.Hex)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid hex: " + err.Error()})
		return
	}
	if len(data) == 0 {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "hex must not be empty"})
		return
	}

	msgs, err := s.registry.DecodeDatagram(data, req.Verbose)
	resp := decodeResponse{Messages: msgs}
	if err != nil {
		resp.Error = err.Error()
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// parseHex accepts hex with optional whitespace and colon separators.
func parseHex(s string) ([]byte, error) {
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', ':':
			return -1
		}
		return r
	}, s)
	return hex.DecodeString(s)
}

func (s *Server) handleAPIListCaptures(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	limit := defaultCaptureLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid limit"})
			return
		}
		limit = n
	}

	captures, err := s.store.ListCaptures(limit)
	if err != nil {
		s.logger.Error("list captures", "err", err)
		s.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	if captures == nil {
		captures = []*store.Capture{}
	}
	s.writeJSON(w, http.StatusOK, captures)
}

type captureResponse struct {
	*store.Capture
	Decoded []genl.Decoded `json:"decoded,omitempty"`
}

func (s *Server) handleAPIGetCapture(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	id, ok := s.captureID(w, r)
	if !ok {
		return
	}
	c, err := s.store.GetCapture(id)
	if errors.Is(err, store.ErrNotFound) {
		s.writeJSON(w, http.StatusNotFound, map[string]string{"error": "capture not found"})
		return
	}
	if err != nil {
		s.logger.Error("get capture", "err", err, "id", id)
		s.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	resp := captureResponse{Capture: c}
	if v := r.URL.Query().Get("verbose"); v == "1" || v == "true" {
		// Malformed remainders do not parse; their stored text stands.
		if msgs, err := s.registry.DecodeDatagram(c.Raw, true); err == nil {
			resp.Decoded = msgs
		}
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAPIDeleteCapture(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	id, ok := s.captureID(w, r)
	if !ok {
		return
	}
	err := s.store.DeleteCapture(id)
	if errors.Is(err, store.ErrNotFound) {
		s.writeJSON(w, http.StatusNotFound, map[string]string{"error": "capture not found"})
		return
	}
	if err != nil {
		s.logger.Error("delete capture", "err", err, "id", id)
		s.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) requireStore(w http.ResponseWriter) bool {
	if s.store == nil {
		s.writeJSON(w, http.StatusNotFound, map[string]string{"error": "capture store disabled"})
		return false
	}
	return true
}

func (s *Server) captureID(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil || id == 0 {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid capture id"})
		return 0, false
	}
	return id, true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("writeJSON encode failed", "err", err)
	}
}

// Package jsonbintest provides an in-process JSONBin.io fake for tests.
package jsonbintest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// Server emulates a single JSONBin v3 bin: GET /b/{id}/latest and PUT /b/{id}.
// The stored record is raw json. Writes can be held open to interleave two
// read-modify-write cycles deterministically.
type Server struct {
	mu        sync.Mutex
	record    json.RawMessage
	reads     int
	writes    int
	failReads bool
	writeGate chan struct{}

	srv *httptest.Server
}

func New(t *testing.T) *Server {
	s := &Server{record: json.RawMessage("null")}
	s.srv = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.srv.Close)
	return s
}

// URL is the base url to point the client at
func (s *Server) URL() string {
	return s.srv.URL
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.Method == http.MethodGet && strings.HasSuffix(r.URL.Path, "/latest"):
		s.mu.Lock()
		s.reads++
		fail := s.failReads
		record := s.record
		s.mu.Unlock()

		if fail {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"message":"bin unavailable"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"record":   record,
			"metadata": map[string]any{"id": "test-bin", "private": true},
		})
	case r.Method == http.MethodPut:
		s.mu.Lock()
		gate := s.writeGate
		s.mu.Unlock()
		if gate != nil {
			<-gate
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		s.mu.Lock()
		s.record = body
		s.writes++
		s.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"record": json.RawMessage(body)})
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

// SetRecord replaces the stored record
func (s *Server) SetRecord(t *testing.T, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("jsonbintest: marshal record: %v", err)
	}
	s.mu.Lock()
	s.record = data
	s.mu.Unlock()
}

// Record decodes the stored record into out
func (s *Server) Record(t *testing.T, out any) {
	s.mu.Lock()
	data := s.record
	s.mu.Unlock()
	if err := json.Unmarshal(data, out); err != nil {
		t.Fatalf("jsonbintest: unmarshal record: %v", err)
	}
}

func (s *Server) Reads() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reads
}

func (s *Server) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

// FailReads makes every read answer a 500 until disabled
func (s *Server) FailReads(fail bool) {
	s.mu.Lock()
	s.failReads = fail
	s.mu.Unlock()
}

// HoldWrites blocks incoming writes until ReleaseWrites is called
func (s *Server) HoldWrites() {
	s.mu.Lock()
	s.writeGate = make(chan struct{})
	s.mu.Unlock()
}

// ReleaseWrites lets held writes proceed
func (s *Server) ReleaseWrites() {
	s.mu.Lock()
	if s.writeGate != nil {
		close(s.writeGate)
		s.writeGate = nil
	}
	s.mu.Unlock()
}

// Package fakehydrus is an in-process stand in for the Hydrus Client API used
// by tests. It answers /api_version, records every request and serves
// whatever handlers a test registers.
package fakehydrus

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"testing"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

const apiVersionPath = "/api_version"

// Request is a request the server received.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// Server is a fake Hydrus Client API.
type Server struct {
	*httptest.Server

	mu            sync.Mutex
	apiVersion    int
	hydrusVersion int
	handlers      map[string]http.HandlerFunc
	requests      []Request
}

// New starts a server that reports the given versions. It is closed when the
// test finishes.
func New(t testing.TB, apiVersion, hydrusVersion int) *Server {
	t.Helper()
	s := &Server{
		apiVersion:    apiVersion,
		hydrusVersion: hydrusVersion,
		handlers:      make(map[string]http.HandlerFunc),
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serveHTTP))
	t.Cleanup(s.Close)
	return s
}

// SetVersions changes the versions reported from now on.
func (s *Server) SetVersions(apiVersion, hydrusVersion int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apiVersion = apiVersion
	s.hydrusVersion = hydrusVersion
}

// Handle serves path with h, replacing any earlier handler. Registering
// /api_version replaces the built in answer.
func (s *Server) Handle(path string, h http.HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[path] = h
}

// HandleJSON answers path with status and body. If body is a JSON object the
// version fields Hydrus adds to every response are set on it.
func (s *Server) HandleJSON(path string, status int, body string) {
	s.Handle(path, func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, status, s.stamp(body))
	})
}

// HandleError answers path the way Hydrus reports a failed call.
func (s *Server) HandleError(path string, status int, exceptionType, message string) {
	body, _ := sjson.Set(`{}`, "error", message)
	body, _ = sjson.Set(body, "exception_type", exceptionType)
	body, _ = sjson.Set(body, "status_code", status)
	s.Handle(path, func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, status, body)
	})
}

// Requests returns every request received so far, in order.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// Count returns how many requests were received for path.
func (s *Server) Count(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, r := range s.requests {
		if r.Path == path {
			n++
		}
	}
	return n
}

// Last returns the most recent request for path.
func (s *Server) Last(path string) (Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.requests) - 1; i >= 0; i-- {
		if s.requests[i].Path == path {
			return s.requests[i], true
		}
	}
	return Request{}, false
}

// WriteJSON writes body as a JSON response.
func WriteJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func (s *Server) stamp(body string) string {
	if !gjson.Valid(body) || !gjson.Parse(body).IsObject() {
		return body
	}
	s.mu.Lock()
	apiVersion, hydrusVersion := s.apiVersion, s.hydrusVersion
	s.mu.Unlock()

	stamped, err := sjson.Set(body, "version", apiVersion)
	if err != nil {
		return body
	}
	stamped, err = sjson.Set(stamped, "hydrus_version", hydrusVersion)
	if err != nil {
		return body
	}
	return stamped
}

func (s *Server) serveHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	r.Body = io.NopCloser(bytes.NewReader(body))

	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Header: r.Header.Clone(),
		Body:   body,
	})
	h, ok := s.handlers[r.URL.Path]
	s.mu.Unlock()

	switch {
	case ok:
		h(w, r)
	case r.URL.Path == apiVersionPath:
		WriteJSON(w, http.StatusOK, s.stamp(`{}`))
	default:
		body, _ := sjson.Set(`{"exception_type":"NotFoundException","status_code":404}`, "error", "This path ("+r.URL.Path+") was not found!")
		WriteJSON(w, http.StatusNotFound, body)
	}
}

// Versions renders the version fields as a JSON object.
func Versions(apiVersion, hydrusVersion int) string {
	return `{"version":` + strconv.Itoa(apiVersion) + `,"hydrus_version":` + strconv.Itoa(hydrusVersion) + `}`
}

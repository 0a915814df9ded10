// Package apiclienttest runs an httptest backend wired to a real apiclient.Client
// so services can be tested against recorded HTTP traffic.
package apiclienttest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jrsteele09/hostel-admin/apiclient"
	"github.com/jrsteele09/hostel-admin/storage"
	"github.com/jrsteele09/hostel-admin/storage/memstore"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

const (
	APIPrefix = "/api/v1"
	CSRFToken = "test-csrf-token"
)

// Call is one request the backend received.
type Call struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// DecodeBody unmarshals the recorded request body.
func (c Call) DecodeBody(t *testing.T, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(c.Body, v))
}

type Server struct {
	*httptest.Server
	Client *apiclient.Client
	Store  *storage.Accessor

	mux   *http.ServeMux
	lock  sync.Mutex
	calls []Call
}

// New starts a backend serving the CSRF bootstrap endpoint and returns a
// client pointed at its API prefix, backed by in-memory storage.
func New(t *testing.T) *Server {
	t.Helper()

	s := &Server{mux: http.NewServeMux()}
	s.mux.HandleFunc("GET "+apiclient.CSRFBootstrapPath, func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: apiclient.CookieXSRFToken, Value: CSRFToken, Path: "/"})
		w.WriteHeader(http.StatusNoContent)
	})
	s.Server = httptest.NewServer(http.HandlerFunc(s.record))
	t.Cleanup(s.Server.Close)

	s.Store = storage.NewAccessor(memstore.New(""), storage.WithLogger(zerolog.Nop()))
	client, err := apiclient.New(apiclient.Config{
		BaseURL: s.URL + APIPrefix,
		Timeout: 2 * time.Second,
	}, s.Store, apiclient.WithLogger(zerolog.Nop()))
	require.NoError(t, err)
	s.Client = client
	return s
}

func (s *Server) record(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != apiclient.CSRFBootstrapPath {
		body, _ := io.ReadAll(r.Body)
		s.lock.Lock()
		s.calls = append(s.calls, Call{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
			Body:   body,
		})
		s.lock.Unlock()
		r.Body = io.NopCloser(bytes.NewReader(body))
	}
	s.mux.ServeHTTP(w, r)
}

// Handle registers a handler. pattern is "METHOD /path" relative to the API
// prefix, e.g. "GET /admin/hostels/{id}".
func (s *Server) Handle(pattern string, handler http.HandlerFunc) {
	method, path, ok := strings.Cut(pattern, " ")
	if !ok {
		s.mux.HandleFunc(APIPrefix+pattern, handler)
		return
	}
	s.mux.HandleFunc(method+" "+APIPrefix+path, handler)
}

// JSON registers a handler answering with a fixed status and body.
func (s *Server) JSON(pattern string, status int, body any) {
	s.Handle(pattern, func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, status, body)
	})
}

// OK registers a handler answering 200 with {success:true, data}.
func (s *Server) OK(pattern string, data any) {
	s.JSON(pattern, http.StatusOK, Envelope(data))
}

func (s *Server) Calls() []Call {
	s.lock.Lock()
	defer s.lock.Unlock()
	return append([]Call(nil), s.calls...)
}

func (s *Server) LastCall(t *testing.T) Call {
	t.Helper()
	calls := s.Calls()
	require.NotEmpty(t, calls, "no request reached the backend")
	return calls[len(calls)-1]
}

// Envelope wraps data the way the backend does.
func Envelope(data any) map[string]any {
	return map[string]any{"success": true, "data": data}
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

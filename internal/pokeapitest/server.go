// Package pokeapitest provides an in-process fake of the PokeAPI REST
// service for tests.
//
// Documents are registered by path relative to the API root:
//
//	srv := pokeapitest.New(t)
//	srv.Add("pokemon-species/charmander", map[string]any{"name": "charmander"})
//	client := pokeapi.NewClient(nil, pokeapi.Config{BaseURL: srv.BaseURL()}, nil)
//
// Unknown paths answer 404. Queued statuses from [Server.FailNext] are served
// before the document, which makes retry behaviour easy to script.
package pokeapitest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// APIPrefix is the path under which resources are served.
const APIPrefix = "/api/v2"

// Server is a fake PokeAPI.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	docs     map[string][]byte
	failures map[string][]int
	hits     map[string]int
	total    int
}

// New starts a server and closes it when the test ends.
func New(t testing.TB) *Server {
	t.Helper()
	s := &Server{
		docs:     make(map[string][]byte),
		failures: make(map[string][]int),
		hits:     make(map[string]int),
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get(APIPrefix+"/*", s.serve)
	r.Get(APIPrefix, s.serve)

	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)
	return s
}

// BaseURL returns the API root to put in a client config.
func (s *Server) BaseURL() string {
	return s.Server.URL + APIPrefix
}

// URLFor returns the absolute URL of a resource path.
func (s *Server) URLFor(path string) string {
	return s.BaseURL() + "/" + strings.Trim(path, "/") + "/"
}

// Add registers doc, marshalled to JSON, at path.
func (s *Server) Add(path string, doc any) {
	data, err := json.Marshal(doc)
	if err != nil {
		panic(fmt.Sprintf("pokeapitest: marshal %s: %v", path, err))
	}
	s.AddRaw(path, string(data))
}

// AddRaw registers a body verbatim. It need not be valid JSON.
func (s *Server) AddRaw(path, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[key(path)] = []byte(body)
}

// AddList registers a paginated collection under category whose pages hold
// pageSize items each, linked through "next". The first page is served at
// the bare category path.
func (s *Server) AddList(category string, names []string, pageSize int) {
	if pageSize <= 0 {
		pageSize = len(names)
	}
	for offset := 0; offset == 0 || offset < len(names); offset += pageSize {
		end := min(offset+pageSize, len(names))
		results := make([]map[string]string, 0, end-offset)
		for _, n := range names[offset:end] {
			results = append(results, map[string]string{"name": n, "url": s.URLFor(category + "/" + n)})
		}

		var next any
		if end < len(names) {
			next = s.pageURL(category, end, pageSize)
		}
		page := map[string]any{
			"count":    len(names),
			"next":     next,
			"previous": nil,
			"results":  results,
		}
		path := pagePath(category, offset, pageSize)
		if offset == 0 {
			s.Add(category, page)
		}
		s.Add(path, page)
		if end == len(names) {
			break
		}
	}
}

// FailNext makes the next len(codes) requests for path answer with the
// given statuses, in order.
func (s *Server) FailNext(path string, codes ...int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := key(path)
	s.failures[k] = append(s.failures[k], codes...)
}

// Hits returns how many requests were made for path.
func (s *Server) Hits(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[key(path)]
}

// TotalHits returns the number of requests served.
func (s *Server) TotalHits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	k := key(strings.TrimPrefix(r.URL.Path, APIPrefix))
	if r.URL.RawQuery != "" {
		k += "?" + r.URL.RawQuery
	}

	s.mu.Lock()
	s.hits[k]++
	s.total++
	var status int
	if q := s.failures[k]; len(q) > 0 {
		status, s.failures[k] = q[0], q[1:]
	}
	body, ok := s.docs[k]
	s.mu.Unlock()

	if status != 0 {
		http.Error(w, http.StatusText(status), status)
		return
	}
	if !ok {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("Not Found"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}

func (s *Server) pageURL(category string, offset, limit int) string {
	return s.BaseURL() + "/" + pagePath(category, offset, limit)
}

func pagePath(category string, offset, limit int) string {
	return fmt.Sprintf("%s/?offset=%d&limit=%d", strings.Trim(category, "/"), offset, limit)
}

// key normalises a path so that leading and trailing slashes do not matter.
func key(path string) string {
	p, q, hasQuery := strings.Cut(path, "?")
	p = strings.Trim(p, "/")
	if hasQuery {
		return p + "?" + q
	}
	return p
}

// Package relay is the backend passthrough between the viewer and the
// upstream astronomy picture API. It forwards a date query with the
// configured API key and relays the upstream JSON or error status. It keeps
// no state of its own.
package relay

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/XolaniXAD/cosmic-calendar/pkg/dateutil"
)

// Server holds the dependencies for the passthrough endpoint.
type Server struct {
	upstream string
	apiKey   string
	client   *http.Client
	router   *http.ServeMux
}

// NewServer creates and configures a relay against the upstream API base URL
// (e.g. "https://api.nasa.gov/planetary/apod").
func NewServer(upstream, apiKey string) *Server {
	s := &Server{
		upstream: strings.TrimRight(upstream, "/"),
		apiKey:   apiKey,
		client:   &http.Client{Timeout: 30 * time.Second},
		router:   http.NewServeMux(),
	}
	s.routes()
	return s
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.HandleFunc("/api/record", s.handleRecord())
}

type errorBody struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Error: msg})
}

// handleRecord validates the optional date parameter, forwards the request
// upstream, and relays the response body and status.
func (s *Server) handleRecord() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}

		date := r.URL.Query().Get("date")
		if date != "" {
			if _, err := dateutil.Parse(date); err != nil {
				writeError(w, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
				return
			}
		}

		q := url.Values{}
		q.Set("api_key", s.apiKey)
		if date != "" {
			q.Set("date", date)
		}

		req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, s.upstream+"?"+q.Encode(), nil)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Internal error")
			return
		}
		req.Header.Set("Accept", "application/json")

		resp, err := s.client.Do(req)
		if err != nil {
			log.Printf("relay: upstream request failed: %v", err)
			writeError(w, http.StatusBadGateway, "Upstream unreachable")
			return
		}
		defer resp.Body.Close()

		switch resp.StatusCode {
		case http.StatusBadRequest:
			writeError(w, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
			return
		case http.StatusUnauthorized, http.StatusForbidden:
			writeError(w, http.StatusUnauthorized, "Invalid API key")
			return
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			writeError(w, resp.StatusCode, "Upstream error")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := io.Copy(w, resp.Body); err != nil {
			log.Printf("relay: copy response: %v", err)
		}
	}
}

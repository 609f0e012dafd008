// Package http provides the HTTP API for parsing legal documents and
// browsing stored parse records.
package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fwojciec/lawtree"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// DefaultMaxBodyBytes is the default request body limit for parse requests.
const DefaultMaxBodyBytes = 32 << 20

// Server is the HTTP API server.
type Server struct {
	router       chi.Router
	parser       lawtree.Parser
	records      lawtree.RecordService
	logger       *slog.Logger
	limiter      *ClientLimiter
	maxBodyBytes int64
}

// Option configures a Server.
type Option func(*Server)

// WithRecords enables saving parse results and the record endpoints.
func WithRecords(records lawtree.RecordService) Option {
	return func(s *Server) {
		s.records = records
	}
}

// WithMaxBodyBytes limits the size of parse request bodies.
// Defaults to DefaultMaxBodyBytes if not specified.
func WithMaxBodyBytes(n int64) Option {
	return func(s *Server) {
		s.maxBodyBytes = n
	}
}

// WithRateLimit limits parse requests to rps per second per client address,
// allowing bursts of up to burst requests.
func WithRateLimit(rps float64, burst int) Option {
	return func(s *Server) {
		s.limiter = NewClientLimiter(rps, burst)
	}
}

// NewServer creates and configures the HTTP server.
func NewServer(parser lawtree.Parser, logger *slog.Logger, opts ...Option) *Server {
	s := &Server{
		parser:       parser,
		logger:       logger,
		maxBodyBytes: DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.logger))

	r.Get("/health", s.handleHealth)
	r.Get("/api/types", s.handleTypes)
	r.With(s.limit).Post("/api/parse", s.handleParse)

	r.Route("/api/records", func(r chi.Router) {
		r.Use(s.requireRecords)
		r.Get("/", s.handleListRecords)
		r.Get("/{id}", s.handleGetRecord)
		r.Delete("/{id}", s.handleDeleteRecord)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type routeJSON struct {
	Label   string `json:"label"`
	Variant string `json:"variant"`
}

func (s *Server) handleTypes(w http.ResponseWriter, r *http.Request) {
	routes := lawtree.Routes()
	out := make([]routeJSON, 0, len(routes))
	for _, rt := range routes {
		out = append(out, routeJSON{Label: rt.Label, Variant: rt.Variant.String()})
	}
	writeJSON(w, http.StatusOK, out)
}

// requireRecords rejects record requests when no record service is configured.
func (s *Server) requireRecords(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.records == nil {
			s.writeError(w, r, lawtree.Errorf(lawtree.ENOTIMPLEMENTED, "record storage is not configured"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// statusCode maps application error codes to HTTP status codes.
func statusCode(code string) int {
	switch code {
	case lawtree.EINVALID:
		return http.StatusBadRequest
	case lawtree.ENOTFOUND:
		return http.StatusNotFound
	case lawtree.EUNSUPPORTED:
		return http.StatusUnsupportedMediaType
	case lawtree.ENOTIMPLEMENTED:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

// writeError writes err as a JSON error body. Internal errors are logged
// and reported without detail.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := lawtree.ErrorCode(err)
	if code == lawtree.EINTERNAL {
		s.logger.Error("request failed",
			"path", r.URL.Path,
			"request_id", middleware.GetReqID(r.Context()),
			"err", err,
		)
	}
	writeJSON(w, statusCode(code), map[string]string{
		"code":  code,
		"error": lawtree.ErrorMessage(err),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/bnema/zoo-api/internal/domain"
	"github.com/bnema/zoo-api/internal/ports"
)

const DefaultAddress = ":3001"

const (
	invalidAnimalMessage    = "The animal is not properly formatted."
	invalidZookeeperMessage = "The zookeeper is not properly formatted."
	maxBodyBytes            = 1 << 20
)

// Service is the record API consumed by the handlers.
type Service interface {
	ListAnimals(ctx context.Context, query domain.Query) ([]domain.Animal, error)
	GetAnimal(ctx context.Context, id string) (domain.Animal, error)
	CreateAnimal(ctx context.Context, candidate domain.Candidate) (domain.Animal, error)
	ListZookeepers(ctx context.Context, query domain.Query) ([]domain.Zookeeper, error)
	GetZookeeper(ctx context.Context, id string) (domain.Zookeeper, error)
	CreateZookeeper(ctx context.Context, candidate domain.Candidate) (domain.Zookeeper, error)
}

// Metrics receives one observation per request and serves the scrape
// endpoint.
type Metrics interface {
	ObserveRequest(method, route string, code int, elapsed time.Duration)
	Handler() http.Handler
}

// ServerOptions configures the HTTP server. Zero values fall back to
// defaults suitable for a small single-node service.
type ServerOptions struct {
	Addr              string
	PublicDir         string
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
	Logger            *slog.Logger
	Metrics           Metrics
	Clock             ports.Clock
}

type Server struct {
	http    *http.Server
	service Service
	logger  *slog.Logger
	clock   ports.Clock
	opts    ServerOptions
}

// NewServer builds the server and its routes. Nothing listens until Run.
func NewServer(service Service, opts ServerOptions) *Server {
	if service == nil {
		panic("httpapi.NewServer: service is nil")
	}
	if opts.Addr == "" {
		opts.Addr = DefaultAddress
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = 5 * time.Second
	}
	if opts.ReadHeaderTimeout == 0 {
		opts.ReadHeaderTimeout = 2 * time.Second
	}
	if opts.WriteTimeout == 0 {
		opts.WriteTimeout = 10 * time.Second
	}
	if opts.IdleTimeout == 0 {
		opts.IdleTimeout = 60 * time.Second
	}
	if opts.ShutdownTimeout == 0 {
		opts.ShutdownTimeout = 5 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Clock == nil {
		opts.Clock = ports.SystemClock{}
	}

	s := &Server{
		service: service,
		logger:  opts.Logger,
		clock:   opts.Clock,
		opts:    opts,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/animals", s.handleAnimals)
	mux.HandleFunc("/api/animals/{id}", s.handleAnimal)
	mux.HandleFunc("/api/zookeepers", s.handleZookeepers)
	mux.HandleFunc("/api/zookeepers/{id}", s.handleZookeeper)
	mux.HandleFunc("/healthz", s.handleHealthz)
	if opts.Metrics != nil {
		mux.Handle("/metrics", opts.Metrics.Handler())
	}
	if opts.PublicDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(opts.PublicDir)))
	}

	s.http = &http.Server{
		Addr:              opts.Addr,
		Handler:           withMiddleware(mux, opts.Logger, opts.Metrics),
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(opts.Logger.Handler(), slog.LevelError),
	}

	return s
}

// Handler returns the fully wrapped handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Run listens on the configured address and serves until ctx is canceled,
// then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.opts.Addr, err)
	}

	s.http.BaseContext = func(net.Listener) context.Context { return ctx }

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("api listening", "addr", listener.Addr().String())
		if err := s.http.Serve(listener); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err == nil {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	case <-ctx.Done():
	}

	if err := s.Stop(context.Background()); err != nil {
		return fmt.Errorf("shutdown http: %w", err)
	}

	return nil
}

// Stop gracefully shuts down the server, waiting up to ShutdownTimeout.
func (s *Server) Stop(ctx context.Context) error {
	timeout := s.opts.ShutdownTimeout
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return s.http.Shutdown(ctx)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeMethodNotAllowed(w)
		return
	}
	writeJSON(w, http.StatusOK, HealthView{
		Status:    "ok",
		Timestamp: s.timestamp(),
	})
}

func (s *Server) handleAnimals(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		animals, err := s.service.ListAnimals(r.Context(), domain.QueryFromValues(r.URL.Query()))
		if err != nil {
			s.writeInternalError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, FromAnimals(animals))
	case http.MethodPost:
		candidate, err := decodeCandidate(w, r)
		if err != nil {
			s.writeInvalid(w, r, invalidAnimalMessage, err)
			return
		}
		animal, err := s.service.CreateAnimal(r.Context(), candidate)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidRecord) {
				s.writeInvalid(w, r, invalidAnimalMessage, err)
				return
			}
			s.writeInternalError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, FromAnimal(animal))
	default:
		s.writeMethodNotAllowed(w)
	}
}

func (s *Server) handleAnimal(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeMethodNotAllowed(w)
		return
	}

	animal, err := s.service.GetAnimal(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrAnimalNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		s.writeInternalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, FromAnimal(animal))
}

func (s *Server) handleZookeepers(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		keepers, err := s.service.ListZookeepers(r.Context(), domain.QueryFromValues(r.URL.Query()))
		if err != nil {
			s.writeInternalError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, FromZookeepers(keepers))
	case http.MethodPost:
		candidate, err := decodeCandidate(w, r)
		if err != nil {
			s.writeInvalid(w, r, invalidZookeeperMessage, err)
			return
		}
		keeper, err := s.service.CreateZookeeper(r.Context(), candidate)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidRecord) {
				s.writeInvalid(w, r, invalidZookeeperMessage, err)
				return
			}
			s.writeInternalError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, FromZookeeper(keeper))
	default:
		s.writeMethodNotAllowed(w)
	}
}

func (s *Server) handleZookeeper(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeMethodNotAllowed(w)
		return
	}

	keeper, err := s.service.GetZookeeper(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrZookeeperNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		s.writeInternalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, FromZookeeper(keeper))
}

func (s *Server) writeInvalid(w http.ResponseWriter, r *http.Request, message string, err error) {
	s.logger.InfoContext(r.Context(), "rejected create request", "path", r.URL.Path, "err", err)
	writeText(w, http.StatusBadRequest, message)
}

// Storage failures are not classified further; the client only learns that
// the request failed.
func (s *Server) writeInternalError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.ErrorContext(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "err", err)
	writeJSON(w, http.StatusInternalServerError, APIError{
		Error:     "internal server error",
		Timestamp: s.timestamp(),
	})
}

func (s *Server) writeMethodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, APIError{
		Error:     "method not allowed",
		Timestamp: s.timestamp(),
	})
}

func (s *Server) timestamp() string {
	return s.clock.Now().UTC().Format(time.RFC3339)
}

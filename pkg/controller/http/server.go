package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/lexi-lab/lexiscan/pkg/domain/model"
	"github.com/lexi-lab/lexiscan/pkg/usecase"
	"github.com/lexi-lab/lexiscan/pkg/utils/logging"
)

// DefaultMaxUploadSize is the request body ceiling for /api/analyze
const DefaultMaxUploadSize = 10 << 20 // 10 MiB

// UseCase is the part of the use case layer the HTTP surface depends on
type UseCase interface {
	Analyze(ctx context.Context, input usecase.AnalyzeInput) (*usecase.AnalyzeOutput, error)
	Chat(ctx context.Context, history model.ChatHistory, language string) (string, error)
}

type Server struct {
	router        *chi.Mux
	uc            UseCase
	maxUploadSize int64
	health        healthStatus
}

type healthStatus struct {
	GeminiConfigured bool
	GCPConfigured    bool
}

type Options func(*Server)

// WithMaxUploadSize overrides the request body ceiling for uploads
func WithMaxUploadSize(size int64) Options {
	return func(s *Server) {
		s.maxUploadSize = size
	}
}

// WithHealthStatus sets the configuration flags reported by /health
func WithHealthStatus(geminiConfigured, gcpConfigured bool) Options {
	return func(s *Server) {
		s.health = healthStatus{
			GeminiConfigured: geminiConfigured,
			GCPConfigured:    gcpConfigured,
		}
	}
}

func New(uc UseCase, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router:        r,
		uc:            uc,
		maxUploadSize: DefaultMaxUploadSize,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/analyze", s.handleAnalyze)
		r.Post("/chat", s.handleChat)
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

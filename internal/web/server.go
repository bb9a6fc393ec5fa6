// Package web serves a browser front end for practice sessions. It drives
// the same session machinery as the TUI, one active round at a time.
package web

import (
	"html/template"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"mathventure/internal/puzzlegen"
	"mathventure/internal/quiz"
	"mathventure/internal/session"
	"mathventure/internal/store"
)

// activeRound is the in-flight session plus the per-puzzle clock.
type activeRound struct {
	sess          *session.Session
	questionStart time.Time
	lastOutcome   *session.Outcome
}

// finishedRound is the last completed session, kept for the results page.
type finishedRound struct {
	player      string
	level       quiz.Difficulty
	summary     quiz.SessionSummary
	transitions []quiz.Transition
}

// Server hosts the web front end. The session machinery is single-threaded,
// so one round is active at a time and all round access goes through mu.
type Server struct {
	log  *zap.Logger
	repo store.EventRepo
	gen  *puzzlegen.Generator
	tmpl *template.Template

	mu       sync.Mutex
	round    *activeRound
	finished *finishedRound
}

// New creates a Server. repo may be nil; sessions then go unrecorded and
// the history page shows nothing.
func New(log *zap.Logger, repo store.EventRepo, gen *puzzlegen.Generator) (*Server, error) {
	tmpl, err := loadTemplates()
	if err != nil {
		return nil, err
	}
	return &Server{
		log:  log,
		repo: repo,
		gen:  gen,
		tmpl: tmpl,
	}, nil
}

// Handler builds the route tree.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.logging)
	r.Use(s.recovery)

	r.Get("/", s.handleHome)
	r.Post("/session", s.handleStartSession)
	r.Get("/play", s.handlePlay)
	r.Post("/answer", s.handleAnswer)
	r.Post("/end", s.handleEndEarly)
	r.Get("/summary", s.handleSummary)
	r.Get("/history", s.handleHistory)

	return r
}

// NewLogger builds a zap logger at the given level.
func NewLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

func (s *Server) logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", wrapped.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func (s *Server) recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.log.Error("panic recovered", zap.Any("panic", rec))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

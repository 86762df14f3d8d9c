// Package server provides the HTTP REST API for the resume evaluation
// service.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Ashi-17-commits/skill-judge-AI/internal/config"
	"github.com/Ashi-17-commits/skill-judge-AI/internal/llm"
	"github.com/Ashi-17-commits/skill-judge-AI/internal/rewrite"
	"github.com/Ashi-17-commits/skill-judge-AI/internal/scoring"
	"github.com/Ashi-17-commits/skill-judge-AI/internal/session"
	"github.com/Ashi-17-commits/skill-judge-AI/internal/signals"
	"github.com/Ashi-17-commits/skill-judge-AI/internal/storage"
)

// Server wires the upload and role-analysis flows behind the REST API.
type Server struct {
	httpServer *http.Server
	evaluator  *scoring.Evaluator
	store      *session.Store
	uploads    *storage.Uploads
	rewriter   *rewrite.Rewriter
	llmClient  llm.Client
}

// New creates a server from the merged configuration. The LLM rewriter is
// enabled only when an API key is configured; the deterministic pipeline
// runs identically either way.
func New(cfg config.Config) (*Server, error) {
	uploads, err := storage.NewUploads(cfg.UploadDir)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare upload storage: %w", err)
	}

	s := &Server{
		evaluator: scoring.NewEvaluator(signals.NewExtractor(signals.DefaultCatalog())),
		store:     session.NewStore(cfg.SessionTTLDuration()),
		uploads:   uploads,
		rewriter:  rewrite.New(nil),
	}

	if cfg.GeminiAPIKey != "" {
		client, err := llm.NewGeminiClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			// Rewrite is cosmetic only; run without it rather than fail startup.
			log.Printf("LLM rewrite disabled: %v", err)
		} else {
			s.llmClient = client
			s.rewriter = rewrite.New(client)
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/resume/upload", s.handleUploadResume)
	mux.HandleFunc("POST /api/role/analyze", s.handleAnalyzeRole)
	mux.HandleFunc("GET /api/roles", s.handleListRoles)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.llmClient != nil {
		if err := s.llmClient.Close(); err != nil {
			log.Printf("Error closing LLM client: %v", err)
		}
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response with the given status.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

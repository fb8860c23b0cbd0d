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

	"github.com/google/uuid"

	"github.com/progracyd/capstone-matcher/internal/config"
	"github.com/progracyd/capstone-matcher/internal/db"
	"github.com/progracyd/capstone-matcher/internal/lexicon"
	"github.com/progracyd/capstone-matcher/internal/recommend"
	"github.com/progracyd/capstone-matcher/internal/server/middleware"
	"github.com/progracyd/capstone-matcher/internal/types"
)

// Store is the persistence surface the recommendation handlers need;
// *db.DB satisfies it.
type Store interface {
	ListGroupMembers(ctx context.Context) ([]types.Member, error)
	ListProjects(ctx context.Context) ([]types.Project, error)
	GroupIDForUser(ctx context.Context, userID uuid.UUID) (int64, bool, error)
	ReplaceGroupRecommendations(ctx context.Context, groupID int64, recs []types.Recommendation) error
	GetGroupRecommendations(ctx context.Context, groupID int64) ([]types.Recommendation, error)
}

// Server is the matcher HTTP server.
type Server struct {
	httpServer  *http.Server
	database    *db.DB
	store       Store
	engine      *recommend.Engine
	jwtService  *JWTService
	userService *UserService
}

// New creates a server: connects the database, builds the engine from the
// config weights and wires the routes.
func New(cfg *config.Config) (*Server, error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("database URL is required")
	}
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}

	engine := recommend.New(lexicon.Default(), cfg.Weights())

	s := newServer(database, engine, NewJWTService(jwtConfig), NewUserService(database, passwordConfig))
	s.database = database
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	return s, nil
}

// newServer wires the handler dependencies; tests use it directly with a
// fake store.
func newServer(store Store, engine *recommend.Engine, jwtService *JWTService, userService *UserService) *Server {
	return &Server{
		store:       store,
		engine:      engine,
		jwtService:  jwtService,
		userService: userService,
	}
}

// routes builds the route table.
func (s *Server) routes() http.Handler {
	auth := middleware.Auth(s.jwtService.AsTokenValidator())
	student := middleware.RequireRole(types.RoleStudent)
	staff := middleware.RequireRole(types.RoleStaff)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /api/auth/register", s.handleRegister)
	mux.HandleFunc("POST /api/auth/login", s.handleLogin)

	mux.Handle("GET /api/student/recommend",
		auth(student(http.HandlerFunc(s.handleStudentRecommend))))
	mux.Handle("POST /api/admin/recommendations/refresh",
		auth(staff(http.HandlerFunc(s.handleRefreshRecommendations))))
	mux.Handle("GET /api/groups/{id}/recommendations",
		auth(http.HandlerFunc(s.handleGroupRecommendations)))

	return s.withCORS(mux)
}

// Start runs the server until SIGINT/SIGTERM, then shuts down gracefully.
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

	if s.database != nil {
		s.database.Close()
	}
	log.Println("Server stopped")
	return nil
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// withCORS adds CORS headers for the frontend.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// jsonResponse writes a JSON response.
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

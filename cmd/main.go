package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pitchside/internal/common"
	"pitchside/internal/wire"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Initialize application with dependency injection
	log.Println("Initializing application...")
	app, err := wire.InitializeApplication()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	// Setup HTTP router
	router := setupRouter(app)

	// Create HTTP server
	server := &http.Server{
		Addr:           fmt.Sprintf("%s:%s", app.Config.Server.Host, app.Config.Server.Port),
		Handler:        router,
		ReadTimeout:    time.Duration(app.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(app.Config.Server.WriteTimeout) * time.Second,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown HTTP server first so no new events are produced
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	// Then drain the fan-out hub
	if app.Hub != nil {
		app.Hub.Shutdown()
	}

	log.Println("Server gracefully stopped")
}

// setupRouter configures HTTP routes
func setupRouter(app *wire.Application) *mux.Router {
	router := mux.NewRouter()

	// Add CORS middleware
	router.Use(corsMiddleware)
	router.Use(loggingMiddleware)

	// Health check stays outside auth
	router.HandleFunc("/api/v1/health", healthCheckHandler).Methods("GET")

	// API v1 routes
	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(common.AuthMiddleware)

	// Conversation routes
	api.HandleFunc("/messages/direct", app.ChatHandler.SendDirect).Methods("POST")
	api.HandleFunc("/messages/group", app.ChatHandler.SendGroup).Methods("POST")
	api.HandleFunc("/conversations/{peerID}/messages", app.ChatHandler.ListDirect).Methods("GET")
	api.HandleFunc("/groups/{groupID}/messages", app.ChatHandler.ListGroup).Methods("GET")
	api.HandleFunc("/messages/direct/{messageID}", app.ChatHandler.DeleteDirect).Methods("DELETE")
	api.HandleFunc("/messages/group/{messageID}", app.ChatHandler.DeleteGroup).Methods("DELETE")

	// Fan-out subscription
	api.HandleFunc("/events", app.StreamHandler.Subscribe).Methods("GET")

	// Group challenge routes
	api.HandleFunc("/groups/{groupID}/challenges", app.ChallengeHandler.Assign).Methods("POST")
	api.HandleFunc("/challenges/assignments/{assignmentID}/submissions", app.ChallengeHandler.Submit).Methods("POST")
	api.HandleFunc("/challenges/assignments/{assignmentID}", app.ChallengeHandler.Progress).Methods("GET")

	// Score ledger routes
	api.HandleFunc("/athletes/{athleteID}/score", app.ScoreHandler.Read).Methods("GET")
	api.HandleFunc("/leaderboard", app.ScoreHandler.Leaderboard).Methods("GET")

	return router
}

// corsMiddleware adds CORS headers
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-User-ID")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// healthCheckHandler provides basic health check
func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy","service":"pitchside-core"}`))
}

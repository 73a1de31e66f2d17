// Package server exposes the task and comment REST API.
package server

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"taskdeck/internal/db"
)

type Server struct {
	db  *db.DB
	log *log.Logger
}

// New builds the API handler with all routes and middleware attached.
func New(database *db.DB, logger *log.Logger) http.Handler {
	s := &Server{db: database, log: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealthz)

	mux.HandleFunc("GET /tasks", s.handleListTasks)
	mux.HandleFunc("POST /tasks", s.handleCreateTask)
	mux.HandleFunc("GET /tasks/{id}", s.handleGetTask)
	mux.HandleFunc("PUT /tasks/{id}", s.handleUpdateTask)
	mux.HandleFunc("DELETE /tasks/{id}", s.handleDeleteTask)

	mux.HandleFunc("GET /comments", s.handleListComments)
	mux.HandleFunc("POST /comments", s.handleCreateComment)
	mux.HandleFunc("GET /comments/task/{taskID}", s.handleListTaskComments)
	mux.HandleFunc("GET /comments/{id}", s.handleGetComment)
	mux.HandleFunc("PUT /comments/{id}", s.handleUpdateComment)
	mux.HandleFunc("DELETE /comments/{id}", s.handleDeleteComment)

	return chain(mux, s.withLogging, withCORS)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, http.StatusOK, "ok")
}

// chain applies middlewares in order.
func chain(h http.Handler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}

// withLogging logs every request.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Info("request", "method", r.Method, "path", r.URL.Path, "dur", time.Since(start))
	})
}

// withCORS adds permissive CORS headers so a browser frontend can call the API.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

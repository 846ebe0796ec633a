package server

import (
	"net/http"

	"voidslab-service/config"
	"voidslab-service/handlers"
	"voidslab-service/mailer"
	"voidslab-service/middleware"

	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
)

// NewRouter wires all routes. Protected routes pass through the auth guard,
// which resolves the bearer token to a user before the handler runs. Any
// path outside /api and /health falls through to the static frontend.
func NewRouter(db *sqlx.DB, cfg config.Config, m mailer.Mailer) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy", "service": "voidslab-backend"}`))
	}).Methods("GET")

	userHandler := handlers.NewUserHandler(db, []byte(cfg.JWTSecret), cfg.AdminCode, m, cfg.BaseURL)
	challengeHandler := handlers.NewChallengeHandler(db)

	router.HandleFunc("/api/register", userHandler.Register).Methods("POST")
	router.HandleFunc("/api/verify-email", userHandler.VerifyEmail).Methods("POST")
	router.HandleFunc("/api/login", userHandler.Login).Methods("POST")

	requireUser := middleware.RequireUser(db, []byte(cfg.JWTSecret))
	router.Handle("/api/me", requireUser(http.HandlerFunc(userHandler.Me))).Methods("GET")
	router.Handle("/api/challenges", requireUser(http.HandlerFunc(challengeHandler.List))).Methods("GET")
	router.Handle("/api/challenges", requireUser(http.HandlerFunc(challengeHandler.Create))).Methods("POST")

	// Everything else serves the frontend, falling back to the entry page
	router.PathPrefix("/").Handler(NewSPAHandler(cfg.StaticDir))

	return router
}

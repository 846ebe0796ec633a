package server

import (
	"net/http"
	"os"

	"voidslab-service/config"
	"voidslab-service/database"
	"voidslab-service/mailer"

	"github.com/rs/cors"
	"github.com/umakantv/go-utils/logger"
	"go.uber.org/zap"
)

func StartServer() {
	// Initialize logger
	logger.Init(logger.LoggerConfig{
		CallerKey:  "file",
		TimeKey:    "timestamp",
		CallerSkip: 1,
	})

	logger.Info("Starting Void's Laboratory backend...")

	cfg := config.Load()

	// Initialize database
	dbConn := database.InitializeDatabase(cfg.DatabasePath)
	defer dbConn.Close()

	// Mail collaborator for verification emails
	smtpMailer := mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.MailFrom)

	router := NewRouter(dbConn, cfg, smtpMailer)

	// CORS for the browser frontend
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.CORSOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})
	handler := c.Handler(router)

	logger.Info("Server listening", zap.String("port", cfg.Port))
	logger.Info("Health check: GET /health")
	logger.Info("API endpoints: /api/register /api/verify-email /api/login /api/me /api/challenges")

	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		logger.Error("Server failed to start", zap.Error(err))
		os.Exit(1)
	}
}

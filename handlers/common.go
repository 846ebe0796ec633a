package handlers

import (
	"net/http"
	"time"

	logger "github.com/umakantv/go-utils/logger"
	"go.uber.org/zap"
)

// logRequest logs a request with a consistent format. Shared package-level
// helper so user and challenge handlers log identically.
func logRequest(r *http.Request, level string, message string, fields ...zap.Field) {
	logMsg := time.Now().Format("2006-01-02 15:04:05") + " - " + r.Method + " - " + r.URL.Path
	if message != "" {
		logMsg += " - " + message
	}

	allFields := append([]zap.Field{
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	}, fields...)

	switch level {
	case "info":
		logger.Info(logMsg, allFields...)
	case "error":
		logger.Error(logMsg, allFields...)
	case "debug":
		logger.Debug(logMsg, allFields...)
	}
}

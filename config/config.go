package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config carries all environment-driven settings. It is loaded once in
// main and passed explicitly to the components that need it; nothing
// reads the environment after startup.
type Config struct {
	Port         string
	DatabasePath string
	JWTSecret    string
	AdminCode    string
	BaseURL      string
	StaticDir    string
	CORSOrigin   string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	MailFrom     string
}

// Load reads .env (if present) and the environment with defaults
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		panic("Error loading .env file")
	}

	return Config{
		Port:         getEnv("PORT", "5000"),
		DatabasePath: getEnv("DATABASE_PATH", "./voidslab.db"),
		JWTSecret:    getEnv("JWT_SECRET", "dev-secret-change-me"),
		AdminCode:    getEnv("ADMIN_CODE", ""),
		BaseURL:      getEnv("BASE_URL", "http://localhost:5000"),
		StaticDir:    getEnv("STATIC_DIR", "./frontend"),
		CORSOrigin:   getEnv("CORS_ORIGIN", "*"),
		SMTPHost:     getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:     getEnvInt("SMTP_PORT", 587),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		MailFrom:     getEnv("MAIL_FROM", "Void's Laboratory <onboarding@voidslab.dev>"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"voidslab-service/auth"
	"voidslab-service/mailer"
	"voidslab-service/middleware"
	"voidslab-service/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"
	"github.com/umakantv/go-utils/errs"
	"github.com/umakantv/go-utils/logger"
	"go.uber.org/zap"
)

// UserHandler handles registration, verification, login and profile reads
type UserHandler struct {
	db        *sqlx.DB
	jwtSecret []byte
	adminCode string
	mailer    mailer.Mailer
	baseURL   string
}

// NewUserHandler creates a new user handler
func NewUserHandler(db *sqlx.DB, jwtSecret []byte, adminCode string, m mailer.Mailer, baseURL string) *UserHandler {
	return &UserHandler{
		db:        db,
		jwtSecret: jwtSecret,
		adminCode: adminCode,
		mailer:    m,
		baseURL:   baseURL,
	}
}

// Register handles POST /api/register - create an unverified user
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logRequest(r, "error", "Invalid request body", zap.Error(err))
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(errs.NewValidationError("Invalid JSON"))
		return
	}

	if req.Email == "" || req.Password == "" || req.FullName == "" || req.Category == "" {
		logRequest(r, "error", "Missing required fields", zap.String("email", req.Email))
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(errs.NewValidationError("Email, password, fullName, and category are required"))
		return
	}

	logRequest(r, "info", "Registering user", zap.String("email", req.Email))

	// Check if user exists
	var existingID int
	err := h.db.QueryRow("SELECT id FROM users WHERE email = ?", req.Email).Scan(&existingID)
	if err == nil {
		logRequest(r, "info", "User already exists", zap.String("email", req.Email))
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(errs.NewValidationError("User already exists"))
		return
	}
	if err != sql.ErrNoRows {
		logRequest(r, "error", "Failed to query user", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(errs.NewInternalServerError("Server error"))
		return
	}

	// Hashing failure is fatal to registration
	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		logRequest(r, "error", "Password hashing failed", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(errs.NewInternalServerError("Failed to process password"))
		return
	}

	// Admin elevation is decided exactly once, here. An empty configured
	// code never grants admin.
	isAdmin := h.adminCode != "" && req.AdminCode == h.adminCode
	verificationToken := uuid.New().String()

	now := time.Now()
	_, err = h.db.Exec(`INSERT INTO users
		(email, password, full_name, class_level, school, location, category, is_admin, is_verified, verification_token, points, rank, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, 0, ?, 0, 'TRAINEE', ?, ?)`,
		req.Email, hashedPassword, req.FullName, req.ClassLevel, req.School, req.Location,
		req.Category, isAdmin, verificationToken, now, now)
	if err != nil {
		// A concurrent registration for the same email loses here on the
		// unique index; report it the same as the pre-check.
		if sqliteErr, ok := err.(sqlite3.Error); ok && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			logRequest(r, "info", "User already exists", zap.String("email", req.Email))
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(errs.NewValidationError("User already exists"))
			return
		}
		logRequest(r, "error", "Failed to create user", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(errs.NewInternalServerError("Failed to create user"))
		return
	}

	// Best-effort verification email; a delivery failure never fails the
	// registration response.
	go func(to, token string) {
		subject, body := mailer.VerificationEmail(h.baseURL, token)
		if err := h.mailer.Send(to, subject, body); err != nil {
			logger.Error("Failed to send verification email", zap.Error(err), zap.String("email", to))
		}
	}(req.Email, verificationToken)

	logRequest(r, "info", "User registered", zap.String("email", req.Email))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"message": "User registered. Check email for verification."})
}

// VerifyEmail handles POST /api/verify-email - consume a one-time token
func (h *UserHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	var req models.VerifyEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logRequest(r, "error", "Invalid request body", zap.Error(err))
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(errs.NewValidationError("Invalid JSON"))
		return
	}

	// Consumed tokens are stored as the empty string; never match on it
	if req.Token == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(errs.NewValidationError("Invalid token"))
		return
	}

	result, err := h.db.Exec(
		"UPDATE users SET is_verified = 1, verification_token = '', updated_at = ? WHERE verification_token = ?",
		time.Now(), req.Token)
	if err != nil {
		logRequest(r, "error", "Failed to verify email", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(errs.NewInternalServerError("Server error"))
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		logRequest(r, "info", "Verification token not found")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(errs.NewValidationError("Invalid token"))
		return
	}

	logRequest(r, "info", "Email verified")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Email verified successfully"})
}

// Login handles POST /api/login - check credentials and issue a bearer token
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logRequest(r, "error", "Invalid request body", zap.Error(err))
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(errs.NewValidationError("Invalid JSON"))
		return
	}

	var user models.User
	err := h.db.Get(&user, "SELECT * FROM users WHERE email = ?", req.Email)
	if err == sql.ErrNoRows {
		// Same response as a bad password; do not reveal whether the
		// email exists.
		logRequest(r, "info", "Login failed: user not found", zap.String("email", req.Email))
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(errs.NewValidationError("Invalid credentials"))
		return
	}
	if err != nil {
		logRequest(r, "error", "Failed to query user", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(errs.NewInternalServerError("Server error"))
		return
	}

	if !auth.CheckPassword(req.Password, user.Password) {
		logRequest(r, "info", "Login failed: invalid password", zap.String("email", req.Email))
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(errs.NewValidationError("Invalid credentials"))
		return
	}

	if !user.IsVerified {
		logRequest(r, "info", "Login rejected: unverified account", zap.String("email", req.Email))
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(errs.NewValidationError("Please verify your email first"))
		return
	}

	token, err := auth.GenerateToken(user.ID, h.jwtSecret, auth.TokenTTL)
	if err != nil {
		logRequest(r, "error", "Failed to issue token", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(errs.NewInternalServerError("Server error"))
		return
	}

	logRequest(r, "info", "Login successful", zap.Int("user_id", user.ID))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.LoginResponse{
		Token: token,
		User:  user.Profile(),
	})
}

// Me handles GET /api/me - return the authenticated user's record
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(errs.NewValidationError("Please authenticate"))
		return
	}

	logRequest(r, "info", "Profile retrieved", zap.Int("user_id", user.ID))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}

package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"voidslab-service/middleware"
	"voidslab-service/models"

	"github.com/jmoiron/sqlx"
	"github.com/umakantv/go-utils/errs"
	"go.uber.org/zap"
)

// ChallengeHandler handles category-scoped challenge listing and creation
type ChallengeHandler struct {
	db *sqlx.DB
}

// NewChallengeHandler creates a new challenge handler
func NewChallengeHandler(db *sqlx.DB) *ChallengeHandler {
	return &ChallengeHandler{db: db}
}

// List handles GET /api/challenges - challenges in the caller's category only
func (h *ChallengeHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(errs.NewValidationError("Please authenticate"))
		return
	}

	logRequest(r, "info", "Listing challenges", zap.String("category", user.Category))

	challenges := []models.Challenge{}
	err := h.db.Select(&challenges, "SELECT * FROM challenges WHERE category = ?", user.Category)
	if err != nil {
		logRequest(r, "error", "Failed to query challenges", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(errs.NewInternalServerError("Server error"))
		return
	}

	logRequest(r, "info", "Challenges retrieved", zap.Int("count", len(challenges)))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(challenges)
}

// Create handles POST /api/challenges - admin only. The payload is persisted
// as-is; there is no cross-field validation of type vs options shape.
func (h *ChallengeHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(errs.NewValidationError("Please authenticate"))
		return
	}

	if !user.IsAdmin {
		logRequest(r, "info", "Challenge create rejected: not admin", zap.Int("user_id", user.ID))
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(errs.NewValidationError("Admin access required"))
		return
	}

	var challenge models.Challenge
	if err := json.NewDecoder(r.Body).Decode(&challenge); err != nil {
		logRequest(r, "error", "Invalid request body", zap.Error(err))
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(errs.NewValidationError("Invalid JSON"))
		return
	}

	challenge.CreatedAt = time.Now()
	result, err := h.db.Exec(
		"INSERT INTO challenges (title, description, category, type, points, correct_answer, options, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		challenge.Title, challenge.Description, challenge.Category, challenge.Type,
		challenge.Points, challenge.CorrectAnswer, challenge.Options, challenge.CreatedAt)
	if err != nil {
		logRequest(r, "error", "Failed to create challenge", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(errs.NewInternalServerError("Failed to create challenge"))
		return
	}

	id, _ := result.LastInsertId()
	challenge.ID = int(id)

	logRequest(r, "info", "Challenge created", zap.Int("challenge_id", challenge.ID), zap.String("category", challenge.Category))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(challenge)
}

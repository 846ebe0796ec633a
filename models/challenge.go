package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// ChallengeOption is one multiple-choice answer
type ChallengeOption struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
}

// ChallengeOptions is stored as a JSON text column in sqlite
type ChallengeOptions []ChallengeOption

// Value implements driver.Valuer for sqlx binding
func (o ChallengeOptions) Value() (driver.Value, error) {
	if o == nil {
		return "[]", nil
	}
	b, err := json.Marshal(o)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for sqlx row scanning
func (o *ChallengeOptions) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*o = nil
		return nil
	case []byte:
		return json.Unmarshal(v, o)
	case string:
		return json.Unmarshal([]byte(v), o)
	default:
		return fmt.Errorf("cannot scan %T into ChallengeOptions", src)
	}
}

// Challenge represents a scored task visible only to users of its category.
// Type is a free-form tag ("quiz", "multiple-choice"); CorrectAnswer is used
// for free-form grading and Options for multiple-choice. The payload is
// persisted as-is, without cross-field validation.
type Challenge struct {
	ID            int              `json:"id" db:"id"`
	Title         string           `json:"title" db:"title"`
	Description   string           `json:"description" db:"description"`
	Category      string           `json:"category" db:"category"`
	Type          string           `json:"type" db:"type"`
	Points        int              `json:"points" db:"points"`
	CorrectAnswer string           `json:"correctAnswer,omitempty" db:"correct_answer"`
	Options       ChallengeOptions `json:"options" db:"options"`
	CreatedAt     time.Time        `json:"createdAt" db:"created_at"`
}

package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the cost used for existing stored hashes
const bcryptCost = 12

// HashPassword produces a salted bcrypt digest of the plaintext.
// Callers hash exactly once, at the point the password is set; stored
// hashes are never re-hashed on unrelated updates.
func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether plain matches the stored hash.
// A mismatch is a normal false, never an error.
func CheckPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

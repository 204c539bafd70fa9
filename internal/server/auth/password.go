package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a one-way digest of password using bcrypt with the
// given work factor. bcrypt embeds a random salt, so hashing the same
// password twice produces different digests.
func HashPassword(password string, cost int) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), cost)
}

// CheckPassword reports whether candidate matches the stored digest.
// A mismatch is not an error condition; the boolean is the only signal.
func CheckPassword(digest []byte, candidate string) bool {
	return bcrypt.CompareHashAndPassword(digest, []byte(candidate)) == nil
}

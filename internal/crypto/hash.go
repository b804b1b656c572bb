package crypto

import "golang.org/x/crypto/bcrypt"

// DefaultCost is the bcrypt work factor used when no cost is configured.
const DefaultCost = 8

// HashPassword hashes a password with bcrypt at the given work factor.
// Out-of-range costs fall back to DefaultCost.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether a plaintext password matches a bcrypt hash.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

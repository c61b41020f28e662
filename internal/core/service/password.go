package service

import "golang.org/x/crypto/bcrypt"

// bcrypt ignores everything past 72 bytes; older stacks truncated silently
// instead of erroring, and stored hashes depend on that behaviour.
const bcryptMaxLen = 72

// PasswordHasher wraps bcrypt with the legacy truncation contract.
type PasswordHasher struct {
	cost int
}

func NewPasswordHasher(cost int) PasswordHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return PasswordHasher{cost: cost}
}

// Hash returns a salted bcrypt hash of password. Input longer than 72 bytes
// is truncated, not rejected. Two calls on the same password yield different
// hashes (random salt).
func (h PasswordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(truncate(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether password matches hashed. A malformed or corrupted
// stored hash fails closed: the result is false, never a panic.
func (h PasswordHasher) Verify(password, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), truncate(password)) == nil
}

func truncate(password string) []byte {
	b := []byte(password)
	if len(b) > bcryptMaxLen {
		b = b[:bcryptMaxLen]
	}
	return b
}

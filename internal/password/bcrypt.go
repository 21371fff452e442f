package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/todokeeper/todokeeper-server/internal/model"
)

// Bcrypt implements PasswordHasher with the adaptive bcrypt KDF.
type Bcrypt struct {
	cost int
}

// NewBcrypt creates a bcrypt hasher. A cost outside bcrypt's supported
// range falls back to the library default.
func NewBcrypt(cost int) model.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{cost: cost}
}

// Hash produces a salted bcrypt hash of the plaintext.
func (b *Bcrypt) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches the stored hash. Comparison
// goes through bcrypt's own routine, never string equality.
func (b *Bcrypt) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

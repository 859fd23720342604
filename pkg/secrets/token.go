package secrets

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

// NewToken generates an opaque random token wrapped in a Secret.
func NewToken() Secret {
	return New(uuid.NewString())
}

// TokenHex generates a random token of n bytes, hex encoded, wrapped in a
// Secret. n defaults to 32 when zero or negative.
func TokenHex(n int) (Secret, error) {
	if n <= 0 {
		n = 32
	}
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return Secret{}, fmt.Errorf("generating token: %w", err)
	}
	return New(hex.EncodeToString(buf)), nil
}

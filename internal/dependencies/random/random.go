package random

import (
	"crypto/rand"
	"math/big"
)

// IDAlphabet is the character set used for generated identifiers
const IDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Random generates identifiers and can be mocked for testing
type Random interface {
	// ID returns a random identifier of the given length drawn from IDAlphabet
	ID(length int) string
}

// CryptoRandom implements Random using crypto/rand
type CryptoRandom struct{}

// New creates a new CryptoRandom
func New() *CryptoRandom {
	return &CryptoRandom{}
}

// ID returns a random identifier of the given length
func (r *CryptoRandom) ID(length int) string {
	if length <= 0 {
		return ""
	}
	limit := big.NewInt(int64(len(IDAlphabet)))
	result := make([]byte, length)
	for i := range result {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			// crypto/rand does not fail on supported platforms
			n = big.NewInt(0)
		}
		result[i] = IDAlphabet[n.Int64()]
	}
	return string(result)
}

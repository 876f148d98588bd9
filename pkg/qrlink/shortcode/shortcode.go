package shortcode

import (
	"crypto/rand"
	"math/big"
)

// Alphabet is the 56-symbol set short codes are drawn from. Visually
// ambiguous characters (0/O/o, 1/l/I) are excluded.
const Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnpqrstuvwxyz23456789"

// Length is the number of characters in a generated short code.
const Length = 7

// Generate returns a random short code: Length independent samples from
// Alphabet. The keyspace (56^7) makes collisions rare but not impossible;
// the caller handles collisions via the store's unique constraint.
func Generate() (string, error) {
	max := big.NewInt(int64(len(Alphabet)))
	b := make([]byte, Length)
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = Alphabet[n.Int64()]
	}
	return string(b), nil
}

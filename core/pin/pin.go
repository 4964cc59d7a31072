package pin

import (
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"regexp"

	"golang.org/x/crypto/blake2b"
)

// Config holds the PIN hashing secret.
type Config struct {
	// Secret keys the hash; changing it invalidates PINs of active checkouts.
	Secret string `mapstructure:"secret" default:"change-me"`
}

var pattern = regexp.MustCompile(`^\d{4}$`)

// ErrInvalid is returned for anything other than exactly four digits.
var ErrInvalid = errors.New("PIN must be exactly 4 digits")

// Valid reports whether p is a 4-digit PIN.
func Valid(p string) bool {
	return pattern.MatchString(p)
}

// Hasher produces keyed BLAKE2b-256 digests of PINs.
type Hasher struct {
	key []byte
}

// NewHasher builds a Hasher. blake2b accepts keys up to 64 bytes, longer
// secrets are folded through an unkeyed digest first.
func NewHasher(secret string) *Hasher {
	key := []byte(secret)
	if len(key) > blake2b.Size {
		sum := blake2b.Sum512(key)
		key = sum[:]
	}
	return &Hasher{key: key}
}

// Hash returns the hex digest for a PIN whose format has been validated.
func (h *Hasher) Hash(p string) (string, error) {
	if !Valid(p) {
		return "", ErrInvalid
	}
	mac, err := blake2b.New256(h.key)
	if err != nil {
		return "", err
	}
	mac.Write([]byte(p))
	return hex.EncodeToString(mac.Sum(nil)), nil
}

// Matches compares p against a stored digest in constant time.
func (h *Hasher) Matches(p, digest string) bool {
	got, err := h.Hash(p)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(digest)) == 1
}

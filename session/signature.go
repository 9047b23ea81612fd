package session

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"
)

const (
	// SecretPrefix marks a session signing secret
	SecretPrefix = "sess_"

	// MinSecretBytes is the minimum secret size (192 bits)
	MinSecretBytes = 24

	// MaxSecretBytes is the maximum secret size (512 bits)
	MaxSecretBytes = 64
)

// Secret signs session cookies
type Secret struct {
	raw    []byte
	base64 string
}

// GenerateSecret creates a new random secret between MinSecretBytes and MaxSecretBytes
func GenerateSecret(size int) (Secret, error) {
	if size < MinSecretBytes || size > MaxSecretBytes {
		return Secret{}, fmt.Errorf("secret size must be between %d and %d bytes", MinSecretBytes, MaxSecretBytes)
	}

	bytes := make([]byte, size)
	if _, err := rand.Read(bytes); err != nil {
		return Secret{}, fmt.Errorf("generating random bytes: %w", err)
	}

	return Secret{
		raw:    bytes,
		base64: SecretPrefix + base64.StdEncoding.EncodeToString(bytes),
	}, nil
}

// ParseSecret parses a base64-encoded secret with the sess_ prefix
func ParseSecret(encoded string) (Secret, error) {
	if !strings.HasPrefix(encoded, SecretPrefix) {
		return Secret{}, fmt.Errorf("secret must start with %s prefix", SecretPrefix)
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(encoded, SecretPrefix))
	if err != nil {
		return Secret{}, fmt.Errorf("decoding base64 secret: %w", err)
	}

	if len(raw) < MinSecretBytes || len(raw) > MaxSecretBytes {
		return Secret{}, fmt.Errorf("secret size must be between %d and %d bytes", MinSecretBytes, MaxSecretBytes)
	}

	return Secret{
		raw:    raw,
		base64: encoded,
	}, nil
}

// String returns the base64-encoded secret with prefix
func (s Secret) String() string {
	return s.base64
}

// Bytes returns the raw secret bytes
func (s Secret) Bytes() []byte {
	return s.raw
}

// Sign returns the cookie value for id: {id}.{base64url(hmac)}
func Sign(secret Secret, id string) (string, error) {
	if strings.Contains(id, ".") {
		return "", fmt.Errorf("session ID must not contain '.'")
	}
	return id + "." + base64.RawURLEncoding.EncodeToString(mac(secret, id)), nil
}

// Verify checks a cookie value and returns the session id it carries
func Verify(secret Secret, value string) (string, bool) {
	id, sig, ok := strings.Cut(value, ".")
	if !ok || id == "" {
		return "", false
	}

	expected, err := base64.RawURLEncoding.DecodeString(sig)
	if err != nil {
		return "", false
	}

	// Use constant-time comparison to prevent timing attacks
	if subtle.ConstantTimeCompare(expected, mac(secret, id)) != 1 {
		return "", false
	}
	return id, true
}

func mac(secret Secret, id string) []byte {
	h := hmac.New(sha256.New, secret.Bytes())
	h.Write([]byte(id))
	return h.Sum(nil)
}

package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
)

// NewToken — jeton opaque aléatoire, encodé hex.
func NewToken(nBytes int) (string, error) {
	if nBytes <= 0 {
		nBytes = 32 // 256 bits par défaut
	}
	b := make([]byte, nBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// HashToken — empreinte stockée en base ; la valeur en clair n'est jamais persistée.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

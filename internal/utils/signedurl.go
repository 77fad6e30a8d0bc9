package utils

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Lien de vérification d'email : l'URL porte une signature JWT HS256 (sub = id
// utilisateur, exp, jti). Pas de table de tokens côté base — la signature suffit.

var ErrInvalidSignature = fmt.Errorf("signature invalide ou expirée")

type URLSigner struct {
	Secret  []byte
	BaseURL string        // ex. https://api.haolaplus.com
	TTL     time.Duration // durée de validité du lien
}

func NewURLSigner(secret, baseURL string, ttl time.Duration) *URLSigner {
	if ttl <= 0 {
		ttl = 48 * time.Hour
	}
	return &URLSigner{Secret: []byte(secret), BaseURL: baseURL, TTL: ttl}
}

// EmailVerificationURL — construit /api/v1/email/verify/{id}?signature=...
func (s *URLSigner) EmailVerificationURL(userID int64) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.TTL)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ID:        uuid.New().String(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signature, err := token.SignedString(s.Secret)
	if err != nil {
		return "", fmt.Errorf("sign verification url: %w", err)
	}
	return fmt.Sprintf("%s/api/v1/email/verify/%d?signature=%s",
		s.BaseURL, userID, url.QueryEscape(signature)), nil
}

// VerifySignature — valide la signature et vérifie qu'elle correspond bien à userID.
func (s *URLSigner) VerifySignature(userID int64, signature string) error {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(signature, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.Secret, nil
	})
	if err != nil || !token.Valid {
		return ErrInvalidSignature
	}
	if claims.Subject != strconv.FormatInt(userID, 10) {
		return ErrInvalidSignature
	}
	return nil
}

package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"haolaplus/internal/models"
	"haolaplus/internal/utils"
)

func TestIssueEtAuthenticate_AllerRetour(t *testing.T) {
	store := map[string]*models.AccessToken{}
	repo := &mockTokenRepo{
		CreateFn: func(tok *models.AccessToken) error {
			store[tok.TokenHash] = tok
			return nil
		},
		GetByHashFn: func(hash string) (*models.AccessToken, error) {
			return store[hash], nil
		},
	}
	svc := NewTokenService(repo)

	plain, err := svc.Issue(5, "MyApp")
	require.NoError(t, err)
	assert.Len(t, plain, 64) // 32 octets en hexadécimal
	assert.NotContains(t, store, plain, "la valeur en clair ne doit jamais être stockée")

	tok, err := svc.Authenticate(plain)
	require.NoError(t, err)
	require.NotNil(t, tok)
	assert.Equal(t, int64(5), tok.UserID)
	assert.Equal(t, utils.HashToken(plain), tok.TokenHash)
}

func TestAuthenticate_JetonVide(t *testing.T) {
	svc := NewTokenService(&mockTokenRepo{})

	tok, err := svc.Authenticate("")
	require.NoError(t, err)
	assert.Nil(t, tok)
}

func TestAuthenticate_JetonInconnu(t *testing.T) {
	repo := &mockTokenRepo{
		GetByHashFn: func(string) (*models.AccessToken, error) { return nil, nil },
	}
	svc := NewTokenService(repo)

	tok, err := svc.Authenticate("deadbeef")
	require.NoError(t, err)
	assert.Nil(t, tok)
}

func TestRevokeAll(t *testing.T) {
	var revokedFor int64
	repo := &mockTokenRepo{
		DeleteByUserFn: func(userID int64) error {
			revokedFor = userID
			return nil
		},
	}

	require.NoError(t, NewTokenService(repo).RevokeAll(9))
	assert.Equal(t, int64(9), revokedFor)
}

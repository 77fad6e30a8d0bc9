package services

import (
	"fmt"
	"log"

	"haolaplus/internal/models"
	"haolaplus/internal/repositories"
	"haolaplus/internal/utils"
)

// Jetons bearer opaques, à la Sanctum : la valeur en clair part au client,
// seule l'empreinte SHA-256 est stockée. La révocation supprime les lignes.

type TokenService interface {
	Issue(userID int64, name string) (string, error)
	Authenticate(plain string) (*models.AccessToken, error)
	RevokeAll(userID int64) error
}

type tokenService struct {
	repo repositories.AccessTokenRepository
}

func NewTokenService(repo repositories.AccessTokenRepository) TokenService {
	return &tokenService{repo: repo}
}

func (s *tokenService) Issue(userID int64, name string) (string, error) {
	plain, err := utils.NewToken(32)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	t := &models.AccessToken{
		UserID:    userID,
		TokenHash: utils.HashToken(plain),
		Name:      name,
	}
	if err := s.repo.Create(t); err != nil {
		return "", err
	}
	log.Printf("[token][issue] user_id=%d name=%s", userID, name)
	return plain, nil
}

func (s *tokenService) Authenticate(plain string) (*models.AccessToken, error) {
	if plain == "" {
		return nil, nil
	}
	return s.repo.GetByHash(utils.HashToken(plain))
}

func (s *tokenService) RevokeAll(userID int64) error {
	if err := s.repo.DeleteByUser(userID); err != nil {
		return err
	}
	log.Printf("[token][revoke-all] user_id=%d", userID)
	return nil
}

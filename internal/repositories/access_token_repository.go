package repositories

import (
	"database/sql"
	"fmt"

	"haolaplus/internal/models"
)

type AccessTokenRepository interface {
	Create(t *models.AccessToken) error
	GetByHash(tokenHash string) (*models.AccessToken, error)
	DeleteByUser(userID int64) error
}

type accessTokenRepository struct {
	db *sql.DB
}

func NewAccessTokenRepository(db *sql.DB) AccessTokenRepository {
	return &accessTokenRepository{db: db}
}

func (r *accessTokenRepository) Create(t *models.AccessToken) error {
	const q = `
		INSERT INTO access_tokens (user_id, token_hash, name, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, created_at
	`
	if err := r.db.QueryRow(q, t.UserID, t.TokenHash, t.Name).Scan(&t.ID, &t.CreatedAt); err != nil {
		return fmt.Errorf("create access token: %w", err)
	}
	return nil
}

func (r *accessTokenRepository) GetByHash(tokenHash string) (*models.AccessToken, error) {
	const q = `
		SELECT id, user_id, token_hash, name, created_at
		FROM access_tokens
		WHERE token_hash = $1
	`
	var t models.AccessToken
	if err := r.db.QueryRow(q, tokenHash).Scan(&t.ID, &t.UserID, &t.TokenHash, &t.Name, &t.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get access token: %w", err)
	}
	return &t, nil
}

// DeleteByUser — révocation totale (logout / suppression de compte).
func (r *accessTokenRepository) DeleteByUser(userID int64) error {
	if _, err := r.db.Exec(`DELETE FROM access_tokens WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete access tokens: %w", err)
	}
	return nil
}

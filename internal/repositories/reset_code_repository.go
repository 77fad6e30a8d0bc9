package repositories

import (
	"database/sql"
	"fmt"

	"haolaplus/internal/models"
)

type ResetCodeRepository interface {
	// Replace supprime les codes existants de l'email puis insère le nouveau,
	// dans une même transaction : au plus un code actif par email.
	Replace(email, code string) (*models.ResetCodePassword, error)
	GetByCode(code string) (*models.ResetCodePassword, error)
	Delete(id int64) error
}

type resetCodeRepository struct {
	db *sql.DB
}

func NewResetCodeRepository(db *sql.DB) ResetCodeRepository {
	return &resetCodeRepository{db: db}
}

func (r *resetCodeRepository) Replace(email, code string) (*models.ResetCodePassword, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("reset code replace: begin: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM reset_code_passwords WHERE email = $1`, email); err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("reset code replace: delete: %w", err)
	}
	rc := &models.ResetCodePassword{Email: email, Code: code}
	const q = `
		INSERT INTO reset_code_passwords (email, code, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id, created_at
	`
	if err := tx.QueryRow(q, email, code).Scan(&rc.ID, &rc.CreatedAt); err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("reset code replace: insert: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("reset code replace: commit: %w", err)
	}
	return rc, nil
}

func (r *resetCodeRepository) GetByCode(code string) (*models.ResetCodePassword, error) {
	const q = `
		SELECT id, email, code, created_at
		FROM reset_code_passwords
		WHERE code = $1
	`
	var rc models.ResetCodePassword
	if err := r.db.QueryRow(q, code).Scan(&rc.ID, &rc.Email, &rc.Code, &rc.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get reset code: %w", err)
	}
	return &rc, nil
}

func (r *resetCodeRepository) Delete(id int64) error {
	if _, err := r.db.Exec(`DELETE FROM reset_code_passwords WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete reset code: %w", err)
	}
	return nil
}

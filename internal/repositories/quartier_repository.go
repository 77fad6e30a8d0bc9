package repositories

import (
	"database/sql"
	"fmt"

	"haolaplus/internal/models"
)

type QuartierRepository interface {
	ListAll() ([]*models.Quartier, error)
	ListByVille(villeID int64) ([]*models.Quartier, error)
	GetByID(id int64) (*models.Quartier, error)
	Create(q *models.Quartier) error
	Update(q *models.Quartier) error
	SoftDelete(id int64) error
}

type quartierRepository struct {
	db *sql.DB
}

func NewQuartierRepository(db *sql.DB) QuartierRepository {
	return &quartierRepository{db: db}
}

func (r *quartierRepository) ListAll() ([]*models.Quartier, error) {
	const q = `
		SELECT id, name, ville_id, created_at, updated_at
		FROM quartiers
		WHERE deleted_at IS NULL
		ORDER BY name
	`
	rows, err := r.db.Query(q)
	if err != nil {
		return nil, fmt.Errorf("list quartiers: %w", err)
	}
	defer rows.Close()

	var res []*models.Quartier
	for rows.Next() {
		var qt models.Quartier
		if err := rows.Scan(&qt.ID, &qt.Name, &qt.VilleID, &qt.CreatedAt, &qt.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan quartier: %w", err)
		}
		res = append(res, &qt)
	}
	return res, rows.Err()
}

func (r *quartierRepository) ListByVille(villeID int64) ([]*models.Quartier, error) {
	const q = `
		SELECT id, name, ville_id, created_at, updated_at
		FROM quartiers
		WHERE ville_id = $1 AND deleted_at IS NULL
		ORDER BY name
	`
	rows, err := r.db.Query(q, villeID)
	if err != nil {
		return nil, fmt.Errorf("list quartiers by ville: %w", err)
	}
	defer rows.Close()

	var res []*models.Quartier
	for rows.Next() {
		var qt models.Quartier
		if err := rows.Scan(&qt.ID, &qt.Name, &qt.VilleID, &qt.CreatedAt, &qt.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan quartier: %w", err)
		}
		res = append(res, &qt)
	}
	return res, rows.Err()
}

func (r *quartierRepository) GetByID(id int64) (*models.Quartier, error) {
	const q = `
		SELECT id, name, ville_id, created_at, updated_at
		FROM quartiers
		WHERE id = $1 AND deleted_at IS NULL
	`
	var qt models.Quartier
	if err := r.db.QueryRow(q, id).Scan(&qt.ID, &qt.Name, &qt.VilleID, &qt.CreatedAt, &qt.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get quartier: %w", err)
	}
	return &qt, nil
}

func (r *quartierRepository) Create(qt *models.Quartier) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("create quartier: begin: %w", err)
	}
	const q = `
		INSERT INTO quartiers (name, ville_id, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	if err := tx.QueryRow(q, qt.Name, qt.VilleID).Scan(&qt.ID, &qt.CreatedAt, &qt.UpdatedAt); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("create quartier: %w", err)
	}
	return tx.Commit()
}

func (r *quartierRepository) Update(qt *models.Quartier) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("update quartier: begin: %w", err)
	}
	const q = `
		UPDATE quartiers SET name=$1, ville_id=$2, updated_at=NOW()
		WHERE id=$3 AND deleted_at IS NULL
	`
	if _, err := tx.Exec(q, qt.Name, qt.VilleID, qt.ID); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("update quartier: %w", err)
	}
	return tx.Commit()
}

func (r *quartierRepository) SoftDelete(id int64) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("delete quartier: begin: %w", err)
	}
	if _, err := tx.Exec(`UPDATE quartiers SET deleted_at=NOW() WHERE id=$1 AND deleted_at IS NULL`, id); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("delete quartier: %w", err)
	}
	return tx.Commit()
}

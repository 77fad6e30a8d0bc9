package repositories

import (
	"database/sql"
	"fmt"

	"haolaplus/internal/models"
)

type PaysRepository interface {
	ListAll() ([]*models.Pays, error)
	GetByID(id int64) (*models.Pays, error)
	Create(p *models.Pays) error
	Update(p *models.Pays) error
	SoftDelete(id int64) error
	// GetByIDIncludingDeleted sert aux contrôles internes (la suppression est logique).
	GetByIDIncludingDeleted(id int64) (*models.Pays, error)
}

type paysRepository struct {
	db *sql.DB
}

func NewPaysRepository(db *sql.DB) PaysRepository {
	return &paysRepository{db: db}
}

const paysColumns = `id, name, code, indicatif, created_at, updated_at`

func (r *paysRepository) ListAll() ([]*models.Pays, error) {
	q := `SELECT ` + paysColumns + ` FROM pays WHERE deleted_at IS NULL ORDER BY name`
	rows, err := r.db.Query(q)
	if err != nil {
		return nil, fmt.Errorf("list pays: %w", err)
	}
	defer rows.Close()

	var res []*models.Pays
	for rows.Next() {
		var p models.Pays
		if err := rows.Scan(&p.ID, &p.Name, &p.Code, &p.Indicatif, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan pays: %w", err)
		}
		res = append(res, &p)
	}
	return res, rows.Err()
}

func (r *paysRepository) GetByID(id int64) (*models.Pays, error) {
	q := `SELECT ` + paysColumns + ` FROM pays WHERE id = $1 AND deleted_at IS NULL`
	var p models.Pays
	if err := r.db.QueryRow(q, id).Scan(&p.ID, &p.Name, &p.Code, &p.Indicatif, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get pays: %w", err)
	}
	return &p, nil
}

func (r *paysRepository) GetByIDIncludingDeleted(id int64) (*models.Pays, error) {
	const q = `SELECT id, name, code, indicatif, created_at, updated_at FROM pays WHERE id = $1`
	var p models.Pays
	if err := r.db.QueryRow(q, id).Scan(&p.ID, &p.Name, &p.Code, &p.Indicatif, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get pays (incl. deleted): %w", err)
	}
	return &p, nil
}

func (r *paysRepository) Create(p *models.Pays) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("create pays: begin: %w", err)
	}
	const q = `
		INSERT INTO pays (name, code, indicatif, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	if err := tx.QueryRow(q, p.Name, p.Code, p.Indicatif).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("create pays: %w", err)
	}
	return tx.Commit()
}

func (r *paysRepository) Update(p *models.Pays) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("update pays: begin: %w", err)
	}
	const q = `
		UPDATE pays SET name=$1, code=$2, indicatif=$3, updated_at=NOW()
		WHERE id=$4 AND deleted_at IS NULL
	`
	if _, err := tx.Exec(q, p.Name, p.Code, p.Indicatif, p.ID); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("update pays: %w", err)
	}
	return tx.Commit()
}

func (r *paysRepository) SoftDelete(id int64) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("delete pays: begin: %w", err)
	}
	if _, err := tx.Exec(`UPDATE pays SET deleted_at=NOW() WHERE id=$1 AND deleted_at IS NULL`, id); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("delete pays: %w", err)
	}
	return tx.Commit()
}

package repositories

import (
	"database/sql"
	"fmt"

	"haolaplus/internal/models"
)

type RegionRepository interface {
	ListAll() ([]*models.Region, error)
	ListByPays(paysID int64) ([]*models.Region, error)
	GetByID(id int64) (*models.Region, error)
	Create(reg *models.Region) error
	Update(reg *models.Region) error
	SoftDelete(id int64) error
}

type regionRepository struct {
	db *sql.DB
}

func NewRegionRepository(db *sql.DB) RegionRepository {
	return &regionRepository{db: db}
}

func (r *regionRepository) ListAll() ([]*models.Region, error) {
	const q = `
		SELECT id, name, pays_id, created_at, updated_at
		FROM regions
		WHERE deleted_at IS NULL
		ORDER BY name
	`
	rows, err := r.db.Query(q)
	if err != nil {
		return nil, fmt.Errorf("list regions: %w", err)
	}
	defer rows.Close()

	var res []*models.Region
	for rows.Next() {
		var reg models.Region
		if err := rows.Scan(&reg.ID, &reg.Name, &reg.PaysID, &reg.CreatedAt, &reg.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan region: %w", err)
		}
		res = append(res, &reg)
	}
	return res, rows.Err()
}

func (r *regionRepository) ListByPays(paysID int64) ([]*models.Region, error) {
	const q = `
		SELECT id, name, pays_id, created_at, updated_at
		FROM regions
		WHERE pays_id = $1 AND deleted_at IS NULL
		ORDER BY name
	`
	rows, err := r.db.Query(q, paysID)
	if err != nil {
		return nil, fmt.Errorf("list regions by pays: %w", err)
	}
	defer rows.Close()

	var res []*models.Region
	for rows.Next() {
		var reg models.Region
		if err := rows.Scan(&reg.ID, &reg.Name, &reg.PaysID, &reg.CreatedAt, &reg.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan region: %w", err)
		}
		res = append(res, &reg)
	}
	return res, rows.Err()
}

func (r *regionRepository) GetByID(id int64) (*models.Region, error) {
	const q = `
		SELECT id, name, pays_id, created_at, updated_at
		FROM regions
		WHERE id = $1 AND deleted_at IS NULL
	`
	var reg models.Region
	if err := r.db.QueryRow(q, id).Scan(&reg.ID, &reg.Name, &reg.PaysID, &reg.CreatedAt, &reg.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get region: %w", err)
	}
	return &reg, nil
}

func (r *regionRepository) Create(reg *models.Region) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("create region: begin: %w", err)
	}
	const q = `
		INSERT INTO regions (name, pays_id, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	if err := tx.QueryRow(q, reg.Name, reg.PaysID).Scan(&reg.ID, &reg.CreatedAt, &reg.UpdatedAt); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("create region: %w", err)
	}
	return tx.Commit()
}

func (r *regionRepository) Update(reg *models.Region) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("update region: begin: %w", err)
	}
	const q = `
		UPDATE regions SET name=$1, pays_id=$2, updated_at=NOW()
		WHERE id=$3 AND deleted_at IS NULL
	`
	if _, err := tx.Exec(q, reg.Name, reg.PaysID, reg.ID); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("update region: %w", err)
	}
	return tx.Commit()
}

func (r *regionRepository) SoftDelete(id int64) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("delete region: begin: %w", err)
	}
	if _, err := tx.Exec(`UPDATE regions SET deleted_at=NOW() WHERE id=$1 AND deleted_at IS NULL`, id); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("delete region: %w", err)
	}
	return tx.Commit()
}

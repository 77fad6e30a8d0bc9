package repositories

import (
	"database/sql"
	"fmt"

	"haolaplus/internal/models"
)

type VilleRepository interface {
	ListAll() ([]*models.Ville, error)
	ListByRegion(regionID int64) ([]*models.Ville, error)
	GetByID(id int64) (*models.Ville, error)
	Create(v *models.Ville) error
	Update(v *models.Ville) error
	SoftDelete(id int64) error
}

type villeRepository struct {
	db *sql.DB
}

func NewVilleRepository(db *sql.DB) VilleRepository {
	return &villeRepository{db: db}
}

func (r *villeRepository) ListAll() ([]*models.Ville, error) {
	const q = `
		SELECT id, name, region_id, created_at, updated_at
		FROM villes
		WHERE deleted_at IS NULL
		ORDER BY name
	`
	rows, err := r.db.Query(q)
	if err != nil {
		return nil, fmt.Errorf("list villes: %w", err)
	}
	defer rows.Close()

	var res []*models.Ville
	for rows.Next() {
		var v models.Ville
		if err := rows.Scan(&v.ID, &v.Name, &v.RegionID, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan ville: %w", err)
		}
		res = append(res, &v)
	}
	return res, rows.Err()
}

func (r *villeRepository) ListByRegion(regionID int64) ([]*models.Ville, error) {
	const q = `
		SELECT id, name, region_id, created_at, updated_at
		FROM villes
		WHERE region_id = $1 AND deleted_at IS NULL
		ORDER BY name
	`
	rows, err := r.db.Query(q, regionID)
	if err != nil {
		return nil, fmt.Errorf("list villes by region: %w", err)
	}
	defer rows.Close()

	var res []*models.Ville
	for rows.Next() {
		var v models.Ville
		if err := rows.Scan(&v.ID, &v.Name, &v.RegionID, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan ville: %w", err)
		}
		res = append(res, &v)
	}
	return res, rows.Err()
}

func (r *villeRepository) GetByID(id int64) (*models.Ville, error) {
	const q = `
		SELECT id, name, region_id, created_at, updated_at
		FROM villes
		WHERE id = $1 AND deleted_at IS NULL
	`
	var v models.Ville
	if err := r.db.QueryRow(q, id).Scan(&v.ID, &v.Name, &v.RegionID, &v.CreatedAt, &v.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get ville: %w", err)
	}
	return &v, nil
}

func (r *villeRepository) Create(v *models.Ville) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("create ville: begin: %w", err)
	}
	const q = `
		INSERT INTO villes (name, region_id, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	if err := tx.QueryRow(q, v.Name, v.RegionID).Scan(&v.ID, &v.CreatedAt, &v.UpdatedAt); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("create ville: %w", err)
	}
	return tx.Commit()
}

func (r *villeRepository) Update(v *models.Ville) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("update ville: begin: %w", err)
	}
	const q = `
		UPDATE villes SET name=$1, region_id=$2, updated_at=NOW()
		WHERE id=$3 AND deleted_at IS NULL
	`
	if _, err := tx.Exec(q, v.Name, v.RegionID, v.ID); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("update ville: %w", err)
	}
	return tx.Commit()
}

func (r *villeRepository) SoftDelete(id int64) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("delete ville: begin: %w", err)
	}
	if _, err := tx.Exec(`UPDATE villes SET deleted_at=NOW() WHERE id=$1 AND deleted_at IS NULL`, id); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("delete ville: %w", err)
	}
	return tx.Commit()
}

package repositories

import (
	"database/sql"
	"fmt"

	"haolaplus/internal/models"
)

type LogActivityRepository interface {
	// Create écrit dans sa propre transaction ; l'appelant décide quoi faire de l'erreur
	// (le service d'activité l'avale toujours).
	Create(entry *models.LogActivity) error
	ListAll() ([]*models.LogActivity, error)
	ListByUser(userID int64) ([]*models.LogActivity, error)
}

type logActivityRepository struct {
	db *sql.DB
}

func NewLogActivityRepository(db *sql.DB) LogActivityRepository {
	return &logActivityRepository{db: db}
}

func (r *logActivityRepository) Create(entry *models.LogActivity) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("log activity: begin: %w", err)
	}
	const q = `
		INSERT INTO log_activity (subject, url, method, ip, agent, response, user_id, user_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, created_at
	`
	if err := tx.QueryRow(q,
		entry.Subject, entry.URL, entry.Method, entry.IP, entry.Agent,
		entry.Response, entry.UserID, entry.UserName,
	).Scan(&entry.ID, &entry.CreatedAt); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("log activity: insert: %w", err)
	}
	return tx.Commit()
}

const logColumns = `id, subject, url, method, ip, agent, response, user_id, user_name, created_at`

func scanLogRows(rows *sql.Rows) ([]*models.LogActivity, error) {
	defer rows.Close()
	var res []*models.LogActivity
	for rows.Next() {
		var e models.LogActivity
		if err := rows.Scan(&e.ID, &e.Subject, &e.URL, &e.Method, &e.IP, &e.Agent,
			&e.Response, &e.UserID, &e.UserName, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan log activity: %w", err)
		}
		res = append(res, &e)
	}
	return res, rows.Err()
}

func (r *logActivityRepository) ListAll() ([]*models.LogActivity, error) {
	q := `SELECT ` + logColumns + ` FROM log_activity ORDER BY created_at DESC`
	rows, err := r.db.Query(q)
	if err != nil {
		return nil, fmt.Errorf("list log activity: %w", err)
	}
	return scanLogRows(rows)
}

func (r *logActivityRepository) ListByUser(userID int64) ([]*models.LogActivity, error) {
	q := `SELECT ` + logColumns + ` FROM log_activity WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(q, userID)
	if err != nil {
		return nil, fmt.Errorf("list log activity by user: %w", err)
	}
	return scanLogRows(rows)
}

package repositories

import (
	"database/sql"
	"fmt"

	"haolaplus/internal/models"
)

type UserRepository interface {
	CreateTx(tx *sql.Tx, user *models.User) error
	GetByID(id int64) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByTelephone(telephone string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	EmailExists(email string) (bool, error)
	TelephoneExists(telephone string) (bool, error)
	Update(user *models.User) error
	UpdatePassword(id int64, passwordHash string) error
	UpdatePasswordByEmail(email, passwordHash string) error
	MarkEmailVerified(id int64) error
	MarkTelephoneVerified(id int64) error
	SetStatus(id int64, status string) error
	SoftDelete(id int64) error
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, avatar, nom, prenom, sexe, email, telephone, password, default_auth,
	pays_id, role_id, parrain_id, firebase_token, google_id, facebook_id, status,
	email_verified_at, telephone_verified_at, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (*models.User, error) {
	var u models.User
	if err := row.Scan(
		&u.ID, &u.Avatar, &u.Nom, &u.Prenom, &u.Sexe, &u.Email, &u.Telephone, &u.PasswordHash,
		&u.DefaultAuth, &u.PaysID, &u.RoleID, &u.ParrainID, &u.FirebaseToken, &u.GoogleID,
		&u.FacebookID, &u.Status, &u.EmailVerifiedAt, &u.TelephoneVerifiedAt,
		&u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}

// CreateTx — insertion dans la transaction d'enregistrement.
func (r *userRepository) CreateTx(tx *sql.Tx, user *models.User) error {
	const q = `
		INSERT INTO users (avatar, nom, prenom, sexe, email, telephone, password, default_auth,
			pays_id, role_id, parrain_id, firebase_token, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	if err := tx.QueryRow(q,
		user.Avatar, user.Nom, user.Prenom, user.Sexe, user.Email, user.Telephone,
		user.PasswordHash, user.DefaultAuth, user.PaysID, user.RoleID, user.ParrainID,
		user.FirebaseToken, user.Status,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *userRepository) GetByID(id int64) (*models.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE id = $1 AND deleted_at IS NULL`
	return scanUser(r.db.QueryRow(q, id))
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE email = $1 AND deleted_at IS NULL`
	return scanUser(r.db.QueryRow(q, email))
}

func (r *userRepository) GetByTelephone(telephone string) (*models.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE telephone = $1 AND deleted_at IS NULL`
	return scanUser(r.db.QueryRow(q, telephone))
}

// GetByUsername — le login accepte indifféremment email ou téléphone.
func (r *userRepository) GetByUsername(username string) (*models.User, error) {
	q := `SELECT ` + userColumns + ` FROM users
		WHERE (email = $1 OR telephone = $1) AND deleted_at IS NULL`
	return scanUser(r.db.QueryRow(q, username))
}

func (r *userRepository) EmailExists(email string) (bool, error) {
	var exists bool
	const q = `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1 AND deleted_at IS NULL)`
	if err := r.db.QueryRow(q, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("email exists: %w", err)
	}
	return exists, nil
}

func (r *userRepository) TelephoneExists(telephone string) (bool, error) {
	var exists bool
	const q = `SELECT EXISTS (SELECT 1 FROM users WHERE telephone = $1 AND deleted_at IS NULL)`
	if err := r.db.QueryRow(q, telephone).Scan(&exists); err != nil {
		return false, fmt.Errorf("telephone exists: %w", err)
	}
	return exists, nil
}

func (r *userRepository) Update(user *models.User) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("update user: begin: %w", err)
	}
	const q = `
		UPDATE users
		SET avatar=$1, nom=$2, prenom=$3, sexe=$4, email=$5, telephone=$6, password=$7,
			firebase_token=$8, updated_at=NOW()
		WHERE id=$9 AND deleted_at IS NULL
	`
	if _, err := tx.Exec(q,
		user.Avatar, user.Nom, user.Prenom, user.Sexe, user.Email, user.Telephone,
		user.PasswordHash, user.FirebaseToken, user.ID,
	); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("update user: %w", err)
	}
	return tx.Commit()
}

func (r *userRepository) UpdatePassword(id int64, passwordHash string) error {
	const q = `UPDATE users SET password=$1, updated_at=NOW() WHERE id=$2 AND deleted_at IS NULL`
	if _, err := r.db.Exec(q, passwordHash, id); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

func (r *userRepository) UpdatePasswordByEmail(email, passwordHash string) error {
	const q = `UPDATE users SET password=$1, updated_at=NOW() WHERE email=$2 AND deleted_at IS NULL`
	if _, err := r.db.Exec(q, passwordHash, email); err != nil {
		return fmt.Errorf("update password by email: %w", err)
	}
	return nil
}

func (r *userRepository) MarkEmailVerified(id int64) error {
	const q = `UPDATE users SET email_verified_at=NOW(), updated_at=NOW() WHERE id=$1`
	if _, err := r.db.Exec(q, id); err != nil {
		return fmt.Errorf("mark email verified: %w", err)
	}
	return nil
}

func (r *userRepository) MarkTelephoneVerified(id int64) error {
	const q = `UPDATE users SET telephone_verified_at=NOW(), updated_at=NOW() WHERE id=$1`
	if _, err := r.db.Exec(q, id); err != nil {
		return fmt.Errorf("mark telephone verified: %w", err)
	}
	return nil
}

func (r *userRepository) SetStatus(id int64, status string) error {
	const q = `UPDATE users SET status=$1, updated_at=NOW() WHERE id=$2 AND deleted_at IS NULL`
	if _, err := r.db.Exec(q, status, id); err != nil {
		return fmt.Errorf("set status: %w", err)
	}
	return nil
}

// SoftDelete — suppression logique ; la ligne reste en base.
func (r *userRepository) SoftDelete(id int64) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("soft delete user: begin: %w", err)
	}
	if _, err := tx.Exec(`UPDATE users SET deleted_at=NOW() WHERE id=$1 AND deleted_at IS NULL`, id); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("soft delete user: %w", err)
	}
	return tx.Commit()
}

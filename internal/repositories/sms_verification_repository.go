package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"haolaplus/internal/models"
)

type SmsVerificationRepository interface {
	CreateTx(tx *sql.Tx, v *models.SmsVerification) error
	DeleteByUserTx(tx *sql.Tx, userID int64) error
	// Replace supprime les codes existants de l'utilisateur puis insère le nouveau,
	// dans une même transaction.
	Replace(v *models.SmsVerification) error
	DeleteByUser(userID int64) error
	GetLatestByUser(userID int64) (*models.SmsVerification, error)
	MarkConsumed(id int64) error
	MarkExpired(id int64) error
}

type smsVerificationRepository struct {
	db *sql.DB
}

func NewSmsVerificationRepository(db *sql.DB) SmsVerificationRepository {
	return &smsVerificationRepository{db: db}
}

const smsInsert = `
	INSERT INTO sms_verifications (user_id, telephone, otp, expire_at, status, created_at)
	VALUES ($1, $2, $3, $4, $5, NOW())
	RETURNING id, created_at
`

func (r *smsVerificationRepository) CreateTx(tx *sql.Tx, v *models.SmsVerification) error {
	if v.Status == "" {
		v.Status = models.SmsStatusIssued
	}
	if err := tx.QueryRow(smsInsert, v.UserID, v.Telephone, v.OTP, v.ExpireAt, v.Status).
		Scan(&v.ID, &v.CreatedAt); err != nil {
		return fmt.Errorf("create sms verification: %w", err)
	}
	return nil
}

// DeleteByUserTx — chaque nouvel envoi remplace les codes précédents de l'utilisateur.
func (r *smsVerificationRepository) DeleteByUserTx(tx *sql.Tx, userID int64) error {
	if _, err := tx.Exec(`DELETE FROM sms_verifications WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete sms verifications: %w", err)
	}
	return nil
}

func (r *smsVerificationRepository) Replace(v *models.SmsVerification) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("replace sms verification: begin: %w", err)
	}
	if err := r.DeleteByUserTx(tx, v.UserID); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := r.CreateTx(tx, v); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (r *smsVerificationRepository) DeleteByUser(userID int64) error {
	if _, err := r.db.Exec(`DELETE FROM sms_verifications WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete sms verifications: %w", err)
	}
	return nil
}

func (r *smsVerificationRepository) GetLatestByUser(userID int64) (*models.SmsVerification, error) {
	const q = `
		SELECT id, user_id, telephone, otp, expire_at, status, created_at
		FROM sms_verifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`
	var v models.SmsVerification
	if err := r.db.QueryRow(q, userID).Scan(
		&v.ID, &v.UserID, &v.Telephone, &v.OTP, &v.ExpireAt, &v.Status, &v.CreatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get latest sms verification: %w", err)
	}
	return &v, nil
}

func (r *smsVerificationRepository) MarkConsumed(id int64) error {
	const q = `UPDATE sms_verifications SET status=$1 WHERE id=$2`
	if _, err := r.db.Exec(q, models.SmsStatusConsumed, id); err != nil {
		return fmt.Errorf("mark sms consumed: %w", err)
	}
	return nil
}

// MarkExpired — expiration paresseuse, posée au moment du contrôle.
func (r *smsVerificationRepository) MarkExpired(id int64) error {
	const q = `UPDATE sms_verifications SET status=$1, expire_at=$2 WHERE id=$3`
	if _, err := r.db.Exec(q, models.SmsStatusExpired, time.Now(), id); err != nil {
		return fmt.Errorf("mark sms expired: %w", err)
	}
	return nil
}

package models

import "time"

// ResetCodePassword — code de réinitialisation lié à un email.
// Validité : une heure à partir de CreatedAt, contrôlée au moment du check.
type ResetCodePassword struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
}

// ResetCodeTTL — fenêtre de validité d'un code de réinitialisation.
const ResetCodeTTL = time.Hour

func (r *ResetCodePassword) Expired(now time.Time) bool {
	return now.After(r.CreatedAt.Add(ResetCodeTTL))
}

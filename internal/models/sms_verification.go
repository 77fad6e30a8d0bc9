package models

import "time"

// SmsVerification — une ligne par envoi d'OTP. Le code lui-même est vérifié par le
// fournisseur (Twilio Verify) ; la ligne locale sert de trace et porte le TTL.
type SmsVerification struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Telephone string    `json:"telephone"`
	OTP       string    `json:"-"`
	ExpireAt  time.Time `json:"expire_at"`
	Status    string    `json:"status"` // issued | consumed | expired
	CreatedAt time.Time `json:"created_at"`
}

const (
	SmsStatusIssued   = "issued"
	SmsStatusConsumed = "consumed"
	SmsStatusExpired  = "expired"
)

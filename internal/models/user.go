package models

import "time"

// Canal d'authentification par défaut : 1 — email, 2 — téléphone.
const (
	AuthChannelEmail     = 1
	AuthChannelTelephone = 2
)

type User struct {
	ID                  int64      `json:"id"`
	Avatar              *string    `json:"avatar,omitempty"`
	Nom                 string     `json:"nom"`
	Prenom              string     `json:"prenom"`
	Sexe                *string    `json:"sexe,omitempty"`
	Email               *string    `json:"email"`
	Telephone           *string    `json:"telephone"`
	PasswordHash        string     `json:"-"` // jamais sérialisé
	DefaultAuth         int        `json:"default_auth"`
	PaysID              int64      `json:"pays_id"`
	RoleID              int64      `json:"role_id"`
	ParrainID           *int64     `json:"parrain_id,omitempty"`
	FirebaseToken       *string    `json:"-"`
	GoogleID            *string    `json:"-"`
	FacebookID          *string    `json:"-"`
	Status              string     `json:"status"`
	EmailVerifiedAt     *time.Time `json:"email_verified_at"`
	TelephoneVerifiedAt *time.Time `json:"telephone_verified_at"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
	DeletedAt           *time.Time `json:"-"`
}

// DisplayName — "nom prenom", tel que le journal d'activité l'enregistre.
func (u *User) DisplayName() string {
	return u.Nom + " " + u.Prenom
}

func (u *User) HasVerifiedEmail() bool {
	return u.EmailVerifiedAt != nil
}

func (u *User) HasVerifiedTelephone() bool {
	return u.TelephoneVerifiedAt != nil
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

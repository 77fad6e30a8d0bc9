package models

import "time"

// AccessToken — jeton bearer opaque. Seul le hash SHA-256 est stocké ;
// la valeur en clair n'est rendue qu'une fois, à l'émission.
type AccessToken struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	TokenHash string    `json:"-"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

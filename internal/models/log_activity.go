package models

import "time"

// LogActivity — journal d'activité, append-only.
type LogActivity struct {
	ID        int64     `json:"id"`
	Subject   string    `json:"subject"`
	URL       string    `json:"url"`
	Method    string    `json:"method"`
	IP        string    `json:"ip"`
	Agent     *string   `json:"agent"`
	Response  *string   `json:"response"`
	UserID    *int64    `json:"user_id"`
	UserName  *string   `json:"user_name"`
	CreatedAt time.Time `json:"created_at"`
}

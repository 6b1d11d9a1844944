package models

import "time"

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Don't expose in JSON
	CreatedAt    time.Time `json:"created_at"`
}

package models

import "time"

// Device is an electrical appliance registered by a user: how many hours a day
// it runs and its power rating in watts.
type Device struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Hours     float64   `json:"hours"`
	Power     float64   `json:"power"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

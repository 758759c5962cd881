package entity

import "time"

// Company is a builder/developer that owns property listings.
type Company struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

package entity

import "time"

// Customer representa un cliente del negocio.
type Customer struct {
	ID         string
	BusinessID string
	Name       string
	Email      string
	Phone      string
	Address    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

package entity

import "time"

// SessionRecord es lo que se persiste de una sesión: solo las referencias
// (user, business) y los tiempos. Las capacidades efectivas son derivadas y
// nunca se guardan — se recalculan desde (businessType, role, isOwner).
type SessionRecord struct {
	ID         string
	UserID     string
	BusinessID string
	IssuedAt   time.Time
	ExpiresAt  time.Time
}

// Expired informa si la sesión ya venció.
func (s *SessionRecord) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

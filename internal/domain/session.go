package domain

import "time"

// Session vincula un bearer token opaco con un AdminUser y su expiracion.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// Expired indica si la sesion ya vencio respecto a now.
func (s Session) Expired(now time.Time) bool {
	return s.ExpiresAt.Before(now)
}

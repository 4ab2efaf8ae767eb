package domain

import "time"

// RoleAdmin es el unico rol emitido por el bootstrap inicial.
const RoleAdmin = "admin"

// AdminUser representa la identidad de un operador del panel.
type AdminUser struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Name         string     `json:"name"`
	Role         string     `json:"role"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}

// AccountView es la proyeccion publica de un AdminUser, sin digest.
type AccountView struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Role      string     `json:"role"`
	CreatedAt time.Time  `json:"created_at,omitzero"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// View construye la proyeccion publica del usuario.
func (u AdminUser) View() AccountView {
	return AccountView{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		LastLogin: u.LastLogin,
	}
}

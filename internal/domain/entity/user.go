package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleOperador = "operador"
	RoleVendedor = "vendedor"
)

// User representa un usuario del sistema. Su Name es el principal que queda
// registrado como "user" en el historial de los pedidos que modifica.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"` // bcrypt hash, nunca plano después de persistir
	Name         string    `json:"name"`
	Role         string    `json:"role"`   // admin, operador, vendedor
	Status       string    `json:"status"` // active, inactive
	CreatedAt    time.Time `json:"createdAt,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt,omitempty"`
}

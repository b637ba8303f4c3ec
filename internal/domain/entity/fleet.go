package entity

import "time"

// Driver representa un chofer de la flota.
type Driver struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Cedula    string    `json:"cedula,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// Truck representa un chuto (unidad tractora).
type Truck struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Plate     string    `json:"plate,omitempty"`
	Brand     string    `json:"brand,omitempty"`
	Model     string    `json:"model,omitempty"`
	Color     string    `json:"color,omitempty"`
	Type      string    `json:"type,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// Trailer representa una batea (remolque plataforma o tolva).
type Trailer struct {
	ID        string    `json:"id"`
	Plate     string    `json:"plate,omitempty"`
	Brand     string    `json:"brand,omitempty"`
	Type      string    `json:"type,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

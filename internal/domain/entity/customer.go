package entity

import "time"

// Customer representa un cliente del negocio del usuario.
// No existe endpoint de actualización ni borrado: solo alta y listado.
type Customer struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UserID    string
}

package entity

import "time"

// User es la raíz de identidad del sistema: todo producto, cliente y venta
// pertenece a un usuario. Se crea en el registro y no se actualiza ni elimina.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // hash bcrypt, nunca el password plano
	CreatedAt    time.Time
}

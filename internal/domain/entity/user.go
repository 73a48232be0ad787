package entity

import "time"

// User representa un usuario de la aplicación (dueño o encargado de una barra).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

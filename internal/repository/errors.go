package repository

import "errors"

var (
	// ErrNotFound indica que el registro buscado no existe.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate indica que una clave única ya está en uso.
	ErrDuplicate = errors.New("duplicate record")
)

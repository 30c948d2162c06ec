package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrProductNotFound    = errors.New("producto no encontrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInvalidInput       = errors.New("entrada inválida")
	// ErrMalformedDocument: el documento persistido no se puede interpretar
	// (JSON no parseable o sin los arreglos users/products de nivel superior).
	ErrMalformedDocument = errors.New("documento de datos malformado")
)

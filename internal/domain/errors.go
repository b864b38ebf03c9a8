package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrNetwork      = errors.New("fallo de red")
	ErrRejected     = errors.New("solicitud rechazada por el servidor")
	ErrRemote       = errors.New("error del servidor remoto")
)

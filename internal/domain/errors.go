package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("cliente no encontrado")
	ErrDuplicate    = errors.New("ya existe un cliente con ese código fiscal")
	ErrInvalidDate  = errors.New("formato de fecha inválido (DD/MM/YYYY)")
	ErrInvalidTime  = errors.New("formato de hora inválido (HH:MM)")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrEmptyStore   = errors.New("no hay clientes en el sistema")
	ErrNoMatches    = errors.New("sin resultados para la búsqueda")
)

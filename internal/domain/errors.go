package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	// ErrInvalidTransition: cambio de estado no permitido por el flujo operativo.
	ErrInvalidTransition = errors.New("transición de estado no permitida")
	// ErrReguiaNotAllowed: la reguía solo aplica a pedidos en tránsito (En Ruta / En Sitio).
	ErrReguiaNotAllowed = errors.New("no se puede reguiar un pedido que no está en tránsito")
	// ErrProtectedSeller: el vendedor de casa "Oficina" (V-000) es un registro del sistema.
	ErrProtectedSeller = errors.New("el vendedor Oficina no se puede eliminar ni modificar")
	// ErrVersionConflict: la colección fue modificada por otro escritor entre lectura y escritura.
	ErrVersionConflict = errors.New("la colección fue modificada por otro usuario")
)

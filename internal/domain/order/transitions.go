package order

import (
	"fmt"

	"github.com/tu-usuario/fletes-pro/internal/domain"
	"github.com/tu-usuario/fletes-pro/internal/domain/entity"
)

// chain ordena los estados del flujo operativo de carga y entrega.
var chain = []string{
	entity.StatusProgramado,
	entity.StatusCargado,
	entity.StatusCargando,
	entity.StatusEnRuta,
	entity.StatusEnSitio,
	entity.StatusCompletado,
}

func chainIndex(status string) int {
	for i, s := range chain {
		if s == status {
			return i
		}
	}
	return -1
}

// CanTransition indica si el cambio de estado from → to está permitido.
// El flujo operativo solo avanza: se puede saltar estados intermedios
// (En Ruta → Completado cuando no se registra la llegada a sitio), nunca
// retroceder. Cancelado es alcanzable desde cualquier estado no terminal;
// Completado y Cancelado son terminales.
func CanTransition(from, to string) bool {
	i := chainIndex(from)
	if i < 0 || entity.IsTerminalStatus(from) {
		return false
	}
	if to == entity.StatusCancelado {
		return true
	}
	return chainIndex(to) > i
}

// ValidateTransition devuelve ErrInvalidTransition (envuelto con el par
// origen → destino) si el cambio de estado no está permitido.
func ValidateTransition(from, to string) error {
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: de %q a %q", domain.ErrInvalidTransition, from, to)
	}
	return nil
}

// AllowedNext devuelve los estados alcanzables desde from.
func AllowedNext(from string) []string {
	i := chainIndex(from)
	if i < 0 || entity.IsTerminalStatus(from) {
		return nil
	}
	out := make([]string, 0, len(chain)-i)
	out = append(out, chain[i+1:]...)
	return append(out, entity.StatusCancelado)
}

package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/fletes-pro/internal/application/dto"
	"github.com/tu-usuario/fletes-pro/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// parseBody deserializa y valida el cuerpo de la petición contra los tags
// validate del DTO. Responde 400 por su cuenta y devuelve false si falla.
func parseBody(c *fiber.Ctx, out any) bool {
	if err := c.BodyParser(out); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.NewError("INVALID_BODY", "cuerpo inválido"))
		return false
	}
	if err := validate.Struct(out); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
			}
			_ = c.Status(fiber.StatusBadRequest).JSON(dto.NewError("VALIDATION", "campos inválidos: "+strings.Join(fields, ", ")))
			return false
		}
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.NewError("VALIDATION", err.Error()))
		return false
	}
	return true
}

// respondError traduce los errores de dominio a códigos HTTP.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.NewError("NOT_FOUND", err.Error()))
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("VALIDATION", err.Error()))
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.NewError("DUPLICATE", err.Error()))
	case errors.Is(err, domain.ErrInvalidTransition), errors.Is(err, domain.ErrReguiaNotAllowed), errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.NewError("CONFLICT", err.Error()))
	case errors.Is(err, domain.ErrVersionConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.NewError("VERSION_CONFLICT", err.Error()))
	case errors.Is(err, domain.ErrProtectedSeller), errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.NewError("FORBIDDEN", err.Error()))
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.NewError("UNAUTHORIZED", err.Error()))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.NewError("INTERNAL", err.Error()))
	}
}

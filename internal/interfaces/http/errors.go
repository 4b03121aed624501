package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/domain"
)

// respondError traduce errores de la capa de aplicación a status + ErrorResponse.
// Validación = 400; cualquier otra falla del almacén (incluido id inexistente) = 500.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrMissingID):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error(), Code: dto.CodeMissingID})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error(), Code: dto.CodeValidation})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error(), Code: dto.CodeInternal})
	}
}

func respondInvalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido", Code: dto.CodeInvalidBody})
}

// ErrorHandler maneja los errores que llegan a Fiber sin respuesta (404 de ruta, 405, panics recuperados).
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	appCode := dto.CodeInternal
	switch code {
	case fiber.StatusNotFound:
		appCode = "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		appCode = "METHOD_NOT_ALLOWED"
	case fiber.StatusRequestTimeout:
		appCode = "TIMEOUT"
	}
	return c.Status(code).JSON(dto.ErrorResponse{Error: err.Error(), Code: appCode})
}

func respondInvalidID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "id inválido", Code: dto.CodeInvalidID})
}

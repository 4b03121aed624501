package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/clientes-api/internal/application/cliente"
	"github.com/jhoicas/clientes-api/internal/application/dto"
)

// ClienteHandler maneja las peticiones HTTP de /api/clientes.
// Cada verbo se traduce en una única operación del caso de uso.
type ClienteHandler struct {
	uc *cliente.UseCase
}

// NewClienteHandler construye el handler.
func NewClienteHandler(uc *cliente.UseCase) *ClienteHandler {
	return &ClienteHandler{uc: uc}
}

// List godoc
// @Summary      Listar clientes
// @Description  Devuelve todos los clientes ordenados por idCliente. Tabla vacía = [].
// @Tags         clientes
// @Produce      json
// @Success      200  {array}   dto.ClienteResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/clientes [get]
func (h *ClienteHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Create godoc
// @Summary      Crear cliente
// @Description  Crea un cliente. El idCliente lo asigna la base; si viene en el cuerpo se ignora.
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ClienteFormData  true  "Datos del cliente"
// @Success      201   {object}  dto.ClienteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/clientes [post]
func (h *ClienteHandler) Create(c *fiber.Ctx) error {
	var in dto.ClienteFormData
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar cliente
// @Description  Actualización parcial: solo se modifican los campos presentes. contraseña vacía = sin cambio.
// @Description  En PUT /api/clientes/{id} el id de la ruta tiene prioridad sobre idCliente del cuerpo.
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        id    path      int                       false  "ID del cliente"
// @Param        body  body      dto.UpdateClienteRequest  true   "idCliente y campos a modificar"
// @Success      200   {object}  dto.ClienteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/clientes [put]
// @Router       /api/clientes/{id} [put]
func (h *ClienteHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateClienteRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return respondInvalidBody(c)
		}
	}
	id, ok, err := pathID(c)
	if err != nil {
		return respondInvalidID(c)
	}
	if ok {
		in.IDCliente = id
	}
	out, err := h.uc.Update(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar cliente
// @Description  Elimina por idCliente (cuerpo) o por id de ruta. Un id inexistente es error del almacén (500).
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        id    path      int                       false  "ID del cliente"
// @Param        body  body      dto.DeleteClienteRequest  false  "idCliente a eliminar"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/clientes [delete]
// @Router       /api/clientes/{id} [delete]
func (h *ClienteHandler) Delete(c *fiber.Ctx) error {
	var in dto.DeleteClienteRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return respondInvalidBody(c)
		}
	}
	id, ok, err := pathID(c)
	if err != nil {
		return respondInvalidID(c)
	}
	if ok {
		in.IDCliente = id
	}
	if err := h.uc.Delete(c.UserContext(), in.IDCliente); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Cliente eliminado correctamente"})
}

// pathID lee :id si la ruta lo tiene; ok=false si no hay parámetro.
func pathID(c *fiber.Ctx) (id int64, ok bool, err error) {
	raw := c.Params("id")
	if raw == "" {
		return 0, false, nil
	}
	id, err = strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, true, err
	}
	return id, true, nil
}

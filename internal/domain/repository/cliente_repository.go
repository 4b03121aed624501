package repository

import (
	"context"

	"github.com/jhoicas/clientes-api/internal/domain/entity"
)

// ClienteRepository define el puerto de persistencia para Cliente.
// Cada método es una operación independiente contra el almacén.
type ClienteRepository interface {
	// FindAll devuelve todos los clientes en el orden nativo del almacén (por id).
	FindAll(ctx context.Context) ([]*entity.Cliente, error)
	// Create inserta el cliente y completa su ID asignado por el almacén.
	Create(ctx context.Context, cliente *entity.Cliente) error
	// Update aplica cambios parciales al cliente id y devuelve el registro resultante.
	// Un id inexistente devuelve un error que envuelve domain.ErrNotFound.
	Update(ctx context.Context, id int64, cambios entity.ClienteCambios) (*entity.Cliente, error)
	// Delete elimina el cliente id. Un id inexistente devuelve domain.ErrNotFound envuelto.
	Delete(ctx context.Context, id int64) error
}

package postgres

import (
	"context"

	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementación de ClienteRepository sobre GORM.
type ClienteRepo struct {
	db *gorm.DB
}

// NewClienteRepository construye el adaptador.
func NewClienteRepository(db *gorm.DB) *ClienteRepo {
	return &ClienteRepo{db: db}
}

// FindAll lista todos los clientes ordenados por idCliente.
func (r *ClienteRepo) FindAll(ctx context.Context) ([]*entity.Cliente, error) {
	var models []ClienteModel
	err := r.db.WithContext(ctx).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "idCliente"}}).
		Find(&models).Error
	if err != nil {
		return nil, storeError("list clientes", err)
	}
	out := make([]*entity.Cliente, 0, len(models))
	for i := range models {
		out = append(out, models[i].toEntity())
	}
	return out, nil
}

// Create inserta el cliente y completa cliente.ID con la clave generada.
func (r *ClienteRepo) Create(ctx context.Context, cliente *entity.Cliente) error {
	m := clienteModelFrom(cliente)
	m.IDCliente = 0
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return storeError("insert cliente", err)
	}
	cliente.ID = m.IDCliente
	return nil
}

// Update aplica los cambios presentes y devuelve el registro actualizado.
func (r *ClienteRepo) Update(ctx context.Context, id int64, cambios entity.ClienteCambios) (*entity.Cliente, error) {
	db := r.db.WithContext(ctx)
	if !cambios.Vacio() {
		res := db.Model(&ClienteModel{}).
			Where(&ClienteModel{IDCliente: id}).
			Updates(columnasCambios(cambios))
		if res.Error != nil {
			return nil, storeError("update cliente", res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, storeError("update cliente", gorm.ErrRecordNotFound)
		}
	}

	var m ClienteModel
	if err := db.Where(&ClienteModel{IDCliente: id}).First(&m).Error; err != nil {
		return nil, storeError("get cliente", err)
	}
	return m.toEntity(), nil
}

// Delete elimina el cliente id.
func (r *ClienteRepo) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&ClienteModel{}, id)
	if res.Error != nil {
		return storeError("delete cliente", res.Error)
	}
	if res.RowsAffected == 0 {
		return storeError("delete cliente", domain.ErrNotFound)
	}
	return nil
}

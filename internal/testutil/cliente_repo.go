// Package testutil reúne dobles de prueba compartidos entre paquetes.
package testutil

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo almacén en memoria que imita al relacional: ids crecientes,
// error de no-encontrado en update/delete y un error forzable (Fail).
type ClienteRepo struct {
	mu         sync.Mutex
	rows       map[int64]entity.Cliente
	nextID     int64
	Fail       error // si no es nil, toda operación falla con este error
	Mutaciones int   // cantidad de create/update/delete que llegaron al almacén
}

// NewClienteRepo construye un repositorio vacío.
func NewClienteRepo() *ClienteRepo {
	return &ClienteRepo{rows: make(map[int64]entity.Cliente), nextID: 1}
}

// Seed inserta un cliente con el id indicado (o el siguiente si es 0).
func (r *ClienteRepo) Seed(c entity.Cliente) entity.Cliente {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c.ID == 0 {
		c.ID = r.nextID
	}
	if c.ID >= r.nextID {
		r.nextID = c.ID + 1
	}
	r.rows[c.ID] = c
	return c
}

// Get devuelve una copia del cliente id tal como quedó almacenado.
func (r *ClienteRepo) Get(id int64) (entity.Cliente, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.rows[id]
	return c, ok
}

func (r *ClienteRepo) FindAll(_ context.Context) ([]*entity.Cliente, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail != nil {
		return nil, r.Fail
	}
	ids := make([]int64, 0, len(r.rows))
	for id := range r.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]*entity.Cliente, 0, len(ids))
	for _, id := range ids {
		c := r.rows[id]
		out = append(out, &c)
	}
	return out, nil
}

func (r *ClienteRepo) Create(_ context.Context, c *entity.Cliente) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail != nil {
		return r.Fail
	}
	r.Mutaciones++
	c.ID = r.nextID
	r.nextID++
	r.rows[c.ID] = *c
	return nil
}

func (r *ClienteRepo) Update(_ context.Context, id int64, cambios entity.ClienteCambios) (*entity.Cliente, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail != nil {
		return nil, r.Fail
	}
	r.Mutaciones++
	c, ok := r.rows[id]
	if !ok {
		return nil, fmt.Errorf("actualizar cliente %d: %w", id, domain.ErrNotFound)
	}
	cambios.Aplicar(&c)
	r.rows[id] = c
	return &c, nil
}

func (r *ClienteRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail != nil {
		return r.Fail
	}
	r.Mutaciones++
	if _, ok := r.rows[id]; !ok {
		return fmt.Errorf("eliminar cliente %d: %w", id, domain.ErrNotFound)
	}
	delete(r.rows, id)
	return nil
}

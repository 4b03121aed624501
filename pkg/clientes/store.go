package clientes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/jhoicas/clientes-api/pkg/logger"
)

// ErrBusy hay una operación en curso; no se emite una nueva petición.
var ErrBusy = errors.New("operación en curso")

// IncompletoError el formulario tiene campos requeridos vacíos; no se envía.
type IncompletoError struct {
	Campos []string
}

func (e *IncompletoError) Error() string {
	return "campos requeridos: " + strings.Join(e.Campos, ", ")
}

// API operaciones remotas que usa el Store. *Client la implementa.
type API interface {
	List(ctx context.Context) ([]Cliente, error)
	Create(ctx context.Context, in FormData) (*Cliente, error)
	Update(ctx context.Context, id int64, in FormData) (*Cliente, error)
	Delete(ctx context.Context, id int64) error
}

var _ API = (*Client)(nil)

// Operaciones registradas en Result.Op.
const (
	OpLoad   = "load"
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)

// Result resultado de la última operación.
type Result struct {
	Op      string
	OK      bool
	Status  int // status HTTP si la API respondió; 0 si no hubo respuesta
	Message string
}

// State foto del estado de la vista.
type State struct {
	Records   []Cliente
	Draft     FormData
	EditingID *int64 // nil = modo alta
	Busy      bool
	Last      Result
}

// Store estado de la pantalla de clientes y sus acciones. Seguro para uso concurrente;
// Busy funciona como guarda: mientras hay una petición en vuelo las acciones remotas devuelven ErrBusy.
type Store struct {
	api API
	log *logger.Logger

	mu    sync.Mutex
	state State
}

// NewStore construye el Store con el borrador por defecto.
func NewStore(api API, log *logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{
		api:   api,
		log:   log.Named("clientes-store"),
		state: State{Records: []Cliente{}, Draft: DefaultFormData()},
	}
}

// State devuelve una copia del estado actual.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state
	st.Records = append([]Cliente(nil), s.state.Records...)
	if s.state.EditingID != nil {
		id := *s.state.EditingID
		st.EditingID = &id
	}
	return st
}

// Load trae la lista completa y reemplaza Records. Si falla, Records no cambia.
func (s *Store) Load(ctx context.Context) error {
	if err := s.begin(); err != nil {
		return err
	}
	defer s.end()
	return s.reload(ctx, OpLoad)
}

// Submit crea o actualiza según haya edición en curso. Si sale bien, resetea el formulario y recarga la lista.
func (s *Store) Submit(ctx context.Context) error {
	s.mu.Lock()
	if s.state.Busy {
		s.mu.Unlock()
		return ErrBusy
	}
	draft := s.state.Draft
	var editing *int64
	if s.state.EditingID != nil {
		id := *s.state.EditingID
		editing = &id
	}
	op := OpCreate
	if editing != nil {
		op = OpUpdate
	}
	if faltan := draft.faltantes(editing == nil); len(faltan) > 0 {
		err := &IncompletoError{Campos: faltan}
		s.state.Last = Result{Op: op, Message: err.Error()}
		s.mu.Unlock()
		return err
	}
	s.state.Busy = true
	s.mu.Unlock()
	defer s.end()

	var err error
	if editing == nil {
		_, err = s.api.Create(ctx, draft)
	} else {
		_, err = s.api.Update(ctx, *editing, draft)
	}
	if err != nil {
		s.fail(op, err)
		return err
	}

	s.mu.Lock()
	s.state.Draft = DefaultFormData()
	s.state.EditingID = nil
	s.mu.Unlock()

	return s.reload(ctx, op)
}

// Delete elimina el cliente id y recarga la lista.
func (s *Store) Delete(ctx context.Context, id int64) error {
	if err := s.begin(); err != nil {
		return err
	}
	defer s.end()

	if err := s.api.Delete(ctx, id); err != nil {
		s.fail(OpDelete, err)
		return err
	}
	return s.reload(ctx, OpDelete)
}

// BeginEdit carga el registro en el formulario y pasa a modo edición.
// La contraseña queda vacía: vacía = sin cambio.
func (s *Store) BeginEdit(c Cliente) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := c.IDCliente
	s.state.EditingID = &id
	s.state.Draft = FormData{
		Nombre:          c.Nombre,
		Apellido:        c.Apellido,
		TipoDoc:         c.TipoDoc,
		NroDoc:          c.NroDoc,
		FechaNacimiento: c.FechaNacimiento,
		Mail:            c.Mail,
	}
}

// Reset vuelve el formulario a los valores por defecto y sale de edición.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Draft = DefaultFormData()
	s.state.EditingID = nil
}

// SetField cambia un campo del borrador sin tocar el resto.
func (s *Store) SetField(campo Campo, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.state.Draft.Set(campo, value) {
		return fmt.Errorf("campo desconocido: %q", campo)
	}
	return nil
}

// Rows proyección de Records para la tabla.
func (s *Store) Rows() []Row {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := make([]Row, 0, len(s.state.Records))
	for _, c := range s.state.Records {
		rows = append(rows, Row{
			ID:        c.IDCliente,
			Nombre:    strings.TrimSpace(c.Nombre + " " + c.Apellido),
			Documento: strings.TrimSpace(c.TipoDoc + " " + c.NroDoc),
			Mail:      c.Mail,
		})
	}
	return rows
}

// Title título del formulario.
func (s *Store) Title() string {
	if s.editando() {
		return "Editar Cliente"
	}
	return "Nuevo Cliente"
}

// SubmitLabel texto del botón de envío.
func (s *Store) SubmitLabel() string {
	if s.editando() {
		return "Actualizar"
	}
	return "Agregar"
}

// CredentialRequired la contraseña es obligatoria solo al crear.
func (s *Store) CredentialRequired() bool {
	return !s.editando()
}

func (s *Store) editando() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.EditingID != nil
}

func (s *Store) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Busy {
		return ErrBusy
	}
	s.state.Busy = true
	return nil
}

func (s *Store) end() {
	s.mu.Lock()
	s.state.Busy = false
	s.mu.Unlock()
}

// reload reemplaza Records y registra op como exitosa. Asume Busy tomado por el llamador.
func (s *Store) reload(ctx context.Context, op string) error {
	list, err := s.api.List(ctx)
	if err != nil {
		s.fail(OpLoad, err)
		return err
	}
	s.mu.Lock()
	s.state.Records = list
	s.state.Last = Result{Op: op, OK: true}
	s.mu.Unlock()
	return nil
}

func (s *Store) fail(op string, err error) {
	res := Result{Op: op, Message: err.Error()}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		res.Status = apiErr.Status
		res.Message = apiErr.Message
	}
	s.log.Error().Err(err).Str("op", op).Int("status", res.Status).Msg("operación de clientes fallida")

	s.mu.Lock()
	s.state.Last = res
	s.mu.Unlock()
}

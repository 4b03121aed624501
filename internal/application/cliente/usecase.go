package cliente

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
	"github.com/jhoicas/clientes-api/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

// Config parámetros del caso de uso.
type Config struct {
	BcryptCost int
}

// UseCase casos de uso para clientes: listar, crear, actualizar y eliminar.
// No guarda estado propio; todo el estado compartido vive en el repositorio.
type UseCase struct {
	repo     repository.ClienteRepository
	validate *validator.Validate
	cost     int
	log      *logger.Logger
}

// NewUseCase construye el caso de uso con el puerto de persistencia.
func NewUseCase(repo repository.ClienteRepository, cfg Config, log *logger.Logger) *UseCase {
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{
		repo:     repo,
		validate: newValidator(),
		cost:     cfg.BcryptCost,
		log:      log.Named("clientes"),
	}
}

// List devuelve todos los clientes. Nunca devuelve nil sin error.
func (uc *UseCase) List(ctx context.Context) ([]*dto.ClienteResponse, error) {
	list, err := uc.repo.FindAll(ctx)
	if err != nil {
		uc.log.Error().Err(err).Msg("listar clientes")
		return nil, err
	}
	out := make([]*dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.ToClienteResponse(c))
	}
	return out, nil
}

// Create valida el formulario, hashea la credencial y persiste el cliente.
func (uc *UseCase) Create(ctx context.Context, in dto.ClienteFormData) (*dto.ClienteResponse, error) {
	in.Nombre = strings.TrimSpace(in.Nombre)
	in.Apellido = strings.TrimSpace(in.Apellido)
	in.NroDoc = strings.TrimSpace(in.NroDoc)
	in.Mail = strings.TrimSpace(in.Mail)
	if err := validar(uc.validate, in); err != nil {
		return nil, err
	}

	tipo := entity.TipoDocDNI
	if in.TipoDoc != "" {
		t, err := entity.ParseTipoDocumento(in.TipoDoc)
		if err != nil {
			return nil, &ValidationError{Campos: []string{"tipoDoc"}}
		}
		tipo = t
	}

	hash, err := uc.hashear(in.Contrasena)
	if err != nil {
		return nil, err
	}

	c := &entity.Cliente{
		Nombre:          in.Nombre,
		Apellido:        in.Apellido,
		TipoDoc:         tipo,
		NroDoc:          in.NroDoc,
		FechaNacimiento: in.FechaNacimiento,
		Mail:            in.Mail,
		ContrasenaHash:  hash,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		uc.log.Error().Err(err).Msg("crear cliente")
		return nil, err
	}
	uc.log.Info().Int64("id_cliente", c.ID).Msg("cliente creado")
	return dto.ToClienteResponse(c), nil
}

// Update aplica los campos presentes en in al cliente in.IDCliente.
// Devuelve domain.ErrMissingID si el id falta o es cero, sin tocar el almacén.
func (uc *UseCase) Update(ctx context.Context, in dto.UpdateClienteRequest) (*dto.ClienteResponse, error) {
	if in.IDCliente <= 0 {
		return nil, domain.ErrMissingID
	}
	in.Nombre = trimmed(in.Nombre)
	in.Apellido = trimmed(in.Apellido)
	in.NroDoc = trimmed(in.NroDoc)
	in.Mail = trimmed(in.Mail)
	if err := validar(uc.validate, in); err != nil {
		return nil, err
	}

	cambios := entity.ClienteCambios{
		Nombre:          in.Nombre,
		Apellido:        in.Apellido,
		NroDoc:          in.NroDoc,
		Mail:            in.Mail,
		FechaNacimiento: in.FechaNacimiento,
	}
	if in.FechaNacimiento != nil && in.FechaNacimiento.IsZero() {
		cambios.FechaNacimiento = nil
	}
	if in.TipoDoc != nil && *in.TipoDoc != "" {
		t, err := entity.ParseTipoDocumento(*in.TipoDoc)
		if err != nil {
			return nil, &ValidationError{Campos: []string{"tipoDoc"}}
		}
		cambios.TipoDoc = &t
	}
	if in.Contrasena != nil && *in.Contrasena != "" {
		hash, err := uc.hashear(*in.Contrasena)
		if err != nil {
			return nil, err
		}
		cambios.ContrasenaHash = &hash
	}

	c, err := uc.repo.Update(ctx, in.IDCliente, cambios)
	if err != nil {
		uc.log.Error().Err(err).Int64("id_cliente", in.IDCliente).Msg("actualizar cliente")
		return nil, err
	}
	uc.log.Info().Int64("id_cliente", c.ID).Msg("cliente actualizado")
	return dto.ToClienteResponse(c), nil
}

// Delete elimina el cliente id. Un id inexistente es un error del almacén, no un no-op.
func (uc *UseCase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.ErrMissingID
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.log.Error().Err(err).Int64("id_cliente", id).Msg("eliminar cliente")
		return err
	}
	uc.log.Info().Int64("id_cliente", id).Msg("cliente eliminado")
	return nil
}

func (uc *UseCase) hashear(contrasena string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(contrasena), uc.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", &ValidationError{Campos: []string{"contraseña"}}
		}
		return "", fmt.Errorf("hashear contraseña: %w", err)
	}
	return string(hash), nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

package team

import (
	"context"
	"time"

	"github.com/jhoicas/Negocios-api/internal/domain"
	"github.com/jhoicas/Negocios-api/internal/domain/authz"
	"github.com/jhoicas/Negocios-api/internal/domain/entity"
	"github.com/jhoicas/Negocios-api/internal/domain/repository"
)

// SessionInvalidator contrato mínimo hacia el Session Manager: al cambiar el
// rol o estado de un usuario sus snapshots dejan de valer. La interfaz evita
// el import circular.
type SessionInvalidator interface {
	InvalidateUser(userID string)
	EndAllForUser(ctx context.Context, userID string) error
}

// Team gestión de personal del negocio: listar, reasignar rol, suspender,
// reactivar y remover. Concurrencia entre dos administradores editando al
// mismo usuario: gana la última escritura, sin merge.
type Team struct {
	users      repository.UserRepository
	businesses repository.BusinessRepository
	sessions   SessionInvalidator
}

// NewTeam construye el caso de uso de personal.
func NewTeam(users repository.UserRepository, businesses repository.BusinessRepository, sessions SessionInvalidator) *Team {
	return &Team{users: users, businesses: businesses, sessions: sessions}
}

// ListStaff lista el personal del negocio con paginación.
func (t *Team) ListStaff(ctx context.Context, businessID string, limit, offset int) ([]*entity.User, error) {
	return t.users.ListByBusiness(ctx, businessID, limit, offset)
}

// ChangeRole reasigna el rol de un miembro. El rol debe pertenecer al
// vocabulario legal del tipo de negocio del tenant, el owner nunca cambia de
// rol, y los snapshots de sesión del afectado se invalidan de inmediato.
func (t *Team) ChangeRole(ctx context.Context, businessID, userID, role string) (*entity.User, error) {
	business, err := t.businesses.GetByID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, domain.ErrNotFound
	}
	user, err := t.userInBusiness(ctx, businessID, userID)
	if err != nil {
		return nil, err
	}
	if user.IsOwner {
		return nil, domain.ErrConflict // el rol del owner es inmutable
	}
	if !authz.AssignableRole(business.BusinessType, role) {
		return nil, domain.NewValidationError("role", "rol no válido para este tipo de negocio")
	}
	user.Role = role
	user.UpdatedAt = time.Now()
	if err := t.users.Update(ctx, user); err != nil {
		return nil, err
	}
	t.sessions.InvalidateUser(user.ID)
	return user, nil
}

// ChangeStatus suspende o reactiva a un miembro. Suspender cierra todas sus
// sesiones: el próximo Restore devolverá "re-autenticar", no una sesión con
// capacidades viejas.
func (t *Team) ChangeStatus(ctx context.Context, businessID, userID, status string) (*entity.User, error) {
	if status != entity.StatusActive && status != entity.StatusSuspended {
		return nil, domain.NewValidationError("status", "estado no permitido")
	}
	user, err := t.userInBusiness(ctx, businessID, userID)
	if err != nil {
		return nil, err
	}
	if user.IsOwner {
		return nil, domain.ErrConflict // el owner no se suspende
	}
	if user.Status == entity.StatusRemoved {
		return nil, domain.ErrConflict // removed es terminal
	}
	user.Status = status
	user.UpdatedAt = time.Now()
	if err := t.users.Update(ctx, user); err != nil {
		return nil, err
	}
	if status != entity.StatusActive {
		if err := t.sessions.EndAllForUser(ctx, user.ID); err != nil {
			return nil, err
		}
	}
	return user, nil
}

// Remove transiciona al miembro al estado terminal "removed". No es un
// borrado de fila: los registros históricos lo siguen referenciando, y la
// acción no tiene deshacer.
func (t *Team) Remove(ctx context.Context, businessID, userID string) error {
	user, err := t.userInBusiness(ctx, businessID, userID)
	if err != nil {
		return err
	}
	if user.IsOwner {
		return domain.ErrConflict
	}
	user.Status = entity.StatusRemoved
	user.UpdatedAt = time.Now()
	if err := t.users.Update(ctx, user); err != nil {
		return err
	}
	return t.sessions.EndAllForUser(ctx, user.ID)
}

// userInBusiness resuelve el usuario y verifica que pertenezca al tenant del
// llamador (aislamiento entre negocios).
func (t *Team) userInBusiness(ctx context.Context, businessID, userID string) (*entity.User, error) {
	user, err := t.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.BusinessID != businessID {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

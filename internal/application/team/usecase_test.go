package team_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Negocios-api/internal/application/team"
	"github.com/jhoicas/Negocios-api/internal/domain"
	"github.com/jhoicas/Negocios-api/internal/domain/authz"
	"github.com/jhoicas/Negocios-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type memUsers struct{ m map[string]*entity.User }

func (r *memUsers) Create(_ context.Context, u *entity.User) error { r.m[u.ID] = u; return nil }
func (r *memUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.m[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}
func (r *memUsers) GetByEmailAndBusiness(_ context.Context, _, _ string) (*entity.User, error) {
	return nil, nil
}
func (r *memUsers) GetOwner(_ context.Context, _ string) (*entity.User, error) { return nil, nil }
func (r *memUsers) Update(_ context.Context, u *entity.User) error {
	cp := *u
	r.m[u.ID] = &cp
	return nil
}
func (r *memUsers) ListByBusiness(_ context.Context, businessID string, _, _ int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.m {
		if u.BusinessID == businessID {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

type memBusinesses struct{ m map[string]*entity.Business }

func (r *memBusinesses) Create(_ context.Context, b *entity.Business) error { r.m[b.ID] = b; return nil }
func (r *memBusinesses) GetByID(_ context.Context, id string) (*entity.Business, error) {
	b, ok := r.m[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}
func (r *memBusinesses) GetByName(_ context.Context, _ string) (*entity.Business, error) {
	return nil, nil
}
func (r *memBusinesses) Update(_ context.Context, b *entity.Business) error    { r.m[b.ID] = b; return nil }
func (r *memBusinesses) UpdateSecrets(_ context.Context, _, _, _ string) error { return nil }
func (r *memBusinesses) List(_ context.Context, _, _ int) ([]*entity.Business, error) {
	return nil, nil
}

// spyInvalidator registra las invalidaciones que el caso de uso dispara.
type spyInvalidator struct {
	invalidated []string
	ended       []string
}

func (s *spyInvalidator) InvalidateUser(userID string) { s.invalidated = append(s.invalidated, userID) }
func (s *spyInvalidator) EndAllForUser(_ context.Context, userID string) error {
	s.ended = append(s.ended, userID)
	return nil
}

func fixture() (*team.Team, *memUsers, *spyInvalidator) {
	business := &entity.Business{ID: "b-1", BusinessType: entity.TypeManufacturer, Status: entity.StatusActive}
	owner := &entity.User{ID: "u-owner", BusinessID: "b-1", Role: authz.RoleOwner, IsOwner: true, Status: entity.StatusActive}
	staff := &entity.User{ID: "u-staff", BusinessID: "b-1", Role: authz.RoleStaff, Status: entity.StatusActive}
	ajeno := &entity.User{ID: "u-ajeno", BusinessID: "b-2", Role: authz.RoleStaff, Status: entity.StatusActive}

	users := &memUsers{m: map[string]*entity.User{owner.ID: owner, staff.ID: staff, ajeno.ID: ajeno}}
	businesses := &memBusinesses{m: map[string]*entity.Business{business.ID: business}}
	spy := &spyInvalidator{}
	return team.NewTeam(users, businesses, spy), users, spy
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Reasignar a un rol legal del tipo invalida las sesiones del afectado.
func TestChangeRole_LegalInvalidaSesiones(t *testing.T) {
	tm, users, spy := fixture()

	user, err := tm.ChangeRole(context.Background(), "b-1", "u-staff", authz.RoleProduction)
	require.NoError(t, err)
	assert.Equal(t, authz.RoleProduction, user.Role)
	assert.Equal(t, authz.RoleProduction, users.m["u-staff"].Role)
	assert.Contains(t, spy.invalidated, "u-staff",
		"el cambio de rol debe invalidar los snapshots de sesión")
}

// Rol ilegal para el tipo del tenant → ValidationError, sin escribir nada.
func TestChangeRole_IlegalParaElTipo(t *testing.T) {
	tm, users, _ := fixture()

	_, err := tm.ChangeRole(context.Background(), "b-1", "u-staff", authz.RoleCashier) // cashier no existe en manufacturer
	_, ok := domain.IsValidation(err)
	require.True(t, ok)
	assert.Equal(t, authz.RoleStaff, users.m["u-staff"].Role, "el rol no debe cambiar")
}

// El rol del owner es inmutable y el owner no se suspende ni se remueve.
func TestOwner_Inmutable(t *testing.T) {
	tm, _, _ := fixture()

	_, err := tm.ChangeRole(context.Background(), "b-1", "u-owner", authz.RoleManager)
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = tm.ChangeStatus(context.Background(), "b-1", "u-owner", entity.StatusSuspended)
	assert.ErrorIs(t, err, domain.ErrConflict)

	err = tm.Remove(context.Background(), "b-1", "u-owner")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// Aislamiento entre tenants: un usuario de otro negocio es "no encontrado".
func TestChangeRole_UsuarioDeOtroNegocio(t *testing.T) {
	tm, _, _ := fixture()
	_, err := tm.ChangeRole(context.Background(), "b-1", "u-ajeno", authz.RoleSales)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// Suspender cierra todas las sesiones del afectado.
func TestChangeStatus_SuspenderCierraSesiones(t *testing.T) {
	tm, users, spy := fixture()

	user, err := tm.ChangeStatus(context.Background(), "b-1", "u-staff", entity.StatusSuspended)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusSuspended, user.Status)
	assert.Contains(t, spy.ended, "u-staff")

	// Reactivar no cierra sesiones (no hay ninguna que cerrar).
	spy.ended = nil
	_, err = tm.ChangeStatus(context.Background(), "b-1", "u-staff", entity.StatusActive)
	require.NoError(t, err)
	assert.Empty(t, spy.ended)
	assert.Equal(t, entity.StatusActive, users.m["u-staff"].Status)
}

// Remover es terminal: queda la fila con estado removed y no hay vuelta.
func TestRemove_EstadoTerminal(t *testing.T) {
	tm, users, spy := fixture()

	require.NoError(t, tm.Remove(context.Background(), "b-1", "u-staff"))
	assert.Equal(t, entity.StatusRemoved, users.m["u-staff"].Status)
	assert.Contains(t, spy.ended, "u-staff")

	// Un removido no se reactiva.
	_, err := tm.ChangeStatus(context.Background(), "b-1", "u-staff", entity.StatusActive)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

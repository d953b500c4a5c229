package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appsession "github.com/jhoicas/Negocios-api/internal/application/session"
	"github.com/jhoicas/Negocios-api/internal/domain"
	"github.com/jhoicas/Negocios-api/internal/domain/authz"
	"github.com/jhoicas/Negocios-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memSessionRepo struct {
	m      map[string]*entity.SessionRecord
	getErr error // simula fallo de lectura del storage
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{m: map[string]*entity.SessionRecord{}}
}

func (r *memSessionRepo) Create(_ context.Context, s *entity.SessionRecord) error {
	cp := *s
	r.m[s.ID] = &cp
	return nil
}
func (r *memSessionRepo) GetByID(_ context.Context, id string) (*entity.SessionRecord, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	s, ok := r.m[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}
func (r *memSessionRepo) Delete(_ context.Context, id string) error {
	delete(r.m, id)
	return nil
}
func (r *memSessionRepo) DeleteByUser(_ context.Context, userID string) error {
	for id, s := range r.m {
		if s.UserID == userID {
			delete(r.m, id)
		}
	}
	return nil
}

type memUserStore struct{ m map[string]*entity.User }

func (r *memUserStore) Create(_ context.Context, u *entity.User) error { r.m[u.ID] = u; return nil }
func (r *memUserStore) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.m[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}
func (r *memUserStore) GetByEmailAndBusiness(_ context.Context, _, _ string) (*entity.User, error) {
	return nil, nil
}
func (r *memUserStore) GetOwner(_ context.Context, _ string) (*entity.User, error) { return nil, nil }
func (r *memUserStore) Update(_ context.Context, u *entity.User) error             { r.m[u.ID] = u; return nil }
func (r *memUserStore) ListByBusiness(_ context.Context, _ string, _, _ int) ([]*entity.User, error) {
	return nil, nil
}

type memBusinessStore struct{ m map[string]*entity.Business }

func (r *memBusinessStore) Create(_ context.Context, b *entity.Business) error { r.m[b.ID] = b; return nil }
func (r *memBusinessStore) GetByID(_ context.Context, id string) (*entity.Business, error) {
	b, ok := r.m[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}
func (r *memBusinessStore) GetByName(_ context.Context, _ string) (*entity.Business, error) {
	return nil, nil
}
func (r *memBusinessStore) Update(_ context.Context, b *entity.Business) error { r.m[b.ID] = b; return nil }
func (r *memBusinessStore) UpdateSecrets(_ context.Context, _, _, _ string) error { return nil }
func (r *memBusinessStore) List(_ context.Context, _, _ int) ([]*entity.Business, error) {
	return nil, nil
}

func fixture() (*appsession.Manager, *memSessionRepo, *memUserStore, *memBusinessStore, *entity.User, *entity.Business) {
	business := &entity.Business{
		ID:           "b-1",
		Name:         "Acme Retail",
		BusinessType: entity.TypeRetailer,
		Status:       entity.StatusActive,
	}
	user := &entity.User{
		ID:         "u-1",
		BusinessID: "b-1",
		Email:      "gerente@acme.co",
		Role:       authz.RoleManager,
		Status:     entity.StatusActive,
	}
	sessions := newMemSessionRepo()
	users := &memUserStore{m: map[string]*entity.User{user.ID: user}}
	businesses := &memBusinessStore{m: map[string]*entity.Business{business.ID: business}}
	mgr := appsession.NewManager(sessions, users, businesses, time.Hour)
	return mgr, sessions, users, businesses, user, business
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del Session Manager
// ──────────────────────────────────────────────────────────────────────────────

func TestStart_CalculaCapacidadesAlCrear(t *testing.T) {
	mgr, _, _, _, user, business := fixture()

	sess, err := mgr.Start(context.Background(), user, business)
	require.NoError(t, err)
	assert.Equal(t, user.ID, sess.UserID)
	assert.Equal(t, business.ID, sess.BusinessID)
	assert.True(t, sess.Capabilities.Has(authz.CapManageTeam),
		"manager de retailer debe tener manage_team en el snapshot")
	assert.False(t, sess.Capabilities.Has(authz.CapFinancialReports))
}

// Idempotencia: dos Restore seguidos sin Start/End intermedio devuelven
// sesiones equivalentes (mismo usuario, negocio y capacidades).
func TestRestore_IdempotenteSinCambios(t *testing.T) {
	mgr, _, _, _, user, business := fixture()
	sess, err := mgr.Start(context.Background(), user, business)
	require.NoError(t, err)

	r1, err := mgr.Restore(context.Background(), sess.ID)
	require.NoError(t, err)
	r2, err := mgr.Restore(context.Background(), sess.ID)
	require.NoError(t, err)

	assert.Equal(t, r1.UserID, r2.UserID)
	assert.Equal(t, r1.BusinessID, r2.BusinessID)
	assert.Equal(t, r1.Capabilities, r2.Capabilities)
}

// Restore sobrevive reinicios: un manager nuevo (cache frío) resuelve la
// sesión persistida por el anterior.
func TestRestore_SobreviveReinicio(t *testing.T) {
	mgr, sessions, users, businesses, user, business := fixture()
	sess, err := mgr.Start(context.Background(), user, business)
	require.NoError(t, err)

	mgr2 := appsession.NewManager(sessions, users, businesses, time.Hour)
	restored, err := mgr2.Restore(context.Background(), sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.UserID, restored.UserID)
	assert.Equal(t, sess.Capabilities, restored.Capabilities)
}

// Usuario suspendido a mitad de sesión: el próximo Restore devuelve huérfana
// — re-autenticar — nunca una sesión con capacidades viejas.
func TestRestore_UsuarioSuspendidoDescarta(t *testing.T) {
	mgr, _, users, _, user, business := fixture()
	sess, err := mgr.Start(context.Background(), user, business)
	require.NoError(t, err)

	suspendido := *user
	suspendido.Status = entity.StatusSuspended
	users.m[user.ID] = &suspendido

	_, err = mgr.Restore(context.Background(), sess.ID)
	assert.ErrorIs(t, err, domain.ErrOrphanedSession)
}

// Referencias colgantes (usuario o negocio borrado del storage) → huérfana y
// el registro persistido se descarta.
func TestRestore_ReferenciaColganteDescarta(t *testing.T) {
	mgr, sessions, users, _, user, business := fixture()
	sess, err := mgr.Start(context.Background(), user, business)
	require.NoError(t, err)

	delete(users.m, user.ID)
	_, err = mgr.Restore(context.Background(), sess.ID)
	assert.ErrorIs(t, err, domain.ErrOrphanedSession)
	assert.Empty(t, sessions.m, "la sesión huérfana debe descartarse del storage")
}

// Fallo transitorio de lectura del storage: mismo trato que huérfana (el
// usuario vuelve a iniciar sesión, jamás ve un crash).
func TestRestore_FalloDeLecturaEsHuerfana(t *testing.T) {
	mgr, sessions, _, _, user, business := fixture()
	sess, err := mgr.Start(context.Background(), user, business)
	require.NoError(t, err)

	sessions.getErr = assert.AnError
	_, err = mgr.Restore(context.Background(), sess.ID)
	assert.ErrorIs(t, err, domain.ErrOrphanedSession)
}

func TestRestore_SesionVencidaDescarta(t *testing.T) {
	mgr, sessions, _, _, user, business := fixture()
	sess, err := mgr.Start(context.Background(), user, business)
	require.NoError(t, err)

	rec := sessions.m[sess.ID]
	rec.ExpiresAt = time.Now().Add(-time.Minute)

	_, err = mgr.Restore(context.Background(), sess.ID)
	assert.ErrorIs(t, err, domain.ErrOrphanedSession)
}

// Invalidación por cambio de rol: el snapshot viejo no sobrevive a una
// degradación del usuario.
func TestInvalidateUser_RecalculaCapacidades(t *testing.T) {
	mgr, _, users, _, user, business := fixture()
	sess, err := mgr.Start(context.Background(), user, business)
	require.NoError(t, err)
	require.True(t, sess.Capabilities.Has(authz.CapManageTeam))

	degradado := *user
	degradado.Role = authz.RoleStaff
	users.m[user.ID] = &degradado
	mgr.InvalidateUser(user.ID)

	restored, err := mgr.Restore(context.Background(), sess.ID)
	require.NoError(t, err)
	assert.Equal(t, authz.RoleStaff, restored.Role)
	assert.False(t, restored.Capabilities.Has(authz.CapManageTeam),
		"tras la degradación el snapshot debe recalcularse")
}

// Invalidación por cambio de tipo de negocio: un rol que dejó de ser legal
// degrada a capacidades vacías, nunca a "todas".
func TestInvalidateBusiness_RolIlegalDegradaAVacio(t *testing.T) {
	mgr, _, users, businesses, user, business := fixture()
	cajero := *user
	cajero.Role = authz.RoleCashier
	users.m[user.ID] = &cajero

	sess, err := mgr.Start(context.Background(), &cajero, business)
	require.NoError(t, err)
	require.True(t, sess.Capabilities.Has(authz.CapPOSSales))

	cambiado := *business
	cambiado.BusinessType = entity.TypeService // cashier no es legal en service
	businesses.m[business.ID] = &cambiado
	mgr.InvalidateBusiness(business.ID)

	restored, err := mgr.Restore(context.Background(), sess.ID)
	require.NoError(t, err)
	assert.Empty(t, restored.Capabilities)
	assert.False(t, authz.Allow(authz.RequireCapability(authz.CapPOSSales), restored))
}

func TestEnd_DescartaSesion(t *testing.T) {
	mgr, _, _, _, user, business := fixture()
	sess, err := mgr.Start(context.Background(), user, business)
	require.NoError(t, err)

	require.NoError(t, mgr.End(context.Background(), sess.ID))
	_, err = mgr.Restore(context.Background(), sess.ID)
	assert.ErrorIs(t, err, domain.ErrOrphanedSession)
}

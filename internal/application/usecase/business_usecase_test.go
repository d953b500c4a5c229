package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Negocios-api/internal/application/dto"
	"github.com/jhoicas/Negocios-api/internal/application/usecase"
	"github.com/jhoicas/Negocios-api/internal/domain"
	"github.com/jhoicas/Negocios-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

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
func (r *memBusinesses) Update(_ context.Context, b *entity.Business) error {
	cp := *b
	r.m[b.ID] = &cp
	return nil
}
func (r *memBusinesses) UpdateSecrets(_ context.Context, _, _, _ string) error { return nil }
func (r *memBusinesses) List(_ context.Context, _, _ int) ([]*entity.Business, error) {
	return nil, nil
}

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
func (r *memUsers) GetOwner(_ context.Context, businessID string) (*entity.User, error) {
	for _, u := range r.m {
		if u.BusinessID == businessID && u.IsOwner {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}
func (r *memUsers) Update(_ context.Context, u *entity.User) error { r.m[u.ID] = u; return nil }
func (r *memUsers) ListByBusiness(_ context.Context, _ string, _, _ int) ([]*entity.User, error) {
	return nil, nil
}

// spyBusinessInvalidator registra qué negocios invalidó el caso de uso.
type spyBusinessInvalidator struct{ invalidated []string }

func (s *spyBusinessInvalidator) InvalidateBusiness(businessID string) {
	s.invalidated = append(s.invalidated, businessID)
}

func businessFixture() (*usecase.BusinessUseCase, *memBusinesses, *spyBusinessInvalidator) {
	businesses := &memBusinesses{m: map[string]*entity.Business{
		"b-1": {ID: "b-1", Name: "Acme Retail", BusinessType: entity.TypeRetailer, Status: entity.StatusActive},
	}}
	users := &memUsers{m: map[string]*entity.User{
		"u-owner": {ID: "u-owner", BusinessID: "b-1", Name: "Ana Propietaria", Email: "ana@acme.co", IsOwner: true},
		"u-staff": {ID: "u-staff", BusinessID: "b-1", Name: "Pedro Staff", Email: "pedro@acme.co"},
	}}
	spy := &spyBusinessInvalidator{}
	return usecase.NewBusinessUseCase(businesses, users, spy), businesses, spy
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// El perfil incluye el contacto del dueño (nunca los hashes de secretos).
func TestBusinessGet_IncluyeContactoDelOwner(t *testing.T) {
	uc, _, _ := businessFixture()

	out, err := uc.Get(context.Background(), "b-1")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "Acme Retail", out.Name)
	assert.Equal(t, "Ana Propietaria", out.OwnerName)
	assert.Equal(t, "ana@acme.co", out.OwnerEmail)
}

func TestBusinessRename_NombreVacioFalla(t *testing.T) {
	uc, businesses, _ := businessFixture()

	_, err := uc.Rename(context.Background(), "b-1", dto.RenameBusinessRequest{Name: ""})
	_, ok := domain.IsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "Acme Retail", businesses.m["b-1"].Name, "el nombre no debe cambiar")
}

// Cambiar el tipo invalida los snapshots de sesión de todo el tenant.
func TestBusinessChangeType_InvalidaSesionesDelNegocio(t *testing.T) {
	uc, businesses, spy := businessFixture()

	out, err := uc.ChangeType(context.Background(), "b-1", entity.TypeService)
	require.NoError(t, err)
	assert.Equal(t, entity.TypeService, out.BusinessType)
	assert.Equal(t, entity.TypeService, businesses.m["b-1"].BusinessType)
	assert.Contains(t, spy.invalidated, "b-1",
		"el cambio de tipo debe descartar los snapshots de todo el negocio")
}

func TestBusinessChangeType_TipoDesconocidoFalla(t *testing.T) {
	uc, businesses, spy := businessFixture()

	_, err := uc.ChangeType(context.Background(), "b-1", "franquicia")
	_, ok := domain.IsValidation(err)
	require.True(t, ok)
	assert.Equal(t, entity.TypeRetailer, businesses.m["b-1"].BusinessType)
	assert.Empty(t, spy.invalidated)
}

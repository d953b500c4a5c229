package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Negocios-api/internal/application/dto"
	"github.com/jhoicas/Negocios-api/internal/domain"
	"github.com/jhoicas/Negocios-api/internal/domain/entity"
	"github.com/jhoicas/Negocios-api/internal/domain/repository"
)

// SessionInvalidator contrato hacia el Session Manager para descartar los
// snapshots de todo un negocio cuando cambia su tipo.
type SessionInvalidator interface {
	InvalidateBusiness(businessID string)
}

// BusinessUseCase perfil y ajustes del negocio.
type BusinessUseCase struct {
	repo     repository.BusinessRepository
	users    repository.UserRepository
	sessions SessionInvalidator
}

// NewBusinessUseCase construye el caso de uso.
func NewBusinessUseCase(repo repository.BusinessRepository, users repository.UserRepository, sessions SessionInvalidator) *BusinessUseCase {
	return &BusinessUseCase{repo: repo, users: users, sessions: sessions}
}

// Get obtiene el perfil del negocio (sin hashes), incluyendo el contacto del
// dueño: el mensaje de acceso restringido manda al personal a hablar con él.
func (uc *BusinessUseCase) Get(ctx context.Context, businessID string) (*dto.BusinessResponse, error) {
	business, err := uc.repo.GetByID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, nil
	}
	out := ToBusinessResponse(business)
	owner, err := uc.users.GetOwner(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if owner != nil {
		out.OwnerName = owner.Name
		out.OwnerEmail = owner.Email
	}
	return out, nil
}

// Rename cambia el nombre del negocio.
func (uc *BusinessUseCase) Rename(ctx context.Context, businessID string, in dto.RenameBusinessRequest) (*dto.BusinessResponse, error) {
	if in.Name == "" {
		return nil, domain.NewValidationError("name", "el nombre es requerido")
	}
	business, err := uc.repo.GetByID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, domain.ErrNotFound
	}
	business.Name = in.Name
	business.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, business); err != nil {
		return nil, err
	}
	return ToBusinessResponse(business), nil
}

// ChangeType cambia el tipo de negocio del tenant. Los vocabularios de rol y
// los mapeos de capacidades cambian con el tipo, así que se descartan los
// snapshots de sesión de todo el negocio: el próximo Restore de cada usuario
// recalcula — y un rol que dejó de ser legal degrada a capacidades vacías.
func (uc *BusinessUseCase) ChangeType(ctx context.Context, businessID, newType string) (*dto.BusinessResponse, error) {
	if !entity.ValidBusinessType(newType) {
		return nil, domain.NewValidationError("business_type", "tipo de negocio desconocido")
	}
	business, err := uc.repo.GetByID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, domain.ErrNotFound
	}
	business.BusinessType = newType
	business.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, business); err != nil {
		return nil, err
	}
	uc.sessions.InvalidateBusiness(business.ID)
	return ToBusinessResponse(business), nil
}

// ToBusinessResponse mapea la entidad al DTO público (nunca expone hashes).
func ToBusinessResponse(b *entity.Business) *dto.BusinessResponse {
	if b == nil {
		return nil
	}
	return &dto.BusinessResponse{
		ID:           b.ID,
		Name:         b.Name,
		BusinessType: b.BusinessType,
		Status:       b.Status,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

package repository

import (
	"context"

	"github.com/jhoicas/Negocios-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Nunca hay borrado físico: remover personal es una transición de estado a
// "removed" vía Update (los registros históricos lo siguen referenciando).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmailAndBusiness(ctx context.Context, email, businessID string) (*entity.User, error)
	GetOwner(ctx context.Context, businessID string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	ListByBusiness(ctx context.Context, businessID string, limit, offset int) ([]*entity.User, error)
}

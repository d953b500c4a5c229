package repository

import (
	"context"

	"github.com/jhoicas/Negocios-api/internal/domain/entity"
)

// BusinessRepository define el puerto de persistencia para Business (DIP).
// La implementación vive en infrastructure. Las lecturas devuelven (nil, nil)
// cuando el registro no existe; error solo ante fallos de infraestructura.
type BusinessRepository interface {
	Create(ctx context.Context, b *entity.Business) error
	GetByID(ctx context.Context, id string) (*entity.Business, error)
	GetByName(ctx context.Context, name string) (*entity.Business, error)
	Update(ctx context.Context, b *entity.Business) error
	UpdateSecrets(ctx context.Context, id, ownerSecretHash, staffSecretHash string) error
	List(ctx context.Context, limit, offset int) ([]*entity.Business, error)
}

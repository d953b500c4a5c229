package repository

import (
	"context"

	"github.com/jhoicas/Negocios-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, p *entity.Product) error
	GetByID(ctx context.Context, businessID, id string) (*entity.Product, error)
	GetBySKU(ctx context.Context, businessID, sku string) (*entity.Product, error)
	Update(ctx context.Context, p *entity.Product) error
	Delete(ctx context.Context, businessID, id string) error
	ListByBusiness(ctx context.Context, businessID string, limit, offset int) ([]*entity.Product, error)
}

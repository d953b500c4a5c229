package repository

import (
	"context"

	"github.com/jhoicas/Negocios-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer (DIP).
type CustomerRepository interface {
	Create(ctx context.Context, c *entity.Customer) error
	GetByID(ctx context.Context, businessID, id string) (*entity.Customer, error)
	Update(ctx context.Context, c *entity.Customer) error
	Delete(ctx context.Context, businessID, id string) error
	ListByBusiness(ctx context.Context, businessID string, limit, offset int) ([]*entity.Customer, error)
}

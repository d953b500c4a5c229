package repository

import (
	"context"

	"github.com/jhoicas/Negocios-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// OrderRepository define el puerto de persistencia para Order (DIP).
type OrderRepository interface {
	Create(ctx context.Context, o *entity.Order, items []*entity.OrderItem) error
	GetByID(ctx context.Context, businessID, id string) (*entity.Order, []*entity.OrderItem, error)
	UpdateStatus(ctx context.Context, businessID, id, status string) error
	ListByBusiness(ctx context.Context, businessID string, limit, offset int) ([]*entity.Order, error)
}

// AnalyticsRepository agregados de solo lectura para el dashboard.
type AnalyticsRepository interface {
	CountsByBusiness(ctx context.Context, businessID string) (products, customers, orders int64, err error)
	RevenueByStatus(ctx context.Context, businessID string) (map[string]decimal.Decimal, error)
}

package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Negocios-api/internal/application/dto"
	"github.com/jhoicas/Negocios-api/internal/domain/entity"
	"github.com/jhoicas/Negocios-api/internal/domain/repository"
)

// DashboardUseCase agregados del tablero. Los conteos básicos van a toda
// pantalla de analítica; los montos por estado solo al resumen financiero.
type DashboardUseCase struct {
	repo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// Summary conteos básicos del negocio (analítica básica).
func (uc *DashboardUseCase) Summary(ctx context.Context, businessID string) (*dto.DashboardResponse, error) {
	products, customers, orders, err := uc.repo.CountsByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardResponse{Products: products, Customers: customers, Orders: orders}, nil
}

// Financial resumen financiero: conteos más ingresos por estado de orden.
func (uc *DashboardUseCase) Financial(ctx context.Context, businessID string) (*dto.DashboardResponse, error) {
	out, err := uc.Summary(ctx, businessID)
	if err != nil {
		return nil, err
	}
	revenue, err := uc.repo.RevenueByStatus(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if revenue == nil {
		revenue = map[string]decimal.Decimal{entity.OrderPaid: decimal.Zero}
	}
	out.Revenue = revenue
	return out, nil
}

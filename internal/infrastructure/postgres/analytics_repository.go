package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Negocios-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo agregados de solo lectura para el dashboard.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// CountsByBusiness retorna conteos de productos, clientes y órdenes del negocio.
func (r *AnalyticsRepo) CountsByBusiness(ctx context.Context, businessID string) (products, customers, orders int64, err error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM products  WHERE business_id = $1),
			(SELECT COUNT(*) FROM customers WHERE business_id = $1),
			(SELECT COUNT(*) FROM orders    WHERE business_id = $1)`
	if err = r.q.QueryRow(ctx, query, businessID).Scan(&products, &customers, &orders); err != nil {
		return 0, 0, 0, fmt.Errorf("counts by business: %w", err)
	}
	return products, customers, orders, nil
}

// RevenueByStatus retorna la suma de totales de órdenes agrupada por estado.
func (r *AnalyticsRepo) RevenueByStatus(ctx context.Context, businessID string) (map[string]decimal.Decimal, error) {
	query := `
		SELECT status, COALESCE(SUM(total), 0)
		FROM orders
		WHERE business_id = $1
		GROUP BY status`
	rows, err := r.q.Query(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("revenue by status: %w", err)
	}
	defer rows.Close()

	out := make(map[string]decimal.Decimal)
	for rows.Next() {
		var status string
		var total decimal.Decimal
		if err := rows.Scan(&status, &total); err != nil {
			return nil, fmt.Errorf("scan revenue row: %w", err)
		}
		out[status] = total
	}
	return out, rows.Err()
}

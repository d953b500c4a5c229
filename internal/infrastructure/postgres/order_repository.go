package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Negocios-api/internal/domain/entity"
	"github.com/jhoicas/Negocios-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
// Necesita el pool (no un Querier) porque Create inserta orden y líneas
// dentro de una misma transacción.
type OrderRepo struct {
	pool *pgxpool.Pool
}

// NewOrderRepository construye el adaptador.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

const orderColumns = `id, business_id, customer_id, created_by, status, total, created_at, updated_at`

// Create persiste la orden y sus líneas atómicamente.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order, items []*entity.OrderItem) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	orderQuery := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = tx.Exec(ctx, orderQuery,
		o.ID, o.BusinessID, o.CustomerID, o.CreatedBy, o.Status, o.Total, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	itemQuery := `
		INSERT INTO order_items (id, order_id, product_id, quantity, unit_price, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for _, it := range items {
		if _, err := tx.Exec(ctx, itemQuery,
			it.ID, it.OrderID, it.ProductID, it.Quantity, it.UnitPrice, it.Subtotal,
		); err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// GetByID obtiene orden y líneas del negocio. (nil, nil, nil) si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, businessID, id string) (*entity.Order, []*entity.OrderItem, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE business_id = $1 AND id = $2`
	var o entity.Order
	err := r.pool.QueryRow(ctx, query, businessID, id).Scan(
		&o.ID, &o.BusinessID, &o.CustomerID, &o.CreatedBy, &o.Status, &o.Total, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("get order: %w", err)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, order_id, product_id, quantity, unit_price, subtotal FROM order_items WHERE order_id = $1 ORDER BY id`,
		o.ID,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()

	var items []*entity.OrderItem
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.UnitPrice, &it.Subtotal); err != nil {
			return nil, nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}
	return &o, items, nil
}

// UpdateStatus cambia el estado de la orden del negocio.
func (r *OrderRepo) UpdateStatus(ctx context.Context, businessID, id, status string) error {
	query := `UPDATE orders SET status = $3, updated_at = now() WHERE business_id = $1 AND id = $2`
	if _, err := r.pool.Exec(ctx, query, businessID, id, status); err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}

// ListByBusiness lista órdenes del negocio con paginación.
func (r *OrderRepo) ListByBusiness(ctx context.Context, businessID string, limit, offset int) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE business_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, query, businessID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.BusinessID, &o.CustomerID, &o.CreatedBy, &o.Status, &o.Total, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

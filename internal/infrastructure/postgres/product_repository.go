package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Negocios-api/internal/domain"
	"github.com/jhoicas/Negocios-api/internal/domain/entity"
	"github.com/jhoicas/Negocios-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, business_id, sku, name, description, price, cost, stock, created_at, updated_at`

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.BusinessID, p.SKU, p.Name, p.Description, p.Price, p.Cost, p.Stock,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto del negocio por ID. (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, businessID, id string) (*entity.Product, error) {
	return r.scanOne(ctx, `SELECT `+productColumns+` FROM products WHERE business_id = $1 AND id = $2`, businessID, id)
}

// GetBySKU obtiene un producto del negocio por SKU.
func (r *ProductRepo) GetBySKU(ctx context.Context, businessID, sku string) (*entity.Product, error) {
	return r.scanOne(ctx, `SELECT `+productColumns+` FROM products WHERE business_id = $1 AND sku = $2`, businessID, sku)
}

func (r *ProductRepo) scanOne(ctx context.Context, query string, args ...any) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&p.ID, &p.BusinessID, &p.SKU, &p.Name, &p.Description, &p.Price, &p.Cost, &p.Stock,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update actualiza un producto del negocio.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products SET name = $3, description = $4, price = $5, cost = $6, stock = $7, updated_at = $8
		WHERE business_id = $1 AND id = $2`
	_, err := r.q.Exec(ctx, query,
		p.BusinessID, p.ID, p.Name, p.Description, p.Price, p.Cost, p.Stock, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina un producto del negocio.
func (r *ProductRepo) Delete(ctx context.Context, businessID, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM products WHERE business_id = $1 AND id = $2`, businessID, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// ListByBusiness lista productos del negocio con paginación.
func (r *ProductRepo) ListByBusiness(ctx context.Context, businessID string, limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE business_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, businessID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.BusinessID, &p.SKU, &p.Name, &p.Description, &p.Price, &p.Cost, &p.Stock, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

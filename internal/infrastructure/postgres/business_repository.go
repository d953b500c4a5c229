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

var _ repository.BusinessRepository = (*BusinessRepo)(nil)

// BusinessRepo implementación del puerto BusinessRepository sobre PostgreSQL.
type BusinessRepo struct {
	q Querier
}

// NewBusinessRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBusinessRepository(q Querier) *BusinessRepo {
	return &BusinessRepo{q: q}
}

const businessColumns = `id, name, business_type, owner_secret_hash, staff_secret_hash, status, created_at, updated_at`

// Create persiste un nuevo negocio.
func (r *BusinessRepo) Create(ctx context.Context, b *entity.Business) error {
	query := `
		INSERT INTO businesses (` + businessColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		b.ID, b.Name, b.BusinessType, b.OwnerSecretHash, b.StaffSecretHash, b.Status,
		b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert business: %w", err)
	}
	return nil
}

// GetByID obtiene un negocio por ID. (nil, nil) si no existe.
func (r *BusinessRepo) GetByID(ctx context.Context, id string) (*entity.Business, error) {
	return r.scanOne(ctx, `SELECT `+businessColumns+` FROM businesses WHERE id = $1`, id)
}

// GetByName obtiene un negocio por nombre exacto.
func (r *BusinessRepo) GetByName(ctx context.Context, name string) (*entity.Business, error) {
	return r.scanOne(ctx, `SELECT `+businessColumns+` FROM businesses WHERE name = $1 LIMIT 1`, name)
}

func (r *BusinessRepo) scanOne(ctx context.Context, query string, arg any) (*entity.Business, error) {
	var b entity.Business
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&b.ID, &b.Name, &b.BusinessType, &b.OwnerSecretHash, &b.StaffSecretHash, &b.Status,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get business: %w", err)
	}
	return &b, nil
}

// Update actualiza nombre, tipo y estado del negocio (no toca los hashes).
func (r *BusinessRepo) Update(ctx context.Context, b *entity.Business) error {
	query := `
		UPDATE businesses SET name = $2, business_type = $3, status = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, b.ID, b.Name, b.BusinessType, b.Status, b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update business: %w", err)
	}
	return nil
}

// UpdateSecrets reemplaza ambos hashes de secretos en una sola escritura.
func (r *BusinessRepo) UpdateSecrets(ctx context.Context, id, ownerSecretHash, staffSecretHash string) error {
	query := `
		UPDATE businesses SET owner_secret_hash = $2, staff_secret_hash = $3, updated_at = NOW()
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, id, ownerSecretHash, staffSecretHash)
	if err != nil {
		return fmt.Errorf("update business secrets: %w", err)
	}
	return nil
}

// List lista negocios con paginación.
func (r *BusinessRepo) List(ctx context.Context, limit, offset int) ([]*entity.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list businesses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Business
	for rows.Next() {
		var b entity.Business
		if err := rows.Scan(&b.ID, &b.Name, &b.BusinessType, &b.OwnerSecretHash, &b.StaffSecretHash, &b.Status, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan business: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

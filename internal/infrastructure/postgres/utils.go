package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Código SQLSTATE de unique_violation. Los índices únicos que nos importan son
// businesses.name y (users.business_id, users.email).
const codeUniqueViolation = "23505"

// isUniqueViolation informa si err proviene de una violación de índice único;
// los repositorios la traducen a domain.ErrDuplicate.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}

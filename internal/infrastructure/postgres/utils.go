package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// Código SQLSTATE de unique_violation.
const uniqueViolationCode = "23505"

// isUniqueViolation detecta violaciones de constraint único para que los repos
// las traduzcan a sentinelas del dominio (email de users, sku de products).
// El fallback por substring cubre errores envueltos por drivers o pools que
// no conservan el *pgconn.PgError en la cadena.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolationCode
	}
	return strings.Contains(err.Error(), uniqueViolationCode)
}

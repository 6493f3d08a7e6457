package postgres

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	return hasCode(err, "23505")
}

// isForeignKeyViolation verifica si un error es una violación de clave foránea (23503).
// En DELETE significa que la fila está referenciada; en INSERT/UPDATE que la referencia no existe.
func isForeignKeyViolation(err error) bool {
	return hasCode(err, "23503")
}

// isOutOfRange verifica si un valor excede el rango de la columna (22003), ej. quantity INTEGER.
func isOutOfRange(err error) bool {
	return hasCode(err, "22003")
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}

// validID los IDs son UUID; cualquier otro valor no puede existir en la base.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// likePattern arma el patrón ILIKE de subcadena escapando los comodines del usuario.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}

package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/metricmind/habit-health-api/internal/middlewares"
)

// ErrUniqueViolation is returned when an insert or update breaks a unique
// constraint, e.g. a duplicate email or a duplicate habit entry date.
var ErrUniqueViolation = errors.New("unique constraint violation")

// translateError maps driver-level constraint failures to sentinel errors.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return ErrUniqueViolation
	}
	return err
}

// ext returns the transaction bound to the request context when present,
// falling back to the repository's database handle.
func ext(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return db
}

// squash collapses a multi-line query into a single log line.
func squash(query string) string {
	return strings.Join(strings.Fields(query), " ")
}

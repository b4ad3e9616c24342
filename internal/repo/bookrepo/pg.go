package bookrepo

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// classify folds well-known Postgres error codes into the package's
// sentinel errors so callers never have to look at SQLSTATEs. Anything
// unrecognized passes through untouched and is treated as a server fault.
func classify(err error) error {
	var pg *pgconn.PgError
	if !errors.As(err, &pg) {
		return err
	}
	switch pg.Code {
	case "23505": // unique_violation
		return fmt.Errorf("%w: %s", ErrConflict, pg.ConstraintName)
	case "23502": // not_null_violation
		return fmt.Errorf("%w: missing %s", ErrInvalid, pg.ColumnName)
	case "22P02", "22001": // bad representation / value too long
		return fmt.Errorf("%w: %s", ErrInvalid, pg.Message)
	default:
		return err
	}
}

package postgres

import (
	"context"
	"database/sql/driver"

	domainerrors "pickup/internal/domain/errors"
	"pickup/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes the repositories react to.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgSerializationFailed = "40001"
	pgDeadlockDetected    = "40P01"
)

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return hasSQLState(err, pgUniqueViolation)
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return hasSQLState(err, pgForeignKeyViolation)
}

// isTransientError reports failures that may succeed when the same statement is sent again.
func isTransientError(err error) bool {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return true
	case errors.Is(err, driver.ErrBadConn):
		return true
	case pgconn.Timeout(err), pgconn.SafeToRetry(err):
		return true
	default:
		return hasSQLState(err, pgSerializationFailed) || hasSQLState(err, pgDeadlockDetected)
	}
}

func hasSQLState(err error, code string) bool {
	pgErr, ok := errors.AsType[*pgconn.PgError](err)

	return ok && pgErr.Code == code
}

// dbError converts a driver failure into the error returned by repositories.
// Transient failures are marked so callers may retry them.
func dbError(err error, message string) error {
	if isTransientError(err) {
		return errors.Mark(errors.Wrap(err, message), domainerrors.ErrTransientBackend)
	}

	return domainerrors.NewDatabaseExecuteError(err, message)
}

package database

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sony/gobreaker/v2"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/jsamuelsen11/college-predictor/internal/domain"
)

// MySQL server error numbers.
const (
	mysqlErrDBAccessDenied = 1044
	mysqlErrAccessDenied   = 1045
	mysqlErrBadDB          = 1049
	mysqlErrDupEntry       = 1062
)

// PostgreSQL SQLSTATE values.
const (
	pgUniqueViolation       = "23505"
	pgConnectionExceptionCl = "08"
	pgInvalidAuthorization  = "28"
	pgInvalidCatalogName    = "3D000"
)

// TranslateDBError maps driver errors to domain errors. Connection-level
// failures (unreachable server, rejected credentials, unknown database, open
// circuit breaker) become domain.ErrUnavailable; unique-key violations become
// domain.ErrConflict. Anything else is returned unchanged. The original error
// stays in the chain for logging.
func TranslateDBError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrUnavailable) || errors.Is(err, domain.ErrConflict) {
		return err
	}

	if isUnavailable(err) {
		return fmt.Errorf("database connection failed: %w: %w", domain.ErrUnavailable, err)
	}
	if isUniqueViolation(err) {
		return fmt.Errorf("duplicate record: %w: %w", domain.ErrConflict, err)
	}
	return err
}

func isUnavailable(err error) bool {
	switch {
	case errors.Is(err, gobreaker.ErrOpenState),
		errors.Is(err, gobreaker.ErrTooManyRequests),
		errors.Is(err, driver.ErrBadConn),
		errors.Is(err, sql.ErrConnDone),
		errors.Is(err, mysql.ErrInvalidConn):
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var pgConnectErr *pgconn.ConnectError
	if errors.As(err, &pgConnectErr) {
		return true
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case mysqlErrDBAccessDenied, mysqlErrAccessDenied, mysqlErrBadDB:
			return true
		}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if strings.HasPrefix(pgErr.Code, pgConnectionExceptionCl) ||
			strings.HasPrefix(pgErr.Code, pgInvalidAuthorization) ||
			pgErr.Code == pgInvalidCatalogName {
			return true
		}
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() & 0xff {
		case sqlite3.SQLITE_CANTOPEN, sqlite3.SQLITE_NOTADB:
			return true
		}
	}

	return false
}

func isUniqueViolation(err error) bool {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlErrDupEntry
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return true
		case sqlite3.SQLITE_CONSTRAINT:
			return strings.Contains(liteErr.Error(), "UNIQUE constraint failed")
		}
	}

	return false
}

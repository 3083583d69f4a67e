package postgres

import (
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes translated at the gateway boundary.
const (
	pgUniqueViolation  = "23505"
	pgNotNullViolation = "23502"
	pgForeignKeyError  = "23503"
	pgUndefinedColumn  = "42703"
)

func pgErrorCode(err error) (string, *pgconn.PgError) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr
	}

	return "", nil
}

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	code, _ := pgErrorCode(err)

	return code == pgUniqueViolation
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	code, _ := pgErrorCode(err)

	return code == pgForeignKeyError
}

func isNotNullConstraintViolation(err error) bool {
	code, _ := pgErrorCode(err)
	if code == pgNotNullViolation {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null")
}

// undefinedColumnPattern extracts the column name from messages shaped like
// `column "foo" of relation "contacts" does not exist`.
var undefinedColumnPattern = regexp.MustCompile(`column "([^"]+)"`)

// undefinedColumn reports whether err is the Postgres undefined_column
// failure and, if so, which column the store rejected. This is the only store
// error the gateway recovers from locally (the schema-drift fallback).
func undefinedColumn(err error) (string, bool) {
	if err == nil {
		return "", false
	}

	if code, pgErr := pgErrorCode(err); pgErr != nil {
		if code != pgUndefinedColumn {
			return "", false
		}
		if m := undefinedColumnPattern.FindStringSubmatch(pgErr.Message); m != nil {
			return m[1], true
		}

		return "", false
	}

	// Fallback for drivers that surface the failure as plain text.
	msg := err.Error()
	if !strings.Contains(msg, "does not exist") || !strings.Contains(msg, "column") {
		return "", false
	}
	if m := undefinedColumnPattern.FindStringSubmatch(msg); m != nil {
		return m[1], true
	}

	return "", false
}

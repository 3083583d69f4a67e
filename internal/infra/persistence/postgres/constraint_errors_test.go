package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestUndefinedColumn_PgError(t *testing.T) {
	err := &pgconn.PgError{
		Code:    pgUndefinedColumn,
		Message: `column "enrichment_status" of relation "contacts" does not exist`,
	}

	column, ok := undefinedColumn(err)

	assert.True(t, ok)
	assert.Equal(t, "enrichment_status", column)
}

func TestUndefinedColumn_WrappedPgError(t *testing.T) {
	inner := &pgconn.PgError{
		Code:    pgUndefinedColumn,
		Message: `column "social_handles" does not exist`,
	}
	err := errors.Wrap(inner, "failed to update contact")

	column, ok := undefinedColumn(err)

	assert.True(t, ok)
	assert.Equal(t, "social_handles", column)
}

func TestUndefinedColumn_PlainTextFallback(t *testing.T) {
	err := errors.New(`ERROR: column "tags" of relation "contacts" does not exist (SQLSTATE 42703)`)

	column, ok := undefinedColumn(err)

	assert.True(t, ok)
	assert.Equal(t, "tags", column)
}

func TestUndefinedColumn_OtherErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "nil", err: nil},
		{name: "unique violation", err: &pgconn.PgError{Code: pgUniqueViolation, Message: `duplicate key value violates unique constraint "idx_contacts_owner_email"`}},
		{name: "unrelated text", err: errors.New("connection refused")},
		{name: "relation missing", err: errors.New(`relation "contacts" does not exist`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := undefinedColumn(tt.err)
			assert.False(t, ok)
		})
	}
}

func TestIsUniqueConstraintViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: pgUniqueViolation}

	assert.True(t, isUniqueConstraintViolation(pgErr))
	assert.True(t, isUniqueConstraintViolation(errors.Wrap(pgErr, "create failed")))
	assert.False(t, isUniqueConstraintViolation(errors.New("some other failure")))
}

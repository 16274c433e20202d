package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestCode(t *testing.T) {
	err := fmt.Errorf("error executing query: %w", &pgconn.PgError{Code: CodeUndefinedTable})
	assert.Equal(t, CodeUndefinedTable, Code(err))
	assert.Equal(t, "", Code(errors.New("plain")))
}

func TestIsSchemaMissing(t *testing.T) {
	assert.True(t, IsSchemaMissing(&pgconn.PgError{Code: CodeUndefinedTable}))
	assert.True(t, IsSchemaMissing(&pgconn.PgError{Code: CodeUndefinedColumn}))
	assert.False(t, IsSchemaMissing(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsSchemaMissing(nil))
}

package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes the catalog reader distinguishes
const (
	CodeUndefinedTable  = "42P01"
	CodeUndefinedColumn = "42703"
)

// Code returns the SQLSTATE of a PostgreSQL error, or "" for other errors.
func Code(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsSchemaMissing reports whether err means a catalog table or column does not
// exist, which happens when the migrations have not been applied.
func IsSchemaMissing(err error) bool {
	switch Code(err) {
	case CodeUndefinedTable, CodeUndefinedColumn:
		return true
	}
	return false
}

package tenant

import (
	"errors"

	mysqldrv "github.com/go-sql-driver/mysql"
)

// Resolution error taxonomy. Callers match with errors.Is.
var (
	// ErrTenantCodeRequired indicates an empty or blank tenant code. Always a
	// caller bug; never retried.
	ErrTenantCodeRequired = errors.New("tenant code is required")

	// ErrTenantNotFound indicates no candidate database contains a matching
	// property record after exhaustive search. Surfaced as an authorization
	// failure; not retried automatically.
	ErrTenantNotFound = errors.New("tenant not found")

	// ErrPrimaryUnavailable indicates the primary store could not be reached
	// to enumerate or probe candidate databases. The only condition eligible
	// for caller-side retry with backoff.
	ErrPrimaryUnavailable = errors.New("primary store unavailable")

	// ErrUnknownEntity indicates a schema catalog inconsistency. A deployment
	// defect, treated as fatal rather than handled.
	ErrUnknownEntity = errors.New("unknown entity")
)

// isMissingSchemaErr reports whether err means a candidate database or its
// property table does not exist. During discovery these are normal misses and
// probing continues; any other store error aborts with ErrPrimaryUnavailable.
func isMissingSchemaErr(err error) bool {
	var myErr *mysqldrv.MySQLError
	if errors.As(err, &myErr) {
		// 1049 ER_BAD_DB_ERROR, 1146 ER_NO_SUCH_TABLE,
		// 1046 ER_NO_DB_ERROR (pooled connection whose schema was dropped)
		return myErr.Number == 1049 || myErr.Number == 1146 || myErr.Number == 1046
	}
	return false
}

package db

import (
	"errors"

	"github.com/lib/pq"
)

// Postgres SQLSTATE codes the gateways map to caller errors.
const (
	codeNotNullViolation = "23502"
	codeCheckViolation   = "23514"
)

// IsConstraintViolation reports whether err is a rejected row, as opposed to
// an unreachable or failing store.
func IsConstraintViolation(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == codeCheckViolation || pqErr.Code == codeNotNullViolation
}

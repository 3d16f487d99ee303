// Package pgerr classifies errors returned by postgres through lib/pq.
package pgerr

import (
	"errors"

	"github.com/lib/pq"
)

// uniqueViolation is the SQLSTATE of unique_violation.
const uniqueViolation pq.ErrorCode = "23505"

// IsUniqueViolation reports whether err comes from a unique constraint.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// Constraint returns the violated constraint name, or "" when err is not a
// postgres error.
func Constraint(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Constraint
	}
	return ""
}

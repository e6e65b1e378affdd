// Package repository contains the data access layer, separated from the
// HTTP handlers. Sentinel errors defined here let handlers translate
// storage outcomes into status codes without inspecting driver errors
// themselves: ErrConflict maps to 400 with an entity-specific message,
// the per-entity not-found sentinels map to 404.
package repository

import (
	"errors"
	"strings"
)

// ErrConflict is returned when an insert or update violates referential
// integrity, such as creating a property for an unknown owner. Handlers
// should translate this into an HTTP 400 response naming the bad
// reference.
var ErrConflict = errors.New("conflict")

// isFKViolation reports whether err is MySQL error 1452
// (ER_NO_REFERENCED_ROW_2), raised when an inserted or updated row
// references a missing foreign key target.
func isFKViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "1452")
}

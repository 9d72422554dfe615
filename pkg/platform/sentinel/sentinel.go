package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores return these (optionally
// wrapped) so services can translate them into domain errors that name the
// entity involved.
//
// Constraint violations reported by the database are not mapped here; stores
// pass driver errors through wrapped and the violation package classifies them.
var (
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("unavailable")
)

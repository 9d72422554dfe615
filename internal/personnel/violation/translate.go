// Package violation is the single place that reads Postgres error codes.
//
// Stores pass driver errors through wrapped; services hand them to Translate
// together with the references the write touched, and get back one of three
// domain kinds: Conflict, NotFound or Unknown.
package violation

import (
	"errors"
	"fmt"

	"github.com/lib/pq"

	dErrors "personnel/pkg/domain-errors"
)

// SQLSTATE classes the translator recognizes.
const (
	codeUniqueViolation     pq.ErrorCode = "23505"
	codeForeignKeyViolation pq.ErrorCode = "23503"
)

// Ref names the entity behind a constraint for the write being translated.
// For a foreign key it is the missing parent; for a unique constraint it is
// the record whose uniqueness was violated.
type Ref struct {
	Constraint string
	Entity     string
	ID         any
	// Message overrides the default conflict message.
	Message string
}

// Translate maps err to a domain error. Errors that already carry a domain
// code pass through untouched, so a pre-emptive NotFound and a reactive one
// look identical to the caller.
func Translate(err error, op string, refs ...Ref) error {
	if err == nil {
		return nil
	}
	if _, ok := dErrors.As(err); ok {
		return err
	}

	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return dErrors.Wrap(err, dErrors.CodeUnknown, op)
	}

	switch pqErr.Code {
	case codeUniqueViolation:
		if ref, ok := lookup(refs, pqErr.Constraint); ok {
			msg := ref.Message
			if msg == "" {
				msg = fmt.Sprintf("%s %v already exists", ref.Entity, ref.ID)
			}
			return dErrors.Conflict(ref.Entity, ref.ID, msg)
		}
		return dErrors.Conflict(pqErr.Table, "", "duplicate value violates "+pqErr.Constraint)

	case codeForeignKeyViolation:
		if ref, ok := lookup(refs, pqErr.Constraint); ok {
			return dErrors.NotFound(ref.Entity, ref.ID)
		}
		return &dErrors.Error{
			Code:    dErrors.CodeNotFound,
			Message: "referenced record not found: " + pqErr.Constraint,
			Err:     pqErr,
		}
	}
	return dErrors.Wrap(err, dErrors.CodeUnknown, op)
}

func lookup(refs []Ref, constraint string) (Ref, bool) {
	for _, r := range refs {
		if r.Constraint == constraint {
			return r, true
		}
	}
	return Ref{}, false
}

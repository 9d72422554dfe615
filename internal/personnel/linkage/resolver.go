// Package linkage decides how a staff or assignment write relates to its
// person: link an existing row, create one in the same transaction, amend the
// already-linked one in place, or leave the link alone.
//
// Transports deliver the choice as two independently optional fields. The
// resolver collapses them into a Decision, which is a closed set of variants,
// so the writer never sees the both-present or neither-present shapes.
package linkage

import (
	"personnel/internal/personnel/models"
	id "personnel/pkg/domain"
	dErrors "personnel/pkg/domain-errors"
	"personnel/pkg/optional"
)

const (
	msgExactlyOne        = "exactly one of personId or nested person payload required"
	msgMutuallyExclusive = "personId and nested person payload are mutually exclusive"
)

// Mode selects the rule set.
type Mode int

const (
	ModeCreate Mode = iota
	ModeUpdate
)

// Decision is one of LinkExisting, CreateNested, UpdateNested or NoChange.
type Decision interface {
	decision()
}

// LinkExisting references a person row that must already exist.
type LinkExisting struct {
	PersonID id.PersonID
}

// CreateNested inserts a new person together with the dependent row.
type CreateNested struct {
	Person models.PersonInput
}

// UpdateNested amends the currently linked person in place. Only produced in
// ModeUpdate.
type UpdateNested struct {
	Changes models.PersonChanges
}

// NoChange keeps the current link. Only produced in ModeUpdate.
type NoChange struct{}

func (LinkExisting) decision() {}
func (CreateNested) decision() {}
func (UpdateNested) decision() {}
func (NoChange) decision()     {}

// Input is the raw shape a transport delivers. Exactly one of NewPerson or
// PersonChanges is consulted, depending on the mode.
type Input struct {
	PersonID      optional.Value[id.PersonID]
	NewPerson     *models.PersonInput
	PersonChanges *models.PersonChanges
}

// Resolve classifies in under mode. It performs no I/O. A personId sent as
// null names no person and counts as absent.
func Resolve(mode Mode, in Input) (Decision, error) {
	personID, _ := in.PersonID.Get()
	hasID := in.PersonID.Present()
	switch mode {
	case ModeCreate:
		hasNested := in.NewPerson != nil
		if hasID == hasNested {
			return nil, dErrors.New(dErrors.CodeInvalidRequest, msgExactlyOne)
		}
		if hasID {
			if personID <= 0 {
				return nil, dErrors.New(dErrors.CodeInvalidRequest, "personId must be positive")
			}
			return LinkExisting{PersonID: personID}, nil
		}
		return CreateNested{Person: *in.NewPerson}, nil

	case ModeUpdate:
		hasNested := in.PersonChanges != nil
		if hasID && hasNested {
			return nil, dErrors.New(dErrors.CodeInvalidRequest, msgMutuallyExclusive)
		}
		if hasID {
			if personID <= 0 {
				return nil, dErrors.New(dErrors.CodeInvalidRequest, "personId must be positive")
			}
			return LinkExisting{PersonID: personID}, nil
		}
		if hasNested {
			return UpdateNested{Changes: *in.PersonChanges}, nil
		}
		return NoChange{}, nil
	}
	return nil, dErrors.New(dErrors.CodeInvalidRequest, "unknown linkage mode")
}

// ForCreate resolves a create request.
func ForCreate(personID optional.Value[id.PersonID], person *models.PersonInput) (Decision, error) {
	return Resolve(ModeCreate, Input{PersonID: personID, NewPerson: person})
}

// ForUpdate resolves an update request.
func ForUpdate(personID optional.Value[id.PersonID], changes *models.PersonChanges) (Decision, error) {
	return Resolve(ModeUpdate, Input{PersonID: personID, PersonChanges: changes})
}

package models

import (
	"strings"
	"unicode/utf8"

	id "personnel/pkg/domain"
	dErrors "personnel/pkg/domain-errors"
	"personnel/pkg/optional"
)

const maxOrderRefLen = 100

// Assignment places a person in a unit for a date range. A person may hold
// many assignments over time, and a unit may host many.
type Assignment struct {
	ID         id.AssignmentID `json:"id"`
	PersonID   id.PersonID     `json:"personId"`
	UnitID     id.UnitID       `json:"unitId"`
	AssignedOn Date            `json:"assignedOn"`
	RemovedOn  Date            `json:"removedOn"`
	OrderRef   string          `json:"orderRef"`
	Person     *Person         `json:"person,omitempty"`
	Unit       *Unit           `json:"unit,omitempty"`
}

// CreateAssignmentRequest carries exactly one of PersonID or Person.
type CreateAssignmentRequest struct {
	PersonID   optional.Value[id.PersonID]
	Person     *PersonInput
	UnitID     id.UnitID
	AssignedOn Date
	RemovedOn  Date
	OrderRef   string
}

func (r *CreateAssignmentRequest) Normalize() {
	r.OrderRef = strings.TrimSpace(r.OrderRef)
	if r.Person != nil {
		r.Person.Normalize()
	}
}

// Validate checks the assignment's own fields. Person linkage is checked by
// the linkage resolver.
func (r *CreateAssignmentRequest) Validate() error {
	if r.UnitID <= 0 {
		return dErrors.New(dErrors.CodeInvalidRequest, "unitId is required")
	}
	if r.AssignedOn.IsZero() {
		return dErrors.New(dErrors.CodeInvalidRequest, "assignment date is required")
	}
	if r.RemovedOn.IsZero() {
		return dErrors.New(dErrors.CodeInvalidRequest, "removal date is required")
	}
	return validateOrderRef(r.OrderRef)
}

// UpdateAssignmentRequest supplies only the fields to change.
type UpdateAssignmentRequest struct {
	PersonID   optional.Value[id.PersonID]
	Person     *PersonChanges
	UnitID     optional.Value[id.UnitID]
	AssignedOn optional.Value[Date]
	RemovedOn  optional.Value[Date]
	OrderRef   optional.Value[string]
}

func (r *UpdateAssignmentRequest) Normalize() {
	if v, ok := r.OrderRef.Get(); ok {
		r.OrderRef = optional.Of(strings.TrimSpace(v))
	}
	if r.Person != nil {
		r.Person.Normalize()
	}
}

func (r *UpdateAssignmentRequest) Validate() error {
	if v, ok := r.UnitID.Get(); ok && v <= 0 {
		return dErrors.New(dErrors.CodeInvalidRequest, "unitId must be positive")
	}
	if v, ok := r.AssignedOn.Get(); ok && v.IsZero() {
		return dErrors.New(dErrors.CodeInvalidRequest, "assignment date cannot be empty")
	}
	if v, ok := r.RemovedOn.Get(); ok && v.IsZero() {
		return dErrors.New(dErrors.CodeInvalidRequest, "removal date cannot be empty")
	}
	if v, ok := r.OrderRef.Get(); ok {
		if err := validateOrderRef(strings.TrimSpace(v)); err != nil {
			return err
		}
	}
	if r.Person != nil {
		return r.Person.Validate()
	}
	return nil
}

// AssignmentChanges is the column-level changeset written to the store.
type AssignmentChanges struct {
	PersonID   optional.Value[id.PersonID]
	UnitID     optional.Value[id.UnitID]
	AssignedOn optional.Value[Date]
	RemovedOn  optional.Value[Date]
	OrderRef   optional.Value[string]
}

func (c AssignmentChanges) IsEmpty() bool {
	return !c.PersonID.IsSet() && !c.UnitID.IsSet() && !c.AssignedOn.IsSet() &&
		!c.RemovedOn.IsSet() && !c.OrderRef.IsSet()
}

func validateOrderRef(ref string) error {
	if ref == "" || utf8.RuneCountInString(ref) > maxOrderRefLen {
		return dErrors.New(dErrors.CodeInvalidRequest, "order reference must be 1 to 100 characters")
	}
	return nil
}

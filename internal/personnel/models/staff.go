package models

import (
	"strings"
	"unicode/utf8"

	id "personnel/pkg/domain"
	dErrors "personnel/pkg/domain-errors"
	"personnel/pkg/optional"
)

const maxRegistrationNumberLen = 20

// PermanentStaff extends a person with a globally unique registration number.
type PermanentStaff struct {
	PersonID           id.PersonID `json:"personId"`
	RegistrationNumber string      `json:"registrationNumber"`
	Person             *Person     `json:"person,omitempty"`
}

// TemporaryStaff extends a person with an appointment period.
type TemporaryStaff struct {
	PersonID     id.PersonID `json:"personId"`
	AdmittedOn   Date        `json:"admittedOn"`
	TerminatedOn Date        `json:"terminatedOn"`
	Person       *Person     `json:"person,omitempty"`
}

type CreatePermanentStaffRequest struct {
	PersonID           optional.Value[id.PersonID]
	Person             *PersonInput
	RegistrationNumber string
}

func (r *CreatePermanentStaffRequest) Normalize() {
	r.RegistrationNumber = strings.TrimSpace(r.RegistrationNumber)
	if r.Person != nil {
		r.Person.Normalize()
	}
}

func (r *CreatePermanentStaffRequest) Validate() error {
	return validateRegistrationNumber(r.RegistrationNumber)
}

type UpdatePermanentStaffRequest struct {
	PersonID           optional.Value[id.PersonID]
	Person             *PersonChanges
	RegistrationNumber optional.Value[string]
}

func (r *UpdatePermanentStaffRequest) Normalize() {
	if v, ok := r.RegistrationNumber.Get(); ok {
		r.RegistrationNumber = optional.Of(strings.TrimSpace(v))
	}
	if r.Person != nil {
		r.Person.Normalize()
	}
}

func (r *UpdatePermanentStaffRequest) Validate() error {
	if v, ok := r.RegistrationNumber.Get(); ok {
		if err := validateRegistrationNumber(strings.TrimSpace(v)); err != nil {
			return err
		}
	}
	if r.Person != nil {
		return r.Person.Validate()
	}
	return nil
}

// PermanentStaffChanges is the column-level changeset written to the store.
type PermanentStaffChanges struct {
	PersonID           optional.Value[id.PersonID]
	RegistrationNumber optional.Value[string]
}

func (c PermanentStaffChanges) IsEmpty() bool {
	return !c.PersonID.IsSet() && !c.RegistrationNumber.IsSet()
}

type CreateTemporaryStaffRequest struct {
	PersonID     optional.Value[id.PersonID]
	Person       *PersonInput
	AdmittedOn   Date
	TerminatedOn Date
}

func (r *CreateTemporaryStaffRequest) Normalize() {
	if r.Person != nil {
		r.Person.Normalize()
	}
}

func (r *CreateTemporaryStaffRequest) Validate() error {
	if r.AdmittedOn.IsZero() {
		return dErrors.New(dErrors.CodeInvalidRequest, "admission date is required")
	}
	if r.TerminatedOn.IsZero() {
		return dErrors.New(dErrors.CodeInvalidRequest, "termination date is required")
	}
	return nil
}

type UpdateTemporaryStaffRequest struct {
	PersonID     optional.Value[id.PersonID]
	Person       *PersonChanges
	AdmittedOn   optional.Value[Date]
	TerminatedOn optional.Value[Date]
}

func (r *UpdateTemporaryStaffRequest) Normalize() {
	if r.Person != nil {
		r.Person.Normalize()
	}
}

func (r *UpdateTemporaryStaffRequest) Validate() error {
	if v, ok := r.AdmittedOn.Get(); ok && v.IsZero() {
		return dErrors.New(dErrors.CodeInvalidRequest, "admission date cannot be empty")
	}
	if v, ok := r.TerminatedOn.Get(); ok && v.IsZero() {
		return dErrors.New(dErrors.CodeInvalidRequest, "termination date cannot be empty")
	}
	if r.Person != nil {
		return r.Person.Validate()
	}
	return nil
}

// TemporaryStaffChanges is the column-level changeset written to the store.
type TemporaryStaffChanges struct {
	PersonID     optional.Value[id.PersonID]
	AdmittedOn   optional.Value[Date]
	TerminatedOn optional.Value[Date]
}

func (c TemporaryStaffChanges) IsEmpty() bool {
	return !c.PersonID.IsSet() && !c.AdmittedOn.IsSet() && !c.TerminatedOn.IsSet()
}

func validateRegistrationNumber(n string) error {
	if n == "" || utf8.RuneCountInString(n) > maxRegistrationNumberLen {
		return dErrors.New(dErrors.CodeInvalidRequest, "registration number must be 1 to 20 characters")
	}
	return nil
}

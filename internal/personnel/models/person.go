package models

import (
	"strings"

	id "personnel/pkg/domain"
	dErrors "personnel/pkg/domain-errors"
	"personnel/pkg/optional"
)

// Sex is restricted to the two enumerated values.
type Sex string

const (
	SexMale   Sex = "MALE"
	SexFemale Sex = "FEMALE"
)

func (s Sex) IsValid() bool {
	return s == SexMale || s == SexFemale
}

// Person is the identity record every staff and assignment record hangs off.
// The core never deletes a person.
type Person struct {
	ID         id.PersonID `json:"id"`
	Name       string      `json:"name"`
	BirthDate  Date        `json:"birthDate"`
	Sex        Sex         `json:"sex"`
	MotherName string      `json:"motherName"`
	FatherName string      `json:"fatherName"`
}

// PersonInput is the nested payload used to create a person alongside a
// dependent record.
type PersonInput struct {
	Name       string `json:"name"`
	BirthDate  Date   `json:"birthDate"`
	Sex        Sex    `json:"sex"`
	MotherName string `json:"motherName"`
	FatherName string `json:"fatherName"`
}

func (in *PersonInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.MotherName = strings.TrimSpace(in.MotherName)
	in.FatherName = strings.TrimSpace(in.FatherName)
}

func (in *PersonInput) Validate() error {
	if in.Name == "" {
		return dErrors.New(dErrors.CodeInvalidRequest, "person name is required")
	}
	if in.BirthDate.IsZero() {
		return dErrors.New(dErrors.CodeInvalidRequest, "person birth date is required")
	}
	if !in.Sex.IsValid() {
		return dErrors.New(dErrors.CodeInvalidRequest, "person sex must be MALE or FEMALE")
	}
	if in.MotherName == "" {
		return dErrors.New(dErrors.CodeInvalidRequest, "person mother name is required")
	}
	if in.FatherName == "" {
		return dErrors.New(dErrors.CodeInvalidRequest, "person father name is required")
	}
	return nil
}

// NewPerson builds an unsaved Person from validated input.
func NewPerson(in PersonInput) *Person {
	return &Person{
		Name:       in.Name,
		BirthDate:  in.BirthDate,
		Sex:        in.Sex,
		MotherName: in.MotherName,
		FatherName: in.FatherName,
	}
}

// PersonChanges is the presence-aware changeset for an in-place person update.
type PersonChanges struct {
	Name       optional.Value[string] `json:"name"`
	BirthDate  optional.Value[Date]   `json:"birthDate"`
	Sex        optional.Value[Sex]    `json:"sex"`
	MotherName optional.Value[string] `json:"motherName"`
	FatherName optional.Value[string] `json:"fatherName"`
}

func (c PersonChanges) IsEmpty() bool {
	return !c.Name.IsSet() && !c.BirthDate.IsSet() && !c.Sex.IsSet() &&
		!c.MotherName.IsSet() && !c.FatherName.IsSet()
}

func (c *PersonChanges) Normalize() {
	if v, ok := c.Name.Get(); ok {
		c.Name = optional.Of(strings.TrimSpace(v))
	}
	if v, ok := c.MotherName.Get(); ok {
		c.MotherName = optional.Of(strings.TrimSpace(v))
	}
	if v, ok := c.FatherName.Get(); ok {
		c.FatherName = optional.Of(strings.TrimSpace(v))
	}
}

func (c PersonChanges) Validate() error {
	if v, ok := c.Name.Get(); ok && strings.TrimSpace(v) == "" {
		return dErrors.New(dErrors.CodeInvalidRequest, "person name cannot be empty")
	}
	if v, ok := c.BirthDate.Get(); ok && v.IsZero() {
		return dErrors.New(dErrors.CodeInvalidRequest, "person birth date cannot be empty")
	}
	if v, ok := c.Sex.Get(); ok && !v.IsValid() {
		return dErrors.New(dErrors.CodeInvalidRequest, "person sex must be MALE or FEMALE")
	}
	if v, ok := c.MotherName.Get(); ok && strings.TrimSpace(v) == "" {
		return dErrors.New(dErrors.CodeInvalidRequest, "person mother name cannot be empty")
	}
	if v, ok := c.FatherName.Get(); ok && strings.TrimSpace(v) == "" {
		return dErrors.New(dErrors.CodeInvalidRequest, "person father name cannot be empty")
	}
	return nil
}

// Apply writes the supplied fields onto p, leaving omitted ones untouched.
func (c PersonChanges) Apply(p *Person) {
	if v, ok := c.Name.Get(); ok {
		p.Name = strings.TrimSpace(v)
	}
	if v, ok := c.BirthDate.Get(); ok {
		p.BirthDate = v
	}
	if v, ok := c.Sex.Get(); ok {
		p.Sex = v
	}
	if v, ok := c.MotherName.Get(); ok {
		p.MotherName = strings.TrimSpace(v)
	}
	if v, ok := c.FatherName.Get(); ok {
		p.FatherName = strings.TrimSpace(v)
	}
}

package models

import (
	"strings"
	"unicode/utf8"

	id "personnel/pkg/domain"
	dErrors "personnel/pkg/domain-errors"
	"personnel/pkg/optional"
)

const (
	maxUnitNameLen    = 200
	maxUnitAcronymLen = 20
)

// Unit is an organizational unit people are assigned to.
type Unit struct {
	ID      id.UnitID `json:"id"`
	Name    string    `json:"name"`
	Acronym string    `json:"acronym"`
}

type UnitInput struct {
	Name    string `json:"name"`
	Acronym string `json:"acronym"`
}

func (in *UnitInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Acronym = strings.TrimSpace(in.Acronym)
}

func (in *UnitInput) Validate() error {
	if err := validateUnitName(in.Name); err != nil {
		return err
	}
	return validateUnitAcronym(in.Acronym)
}

// UnitChanges is the presence-aware changeset for a unit update.
type UnitChanges struct {
	Name    optional.Value[string] `json:"name"`
	Acronym optional.Value[string] `json:"acronym"`
}

func (c UnitChanges) IsEmpty() bool {
	return !c.Name.IsSet() && !c.Acronym.IsSet()
}

func (c *UnitChanges) Normalize() {
	if v, ok := c.Name.Get(); ok {
		c.Name = optional.Of(strings.TrimSpace(v))
	}
	if v, ok := c.Acronym.Get(); ok {
		c.Acronym = optional.Of(strings.TrimSpace(v))
	}
}

func (c UnitChanges) Validate() error {
	if v, ok := c.Name.Get(); ok {
		if err := validateUnitName(v); err != nil {
			return err
		}
	}
	if v, ok := c.Acronym.Get(); ok {
		if err := validateUnitAcronym(v); err != nil {
			return err
		}
	}
	return nil
}

func validateUnitName(name string) error {
	if name == "" || utf8.RuneCountInString(name) > maxUnitNameLen {
		return dErrors.New(dErrors.CodeInvalidRequest, "unit name must be 1 to 200 characters")
	}
	return nil
}

func validateUnitAcronym(acronym string) error {
	if acronym == "" || utf8.RuneCountInString(acronym) > maxUnitAcronymLen {
		return dErrors.New(dErrors.CodeInvalidRequest, "unit acronym must be 1 to 20 characters")
	}
	return nil
}

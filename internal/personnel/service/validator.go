package service

import (
	"context"

	"personnel/internal/personnel/models"
	id "personnel/pkg/domain"
	dErrors "personnel/pkg/domain-errors"
)

// Validator checks that referenced parents exist before a write. The check is
// not a lock: a parent removed between check and write surfaces later as a
// foreign key violation, which the violation translator reports as the same
// NotFound.
type Validator struct {
	persons PersonStore
	units   UnitStore
}

func NewValidator(persons PersonStore, units UnitStore) *Validator {
	return &Validator{persons: persons, units: units}
}

func (v *Validator) ExistsPerson(ctx context.Context, personID id.PersonID) (bool, error) {
	return v.persons.Exists(ctx, personID)
}

func (v *Validator) ExistsUnit(ctx context.Context, unitID id.UnitID) (bool, error) {
	return v.units.Exists(ctx, unitID)
}

// RequirePerson fails with NotFound when the person is absent.
func (v *Validator) RequirePerson(ctx context.Context, personID id.PersonID) error {
	ok, err := v.ExistsPerson(ctx, personID)
	if err != nil {
		return err
	}
	if !ok {
		return dErrors.NotFound(models.EntityPerson, personID)
	}
	return nil
}

// RequireUnit fails with NotFound when the unit is absent.
func (v *Validator) RequireUnit(ctx context.Context, unitID id.UnitID) error {
	ok, err := v.ExistsUnit(ctx, unitID)
	if err != nil {
		return err
	}
	if !ok {
		return dErrors.NotFound(models.EntityUnit, unitID)
	}
	return nil
}

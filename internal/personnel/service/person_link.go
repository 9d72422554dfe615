package service

import (
	"context"

	"personnel/internal/personnel/linkage"
	"personnel/internal/personnel/models"
	"personnel/internal/personnel/violation"
	id "personnel/pkg/domain"
	dErrors "personnel/pkg/domain-errors"
)

// checkNested validates a nested person payload before any store call.
func checkNested(d linkage.Decision) error {
	switch d := d.(type) {
	case linkage.CreateNested:
		return d.Person.Validate()
	case linkage.UpdateNested:
		return d.Changes.Validate()
	}
	return nil
}

// linkPerson applies a create-mode decision inside the caller's transaction
// and returns the person the dependent row should reference. created reports
// whether a new person row was inserted.
func (s *Service) linkPerson(ctx context.Context, d linkage.Decision) (personID id.PersonID, created bool, err error) {
	switch d := d.(type) {
	case linkage.LinkExisting:
		if err := s.validator.RequirePerson(ctx, d.PersonID); err != nil {
			return 0, false, err
		}
		return d.PersonID, false, nil
	case linkage.CreateNested:
		p := models.NewPerson(d.Person)
		if err := s.persons.Create(ctx, p); err != nil {
			return 0, false, violation.Translate(err, "insert person")
		}
		return p.ID, true, nil
	}
	return 0, false, dErrors.New(dErrors.CodeInvalidRequest, "person link must reference or create a person")
}

// updateLinkedPerson amends the currently linked person in place.
func (s *Service) updateLinkedPerson(ctx context.Context, personID id.PersonID, changes models.PersonChanges) error {
	if changes.IsEmpty() {
		return nil
	}
	if err := s.persons.Update(ctx, personID, changes); err != nil {
		return violation.Translate(notFoundAs(err, models.EntityPerson, personID), "update person")
	}
	return nil
}

package service

import (
	"context"
	"fmt"

	"personnel/internal/personnel/linkage"
	"personnel/internal/personnel/models"
	"personnel/internal/personnel/store"
	"personnel/internal/personnel/violation"
	id "personnel/pkg/domain"
	dErrors "personnel/pkg/domain-errors"
	"personnel/pkg/optional"
)

func permanentStaffRefs(personID id.PersonID, registrationNumber string) []violation.Ref {
	return []violation.Ref{
		{
			Constraint: store.ConstraintPermanentStaffPKey,
			Entity:     models.EntityPermanentStaff,
			ID:         personID,
			Message:    permanentStaffTaken(personID),
		},
		{
			Constraint: store.ConstraintPermanentStaffRegNo,
			Entity:     models.EntityPermanentStaff,
			ID:         registrationNumber,
			Message:    fmt.Sprintf("registration number %q already exists", registrationNumber),
		},
		{Constraint: store.ConstraintPermanentStaffPerson, Entity: models.EntityPerson, ID: personID},
	}
}

func permanentStaffTaken(personID id.PersonID) string {
	return fmt.Sprintf("person %s already has a permanent staff record", personID)
}

// requireNoPermanentStaff fails with Conflict when personID already holds a
// permanent staff record.
func (s *Service) requireNoPermanentStaff(ctx context.Context, personID id.PersonID) error {
	taken, err := s.permanent.Exists(ctx, personID)
	if err != nil {
		return err
	}
	if taken {
		return dErrors.Conflict(models.EntityPermanentStaff, personID, permanentStaffTaken(personID))
	}
	return nil
}

// CreatePermanentStaff registers a person as permanent staff. Registration
// numbers are globally unique.
func (s *Service) CreatePermanentStaff(ctx context.Context, req models.CreatePermanentStaffRequest) (_ *models.PermanentStaff, err error) {
	ctx, done := s.begin(ctx, "create_permanent_staff")
	defer done(&err)

	req.Normalize()
	decision, err := linkage.ForCreate(req.PersonID, req.Person)
	if err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := checkNested(decision); err != nil {
		return nil, err
	}

	var (
		created      *models.PermanentStaff
		nestedPerson bool
	)
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		personID, isNew, err := s.linkPerson(ctx, decision)
		if err != nil {
			return err
		}
		nestedPerson = isNew
		if !isNew {
			if err := s.requireNoPermanentStaff(ctx, personID); err != nil {
				return err
			}
		}

		staff := &models.PermanentStaff{PersonID: personID, RegistrationNumber: req.RegistrationNumber}
		if err := s.permanent.Create(ctx, staff); err != nil {
			return violation.Translate(err, "insert permanent staff", permanentStaffRefs(personID, req.RegistrationNumber)...)
		}
		created, err = s.permanent.FindByPersonID(ctx, personID)
		return notFoundAs(err, models.EntityPermanentStaff, personID)
	})
	if err != nil {
		return nil, violation.Translate(err, "create permanent staff")
	}

	s.logCreated(ctx, models.EntityPermanentStaff, created.PersonID, nestedPerson)
	return created, nil
}

func (s *Service) GetPermanentStaff(ctx context.Context, personID id.PersonID) (_ *models.PermanentStaff, err error) {
	ctx, done := s.begin(ctx, "get_permanent_staff")
	defer done(&err)

	staff, err := s.permanent.FindByPersonID(ctx, personID)
	if err != nil {
		return nil, violation.Translate(notFoundAs(err, models.EntityPermanentStaff, personID), "get permanent staff")
	}
	return staff, nil
}

func (s *Service) ListPermanentStaff(ctx context.Context, page models.Page) (_ *models.PageResult[*models.PermanentStaff], err error) {
	ctx, done := s.begin(ctx, "list_permanent_staff")
	defer done(&err)

	result, err := listPage(ctx, s.tx, page, s.permanent.List, s.permanent.Count)
	if err != nil {
		return nil, violation.Translate(err, "list permanent staff")
	}
	return result, nil
}

// UpdatePermanentStaff applies only the supplied fields to the record keyed
// by personID. A different personId moves the record onto that person.
func (s *Service) UpdatePermanentStaff(ctx context.Context, personID id.PersonID, req models.UpdatePermanentStaffRequest) (_ *models.PermanentStaff, err error) {
	ctx, done := s.begin(ctx, "update_permanent_staff")
	defer done(&err)

	req.Normalize()
	decision, err := linkage.ForUpdate(req.PersonID, req.Person)
	if err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	changes := models.PermanentStaffChanges{RegistrationNumber: req.RegistrationNumber}

	var updated *models.PermanentStaff
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.permanent.FindByPersonID(ctx, personID)
		if err != nil {
			return notFoundAs(err, models.EntityPermanentStaff, personID)
		}

		target := personID
		switch d := decision.(type) {
		case linkage.LinkExisting:
			if d.PersonID != personID {
				if err := s.validator.RequirePerson(ctx, d.PersonID); err != nil {
					return err
				}
				if err := s.requireNoPermanentStaff(ctx, d.PersonID); err != nil {
					return err
				}
				changes.PersonID = optional.Of(d.PersonID)
				target = d.PersonID
			}
		case linkage.UpdateNested:
			if err := s.updateLinkedPerson(ctx, personID, d.Changes); err != nil {
				return err
			}
		}

		if !changes.IsEmpty() {
			regNo := changes.RegistrationNumber.OrElse(current.RegistrationNumber)
			if err := s.permanent.Update(ctx, personID, changes); err != nil {
				return violation.Translate(notFoundAs(err, models.EntityPermanentStaff, personID),
					"update permanent staff", permanentStaffRefs(target, regNo)...)
			}
		}
		updated, err = s.permanent.FindByPersonID(ctx, target)
		return notFoundAs(err, models.EntityPermanentStaff, target)
	})
	if err != nil {
		return nil, violation.Translate(err, "update permanent staff")
	}
	return updated, nil
}

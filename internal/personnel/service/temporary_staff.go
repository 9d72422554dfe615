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

func temporaryStaffRefs(personID id.PersonID) []violation.Ref {
	return []violation.Ref{
		{
			Constraint: store.ConstraintTemporaryStaffPKey,
			Entity:     models.EntityTemporaryStaff,
			ID:         personID,
			Message:    temporaryStaffTaken(personID),
		},
		{Constraint: store.ConstraintTemporaryStaffPerson, Entity: models.EntityPerson, ID: personID},
	}
}

func temporaryStaffTaken(personID id.PersonID) string {
	return fmt.Sprintf("person %s already has a temporary staff record", personID)
}

func (s *Service) requireNoTemporaryStaff(ctx context.Context, personID id.PersonID) error {
	taken, err := s.temporary.Exists(ctx, personID)
	if err != nil {
		return err
	}
	if taken {
		return dErrors.Conflict(models.EntityTemporaryStaff, personID, temporaryStaffTaken(personID))
	}
	return nil
}

// CreateTemporaryStaff records a temporary appointment for a person.
func (s *Service) CreateTemporaryStaff(ctx context.Context, req models.CreateTemporaryStaffRequest) (_ *models.TemporaryStaff, err error) {
	ctx, done := s.begin(ctx, "create_temporary_staff")
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
		created      *models.TemporaryStaff
		nestedPerson bool
	)
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		personID, isNew, err := s.linkPerson(ctx, decision)
		if err != nil {
			return err
		}
		nestedPerson = isNew
		if !isNew {
			if err := s.requireNoTemporaryStaff(ctx, personID); err != nil {
				return err
			}
		}

		staff := &models.TemporaryStaff{
			PersonID:     personID,
			AdmittedOn:   req.AdmittedOn,
			TerminatedOn: req.TerminatedOn,
		}
		if err := s.temporary.Create(ctx, staff); err != nil {
			return violation.Translate(err, "insert temporary staff", temporaryStaffRefs(personID)...)
		}
		created, err = s.temporary.FindByPersonID(ctx, personID)
		return notFoundAs(err, models.EntityTemporaryStaff, personID)
	})
	if err != nil {
		return nil, violation.Translate(err, "create temporary staff")
	}

	s.logCreated(ctx, models.EntityTemporaryStaff, created.PersonID, nestedPerson)
	return created, nil
}

func (s *Service) GetTemporaryStaff(ctx context.Context, personID id.PersonID) (_ *models.TemporaryStaff, err error) {
	ctx, done := s.begin(ctx, "get_temporary_staff")
	defer done(&err)

	staff, err := s.temporary.FindByPersonID(ctx, personID)
	if err != nil {
		return nil, violation.Translate(notFoundAs(err, models.EntityTemporaryStaff, personID), "get temporary staff")
	}
	return staff, nil
}

func (s *Service) ListTemporaryStaff(ctx context.Context, page models.Page) (_ *models.PageResult[*models.TemporaryStaff], err error) {
	ctx, done := s.begin(ctx, "list_temporary_staff")
	defer done(&err)

	result, err := listPage(ctx, s.tx, page, s.temporary.List, s.temporary.Count)
	if err != nil {
		return nil, violation.Translate(err, "list temporary staff")
	}
	return result, nil
}

func (s *Service) UpdateTemporaryStaff(ctx context.Context, personID id.PersonID, req models.UpdateTemporaryStaffRequest) (_ *models.TemporaryStaff, err error) {
	ctx, done := s.begin(ctx, "update_temporary_staff")
	defer done(&err)

	req.Normalize()
	decision, err := linkage.ForUpdate(req.PersonID, req.Person)
	if err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	changes := models.TemporaryStaffChanges{
		AdmittedOn:   req.AdmittedOn,
		TerminatedOn: req.TerminatedOn,
	}

	var updated *models.TemporaryStaff
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.temporary.FindByPersonID(ctx, personID); err != nil {
			return notFoundAs(err, models.EntityTemporaryStaff, personID)
		}

		target := personID
		switch d := decision.(type) {
		case linkage.LinkExisting:
			if d.PersonID != personID {
				if err := s.validator.RequirePerson(ctx, d.PersonID); err != nil {
					return err
				}
				if err := s.requireNoTemporaryStaff(ctx, d.PersonID); err != nil {
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
			if err := s.temporary.Update(ctx, personID, changes); err != nil {
				return violation.Translate(notFoundAs(err, models.EntityTemporaryStaff, personID),
					"update temporary staff", temporaryStaffRefs(target)...)
			}
		}
		updated, err = s.temporary.FindByPersonID(ctx, target)
		return notFoundAs(err, models.EntityTemporaryStaff, target)
	})
	if err != nil {
		return nil, violation.Translate(err, "update temporary staff")
	}
	return updated, nil
}

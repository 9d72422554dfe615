package service

import (
	"context"

	"personnel/internal/personnel/linkage"
	"personnel/internal/personnel/models"
	"personnel/internal/personnel/store"
	"personnel/internal/personnel/violation"
	id "personnel/pkg/domain"
	"personnel/pkg/optional"
)

func assignmentRefs(personID id.PersonID, unitID id.UnitID) []violation.Ref {
	return []violation.Ref{
		{Constraint: store.ConstraintAssignmentPerson, Entity: models.EntityPerson, ID: personID},
		{Constraint: store.ConstraintAssignmentUnit, Entity: models.EntityUnit, ID: unitID},
	}
}

// CreateAssignment places a person in a unit. The person is either referenced
// by ID or created from the nested payload in the same transaction.
func (s *Service) CreateAssignment(ctx context.Context, req models.CreateAssignmentRequest) (_ *models.Assignment, err error) {
	ctx, done := s.begin(ctx, "create_assignment")
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
		created      *models.Assignment
		nestedPerson bool
	)
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.validator.RequireUnit(ctx, req.UnitID); err != nil {
			return err
		}
		personID, isNew, err := s.linkPerson(ctx, decision)
		if err != nil {
			return err
		}
		nestedPerson = isNew

		a := &models.Assignment{
			PersonID:   personID,
			UnitID:     req.UnitID,
			AssignedOn: req.AssignedOn,
			RemovedOn:  req.RemovedOn,
			OrderRef:   req.OrderRef,
		}
		if err := s.assignments.Create(ctx, a); err != nil {
			return violation.Translate(err, "insert assignment", assignmentRefs(personID, req.UnitID)...)
		}
		created, err = s.assignments.FindByID(ctx, a.ID)
		return notFoundAs(err, models.EntityAssignment, a.ID)
	})
	if err != nil {
		return nil, violation.Translate(err, "create assignment")
	}

	s.logCreated(ctx, models.EntityAssignment, created.ID, nestedPerson)
	return created, nil
}

func (s *Service) GetAssignment(ctx context.Context, assignmentID id.AssignmentID) (_ *models.Assignment, err error) {
	ctx, done := s.begin(ctx, "get_assignment")
	defer done(&err)

	a, err := s.assignments.FindByID(ctx, assignmentID)
	if err != nil {
		return nil, violation.Translate(notFoundAs(err, models.EntityAssignment, assignmentID), "get assignment")
	}
	return a, nil
}

func (s *Service) ListAssignments(ctx context.Context, page models.Page) (_ *models.PageResult[*models.Assignment], err error) {
	ctx, done := s.begin(ctx, "list_assignments")
	defer done(&err)

	result, err := listPage(ctx, s.tx, page, s.assignments.List, s.assignments.Count)
	if err != nil {
		return nil, violation.Translate(err, "list assignments")
	}
	return result, nil
}

// UpdateAssignment applies only the supplied fields. A personId re-links the
// assignment to another existing person; a nested person payload edits the
// currently linked person in place. An empty request returns the stored
// assignment unchanged.
func (s *Service) UpdateAssignment(ctx context.Context, assignmentID id.AssignmentID, req models.UpdateAssignmentRequest) (_ *models.Assignment, err error) {
	ctx, done := s.begin(ctx, "update_assignment")
	defer done(&err)

	req.Normalize()
	decision, err := linkage.ForUpdate(req.PersonID, req.Person)
	if err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	changes := models.AssignmentChanges{
		UnitID:     req.UnitID,
		AssignedOn: req.AssignedOn,
		RemovedOn:  req.RemovedOn,
		OrderRef:   req.OrderRef,
	}

	var updated *models.Assignment
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.assignments.FindByID(ctx, assignmentID)
		if err != nil {
			return notFoundAs(err, models.EntityAssignment, assignmentID)
		}

		personID := current.PersonID
		switch d := decision.(type) {
		case linkage.LinkExisting:
			if err := s.validator.RequirePerson(ctx, d.PersonID); err != nil {
				return err
			}
			changes.PersonID = optional.Of(d.PersonID)
			personID = d.PersonID
		case linkage.UpdateNested:
			if err := s.updateLinkedPerson(ctx, current.PersonID, d.Changes); err != nil {
				return err
			}
		}

		unitID := current.UnitID
		if v, ok := changes.UnitID.Get(); ok {
			if err := s.validator.RequireUnit(ctx, v); err != nil {
				return err
			}
			unitID = v
		}

		if !changes.IsEmpty() {
			if err := s.assignments.Update(ctx, assignmentID, changes); err != nil {
				return violation.Translate(notFoundAs(err, models.EntityAssignment, assignmentID),
					"update assignment", assignmentRefs(personID, unitID)...)
			}
		}
		updated, err = s.assignments.FindByID(ctx, assignmentID)
		return notFoundAs(err, models.EntityAssignment, assignmentID)
	})
	if err != nil {
		return nil, violation.Translate(err, "update assignment")
	}
	return updated, nil
}

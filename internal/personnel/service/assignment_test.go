package service

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/mock/gomock"

	"personnel/internal/personnel/models"
	"personnel/internal/personnel/store"
	id "personnel/pkg/domain"
	dErrors "personnel/pkg/domain-errors"
	"personnel/pkg/optional"
	"personnel/pkg/platform/sentinel"
)

func createAssignmentRequest() models.CreateAssignmentRequest {
	return models.CreateAssignmentRequest{
		PersonID:   optional.Of(id.PersonID(7)),
		UnitID:     id.UnitID(3),
		AssignedOn: models.NewDate(2024, time.January, 2),
		RemovedOn:  models.NewDate(2024, time.December, 31),
		OrderRef:   " ORD-1 ",
	}
}

func storedAssignment(assignmentID id.AssignmentID, personID id.PersonID, unitID id.UnitID) *models.Assignment {
	return &models.Assignment{
		ID:         assignmentID,
		PersonID:   personID,
		UnitID:     unitID,
		AssignedOn: models.NewDate(2024, time.January, 2),
		RemovedOn:  models.NewDate(2024, time.December, 31),
		OrderRef:   "ORD-1",
		Person:     storedPerson(personID),
		Unit:       &models.Unit{ID: unitID, Name: "Human Resources", Acronym: "HR"},
	}
}

func (s *ServiceSuite) TestCreateAssignment() {
	ctx := context.Background()

	s.Run("existing person and unit are referenced exactly", func() {
		req := createAssignmentRequest()
		s.units.EXPECT().Exists(gomock.Any(), id.UnitID(3)).Return(true, nil)
		s.persons.EXPECT().Exists(gomock.Any(), id.PersonID(7)).Return(true, nil)
		s.assignments.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a *models.Assignment) error {
				s.Equal(id.PersonID(7), a.PersonID)
				s.Equal(id.UnitID(3), a.UnitID)
				s.Equal("ORD-1", a.OrderRef)
				a.ID = 11
				return nil
			})
		s.assignments.EXPECT().FindByID(gomock.Any(), id.AssignmentID(11)).Return(storedAssignment(11, 7, 3), nil)

		got, err := s.service.CreateAssignment(ctx, req)
		s.Require().NoError(err)
		s.Equal(id.PersonID(7), got.PersonID)
		s.Equal(id.UnitID(3), got.UnitID)
		s.Equal(1.0, testutil.ToFloat64(s.metrics.RecordsCreated.WithLabelValues(models.EntityAssignment)))
	})

	s.Run("both personId and nested person is invalid before any store call", func() {
		req := createAssignmentRequest()
		req.Person = nestedPerson()

		_, err := s.service.CreateAssignment(ctx, req)
		de := s.requireCode(err, dErrors.CodeInvalidRequest)
		s.Equal("exactly one of personId or nested person payload required", de.Message)
	})

	s.Run("neither personId nor nested person is invalid", func() {
		req := createAssignmentRequest()
		req.PersonID = optional.None[id.PersonID]()

		_, err := s.service.CreateAssignment(ctx, req)
		s.requireCode(err, dErrors.CodeInvalidRequest)
	})

	s.Run("invalid nested person is rejected before the transaction", func() {
		req := createAssignmentRequest()
		req.PersonID = optional.None[id.PersonID]()
		req.Person = nestedPerson()
		req.Person.Sex = "OTHER"

		_, err := s.service.CreateAssignment(ctx, req)
		s.requireCode(err, dErrors.CodeInvalidRequest)
	})

	s.Run("missing unit is NotFound naming the unit", func() {
		req := createAssignmentRequest()
		req.UnitID = 999999
		s.units.EXPECT().Exists(gomock.Any(), id.UnitID(999999)).Return(false, nil)

		_, err := s.service.CreateAssignment(ctx, req)
		de := s.requireCode(err, dErrors.CodeNotFound)
		s.Equal(models.EntityUnit, de.Entity)
		s.Equal("999999", de.ID)
	})

	s.Run("missing person is NotFound naming the person", func() {
		req := createAssignmentRequest()
		s.units.EXPECT().Exists(gomock.Any(), id.UnitID(3)).Return(true, nil)
		s.persons.EXPECT().Exists(gomock.Any(), id.PersonID(7)).Return(false, nil)

		_, err := s.service.CreateAssignment(ctx, req)
		de := s.requireCode(err, dErrors.CodeNotFound)
		s.Equal(models.EntityPerson, de.Entity)
	})

	s.Run("unit removed after the check reports the same NotFound", func() {
		req := createAssignmentRequest()
		req.UnitID = 999999
		s.units.EXPECT().Exists(gomock.Any(), id.UnitID(999999)).Return(true, nil)
		s.persons.EXPECT().Exists(gomock.Any(), id.PersonID(7)).Return(true, nil)
		s.assignments.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(fkViolation(store.ConstraintAssignmentUnit))

		_, err := s.service.CreateAssignment(ctx, req)
		s.requireCode(err, dErrors.CodeNotFound)
		s.ErrorIs(err, dErrors.NotFound(models.EntityUnit, id.UnitID(999999)))
	})

	s.Run("nested person is created in the same transaction", func() {
		req := createAssignmentRequest()
		req.PersonID = optional.None[id.PersonID]()
		req.Person = nestedPerson()

		s.units.EXPECT().Exists(gomock.Any(), id.UnitID(3)).Return(true, nil)
		s.persons.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *models.Person) error {
				s.Equal("Ana Souza", p.Name)
				p.ID = 42
				return nil
			})
		s.assignments.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a *models.Assignment) error {
				s.Equal(id.PersonID(42), a.PersonID)
				a.ID = 12
				return nil
			})
		s.assignments.EXPECT().FindByID(gomock.Any(), id.AssignmentID(12)).Return(storedAssignment(12, 42, 3), nil)

		got, err := s.service.CreateAssignment(ctx, req)
		s.Require().NoError(err)
		s.Equal(storedPerson(42), got.Person)
	})

	s.Run("failing dependent insert surfaces its error", func() {
		req := createAssignmentRequest()
		req.PersonID = optional.None[id.PersonID]()
		req.Person = nestedPerson()

		s.units.EXPECT().Exists(gomock.Any(), id.UnitID(3)).Return(true, nil)
		s.persons.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		s.assignments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

		_, err := s.service.CreateAssignment(ctx, req)
		s.requireCode(err, dErrors.CodeUnknown)
	})

	s.Run("expired context is an unknown failure", func() {
		expired, cancel := context.WithTimeout(ctx, -time.Second)
		defer cancel()
		s.units.EXPECT().Exists(gomock.Any(), id.UnitID(3)).Return(false, expired.Err())

		_, err := s.service.CreateAssignment(expired, createAssignmentRequest())
		s.requireCode(err, dErrors.CodeUnknown)
		s.ErrorIs(err, context.DeadlineExceeded)
	})
}

func (s *ServiceSuite) TestGetAssignment() {
	s.assignments.EXPECT().FindByID(gomock.Any(), id.AssignmentID(5)).Return(nil, sentinel.ErrNotFound)

	_, err := s.service.GetAssignment(context.Background(), 5)
	de := s.requireCode(err, dErrors.CodeNotFound)
	s.Equal(models.EntityAssignment, de.Entity)
}

func (s *ServiceSuite) TestUpdateAssignment() {
	ctx := context.Background()

	s.Run("empty changeset returns the stored assignment", func() {
		stored := storedAssignment(4, 7, 3)
		s.assignments.EXPECT().FindByID(gomock.Any(), id.AssignmentID(4)).Return(stored, nil).Times(3)

		updated, err := s.service.UpdateAssignment(ctx, 4, models.UpdateAssignmentRequest{})
		s.Require().NoError(err)
		got, err := s.service.GetAssignment(ctx, 4)
		s.Require().NoError(err)
		s.Equal(got, updated)
	})

	s.Run("missing target is NotFound", func() {
		s.assignments.EXPECT().FindByID(gomock.Any(), id.AssignmentID(404)).Return(nil, sentinel.ErrNotFound)

		_, err := s.service.UpdateAssignment(ctx, 404, models.UpdateAssignmentRequest{OrderRef: optional.Of("X")})
		de := s.requireCode(err, dErrors.CodeNotFound)
		s.Equal(models.EntityAssignment, de.Entity)
		s.Equal("404", de.ID)
	})

	s.Run("personId with nested person is invalid before any store call", func() {
		_, err := s.service.UpdateAssignment(ctx, 4, models.UpdateAssignmentRequest{
			PersonID: optional.Of(id.PersonID(8)),
			Person:   &models.PersonChanges{Name: optional.Of("B")},
		})
		s.requireCode(err, dErrors.CodeInvalidRequest)
	})

	s.Run("only supplied fields are written", func() {
		s.assignments.EXPECT().FindByID(gomock.Any(), id.AssignmentID(4)).Return(storedAssignment(4, 7, 3), nil)
		s.assignments.EXPECT().Update(gomock.Any(), id.AssignmentID(4), models.AssignmentChanges{
			OrderRef: optional.Of("ORD-2"),
		}).Return(nil)
		after := storedAssignment(4, 7, 3)
		after.OrderRef = "ORD-2"
		s.assignments.EXPECT().FindByID(gomock.Any(), id.AssignmentID(4)).Return(after, nil)

		got, err := s.service.UpdateAssignment(ctx, 4, models.UpdateAssignmentRequest{OrderRef: optional.Of(" ORD-2 ")})
		s.Require().NoError(err)
		s.Equal("ORD-2", got.OrderRef)
	})

	s.Run("relink to a missing person is NotFound", func() {
		s.assignments.EXPECT().FindByID(gomock.Any(), id.AssignmentID(4)).Return(storedAssignment(4, 7, 3), nil)
		s.persons.EXPECT().Exists(gomock.Any(), id.PersonID(8)).Return(false, nil)

		_, err := s.service.UpdateAssignment(ctx, 4, models.UpdateAssignmentRequest{PersonID: optional.Of(id.PersonID(8))})
		de := s.requireCode(err, dErrors.CodeNotFound)
		s.Equal(models.EntityPerson, de.Entity)
		s.Equal("8", de.ID)
	})

	s.Run("moving to a missing unit is NotFound", func() {
		s.assignments.EXPECT().FindByID(gomock.Any(), id.AssignmentID(4)).Return(storedAssignment(4, 7, 3), nil)
		s.units.EXPECT().Exists(gomock.Any(), id.UnitID(999999)).Return(false, nil)

		_, err := s.service.UpdateAssignment(ctx, 4, models.UpdateAssignmentRequest{UnitID: optional.Of(id.UnitID(999999))})
		de := s.requireCode(err, dErrors.CodeNotFound)
		s.Equal(models.EntityUnit, de.Entity)
	})

	s.Run("nested person edits the linked person in place", func() {
		changes := models.PersonChanges{Name: optional.Of(" Ana Paula ")}
		s.assignments.EXPECT().FindByID(gomock.Any(), id.AssignmentID(4)).Return(storedAssignment(4, 7, 3), nil)
		s.persons.EXPECT().Update(gomock.Any(), id.PersonID(7), models.PersonChanges{Name: optional.Of("Ana Paula")}).Return(nil)
		s.assignments.EXPECT().FindByID(gomock.Any(), id.AssignmentID(4)).Return(storedAssignment(4, 7, 3), nil)

		got, err := s.service.UpdateAssignment(ctx, 4, models.UpdateAssignmentRequest{Person: &changes})
		s.Require().NoError(err)
		s.Equal(id.PersonID(7), got.PersonID)
	})
}

func (s *ServiceSuite) TestListAssignments() {
	ctx := context.Background()
	all := []*models.Assignment{storedAssignment(1, 7, 3), storedAssignment(2, 7, 3), storedAssignment(3, 7, 3)}
	s.assignments.EXPECT().Count(gomock.Any()).Return(3, nil).AnyTimes()
	s.assignments.EXPECT().List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, page models.Page) ([]*models.Assignment, error) {
			start := min(page.Offset(), len(all))
			end := min(start+page.Limit(), len(all))
			return all[start:end], nil
		}).AnyTimes()

	first, err := s.service.ListAssignments(ctx, models.Page{Number: 1, Size: 2})
	s.Require().NoError(err)
	s.Equal(3, first.Count)
	s.Equal(all[:2], first.Data)

	second, err := s.service.ListAssignments(ctx, models.Page{Number: 2, Size: 2})
	s.Require().NoError(err)
	s.Equal(3, second.Count)
	s.Equal(all[2:], second.Data)

	beyond, err := s.service.ListAssignments(ctx, models.Page{Number: 5, Size: 2})
	s.Require().NoError(err)
	s.Equal(3, beyond.Count)
	s.NotNil(beyond.Data)
	s.Empty(beyond.Data)

	_, err = s.service.ListAssignments(ctx, models.Page{Number: 1, Size: 101})
	s.requireCode(err, dErrors.CodeInvalidRequest)
}

package service

import (
	"context"
	"time"

	"go.uber.org/mock/gomock"

	"personnel/internal/personnel/models"
	"personnel/internal/personnel/store"
	id "personnel/pkg/domain"
	dErrors "personnel/pkg/domain-errors"
	"personnel/pkg/optional"
	"personnel/pkg/platform/sentinel"
)

func storedPermanentStaff(personID id.PersonID, regNo string) *models.PermanentStaff {
	return &models.PermanentStaff{PersonID: personID, RegistrationNumber: regNo, Person: storedPerson(personID)}
}

func storedTemporaryStaff(personID id.PersonID) *models.TemporaryStaff {
	return &models.TemporaryStaff{
		PersonID:     personID,
		AdmittedOn:   models.NewDate(2023, time.February, 1),
		TerminatedOn: models.NewDate(2025, time.February, 1),
		Person:       storedPerson(personID),
	}
}

func (s *ServiceSuite) TestCreatePermanentStaff() {
	ctx := context.Background()

	s.Run("links an existing person", func() {
		s.persons.EXPECT().Exists(gomock.Any(), id.PersonID(7)).Return(true, nil)
		s.permanent.EXPECT().Exists(gomock.Any(), id.PersonID(7)).Return(false, nil)
		s.permanent.EXPECT().Create(gomock.Any(), &models.PermanentStaff{PersonID: 7, RegistrationNumber: "REG-1"}).Return(nil)
		s.permanent.EXPECT().FindByPersonID(gomock.Any(), id.PersonID(7)).Return(storedPermanentStaff(7, "REG-1"), nil)

		got, err := s.service.CreatePermanentStaff(ctx, models.CreatePermanentStaffRequest{
			PersonID:           optional.Of(id.PersonID(7)),
			RegistrationNumber: " REG-1 ",
		})
		s.Require().NoError(err)
		s.Equal(storedPermanentStaff(7, "REG-1"), got)
	})

	s.Run("person already holding a record is Conflict", func() {
		s.persons.EXPECT().Exists(gomock.Any(), id.PersonID(7)).Return(true, nil)
		s.permanent.EXPECT().Exists(gomock.Any(), id.PersonID(7)).Return(true, nil)

		_, err := s.service.CreatePermanentStaff(ctx, models.CreatePermanentStaffRequest{
			PersonID:           optional.Of(id.PersonID(7)),
			RegistrationNumber: "REG-1",
		})
		de := s.requireCode(err, dErrors.CodeConflict)
		s.Equal("person 7 already has a permanent staff record", de.Message)
	})

	s.Run("duplicate registration number is Conflict", func() {
		s.persons.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *models.Person) error {
				p.ID = 9
				return nil
			})
		s.permanent.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(uniqueViolation(store.ConstraintPermanentStaffRegNo))

		_, err := s.service.CreatePermanentStaff(ctx, models.CreatePermanentStaffRequest{
			Person:             nestedPerson(),
			RegistrationNumber: "REG-1",
		})
		de := s.requireCode(err, dErrors.CodeConflict)
		s.Equal(models.EntityPermanentStaff, de.Entity)
		s.Equal("REG-1", de.ID)
	})

	s.Run("registration number longer than 20 characters is invalid", func() {
		_, err := s.service.CreatePermanentStaff(ctx, models.CreatePermanentStaffRequest{
			PersonID:           optional.Of(id.PersonID(7)),
			RegistrationNumber: "REG-0123456789-0123456789",
		})
		s.requireCode(err, dErrors.CodeInvalidRequest)
	})
}

func (s *ServiceSuite) TestUpdatePermanentStaff() {
	ctx := context.Background()

	s.Run("empty changeset returns the stored record", func() {
		stored := storedPermanentStaff(7, "REG-1")
		s.permanent.EXPECT().FindByPersonID(gomock.Any(), id.PersonID(7)).Return(stored, nil).Times(3)

		updated, err := s.service.UpdatePermanentStaff(ctx, 7, models.UpdatePermanentStaffRequest{})
		s.Require().NoError(err)
		got, err := s.service.GetPermanentStaff(ctx, 7)
		s.Require().NoError(err)
		s.Equal(got, updated)
	})

	s.Run("missing target is NotFound before the new person is checked", func() {
		s.permanent.EXPECT().FindByPersonID(gomock.Any(), id.PersonID(70)).Return(nil, sentinel.ErrNotFound)

		_, err := s.service.UpdatePermanentStaff(ctx, 70, models.UpdatePermanentStaffRequest{
			PersonID: optional.Of(id.PersonID(8)),
		})
		de := s.requireCode(err, dErrors.CodeNotFound)
		s.Equal(models.EntityPermanentStaff, de.Entity)
	})

	s.Run("relink moves the record to another person", func() {
		s.permanent.EXPECT().FindByPersonID(gomock.Any(), id.PersonID(7)).Return(storedPermanentStaff(7, "REG-1"), nil)
		s.persons.EXPECT().Exists(gomock.Any(), id.PersonID(8)).Return(true, nil)
		s.permanent.EXPECT().Exists(gomock.Any(), id.PersonID(8)).Return(false, nil)
		s.permanent.EXPECT().Update(gomock.Any(), id.PersonID(7), models.PermanentStaffChanges{
			PersonID: optional.Of(id.PersonID(8)),
		}).Return(nil)
		s.permanent.EXPECT().FindByPersonID(gomock.Any(), id.PersonID(8)).Return(storedPermanentStaff(8, "REG-1"), nil)

		got, err := s.service.UpdatePermanentStaff(ctx, 7, models.UpdatePermanentStaffRequest{
			PersonID: optional.Of(id.PersonID(8)),
		})
		s.Require().NoError(err)
		s.Equal(id.PersonID(8), got.PersonID)
	})

	s.Run("registration number taken by another record is Conflict", func() {
		s.permanent.EXPECT().FindByPersonID(gomock.Any(), id.PersonID(7)).Return(storedPermanentStaff(7, "REG-1"), nil)
		s.permanent.EXPECT().Update(gomock.Any(), id.PersonID(7), gomock.Any()).
			Return(uniqueViolation(store.ConstraintPermanentStaffRegNo))

		_, err := s.service.UpdatePermanentStaff(ctx, 7, models.UpdatePermanentStaffRequest{
			RegistrationNumber: optional.Of("REG-2"),
		})
		de := s.requireCode(err, dErrors.CodeConflict)
		s.Equal(`registration number "REG-2" already exists`, de.Message)
	})
}

func (s *ServiceSuite) TestCreateTemporaryStaff() {
	ctx := context.Background()

	s.Run("nested person and staff commit together", func() {
		s.persons.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *models.Person) error {
				p.ID = 21
				return nil
			})
		s.temporary.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, staff *models.TemporaryStaff) error {
				s.Equal(id.PersonID(21), staff.PersonID)
				return nil
			})
		s.temporary.EXPECT().FindByPersonID(gomock.Any(), id.PersonID(21)).Return(storedTemporaryStaff(21), nil)

		got, err := s.service.CreateTemporaryStaff(ctx, models.CreateTemporaryStaffRequest{
			Person:       nestedPerson(),
			AdmittedOn:   models.NewDate(2023, time.February, 1),
			TerminatedOn: models.NewDate(2025, time.February, 1),
		})
		s.Require().NoError(err)
		s.Equal(storedPerson(21), got.Person)
	})

	s.Run("missing dates are invalid", func() {
		_, err := s.service.CreateTemporaryStaff(ctx, models.CreateTemporaryStaffRequest{
			PersonID: optional.Of(id.PersonID(7)),
		})
		s.requireCode(err, dErrors.CodeInvalidRequest)
	})

	s.Run("person removed after the check is NotFound", func() {
		s.persons.EXPECT().Exists(gomock.Any(), id.PersonID(7)).Return(true, nil)
		s.temporary.EXPECT().Exists(gomock.Any(), id.PersonID(7)).Return(false, nil)
		s.temporary.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(fkViolation(store.ConstraintTemporaryStaffPerson))

		_, err := s.service.CreateTemporaryStaff(ctx, models.CreateTemporaryStaffRequest{
			PersonID:     optional.Of(id.PersonID(7)),
			AdmittedOn:   models.NewDate(2023, time.February, 1),
			TerminatedOn: models.NewDate(2025, time.February, 1),
		})
		s.requireCode(err, dErrors.CodeNotFound)
		s.ErrorIs(err, dErrors.NotFound(models.EntityPerson, id.PersonID(7)))
	})
}

func (s *ServiceSuite) TestUpdateTemporaryStaff() {
	ctx := context.Background()

	s.Run("only supplied dates are written", func() {
		s.temporary.EXPECT().FindByPersonID(gomock.Any(), id.PersonID(7)).Return(storedTemporaryStaff(7), nil)
		terminated := models.NewDate(2026, time.June, 30)
		s.temporary.EXPECT().Update(gomock.Any(), id.PersonID(7), models.TemporaryStaffChanges{
			TerminatedOn: optional.Of(terminated),
		}).Return(nil)
		after := storedTemporaryStaff(7)
		after.TerminatedOn = terminated
		s.temporary.EXPECT().FindByPersonID(gomock.Any(), id.PersonID(7)).Return(after, nil)

		got, err := s.service.UpdateTemporaryStaff(ctx, 7, models.UpdateTemporaryStaffRequest{
			TerminatedOn: optional.Of(terminated),
		})
		s.Require().NoError(err)
		s.True(terminated.Equal(got.TerminatedOn))
	})

	s.Run("relink onto a person with a record is Conflict", func() {
		s.temporary.EXPECT().FindByPersonID(gomock.Any(), id.PersonID(7)).Return(storedTemporaryStaff(7), nil)
		s.persons.EXPECT().Exists(gomock.Any(), id.PersonID(8)).Return(true, nil)
		s.temporary.EXPECT().Exists(gomock.Any(), id.PersonID(8)).Return(true, nil)

		_, err := s.service.UpdateTemporaryStaff(ctx, 7, models.UpdateTemporaryStaffRequest{
			PersonID: optional.Of(id.PersonID(8)),
		})
		de := s.requireCode(err, dErrors.CodeConflict)
		s.Equal("person 8 already has a temporary staff record", de.Message)
	})
}

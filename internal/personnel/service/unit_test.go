package service

import (
	"context"

	"go.uber.org/mock/gomock"

	"personnel/internal/personnel/models"
	id "personnel/pkg/domain"
	dErrors "personnel/pkg/domain-errors"
	"personnel/pkg/optional"
	"personnel/pkg/platform/sentinel"
)

func (s *ServiceSuite) TestCreateUnit() {
	ctx := context.Background()

	s.Run("stores a trimmed unit", func() {
		s.units.EXPECT().Create(gomock.Any(), &models.Unit{Name: "Human Resources", Acronym: "HR"}).
			DoAndReturn(func(_ context.Context, u *models.Unit) error {
				u.ID = 1
				return nil
			})

		got, err := s.service.CreateUnit(ctx, models.UnitInput{Name: " Human Resources ", Acronym: "HR"})
		s.Require().NoError(err)
		s.Equal(id.UnitID(1), got.ID)
	})

	s.Run("blank acronym is invalid", func() {
		_, err := s.service.CreateUnit(ctx, models.UnitInput{Name: "Finance", Acronym: "  "})
		s.requireCode(err, dErrors.CodeInvalidRequest)
	})
}

func (s *ServiceSuite) TestUpdateUnit() {
	ctx := context.Background()

	s.Run("missing unit is NotFound", func() {
		s.units.EXPECT().Update(gomock.Any(), id.UnitID(404), gomock.Any()).Return(sentinel.ErrNotFound)

		_, err := s.service.UpdateUnit(ctx, 404, models.UnitChanges{Name: optional.Of("Finance")})
		de := s.requireCode(err, dErrors.CodeNotFound)
		s.Equal(models.EntityUnit, de.Entity)
	})

	s.Run("empty changeset returns the stored unit", func() {
		stored := &models.Unit{ID: 2, Name: "Finance", Acronym: "FIN"}
		s.units.EXPECT().FindByID(gomock.Any(), id.UnitID(2)).Return(stored, nil)

		got, err := s.service.UpdateUnit(ctx, 2, models.UnitChanges{})
		s.Require().NoError(err)
		s.Equal(stored, got)
	})
}

func (s *ServiceSuite) TestCities() {
	ctx := context.Background()

	s.Run("create uppercases the state code", func() {
		s.cities.EXPECT().Create(gomock.Any(), &models.City{Name: "Recife", StateCode: "PE"}).Return(nil)

		got, err := s.service.CreateCity(ctx, models.CityInput{Name: "Recife", StateCode: "pe"})
		s.Require().NoError(err)
		s.Equal("PE", got.StateCode)
	})

	s.Run("get missing city is NotFound", func() {
		s.cities.EXPECT().FindByID(gomock.Any(), id.CityID(3)).Return(nil, sentinel.ErrNotFound)

		_, err := s.service.GetCity(ctx, 3)
		s.requireCode(err, dErrors.CodeNotFound)
	})

	s.Run("empty table lists an empty page", func() {
		s.cities.EXPECT().List(gomock.Any(), models.Page{Number: 1, Size: 10}).Return(nil, nil)
		s.cities.EXPECT().Count(gomock.Any()).Return(0, nil)

		got, err := s.service.ListCities(ctx, models.Page{Number: 1, Size: 10})
		s.Require().NoError(err)
		s.Equal(0, got.Count)
		s.NotNil(got.Data)
	})
}

package service

import (
	"context"

	"personnel/internal/personnel/models"
	"personnel/internal/personnel/violation"
	id "personnel/pkg/domain"
)

// CreateCity stores a single city. Cities are not linked to any other entity.
func (s *Service) CreateCity(ctx context.Context, in models.CityInput) (_ *models.City, err error) {
	ctx, done := s.begin(ctx, "create_city")
	defer done(&err)

	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	c := &models.City{Name: in.Name, StateCode: in.StateCode}
	if err := s.cities.Create(ctx, c); err != nil {
		return nil, violation.Translate(err, "create city")
	}
	s.logCreated(ctx, models.EntityCity, c.ID, false)
	return c, nil
}

func (s *Service) GetCity(ctx context.Context, cityID id.CityID) (_ *models.City, err error) {
	ctx, done := s.begin(ctx, "get_city")
	defer done(&err)

	c, err := s.cities.FindByID(ctx, cityID)
	if err != nil {
		return nil, violation.Translate(notFoundAs(err, models.EntityCity, cityID), "get city")
	}
	return c, nil
}

func (s *Service) ListCities(ctx context.Context, page models.Page) (_ *models.PageResult[*models.City], err error) {
	ctx, done := s.begin(ctx, "list_cities")
	defer done(&err)

	result, err := listPage(ctx, s.tx, page, s.cities.List, s.cities.Count)
	if err != nil {
		return nil, violation.Translate(err, "list cities")
	}
	return result, nil
}

package service

import (
	"context"

	"personnel/internal/personnel/models"
	"personnel/internal/personnel/violation"
	id "personnel/pkg/domain"
)

// CreateUnit stores a single unit. No linkage is involved.
func (s *Service) CreateUnit(ctx context.Context, in models.UnitInput) (_ *models.Unit, err error) {
	ctx, done := s.begin(ctx, "create_unit")
	defer done(&err)

	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	u := &models.Unit{Name: in.Name, Acronym: in.Acronym}
	if err := s.units.Create(ctx, u); err != nil {
		return nil, violation.Translate(err, "create unit")
	}
	s.logCreated(ctx, models.EntityUnit, u.ID, false)
	return u, nil
}

func (s *Service) GetUnit(ctx context.Context, unitID id.UnitID) (_ *models.Unit, err error) {
	ctx, done := s.begin(ctx, "get_unit")
	defer done(&err)

	u, err := s.units.FindByID(ctx, unitID)
	if err != nil {
		return nil, violation.Translate(notFoundAs(err, models.EntityUnit, unitID), "get unit")
	}
	return u, nil
}

func (s *Service) ListUnits(ctx context.Context, page models.Page) (_ *models.PageResult[*models.Unit], err error) {
	ctx, done := s.begin(ctx, "list_units")
	defer done(&err)

	result, err := listPage(ctx, s.tx, page, s.units.List, s.units.Count)
	if err != nil {
		return nil, violation.Translate(err, "list units")
	}
	return result, nil
}

func (s *Service) UpdateUnit(ctx context.Context, unitID id.UnitID, changes models.UnitChanges) (_ *models.Unit, err error) {
	ctx, done := s.begin(ctx, "update_unit")
	defer done(&err)

	changes.Normalize()
	if err := changes.Validate(); err != nil {
		return nil, err
	}

	var updated *models.Unit
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if !changes.IsEmpty() {
			if err := s.units.Update(ctx, unitID, changes); err != nil {
				return notFoundAs(err, models.EntityUnit, unitID)
			}
		}
		var err error
		updated, err = s.units.FindByID(ctx, unitID)
		return notFoundAs(err, models.EntityUnit, unitID)
	})
	if err != nil {
		return nil, violation.Translate(err, "update unit")
	}
	return updated, nil
}

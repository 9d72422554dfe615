package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"personnel/internal/personnel/models"
	id "personnel/pkg/domain"
	"personnel/pkg/platform/sentinel"
	"personnel/pkg/platform/tx"
)

// UnitStore persists organizational units in PostgreSQL.
type UnitStore struct {
	db *sql.DB
}

func NewUnitStore(db *sql.DB) *UnitStore {
	return &UnitStore{db: db}
}

func (s *UnitStore) Create(ctx context.Context, u *models.Unit) error {
	query := `INSERT INTO units (name, acronym) VALUES ($1, $2) RETURNING id`
	var unitID int64
	if err := tx.QuerierFrom(ctx, s.db).QueryRowContext(ctx, query, u.Name, u.Acronym).Scan(&unitID); err != nil {
		return fmt.Errorf("insert unit: %w", err)
	}
	u.ID = id.UnitID(unitID)
	return nil
}

func (s *UnitStore) FindByID(ctx context.Context, unitID id.UnitID) (*models.Unit, error) {
	query := `SELECT id, name, acronym FROM units WHERE id = $1`
	u, err := scanUnit(tx.QuerierFrom(ctx, s.db).QueryRowContext(ctx, query, int64(unitID)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find unit by id: %w", err)
	}
	return u, nil
}

func (s *UnitStore) Exists(ctx context.Context, unitID id.UnitID) (bool, error) {
	return exists(ctx, tx.QuerierFrom(ctx, s.db), "units", "id", int64(unitID))
}

func (s *UnitStore) Update(ctx context.Context, unitID id.UnitID, changes models.UnitChanges) error {
	var set setClause
	if v, ok := changes.Name.Get(); ok {
		set.add("name", v)
	}
	if v, ok := changes.Acronym.Get(); ok {
		set.add("acronym", v)
	}
	q := tx.QuerierFrom(ctx, s.db)
	if set.empty() {
		return requireExists(ctx, q, "units", "id", int64(unitID))
	}
	query, args := set.build("units", "id", int64(unitID))
	return execUpdate(ctx, q, "update unit", query, args)
}

func (s *UnitStore) List(ctx context.Context, page models.Page) ([]*models.Unit, error) {
	query := `SELECT id, name, acronym FROM units ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := tx.QuerierFrom(ctx, s.db).QueryContext(ctx, query, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	defer rows.Close()

	units := make([]*models.Unit, 0, page.Limit())
	for rows.Next() {
		u, err := scanUnit(rows)
		if err != nil {
			return nil, fmt.Errorf("scan unit: %w", err)
		}
		units = append(units, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate units: %w", err)
	}
	return units, nil
}

func (s *UnitStore) Count(ctx context.Context) (int, error) {
	return count(ctx, tx.QuerierFrom(ctx, s.db), "units")
}

func scanUnit(row rowScanner) (*models.Unit, error) {
	var (
		u      models.Unit
		unitID int64
	)
	if err := row.Scan(&unitID, &u.Name, &u.Acronym); err != nil {
		return nil, err
	}
	u.ID = id.UnitID(unitID)
	return &u, nil
}

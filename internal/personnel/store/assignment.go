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

const assignmentSelect = `
	SELECT a.id, a.person_id, a.unit_id, a.assigned_on, a.removed_on, a.order_ref,
	       p.id, p.name, p.birth_date, p.sex, p.mother_name, p.father_name,
	       u.id, u.name, u.acronym
	FROM assignments a
	JOIN persons p ON p.id = a.person_id
	JOIN units u ON u.id = a.unit_id
`

// AssignmentStore persists assignments in PostgreSQL. Reads embed the
// linked person and unit.
type AssignmentStore struct {
	db *sql.DB
}

func NewAssignmentStore(db *sql.DB) *AssignmentStore {
	return &AssignmentStore{db: db}
}

func (s *AssignmentStore) Create(ctx context.Context, a *models.Assignment) error {
	query := `
		INSERT INTO assignments (person_id, unit_id, assigned_on, removed_on, order_ref)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	var assignmentID int64
	err := tx.QuerierFrom(ctx, s.db).QueryRowContext(ctx, query,
		int64(a.PersonID), int64(a.UnitID), a.AssignedOn, a.RemovedOn, a.OrderRef,
	).Scan(&assignmentID)
	if err != nil {
		return fmt.Errorf("insert assignment: %w", err)
	}
	a.ID = id.AssignmentID(assignmentID)
	return nil
}

func (s *AssignmentStore) FindByID(ctx context.Context, assignmentID id.AssignmentID) (*models.Assignment, error) {
	query := assignmentSelect + ` WHERE a.id = $1`
	a, err := scanAssignment(tx.QuerierFrom(ctx, s.db).QueryRowContext(ctx, query, int64(assignmentID)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find assignment by id: %w", err)
	}
	return a, nil
}

func (s *AssignmentStore) Exists(ctx context.Context, assignmentID id.AssignmentID) (bool, error) {
	return exists(ctx, tx.QuerierFrom(ctx, s.db), "assignments", "id", int64(assignmentID))
}

func (s *AssignmentStore) Update(ctx context.Context, assignmentID id.AssignmentID, changes models.AssignmentChanges) error {
	var set setClause
	if v, ok := changes.PersonID.Get(); ok {
		set.add("person_id", int64(v))
	}
	if v, ok := changes.UnitID.Get(); ok {
		set.add("unit_id", int64(v))
	}
	if v, ok := changes.AssignedOn.Get(); ok {
		set.add("assigned_on", v)
	}
	if v, ok := changes.RemovedOn.Get(); ok {
		set.add("removed_on", v)
	}
	if v, ok := changes.OrderRef.Get(); ok {
		set.add("order_ref", v)
	}
	q := tx.QuerierFrom(ctx, s.db)
	if set.empty() {
		return requireExists(ctx, q, "assignments", "id", int64(assignmentID))
	}
	query, args := set.build("assignments", "id", int64(assignmentID))
	return execUpdate(ctx, q, "update assignment", query, args)
}

func (s *AssignmentStore) List(ctx context.Context, page models.Page) ([]*models.Assignment, error) {
	query := assignmentSelect + ` ORDER BY a.id LIMIT $1 OFFSET $2`
	rows, err := tx.QuerierFrom(ctx, s.db).QueryContext(ctx, query, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	defer rows.Close()

	assignments := make([]*models.Assignment, 0, page.Limit())
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate assignments: %w", err)
	}
	return assignments, nil
}

func (s *AssignmentStore) Count(ctx context.Context) (int, error) {
	return count(ctx, tx.QuerierFrom(ctx, s.db), "assignments")
}

func scanAssignment(row rowScanner) (*models.Assignment, error) {
	var (
		a                              models.Assignment
		p                              models.Person
		u                              models.Unit
		assignmentID, personID         int64
		unitID, embPersonID, embUnitID int64
		sex                            string
	)
	err := row.Scan(
		&assignmentID, &personID, &unitID, &a.AssignedOn, &a.RemovedOn, &a.OrderRef,
		&embPersonID, &p.Name, &p.BirthDate, &sex, &p.MotherName, &p.FatherName,
		&embUnitID, &u.Name, &u.Acronym,
	)
	if err != nil {
		return nil, err
	}
	a.ID = id.AssignmentID(assignmentID)
	a.PersonID = id.PersonID(personID)
	a.UnitID = id.UnitID(unitID)
	p.ID = id.PersonID(embPersonID)
	p.Sex = models.Sex(sex)
	u.ID = id.UnitID(embUnitID)
	a.Person = &p
	a.Unit = &u
	return &a, nil
}

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

const temporaryStaffSelect = `
	SELECT s.person_id, s.admitted_on, s.terminated_on,
	       p.id, p.name, p.birth_date, p.sex, p.mother_name, p.father_name
	FROM temporary_staff s
	JOIN persons p ON p.id = s.person_id
`

// TemporaryStaffStore persists temporary staff records keyed by person ID.
type TemporaryStaffStore struct {
	db *sql.DB
}

func NewTemporaryStaffStore(db *sql.DB) *TemporaryStaffStore {
	return &TemporaryStaffStore{db: db}
}

func (s *TemporaryStaffStore) Create(ctx context.Context, staff *models.TemporaryStaff) error {
	query := `INSERT INTO temporary_staff (person_id, admitted_on, terminated_on) VALUES ($1, $2, $3)`
	_, err := tx.QuerierFrom(ctx, s.db).ExecContext(ctx, query, int64(staff.PersonID), staff.AdmittedOn, staff.TerminatedOn)
	if err != nil {
		return fmt.Errorf("insert temporary staff: %w", err)
	}
	return nil
}

func (s *TemporaryStaffStore) FindByPersonID(ctx context.Context, personID id.PersonID) (*models.TemporaryStaff, error) {
	query := temporaryStaffSelect + ` WHERE s.person_id = $1`
	staff, err := scanTemporaryStaff(tx.QuerierFrom(ctx, s.db).QueryRowContext(ctx, query, int64(personID)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find temporary staff by person id: %w", err)
	}
	return staff, nil
}

func (s *TemporaryStaffStore) Exists(ctx context.Context, personID id.PersonID) (bool, error) {
	return exists(ctx, tx.QuerierFrom(ctx, s.db), "temporary_staff", "person_id", int64(personID))
}

func (s *TemporaryStaffStore) Update(ctx context.Context, personID id.PersonID, changes models.TemporaryStaffChanges) error {
	var set setClause
	if v, ok := changes.PersonID.Get(); ok {
		set.add("person_id", int64(v))
	}
	if v, ok := changes.AdmittedOn.Get(); ok {
		set.add("admitted_on", v)
	}
	if v, ok := changes.TerminatedOn.Get(); ok {
		set.add("terminated_on", v)
	}
	q := tx.QuerierFrom(ctx, s.db)
	if set.empty() {
		return requireExists(ctx, q, "temporary_staff", "person_id", int64(personID))
	}
	query, args := set.build("temporary_staff", "person_id", int64(personID))
	return execUpdate(ctx, q, "update temporary staff", query, args)
}

func (s *TemporaryStaffStore) List(ctx context.Context, page models.Page) ([]*models.TemporaryStaff, error) {
	query := temporaryStaffSelect + ` ORDER BY s.person_id LIMIT $1 OFFSET $2`
	rows, err := tx.QuerierFrom(ctx, s.db).QueryContext(ctx, query, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("list temporary staff: %w", err)
	}
	defer rows.Close()

	records := make([]*models.TemporaryStaff, 0, page.Limit())
	for rows.Next() {
		staff, err := scanTemporaryStaff(rows)
		if err != nil {
			return nil, fmt.Errorf("scan temporary staff: %w", err)
		}
		records = append(records, staff)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate temporary staff: %w", err)
	}
	return records, nil
}

func (s *TemporaryStaffStore) Count(ctx context.Context) (int, error) {
	return count(ctx, tx.QuerierFrom(ctx, s.db), "temporary_staff")
}

func scanTemporaryStaff(row rowScanner) (*models.TemporaryStaff, error) {
	var (
		staff                 models.TemporaryStaff
		p                     models.Person
		personID, embPersonID int64
		sex                   string
	)
	err := row.Scan(
		&personID, &staff.AdmittedOn, &staff.TerminatedOn,
		&embPersonID, &p.Name, &p.BirthDate, &sex, &p.MotherName, &p.FatherName,
	)
	if err != nil {
		return nil, err
	}
	staff.PersonID = id.PersonID(personID)
	p.ID = id.PersonID(embPersonID)
	p.Sex = models.Sex(sex)
	staff.Person = &p
	return &staff, nil
}

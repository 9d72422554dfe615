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

const permanentStaffSelect = `
	SELECT s.person_id, s.registration_number,
	       p.id, p.name, p.birth_date, p.sex, p.mother_name, p.father_name
	FROM permanent_staff s
	JOIN persons p ON p.id = s.person_id
`

// PermanentStaffStore persists permanent staff records keyed by person ID.
type PermanentStaffStore struct {
	db *sql.DB
}

func NewPermanentStaffStore(db *sql.DB) *PermanentStaffStore {
	return &PermanentStaffStore{db: db}
}

func (s *PermanentStaffStore) Create(ctx context.Context, staff *models.PermanentStaff) error {
	query := `INSERT INTO permanent_staff (person_id, registration_number) VALUES ($1, $2)`
	_, err := tx.QuerierFrom(ctx, s.db).ExecContext(ctx, query, int64(staff.PersonID), staff.RegistrationNumber)
	if err != nil {
		return fmt.Errorf("insert permanent staff: %w", err)
	}
	return nil
}

func (s *PermanentStaffStore) FindByPersonID(ctx context.Context, personID id.PersonID) (*models.PermanentStaff, error) {
	query := permanentStaffSelect + ` WHERE s.person_id = $1`
	staff, err := scanPermanentStaff(tx.QuerierFrom(ctx, s.db).QueryRowContext(ctx, query, int64(personID)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find permanent staff by person id: %w", err)
	}
	return staff, nil
}

func (s *PermanentStaffStore) Exists(ctx context.Context, personID id.PersonID) (bool, error) {
	return exists(ctx, tx.QuerierFrom(ctx, s.db), "permanent_staff", "person_id", int64(personID))
}

// Update rewrites the record keyed by personID. A PersonID change re-keys the
// record onto another person.
func (s *PermanentStaffStore) Update(ctx context.Context, personID id.PersonID, changes models.PermanentStaffChanges) error {
	var set setClause
	if v, ok := changes.PersonID.Get(); ok {
		set.add("person_id", int64(v))
	}
	if v, ok := changes.RegistrationNumber.Get(); ok {
		set.add("registration_number", v)
	}
	q := tx.QuerierFrom(ctx, s.db)
	if set.empty() {
		return requireExists(ctx, q, "permanent_staff", "person_id", int64(personID))
	}
	query, args := set.build("permanent_staff", "person_id", int64(personID))
	return execUpdate(ctx, q, "update permanent staff", query, args)
}

func (s *PermanentStaffStore) List(ctx context.Context, page models.Page) ([]*models.PermanentStaff, error) {
	query := permanentStaffSelect + ` ORDER BY s.person_id LIMIT $1 OFFSET $2`
	rows, err := tx.QuerierFrom(ctx, s.db).QueryContext(ctx, query, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("list permanent staff: %w", err)
	}
	defer rows.Close()

	records := make([]*models.PermanentStaff, 0, page.Limit())
	for rows.Next() {
		staff, err := scanPermanentStaff(rows)
		if err != nil {
			return nil, fmt.Errorf("scan permanent staff: %w", err)
		}
		records = append(records, staff)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate permanent staff: %w", err)
	}
	return records, nil
}

func (s *PermanentStaffStore) Count(ctx context.Context) (int, error) {
	return count(ctx, tx.QuerierFrom(ctx, s.db), "permanent_staff")
}

func scanPermanentStaff(row rowScanner) (*models.PermanentStaff, error) {
	var (
		staff                 models.PermanentStaff
		p                     models.Person
		personID, embPersonID int64
		sex                   string
	)
	err := row.Scan(
		&personID, &staff.RegistrationNumber,
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

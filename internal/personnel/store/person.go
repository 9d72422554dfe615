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

// PersonStore persists persons in PostgreSQL.
type PersonStore struct {
	db *sql.DB
}

// NewPersonStore constructs a PostgreSQL-backed person store.
func NewPersonStore(db *sql.DB) *PersonStore {
	return &PersonStore{db: db}
}

// Create inserts p and sets its generated ID.
func (s *PersonStore) Create(ctx context.Context, p *models.Person) error {
	query := `
		INSERT INTO persons (name, birth_date, sex, mother_name, father_name)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	var personID int64
	err := tx.QuerierFrom(ctx, s.db).QueryRowContext(ctx, query,
		p.Name, p.BirthDate, string(p.Sex), p.MotherName, p.FatherName,
	).Scan(&personID)
	if err != nil {
		return fmt.Errorf("insert person: %w", err)
	}
	p.ID = id.PersonID(personID)
	return nil
}

func (s *PersonStore) FindByID(ctx context.Context, personID id.PersonID) (*models.Person, error) {
	query := `
		SELECT id, name, birth_date, sex, mother_name, father_name
		FROM persons
		WHERE id = $1
	`
	p, err := scanPerson(tx.QuerierFrom(ctx, s.db).QueryRowContext(ctx, query, int64(personID)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find person by id: %w", err)
	}
	return p, nil
}

// Exists reports whether a person with the given ID is stored.
func (s *PersonStore) Exists(ctx context.Context, personID id.PersonID) (bool, error) {
	return exists(ctx, tx.QuerierFrom(ctx, s.db), "persons", "id", int64(personID))
}

// Update writes only the fields present in changes. An empty changeset
// still verifies the row exists.
func (s *PersonStore) Update(ctx context.Context, personID id.PersonID, changes models.PersonChanges) error {
	var set setClause
	if v, ok := changes.Name.Get(); ok {
		set.add("name", v)
	}
	if v, ok := changes.BirthDate.Get(); ok {
		set.add("birth_date", v)
	}
	if v, ok := changes.Sex.Get(); ok {
		set.add("sex", string(v))
	}
	if v, ok := changes.MotherName.Get(); ok {
		set.add("mother_name", v)
	}
	if v, ok := changes.FatherName.Get(); ok {
		set.add("father_name", v)
	}
	q := tx.QuerierFrom(ctx, s.db)
	if set.empty() {
		return requireExists(ctx, q, "persons", "id", int64(personID))
	}
	query, args := set.build("persons", "id", int64(personID))
	return execUpdate(ctx, q, "update person", query, args)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPerson(row rowScanner) (*models.Person, error) {
	var (
		p        models.Person
		personID int64
		sex      string
	)
	if err := row.Scan(&personID, &p.Name, &p.BirthDate, &sex, &p.MotherName, &p.FatherName); err != nil {
		return nil, err
	}
	p.ID = id.PersonID(personID)
	p.Sex = models.Sex(sex)
	return &p, nil
}

func exists(ctx context.Context, q tx.Querier, table, column string, key int64) (bool, error) {
	query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)", table, column)
	var found bool
	if err := q.QueryRowContext(ctx, query, key).Scan(&found); err != nil {
		return false, fmt.Errorf("check %s exists: %w", table, err)
	}
	return found, nil
}

func requireExists(ctx context.Context, q tx.Querier, table, column string, key int64) error {
	found, err := exists(ctx, q, table, column, key)
	if err != nil {
		return err
	}
	if !found {
		return sentinel.ErrNotFound
	}
	return nil
}

func execUpdate(ctx context.Context, q tx.Querier, op, query string, args []any) error {
	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s rows affected: %w", op, err)
	}
	if rows == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func count(ctx context.Context, q tx.Querier, table string) (int, error) {
	var n int
	if err := q.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}

//go:build integration

package store_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/suite"

	"personnel/internal/personnel/models"
	"personnel/internal/personnel/store"
	id "personnel/pkg/domain"
	"personnel/pkg/optional"
	"personnel/pkg/platform/sentinel"
	"personnel/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres    *containers.PostgresContainer
	tx          *store.PostgresTx
	persons     *store.PersonStore
	units       *store.UnitStore
	cities      *store.CityStore
	assignments *store.AssignmentStore
	permanent   *store.PermanentStaffStore
	temporary   *store.TemporaryStaffStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.postgres = mgr.GetPostgres(s.T())
	db := s.postgres.DB
	s.tx = store.NewPostgresTx(db, 5*time.Second)
	s.persons = store.NewPersonStore(db)
	s.units = store.NewUnitStore(db)
	s.cities = store.NewCityStore(db)
	s.assignments = store.NewAssignmentStore(db)
	s.permanent = store.NewPermanentStaffStore(db)
	s.temporary = store.NewTemporaryStaffStore(db)
}

func (s *PostgresStoreSuite) SetupTest() {
	// Truncate in dependency order
	err := s.postgres.TruncateTables(context.Background(),
		"assignments", "permanent_staff", "temporary_staff", "persons", "units", "cities")
	s.Require().NoError(err)
}

func (s *PostgresStoreSuite) newPerson(name string) *models.Person {
	p := &models.Person{
		Name:       name,
		BirthDate:  models.NewDate(1990, time.March, 14),
		Sex:        models.SexFemale,
		MotherName: "Maria",
		FatherName: "José",
	}
	s.Require().NoError(s.persons.Create(context.Background(), p))
	return p
}

func (s *PostgresStoreSuite) newUnit(name string) *models.Unit {
	u := &models.Unit{Name: name, Acronym: "U"}
	s.Require().NoError(s.units.Create(context.Background(), u))
	return u
}

func (s *PostgresStoreSuite) TestPersonRoundTrip() {
	ctx := context.Background()
	p := s.newPerson("Ana")
	s.Positive(int64(p.ID))

	found, err := s.persons.FindByID(ctx, p.ID)
	s.Require().NoError(err)
	s.Equal(p, found)

	_, err = s.persons.FindByID(ctx, id.PersonID(999999))
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestPersonUpdateWritesOnlyPresentFields() {
	ctx := context.Background()
	p := s.newPerson("Ana")

	err := s.persons.Update(ctx, p.ID, models.PersonChanges{Name: optional.Of("Ana Paula")})
	s.Require().NoError(err)

	found, err := s.persons.FindByID(ctx, p.ID)
	s.Require().NoError(err)
	s.Equal("Ana Paula", found.Name)
	s.Equal(p.MotherName, found.MotherName)
	s.True(p.BirthDate.Equal(found.BirthDate))

	s.Run("empty changeset on missing row", func() {
		err := s.persons.Update(ctx, id.PersonID(999999), models.PersonChanges{})
		s.ErrorIs(err, sentinel.ErrNotFound)
	})
	s.Run("non-empty changeset on missing row", func() {
		err := s.persons.Update(ctx, id.PersonID(999999), models.PersonChanges{Name: optional.Of("x")})
		s.ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *PostgresStoreSuite) TestAssignmentEmbedsPersonAndUnit() {
	ctx := context.Background()
	p := s.newPerson("Bruno")
	u := s.newUnit("Human Resources")

	a := &models.Assignment{
		PersonID:   p.ID,
		UnitID:     u.ID,
		AssignedOn: models.NewDate(2024, time.January, 2),
		RemovedOn:  models.NewDate(2024, time.December, 31),
		OrderRef:   "ORD-1",
	}
	s.Require().NoError(s.assignments.Create(ctx, a))

	found, err := s.assignments.FindByID(ctx, a.ID)
	s.Require().NoError(err)
	s.Equal(p, found.Person)
	s.Equal(u, found.Unit)
	s.Equal("ORD-1", found.OrderRef)
}

func (s *PostgresStoreSuite) TestAssignmentMissingUnitViolatesForeignKey() {
	ctx := context.Background()
	p := s.newPerson("Bruno")

	err := s.assignments.Create(ctx, &models.Assignment{
		PersonID:   p.ID,
		UnitID:     id.UnitID(999999),
		AssignedOn: models.NewDate(2024, time.January, 2),
		RemovedOn:  models.NewDate(2024, time.December, 31),
		OrderRef:   "ORD-1",
	})
	var pqErr *pq.Error
	s.Require().True(errors.As(err, &pqErr))
	s.Equal(store.ConstraintAssignmentUnit, pqErr.Constraint)
}

func (s *PostgresStoreSuite) TestListPagesInKeyOrder() {
	ctx := context.Background()
	for i := 1; i <= 3; i++ {
		s.newUnit(fmt.Sprintf("Unit %d", i))
	}

	page, err := models.NewPage(2, 2)
	s.Require().NoError(err)

	var (
		units []*models.Unit
		total int
	)
	err = s.tx.RunInSnapshot(ctx, func(ctx context.Context) error {
		var err error
		if units, err = s.units.List(ctx, page); err != nil {
			return err
		}
		total, err = s.units.Count(ctx)
		return err
	})
	s.Require().NoError(err)
	s.Equal(3, total)
	s.Require().Len(units, 1)
	s.Equal("Unit 3", units[0].Name)
}

func (s *PostgresStoreSuite) TestRunInTxRollsBackOnError() {
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		p := &models.Person{
			Name:       "Rolled Back",
			BirthDate:  models.NewDate(1980, time.May, 1),
			Sex:        models.SexMale,
			MotherName: "M",
			FatherName: "F",
		}
		if err := s.persons.Create(ctx, p); err != nil {
			return err
		}
		return boom
	})
	s.ErrorIs(err, boom)

	var n int
	s.Require().NoError(s.postgres.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM persons").Scan(&n))
	s.Zero(n)
}

func (s *PostgresStoreSuite) TestStaffKeyedByPerson() {
	ctx := context.Background()
	p := s.newPerson("Carla")
	other := s.newPerson("Diego")

	s.Require().NoError(s.temporary.Create(ctx, &models.TemporaryStaff{
		PersonID:     p.ID,
		AdmittedOn:   models.NewDate(2023, time.February, 1),
		TerminatedOn: models.NewDate(2025, time.February, 1),
	}))

	err := s.temporary.Update(ctx, p.ID, models.TemporaryStaffChanges{PersonID: optional.Of(other.ID)})
	s.Require().NoError(err)

	_, err = s.temporary.FindByPersonID(ctx, p.ID)
	s.ErrorIs(err, sentinel.ErrNotFound)
	moved, err := s.temporary.FindByPersonID(ctx, other.ID)
	s.Require().NoError(err)
	s.Equal("Diego", moved.Person.Name)
}

// TestConcurrentDuplicateRegistrationNumber verifies the unique constraint
// lets exactly one of many racing inserts through.
func (s *PostgresStoreSuite) TestConcurrentDuplicateRegistrationNumber() {
	ctx := context.Background()
	const goroutines = 20

	people := make([]*models.Person, goroutines)
	for i := range people {
		people[i] = s.newPerson(fmt.Sprintf("Person %d", i))
	}

	var wg sync.WaitGroup
	var successCount atomic.Int32
	var conflictCount atomic.Int32

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(p *models.Person) {
			defer wg.Done()
			err := s.permanent.Create(ctx, &models.PermanentStaff{PersonID: p.ID, RegistrationNumber: "REG-001"})
			var pqErr *pq.Error
			switch {
			case err == nil:
				successCount.Add(1)
			case errors.As(err, &pqErr) && pqErr.Constraint == store.ConstraintPermanentStaffRegNo:
				conflictCount.Add(1)
			}
		}(people[i])
	}
	wg.Wait()

	s.Equal(int32(1), successCount.Load(), "exactly one insert should succeed")
	s.Equal(int32(goroutines-1), conflictCount.Load(), "all others should hit the unique constraint")
}

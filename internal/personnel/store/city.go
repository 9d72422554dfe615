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

// CityStore persists cities in PostgreSQL.
type CityStore struct {
	db *sql.DB
}

func NewCityStore(db *sql.DB) *CityStore {
	return &CityStore{db: db}
}

func (s *CityStore) Create(ctx context.Context, c *models.City) error {
	query := `INSERT INTO cities (name, state_code) VALUES ($1, $2) RETURNING id`
	var cityID int64
	if err := tx.QuerierFrom(ctx, s.db).QueryRowContext(ctx, query, c.Name, c.StateCode).Scan(&cityID); err != nil {
		return fmt.Errorf("insert city: %w", err)
	}
	c.ID = id.CityID(cityID)
	return nil
}

func (s *CityStore) FindByID(ctx context.Context, cityID id.CityID) (*models.City, error) {
	query := `SELECT id, name, state_code FROM cities WHERE id = $1`
	c, err := scanCity(tx.QuerierFrom(ctx, s.db).QueryRowContext(ctx, query, int64(cityID)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find city by id: %w", err)
	}
	return c, nil
}

func (s *CityStore) List(ctx context.Context, page models.Page) ([]*models.City, error) {
	query := `SELECT id, name, state_code FROM cities ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := tx.QuerierFrom(ctx, s.db).QueryContext(ctx, query, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("list cities: %w", err)
	}
	defer rows.Close()

	cities := make([]*models.City, 0, page.Limit())
	for rows.Next() {
		c, err := scanCity(rows)
		if err != nil {
			return nil, fmt.Errorf("scan city: %w", err)
		}
		cities = append(cities, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cities: %w", err)
	}
	return cities, nil
}

func (s *CityStore) Count(ctx context.Context) (int, error) {
	return count(ctx, tx.QuerierFrom(ctx, s.db), "cities")
}

func scanCity(row rowScanner) (*models.City, error) {
	var (
		c      models.City
		cityID int64
	)
	if err := row.Scan(&cityID, &c.Name, &c.StateCode); err != nil {
		return nil, err
	}
	c.ID = id.CityID(cityID)
	return &c, nil
}

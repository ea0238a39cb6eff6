package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/airflow/reservations/internal/model"
)

// ErrCityNotFound is returned when a city lookup yields no rows.
var ErrCityNotFound = errors.New("city not found")

// CityRepo provides access to the cities table.
type CityRepo struct {
	db *sql.DB
}

// NewCityRepo constructs a CityRepo with the given DB handle.
func NewCityRepo(db *sql.DB) *CityRepo {
	return &CityRepo{db: db}
}

var _ Repository[model.City] = (*CityRepo)(nil)

// GetAll returns every city.
func (r *CityRepo) GetAll(ctx context.Context) ([]model.City, error) {
	const q = `SELECT id_PK, name, country, code FROM cities`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cities := []model.City{}
	for rows.Next() {
		var c model.City
		if err := rows.Scan(&c.ID, &c.Name, &c.Country, &c.Code); err != nil {
			return nil, err
		}
		cities = append(cities, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return cities, nil
}

// GetByID fetches a city by id.
func (r *CityRepo) GetByID(ctx context.Context, id uint64) (*model.City, error) {
	const q = `SELECT id_PK, name, country, code FROM cities WHERE id_PK = ?`
	var c model.City
	err := r.db.QueryRowContext(ctx, q, id).Scan(&c.ID, &c.Name, &c.Country, &c.Code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCityNotFound
		}
		return nil, err
	}
	return &c, nil
}

// GetByName fetches a city by exact name.
func (r *CityRepo) GetByName(ctx context.Context, name string) (*model.City, error) {
	const q = `SELECT id_PK, name, country, code FROM cities WHERE name = ?`
	var c model.City
	err := r.db.QueryRowContext(ctx, q, name).Scan(&c.ID, &c.Name, &c.Country, &c.Code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCityNotFound
		}
		return nil, err
	}
	return &c, nil
}

// Create inserts a city and populates its generated id.
func (r *CityRepo) Create(ctx context.Context, c *model.City) error {
	const q = `INSERT INTO cities (name, country, code) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, c.Name, c.Country, c.Code)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = uint64(id)
	return nil
}

// Update overwrites all mutable columns; missing ids are a no-op.
func (r *CityRepo) Update(ctx context.Context, id uint64, c *model.City) error {
	const q = `UPDATE cities SET name = ?, country = ?, code = ? WHERE id_PK = ?`
	_, err := r.db.ExecContext(ctx, q, c.Name, c.Country, c.Code, id)
	return err
}

// Delete removes a city row; missing ids are a no-op.
func (r *CityRepo) Delete(ctx context.Context, id uint64) error {
	const q = `DELETE FROM cities WHERE id_PK = ?`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}

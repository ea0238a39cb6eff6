package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/airflow/reservations/internal/model"
)

// ErrAirplaneNotFound is returned when an airplane lookup yields no rows.
var ErrAirplaneNotFound = errors.New("airplane not found")

// AirplaneRepo provides access to the airplanes table.
type AirplaneRepo struct {
	db *sql.DB
}

// NewAirplaneRepo constructs an AirplaneRepo with the given DB handle.
func NewAirplaneRepo(db *sql.DB) *AirplaneRepo {
	return &AirplaneRepo{db: db}
}

var _ Repository[model.Airplane] = (*AirplaneRepo)(nil)

// GetAll returns every airplane.
func (r *AirplaneRepo) GetAll(ctx context.Context) ([]model.Airplane, error) {
	const q = `SELECT id_PK, airline, model, code, capacity, year FROM airplanes`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	planes := []model.Airplane{}
	for rows.Next() {
		var a model.Airplane
		if err := rows.Scan(&a.ID, &a.Airline, &a.Model, &a.Code, &a.Capacity, &a.Year); err != nil {
			return nil, err
		}
		planes = append(planes, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return planes, nil
}

// GetByID fetches an airplane by id.
func (r *AirplaneRepo) GetByID(ctx context.Context, id uint64) (*model.Airplane, error) {
	const q = `SELECT id_PK, airline, model, code, capacity, year FROM airplanes WHERE id_PK = ?`
	var a model.Airplane
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&a.ID, &a.Airline, &a.Model, &a.Code, &a.Capacity, &a.Year)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAirplaneNotFound
		}
		return nil, err
	}
	return &a, nil
}

// GetByCode fetches an airplane by its fleet code.
func (r *AirplaneRepo) GetByCode(ctx context.Context, code string) (*model.Airplane, error) {
	const q = `SELECT id_PK, airline, model, code, capacity, year FROM airplanes WHERE code = ?`
	var a model.Airplane
	err := r.db.QueryRowContext(ctx, q, code).
		Scan(&a.ID, &a.Airline, &a.Model, &a.Code, &a.Capacity, &a.Year)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAirplaneNotFound
		}
		return nil, err
	}
	return &a, nil
}

// Create inserts an airplane and populates its generated id.
func (r *AirplaneRepo) Create(ctx context.Context, a *model.Airplane) error {
	const q = `INSERT INTO airplanes (airline, model, code, capacity, year) VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, a.Airline, a.Model, a.Code, a.Capacity, a.Year)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)
	return nil
}

// Update overwrites all mutable columns; missing ids are a no-op.
func (r *AirplaneRepo) Update(ctx context.Context, id uint64, a *model.Airplane) error {
	const q = `UPDATE airplanes SET airline = ?, model = ?, code = ?, capacity = ?, year = ? WHERE id_PK = ?`
	_, err := r.db.ExecContext(ctx, q, a.Airline, a.Model, a.Code, a.Capacity, a.Year, id)
	return err
}

// Delete removes an airplane row; missing ids are a no-op.
func (r *AirplaneRepo) Delete(ctx context.Context, id uint64) error {
	const q = `DELETE FROM airplanes WHERE id_PK = ?`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}

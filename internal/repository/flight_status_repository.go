package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/airflow/reservations/internal/model"
)

// ErrFlightStatusNotFound is returned when a flight status lookup
// yields no rows.
var ErrFlightStatusNotFound = errors.New("flight status not found")

// FlightStatusRepo provides access to the flight_status lookup table.
// Ids in this table come from the seed data, so Create inserts the
// id carried on the record instead of relying on auto-increment.
type FlightStatusRepo struct {
	db *sql.DB
}

// NewFlightStatusRepo constructs a FlightStatusRepo with the given DB handle.
func NewFlightStatusRepo(db *sql.DB) *FlightStatusRepo {
	return &FlightStatusRepo{db: db}
}

var _ Repository[model.FlightStatus] = (*FlightStatusRepo)(nil)

// GetAll returns the full flight status vocabulary.
func (r *FlightStatusRepo) GetAll(ctx context.Context) ([]model.FlightStatus, error) {
	const q = `SELECT id_PK, name, description FROM flight_status`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	statuses := []model.FlightStatus{}
	for rows.Next() {
		var s model.FlightStatus
		if err := rows.Scan(&s.ID, &s.Name, &s.Description); err != nil {
			return nil, err
		}
		statuses = append(statuses, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return statuses, nil
}

// GetByID fetches a flight status by id.
func (r *FlightStatusRepo) GetByID(ctx context.Context, id uint64) (*model.FlightStatus, error) {
	const q = `SELECT id_PK, name, description FROM flight_status WHERE id_PK = ?`
	var s model.FlightStatus
	err := r.db.QueryRowContext(ctx, q, id).Scan(&s.ID, &s.Name, &s.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFlightStatusNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Create inserts a status row under the explicit id on s.
func (r *FlightStatusRepo) Create(ctx context.Context, s *model.FlightStatus) error {
	const q = `INSERT INTO flight_status (id_PK, name, description) VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q, s.ID, s.Name, s.Description)
	return err
}

// Update overwrites name and description; missing ids are a no-op.
func (r *FlightStatusRepo) Update(ctx context.Context, id uint64, s *model.FlightStatus) error {
	const q = `UPDATE flight_status SET name = ?, description = ? WHERE id_PK = ?`
	_, err := r.db.ExecContext(ctx, q, s.Name, s.Description, id)
	return err
}

// Delete removes a status row; missing ids are a no-op.
func (r *FlightStatusRepo) Delete(ctx context.Context, id uint64) error {
	const q = `DELETE FROM flight_status WHERE id_PK = ?`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}

package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/airflow/reservations/internal/model"
)

// ErrReservationStatusNotFound is returned when a reservation status
// lookup yields no rows.
var ErrReservationStatusNotFound = errors.New("reservation status not found")

// ReservationStatusRepo provides access to the reservations_status
// lookup table. Like flight statuses, ids come from the seed data.
type ReservationStatusRepo struct {
	db *sql.DB
}

// NewReservationStatusRepo constructs a ReservationStatusRepo with the given DB handle.
func NewReservationStatusRepo(db *sql.DB) *ReservationStatusRepo {
	return &ReservationStatusRepo{db: db}
}

var _ Repository[model.ReservationStatus] = (*ReservationStatusRepo)(nil)

// GetAll returns the full reservation status vocabulary.
func (r *ReservationStatusRepo) GetAll(ctx context.Context) ([]model.ReservationStatus, error) {
	const q = `SELECT id_PK, name, description FROM reservations_status`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	statuses := []model.ReservationStatus{}
	for rows.Next() {
		var s model.ReservationStatus
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

// GetByID fetches a reservation status by id.
func (r *ReservationStatusRepo) GetByID(ctx context.Context, id uint64) (*model.ReservationStatus, error) {
	const q = `SELECT id_PK, name, description FROM reservations_status WHERE id_PK = ?`
	var s model.ReservationStatus
	err := r.db.QueryRowContext(ctx, q, id).Scan(&s.ID, &s.Name, &s.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReservationStatusNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Create inserts a status row under the explicit id on s.
func (r *ReservationStatusRepo) Create(ctx context.Context, s *model.ReservationStatus) error {
	const q = `INSERT INTO reservations_status (id_PK, name, description) VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q, s.ID, s.Name, s.Description)
	return err
}

// Update overwrites name and description; missing ids are a no-op.
func (r *ReservationStatusRepo) Update(ctx context.Context, id uint64, s *model.ReservationStatus) error {
	const q = `UPDATE reservations_status SET name = ?, description = ? WHERE id_PK = ?`
	_, err := r.db.ExecContext(ctx, q, s.Name, s.Description, id)
	return err
}

// Delete removes a status row; missing ids are a no-op.
func (r *ReservationStatusRepo) Delete(ctx context.Context, id uint64) error {
	const q = `DELETE FROM reservations_status WHERE id_PK = ?`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}

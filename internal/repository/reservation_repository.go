package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/airflow/reservations/internal/model"
)

// ErrReservationNotFound is returned when a reservation lookup yields
// no rows.
var ErrReservationNotFound = errors.New("reservation not found")

// reservationSelect is the shared read query. Every read path joins
// reservations_status so results carry the denormalized status name
// and description.
const reservationSelect = `SELECT r.id_PK, r.user_FK, r.status_FK, r.flight_FK, r.reserved_at,
       rs.name, rs.description
FROM reservations r
JOIN reservations_status rs ON rs.id_PK = r.status_FK`

// ReservationRepo provides access to the reservations table. Reads
// return model.ReservationDetail; mutations take the plain
// model.Reservation.
type ReservationRepo struct {
	db *sql.DB
}

// NewReservationRepo constructs a ReservationRepo with the given DB handle.
func NewReservationRepo(db *sql.DB) *ReservationRepo {
	return &ReservationRepo{db: db}
}

// GetAll returns every reservation with its status joined in.
func (r *ReservationRepo) GetAll(ctx context.Context) ([]model.ReservationDetail, error) {
	rows, err := r.db.QueryContext(ctx, reservationSelect)
	if err != nil {
		return nil, err
	}
	return collectReservationDetails(rows)
}

// GetByID fetches a single reservation, returning
// ErrReservationNotFound when absent.
func (r *ReservationRepo) GetByID(ctx context.Context, id uint64) (*model.ReservationDetail, error) {
	const q = reservationSelect + ` WHERE r.id_PK = ?`
	var d model.ReservationDetail
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&d.ID, &d.UserID, &d.StatusID, &d.FlightID, &d.ReservedAt,
		&d.StatusName, &d.StatusDescription,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return &d, nil
}

// GetByIDTx is GetByID inside a caller-provided transaction.
func (r *ReservationRepo) GetByIDTx(ctx context.Context, tx *sql.Tx, id uint64) (*model.ReservationDetail, error) {
	const q = reservationSelect + ` WHERE r.id_PK = ?`
	var d model.ReservationDetail
	err := tx.QueryRowContext(ctx, q, id).Scan(
		&d.ID, &d.UserID, &d.StatusID, &d.FlightID, &d.ReservedAt,
		&d.StatusName, &d.StatusDescription,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return &d, nil
}

// GetByUserID returns all reservations made by a user.
func (r *ReservationRepo) GetByUserID(ctx context.Context, userID uint64) ([]model.ReservationDetail, error) {
	const q = reservationSelect + ` WHERE r.user_FK = ?`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	return collectReservationDetails(rows)
}

// GetByFlightID returns all reservations on a flight.
func (r *ReservationRepo) GetByFlightID(ctx context.Context, flightID uint64) ([]model.ReservationDetail, error) {
	const q = reservationSelect + ` WHERE r.flight_FK = ?`
	rows, err := r.db.QueryContext(ctx, q, flightID)
	if err != nil {
		return nil, err
	}
	return collectReservationDetails(rows)
}

// Create inserts a reservation and populates its generated id.
func (r *ReservationRepo) Create(ctx context.Context, res *model.Reservation) error {
	const q = `INSERT INTO reservations (user_FK, status_FK, flight_FK, reserved_at) VALUES (?, ?, ?, ?)`
	result, err := r.db.ExecContext(ctx, q, res.UserID, res.StatusID, res.FlightID, res.ReservedAt)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	res.ID = uint64(id)
	return nil
}

// CreateTx is Create inside a caller-provided transaction. The booking
// flow pairs it with SeatRepo.ClaimTx so the reservation and its seat
// commit or roll back together.
func (r *ReservationRepo) CreateTx(ctx context.Context, tx *sql.Tx, res *model.Reservation) error {
	const q = `INSERT INTO reservations (user_FK, status_FK, flight_FK, reserved_at) VALUES (?, ?, ?, ?)`
	result, err := tx.ExecContext(ctx, q, res.UserID, res.StatusID, res.FlightID, res.ReservedAt)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	res.ID = uint64(id)
	return nil
}

// Update overwrites all mutable columns; missing ids are a no-op.
func (r *ReservationRepo) Update(ctx context.Context, id uint64, res *model.Reservation) error {
	const q = `UPDATE reservations SET user_FK = ?, status_FK = ?, flight_FK = ?, reserved_at = ? WHERE id_PK = ?`
	_, err := r.db.ExecContext(ctx, q, res.UserID, res.StatusID, res.FlightID, res.ReservedAt, id)
	return err
}

// UpdateStatusTx moves a reservation to the given status inside a
// caller-provided transaction. Existence checks are the caller's job;
// a missing id changes nothing.
func (r *ReservationRepo) UpdateStatusTx(ctx context.Context, tx *sql.Tx, id, statusID uint64) error {
	const q = `UPDATE reservations SET status_FK = ? WHERE id_PK = ?`
	_, err := tx.ExecContext(ctx, q, statusID, id)
	return err
}

// Delete removes a reservation row; missing ids are a no-op.
func (r *ReservationRepo) Delete(ctx context.Context, id uint64) error {
	const q = `DELETE FROM reservations WHERE id_PK = ?`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}

// collectReservationDetails drains rows into a slice, closing them on
// every path.
func collectReservationDetails(rows *sql.Rows) ([]model.ReservationDetail, error) {
	defer rows.Close()

	reservations := []model.ReservationDetail{}
	for rows.Next() {
		var d model.ReservationDetail
		if err := rows.Scan(
			&d.ID, &d.UserID, &d.StatusID, &d.FlightID, &d.ReservedAt,
			&d.StatusName, &d.StatusDescription,
		); err != nil {
			return nil, err
		}
		reservations = append(reservations, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return reservations, nil
}
